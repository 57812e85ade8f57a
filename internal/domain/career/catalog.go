// Package career holds the static career catalog and ranks academic subjects
// against a user's skill weaknesses for a chosen career.
package career

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/studytrack/internal/domain/model"
)

// Catalog is an immutable, validated view of careers, skills, subjects and
// the links between them.
type Catalog struct {
	careers   []model.Career
	skills    map[string]model.SkillArea
	subjects  map[string]model.Subject
	links     map[string][]model.SkillSubjectLink // by skill
	resources map[string][]model.Resource         // by subject
}

var defaultCatalog = mustCatalog(careerData, skillData, subjectData, linkData, resourceData)

// Default returns the built-in catalog.
func Default() *Catalog { return defaultCatalog }

func mustCatalog(careers []model.Career, skills []model.SkillArea, subjects []model.Subject,
	links []model.SkillSubjectLink, resources map[string][]model.Resource,
) *Catalog {
	c, err := NewCatalog(careers, skills, subjects, links, resources)
	if err != nil {
		panic(err)
	}
	return c
}

// NewCatalog validates and indexes catalog data. Every name referenced by a
// career, link or resource must be defined, and every rule must name a
// known metric with a non-negative weight.
func NewCatalog(careers []model.Career, skills []model.SkillArea, subjects []model.Subject,
	links []model.SkillSubjectLink, resources map[string][]model.Resource,
) (*Catalog, error) {
	c := &Catalog{
		skills:    make(map[string]model.SkillArea, len(skills)),
		subjects:  make(map[string]model.Subject, len(subjects)),
		links:     make(map[string][]model.SkillSubjectLink),
		resources: make(map[string][]model.Resource, len(resources)),
	}

	for _, s := range skills {
		if _, dup := c.skills[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate skill %q", ErrInvalidCatalog, s.Name)
		}
		for _, r := range s.Rules {
			if !r.Metric.Valid() || r.Weight < 0 {
				return nil, fmt.Errorf("%w: bad rule on skill %q", ErrInvalidCatalog, s.Name)
			}
		}
		s.Rules = append([]model.MetricRule(nil), s.Rules...)
		c.skills[s.Name] = s
	}
	for _, s := range subjects {
		if _, dup := c.subjects[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate subject %q", ErrInvalidCatalog, s.Name)
		}
		c.subjects[s.Name] = s
	}

	slugs := make(map[string]bool, len(careers))
	for _, cr := range careers {
		if slugs[cr.Slug()] {
			return nil, fmt.Errorf("%w: duplicate career %q", ErrInvalidCatalog, cr.Name)
		}
		slugs[cr.Slug()] = true
		for _, sk := range cr.Skills {
			if _, ok := c.skills[sk]; !ok {
				return nil, fmt.Errorf("%w: career %q names unknown skill %q", ErrInvalidCatalog, cr.Name, sk)
			}
		}
		cr.Skills = append([]string(nil), cr.Skills...)
		c.careers = append(c.careers, cr)
	}
	sort.Slice(c.careers, func(i, j int) bool { return c.careers[i].Name < c.careers[j].Name })

	for _, l := range links {
		if _, ok := c.skills[l.Skill]; !ok {
			return nil, fmt.Errorf("%w: link names unknown skill %q", ErrInvalidCatalog, l.Skill)
		}
		if _, ok := c.subjects[l.Subject]; !ok {
			return nil, fmt.Errorf("%w: link names unknown subject %q", ErrInvalidCatalog, l.Subject)
		}
		c.links[l.Skill] = append(c.links[l.Skill], l)
	}
	for subject, rs := range resources {
		if _, ok := c.subjects[subject]; !ok {
			return nil, fmt.Errorf("%w: resources for unknown subject %q", ErrInvalidCatalog, subject)
		}
		c.resources[subject] = append([]model.Resource(nil), rs...)
	}
	return c, nil
}

// Careers returns all careers ordered by name.
func (c *Catalog) Careers() []model.Career {
	return append([]model.Career(nil), c.careers...)
}

// Career resolves a career by case-insensitive name or by slug.
func (c *Catalog) Career(nameOrSlug string) (model.Career, bool) {
	key := strings.ToLower(strings.TrimSpace(nameOrSlug))
	if key == "" {
		return model.Career{}, false
	}
	for _, cr := range c.careers {
		if strings.ToLower(cr.Name) == key || cr.Slug() == key {
			return cr, true
		}
	}
	return model.Career{}, false
}

// Skill returns a skill area by exact name.
func (c *Catalog) Skill(name string) (model.SkillArea, bool) {
	s, ok := c.skills[name]
	return s, ok
}

// CareerSkills returns the skill areas of a career ordered by name.
func (c *Catalog) CareerSkills(cr model.Career) []model.SkillArea {
	out := make([]model.SkillArea, 0, len(cr.Skills))
	for _, name := range cr.Skills {
		if s, ok := c.skills[name]; ok {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Subject returns a subject by exact name.
func (c *Catalog) Subject(name string) (model.Subject, bool) {
	s, ok := c.subjects[name]
	return s, ok
}

// Links returns the subject links of a skill in catalog order.
func (c *Catalog) Links(skill string) []model.SkillSubjectLink {
	return c.links[skill]
}

// SubjectLink pairs a subject with the relevance of the link that reached it.
type SubjectLink struct {
	Subject   model.Subject
	Relevance model.Level
}

// SubjectsForSkill lists the subjects a skill links to whose field matches
// course, ordered by subject name. An empty course matches everything.
func (c *Catalog) SubjectsForSkill(skill, course string) []SubjectLink {
	var out []SubjectLink
	for _, l := range c.links[skill] {
		s := c.subjects[l.Subject]
		if !CourseMatchesField(course, s.FieldOfStudy) {
			continue
		}
		out = append(out, SubjectLink{Subject: s, Relevance: l.Relevance})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject.Name < out[j].Subject.Name })
	return out
}

// Resources returns the learning resources of a subject.
func (c *Catalog) Resources(subject string) []model.Resource {
	return append([]model.Resource(nil), c.resources[subject]...)
}
