package model

import (
	"strings"

	"github.com/okian/studytrack/internal/domain/metric"
)

// Level is an ordinal label used both as skill importance and as
// skill->subject relevance.
type Level string

// Levels from strongest to weakest.
const (
	LevelCritical Level = "critical"
	LevelHigh     Level = "high"
	LevelModerate Level = "moderate"
)

// Weight returns the ranking multiplier of l. Unknown labels weigh as moderate.
func (l Level) Weight() float64 {
	switch l {
	case LevelCritical:
		return 1.0
	case LevelHigh:
		return 0.8
	default:
		return 0.6
	}
}

// Title returns the label with its first letter capitalized.
func (l Level) Title() string {
	s := string(l)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// MetricRule contributes one metric to a skill's weakness score.
type MetricRule struct {
	Metric         metric.Metric
	HigherIsBetter bool
	Weight         float64
}

// SkillArea is a skill with its importance and weighted metric rules.
type SkillArea struct {
	Name        string
	Description string
	Importance  Level
	Rules       []MetricRule
}

// Subject is an academic subject a user can study.
type Subject struct {
	Name         string
	FieldOfStudy string
	Description  string
}

// SkillSubjectLink relates a skill to a subject with a relevance label.
type SkillSubjectLink struct {
	Skill     string
	Subject   string
	Relevance Level
}

// Resource is a learning resource attached to a subject.
type Resource struct {
	Title    string
	URL      string
	Provider string
}

// Career groups the skill areas a career path depends on.
type Career struct {
	Name        string
	Description string
	Skills      []string
}

// Slug returns the lower-case, dash separated career name.
func (c Career) Slug() string { return Slugify(c.Name) }

// Slugify lower-cases name and joins its words with dashes.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// CareerAlignedRecommendation is computed per request and never persisted.
type CareerAlignedRecommendation struct {
	Subject                Subject
	Relevance              Level
	Importance             Level
	WeaknessScore          float64
	BaselineWeaknessScore  float64
	GapClosurePercent      float64
	CareerRelevanceContext string
	SupportingSkills       []string
	Resources              []Resource
}
