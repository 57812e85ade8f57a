package career

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/studytrack/internal/domain/metric"
	"github.com/okian/studytrack/internal/domain/model"
)

// Ranking limits.
const (
	DefaultLimit = 3
	MaxLimit     = 10
)

// ClampLimit maps a requested limit into [1, maxLimit], using DefaultLimit
// for non-positive requests.
func ClampLimit(limit, maxLimit int) int {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return min(limit, maxLimit)
}

// Ranker orders subjects by how much a user's weak skills call for them.
type Ranker struct {
	catalog *Catalog
}

// NewRanker creates a ranker over catalog, or the default catalog when nil.
func NewRanker(catalog *Catalog) *Ranker {
	if catalog == nil {
		catalog = Default()
	}
	return &Ranker{catalog: catalog}
}

// Catalog returns the catalog the ranker reads.
func (r *Ranker) Catalog() *Catalog { return r.catalog }

type accumulator struct {
	subject    model.Subject
	relevance  model.Level
	importance model.Level
	current    float64
	baseline   float64
	skills     map[string]bool
}

// Rank scores every subject reachable from skills whose field matches course.
//
// A subject reached through several skills keeps the highest current score,
// and the relevance and importance that produced it, while its baseline is
// the highest baseline over the same skills. Results are ordered by current
// score rounded to four decimals, descending, with ties broken by subject
// name, and cut to limit. A nil assessment yields nothing.
func (r *Ranker) Rank(a *model.Assessment, skills []model.SkillArea, course string, overrides metric.Overrides, limit int) []model.CareerAlignedRecommendation {
	if a == nil || len(skills) == 0 || limit <= 0 {
		return []model.CareerAlignedRecommendation{}
	}

	acc := make(map[string]*accumulator)
	for _, skill := range skills {
		current := Weakness(*a, skill, overrides)
		baseline := Weakness(*a, skill, nil)
		importance := skill.Importance.Weight()

		for _, l := range r.catalog.Links(skill.Name) {
			subject, ok := r.catalog.Subject(l.Subject)
			if !ok || !CourseMatchesField(course, subject.FieldOfStudy) {
				continue
			}
			weight := importance * l.Relevance.Weight()
			cur, base := current*weight, baseline*weight

			e, ok := acc[subject.Name]
			if !ok {
				acc[subject.Name] = &accumulator{
					subject:    subject,
					relevance:  l.Relevance,
					importance: skill.Importance,
					current:    cur,
					baseline:   base,
					skills:     map[string]bool{skill.Name: true},
				}
				continue
			}
			e.skills[skill.Name] = true
			if cur > e.current {
				e.current = cur
				e.relevance = l.Relevance
				e.importance = skill.Importance
			}
			if base > e.baseline {
				e.baseline = base
			}
		}
	}

	ranked := make([]*accumulator, 0, len(acc))
	for _, e := range acc {
		ranked = append(ranked, e)
	}
	sort.Slice(ranked, func(i, j int) bool {
		ci, cj := round(ranked[i].current, 4), round(ranked[j].current, 4)
		if ci != cj {
			return ci > cj
		}
		return ranked[i].subject.Name < ranked[j].subject.Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]model.CareerAlignedRecommendation, len(ranked))
	for i, e := range ranked {
		supporting := make([]string, 0, len(e.skills))
		for s := range e.skills {
			supporting = append(supporting, s)
		}
		sort.Strings(supporting)

		out[i] = model.CareerAlignedRecommendation{
			Subject:                e.subject,
			Relevance:              e.relevance,
			Importance:             e.importance,
			WeaknessScore:          round(e.current, 4),
			BaselineWeaknessScore:  round(e.baseline, 4),
			GapClosurePercent:      round(GapClosure(e.baseline, e.current), 2),
			CareerRelevanceContext: fmt.Sprintf("%s for career readiness", e.importance.Title()),
			SupportingSkills:       supporting,
			Resources:              r.catalog.Resources(e.subject.Name),
		}
	}
	return out
}

// ForCareer ranks subjects for career's skill areas and labels each entry
// with its relevance to that career.
func (r *Ranker) ForCareer(a *model.Assessment, career model.Career, course string, overrides metric.Overrides, limit int) []model.CareerAlignedRecommendation {
	out := r.Rank(a, r.catalog.CareerSkills(career), course, overrides, limit)
	for i := range out {
		out[i].CareerRelevanceContext = fmt.Sprintf("%s for %s", out[i].Relevance.Title(), career.Name)
	}
	return out
}

// GapClosure is the simulated improvement in percent, clamped to [0,100].
func GapClosure(baseline, current float64) float64 {
	return min(max((baseline-current)*100, 0), 100)
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
