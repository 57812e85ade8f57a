// Package recommend turns correlation evidence and one assessment into a
// short, ranked list of actions.
package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/okian/studytrack/internal/domain/metric"
	"github.com/okian/studytrack/internal/domain/model"
)

// Limits of the generated list.
const (
	MaxRecommendations = 5
	minHeuristicHits   = 3
	backfillMinAbsR    = 0.3
)

// heuristic fires when the user's own value crosses threshold in the given
// direction and the correlation supports changing it.
type heuristic struct {
	metric metric.Metric
	text   string
	// below: value < threshold and r > corr; otherwise value > threshold and r < corr.
	below     bool
	threshold float64
	corr      float64
}

func (h heuristic) fires(value, r float64) bool {
	if h.below {
		return value < h.threshold && r > h.corr
	}
	return value > h.threshold && r < h.corr
}

var heuristics = []heuristic{
	{metric.SleepHours, "Increase sleep to 7-8 hours per night for better focus and grades", true, 7, 0.4},
	{metric.PhoneUsageHours, "Reduce phone usage during study sessions - consider using app blockers", false, 4, -0.3},
	{metric.ExerciseMinutes, "Add 30+ minutes of daily exercise to improve focus and energy levels", true, 30, 0.3},
	{metric.SocialMediaHours, "Limit social media to 30-60 minutes daily during study breaks only", false, 2, -0.3},
	{metric.StudyHours, "Increase focused study time to 2-3 hours daily in consistent blocks", true, 2, 0.3},
}

// negative metrics are phrased as "reduce" in generic suggestions.
var negative = map[metric.Metric]bool{
	metric.PhoneUsageHours:  true,
	metric.SocialMediaHours: true,
	metric.GamingHours:      true,
	metric.StressLevel:      true,
}

type candidate struct {
	text     string
	metric   metric.Metric
	strength float64
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithClock overrides the creation time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithIDs overrides the ID source.
func WithIDs(newID func() string) Option {
	return func(g *Generator) {
		if newID != nil {
			g.newID = newID
		}
	}
}

// Generator produces recommendation lists. It holds no mutable state.
type Generator struct {
	now   func() time.Time
	newID func() string
}

// NewGenerator creates a generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evidence selects one correlation per metric from a single target:
// predicted productivity when any such record exists, final grade otherwise.
func Evidence(correlations []model.CorrelationRecord) map[metric.Metric]model.CorrelationRecord {
	byTarget := func(t model.Target) map[metric.Metric]model.CorrelationRecord {
		out := make(map[metric.Metric]model.CorrelationRecord)
		for _, c := range correlations {
			if c.Target == t {
				out[c.Metric] = c
			}
		}
		return out
	}
	if ev := byTarget(model.TargetPredictedProductivity); len(ev) > 0 {
		return ev
	}
	return byTarget(model.TargetFinalGrade)
}

// Generate builds at most MaxRecommendations pending recommendations for a,
// ordered by correlation strength with unique texts.
func (g *Generator) Generate(a model.Assessment, correlations []model.CorrelationRecord) []model.Recommendation {
	evidence := Evidence(correlations)

	var cands []candidate
	supported := make(map[metric.Metric]bool)
	for _, h := range heuristics {
		c, ok := evidence[h.metric]
		if !ok {
			continue
		}
		v, ok := a.Value(h.metric)
		if !ok || !h.fires(v, c.Coefficient) {
			continue
		}
		cands = append(cands, candidate{h.text, h.metric, c.Strength()})
		supported[h.metric] = true
	}

	if len(cands) < minHeuristicHits {
		cands = append(cands, backfill(evidence, supported, MaxRecommendations-len(cands))...)
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].strength > cands[j].strength })

	now := g.now().UTC()
	seen := make(map[string]bool, len(cands))
	out := make([]model.Recommendation, 0, MaxRecommendations)
	for _, c := range cands {
		if seen[c.text] {
			continue
		}
		seen[c.text] = true
		out = append(out, model.Recommendation{
			ID:               g.newID(),
			AssessmentID:     a.ID,
			UserID:           a.UserID,
			Text:             c.text,
			SupportingMetric: c.metric,
			Strength:         c.strength,
			PriorityRank:     len(out) + 1,
			Status:           model.StatusPending,
			CreatedAt:        now,
		})
		if len(out) == MaxRecommendations {
			break
		}
	}
	return out
}

// backfill phrases the strongest remaining correlations generically.
func backfill(evidence map[metric.Metric]model.CorrelationRecord, skip map[metric.Metric]bool, n int) []candidate {
	if n <= 0 {
		return nil
	}
	ranked := make([]model.CorrelationRecord, 0, len(evidence))
	for m, c := range evidence {
		if !skip[m] && c.Strength() >= backfillMinAbsR {
			ranked = append(ranked, c)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Strength() != ranked[j].Strength() {
			return ranked[i].Strength() > ranked[j].Strength()
		}
		return ranked[i].Metric < ranked[j].Metric
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]candidate, len(ranked))
	for i, c := range ranked {
		direction := "increase"
		if negative[c.Metric] {
			direction = "reduce"
		}
		out[i] = candidate{
			text:     fmt.Sprintf("Consider adjusting %s to %s for better outcomes", c.Metric.Label(), direction),
			metric:   c.Metric,
			strength: c.Strength(),
		}
	}
	return out
}
