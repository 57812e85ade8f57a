package career

import (
	"github.com/okian/studytrack/internal/domain/metric"
	"github.com/okian/studytrack/internal/domain/model"
)

// Weakness scores how far a's metrics fall short of skill's rules, in [0,1].
// Overrides take precedence over stored values; pass nil for the baseline.
// A skill without rules, or whose weights sum to zero, scores neutral.
func Weakness(a model.Assessment, skill model.SkillArea, overrides metric.Overrides) float64 {
	var total, weights float64
	for _, r := range skill.Rules {
		v, ok := overrides.Resolve(a.Values, r.Metric)
		w := metric.Weakness(metric.Normalize(r.Metric, v, ok), r.HigherIsBetter)
		total += w * r.Weight
		weights += r.Weight
	}
	if weights == 0 {
		return metric.Neutral
	}
	return min(max(total/weights, 0), 1)
}
