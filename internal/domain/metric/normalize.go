package metric

// Neutral is the normalized value used for absent or degenerate inputs.
const Neutral = 0.5

// Normalize maps value into [0,1] within the metric's own range.
//
// Polarity is not applied here: the result always means "how high in its
// range", callers invert for lower-is-better metrics. An absent value or a
// metric whose range collapses to a point yields Neutral.
func Normalize(m Metric, value float64, present bool) float64 {
	if !present {
		return Neutral
	}
	d := m.Descriptor()
	if d.Max == d.Min {
		return Neutral
	}
	clamped := min(max(value, d.Min), d.Max)
	return (clamped - d.Min) / (d.Max - d.Min)
}

// NormalizeAll normalizes every metric of v.
func NormalizeAll(v Values) [Count]float64 {
	var out [Count]float64
	for _, m := range All() {
		x, ok := v.Get(m)
		out[m] = Normalize(m, x, ok)
	}
	return out
}

// Weakness converts a normalized value into a weakness contribution given
// the rule polarity.
func Weakness(normalized float64, higherIsBetter bool) float64 {
	if higherIsBetter {
		return 1 - normalized
	}
	return normalized
}
