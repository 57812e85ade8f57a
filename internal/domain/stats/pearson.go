// Package stats implements the correlation statistics used by the analytics
// engine.
package stats

import "math"

// MinSamples is the smallest paired sample the calculator accepts.
const MinSamples = 4

// ConfidenceLevel is the level, in percent, of the interval Pearson returns.
const ConfidenceLevel = 95.0

// z95 is the two-sided standard normal quantile for ConfidenceLevel.
const z95 = 1.96

// unitTolerance is how close |r| must be to 1 to count as a perfect fit.
const unitTolerance = 1e-12

// Result holds the raw statistics of one correlation.
type Result struct {
	Coefficient     float64
	SampleSize      int
	CILow           float64
	CIHigh          float64
	ConfidenceLevel float64
	PValue          float64
}

// Pearson correlates x and y.
//
// It reports false when the samples differ in length, hold fewer than
// MinSamples points, or either side has no variance. The p-value uses the
// normal approximation 2*(1-Phi(t)) instead of the Student-t distribution,
// which overstates significance for very small n.
func Pearson(x, y []float64) (Result, bool) {
	n := len(x)
	if n != len(y) || n < MinSamples {
		return Result{}, false
	}

	meanX, meanY := mean(x), mean(y)
	var sxx, syy, sxy float64
	for i := range x {
		dx, dy := x[i]-meanX, y[i]-meanY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	// Sample deviations share the n-1 denominator, so it cancels out of r.
	if sxx == 0 || syy == 0 {
		return Result{}, false
	}

	r := sxy / math.Sqrt(sxx*syy)
	r = min(max(r, -1), 1)
	if 1-math.Abs(r) < unitTolerance {
		r = math.Copysign(1, r)
	}

	res := Result{
		Coefficient:     r,
		SampleSize:      n,
		ConfidenceLevel: ConfidenceLevel,
	}
	if math.Abs(r) == 1 {
		res.CILow, res.CIHigh = r, r
		return res, true
	}

	t := math.Abs(r) * math.Sqrt(float64(n-2)/(1-r*r))
	res.PValue = 2 * (1 - normalCDF(t))

	z := math.Atanh(r)
	half := z95 / math.Sqrt(float64(n-3))
	res.CILow, res.CIHigh = math.Tanh(z-half), math.Tanh(z+half)
	return res, true
}

func mean(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s / float64(len(v))
}

func normalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}
