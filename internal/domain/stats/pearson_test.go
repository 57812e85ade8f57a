package stats

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPearson(t *testing.T) {
	Convey("Given the Pearson calculator", t, func() {
		Convey("Perfectly linear data is fully determined", func() {
			x := []float64{1, 2, 3, 4, 5}
			y := make([]float64, len(x))
			for i, v := range x {
				y[i] = 2*v + 1
			}
			res, ok := Pearson(x, y)
			So(ok, ShouldBeTrue)
			So(res.Coefficient, ShouldAlmostEqual, 1.0, 1e-12)
			So(res.PValue, ShouldEqual, 0)
			So(res.CILow, ShouldEqual, res.Coefficient)
			So(res.CIHigh, ShouldEqual, res.Coefficient)
			So(res.SampleSize, ShouldEqual, 5)
			So(res.ConfidenceLevel, ShouldEqual, 95.0)
		})

		Convey("Perfect negative correlation collapses the interval too", func() {
			res, ok := Pearson([]float64{1, 2, 3, 4}, []float64{8, 6, 4, 2})
			So(ok, ShouldBeTrue)
			So(res.Coefficient, ShouldEqual, -1)
			So(res.PValue, ShouldEqual, 0)
			So(res.CILow, ShouldEqual, -1)
			So(res.CIHigh, ShouldEqual, -1)
		})

		Convey("Rounding noise on fractional linear data still collapses the interval", func() {
			for k := range 50 {
				x := make([]float64, 7)
				y := make([]float64, len(x))
				for i := range x {
					x[i] = 0.1*float64(i*(k+3)%11) + 0.37*float64(k) + 0.013*float64(i)
					y[i] = 2*x[i] + 1
				}
				res, ok := Pearson(x, y)
				So(ok, ShouldBeTrue)
				So(res.Coefficient, ShouldEqual, 1)
				So(res.CILow, ShouldEqual, 1)
				So(res.CIHigh, ShouldEqual, 1)
				So(res.PValue, ShouldEqual, 0)
			}
		})

		Convey("Fewer than four points yields no result", func() {
			_, ok := Pearson([]float64{1, 2, 3}, []float64{2, 4, 7})
			So(ok, ShouldBeFalse)
		})

		Convey("Mismatched lengths yield no result", func() {
			_, ok := Pearson([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4, 5})
			So(ok, ShouldBeFalse)
		})

		Convey("Zero variance yields no result", func() {
			_, ok := Pearson([]float64{3, 3, 3, 3}, []float64{1, 2, 3, 4})
			So(ok, ShouldBeFalse)
			_, ok = Pearson([]float64{1, 2, 3, 4}, []float64{7, 7, 7, 7})
			So(ok, ShouldBeFalse)
		})

		Convey("Noisy data produces a bracketing interval and a probability", func() {
			x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
			y := []float64{2.1, 3.9, 6.2, 7.8, 8.1, 12.5, 13.0, 15.9}
			res, ok := Pearson(x, y)
			So(ok, ShouldBeTrue)
			So(res.Coefficient, ShouldBeBetween, 0.9, 1.0)
			So(res.CILow, ShouldBeLessThan, res.Coefficient)
			So(res.CIHigh, ShouldBeGreaterThan, res.Coefficient)
			So(res.CIHigh, ShouldBeLessThanOrEqualTo, 1)
			So(res.PValue, ShouldBeGreaterThanOrEqualTo, 0)
			So(res.PValue, ShouldBeLessThan, 0.01)
		})

		Convey("n=4 uses a unit Fisher denominator", func() {
			x := []float64{1, 2, 3, 4}
			y := []float64{1, 3, 2, 4}
			res, ok := Pearson(x, y)
			So(ok, ShouldBeTrue)
			So(res.Coefficient, ShouldAlmostEqual, 0.8, 1e-9)
			z := math.Atanh(0.8)
			So(res.CILow, ShouldAlmostEqual, math.Tanh(z-1.96), 1e-9)
			So(res.CIHigh, ShouldAlmostEqual, math.Tanh(z+1.96), 1e-9)
		})
	})
}

func TestPearsonProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	pairs := gen.SliceOfN(12, gen.Float64Range(-1000, 1000))

	properties.Property("coefficient stays within [-1, 1]", prop.ForAll(
		func(x, y []float64) bool {
			res, ok := Pearson(x, y)
			if !ok {
				return true
			}
			return res.Coefficient >= -1 && res.Coefficient <= 1
		},
		pairs, pairs,
	))

	properties.Property("interval brackets the coefficient", prop.ForAll(
		func(x, y []float64) bool {
			res, ok := Pearson(x, y)
			if !ok {
				return true
			}
			return res.CILow <= res.Coefficient && res.Coefficient <= res.CIHigh &&
				res.CILow >= -1 && res.CIHigh <= 1
		},
		pairs, pairs,
	))

	properties.Property("p-value is a probability", prop.ForAll(
		func(x, y []float64) bool {
			res, ok := Pearson(x, y)
			if !ok {
				return true
			}
			return res.PValue >= 0 && res.PValue <= 1
		},
		pairs, pairs,
	))

	properties.TestingRun(t)
}
