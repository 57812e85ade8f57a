package seed

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/okian/studytrack/internal/adapters/repository"
	"github.com/okian/studytrack/internal/domain/metric"
	"github.com/okian/studytrack/internal/domain/model"
	"github.com/okian/studytrack/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("Given the default seed", t, func() {
		cfg := Config{Population: 40, Random: 42}
		students, err := Generate(cfg)
		So(err, ShouldBeNil)
		So(students, ShouldHaveLength, 40)

		Convey("Generation is deterministic", func() {
			again, err := Generate(cfg)
			So(err, ShouldBeNil)
			if diff := cmp.Diff(students, again, cmp.AllowUnexported(metric.Values{})); diff != "" {
				t.Errorf("populations differ (-first +second):\n%s", diff)
			}
			other, _ := Generate(Config{Population: 40, Random: 7})
			So(other[0].Profile.UserID, ShouldNotEqual, students[0].Profile.UserID)
		})

		Convey("Every value is inside its metric range", func() {
			for _, s := range students {
				for _, m := range metric.All() {
					x, ok := s.Assessment.Value(m)
					if !ok {
						continue
					}
					d := m.Descriptor()
					So(x, ShouldBeBetweenOrEqual, d.Min, d.Max)
				}
				So(s.Assessment.UserID, ShouldEqual, s.Profile.UserID)
			}
		})

		Convey("Assessments are a minute apart and IDs are unique", func() {
			ids := make(map[string]bool)
			for i := 1; i < len(students); i++ {
				gap := students[i].Assessment.CreatedAt.Sub(students[i-1].Assessment.CreatedAt)
				So(gap.Minutes(), ShouldEqual, 1)
			}
			for _, s := range students {
				ids[s.Assessment.ID] = true
			}
			So(ids, ShouldHaveLength, 40)
		})

		Convey("Study time tracks the final grade", func() {
			var xs, ys []float64
			for _, s := range students {
				x, okX := s.Assessment.Value(metric.StudyHours)
				y, okY := s.Assessment.Value(metric.FinalGrade)
				if okX && okY {
					xs, ys = append(xs, x), append(ys, y)
				}
			}
			r, ok := stats.Pearson(xs, ys)
			So(ok, ShouldBeTrue)
			So(r.Coefficient, ShouldBeGreaterThan, 0.5)
		})
	})

	Convey("Negative populations are rejected", t, func() {
		_, err := Generate(Config{Population: -1})
		So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
	})
}

type failingSink struct {
	*repository.Memory
	mu    sync.Mutex
	calls int
}

var errSink = errors.New("sink down")

func (f *failingSink) SaveAssessment(ctx context.Context, a model.Assessment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls == 3 {
		return errSink
	}
	return f.Memory.SaveAssessment(ctx, a)
}

func TestWrite(t *testing.T) {
	Convey("Given a generated population", t, func() {
		ctx := context.Background()
		students, err := Generate(Config{Population: 25, Random: 1})
		So(err, ShouldBeNil)

		Convey("It is written to the store", func() {
			store := repository.NewMemory(ctx)
			defer store.Close()
			So(Write(ctx, store, students, 4), ShouldBeNil)

			all, err := store.Assessments(ctx)
			So(err, ShouldBeNil)
			So(all, ShouldHaveLength, 25)
			p, err := store.Profile(ctx, students[3].Profile.UserID)
			So(err, ShouldBeNil)
			So(p, ShouldResemble, students[3].Profile)

			Convey("Writing again reports duplicates", func() {
				err := Write(ctx, store, students, 2)
				So(errors.Is(err, repository.ErrDuplicate), ShouldBeTrue)
			})
		})

		Convey("A sink failure is returned", func() {
			sink := &failingSink{Memory: repository.NewMemory(ctx)}
			defer sink.Close()
			err := Write(ctx, sink, students, 3)
			So(errors.Is(err, errSink), ShouldBeTrue)
		})

		Convey("A cancelled context stops the feed", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			store := repository.NewMemory(ctx)
			defer store.Close()
			err := Write(cctx, store, students, 2)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})

		Convey("An empty population is a no-op", func() {
			So(Write(ctx, nil, nil, 4), ShouldBeNil)
		})
	})
}
