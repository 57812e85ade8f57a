// Package seed generates a synthetic student population for demos and
// load tests. The same Config always yields the same students.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/okian/studytrack/internal/domain/metric"
	"github.com/okian/studytrack/internal/domain/model"
	"github.com/okian/studytrack/pkg/logger"
)

// ErrInvalidConfig reports an unusable generator configuration.
var ErrInvalidConfig = errors.New("invalid seed config")

// namespace scopes the deterministic user IDs.
var namespace = uuid.MustParse("6b0f3c2e-7d0a-4c5e-9a43-2f6f1e0a9b11")

// Config drives Generate.
type Config struct {
	Population int
	Random     int64
	// Start is the timestamp of the first assessment; each following one is
	// a minute later.
	Start time.Time
}

// Student is one generated user with a profile and a single assessment.
type Student struct {
	Profile    model.Profile
	Assessment model.Assessment
	Archetype  string
}

type archetype struct {
	name string
	// diligence range the latent factor is drawn from
	low, high float64
}

// Archetypes, drawn uniformly. The latent diligence factor moves every
// metric in its own direction so the population carries real correlations.
var archetypes = [...]archetype{
	{"average", 0.35, 0.65},
	{"high_achiever", 0.7, 0.9},
	{"struggling", 0.05, 0.35},
	{"elite", 0.9, 1},
	{"distracted", 0.2, 0.5},
	{"steady", 0.55, 0.75},
	{"wide", 0, 1},
}

var profiles = [...]struct{ course, career string }{
	{"Computer Science", "Software Developer"},
	{"Computer Science", "Cybersecurity Specialist"},
	{"Information Systems", "Data Analyst"},
	{"Data Science", "Data Analyst"},
	{"Nursing", "Doctor"},
	{"Mechanical Engineering", "Engineer"},
}

var yearLevels = [...]string{"Freshman", "Sophomore", "Junior", "Senior"}

// Generate builds cfg.Population students.
func Generate(cfg Config) ([]Student, error) {
	if cfg.Population < 0 {
		return nil, fmt.Errorf("%w: population %d", ErrInvalidConfig, cfg.Population)
	}
	if cfg.Start.IsZero() {
		cfg.Start = time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	}
	r := rand.New(rand.NewPCG(uint64(cfg.Random), uint64(cfg.Random)^0x9e3779b97f4a7c15))

	out := make([]Student, cfg.Population)
	for i := range out {
		arch := archetypes[r.IntN(len(archetypes))]
		d := arch.low + r.Float64()*(arch.high-arch.low)
		p := profiles[r.IntN(len(profiles))]
		userID := uuid.NewSHA1(namespace, fmt.Appendf(nil, "%d/%d", cfg.Random, i)).String()

		a := model.NewAssessment(userID, values(r, d), r.Float64() < 0.8, cfg.Start.Add(time.Duration(i)*time.Minute))
		a.ID = uuid.NewSHA1(namespace, fmt.Appendf(nil, "%d/%d/assessment", cfg.Random, i)).String()
		out[i] = Student{
			Profile: model.Profile{
				UserID:    userID,
				Course:    p.course,
				YearLevel: yearLevels[r.IntN(len(yearLevels))],
				Career:    p.career,
			},
			Assessment: a,
			Archetype:  arch.name,
		}
	}
	return out, nil
}

// values derives one assessment from the diligence factor d in [0,1].
func values(r *rand.Rand, d float64) metric.Values {
	noise := func(scale float64) float64 { return r.NormFloat64() * scale }
	var v metric.Values
	set := func(m metric.Metric, x float64, places int) {
		desc := m.Descriptor()
		x = min(max(x, desc.Min), desc.Max)
		p := math.Pow10(places)
		v.Set(m, math.Round(x*p)/p)
	}

	set(metric.StudyHours, 1+7*d+noise(0.8), 1)
	set(metric.SleepHours, 5+3*d+noise(0.7), 1)
	set(metric.PhoneUsageHours, 7-4*d+noise(1), 1)
	set(metric.SocialMediaHours, 5-3.5*d+noise(0.8), 1)
	set(metric.GamingHours, 3.5-3*d+noise(0.8), 1)
	set(metric.BreaksPerDay, 3+4*d+noise(1.5), 0)
	set(metric.CoffeeIntake, 2+noise(1.2), 0)
	set(metric.ExerciseMinutes, 10+50*d+noise(12), 0)
	set(metric.StressLevel, 8-4*d+noise(1), 0)
	set(metric.FocusScore, 35+55*d+noise(6), 0)
	set(metric.AttendancePercentage, 60+38*d+noise(4), 0)
	set(metric.AssignmentsCompletedPerWeek, 2+8*d+noise(1.2), 0)
	set(metric.FinalGrade, 50+45*d+noise(5), 1)

	// A missing answer now and then, as real forms have.
	if r.Float64() < 0.1 {
		tracked := metric.Tracked()
		v.Clear(tracked[r.IntN(len(tracked))])
	}
	return v
}

// Sink receives generated students.
type Sink interface {
	SaveProfile(ctx context.Context, p model.Profile) error
	SaveAssessment(ctx context.Context, a model.Assessment) error
}

// Write stores every student in sink using up to workers goroutines and
// returns the first failure.
func Write(ctx context.Context, sink Sink, students []Student, workers int) error {
	log := logger.Get().Named("seed")
	if len(students) == 0 {
		return nil
	}
	workers = min(max(workers, 1), len(students))
	log.Info(ctx, "writing synthetic population",
		logger.Int("students", len(students)),
		logger.Int("workers", workers),
	)

	jobs := make(chan int)
	errs := make(chan error, workers)
	for range workers {
		go func() {
			var first error
			for i := range jobs {
				if first != nil {
					continue
				}
				s := students[i]
				if err := sink.SaveProfile(ctx, s.Profile); err != nil {
					first = fmt.Errorf("profile %s: %w", s.Profile.UserID, err)
					continue
				}
				if err := sink.SaveAssessment(ctx, s.Assessment); err != nil {
					first = fmt.Errorf("assessment %s: %w", s.Assessment.ID, err)
				}
			}
			errs <- first
		}()
	}

feed:
	for i := range students {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)

	var err error
	for range workers {
		if e := <-errs; e != nil && err == nil {
			err = e
		}
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Info(ctx, "synthetic population written", logger.Int("students", len(students)))
	return nil
}
