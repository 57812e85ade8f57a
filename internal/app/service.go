// Package service wires the analytics engine to its stores and exposes the
// operations the CLI and HTTP layers call.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/okian/studytrack/internal/adapters/repository"
	"github.com/okian/studytrack/internal/domain/career"
	"github.com/okian/studytrack/internal/domain/correlation"
	"github.com/okian/studytrack/internal/domain/metric"
	"github.com/okian/studytrack/internal/domain/model"
	"github.com/okian/studytrack/internal/domain/recommend"
	"github.com/okian/studytrack/internal/domain/scoring"
	"github.com/okian/studytrack/pkg/logger"
	"github.com/okian/studytrack/pkg/metrics"
)

// Service implements the analytics operations over a Store.
type Service struct {
	mu sync.RWMutex
	// recomputeMu orders population loads with the recomputes built on them.
	recomputeMu sync.Mutex

	// Core components
	store        repository.Store
	ownsStore    bool
	gate         correlation.Gate
	predictor    correlation.Predictor
	orchestrator *correlation.Orchestrator
	generator    *recommend.Generator
	ranker       *career.Ranker
	catalog      *career.Catalog

	// Configuration
	modelPath      string
	minAbsR        float64
	minConfidence  float64
	careerLimit    int
	maxCareerLimit int
	now            func() time.Time

	// State
	started    bool
	lastResult *correlation.Result

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the store. Without one, Start creates an in-memory store
// that Stop closes.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithGate sets the recompute gate shared by every recompute.
func WithGate(g correlation.Gate) Option {
	return func(s *Service) {
		if g != nil {
			s.gate = g
		}
	}
}

// WithPredictor sets the productivity predictor, overriding WithModelPath.
func WithPredictor(p correlation.Predictor) Option {
	return func(s *Service) {
		if p != nil {
			s.predictor = p
		}
	}
}

// WithModelPath loads the productivity model from a YAML file on first use.
func WithModelPath(path string) Option {
	return func(s *Service) { s.modelPath = path }
}

// WithCatalog replaces the built-in career catalog.
func WithCatalog(c *career.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithCorrelationFilter sets the default thresholds of Correlations.
func WithCorrelationFilter(minAbsR, minConfidence float64) Option {
	return func(s *Service) {
		if minAbsR >= 0 && minAbsR <= 1 {
			s.minAbsR = minAbsR
		}
		if minConfidence >= 0 && minConfidence <= 100 {
			s.minConfidence = minConfidence
		}
	}
}

// WithCareerLimits sets the default and maximum career ranking sizes.
func WithCareerLimits(def, maxLimit int) Option {
	return func(s *Service) {
		if def > 0 && maxLimit >= def {
			s.careerLimit = def
			s.maxCareerLimit = maxLimit
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		minAbsR:        0.3,
		minConfidence:  model.DefaultConfidenceLevel,
		careerLimit:    career.DefaultLimit,
		maxCareerLimit: career.MaxLimit,
		now:            time.Now,
		logger:         nil, // replaced when the service starts
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger.Info(ctx, "starting analytics service...")

	if s.store == nil {
		s.store = repository.NewMemory(ctx, repository.WithLogger(s.logger.Named("repository")))
		s.ownsStore = true
		s.logger.Info(ctx, "using in-memory store")
	}
	if s.gate == nil {
		s.gate = correlation.NewCache()
	}
	if s.predictor == nil {
		s.predictor = scoring.NewLinearModel(s.modelPath,
			scoring.WithLogger(s.logger.Named("scoring")),
			scoring.WithYearLevels(s.yearLevel),
		)
	}
	if s.catalog == nil {
		s.catalog = career.Default()
	}

	s.orchestrator = correlation.NewOrchestrator(s.store,
		correlation.WithGate(s.gate),
		correlation.WithPredictor(s.predictor),
		correlation.WithLogger(s.logger.Named("correlation")),
		correlation.WithClock(s.now),
	)
	s.generator = recommend.NewGenerator(recommend.WithClock(s.now))
	s.ranker = career.NewRanker(s.catalog)

	s.started = true
	s.logger.Info(ctx, "analytics service started",
		logger.Float64("minAbsR", s.minAbsR),
		logger.Float64("minConfidence", s.minConfidence),
		logger.Int("careerLimit", s.careerLimit),
		logger.String("modelPath", s.modelPath),
	)
	return nil
}

// Stop shuts the service down, closing the store when Start created it.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.logger.Info(context.Background(), "stopping analytics service...")

	if s.ownsStore {
		_ = s.store.Close()
		s.store = nil
		s.ownsStore = false
	}
	s.started = false
	s.logger.Info(context.Background(), "analytics service stopped")
}

func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// yearLevel feeds the predictor the user's year level from their profile.
func (s *Service) yearLevel(ctx context.Context, userID string) string {
	p, err := s.store.Profile(ctx, userID)
	if err != nil {
		return ""
	}
	return p.YearLevel
}

// Submission is the outcome of SubmitAssessment.
type Submission struct {
	Assessment      model.Assessment
	Recommendations []model.Recommendation
	Correlation     correlation.Result
}

// SubmitAssessment stores a new assessment, refreshes the correlation set
// over the whole population and persists recommendations for it.
func (s *Service) SubmitAssessment(ctx context.Context, userID string, values metric.Values, gradeOptIn bool) (Submission, error) {
	if err := s.ready(); err != nil {
		return Submission{}, err
	}
	if strings.TrimSpace(userID) == "" {
		return Submission{}, fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}

	a := model.NewAssessment(userID, values, gradeOptIn, s.now())
	if err := s.store.SaveAssessment(ctx, a); err != nil {
		return Submission{}, fmt.Errorf("save assessment: %w", err)
	}
	metrics.RecordAssessmentSubmitted()

	res, err := s.Recompute(ctx)
	if err != nil {
		return Submission{}, err
	}

	evidence := res.Records
	if len(evidence) == 0 {
		// Too few rows this time; fall back to the last persisted set.
		if evidence, err = s.store.Correlations(ctx); err != nil {
			return Submission{}, fmt.Errorf("read correlations: %w", err)
		}
	}

	recs := s.generator.Generate(a, evidence)
	if err := s.store.SaveRecommendations(ctx, recs); err != nil {
		return Submission{}, fmt.Errorf("save recommendations: %w", err)
	}
	metrics.RecordRecommendationsGenerated(len(recs))
	s.logger.Info(ctx, "assessment processed",
		logger.String("assessment", a.ID),
		logger.String("outcome", string(res.Outcome)),
		logger.Int("recommendations", len(recs)),
	)
	return Submission{Assessment: a, Recommendations: recs, Correlation: res}, nil
}

// Recompute refreshes the correlation set over every stored assessment.
// Concurrent calls are serialized from the population load onwards, so a
// stale snapshot never replaces a set computed from a newer one.
func (s *Service) Recompute(ctx context.Context) (correlation.Result, error) {
	if err := s.ready(); err != nil {
		return correlation.Result{}, err
	}
	s.recomputeMu.Lock()
	defer s.recomputeMu.Unlock()

	population, err := s.store.Assessments(ctx)
	if err != nil {
		return correlation.Result{}, fmt.Errorf("load population: %w", err)
	}
	res, err := s.orchestrator.Recompute(ctx, population)
	if err != nil {
		s.logger.Error(ctx, "correlation recompute failed", logger.Error(err))
		return correlation.Result{}, err
	}

	s.mu.Lock()
	s.lastResult = &res
	s.mu.Unlock()
	return res, nil
}

// Correlations returns the stored correlations with |r| >= minAbsR and a
// confidence level of at least minConfidence. Negative thresholds select
// the configured defaults.
func (s *Service) Correlations(ctx context.Context, minAbsR, minConfidence float64) ([]model.CorrelationRecord, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if minAbsR < 0 {
		minAbsR = s.minAbsR
	}
	if minConfidence < 0 {
		minConfidence = s.minConfidence
	}
	records, err := s.store.Correlations(ctx)
	if err != nil {
		return nil, fmt.Errorf("read correlations: %w", err)
	}
	metrics.RecordCorrelationQuery()
	return model.FilterCorrelations(records, minAbsR, minConfidence), nil
}

// latestAssessment returns userID's newest assessment.
func (s *Service) latestAssessment(ctx context.Context, userID string) (model.Assessment, error) {
	mine, err := s.store.AssessmentsByUser(ctx, userID)
	if err != nil {
		return model.Assessment{}, fmt.Errorf("load assessments: %w", err)
	}
	a, ok := model.Latest(mine)
	if !ok {
		return model.Assessment{}, fmt.Errorf("%w: %s", ErrNoAssessment, userID)
	}
	return a, nil
}

// Recommendations lists the recommendations of one of userID's
// assessments, or of the newest one when assessmentID is empty, ordered
// by priority rank.
func (s *Service) Recommendations(ctx context.Context, userID, assessmentID string) ([]model.Recommendation, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var a model.Assessment
	var err error
	if assessmentID == "" {
		a, err = s.latestAssessment(ctx, userID)
	} else {
		a, err = s.store.Assessment(ctx, assessmentID)
		if errors.Is(err, repository.ErrNotFound) {
			err = fmt.Errorf("%w: %w", ErrNotFound, err)
		}
	}
	if err != nil {
		return nil, err
	}
	if a.UserID != userID {
		return nil, fmt.Errorf("assessment %s: %w", a.ID, ErrForbidden)
	}
	return s.store.Recommendations(ctx, a.ID)
}

// UpdateRecommendationStatus records the user's feedback on one of their
// recommendations.
func (s *Service) UpdateRecommendationStatus(ctx context.Context, userID, recommendationID, status string) (model.Recommendation, error) {
	if err := s.ready(); err != nil {
		return model.Recommendation{}, err
	}
	st, err := model.ParseFeedbackStatus(status)
	if err != nil {
		return model.Recommendation{}, err
	}

	rec, err := s.store.Recommendation(ctx, recommendationID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Recommendation{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		return model.Recommendation{}, err
	}
	if rec.UserID != userID {
		metrics.RecordErrorByComponent("service", "forbidden")
		return model.Recommendation{}, fmt.Errorf("recommendation %s: %w", rec.ID, ErrForbidden)
	}

	rec = rec.WithStatus(st, s.now())
	if err := s.store.UpdateRecommendation(ctx, rec); err != nil {
		return model.Recommendation{}, fmt.Errorf("update recommendation: %w", err)
	}
	metrics.RecordRecommendationStatus(string(st))
	return rec, nil
}

// SaveProfile stores the course, year level and career of a user.
func (s *Service) SaveProfile(ctx context.Context, p model.Profile) error {
	if err := s.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(p.UserID) == "" {
		return fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}
	return s.store.SaveProfile(ctx, p)
}

// Careers lists the catalog careers.
func (s *Service) Careers() []model.Career {
	s.mu.RLock()
	c := s.catalog
	s.mu.RUnlock()
	if c == nil {
		c = career.Default()
	}
	return c.Careers()
}

// CareerAligned ranks subjects for userID's newest assessment against a
// career. An empty careerName falls back to the career in the user's
// profile. sim holds simulated metric values by name; a limit that is not
// positive selects the configured default and larger ones are capped.
func (s *Service) CareerAligned(ctx context.Context, userID, careerName string, sim map[string]string, limit int) ([]model.CareerAlignedRecommendation, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	profile, err := s.store.Profile(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if careerName == "" {
		careerName = profile.Career
	}
	cr, ok := s.catalog.Career(careerName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", career.ErrUnknownCareer, careerName)
	}

	a, err := s.latestAssessment(ctx, userID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.careerLimit
	}
	limit = career.ClampLimit(limit, s.maxCareerLimit)
	overrides := career.ParseOverrides(sim)

	out := s.ranker.ForCareer(&a, cr, profile.Course, overrides, limit)
	metrics.RecordCareerRanking(cr.Slug(), len(overrides) > 0, len(out))
	return out, nil
}

// SkillSubjects lists the subjects a skill draws on, restricted to the
// field of userID's course. Users without a profile see every subject.
func (s *Service) SkillSubjects(ctx context.Context, userID, skill string) ([]career.SubjectLink, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if _, ok := s.catalog.Skill(skill); !ok {
		return nil, fmt.Errorf("%w: %q", career.ErrUnknownSkill, skill)
	}

	var course string
	if userID != "" {
		p, err := s.store.Profile(ctx, userID)
		switch {
		case err == nil:
			course = p.Course
		case !errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("load profile: %w", err)
		}
	}
	return s.catalog.SubjectsForSkill(skill, course), nil
}

// Ready reports whether the service is started and its store reachable.
func (s *Service) Ready(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	s.mu.RLock()
	store := s.store
	s.mu.RUnlock()
	if p, ok := store.(repository.Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("store unreachable: %w", err)
		}
	}
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	started, last, store := s.started, s.lastResult, s.store
	s.mu.RUnlock()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	metrics.UpdateSystemMemoryUsage(mem.HeapInuse)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	stats := map[string]interface{}{
		"started":        started,
		"minAbsR":        s.minAbsR,
		"minConfidence":  s.minConfidence,
		"careerLimit":    s.careerLimit,
		"maxCareerLimit": s.maxCareerLimit,
	}
	if !started {
		return stats
	}

	ctx := context.Background()
	if records, err := store.Correlations(ctx); err == nil {
		stats["correlations"] = len(records)
	}
	if all, err := store.Assessments(ctx); err == nil {
		stats["assessments"] = len(all)
	}
	if last != nil {
		stats["lastOutcome"] = string(last.Outcome)
		stats["lastPopulation"] = last.Population
		stats["lastEligible"] = last.Eligible
		stats["lastPredictorFailures"] = last.PredictorFailures
	}
	return stats
}
