package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/studytrack/internal/domain/model"
	"github.com/okian/studytrack/pkg/logger"
	"github.com/okian/studytrack/pkg/metrics"
)

const storeLabel = "memory"

// Memory is an in-process Store.
//
// The correlation set lives behind an atomic pointer: ReplaceAll publishes
// a new slice in one step, so readers never see a partially replaced set.
// Everything else is guarded by mu.
type Memory struct {
	mu              sync.RWMutex
	assessments     map[string]model.Assessment
	byUser          map[string][]string // assessment IDs in insert order
	exports         map[string]model.NormalizedExport
	recommendations map[string]model.Recommendation
	byAssessment    map[string][]string // recommendation IDs
	profiles        map[string]model.Profile

	correlations atomic.Pointer[[]model.CorrelationRecord]

	log                   logger.Logger
	metricsUpdateInterval time.Duration

	wg       sync.WaitGroup
	stopChan chan struct{}
	closed   atomic.Bool
}

// NewMemory constructs an empty store and starts its metrics updater,
// which runs until ctx is done or Close is called.
func NewMemory(ctx context.Context, opts ...Option) *Memory {
	s := &Memory{
		assessments:           make(map[string]model.Assessment),
		byUser:                make(map[string][]string),
		exports:               make(map[string]model.NormalizedExport),
		recommendations:       make(map[string]model.Recommendation),
		byAssessment:          make(map[string][]string),
		profiles:              make(map[string]model.Profile),
		log:                   logger.Nop(),
		metricsUpdateInterval: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	empty := []model.CorrelationRecord{}
	s.correlations.Store(&empty)

	s.stopChan = make(chan struct{})
	s.startMetricsUpdater(ctx)
	return s
}

// Ping reports ErrClosed once the store has been closed.
func (s *Memory) Ping(context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}
	return nil
}

// Close stops the metrics updater. Further calls are no-ops.
func (s *Memory) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		close(s.stopChan)
	}
	s.wg.Wait()
	return nil
}

func (s *Memory) startMetricsUpdater(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.metricsUpdateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.updateMetrics()
			}
		}
	}()
}

func (s *Memory) updateMetrics() {
	s.mu.RLock()
	assessments, recs, exports := len(s.assessments), len(s.recommendations), len(s.exports)
	s.mu.RUnlock()

	metrics.UpdateRepositoryRecords(storeLabel, "assessments", assessments)
	metrics.UpdateRepositoryRecords(storeLabel, "recommendations", recs)
	metrics.UpdateRepositoryRecords(storeLabel, "exports", exports)
	metrics.UpdateRepositoryRecords(storeLabel, "correlations", len(*s.correlations.Load()))
}

func observe(op string, start time.Time) {
	metrics.RecordRepositoryQueryLatency(storeLabel, op, float64(time.Since(start).Microseconds())/1000)
}

// ReplaceAll publishes records as the new correlation set.
func (s *Memory) ReplaceAll(ctx context.Context, records []model.CorrelationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer observe("replace_all", time.Now())

	next := append([]model.CorrelationRecord(nil), records...)
	prev := s.correlations.Swap(&next)
	s.log.Debug(ctx, "correlation set replaced",
		logger.Int("previous", len(*prev)),
		logger.Int("current", len(next)))
	return nil
}

// Correlations returns a copy of the current correlation set.
func (s *Memory) Correlations(ctx context.Context) ([]model.CorrelationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer observe("correlations", time.Now())

	return append([]model.CorrelationRecord(nil), *s.correlations.Load()...), nil
}

// WriteExports upserts normalized copies by assessment ID.
func (s *Memory) WriteExports(ctx context.Context, exports []model.NormalizedExport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range exports {
		s.exports[e.AssessmentID] = e
	}
	return nil
}

// Exports returns a copy of the normalized copies.
func (s *Memory) Exports(ctx context.Context) (map[string]model.NormalizedExport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]model.NormalizedExport, len(s.exports))
	for k, v := range s.exports {
		out[k] = v
	}
	return out, nil
}

// SaveAssessment inserts a.
func (s *Memory) SaveAssessment(ctx context.Context, a model.Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assessments[a.ID]; ok {
		s.log.Debug(ctx, "duplicate assessment rejected", logger.String("assessment_id", a.ID))
		return fmt.Errorf("assessment %s: %w", a.ID, ErrDuplicate)
	}
	s.assessments[a.ID] = a
	s.byUser[a.UserID] = append(s.byUser[a.UserID], a.ID)
	return nil
}

// Assessment returns the assessment with id.
func (s *Memory) Assessment(ctx context.Context, id string) (model.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return model.Assessment{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assessments[id]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Assessment{}, fmt.Errorf("assessment %s: %w", id, ErrNotFound)
	}
	return a, nil
}

// Assessments returns every assessment ordered by creation time, then ID.
func (s *Memory) Assessments(ctx context.Context) ([]model.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer observe("assessments", time.Now())

	s.mu.RLock()
	out := make([]model.Assessment, 0, len(s.assessments))
	for _, a := range s.assessments {
		out = append(out, a)
	}
	s.mu.RUnlock()
	sortAssessments(out)
	return out, nil
}

// AssessmentsByUser returns userID's assessments ordered by creation time.
func (s *Memory) AssessmentsByUser(ctx context.Context, userID string) ([]model.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	ids := s.byUser[userID]
	out := make([]model.Assessment, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.assessments[id])
	}
	s.mu.RUnlock()
	sortAssessments(out)
	return out, nil
}

func sortAssessments(as []model.Assessment) {
	sort.SliceStable(as, func(i, j int) bool {
		if !as[i].CreatedAt.Equal(as[j].CreatedAt) {
			return as[i].CreatedAt.Before(as[j].CreatedAt)
		}
		return as[i].ID < as[j].ID
	})
}

// SaveRecommendations inserts recs. The batch is rejected as a whole when
// any ID already exists.
func (s *Memory) SaveRecommendations(ctx context.Context, recs []model.Recommendation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range recs {
		if _, ok := s.recommendations[r.ID]; ok {
			return fmt.Errorf("recommendation %s: %w", r.ID, ErrDuplicate)
		}
	}
	for _, r := range recs {
		s.recommendations[r.ID] = cloneRecommendation(r)
		s.byAssessment[r.AssessmentID] = append(s.byAssessment[r.AssessmentID], r.ID)
	}
	return nil
}

// Recommendation returns the recommendation with id.
func (s *Memory) Recommendation(ctx context.Context, id string) (model.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return model.Recommendation{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recommendations[id]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Recommendation{}, fmt.Errorf("recommendation %s: %w", id, ErrNotFound)
	}
	return cloneRecommendation(r), nil
}

// Recommendations lists the recommendations of assessmentID by priority rank.
func (s *Memory) Recommendations(ctx context.Context, assessmentID string) ([]model.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	ids := s.byAssessment[assessmentID]
	out := make([]model.Recommendation, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneRecommendation(s.recommendations[id]))
	}
	s.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].PriorityRank < out[j].PriorityRank })
	return out, nil
}

// UpdateRecommendation stores the status fields of rec.
func (s *Memory) UpdateRecommendation(ctx context.Context, rec model.Recommendation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.recommendations[rec.ID]
	if !ok {
		return fmt.Errorf("recommendation %s: %w", rec.ID, ErrNotFound)
	}
	cur.Status = rec.Status
	cur.StatusUpdatedAt = cloneTime(rec.StatusUpdatedAt)
	s.recommendations[rec.ID] = cur
	return nil
}

// SaveProfile upserts p.
func (s *Memory) SaveProfile(ctx context.Context, p model.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.profiles[p.UserID] = p
	s.mu.Unlock()
	return nil
}

// Profile returns userID's profile.
func (s *Memory) Profile(ctx context.Context, userID string) (model.Profile, error) {
	if err := ctx.Err(); err != nil {
		return model.Profile{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return model.Profile{}, fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}
	return p, nil
}

func cloneRecommendation(r model.Recommendation) model.Recommendation {
	r.StatusUpdatedAt = cloneTime(r.StatusUpdatedAt)
	return r
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

var _ Store = (*Memory)(nil)
