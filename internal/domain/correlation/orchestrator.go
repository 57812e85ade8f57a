package correlation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/studytrack/internal/domain/metric"
	"github.com/okian/studytrack/internal/domain/model"
	"github.com/okian/studytrack/internal/domain/stats"
	"github.com/okian/studytrack/pkg/logger"
	"github.com/okian/studytrack/pkg/metrics"
)

// ErrModelUnavailable may be returned by a Predictor that has no model
// loaded. Rows are then silently left without a predicted score.
var ErrModelUnavailable = errors.New("productivity model unavailable")

// Outcome describes what a Recompute call did.
type Outcome string

// Recompute outcomes.
const (
	OutcomeRecomputed   Outcome = metrics.OutcomeRecomputed
	OutcomeCached       Outcome = metrics.OutcomeCached
	OutcomeInsufficient Outcome = metrics.OutcomeInsufficient
)

// Result is the correlation set after a Recompute call.
type Result struct {
	Records           []model.CorrelationRecord
	Outcome           Outcome
	Population        int
	Eligible          int
	PredictorFailures int
}

// Option applies a configuration option to the Orchestrator.
type Option func(*Orchestrator)

// WithGate replaces the default in-process Cache.
func WithGate(g Gate) Option {
	return func(o *Orchestrator) {
		if g != nil {
			o.gate = g
		}
	}
}

// WithPredictor sets the productivity predictor. Without one, no row has a
// predicted score.
func WithPredictor(p Predictor) Option {
	return func(o *Orchestrator) { o.predictor = p }
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock overrides the time source used for ComputedAt.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

// Orchestrator rebuilds and persists the correlation matrix.
type Orchestrator struct {
	mu sync.Mutex // serializes gate check, compute and swap

	store     Store
	gate      Gate
	predictor Predictor
	logger    logger.Logger
	now       func() time.Time
}

// NewOrchestrator creates an orchestrator persisting into store.
func NewOrchestrator(store Store, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:  store,
		gate:   NewCache(),
		logger: logger.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type row struct {
	assessment model.Assessment
	predicted  float64
	hasPred    bool
}

func (r row) target(t model.Target) (float64, bool) {
	switch t {
	case model.TargetPredictedProductivity:
		return r.predicted, r.hasPred
	case model.TargetFinalGrade:
		return r.assessment.Value(metric.FinalGrade)
	case model.TargetAssignmentsCompleted:
		return r.assessment.Value(metric.AssignmentsCompletedPerWeek)
	default:
		return 0, false
	}
}

func (r row) eligible() bool {
	for _, t := range model.Targets() {
		if _, ok := r.target(t); ok {
			return true
		}
	}
	return false
}

// Recompute rebuilds the correlation set for population unless the gate
// reports the population unchanged, in which case the persisted set is
// returned as is. Fewer than stats.MinSamples eligible rows leave the
// persisted set untouched and yield an empty result.
func (o *Orchestrator) Recompute(ctx context.Context, population []model.Assessment) (Result, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	res := Result{Population: len(population)}
	sig := SignatureOf(population)
	if !o.gate.ShouldRecompute(ctx, sig) {
		records, err := o.store.Correlations(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("read correlations: %w", err)
		}
		res.Records = records
		res.Outcome = OutcomeCached
		metrics.RecordRecompute(metrics.OutcomeCached)
		return res, nil
	}

	start := time.Now()
	rows := make([]row, 0, len(population))
	for _, a := range population {
		r := row{assessment: a}
		r.predicted, r.hasPred = o.predict(ctx, a, &res)
		if r.eligible() {
			rows = append(rows, r)
		}
	}
	res.Eligible = len(rows)
	metrics.UpdatePopulationSize(res.Population)
	metrics.UpdateEligibleRows(res.Eligible)

	if len(rows) < stats.MinSamples {
		res.Outcome = OutcomeInsufficient
		res.Records = []model.CorrelationRecord{}
		metrics.RecordRecompute(metrics.OutcomeInsufficient)
		o.logger.Info(ctx, "not enough eligible assessments for correlations",
			logger.Int("population", res.Population),
			logger.Int("eligible", res.Eligible),
		)
		return res, nil
	}

	records := o.compute(rows)
	if err := o.store.ReplaceAll(ctx, records); err != nil {
		// Next call must retry instead of trusting the recorded signature.
		o.gate.Invalidate(ctx)
		metrics.RecordRecompute(metrics.OutcomeFailed)
		metrics.RecordErrorByComponent("correlation", "replace_all")
		return Result{}, fmt.Errorf("replace correlations: %w", err)
	}
	o.export(ctx, population)

	res.Records = records
	res.Outcome = OutcomeRecomputed
	took := time.Since(start)
	metrics.RecordRecompute(metrics.OutcomeRecomputed)
	metrics.RecordRecomputeDuration(float64(took.Microseconds()) / 1000)
	metrics.UpdateCorrelationSetSize(len(records))
	o.logger.Info(ctx, "correlations recomputed",
		logger.Int("population", res.Population),
		logger.Int("eligible", res.Eligible),
		logger.Int("records", len(records)),
		logger.Int("predictor_failures", res.PredictorFailures),
		logger.Duration("took", took),
	)
	return res, nil
}

// predict never lets a predictor failure escape, panics included.
func (o *Orchestrator) predict(ctx context.Context, a model.Assessment, res *Result) (score float64, ok bool) {
	if o.predictor == nil {
		return 0, false
	}
	defer func() {
		if p := recover(); p != nil {
			score, ok = 0, false
			res.PredictorFailures++
			metrics.RecordPredictorFailure()
			o.logger.Warn(ctx, "productivity predictor panicked",
				logger.String("assessment", a.ID),
				logger.Any("panic", p),
			)
		}
	}()

	score, err := o.predictor.Predict(ctx, a)
	if err != nil {
		if !errors.Is(err, ErrModelUnavailable) {
			res.PredictorFailures++
			metrics.RecordPredictorFailure()
			o.logger.Warn(ctx, "productivity prediction failed",
				logger.String("assessment", a.ID),
				logger.Error(err),
			)
		}
		return 0, false
	}
	return score, true
}

func (o *Orchestrator) compute(rows []row) []model.CorrelationRecord {
	computedAt := o.now().UTC()
	tracked := metric.Tracked()
	records := make([]model.CorrelationRecord, 0, len(tracked)*len(model.Targets()))
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))

	for _, t := range model.Targets() {
		for _, m := range tracked {
			xs, ys = xs[:0], ys[:0]
			for _, r := range rows {
				x, okX := r.assessment.Value(m)
				y, okY := r.target(t)
				if okX && okY {
					xs = append(xs, x)
					ys = append(ys, y)
				}
			}
			st, ok := stats.Pearson(xs, ys)
			if !ok {
				continue
			}
			records = append(records, model.CorrelationRecord{
				Metric:          m,
				Target:          t,
				Coefficient:     st.Coefficient,
				SampleSize:      st.SampleSize,
				CILow:           st.CILow,
				CIHigh:          st.CIHigh,
				ConfidenceLevel: st.ConfidenceLevel,
				PValue:          st.PValue,
				ComputedAt:      computedAt,
			})
		}
	}
	return records
}

// export hands normalized copies to stores that keep them. A failure here
// does not invalidate the freshly swapped correlation set.
func (o *Orchestrator) export(ctx context.Context, population []model.Assessment) {
	w, ok := o.store.(ExportWriter)
	if !ok {
		return
	}
	exports := make([]model.NormalizedExport, len(population))
	for i, a := range population {
		exports[i] = model.NormalizedExport{
			AssessmentID: a.ID,
			UserID:       a.UserID,
			Values:       metric.NormalizeAll(a.Values),
		}
	}
	if err := w.WriteExports(ctx, exports); err != nil {
		metrics.RecordErrorByComponent("correlation", "export")
		o.logger.Error(ctx, "writing normalized exports failed", logger.Error(err))
		return
	}
	metrics.RecordNormalizedExports(len(exports))
}
