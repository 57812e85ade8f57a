// Package postgres implements the analytics store on PostgreSQL with pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okian/studytrack/internal/adapters/repository"
	"github.com/okian/studytrack/internal/domain/metric"
	"github.com/okian/studytrack/internal/domain/model"
	"github.com/okian/studytrack/pkg/logger"
	"github.com/okian/studytrack/pkg/metrics"
)

const storeLabel = "postgres"

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxConns caps the pool size.
func WithMaxConns(n int32) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxConns = n
		}
	}
}

// Store implements repository.Store on a pgx connection pool.
type Store struct {
	pool     *pgxpool.Pool
	log      logger.Logger
	maxConns int32

	mu     sync.RWMutex
	closed bool
}

// Open connects to dsn, verifies the connection and applies the schema.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	s := &Store{log: logger.Nop(), maxConns: 10}
	for _, opt := range opts {
		opt(s)
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to parse database URL: %w", err)
	}
	cfg.MaxConns = s.maxConns
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute
	cfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: failed to apply schema: %w", err)
	}

	s.pool = pool
	s.log.Info(ctx, "postgres store ready", logger.Int("max_conns", int(s.maxConns)))
	return s, nil
}

// Close closes the pool. Further calls are no-ops.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		s.pool.Close()
	}
	return nil
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrConnectionClosed
	}
	return s.pool.Ping(ctx)
}

// withTx runs fn in a read-committed transaction, committing when fn
// returns nil and rolling back otherwise.
func (s *Store) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTransactionFailed, err)
	}
	return nil
}

func observe(op string, start time.Time) {
	metrics.RecordRepositoryQueryLatency(storeLabel, op, float64(time.Since(start).Microseconds())/1000)
}

// ReplaceAll deletes the correlation set and copies records in within one
// transaction, so concurrent readers see either set in full.
func (s *Store) ReplaceAll(ctx context.Context, records []model.CorrelationRecord) error {
	defer observe("replace_all", time.Now())

	err := s.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM correlations`); err != nil {
			return err
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"correlations"},
			[]string{"metric", "target", "coefficient", "sample_size", "ci_low", "ci_high", "confidence_level", "p_value", "computed_at"},
			pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
				r := records[i]
				return []any{r.Metric.String(), r.Target.String(), r.Coefficient, r.SampleSize,
					r.CILow, r.CIHigh, r.ConfidenceLevel, r.PValue, r.ComputedAt}, nil
			}),
		)
		return err
	})
	if err != nil {
		metrics.RecordErrorByComponent("postgres", "replace_all")
		return fmt.Errorf("postgres: replace correlations: %w", err)
	}
	metrics.UpdateRepositoryRecords(storeLabel, "correlations", len(records))
	return nil
}

// Correlations reads the current correlation set.
func (s *Store) Correlations(ctx context.Context) ([]model.CorrelationRecord, error) {
	defer observe("correlations", time.Now())

	rows, err := s.pool.Query(ctx, `
		SELECT metric, target, coefficient, sample_size, ci_low, ci_high, confidence_level, p_value, computed_at
		FROM correlations
		ORDER BY target, metric`)
	if err != nil {
		return nil, fmt.Errorf("postgres: query correlations: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.CorrelationRecord, error) {
		var (
			r            model.CorrelationRecord
			mName, tName string
		)
		if err := row.Scan(&mName, &tName, &r.Coefficient, &r.SampleSize, &r.CILow, &r.CIHigh,
			&r.ConfidenceLevel, &r.PValue, &r.ComputedAt); err != nil {
			return r, err
		}
		m, ok := metric.Parse(mName)
		if !ok {
			return r, fmt.Errorf("unknown metric %q", mName)
		}
		t, ok := model.ParseTarget(tName)
		if !ok {
			return r, fmt.Errorf("unknown target %q", tName)
		}
		r.Metric, r.Target, r.ComputedAt = m, t, r.ComputedAt.UTC()
		return r, nil
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: scan correlations: %w", err)
	}
	return out, nil
}

// WriteExports upserts normalized copies by assessment ID in one batch.
func (s *Store) WriteExports(ctx context.Context, exports []model.NormalizedExport) error {
	if len(exports) == 0 {
		return nil
	}
	defer observe("write_exports", time.Now())

	batch := &pgx.Batch{}
	for _, e := range exports {
		batch.Queue(`
			INSERT INTO normalized_exports (assessment_id, user_id, vals, exported_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (assessment_id) DO UPDATE
			SET user_id = EXCLUDED.user_id, vals = EXCLUDED.vals, exported_at = EXCLUDED.exported_at`,
			e.AssessmentID, e.UserID, e.Values[:])
	}
	br := s.pool.SendBatch(ctx, batch)
	for range exports {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("postgres: write exports: %w", err)
		}
	}
	return br.Close()
}

// Exports reads every normalized copy.
func (s *Store) Exports(ctx context.Context) (map[string]model.NormalizedExport, error) {
	rows, err := s.pool.Query(ctx, `SELECT assessment_id, user_id, vals FROM normalized_exports`)
	if err != nil {
		return nil, fmt.Errorf("postgres: query exports: %w", err)
	}
	defer rows.Close()

	out := make(map[string]model.NormalizedExport)
	for rows.Next() {
		var (
			e    model.NormalizedExport
			vals []float64
		)
		if err := rows.Scan(&e.AssessmentID, &e.UserID, &vals); err != nil {
			return nil, fmt.Errorf("postgres: scan export: %w", err)
		}
		copy(e.Values[:], vals)
		out[e.AssessmentID] = e
	}
	return out, rows.Err()
}

// SaveAssessment inserts a.
func (s *Store) SaveAssessment(ctx context.Context, a model.Assessment) error {
	defer observe("save_assessment", time.Now())

	_, err := s.pool.Exec(ctx, `
		INSERT INTO assessments (id, user_id, vals, grade_opt_in, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.UserID, a.Values.Map(), a.GradeOptIn, a.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("assessment %s: %w", a.ID, repository.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("postgres: insert assessment: %w", err)
	}
	return nil
}

const assessmentColumns = `id, user_id, vals, grade_opt_in, created_at`

func scanAssessment(row pgx.CollectableRow) (model.Assessment, error) {
	var (
		a    model.Assessment
		vals map[string]float64
	)
	if err := row.Scan(&a.ID, &a.UserID, &vals, &a.GradeOptIn, &a.CreatedAt); err != nil {
		return a, err
	}
	a.Values = metric.FromMap(vals)
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}

// Assessment reads one assessment.
func (s *Store) Assessment(ctx context.Context, id string) (model.Assessment, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+assessmentColumns+` FROM assessments WHERE id = $1`, id)
	if err != nil {
		return model.Assessment{}, fmt.Errorf("postgres: query assessment: %w", err)
	}
	a, err := pgx.CollectExactlyOneRow(rows, scanAssessment)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Assessment{}, fmt.Errorf("assessment %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return model.Assessment{}, fmt.Errorf("postgres: scan assessment: %w", err)
	}
	return a, nil
}

// Assessments reads the whole population ordered by creation time.
func (s *Store) Assessments(ctx context.Context) ([]model.Assessment, error) {
	defer observe("assessments", time.Now())
	return s.queryAssessments(ctx, `SELECT `+assessmentColumns+` FROM assessments ORDER BY created_at, id`)
}

// AssessmentsByUser reads userID's assessments ordered by creation time.
func (s *Store) AssessmentsByUser(ctx context.Context, userID string) ([]model.Assessment, error) {
	return s.queryAssessments(ctx, `SELECT `+assessmentColumns+` FROM assessments WHERE user_id = $1 ORDER BY created_at, id`, userID)
}

func (s *Store) queryAssessments(ctx context.Context, sql string, args ...any) ([]model.Assessment, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: query assessments: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanAssessment)
	if err != nil {
		return nil, fmt.Errorf("postgres: scan assessments: %w", err)
	}
	return out, nil
}

// SaveRecommendations copies recs in within one transaction.
func (s *Store) SaveRecommendations(ctx context.Context, recs []model.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"recommendations"},
			[]string{"id", "assessment_id", "user_id", "text", "supporting_metric", "strength", "priority_rank", "status", "status_updated_at", "created_at"},
			pgx.CopyFromSlice(len(recs), func(i int) ([]any, error) {
				r := recs[i]
				return []any{r.ID, r.AssessmentID, r.UserID, r.Text, r.SupportingMetric.String(),
					r.Strength, r.PriorityRank, string(r.Status), r.StatusUpdatedAt, r.CreatedAt}, nil
			}),
		)
		return err
	})
	if isUniqueViolation(err) {
		return fmt.Errorf("recommendations: %w", repository.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("postgres: insert recommendations: %w", err)
	}
	return nil
}

const recommendationColumns = `id, assessment_id, user_id, text, supporting_metric, strength, priority_rank, status, status_updated_at, created_at`

func scanRecommendation(row pgx.CollectableRow) (model.Recommendation, error) {
	var (
		r             model.Recommendation
		mName, status string
	)
	if err := row.Scan(&r.ID, &r.AssessmentID, &r.UserID, &r.Text, &mName, &r.Strength,
		&r.PriorityRank, &status, &r.StatusUpdatedAt, &r.CreatedAt); err != nil {
		return r, err
	}
	m, ok := metric.Parse(mName)
	if !ok {
		return r, fmt.Errorf("unknown metric %q", mName)
	}
	r.SupportingMetric = m
	r.Status = model.Status(status)
	r.CreatedAt = r.CreatedAt.UTC()
	if r.StatusUpdatedAt != nil {
		at := r.StatusUpdatedAt.UTC()
		r.StatusUpdatedAt = &at
	}
	return r, nil
}

// Recommendation reads one recommendation.
func (s *Store) Recommendation(ctx context.Context, id string) (model.Recommendation, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+recommendationColumns+` FROM recommendations WHERE id = $1`, id)
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("postgres: query recommendation: %w", err)
	}
	r, err := pgx.CollectExactlyOneRow(rows, scanRecommendation)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Recommendation{}, fmt.Errorf("recommendation %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("postgres: scan recommendation: %w", err)
	}
	return r, nil
}

// Recommendations lists the recommendations of assessmentID by priority rank.
func (s *Store) Recommendations(ctx context.Context, assessmentID string) ([]model.Recommendation, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+recommendationColumns+` FROM recommendations WHERE assessment_id = $1 ORDER BY priority_rank`,
		assessmentID)
	if err != nil {
		return nil, fmt.Errorf("postgres: query recommendations: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanRecommendation)
	if err != nil {
		return nil, fmt.Errorf("postgres: scan recommendations: %w", err)
	}
	return out, nil
}

// UpdateRecommendation stores the status fields of rec.
func (s *Store) UpdateRecommendation(ctx context.Context, rec model.Recommendation) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE recommendations SET status = $2, status_updated_at = $3 WHERE id = $1`,
		rec.ID, string(rec.Status), rec.StatusUpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres: update recommendation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recommendation %s: %w", rec.ID, repository.ErrNotFound)
	}
	return nil
}

// SaveProfile upserts p.
func (s *Store) SaveProfile(ctx context.Context, p model.Profile) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO profiles (user_id, course, year_level, career)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET course = EXCLUDED.course, year_level = EXCLUDED.year_level, career = EXCLUDED.career`,
		p.UserID, p.Course, p.YearLevel, p.Career)
	if err != nil {
		return fmt.Errorf("postgres: upsert profile: %w", err)
	}
	return nil
}

// Profile reads a user's profile.
func (s *Store) Profile(ctx context.Context, userID string) (model.Profile, error) {
	p := model.Profile{UserID: userID}
	err := s.pool.QueryRow(ctx,
		`SELECT course, year_level, career FROM profiles WHERE user_id = $1`, userID,
	).Scan(&p.Course, &p.YearLevel, &p.Career)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Profile{}, fmt.Errorf("profile %s: %w", userID, repository.ErrNotFound)
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("postgres: query profile: %w", err)
	}
	return p, nil
}

var _ repository.Store = (*Store)(nil)
