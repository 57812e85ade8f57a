package scoring

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"sort"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/okian/studytrack/internal/domain/model"
	"github.com/okian/studytrack/pkg/logger"
)

// Coefficients is a trained linear regression.
//
// Imputed holds the per-feature training means used when a feature is
// missing from a row; a missing feature without a mean contributes zero.
type Coefficients struct {
	Intercept float64            `koanf:"intercept"`
	Weights   map[string]float64 `koanf:"coefficients"`
	Imputed   map[string]float64 `koanf:"imputed"`
}

// Validate checks that every named feature is known.
func (c Coefficients) Validate() error {
	var unknown []string
	for name := range c.Weights {
		if !KnownFeature(name) {
			unknown = append(unknown, name)
		}
	}
	for name := range c.Imputed {
		if !KnownFeature(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: unknown features %v", ErrInvalidModel, unknown)
	}
	if math.IsNaN(c.Intercept) || math.IsInf(c.Intercept, 0) {
		return fmt.Errorf("%w: intercept is not finite", ErrInvalidModel)
	}
	return nil
}

// Evaluate applies the regression to a feature row.
func (c Coefficients) Evaluate(features map[string]float64) float64 {
	y := c.Intercept
	for name, w := range c.Weights {
		v, ok := features[name]
		if !ok {
			v = c.Imputed[name]
		}
		y += w * v
	}
	return y
}

// YearLevelFunc returns the year level of a user, or "" when unknown.
type YearLevelFunc func(ctx context.Context, userID string) string

// Option applies a configuration option to the LinearModel.
type Option func(*LinearModel)

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(m *LinearModel) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithYearLevels resolves the user's year level so the age feature can be
// derived from it.
func WithYearLevels(f YearLevelFunc) Option {
	return func(m *LinearModel) { m.yearLevel = f }
}

// WithCoefficients installs an in-memory model instead of reading a file.
func WithCoefficients(c Coefficients) Option {
	return func(m *LinearModel) {
		m.preset = &c
	}
}

// LinearModel predicts productivity scores. The model file is read at
// most once, on the first Predict call.
type LinearModel struct {
	path      string
	preset    *Coefficients
	yearLevel YearLevelFunc
	logger    logger.Logger

	once    sync.Once
	coef    *Coefficients
	loadErr error
}

// NewLinearModel creates a predictor reading its coefficients from the
// YAML file at path.
func NewLinearModel(path string, opts ...Option) *LinearModel {
	m := &LinearModel{
		path:   path,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *LinearModel) load(ctx context.Context) {
	if m.preset != nil {
		if err := m.preset.Validate(); err != nil {
			m.loadErr = fmt.Errorf("%w: %w", ErrModelUnavailable, err)
			m.logger.Error(ctx, "productivity model rejected", logger.Error(err))
			return
		}
		m.coef = m.preset
		return
	}
	if m.path == "" {
		m.loadErr = fmt.Errorf("%w: no model path configured", ErrModelUnavailable)
		m.logger.Warn(ctx, "productivity model not configured")
		return
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(m.path), yaml.Parser()); err != nil {
		m.loadErr = fmt.Errorf("%w: %w", ErrModelUnavailable, err)
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Warn(ctx, "productivity model not found", logger.String("path", m.path))
		} else {
			m.logger.Error(ctx, "productivity model load failed", logger.String("path", m.path), logger.Error(err))
		}
		return
	}
	var c Coefficients
	if err := k.UnmarshalWithConf("", &c, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		m.loadErr = fmt.Errorf("%w: %w", ErrModelUnavailable, err)
		m.logger.Error(ctx, "productivity model decode failed", logger.String("path", m.path), logger.Error(err))
		return
	}
	if err := c.Validate(); err != nil {
		m.loadErr = fmt.Errorf("%w: %w", ErrModelUnavailable, err)
		m.logger.Error(ctx, "productivity model rejected", logger.String("path", m.path), logger.Error(err))
		return
	}
	m.coef = &c
	m.logger.Info(ctx, "productivity model loaded",
		logger.String("path", m.path),
		logger.Int("features", len(c.Weights)),
	)
}

// Available loads the model if needed and reports whether it is usable.
func (m *LinearModel) Available(ctx context.Context) bool {
	m.once.Do(func() { m.load(ctx) })
	return m.coef != nil
}

// Predict returns the predicted productivity score rounded to two decimals.
func (m *LinearModel) Predict(ctx context.Context, a model.Assessment) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPrediction, err)
	}
	if !m.Available(ctx) {
		return 0, m.loadErr
	}

	age := float64(defaultAge)
	if m.yearLevel != nil {
		age = AgeForYearLevel(m.yearLevel(ctx, a.UserID))
	}
	y := m.coef.Evaluate(Features(a, age))
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("%w: non-finite prediction for %s", ErrPrediction, a.ID)
	}
	return math.Round(y*100) / 100, nil
}
