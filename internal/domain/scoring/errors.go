package scoring

import (
	"errors"

	"github.com/okian/studytrack/internal/domain/correlation"
)

// Sentinel error kinds for this package.
var (
	// ErrModelUnavailable is returned when no model file could be loaded.
	// It is the correlation package's sentinel so the orchestrator treats
	// it as "no score" without counting a failure.
	ErrModelUnavailable = correlation.ErrModelUnavailable
	ErrPrediction       = errors.New("productivity prediction failed")
	ErrInvalidModel     = errors.New("invalid productivity model")
)
