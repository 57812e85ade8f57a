package correlation

import (
	"context"

	"github.com/okian/studytrack/internal/domain/model"
)

// Store persists the correlation set.
type Store interface {
	// ReplaceAll swaps the whole set. Readers observe either the previous
	// or the new set, never a mix.
	ReplaceAll(ctx context.Context, records []model.CorrelationRecord) error
	Correlations(ctx context.Context) ([]model.CorrelationRecord, error)
}

// ExportWriter is implemented by stores that keep normalized copies of
// assessments.
type ExportWriter interface {
	WriteExports(ctx context.Context, exports []model.NormalizedExport) error
}

// Predictor derives the predicted productivity score of an assessment.
// An error means "no score for this row".
type Predictor interface {
	Predict(ctx context.Context, a model.Assessment) (float64, error)
}

// PredictorFunc adapts a function to Predictor.
type PredictorFunc func(ctx context.Context, a model.Assessment) (float64, error)

// Predict calls f.
func (f PredictorFunc) Predict(ctx context.Context, a model.Assessment) (float64, error) {
	return f(ctx, a)
}
