// Package repository defines the analytics store interface and an in-memory
// implementation.
package repository

import (
	"context"

	"github.com/okian/studytrack/internal/domain/correlation"
	"github.com/okian/studytrack/internal/domain/model"
)

// Store provides read/write access to everything the analytics service keeps.
type Store interface {
	correlation.Store
	correlation.ExportWriter

	// SaveAssessment inserts a new assessment. Assessments are immutable, so
	// an existing ID yields ErrDuplicate.
	SaveAssessment(ctx context.Context, a model.Assessment) error
	// Assessment returns one assessment or ErrNotFound.
	Assessment(ctx context.Context, id string) (model.Assessment, error)
	// Assessments returns the whole population ordered by creation time.
	Assessments(ctx context.Context) ([]model.Assessment, error)
	// AssessmentsByUser returns one user's assessments ordered by creation time.
	AssessmentsByUser(ctx context.Context, userID string) ([]model.Assessment, error)

	// Exports returns the normalized copies keyed by assessment ID.
	Exports(ctx context.Context) (map[string]model.NormalizedExport, error)

	// SaveRecommendations inserts a generated batch.
	SaveRecommendations(ctx context.Context, recs []model.Recommendation) error
	// Recommendation returns one recommendation or ErrNotFound.
	Recommendation(ctx context.Context, id string) (model.Recommendation, error)
	// Recommendations lists the recommendations of one assessment ordered by
	// priority rank.
	Recommendations(ctx context.Context, assessmentID string) ([]model.Recommendation, error)
	// UpdateRecommendation overwrites status fields of an existing
	// recommendation, or returns ErrNotFound.
	UpdateRecommendation(ctx context.Context, rec model.Recommendation) error

	// SaveProfile upserts a profile.
	SaveProfile(ctx context.Context, p model.Profile) error
	// Profile returns a user's profile or ErrNotFound.
	Profile(ctx context.Context, userID string) (model.Profile, error)

	Close() error
}

// Pinger is implemented by stores that can report their reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
