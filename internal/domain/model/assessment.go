// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/okian/studytrack/internal/domain/metric"
)

// Assessment is one user's metric values at a point in time. It is never
// mutated once created; a resubmission is a new Assessment.
type Assessment struct {
	ID         string
	UserID     string
	Values     metric.Values
	GradeOptIn bool // final grade may be used as a model feature
	CreatedAt  time.Time
}

// NewAssessment stamps a fresh ID and creation time on values.
func NewAssessment(userID string, values metric.Values, gradeOptIn bool, now time.Time) Assessment {
	return Assessment{
		ID:         uuid.NewString(),
		UserID:     userID,
		Values:     values,
		GradeOptIn: gradeOptIn,
		CreatedAt:  now.UTC(),
	}
}

// Value returns the stored value for m.
func (a Assessment) Value(m metric.Metric) (float64, bool) { return a.Values.Get(m) }

// Latest returns the newest assessment of the slice, or false if empty.
func Latest(assessments []Assessment) (Assessment, bool) {
	if len(assessments) == 0 {
		return Assessment{}, false
	}
	latest := assessments[0]
	for _, a := range assessments[1:] {
		if a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	return latest, true
}

// NormalizedExport is a normalized copy of one assessment.
type NormalizedExport struct {
	AssessmentID string
	UserID       string
	Values       [metric.Count]float64
}

// Profile carries the user attributes the analytics need. Identity and
// profile editing live outside this module.
type Profile struct {
	UserID    string
	Course    string
	YearLevel string
	Career    string
}
