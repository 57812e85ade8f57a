package model

import (
	"fmt"
	"time"

	"github.com/okian/studytrack/internal/domain/metric"
)

// Status tracks what the user did with a recommendation.
type Status string

// Recommendation statuses.
const (
	StatusPending       Status = "pending"
	StatusAttempted     Status = "attempted"
	StatusCompleted     Status = "completed"
	StatusNotApplicable Status = "not_applicable"
)

// ParseFeedbackStatus accepts the statuses a user may set. Pending is the
// initial state and cannot be set through feedback.
func ParseFeedbackStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusAttempted, StatusCompleted, StatusNotApplicable:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Recommendation is one ranked action derived from an assessment and a
// correlation snapshot. Only Status and StatusUpdatedAt change after creation.
type Recommendation struct {
	ID               string
	AssessmentID     string
	UserID           string
	Text             string
	SupportingMetric metric.Metric
	Strength         float64
	PriorityRank     int
	Status           Status
	StatusUpdatedAt  *time.Time
	CreatedAt        time.Time
}

// WithStatus returns a copy of r carrying the new status.
func (r Recommendation) WithStatus(s Status, at time.Time) Recommendation {
	at = at.UTC()
	r.Status = s
	r.StatusUpdatedAt = &at
	return r
}
