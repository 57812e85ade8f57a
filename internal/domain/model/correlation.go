package model

import (
	"time"

	"github.com/okian/studytrack/internal/domain/metric"
)

// Target is a performance outcome correlations are measured against.
type Target int

// Performance targets in evaluation order.
const (
	TargetPredictedProductivity Target = iota
	TargetFinalGrade
	TargetAssignmentsCompleted
)

var targetNames = [...]string{
	TargetPredictedProductivity: "predicted_productivity_score",
	TargetFinalGrade:            "final_grade",
	TargetAssignmentsCompleted:  "assignments_completed_per_week",
}

// Targets returns every performance target in evaluation order.
func Targets() []Target {
	return []Target{TargetPredictedProductivity, TargetFinalGrade, TargetAssignmentsCompleted}
}

func (t Target) String() string {
	if t < 0 || int(t) >= len(targetNames) {
		return "unknown"
	}
	return targetNames[t]
}

// ParseTarget resolves a target name.
func ParseTarget(name string) (Target, bool) {
	for i, n := range targetNames {
		if n == name {
			return Target(i), true
		}
	}
	return 0, false
}

// DefaultConfidenceLevel is the confidence level, in percent, of every
// interval the calculator produces.
const DefaultConfidenceLevel = 95.0

// CorrelationRecord is one cell of the metric x target correlation matrix.
type CorrelationRecord struct {
	Metric          metric.Metric
	Target          Target
	Coefficient     float64
	SampleSize      int
	CILow           float64
	CIHigh          float64
	ConfidenceLevel float64
	PValue          float64
	ComputedAt      time.Time
}

// Strength returns |Coefficient|.
func (r CorrelationRecord) Strength() float64 {
	if r.Coefficient < 0 {
		return -r.Coefficient
	}
	return r.Coefficient
}

// FilterCorrelations keeps records with |r| >= minAbsR and a confidence
// level of at least minConfidence.
func FilterCorrelations(records []CorrelationRecord, minAbsR, minConfidence float64) []CorrelationRecord {
	out := make([]CorrelationRecord, 0, len(records))
	for _, r := range records {
		if r.Strength() >= minAbsR && r.ConfidenceLevel >= minConfidence {
			out = append(out, r)
		}
	}
	return out
}
