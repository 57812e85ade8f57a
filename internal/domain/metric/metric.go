// Package metric defines the fixed catalog of tracked behavioral metrics.
//
// Metrics are addressed by an enumerated identifier rather than by name so
// every lookup goes through a fixed table indexed by Metric.
package metric

import "strings"

// Metric identifies a single tracked quantity.
type Metric int

// Tracked metrics in their canonical order, followed by the outcome metric.
const (
	StudyHours Metric = iota
	SleepHours
	PhoneUsageHours
	SocialMediaHours
	GamingHours
	BreaksPerDay
	CoffeeIntake
	ExerciseMinutes
	StressLevel
	FocusScore
	AttendancePercentage
	AssignmentsCompletedPerWeek
	FinalGrade

	// Count is the number of metrics with a descriptor.
	Count = int(FinalGrade) + 1
)

// trackedCount is the number of behavioral metrics correlated against targets.
const trackedCount = int(AssignmentsCompletedPerWeek) + 1

// Descriptor describes the domain range and polarity of a metric.
type Descriptor struct {
	Metric         Metric
	Name           string
	Min            float64
	Max            float64
	HigherIsBetter bool
}

var descriptors = [Count]Descriptor{
	StudyHours:                  {StudyHours, "study_hours", 0, 12, true},
	SleepHours:                  {SleepHours, "sleep_hours", 0, 12, true},
	PhoneUsageHours:             {PhoneUsageHours, "phone_usage_hours", 0, 12, false},
	SocialMediaHours:            {SocialMediaHours, "social_media_hours", 0, 10, false},
	GamingHours:                 {GamingHours, "gaming_hours", 0, 10, false},
	BreaksPerDay:                {BreaksPerDay, "breaks_per_day", 0, 20, true},
	CoffeeIntake:                {CoffeeIntake, "coffee_intake", 0, 10, false},
	ExerciseMinutes:             {ExerciseMinutes, "exercise_minutes", 0, 180, true},
	StressLevel:                 {StressLevel, "stress_level", 1, 10, false},
	FocusScore:                  {FocusScore, "focus_score", 0, 100, true},
	AttendancePercentage:        {AttendancePercentage, "attendance_percentage", 0, 100, true},
	AssignmentsCompletedPerWeek: {AssignmentsCompletedPerWeek, "assignments_completed_per_week", 0, 20, true},
	FinalGrade:                  {FinalGrade, "final_grade", 0, 100, true},
}

var byName = func() map[string]Metric {
	m := make(map[string]Metric, Count)
	for _, d := range descriptors {
		m[d.Name] = d.Metric
	}
	return m
}()

// Valid reports whether m has a descriptor.
func (m Metric) Valid() bool { return m >= 0 && int(m) < Count }

// Descriptor returns the static descriptor for m.
func (m Metric) Descriptor() Descriptor {
	if !m.Valid() {
		return Descriptor{Metric: m, Name: "unknown"}
	}
	return descriptors[m]
}

// String returns the snake_case metric name.
func (m Metric) String() string { return m.Descriptor().Name }

// Label returns the metric name with underscores replaced by spaces.
func (m Metric) Label() string { return strings.ReplaceAll(m.String(), "_", " ") }

// HigherIsBetter reports the polarity of m.
func (m Metric) HigherIsBetter() bool { return m.Descriptor().HigherIsBetter }

// Parse resolves a snake_case metric name.
func Parse(name string) (Metric, bool) {
	m, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// Tracked returns the behavioral metrics in canonical order.
func Tracked() []Metric {
	out := make([]Metric, trackedCount)
	for i := range out {
		out[i] = Metric(i)
	}
	return out
}

// All returns every metric that has a descriptor.
func All() []Metric {
	out := make([]Metric, Count)
	for i := range out {
		out[i] = Metric(i)
	}
	return out
}
