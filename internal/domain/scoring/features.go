// Package scoring derives the predicted productivity score of an assessment
// from an externally trained linear regression model.
package scoring

import (
	"strings"

	"github.com/okian/studytrack/internal/domain/metric"
	"github.com/okian/studytrack/internal/domain/model"
)

// Feature names the model was trained on.
const (
	FeatureAge                  = "age"
	FeatureGenderOther          = "gender_other"
	FeatureStudyHoursPerDay     = "study_hours_per_day"
	FeatureSleepHours           = "sleep_hours"
	FeaturePhoneUsageHours      = "phone_usage_hours"
	FeatureSocialMediaHours     = "social_media_hours"
	FeatureYoutubeHours         = "youtube_hours"
	FeatureGamingHours          = "gaming_hours"
	FeatureBreaksPerDay         = "breaks_per_day"
	FeatureCoffeeIntakeMg       = "coffee_intake_mg"
	FeatureExerciseMinutes      = "exercise_minutes"
	FeatureAssignmentsCompleted = "assignments_completed"
	FeatureAttendancePercentage = "attendance_percentage"
	FeatureStressLevel          = "stress_level"
	FeatureFocusScore           = "focus_score"
	FeatureFinalGrade           = "final_grade"
)

const (
	defaultAge     = 20
	coffeeMgPerCup = 95.0
)

var yearLevelAge = map[string]float64{
	"freshman":    18,
	"first year":  18,
	"sophomore":   19,
	"second year": 19,
	"junior":      20,
	"third year":  20,
	"senior":      21,
	"fourth year": 21,
	"graduate":    23,
}

// AgeForYearLevel maps a year level label onto the age the model expects.
func AgeForYearLevel(level string) float64 {
	if age, ok := yearLevelAge[strings.ToLower(strings.TrimSpace(level))]; ok {
		return age
	}
	return defaultAge
}

// metricFeatures maps features copied straight from a metric.
var metricFeatures = map[string]metric.Metric{
	FeatureStudyHoursPerDay:     metric.StudyHours,
	FeatureSleepHours:           metric.SleepHours,
	FeaturePhoneUsageHours:      metric.PhoneUsageHours,
	FeatureSocialMediaHours:     metric.SocialMediaHours,
	FeatureYoutubeHours:         metric.SocialMediaHours,
	FeatureGamingHours:          metric.GamingHours,
	FeatureBreaksPerDay:         metric.BreaksPerDay,
	FeatureExerciseMinutes:      metric.ExerciseMinutes,
	FeatureAssignmentsCompleted: metric.AssignmentsCompletedPerWeek,
	FeatureAttendancePercentage: metric.AttendancePercentage,
	FeatureStressLevel:          metric.StressLevel,
	FeatureFocusScore:           metric.FocusScore,
}

// KnownFeature reports whether name is one of the model's features.
func KnownFeature(name string) bool {
	switch name {
	case FeatureAge, FeatureGenderOther, FeatureCoffeeIntakeMg, FeatureFinalGrade:
		return true
	}
	_, ok := metricFeatures[name]
	return ok
}

// Features builds the model input row. Absent values are omitted so the
// model can impute them.
func Features(a model.Assessment, age float64) map[string]float64 {
	f := make(map[string]float64, len(metricFeatures)+4)
	f[FeatureAge] = age
	f[FeatureGenderOther] = 1
	for name, m := range metricFeatures {
		if v, ok := a.Value(m); ok {
			f[name] = v
		}
	}
	if cups, ok := a.Value(metric.CoffeeIntake); ok {
		f[FeatureCoffeeIntakeMg] = cups * coffeeMgPerCup
	}
	if a.GradeOptIn {
		if g, ok := a.Value(metric.FinalGrade); ok {
			f[FeatureFinalGrade] = g
		}
	}
	return f
}
