package api

import (
	"time"

	"github.com/okian/studytrack/internal/domain/career"
	"github.com/okian/studytrack/internal/domain/correlation"
	"github.com/okian/studytrack/internal/domain/model"
)

type correlationResponse struct {
	Metric          string    `json:"metric"`
	Target          string    `json:"target"`
	Coefficient     float64   `json:"coefficient"`
	SampleSize      int       `json:"sample_size"`
	CILow           float64   `json:"ci_low"`
	CIHigh          float64   `json:"ci_high"`
	ConfidenceLevel float64   `json:"confidence_level"`
	PValue          float64   `json:"p_value"`
	ComputedAt      time.Time `json:"computed_at"`
}

func toCorrelations(in []model.CorrelationRecord) []correlationResponse {
	out := make([]correlationResponse, len(in))
	for i, r := range in {
		out[i] = correlationResponse{
			Metric:          r.Metric.String(),
			Target:          r.Target.String(),
			Coefficient:     r.Coefficient,
			SampleSize:      r.SampleSize,
			CILow:           r.CILow,
			CIHigh:          r.CIHigh,
			ConfidenceLevel: r.ConfidenceLevel,
			PValue:          r.PValue,
			ComputedAt:      r.ComputedAt,
		}
	}
	return out
}

type recomputeResponse struct {
	Outcome           string `json:"outcome"`
	Population        int    `json:"population"`
	Eligible          int    `json:"eligible"`
	Records           int    `json:"records"`
	PredictorFailures int    `json:"predictor_failures"`
}

func toRecompute(r correlation.Result) recomputeResponse {
	return recomputeResponse{
		Outcome:           string(r.Outcome),
		Population:        r.Population,
		Eligible:          r.Eligible,
		Records:           len(r.Records),
		PredictorFailures: r.PredictorFailures,
	}
}

type recommendationResponse struct {
	ID               string     `json:"id"`
	AssessmentID     string     `json:"assessment_id"`
	UserID           string     `json:"user_id"`
	Text             string     `json:"text"`
	SupportingMetric string     `json:"supporting_metric"`
	Strength         float64    `json:"strength"`
	PriorityRank     int        `json:"priority_rank"`
	Status           string     `json:"status"`
	StatusUpdatedAt  *time.Time `json:"status_updated_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toRecommendation(r model.Recommendation) recommendationResponse {
	return recommendationResponse{
		ID:               r.ID,
		AssessmentID:     r.AssessmentID,
		UserID:           r.UserID,
		Text:             r.Text,
		SupportingMetric: r.SupportingMetric.String(),
		Strength:         r.Strength,
		PriorityRank:     r.PriorityRank,
		Status:           string(r.Status),
		StatusUpdatedAt:  r.StatusUpdatedAt,
		CreatedAt:        r.CreatedAt,
	}
}

func toRecommendations(in []model.Recommendation) []recommendationResponse {
	out := make([]recommendationResponse, len(in))
	for i, r := range in {
		out[i] = toRecommendation(r)
	}
	return out
}

type careerResponse struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type resourceResponse struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Provider string `json:"provider"`
}

type alignedResponse struct {
	Subject                string             `json:"subject"`
	FieldOfStudy           string             `json:"field_of_study"`
	Relevance              string             `json:"relevance"`
	Importance             string             `json:"importance"`
	WeaknessScore          float64            `json:"weakness_score"`
	BaselineWeaknessScore  float64            `json:"baseline_weakness_score"`
	GapClosurePercent      float64            `json:"gap_closure_percent"`
	CareerRelevanceContext string             `json:"career_relevance_context"`
	SupportingSkills       []string           `json:"supporting_skills"`
	Resources              []resourceResponse `json:"resources"`
}

func toAligned(in []model.CareerAlignedRecommendation) []alignedResponse {
	out := make([]alignedResponse, len(in))
	for i, r := range in {
		res := make([]resourceResponse, len(r.Resources))
		for j, x := range r.Resources {
			res[j] = resourceResponse{Title: x.Title, URL: x.URL, Provider: x.Provider}
		}
		out[i] = alignedResponse{
			Subject:                r.Subject.Name,
			FieldOfStudy:           r.Subject.FieldOfStudy,
			Relevance:              string(r.Relevance),
			Importance:             string(r.Importance),
			WeaknessScore:          r.WeaknessScore,
			BaselineWeaknessScore:  r.BaselineWeaknessScore,
			GapClosurePercent:      r.GapClosurePercent,
			CareerRelevanceContext: r.CareerRelevanceContext,
			SupportingSkills:       r.SupportingSkills,
			Resources:              res,
		}
	}
	return out
}

type subjectResponse struct {
	Subject      string `json:"subject"`
	FieldOfStudy string `json:"field_of_study"`
	Description  string `json:"description"`
	Relevance    string `json:"relevance"`
}

func toSubjects(in []career.SubjectLink) []subjectResponse {
	out := make([]subjectResponse, len(in))
	for i, l := range in {
		out[i] = subjectResponse{
			Subject:      l.Subject.Name,
			FieldOfStudy: l.Subject.FieldOfStudy,
			Description:  l.Subject.Description,
			Relevance:    string(l.Relevance),
		}
	}
	return out
}
