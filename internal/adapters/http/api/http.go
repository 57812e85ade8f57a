// Package api exposes the study tracking service over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/studytrack/internal/adapters/repository"
	service "github.com/okian/studytrack/internal/app"
	"github.com/okian/studytrack/internal/domain/career"
	"github.com/okian/studytrack/internal/domain/correlation"
	"github.com/okian/studytrack/internal/domain/metric"
	"github.com/okian/studytrack/internal/domain/model"
)

// Dependencies required by HTTP handlers. *service.Service satisfies it.
type Dependencies interface {
	SubmitAssessment(ctx context.Context, userID string, values metric.Values, gradeOptIn bool) (service.Submission, error)
	Recompute(ctx context.Context) (correlation.Result, error)
	Correlations(ctx context.Context, minAbsR, minConfidence float64) ([]model.CorrelationRecord, error)
	Recommendations(ctx context.Context, userID, assessmentID string) ([]model.Recommendation, error)
	UpdateRecommendationStatus(ctx context.Context, userID, recommendationID, status string) (model.Recommendation, error)
	SaveProfile(ctx context.Context, p model.Profile) error
	Careers() []model.Career
	CareerAligned(ctx context.Context, userID, careerName string, sim map[string]string, limit int) ([]model.CareerAlignedRecommendation, error)
	SkillSubjects(ctx context.Context, userID, skill string) ([]career.SubjectLink, error)
	Ready(ctx context.Context) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler          *HealthHandler
	readyHandler           *ReadyHandler
	statsHandler           *StatsHandler
	recomputeHandler       *RecomputeHandler
	correlationsHandler    *CorrelationsHandler
	assessmentsHandler     *AssessmentsHandler
	recommendationsHandler *RecommendationsHandler
	careersHandler         *CareersHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:          NewHealthHandler(),
		readyHandler:           NewReadyHandler(deps),
		statsHandler:           NewStatsHandler(statsProvider),
		recomputeHandler:       NewRecomputeHandler(deps),
		correlationsHandler:    NewCorrelationsHandler(deps),
		assessmentsHandler:     NewAssessmentsHandler(deps),
		recommendationsHandler: NewRecommendationsHandler(deps),
		careersHandler:         NewCareersHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/readyz", MetricsMiddleware(s.readyHandler.HandleReady, "readyz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/recompute", MetricsMiddleware(s.recomputeHandler.HandleRecompute, "recompute"))
	mux.HandleFunc("/correlations", MetricsMiddleware(s.correlationsHandler.HandleGetCorrelations, "correlations"))
	mux.HandleFunc("/assessments", MetricsMiddleware(s.assessmentsHandler.HandlePostAssessment, "assessments"))
	mux.HandleFunc("/profiles", MetricsMiddleware(s.assessmentsHandler.HandlePutProfile, "profiles"))
	mux.HandleFunc("/recommendations", MetricsMiddleware(s.recommendationsHandler.HandleListRecommendations, "recommendations"))
	mux.HandleFunc("/recommendations/", MetricsMiddleware(s.recommendationsHandler.HandleUpdateStatus, "recommendation_status"))
	mux.HandleFunc("/careers", MetricsMiddleware(s.careersHandler.HandleListCareers, "careers"))
	mux.HandleFunc("/careers/", MetricsMiddleware(s.careersHandler.HandleCareerAligned, "career_aligned"))
	mux.HandleFunc("/skills/", MetricsMiddleware(s.careersHandler.HandleSkillSubjects, "skill_subjects"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeFailure maps service and domain errors onto a status code.
func writeFailure(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, model.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", WrapKind(op, ErrForbidden, err))
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrNoAssessment),
		errors.Is(err, repository.ErrNotFound),
		errors.Is(err, career.ErrUnknownCareer),
		errors.Is(err, career.ErrUnknownSkill):
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
	case errors.Is(err, repository.ErrDuplicate):
		writeError(w, http.StatusConflict, "conflict", Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal", Wrap(op, err))
	}
}
