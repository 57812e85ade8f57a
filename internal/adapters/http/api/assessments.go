package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/okian/studytrack/internal/domain/metric"
	"github.com/okian/studytrack/internal/domain/model"
)

// AssessmentsHandler accepts assessments and profile updates.
type AssessmentsHandler struct {
	deps Dependencies
}

// NewAssessmentsHandler creates a new assessments handler.
func NewAssessmentsHandler(deps Dependencies) *AssessmentsHandler {
	return &AssessmentsHandler{deps: deps}
}

type assessmentRequest struct {
	UserID     string             `json:"user_id"`
	Values     map[string]float64 `json:"values"`
	GradeOptIn bool               `json:"grade_opt_in"`
}

func (a assessmentRequest) validate() (metric.Values, error) {
	var v metric.Values
	if strings.TrimSpace(a.UserID) == "" {
		return v, errors.New("missing user_id")
	}
	for name, x := range a.Values {
		m, ok := metric.Parse(name)
		if !ok {
			return v, fmt.Errorf("unknown metric %q", name)
		}
		d := m.Descriptor()
		if math.IsNaN(x) || x < d.Min || x > d.Max {
			return v, fmt.Errorf("%s must be in [%g, %g]", name, d.Min, d.Max)
		}
		v.Set(m, x)
	}
	return v, nil
}

type submissionResponse struct {
	AssessmentID    string                   `json:"assessment_id"`
	Outcome         string                   `json:"outcome"`
	Recommendations []recommendationResponse `json:"recommendations"`
}

// HandlePostAssessment handles POST /assessments requests.
func (h *AssessmentsHandler) HandlePostAssessment(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_assessment"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req assessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	values, err := req.validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	sub, err := h.deps.SubmitAssessment(r.Context(), req.UserID, values, req.GradeOptIn)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, submissionResponse{
		AssessmentID:    sub.Assessment.ID,
		Outcome:         string(sub.Correlation.Outcome),
		Recommendations: toRecommendations(sub.Recommendations),
	})
}

type profileRequest struct {
	UserID    string `json:"user_id"`
	Course    string `json:"course"`
	YearLevel string `json:"year_level"`
	Career    string `json:"career"`
}

// HandlePutProfile handles PUT /profiles requests.
func (h *AssessmentsHandler) HandlePutProfile(w http.ResponseWriter, r *http.Request) {
	const op = "api.put_profile"
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	err := h.deps.SaveProfile(r.Context(), model.Profile{
		UserID:    req.UserID,
		Course:    req.Course,
		YearLevel: req.YearLevel,
		Career:    req.Career,
	})
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
