package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// RecommendationsHandler lists recommendations and records feedback.
type RecommendationsHandler struct {
	deps Dependencies
}

// NewRecommendationsHandler creates a new recommendations handler.
func NewRecommendationsHandler(deps Dependencies) *RecommendationsHandler {
	return &RecommendationsHandler{deps: deps}
}

// HandleListRecommendations handles GET /recommendations?user_id=&assessment_id=.
// Without assessment_id the user's newest assessment is used.
func (h *RecommendationsHandler) HandleListRecommendations(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_recommendations"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	userID := strings.TrimSpace(q.Get("user_id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	recs, err := h.deps.Recommendations(r.Context(), userID, strings.TrimSpace(q.Get("assessment_id")))
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": toRecommendations(recs)})
}

type statusRequest struct {
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

// HandleUpdateStatus handles PATCH /recommendations/{id} requests.
func (h *RecommendationsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	const op = "api.patch_recommendation"
	if r.Method != http.MethodPatch {
		http.NotFound(w, r)
		return
	}
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/recommendations/"), "/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	rec, err := h.deps.UpdateRecommendationStatus(r.Context(), req.UserID, id, req.Status)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecommendation(rec))
}
