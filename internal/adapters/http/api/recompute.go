package api

import "net/http"

// RecomputeHandler triggers a correlation refresh over the stored population.
type RecomputeHandler struct {
	deps Dependencies
}

// NewRecomputeHandler creates a new recompute handler.
func NewRecomputeHandler(deps Dependencies) *RecomputeHandler {
	return &RecomputeHandler{deps: deps}
}

// HandleRecompute handles POST /recompute requests. A population whose
// signature has not changed answers with outcome "cached".
func (h *RecomputeHandler) HandleRecompute(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_recompute"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	res, err := h.deps.Recompute(r.Context())
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecompute(res))
}
