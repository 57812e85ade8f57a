package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// CorrelationsHandler serves the filtered correlation set.
type CorrelationsHandler struct {
	deps Dependencies
}

// NewCorrelationsHandler creates a new correlations handler.
func NewCorrelationsHandler(deps Dependencies) *CorrelationsHandler {
	return &CorrelationsHandler{deps: deps}
}

// HandleGetCorrelations handles GET /correlations?min_abs_r=&min_confidence=.
// Omitted thresholds fall back to the configured defaults.
func (h *CorrelationsHandler) HandleGetCorrelations(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_correlations"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	minAbsR, err := parseThreshold(q.Get("min_abs_r"), 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, fmt.Errorf("min_abs_r: %w", err)))
		return
	}
	minConf, err := parseThreshold(q.Get("min_confidence"), 100)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, fmt.Errorf("min_confidence: %w", err)))
		return
	}

	records, err := h.deps.Correlations(r.Context(), minAbsR, minConf)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"correlations": toCorrelations(records)})
}

// parseThreshold returns -1 for an empty value and otherwise requires a
// number in [0, upper].
func parseThreshold(raw string, upper float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return -1, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > upper {
		return 0, fmt.Errorf("out of range [0, %g]", upper)
	}
	return v, nil
}
