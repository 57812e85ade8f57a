package api

import (
	"net/http"
	"strconv"
	"strings"
)

// simPrefix marks query parameters carrying simulated metric values,
// e.g. sim.study_hours=10.
const simPrefix = "sim."

// CareersHandler serves the career catalog and career-aligned rankings.
type CareersHandler struct {
	deps Dependencies
}

// NewCareersHandler creates a new careers handler.
func NewCareersHandler(deps Dependencies) *CareersHandler {
	return &CareersHandler{deps: deps}
}

// HandleListCareers handles GET /careers requests.
func (h *CareersHandler) HandleListCareers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	careers := h.deps.Careers()
	out := make([]careerResponse, len(careers))
	for i, c := range careers {
		out[i] = careerResponse{Name: c.Name, Slug: c.Slug(), Description: c.Description, Skills: c.Skills}
	}
	writeJSON(w, http.StatusOK, map[string]any{"careers": out})
}

// HandleCareerAligned handles GET /careers/{career}?user_id=&limit=&sim.<metric>=.
// An empty career segment uses the career saved in the user's profile.
func (h *CareersHandler) HandleCareerAligned(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_career_aligned"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/careers/"), "/")
	if strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	userID := strings.TrimSpace(q.Get("user_id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		limit = n
	}
	var sim map[string]string
	for key, vals := range q {
		if !strings.HasPrefix(key, simPrefix) || len(vals) == 0 {
			continue
		}
		if sim == nil {
			sim = make(map[string]string)
		}
		sim[strings.TrimPrefix(key, simPrefix)] = vals[0]
	}

	out, err := h.deps.CareerAligned(r.Context(), userID, name, sim, limit)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"subjects": toAligned(out)})
}

// HandleSkillSubjects handles GET /skills/{skill}/subjects?user_id=.
// Subjects are limited to the field of the user's course when known.
func (h *CareersHandler) HandleSkillSubjects(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_skill_subjects"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	skill, ok := strings.CutSuffix(strings.TrimPrefix(r.URL.Path, "/skills/"), "/subjects")
	if !ok || skill == "" || strings.Contains(skill, "/") {
		http.NotFound(w, r)
		return
	}

	links, err := h.deps.SkillSubjects(r.Context(), strings.TrimSpace(r.URL.Query().Get("user_id")), skill)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"skill": skill, "subjects": toSubjects(links)})
}
