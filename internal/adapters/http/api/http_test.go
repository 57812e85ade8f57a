package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/okian/studytrack/internal/adapters/http/api"
	service "github.com/okian/studytrack/internal/app"
	"github.com/okian/studytrack/internal/domain/correlation"
	"github.com/okian/studytrack/internal/domain/model"
	"github.com/okian/studytrack/internal/domain/scoring"
	"github.com/okian/studytrack/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Minute)
		return t
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *service.Service) {
	t.Helper()
	svc := service.New(
		service.WithClock(tickingClock()),
		service.WithLogger(logger.Nop()),
		service.WithPredictor(correlation.PredictorFunc(func(context.Context, model.Assessment) (float64, error) {
			return 0, scoring.ErrModelUnavailable
		})),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(func() {
		ts.Close()
		svc.Stop()
	})
	return ts, svc
}

func do(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func submit(t *testing.T, base, user string, sleep float64) (*http.Response, map[string]any) {
	body := fmt.Sprintf(`{"user_id":%q,"values":{"sleep_hours":%g,"final_grade":%g}}`, user, sleep, 50+5*sleep)
	return do(t, http.MethodPost, base+"/assessments", body)
}

func TestHealthAndStats(t *testing.T) {
	Convey("Given a running API", t, func() {
		ts, svc := newTestServer(t)

		Convey("/healthz serves Prometheus metrics", func() {
			resp, err := http.Get(ts.URL + "/healthz")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(resp.Header.Get("Content-Type"), ShouldContainSubstring, "text/plain")
		})

		Convey("/readyz follows the service lifecycle", func() {
			resp, body := do(t, http.MethodGet, ts.URL+"/readyz", "")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["status"], ShouldEqual, "ready")

			svc.Stop()
			resp, body = do(t, http.MethodGet, ts.URL+"/readyz", "")
			So(resp.StatusCode, ShouldEqual, http.StatusServiceUnavailable)
			So(body["code"], ShouldEqual, "unavailable")
		})

		Convey("/stats reports the service", func() {
			resp, stats := do(t, http.MethodGet, ts.URL+"/stats", "")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(stats["started"], ShouldEqual, true)
		})

		Convey("Wrong methods are not found", func() {
			resp, _ := do(t, http.MethodPost, ts.URL+"/stats", "")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			resp, _ = do(t, http.MethodGet, ts.URL+"/recompute", "")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestAssessmentFlow(t *testing.T) {
	Convey("Given a running API", t, func() {
		ts, _ := newTestServer(t)

		Convey("Malformed assessments are rejected", func() {
			resp, body := do(t, http.MethodPost, ts.URL+"/assessments", `{`)
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			So(body["code"], ShouldEqual, "bad_request")

			resp, _ = do(t, http.MethodPost, ts.URL+"/assessments", `{"values":{"sleep_hours":7}}`)
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)

			resp, body = do(t, http.MethodPost, ts.URL+"/assessments", `{"user_id":"u1","values":{"naps":2}}`)
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			So(body["message"], ShouldContainSubstring, "naps")

			resp, _ = do(t, http.MethodPost, ts.URL+"/assessments", `{"user_id":"u1","values":{"stress_level":0}}`)
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("After enough submissions", func() {
			for i := range 6 {
				resp, _ := submit(t, ts.URL, fmt.Sprintf("u%d", i), 4+float64(i))
				So(resp.StatusCode, ShouldEqual, http.StatusCreated)
			}
			resp, created := submit(t, ts.URL, "owl", 5)
			So(resp.StatusCode, ShouldEqual, http.StatusCreated)
			So(created["outcome"], ShouldEqual, "recomputed")
			recs := created["recommendations"].([]any)
			So(recs, ShouldHaveLength, 1)
			rec := recs[0].(map[string]any)
			So(rec["supporting_metric"], ShouldEqual, "sleep_hours")
			recID := rec["id"].(string)

			Convey("Correlations can be filtered", func() {
				resp, body := do(t, http.MethodGet, ts.URL+"/correlations", "")
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				list := body["correlations"].([]any)
				So(list, ShouldHaveLength, 1)
				So(list[0].(map[string]any)["target"], ShouldEqual, "final_grade")

				_, body = do(t, http.MethodGet, ts.URL+"/correlations?min_abs_r=0.5&min_confidence=99", "")
				So(body["correlations"], ShouldBeEmpty)

				resp, _ = do(t, http.MethodGet, ts.URL+"/correlations?min_abs_r=2", "")
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				resp, _ = do(t, http.MethodGet, ts.URL+"/correlations?min_confidence=x", "")
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})

			Convey("A repeated recompute is cached", func() {
				resp, body := do(t, http.MethodPost, ts.URL+"/recompute", "")
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(body["outcome"], ShouldEqual, "cached")
				So(body["population"], ShouldEqual, float64(7))
			})

			Convey("Recommendations are listed for the owner", func() {
				resp, body := do(t, http.MethodGet, ts.URL+"/recommendations?user_id=owl", "")
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(body["recommendations"], ShouldHaveLength, 1)

				resp, _ = do(t, http.MethodGet, ts.URL+"/recommendations", "")
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				resp, _ = do(t, http.MethodGet, ts.URL+"/recommendations?user_id=ghost", "")
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})

			Convey("Feedback is owner only", func() {
				url := ts.URL + "/recommendations/" + recID
				resp, body := do(t, http.MethodPatch, url, `{"user_id":"owl","status":"completed"}`)
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(body["status"], ShouldEqual, "completed")
				So(body["status_updated_at"], ShouldNotBeNil)

				resp, _ = do(t, http.MethodPatch, url, `{"user_id":"u1","status":"attempted"}`)
				So(resp.StatusCode, ShouldEqual, http.StatusForbidden)
				resp, _ = do(t, http.MethodPatch, url, `{"user_id":"owl","status":"pending"}`)
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				resp, _ = do(t, http.MethodPatch, ts.URL+"/recommendations/missing", `{"user_id":"owl","status":"completed"}`)
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestCareers(t *testing.T) {
	Convey("Given a user with a profile and an assessment", t, func() {
		ts, _ := newTestServer(t)
		resp, _ := do(t, http.MethodPut, ts.URL+"/profiles",
			`{"user_id":"dev","course":"Computer Science","career":"Software Developer"}`)
		So(resp.StatusCode, ShouldEqual, http.StatusNoContent)
		resp, _ = do(t, http.MethodPost, ts.URL+"/assessments",
			`{"user_id":"dev","values":{"study_hours":3,"focus_score":40}}`)
		So(resp.StatusCode, ShouldEqual, http.StatusCreated)

		Convey("The catalog is listed", func() {
			_, body := do(t, http.MethodGet, ts.URL+"/careers", "")
			careers := body["careers"].([]any)
			So(careers, ShouldHaveLength, 5)
			So(careers[0].(map[string]any)["slug"], ShouldEqual, "cybersecurity-specialist")
		})

		Convey("Subjects are ranked for the profile career", func() {
			resp, body := do(t, http.MethodGet, ts.URL+"/careers/?user_id=dev", "")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["subjects"], ShouldHaveLength, 3)

			_, body = do(t, http.MethodGet, ts.URL+"/careers/software-developer?user_id=dev&limit=50", "")
			So(body["subjects"].([]any), ShouldHaveLength, 7)
		})

		Convey("Simulation closes part of the gap", func() {
			_, body := do(t, http.MethodGet, ts.URL+"/careers/software-developer?user_id=dev&limit=10&sim.study_hours=12&sim.focus_score=100", "")
			best := 0.0
			for _, s := range body["subjects"].([]any) {
				best = max(best, s.(map[string]any)["gap_closure_percent"].(float64))
			}
			So(best, ShouldBeGreaterThan, 0)
		})

		Convey("Skill subjects follow the user's course", func() {
			resp, body := do(t, http.MethodGet, ts.URL+"/skills/Algorithms/subjects?user_id=dev", "")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			subjects := body["subjects"].([]any)
			So(subjects, ShouldHaveLength, 1)
			So(subjects[0].(map[string]any)["subject"], ShouldEqual, "Data Structures and Algorithms")

			_, body = do(t, http.MethodGet, ts.URL+"/skills/Algorithms/subjects", "")
			So(body["subjects"], ShouldHaveLength, 2)

			resp, _ = do(t, http.MethodGet, ts.URL+"/skills/Juggling/subjects", "")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			resp, _ = do(t, http.MethodGet, ts.URL+"/skills/Algorithms", "")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("Errors map onto status codes", func() {
			resp, _ := do(t, http.MethodGet, ts.URL+"/careers/astronaut?user_id=dev", "")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			resp, _ = do(t, http.MethodGet, ts.URL+"/careers/doctor", "")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			resp, _ = do(t, http.MethodGet, ts.URL+"/careers/doctor?user_id=dev&limit=many", "")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			resp, _ = do(t, http.MethodGet, ts.URL+"/careers/doctor?user_id=nobody", "")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestOpError(t *testing.T) {
	Convey("OpError matches its kind and cause", t, func() {
		cause := errors.New("boom")
		err := api.WrapKind("api.op", api.ErrBadRequest, cause)
		So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
		So(errors.Is(err, cause), ShouldBeTrue)
		So(err.Error(), ShouldEqual, "api.op: bad request: boom")

		So(api.Wrap("api.op", nil), ShouldBeNil)
		So(api.Wrap("api.op", cause).Error(), ShouldEqual, "api.op: boom")
		So(errors.Is(api.NewKind("api.op", api.ErrNotFound), api.ErrNotFound), ShouldBeTrue)
	})
}
