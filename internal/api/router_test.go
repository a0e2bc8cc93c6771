package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"traveldna/internal/api/controllers"
	"traveldna/internal/config"
	"traveldna/internal/globe"
	"traveldna/internal/quiz"
	"traveldna/internal/repositories"
	"traveldna/internal/services"
	"traveldna/internal/travel"
	"traveldna/pkg/middleware"
)

const threePackages = `{"packages": [
  {"destination": "Banff, Canada", "country_code": "CA", "lat": 51.1784, "lng": -115.5708,
   "trip_duration_days": 7, "estimated_budget": {"total_trip": 2450}},
  {"destination": "Queenstown, New Zealand", "country_code": "NZ", "lat": -45.0312, "lng": 168.6626,
   "trip_duration_days": 10, "estimated_budget": {"total_trip": 3900}},
  {"destination": "Reykjavik, Iceland", "country_code": "IS", "lat": 64.1466, "lng": -21.9426,
   "trip_duration_days": 5, "estimated_budget": {"total_trip": 980}}
]}`

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

type fixedRecommender struct {
	resp *travel.RemoteResponse
}

func (f fixedRecommender) Recommend(ctx context.Context, dna quiz.TravelDNA) (*travel.RemoteResponse, error) {
	return f.resp, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var resp travel.RemoteResponse
	if err := json.Unmarshal([]byte(threePackages), &resp); err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}

	logger := zap.NewNop()
	cfg := &config.Config{}
	cfg.Recommendation.Provider = config.ProviderHTTP

	store := services.NewSessionStore(time.Minute, logger)
	t.Cleanup(store.CloseAll)
	catalog := services.NewCatalogService(repositories.NewMemoryCatalogRepository(), logger)
	if err := catalog.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return NewRouter(RouterParams{
		Config:         cfg,
		Logger:         logger,
		Shell:          controllers.NewShellController(store, cfg),
		Quiz:           controllers.NewQuizController(services.NewQuizService(store, fixedRecommender{&resp}, globe.SceneFactory(), logger)),
		Recommendation: controllers.NewRecommendationController(services.NewRecommendationService(store, logger)),
		Catalog:        controllers.NewCatalogController(catalog),
	})
}

func do(t *testing.T, r http.Handler, method, path string, payload interface{}) (int, envelope) {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("invalid envelope for %s %s: %v", method, path, err)
		}
	}
	return w.Code, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
}

func TestHealthAndShell(t *testing.T) {
	r := newTestRouter(t)

	code, env := do(t, r, http.MethodGet, "/health", nil)
	if code != http.StatusOK || env.Status != "success" {
		t.Errorf("expected healthy response, got %d %+v", code, env)
	}
	if env.TraceID == "" {
		t.Error("expected trace id in envelope")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Travel DNA") {
		t.Errorf("expected landing page, got %d", w.Code)
	}
	if w.Header().Get(middleware.TraceHeader) == "" {
		t.Error("expected trace header on response")
	}

	req = httptest.NewRequest(http.MethodGet, "/assets/logo.svg", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected logo asset, got %d", w.Code)
	}

	code, env = do(t, r, http.MethodGet, "/nope", nil)
	if code != http.StatusNotFound || env.Status != "error" {
		t.Errorf("expected 404 envelope, got %d %+v", code, env)
	}
}

func TestQuizSteps_Localized(t *testing.T) {
	r := newTestRouter(t)

	code, env := do(t, r, http.MethodGet, "/quiz/steps?lang=en", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var data struct {
		Locale string      `json:"locale"`
		Steps  []quiz.Step `json:"steps"`
	}
	decodeData(t, env, &data)
	if data.Locale != "en" || len(data.Steps) != quiz.StepCount() {
		t.Errorf("unexpected steps response %+v", data)
	}
	if data.Steps[5].Field != quiz.FieldInterests || !data.Steps[5].MultiSelect {
		t.Errorf("expected interests to be the last, multi-select step")
	}
}

type sessionData struct {
	SessionID   string   `json:"session_id"`
	CurrentStep int      `json:"current_step"`
	CanAdvance  bool     `json:"can_advance"`
	Submitted   bool     `json:"submitted"`
	Selected    []string `json:"selected"`
}

func TestQuizFlow_EndToEnd(t *testing.T) {
	r := newTestRouter(t)

	code, env := do(t, r, http.MethodPost, "/quiz/sessions", map[string]string{"lang": "en"})
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	var sess sessionData
	decodeData(t, env, &sess)
	base := "/quiz/sessions/" + sess.SessionID

	code, _ = do(t, r, http.MethodPost, base+"/next", nil)
	if code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 on unanswered step, got %d", code)
	}
	code, _ = do(t, r, http.MethodPost, base+"/select", map[string]string{"value": "bungee"})
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 on unknown option, got %d", code)
	}
	code, _ = do(t, r, http.MethodGet, base+"/recommendations", nil)
	if code != http.StatusConflict {
		t.Errorf("expected 409 before submission, got %d", code)
	}

	for _, v := range []string{"adventure", "balanced", "balanced", "partner", "6-9"} {
		if code, env := do(t, r, http.MethodPost, base+"/select", map[string]string{"value": v}); code != http.StatusOK {
			t.Fatalf("select %s: %d %s", v, code, env.Message)
		}
		if code, env := do(t, r, http.MethodPost, base+"/next", nil); code != http.StatusOK {
			t.Fatalf("next after %s: %d %s", v, code, env.Message)
		}
	}
	do(t, r, http.MethodPost, base+"/select", map[string]string{"value": "nature"})
	_, env = do(t, r, http.MethodPost, base+"/select", map[string]string{"value": "photography"})
	decodeData(t, env, &sess)
	if len(sess.Selected) != 2 || !sess.CanAdvance {
		t.Fatalf("expected two interests selected, got %+v", sess)
	}

	code, env = do(t, r, http.MethodPost, base+"/next", nil)
	decodeData(t, env, &sess)
	if code != http.StatusOK || !sess.Submitted {
		t.Fatalf("expected submission, got %d %+v", code, sess)
	}

	var results struct {
		Loading  bool                   `json:"loading"`
		Packages []travel.TravelPackage `json:"packages"`
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		_, env = do(t, r, http.MethodGet, base+"/recommendations", nil)
		decodeData(t, env, &results)
		if !results.Loading || time.Now().After(deadline) {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if len(results.Packages) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(results.Packages))
	}
	for _, p := range results.Packages {
		if len(p.Tags) != 2 || p.Tags[0] != "nature" || p.Tags[1] != "photography" {
			t.Errorf("expected tags [nature photography], got %v", p.Tags)
		}
		if p.MatchScore == nil || *p.MatchScore != 90 {
			t.Errorf("expected match score 90, got %v", p.MatchScore)
		}
	}

	var g globe.State
	_, env = do(t, r, http.MethodGet, base+"/globe", nil)
	decodeData(t, env, &g)
	if g.Scene == nil || len(g.Scene.Markers) != 3 {
		t.Fatalf("expected 3 markers, got %+v", g.Scene)
	}
	for i, m := range g.Scene.Markers {
		if m.Lat != results.Packages[i].Lat || m.Lng != results.Packages[i].Lng {
			t.Errorf("marker %d does not match package %d", i, i)
		}
	}

	code, env = do(t, r, http.MethodPost, base+"/globe/click", map[string]int{"package_id": 1})
	decodeData(t, env, &g)
	if code != http.StatusOK || g.AutoRotating || g.SelectedID == nil || *g.SelectedID != 1 {
		t.Errorf("expected globe click to select 1, got %d %+v", code, g)
	}
	if g.Scene.PointOfView.Altitude != globe.FocusAltitude {
		t.Errorf("expected camera at focus altitude, got %v", g.Scene.PointOfView)
	}

	code, _ = do(t, r, http.MethodPost, base+"/recommendations/select", map[string]int{"package_id": 8})
	if code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown package, got %d", code)
	}
	code, _ = do(t, r, http.MethodPost, base+"/recommendations/select", map[string]string{})
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 without package_id, got %d", code)
	}
	code, _ = do(t, r, http.MethodPost, base+"/globe/resize", map[string]int{"width": 0, "height": 10})
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad size, got %d", code)
	}

	code, _ = do(t, r, http.MethodDelete, base, nil)
	if code != http.StatusOK {
		t.Errorf("expected 200 on close, got %d", code)
	}
	code, _ = do(t, r, http.MethodGet, base, nil)
	if code != http.StatusNotFound {
		t.Errorf("expected 404 after close, got %d", code)
	}
}

func TestSamplePackages(t *testing.T) {
	r := newTestRouter(t)

	code, env := do(t, r, http.MethodGet, "/packages/sample?personality=culture&interests=history&interests=food", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var data struct {
		Source   string                 `json:"source"`
		Packages []travel.TravelPackage `json:"packages"`
	}
	decodeData(t, env, &data)
	if data.Source != "memory" || len(data.Packages) != travel.MaxSampleResults {
		t.Fatalf("unexpected sample response %+v", data)
	}
	if !data.Packages[0].HasTag("culture") {
		t.Errorf("expected a culture package first, got %s", data.Packages[0].Name)
	}
}
