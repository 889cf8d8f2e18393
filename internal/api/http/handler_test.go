package apiHttp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/referendum-atlas/backend/internal/config"
	"github.com/referendum-atlas/backend/internal/domain"
	"github.com/referendum-atlas/backend/internal/render"
	"github.com/referendum-atlas/backend/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		Limiter: config.Limiter{RPS: 100, Burst: 100, TTL: time.Minute},
	}
}

func testEngine(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	results := []domain.RegionResult{
		{CodeReg: "84", NameReg: "Auvergne-Rhone-Alpes", Registered: 300, ChoiceA: 125, ChoiceB: 100},
	}
	report := &domain.Report{RunID: uuid.New(), GeneratedAt: time.Now().UTC(), Results: results}

	ring := orb.Ring{{2, 44}, {4, 44}, {4, 46}, {2, 46}, {2, 44}}
	feature := geojson.NewFeature(orb.Polygon{ring})
	feature.Properties["code"] = "84"
	feature.Properties["nom"] = "Auvergne-Rhone-Alpes"
	shapes := geojson.NewFeatureCollection()
	shapes.Append(feature)

	regionMap, err := render.NewRenderer(config.Render{Width: 100, Height: 100}).RegionMap(shapes, results)
	require.NoError(t, err)

	services := &service.Services{}
	return NewHandlers(services, cfg, report, regionMap).Init(cfg)
}

func TestHandler_Init(t *testing.T) {
	router := testEngine(t, testConfig())

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("health", func(t *testing.T) {
		w := get("/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("index page embeds the map", func(t *testing.T) {
		w := get("/")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "/api/v1/map")
	})

	t.Run("api routes are mounted", func(t *testing.T) {
		w := get("/api/v1/results")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("swagger disabled by default", func(t *testing.T) {
		w := get("/swagger/index.html")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_InitSwaggerEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.HttpServer.SwaggerEnabled = true
	router := testEngine(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	router.ServeHTTP(w, req)

	assert.NotEqual(t, http.StatusNotFound, w.Code)
}

func TestCorsMiddleware(t *testing.T) {
	router := testEngine(t, testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/results", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
