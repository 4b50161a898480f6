package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/application/augment"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/text"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/logging"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/prometheus"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/interfaces/http/handlers"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/testutil"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	metrics := prometheus.NewMetrics("uttgen_test")
	svc := augment.NewService(augment.Deps{
		Resolver: &testutil.StubPOSResolver{Tags: map[string]text.POSTag{
			"referral": text.POSNoun,
		}},
		Lexicon: &testutil.StubLexicon{Entries: map[string][]string{
			"referral": {"recommendation"},
		}},
		Metrics: metrics,
		Logger:  logging.NewNopLogger(),
		Seed:    7,
	})
	return NewRouter(RouterConfig{
		GenerateHandler: handlers.NewGenerateHandler(svc),
		HealthHandler: handlers.NewHealthHandler(map[string]handlers.Pinger{
			"lexicon": handlers.PingerFunc(func(context.Context) error { return nil }),
		}),
		MetricsHandler:  metrics.Handler(),
		MetricsObserver: metrics,
		Logger:          logging.NewNopLogger(),
		Mode:            gin.TestMode,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGenerateEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/generate", map[string]interface{}{
		"utterance": "Do I Need a Referral?",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result augment.GenerateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "do i need a referral", result.Utterance)
	assert.Contains(t, result.Candidates, "do i need a recommendation")
	assert.Contains(t, result.Candidates, "must i a referral")
}

func TestGenerateEndpoint_MissingUtterance(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/generate", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "COMMON_002", resp.Code)
}

func TestGenerateEndpoint_BlankUtterance(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/generate", map[string]interface{}{
		"utterance": "   ",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "GEN_004", resp.Code)
}

func TestGenerateEndpoint_BadThreshold(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/generate", map[string]interface{}{
		"utterance": "do i need a referral",
		"threshold": 2.5,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateEndpoint_PersistUnavailable(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/generate", map[string]interface{}{
		"utterance": "do i need a referral",
		"persist":   true,
	})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestBatchEndpoints_WithoutRepo(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/batches", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/batches/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"lexicon":"ok"`)
}

func TestReadyz_DegradedDependency(t *testing.T) {
	router := NewRouter(RouterConfig{
		HealthHandler: handlers.NewHealthHandler(map[string]handlers.Pinger{
			"redis": handlers.PingerFunc(func(context.Context) error {
				return assert.AnError
			}),
		}),
		Mode: gin.TestMode,
	})

	rec := doJSON(t, router, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	// Generate traffic first so the request counter appears.
	doJSON(t, router, http.MethodPost, "/api/v1/generate", map[string]interface{}{
		"utterance": "do i need a referral",
	})

	rec := doJSON(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "uttgen_test_http_requests_total")
	assert.Contains(t, rec.Body.String(), "uttgen_test_generations_total")
}
