package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clipper-app-api/api/middleware"
	"clipper-app-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	assert.NotNil(t, api)
	assert.NotNil(t, router)
}

func TestNewAPI_Info(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info
	assert.Equal(t, "Clipper API", info.Title)
	assert.Equal(t, "1.0.0", info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", w.Header().Get("Content-Type"))
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html", w.Header().Get("Content-Type"))
}

type pingOutput struct {
	Body struct {
		Search bool `json:"search"`
	}
}

func TestNewAPIWithMiddleware_FlagsReachHandlers(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{featureflags.SearchEnabled: true})
	api, router := NewAPIWithMiddleware(APIConfig{Flags: flags})

	huma.Get(api, "/ping", func(ctx context.Context, input *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.Search = featureflags.IsEnabled(ctx, featureflags.SearchEnabled)
		return out, nil
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Search bool `json:"search"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Search)
}

func TestMetricsEndpoint_FollowsFlag(t *testing.T) {
	tests := []struct {
		name           string
		enabled        bool
		expectedStatus int
	}{
		{"enabled", true, http.StatusOK},
		{"disabled", false, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{featureflags.MetricsEnabled: tt.enabled})
			_, router := NewAPIWithMiddleware(APIConfig{Flags: flags})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNewAPIWithMiddleware_RateLimit(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{featureflags.RateLimitEnabled: true})
	_, router := NewAPIWithMiddleware(APIConfig{
		Flags:   flags,
		Limiter: middleware.NewRateLimiter(1, time.Minute),
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
