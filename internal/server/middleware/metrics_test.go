package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-powerscale/internal/instrumentation"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "static path unchanged",
			input:    "/healthz",
			expected: "/healthz",
		},
		{
			name:     "mcp session id collapsed",
			input:    "/mcp/aBc123xyz_-0",
			expected: "/mcp/:session",
		},
		{
			name:     "mcp root unchanged",
			input:    "/mcp",
			expected: "/mcp",
		},
		{
			name:     "uuid replaced",
			input:    "/requests/550e8400-e29b-41d4-a716-446655440000",
			expected: "/requests/:uuid",
		},
		{
			name:     "numeric id replaced",
			input:    "/nodes/42/status",
			expected: "/nodes/:id/status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizePath(tt.input))
		})
	}
}

func TestHTTPMetricsNilProvider(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	handler := HTTPMetrics(nil)(next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/mcp", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestHTTPMetricsRecordsRequests(t *testing.T) {
	provider, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{
		ServiceName:     "mcp-powerscale-test",
		Enabled:         true,
		MetricsExporter: instrumentation.MetricsExporterPrometheus,
		TracingExporter: instrumentation.TracingExporterNone,
	})
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := HTTPMetrics(provider)(next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/mcp/aBc123xyz_-0", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	metricsRec := httptest.NewRecorder()
	provider.PrometheusHandler().ServeHTTP(metricsRec, httptest.NewRequest("GET", "/metrics", nil))
	body := metricsRec.Body.String()
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, `path="/mcp/:session"`)
}

func TestResponseWriterCapturesFirstStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rw.statusCode)
}
