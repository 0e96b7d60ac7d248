package instrumentation

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderDisabled(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, provider.Enabled())
	assert.Nil(t, provider.Metrics())
	assert.Nil(t, provider.PrometheusHandler())
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProviderPrometheus(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{
		ServiceName:     "mcp-powerscale-test",
		Enabled:         true,
		MetricsExporter: MetricsExporterPrometheus,
		TracingExporter: TracingExporterNone,
	})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	assert.True(t, provider.Enabled())
	require.NotNil(t, provider.Metrics())

	// Recording must not panic and must surface through the registry.
	provider.Metrics().RecordGather(context.Background(), StatusSuccess, 50*time.Millisecond)
	provider.Metrics().RecordCategoryFetch(context.Background(), "attributes", StatusSuccess, 10*time.Millisecond)
	provider.Metrics().RecordHTTPRequest(context.Background(), "GET", "/mcp", 200, 5*time.Millisecond)

	handler := provider.PrometheusHandler()
	require.NotNil(t, handler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "powerscale_gathers_total")
	assert.Contains(t, rec.Body.String(), "powerscale_category_fetches_total")
}

func TestNewProviderUnknownMetricsExporter(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{
		Enabled:         true,
		MetricsExporter: "graphite",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "graphite")
}

func TestNewProviderUnknownTracingExporter(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{
		Enabled:         true,
		MetricsExporter: MetricsExporterPrometheus,
		TracingExporter: "jaeger-agent",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jaeger-agent")
}

func TestProviderExporterNames(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{
		Enabled:         true,
		MetricsExporter: MetricsExporterPrometheus,
		TracingExporter: TracingExporterNone,
	})
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	assert.Equal(t, MetricsExporterPrometheus, provider.MetricsExporter())
	assert.Equal(t, TracingExporterNone, provider.TracingExporter())
}

func TestEngineRecorderDisabledProvider(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)

	recorder := provider.Recorder()

	ctx := context.Background()
	gotCtx, finish := recorder.StartGather(ctx, "req-1")
	assert.Equal(t, ctx, gotCtx)
	finish(nil)

	gotCtx, finish = recorder.StartFetch(ctx, "nodes")
	assert.Equal(t, ctx, gotCtx)
	finish(errors.New("boom"))
}

func TestEngineRecorderRecordsOutcomes(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{
		ServiceName:     "mcp-powerscale-test",
		Enabled:         true,
		MetricsExporter: MetricsExporterPrometheus,
		TracingExporter: TracingExporterNone,
	})
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	recorder := provider.Recorder()

	_, finishGather := recorder.StartGather(context.Background(), "req-1")
	_, finishFetch := recorder.StartFetch(context.Background(), "smb_shares")
	finishFetch(errors.New("unreachable"))
	finishGather(errors.New("unreachable"))

	rec := httptest.NewRecorder()
	provider.PrometheusHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `status="error"`)
	assert.Contains(t, body, `category="smb_shares"`)
}
