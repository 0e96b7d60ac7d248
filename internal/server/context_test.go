package server

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-powerscale/internal/info/infotest"
	"github.com/giantswarm/mcp-powerscale/internal/instrumentation"
)

func TestNewServerContext(t *testing.T) {
	client := infotest.NewMockClient()

	sc, err := NewServerContext(context.Background(), WithClient(client))
	require.NoError(t, err)
	defer func() { _ = sc.Shutdown() }()

	assert.Equal(t, client, sc.Client())
	assert.NotNil(t, sc.Logger())
	assert.NotNil(t, sc.Config())
	assert.NotNil(t, sc.Engine())
	assert.Nil(t, sc.InstrumentationProvider())
	assert.False(t, sc.IsShutdown())
}

func TestNewServerContextRequiresClient(t *testing.T) {
	_, err := NewServerContext(context.Background())
	assert.ErrorIs(t, err, ErrMissingClient)
}

func TestNewServerContextRejectsNilOptions(t *testing.T) {
	client := infotest.NewMockClient()

	_, err := NewServerContext(context.Background(), WithClient(client), WithLogger(nil))
	assert.ErrorIs(t, err, ErrMissingLogger)

	_, err = NewServerContext(context.Background(), WithClient(client), WithConfig(nil))
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestServerContextOptions(t *testing.T) {
	client := infotest.NewMockClient()
	logger := slog.Default().With("test", true)
	cfg := NewDefaultConfig()
	cfg.Host = "cluster.example.com"

	sc, err := NewServerContext(context.Background(),
		WithClient(client),
		WithLogger(logger),
		WithConfig(cfg),
	)
	require.NoError(t, err)
	defer func() { _ = sc.Shutdown() }()

	assert.Equal(t, logger, sc.Logger())
	assert.Equal(t, cfg, sc.Config())
}

func TestServerContextWithInstrumentation(t *testing.T) {
	provider, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{
		ServiceName:     "mcp-powerscale-test",
		Enabled:         true,
		MetricsExporter: instrumentation.MetricsExporterPrometheus,
		TracingExporter: instrumentation.TracingExporterNone,
	})
	require.NoError(t, err)

	sc, err := NewServerContext(context.Background(),
		WithClient(infotest.NewMockClient()),
		WithInstrumentation(provider),
	)
	require.NoError(t, err)

	assert.Equal(t, provider, sc.InstrumentationProvider())

	// Shutdown tears down the provider as well.
	require.NoError(t, sc.Shutdown())
	assert.True(t, sc.IsShutdown())
}

func TestServerContextShutdownIsIdempotent(t *testing.T) {
	sc, err := NewServerContext(context.Background(), WithClient(infotest.NewMockClient()))
	require.NoError(t, err)

	require.NoError(t, sc.Shutdown())
	require.NoError(t, sc.Shutdown())
	assert.True(t, sc.IsShutdown())

	select {
	case <-sc.Context().Done():
	default:
		t.Fatal("server context should be canceled after Shutdown")
	}
}
