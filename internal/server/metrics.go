package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/giantswarm/mcp-powerscale/internal/instrumentation"
)

// DefaultMetricsAddr is the default listen address for the metrics server.
const DefaultMetricsAddr = ":9090"

// MetricsServerConfig configures the dedicated metrics server.
type MetricsServerConfig struct {
	// Addr is the listen address (default: DefaultMetricsAddr)
	Addr string

	// InstrumentationProvider supplies the Prometheus handler
	InstrumentationProvider *instrumentation.Provider
}

// MetricsServer serves Prometheus metrics on a dedicated port, isolated
// from the main MCP traffic.
type MetricsServer struct {
	srv  *http.Server
	addr string

	mu      sync.Mutex
	started bool
}

// NewMetricsServer creates a metrics server around the provider's
// Prometheus handler.
func NewMetricsServer(config MetricsServerConfig) (*MetricsServer, error) {
	if config.InstrumentationProvider == nil {
		return nil, errors.New("instrumentation provider is required")
	}

	addr := config.Addr
	if addr == "" {
		addr = DefaultMetricsAddr
	}

	mux := http.NewServeMux()
	if handler := config.InstrumentationProvider.PrometheusHandler(); handler != nil {
		mux.Handle("/metrics", handler)
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &MetricsServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		addr: addr,
	}, nil
}

// Addr returns the configured listen address.
func (s *MetricsServer) Addr() string {
	return s.addr
}

// Start runs the metrics server until Shutdown is called. It blocks, so
// callers usually run it in a goroutine.
func (s *MetricsServer) Start() error {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops the metrics server. Calling Shutdown before
// Start is a no-op.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	if !started {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
