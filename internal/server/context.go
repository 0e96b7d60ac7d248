package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/giantswarm/mcp-powerscale/internal/info"
	"github.com/giantswarm/mcp-powerscale/internal/instrumentation"
	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

// DefaultShutdownTimeout bounds graceful shutdown of the HTTP transports.
const DefaultShutdownTimeout = 30 * time.Second

// ServerContext encapsulates all dependencies needed by the MCP server and
// the CLI, and provides a clean abstraction for dependency injection and
// lifecycle management.
type ServerContext struct {
	// Core dependencies
	client onefs.Client
	logger *slog.Logger
	config *Config
	engine *info.Engine

	// Optional instrumentation
	provider *instrumentation.Provider

	// Context management
	ctx    context.Context
	cancel context.CancelFunc

	// Lifecycle management
	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new ServerContext with default values. Use the
// provided functional options to customize the context; the OneFS client is
// a required dependency.
func NewServerContext(ctx context.Context, opts ...Option) (*ServerContext, error) {
	serverCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:    serverCtx,
		cancel: cancel,
		config: NewDefaultConfig(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(sc); err != nil {
			cancel()
			return nil, err
		}
	}

	if err := sc.validate(); err != nil {
		cancel()
		return nil, err
	}

	engineOpts := []info.EngineOption{info.WithLogger(sc.logger)}
	if sc.provider != nil {
		engineOpts = append(engineOpts, info.WithRecorder(sc.provider.Recorder()))
	}
	sc.engine = info.NewEngine(sc.client, engineOpts...)

	return sc, nil
}

// validate ensures all required dependencies are present.
func (sc *ServerContext) validate() error {
	if sc.client == nil {
		return ErrMissingClient
	}
	if sc.logger == nil {
		return ErrMissingLogger
	}
	if sc.config == nil {
		return ErrMissingConfig
	}
	return nil
}

// Client returns the OneFS client.
func (sc *ServerContext) Client() onefs.Client {
	return sc.client
}

// Logger returns the logger.
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// Config returns the server configuration.
func (sc *ServerContext) Config() *Config {
	return sc.config
}

// Engine returns the info gather engine.
func (sc *ServerContext) Engine() *info.Engine {
	return sc.engine
}

// InstrumentationProvider returns the instrumentation provider, or nil when
// instrumentation is disabled.
func (sc *ServerContext) InstrumentationProvider() *instrumentation.Provider {
	return sc.provider
}

// Context returns the server's base context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Shutdown releases the server context's resources. It is safe to call more
// than once.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.shutdown {
		return nil
	}
	sc.shutdown = true
	sc.cancel()

	if sc.provider != nil {
		return sc.provider.Shutdown(context.Background())
	}
	return nil
}

// IsShutdown reports whether Shutdown has run.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}
