package server

import (
	"errors"
	"log/slog"

	"github.com/giantswarm/mcp-powerscale/internal/instrumentation"
	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

var (
	// ErrMissingClient is returned when no OneFS client was provided.
	ErrMissingClient = errors.New("onefs client is required")
	// ErrMissingLogger is returned when the logger was set to nil.
	ErrMissingLogger = errors.New("logger is required")
	// ErrMissingConfig is returned when the configuration was set to nil.
	ErrMissingConfig = errors.New("config is required")
)

// Option configures a ServerContext during construction.
type Option func(*ServerContext) error

// WithClient sets the OneFS client.
func WithClient(client onefs.Client) Option {
	return func(sc *ServerContext) error {
		if client == nil {
			return ErrMissingClient
		}
		sc.client = client
		return nil
	}
}

// WithLogger sets the logger used by the server and the gather engine.
func WithLogger(logger *slog.Logger) Option {
	return func(sc *ServerContext) error {
		if logger == nil {
			return ErrMissingLogger
		}
		sc.logger = logger
		return nil
	}
}

// WithConfig sets the server configuration.
func WithConfig(cfg *Config) Option {
	return func(sc *ServerContext) error {
		if cfg == nil {
			return ErrMissingConfig
		}
		sc.config = cfg
		return nil
	}
}

// WithInstrumentation attaches an instrumentation provider. The provider's
// recorder is wired into the gather engine and its lifecycle is tied to the
// server context's Shutdown.
func WithInstrumentation(provider *instrumentation.Provider) Option {
	return func(sc *ServerContext) error {
		sc.provider = provider
		return nil
	}
}
