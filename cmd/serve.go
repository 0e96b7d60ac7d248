package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-powerscale/internal/instrumentation"
	"github.com/giantswarm/mcp-powerscale/internal/onefs"
	"github.com/giantswarm/mcp-powerscale/internal/server"
	infotools "github.com/giantswarm/mcp-powerscale/internal/tools/info"
)

// Transport type constants for the MCP server.
const (
	transportStdio          = "stdio"
	transportSSE            = "sse"
	transportStreamableHTTP = "streamable-http"
)

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	var config ServeConfig

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP PowerScale server",
		Long: `Start the MCP PowerScale server to provide read-only cluster
information tools via the Model Context Protocol.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - sse: Server-Sent Events over HTTP
  - streamable-http: Streamable HTTP transport

Cluster connection settings come from flags, the ONEFS_* environment
variables, or a YAML config file, in that order of precedence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(config)
		},
	}

	// Cluster connection flags
	cmd.Flags().StringVar(&config.Cluster.Host, "host", "", "PowerScale cluster hostname or IP (can also be set via ONEFS_HOST)")
	cmd.Flags().IntVar(&config.Cluster.Port, "port", 0, fmt.Sprintf("PowerScale API port (default: %d, can also be set via ONEFS_PORT)", onefs.DefaultPort))
	cmd.Flags().StringVar(&config.Cluster.Username, "username", "", "PowerScale API username (can also be set via ONEFS_USERNAME)")
	cmd.Flags().StringVar(&config.Cluster.Password, "password", "", "PowerScale API password (can also be set via ONEFS_PASSWORD)")
	cmd.Flags().BoolVar(&config.Cluster.VerifySSL, "verify-ssl", false, "Verify the cluster's TLS certificate (can also be set via ONEFS_VERIFY_SSL)")
	cmd.Flags().DurationVar(&config.Cluster.Timeout, "timeout", 0, "PowerScale API request timeout (default: 120s)")
	cmd.Flags().StringVar(&config.Cluster.ConfigFile, "config", "", "Path to a YAML config file with connection settings")
	cmd.Flags().BoolVar(&config.Debug, "debug", false, "Enable debug logging (default: false)")

	// Transport flags
	cmd.Flags().StringVar(&config.Transport, "transport", transportStdio, "Transport type: stdio, sse, or streamable-http")
	cmd.Flags().StringVar(&config.HTTPAddr, "http-addr", ":8080", "HTTP server address (for sse and streamable-http transports)")
	cmd.Flags().StringVar(&config.SSEEndpoint, "sse-endpoint", "/sse", "SSE endpoint path (for sse transport)")
	cmd.Flags().StringVar(&config.MessageEndpoint, "message-endpoint", "/message", "Message endpoint path (for sse transport)")
	cmd.Flags().StringVar(&config.HTTPEndpoint, "http-endpoint", "/mcp", "HTTP endpoint path (for streamable-http transport)")

	// Metrics flags
	cmd.Flags().BoolVar(&config.Metrics.Enabled, "metrics", true, "Serve Prometheus metrics on a dedicated port when instrumentation is enabled")
	cmd.Flags().StringVar(&config.Metrics.Addr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server listen address")

	return cmd
}

// newLogger builds the process logger. Logs always go to stderr so stdio
// transport framing on stdout stays clean.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// runServe contains the main server logic with support for multiple transports
func runServe(config ServeConfig) error {
	logger := newLogger(config.Debug)

	serverConfig, err := buildServerConfig(config.Cluster, rootCmd.Version)
	if err != nil {
		return err
	}

	clientConfig := serverConfig.ClientConfig()
	clientConfig.Logger = logger
	client, err := onefs.NewRESTClient(clientConfig)
	if err != nil {
		return fmt.Errorf("failed to create OneFS client: %w", err)
	}

	// Setup graceful shutdown - listen for both SIGINT and SIGTERM
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize OpenTelemetry instrumentation provider
	instrumentationConfig := instrumentation.DefaultConfig()
	instrumentationConfig.ServiceVersion = rootCmd.Version
	provider, err := instrumentation.NewProvider(shutdownCtx, instrumentationConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}

	if provider.Enabled() {
		logger.Info("OpenTelemetry instrumentation enabled",
			"metrics_exporter", instrumentationConfig.MetricsExporter,
			"tracing_exporter", instrumentationConfig.TracingExporter)
	}

	serverContext, err := server.NewServerContext(shutdownCtx,
		server.WithClient(client),
		server.WithLogger(logger),
		server.WithConfig(serverConfig),
		server.WithInstrumentation(provider),
	)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil {
			// Only log shutdown errors for non-stdio transports to avoid
			// output interference
			if config.Transport != transportStdio {
				logger.Error("error during server context shutdown", "error", err)
			}
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("mcp-powerscale", rootCmd.Version,
		mcpserver.WithToolCapabilities(true),
	)

	if err := infotools.RegisterInfoTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register info tools: %w", err)
	}

	// Start the appropriate server based on transport type
	switch config.Transport {
	case transportStdio:
		// Don't print startup messages for stdio mode as it interferes
		// with MCP communication
		return runStdioServer(shutdownCtx, mcpSrv)
	case transportSSE:
		logger.Info("starting MCP PowerScale server", "transport", config.Transport)
		return runSSEServer(shutdownCtx, mcpSrv, config, logger)
	case transportStreamableHTTP:
		logger.Info("starting MCP PowerScale server", "transport", config.Transport)
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, config, provider, serverContext, logger)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, sse, streamable-http)", config.Transport)
	}
}

// shutdownTimeout returns a context bounded by the graceful shutdown window.
func shutdownTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
}
