package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-powerscale/internal/instrumentation"
	"github.com/giantswarm/mcp-powerscale/internal/logging"
	"github.com/giantswarm/mcp-powerscale/internal/server"
)

// WrapWithInstrumentation wraps a tool handler with a tool span and a
// structured invocation log. The wrapper captures:
//   - Tool invocation timing
//   - Success/error status, including errors carried in the MCP result
//   - OpenTelemetry trace context for correlation
//
// MCP tool failures are reported inside the result rather than as Go
// errors, so the wrapper inspects both.
func WrapWithInstrumentation(
	toolName string,
	handler ToolHandler,
	sc *server.ServerContext,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := logging.WithTool(sc.Logger(), toolName)

		ctx, span := instrumentation.StartToolSpan(ctx, toolName)
		defer span.End()

		start := time.Now()
		result, err := handler(ctx, request, sc)
		duration := time.Since(start)

		switch {
		case err != nil:
			instrumentation.SetSpanError(span, err)
			logger.Error("tool invocation failed",
				logging.Duration(duration),
				logging.Status(logging.StatusError),
				logging.SanitizedErr(err),
			)
		case result != nil && result.IsError:
			// The handler reported the failure to the client already, so
			// log it without a Go error value.
			logger.Warn("tool invocation returned error result",
				logging.Duration(duration),
				logging.Status(logging.StatusError),
			)
		default:
			instrumentation.SetSpanSuccess(span)
			logger.Debug("tool invocation complete",
				logging.Duration(duration),
				logging.Status(logging.StatusSuccess),
			)
		}

		if traceID := instrumentation.GetTraceID(ctx); traceID != "" && err != nil {
			logger.Debug("trace context", "trace_id", traceID)
		}

		return result, err
	}
}
