package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-powerscale/internal/info/infotest"
	"github.com/giantswarm/mcp-powerscale/internal/server"
)

func newWrapperServerContext(t *testing.T) *server.ServerContext {
	t.Helper()

	sc, err := server.NewServerContext(context.Background(),
		server.WithClient(infotest.NewMockClient()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func TestWrapWithInstrumentationPassesThroughResult(t *testing.T) {
	sc := newWrapperServerContext(t)

	handler := func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("ok"), nil
	}

	wrapped := WrapWithInstrumentation("powerscale_info", handler, sc)
	result, err := wrapped(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, result.IsError)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "ok", text.Text)
}

func TestWrapWithInstrumentationPassesThroughError(t *testing.T) {
	sc := newWrapperServerContext(t)
	handlerErr := errors.New("backend unavailable")

	handler := func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
		return nil, handlerErr
	}

	wrapped := WrapWithInstrumentation("powerscale_info", handler, sc)
	result, err := wrapped(context.Background(), mcp.CallToolRequest{})
	assert.ErrorIs(t, err, handlerErr)
	assert.Nil(t, result)
}

func TestWrapWithInstrumentationErrorResult(t *testing.T) {
	sc := newWrapperServerContext(t)

	handler := func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultError("bad input"), nil
	}

	wrapped := WrapWithInstrumentation("powerscale_info", handler, sc)
	result, err := wrapped(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
