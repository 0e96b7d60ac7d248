package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeStdioAnswersOnStdout(t *testing.T) {
	mcpSrv := mcpserver.NewMCPServer("mcp-powerscale", "test",
		mcpserver.WithToolCapabilities(true),
	)

	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test-client","version":"1.0.0"}}}` + "\n")
	var out bytes.Buffer

	err := serveStdio(context.Background(), mcpSrv, in, &out)
	require.NoError(t, err, "closed input stream is a normal stop")

	assert.Contains(t, out.String(), `"jsonrpc":"2.0"`)
	assert.Contains(t, out.String(), "mcp-powerscale")
}

func TestServeStdioStopsOnContextCancel(t *testing.T) {
	mcpSrv := mcpserver.NewMCPServer("mcp-powerscale", "test")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := serveStdio(ctx, mcpSrv, strings.NewReader(""), &out)
	assert.NoError(t, err, "cancellation is a graceful shutdown, not a failure")
}
