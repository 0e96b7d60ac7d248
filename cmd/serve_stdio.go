package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// runStdioServer serves MCP over stdin/stdout until the shutdown context is
// cancelled or the input stream closes. Stdout carries protocol frames only,
// so this path never writes anything else there.
func runStdioServer(ctx context.Context, mcpSrv *mcpserver.MCPServer) error {
	return serveStdio(ctx, mcpSrv, os.Stdin, os.Stdout)
}

func serveStdio(ctx context.Context, mcpSrv *mcpserver.MCPServer, in io.Reader, out io.Writer) error {
	stdioServer := mcpserver.NewStdioServer(mcpSrv)
	err := stdioServer.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio transport stopped: %w", err)
	}
	return nil
}
