// Package cmd provides the command-line interface for mcp-powerscale.
//
// This package implements a Cobra-based CLI with multiple subcommands:
//   - serve: Starts the MCP server (default behavior when no subcommand is provided)
//   - gather: Gathers cluster information once and prints it as JSON
//   - version: Displays the application version
//   - self-update: Updates the binary to the latest version from GitHub releases
//
// The CLI runs the serve command when no subcommand is specified.
//
// Command Structure:
//
//	mcp-powerscale [flags]                  # Starts the MCP server (default)
//	mcp-powerscale serve [flags]            # Explicitly starts the MCP server
//	mcp-powerscale gather [flags]           # One-shot info gathering
//	mcp-powerscale version                  # Shows version information
//	mcp-powerscale self-update              # Updates to latest release
//	mcp-powerscale help [command]           # Shows help information
//
// The serve command supports multiple transport options:
//   - stdio: Standard input/output (default) - for command-line integration
//   - sse: Server-Sent Events over HTTP - for web-based clients
//   - streamable-http: Streamable HTTP transport - for HTTP-based integration
//
// Transport Configuration Examples:
//
//	mcp-powerscale serve --transport stdio           # Default STDIO transport
//	mcp-powerscale serve --transport sse --http-addr :8080 --sse-endpoint /sse
//	mcp-powerscale serve --transport streamable-http --http-addr :9000 --http-endpoint /mcp
//
// Cluster connection settings (host, credentials, TLS verification) come
// from flags, the ONEFS_* environment variables, or a YAML config file, in
// that order of precedence.
package cmd
