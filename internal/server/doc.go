// Package server provides the dependency injection container and runtime
// plumbing shared by the MCP server and the CLI commands.
//
// ServerContext bundles the OneFS client, the gather engine, the logger, the
// configuration, and the optional instrumentation provider behind functional
// options. Config layers values from defaults, an optional YAML file,
// environment variables, and command line flags, in increasing precedence.
// HealthChecker exposes the /healthz, /readyz, and /healthz/detailed probe
// endpoints used by the HTTP transport.
package server
