// Package logging provides structured logging utilities for mcp-powerscale.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// It defines the attribute keys shared by every component (operation,
// category, zone, host, request id, duration, status) together with typed
// attribute constructors, plus host sanitization that redacts IP literals
// before they reach log output. Loggers are always passed in explicitly;
// nothing in this package installs a process-wide logger.
package logging
