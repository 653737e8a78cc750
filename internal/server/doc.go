// Package server provides the MCP server context and supporting HTTP
// servers for the agendo application.
//
// # Key Components
//
// ServerContext manages Google Calendar clients with lazy initialization
// and caching. It supports multiple accounts via per-account token files
// (see the internal/google package) and carries the instrumentation
// recorder and audit logger used by tool handlers.
//
// MetricsServer exposes Prometheus metrics on a dedicated port, isolated
// from the MCP transport itself.
//
// HealthChecker provides /healthz and /readyz endpoints for liveness and
// readiness probing when the server runs over HTTP transport.
package server
