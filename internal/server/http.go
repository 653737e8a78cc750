package server

import (
	"context"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bytorbix/agendo/internal/instrumentation"
)

// HTTPServer serves the MCP protocol over streamable HTTP, with health
// check endpoints alongside the /mcp endpoint.
type HTTPServer struct {
	mcpServer        *mcpserver.MCPServer
	httpServer       *http.Server
	healthChecker    *HealthChecker
	metrics          *instrumentation.Metrics
	disableStreaming bool
}

// NewHTTPServer creates a streamable HTTP server for the given MCP server.
func NewHTTPServer(mcpSrv *mcpserver.MCPServer, disableStreaming bool) *HTTPServer {
	return &HTTPServer{
		mcpServer:        mcpSrv,
		disableStreaming: disableStreaming,
	}
}

// SetHealthChecker attaches health check endpoints to the server.
func (s *HTTPServer) SetHealthChecker(hc *HealthChecker) {
	s.healthChecker = hc
}

// SetMetrics enables HTTP request metrics on the /mcp endpoint.
func (s *HTTPServer) SetMetrics(m *instrumentation.Metrics) {
	s.metrics = m
}

// statusRecorder captures the response status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrumented wraps a handler with HTTP request metrics.
func (s *HTTPServer) instrumented(path string, next http.Handler) http.Handler {
	if s.metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.metrics.IncrementActiveSessions(r.Context())
		defer s.metrics.DecrementActiveSessions(r.Context())

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.metrics.RecordHTTPRequest(r.Context(), r.Method, path, rec.status, time.Since(start))
	})
}

// Start starts the HTTP server on the given address. Blocks until the
// server stops.
func (s *HTTPServer) Start(addr string) error {
	mux := http.NewServeMux()

	var streamable http.Handler
	if s.disableStreaming {
		streamable = mcpserver.NewStreamableHTTPServer(s.mcpServer,
			mcpserver.WithEndpointPath("/mcp"),
			mcpserver.WithDisableStreaming(true),
		)
	} else {
		streamable = mcpserver.NewStreamableHTTPServer(s.mcpServer,
			mcpserver.WithEndpointPath("/mcp"),
		)
	}
	mux.Handle("/mcp", s.instrumented("/mcp", streamable))

	if s.healthChecker != nil {
		s.healthChecker.RegisterHealthEndpoints(mux)
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
