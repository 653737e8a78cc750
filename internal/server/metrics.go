package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bytorbix/agendo/internal/instrumentation"
)

const (
	// DefaultMetricsAddr is where the metrics server listens unless
	// configured otherwise.
	DefaultMetricsAddr = ":9090"

	// DefaultShutdownTimeout bounds graceful shutdown of the HTTP servers.
	DefaultShutdownTimeout = 30 * time.Second

	metricsReadHeaderTimeout = 10 * time.Second
	metricsWriteTimeout      = 10 * time.Second
	metricsIdleTimeout       = 60 * time.Second
)

// MetricsServerConfig holds configuration for the metrics server.
type MetricsServerConfig struct {
	// Addr is the listen address, e.g. ":9090".
	Addr string

	// Enabled gates whether the caller starts the server at all.
	Enabled bool

	// InstrumentationProvider must be enabled; it owns the Prometheus
	// exporter whose metrics this server exposes.
	InstrumentationProvider *instrumentation.Provider
}

// MetricsServer serves Prometheus metrics on its own port, keeping
// operational metrics off the MCP transport.
type MetricsServer struct {
	httpServer *http.Server
	addr       string
}

// NewMetricsServer validates the configuration and prepares a metrics
// server. Scraping happens on /metrics.
func NewMetricsServer(config MetricsServerConfig) (*MetricsServer, error) {
	if config.Addr == "" {
		config.Addr = DefaultMetricsAddr
	}

	if config.InstrumentationProvider == nil {
		return nil, fmt.Errorf("instrumentation provider is required for metrics server")
	}

	if !config.InstrumentationProvider.Enabled() {
		return nil, fmt.Errorf("instrumentation provider is not enabled")
	}

	return &MetricsServer{
		addr: config.Addr,
	}, nil
}

// Start runs the metrics server and blocks until it stops.
func (s *MetricsServer) Start() error {
	return s.StartWithReadySignal(nil)
}

// StartWithReadySignal runs the metrics server, closing ready once the
// listener is bound. Blocks until the server stops.
func (s *MetricsServer) StartWithReadySignal(ready chan struct{}) error {
	mux := http.NewServeMux()

	// The OpenTelemetry Prometheus exporter registers with the global
	// registry, so the stock promhttp handler exposes everything.
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
		WriteTimeout:      metricsWriteTimeout,
		IdleTimeout:       metricsIdleTimeout,
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	slog.Info("starting metrics server", "addr", s.addr)
	if ready != nil {
		close(ready)
	}
	return s.httpServer.Serve(ln)
}

// Shutdown stops the metrics server, waiting for in-flight scrapes up
// to the context deadline.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		slog.Info("shutting down metrics server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Addr returns the configured listen address.
func (s *MetricsServer) Addr() string {
	return s.addr
}
