package instrumentation

import (
	"fmt"
	"os"
	"strconv"
)

// Config controls the OpenTelemetry setup: which exporters run, how
// traces are sampled, and how much identifying detail ends up on
// metric labels and audit logs.
type Config struct {
	// ServiceName identifies the service in exported telemetry
	// (default: agendo).
	ServiceName string

	// ServiceVersion is stamped onto the telemetry resource.
	ServiceVersion string

	// ServiceInstanceID distinguishes replicas; in Kubernetes this is
	// usually the pod name. Falls back to the hostname when empty.
	ServiceInstanceID string

	// K8sNamespace and K8sPodName annotate the resource when running
	// in a cluster.
	K8sNamespace string
	K8sPodName   string

	// Enabled turns instrumentation on or off entirely. When false,
	// all recorders become no-ops (INSTRUMENTATION_ENABLED=false).
	Enabled bool

	// MetricsExporter is one of "prometheus", "otlp", "stdout"
	// (default: prometheus).
	MetricsExporter string

	// TracingExporter is one of "otlp", "stdout", "none"
	// (default: none).
	TracingExporter string

	// OTLPEndpoint is the collector address without a protocol
	// prefix, e.g. "localhost:4318". Required for either OTLP
	// exporter.
	OTLPEndpoint string

	// OTLPInsecure sends OTLP over plain HTTP instead of TLS. Spans
	// can carry calendar and account metadata, so leave this off
	// outside local development.
	OTLPInsecure bool

	// TraceSamplingRate is the fraction of traces kept, 0.0 to 1.0
	// (default: 0.1).
	TraceSamplingRate float64

	// PrometheusEndpoint is the HTTP path serving Prometheus metrics
	// (default: "/metrics").
	PrometheusEndpoint string

	// DetailedLabels adds high-cardinality labels such as the account
	// name to tool metrics. Off by default; each distinct value is a
	// separate time series.
	DetailedLabels bool

	// AuditLogging configures the audit trail for tool invocations.
	AuditLogging AuditLoggingConfig
}

// AuditLoggingConfig holds configuration for audit logging.
type AuditLoggingConfig struct {
	// Enabled turns the audit trail on (default: true). Audit entries
	// can carry user emails and belong in access-controlled storage.
	Enabled bool

	// IncludePII logs full email addresses instead of hashed
	// identifiers. Off by default; enable only where compliance
	// requires the raw address.
	IncludePII bool

	// LogLevel is the slog level used for audit entries: "debug",
	// "info", "warn", or "error" (default: info). Entries are emitted
	// regardless of the handler's minimum level.
	LogLevel string
}

// DefaultConfig builds a Config from environment variables, falling
// back to defaults suitable for a local stdio server.
func DefaultConfig() Config {
	return Config{
		ServiceName:        getEnvOrDefault("OTEL_SERVICE_NAME", "agendo"),
		ServiceVersion:     "unknown",
		ServiceInstanceID:  getEnvOrDefault("OTEL_SERVICE_INSTANCE_ID", ""),
		K8sNamespace:       getEnvOrDefault("K8S_NAMESPACE", getEnvOrDefault("POD_NAMESPACE", "")),
		K8sPodName:         getEnvOrDefault("K8S_POD_NAME", getEnvOrDefault("HOSTNAME", "")),
		Enabled:            getEnvBoolOrDefault("INSTRUMENTATION_ENABLED", true),
		MetricsExporter:    getEnvOrDefault("METRICS_EXPORTER", ExporterPrometheus),
		TracingExporter:    getEnvOrDefault("TRACING_EXPORTER", ExporterNone),
		OTLPEndpoint:       getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTLPInsecure:       getEnvBoolOrDefault("OTEL_EXPORTER_OTLP_INSECURE", false),
		TraceSamplingRate:  getEnvFloatOrDefault("OTEL_TRACES_SAMPLER_ARG", 0.1),
		PrometheusEndpoint: getEnvOrDefault("PROMETHEUS_ENDPOINT", "/metrics"),
		DetailedLabels:     getEnvBoolOrDefault("METRICS_DETAILED_LABELS", false),
		AuditLogging: AuditLoggingConfig{
			Enabled:    getEnvBoolOrDefault("AUDIT_LOGGING_ENABLED", true),
			IncludePII: getEnvBoolOrDefault("AUDIT_LOGGING_INCLUDE_PII", false),
			LogLevel:   getEnvOrDefault("AUDIT_LOGGING_LEVEL", "info"),
		},
	}
}

// Validate rejects exporter names the provider cannot construct and
// OTLP selections that lack an endpoint.
func (c *Config) Validate() error {
	if c.TraceSamplingRate < 0 || c.TraceSamplingRate > 1 {
		return fmt.Errorf("trace sampling rate must be between 0.0 and 1.0, got %f", c.TraceSamplingRate)
	}

	switch c.MetricsExporter {
	case "", ExporterPrometheus, ExporterOTLP, ExporterStdout:
	default:
		return fmt.Errorf("invalid metrics exporter %q, must be one of: prometheus, otlp, stdout", c.MetricsExporter)
	}

	switch c.TracingExporter {
	case "", ExporterOTLP, ExporterStdout, ExporterNone:
	default:
		return fmt.Errorf("invalid tracing exporter %q, must be one of: otlp, stdout, none", c.TracingExporter)
	}

	if c.TracingExporter == ExporterOTLP && c.OTLPEndpoint == "" {
		return fmt.Errorf("OTLP endpoint is required when using OTLP tracing exporter")
	}
	if c.MetricsExporter == ExporterOTLP && c.OTLPEndpoint == "" {
		return fmt.Errorf("OTLP endpoint is required when using OTLP metrics exporter")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

// Metric label values shared across recorders.
const (
	StatusSuccess = "success"
	StatusError   = "error"

	OAuthResultSuccess = "success"
	OAuthResultFailure = "failure"

	ServiceCalendar = "calendar"
	ServiceSchedule = "schedule"

	ExporterPrometheus = "prometheus"
	ExporterOTLP       = "otlp"
	ExporterStdout     = "stdout"
	ExporterNone       = "none"
)
