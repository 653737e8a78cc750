package instrumentation

import (
	"context"
	"testing"
	"time"
)

// newTestMetrics builds an enabled provider with the Prometheus exporter and
// returns its metrics, registering cleanup on the test.
func newTestMetrics(t *testing.T, detailedLabels bool) *Metrics {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
		DetailedLabels:  detailedLabels,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}
	return metrics
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	metrics := newTestMetrics(t, false)
	ctx := context.Background()

	// Should not panic
	metrics.RecordHTTPRequest(ctx, "GET", "/mcp", 200, 100*time.Millisecond)
	metrics.RecordHTTPRequest(ctx, "POST", "/mcp", 500, 50*time.Millisecond)
}

func TestMetrics_RecordGoogleAPIOperation(t *testing.T) {
	metrics := newTestMetrics(t, false)
	ctx := context.Background()

	// Should not panic
	metrics.RecordGoogleAPIOperation(ctx, ServiceCalendar, OperationList, StatusSuccess, 200*time.Millisecond)
	metrics.RecordGoogleAPIOperation(ctx, ServiceCalendar, OperationCreate, StatusError, 500*time.Millisecond)
	metrics.RecordGoogleAPIOperation(ctx, ServiceSchedule, OperationScan, StatusSuccess, 100*time.Millisecond)
}

func TestMetrics_RecordOAuthAuth(t *testing.T) {
	metrics := newTestMetrics(t, false)
	ctx := context.Background()

	// Should not panic
	metrics.RecordOAuthAuth(ctx, OAuthResultSuccess)
	metrics.RecordOAuthAuth(ctx, OAuthResultFailure)
}

func TestMetrics_RecordToolInvocation(t *testing.T) {
	metrics := newTestMetrics(t, false)
	ctx := context.Background()

	// Account labels are dropped without detailed labels; should not panic.
	metrics.RecordToolInvocation(ctx, "calendar_list_events", StatusSuccess, "work", 100*time.Millisecond)
	metrics.RecordToolInvocation(ctx, "calendar_create_event", StatusError, "", 500*time.Millisecond)
}

func TestMetrics_RecordToolInvocation_DetailedLabels(t *testing.T) {
	metrics := newTestMetrics(t, true)
	ctx := context.Background()

	// Should not panic - account label included
	metrics.RecordToolInvocation(ctx, "schedule_find_free_time", StatusSuccess, "work", 100*time.Millisecond)
}

func TestMetrics_RecordAvailabilityScan(t *testing.T) {
	metrics := newTestMetrics(t, false)
	ctx := context.Background()

	// Should not panic
	metrics.RecordAvailabilityScan(ctx, StatusSuccess, 3)
	metrics.RecordAvailabilityScan(ctx, StatusSuccess, 0)
	metrics.RecordAvailabilityScan(ctx, StatusError, 0)
}

func TestMetrics_ActiveSessions(t *testing.T) {
	metrics := newTestMetrics(t, false)
	ctx := context.Background()

	// Should not panic
	metrics.IncrementActiveSessions(ctx)
	metrics.IncrementActiveSessions(ctx)
	metrics.DecrementActiveSessions(ctx)
}

func TestMetrics_NoOp_WhenDisabled(t *testing.T) {
	ctx := context.Background()

	provider, err := NewProvider(ctx, Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Enabled:        false,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil even when disabled")
	}

	// All these should not panic even with nil underlying metrics
	metrics.RecordHTTPRequest(ctx, "GET", "/mcp", 200, 100*time.Millisecond)
	metrics.RecordGoogleAPIOperation(ctx, ServiceCalendar, OperationList, StatusSuccess, 200*time.Millisecond)
	metrics.RecordOAuthAuth(ctx, OAuthResultSuccess)
	metrics.RecordToolInvocation(ctx, "test_tool", StatusSuccess, "work", 100*time.Millisecond)
	metrics.RecordAvailabilityScan(ctx, StatusSuccess, 1)
	metrics.IncrementActiveSessions(ctx)
	metrics.DecrementActiveSessions(ctx)
}
