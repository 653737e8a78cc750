// Package instrumentation wires OpenTelemetry metrics, tracing, and
// audit logging into the MCP server.
//
// # Metrics
//
// Recorders cover five areas:
//
//   - HTTP transport: http_requests_total, http_request_duration_seconds,
//     and the active_sessions gauge of in-flight MCP requests
//   - Google API calls: google_api_operations_total and
//     google_api_operation_duration_seconds, labeled by service,
//     operation, and status
//   - OAuth: oauth_auth_total by result
//   - MCP tools: mcp_tool_invocations_total and mcp_tool_duration_seconds
//     by tool name and status (account label only with detailed labels on)
//   - Availability scans: availability_scans_total and the
//     availability_slots_found histogram of slots per scan
//
// # Tracing
//
// Tool invocations run inside a tool.<name> server span; when a tool
// maps to one Google API operation, a google.<service>.<operation>
// client span nests under it. The sampled trace ID also lands on the
// matching audit entry.
//
// # Configuration
//
// Everything is driven by environment variables, see DefaultConfig:
// INSTRUMENTATION_ENABLED, METRICS_EXPORTER, TRACING_EXPORTER,
// OTEL_EXPORTER_OTLP_ENDPOINT, OTEL_TRACES_SAMPLER_ARG, and
// OTEL_SERVICE_NAME.
//
// # Example
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	recorder := provider.Metrics()
//	recorder.RecordGoogleAPIOperation(ctx, "calendar", "list", "success", time.Since(start))
//	recorder.RecordToolInvocation(ctx, "calendar_list_events", "success", account, time.Since(start))
package instrumentation
