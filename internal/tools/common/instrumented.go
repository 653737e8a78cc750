package common

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.opentelemetry.io/otel/trace"

	"github.com/bytorbix/agendo/internal/instrumentation"
	"github.com/bytorbix/agendo/internal/server"
)

// ToolHandler is the handler signature expected by the MCP server.
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// InstrumentedToolHandler wraps a tool handler with a tool span, invocation
// metrics, and audit logging. When neither metrics nor audit logging is
// configured on the server context the handler runs bare.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(toolName string, sc *server.ServerContext, handler ToolHandler) ToolHandler {
	return instrumented(toolName, "", "", sc, handler)
}

// InstrumentedToolHandlerWithService additionally tags the invocation with the
// Google service and operation type, feeding the google_api_operations metrics
// and nesting a client span under the tool span.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandlerWithService("my_tool", "calendar", "list", sc, handler))
func InstrumentedToolHandlerWithService(toolName, serviceName, operation string, sc *server.ServerContext, handler ToolHandler) ToolHandler {
	return instrumented(toolName, serviceName, operation, sc, handler)
}

func instrumented(toolName, serviceName, operation string, sc *server.ServerContext, handler ToolHandler) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics := sc.Metrics()
		auditLogger := sc.AuditLogger()
		if metrics == nil && auditLogger == nil {
			return handler(ctx, request)
		}

		account := GetAccountFromArgs(ctx, request.GetArguments())

		spanAttrs := instrumentation.NewSpanAttributeBuilder().
			WithAccount(account).
			Build()
		ctx, span := instrumentation.StartToolSpan(ctx, toolName, spanAttrs...)
		defer span.End()

		start := time.Now()
		invocation := instrumentation.NewToolInvocation(toolName).
			WithSpanContext(ctx)
		if serviceName != "" {
			invocation.WithService(serviceName, operation)
		}
		if account != "" {
			invocation.WithAccount(account)
		}
		if email := sc.AccountEmail(account); email != "" {
			invocation.WithUser(email)
		}

		// When the tool maps to a single Google API operation, nest a
		// client span under the tool span.
		handlerCtx := ctx
		var apiSpan trace.Span
		if serviceName != "" {
			handlerCtx, apiSpan = instrumentation.StartGoogleAPISpan(ctx, serviceName, operation)
		}

		result, err := handler(handlerCtx, request)
		duration := time.Since(start)

		// A tool error surfaces either as a Go error or as an error result.
		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
			if err != nil {
				invocation.CompleteWithError(err)
			} else {
				invocation.Complete(false, nil)
			}
		} else {
			invocation.CompleteSuccess()
		}

		if apiSpan != nil {
			if err != nil {
				instrumentation.SetSpanError(apiSpan, err)
			} else {
				instrumentation.SetSpanSuccess(apiSpan)
			}
			apiSpan.End()
		}
		if err != nil {
			instrumentation.SetSpanError(span, err)
		} else {
			instrumentation.SetSpanSuccess(span)
		}

		if metrics != nil {
			metrics.RecordToolInvocation(ctx, toolName, status, account, duration)
			if serviceName != "" {
				metrics.RecordGoogleAPIOperation(ctx, serviceName, operation, status, duration)
			}
		}

		if auditLogger != nil {
			auditLogger.LogToolInvocation(invocation)
		}

		return result, err
	}
}
