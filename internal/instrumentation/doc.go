// Package instrumentation provides comprehensive OpenTelemetry instrumentation
// for the taskora-mcp server.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for HTTP requests, OAuth operations, and Taskora API calls
//   - Distributed tracing for request flows and API calls
//   - Prometheus metrics export via /metrics endpoint on dedicated port
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// Server/HTTP Metrics:
//   - http_requests_total: Counter of HTTP requests by method, path, and status
//   - http_request_duration_seconds: Histogram of HTTP request durations
//   - active_sessions: Gauge of active user sessions
//
// Taskora API Metrics:
//   - taskora_api_operations_total: Counter of Taskora API operations by service, operation, status
//   - taskora_api_operation_duration_seconds: Histogram of Taskora API operation durations
//
// OAuth Authentication Metrics:
//   - oauth_auth_total: Counter of OAuth authentication events by result
//   - oauth_token_refresh_total: Counter of token refresh attempts by result
//
// Column Inference Metrics:
//   - status_inference_total: Counter of status-to-column inference attempts by result
//     (exact, alias, fuzzy, position, failed)
//
// MCP Tool Metrics:
//   - mcp_tool_invocations_total: Counter of MCP tool invocations by tool name and status
//   - mcp_tool_duration_seconds: Histogram of MCP tool execution durations
//
// # Tracing
//
// Distributed tracing spans are created for:
//   - HTTP request handling
//   - MCP tool invocations (tool.<name>)
//   - Taskora API calls (taskora.<service>.<operation>)
//   - OAuth token operations
//
// # Configuration
//
// Instrumentation can be configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: taskora-mcp)
//
// # Example Usage
//
//	// Initialize instrumentation
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
//		ServiceName:    "taskora-mcp",
//		ServiceVersion: "0.1.0",
//		Enabled:        true,
//	})
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	// Get metrics recorder
//	recorder := provider.Metrics()
//
//	// Record an HTTP request
//	recorder.RecordHTTPRequest(ctx, "POST", "/mcp", 200, time.Since(start))
//
//	// Record a Taskora API operation
//	recorder.RecordAPIOperation(ctx, "task", "list", "success", time.Since(start))
//
//	// Record an MCP tool invocation
//	recorder.RecordToolInvocation(ctx, "task_list", "success", time.Since(start))
package instrumentation
