// Package server provides the MCP server context, health checks, and
// the dedicated metrics server for the taskora-mcp application.
//
// # Key Components
//
// ServerContext manages Taskora API clients with lazy initialization and
// caching. It supports multiple workspaces, each authenticated
// independently, and owns the status-to-column matcher and the sync
// event recorder shared by the task tools.
//
// MetricsServer serves Prometheus metrics on a dedicated port, isolated
// from the main MCP transport.
//
// HealthChecker provides /healthz, /readyz and /healthz/detailed
// endpoints for Kubernetes probes.
package server
