package instrumentation

import "strings"

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics with resource identifiers.

// ExtractResourceKind extracts the resource kind from a prefixed Taskora ID.
// Taskora IDs carry a type prefix ("task_8f3kq2", "proj_a91x"), so the prefix
// can be used as a low-cardinality label instead of the full identifier.
//
// Example:
//
//	ExtractResourceKind("task_8f3kq2")  // "task"
//	ExtractResourceKind("proj_a91x")    // "proj"
//	ExtractResourceKind("invalid")      // "unknown"
//	ExtractResourceKind("")             // "unknown"
func ExtractResourceKind(id string) string {
	if id == "" {
		return "unknown"
	}

	prefix, rest, found := strings.Cut(id, "_")
	if found && prefix != "" && rest != "" {
		return prefix
	}

	return "unknown"
}

// Common operation types for Taskora API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationList       = "list"
	OperationGet        = "get"
	OperationCreate     = "create"
	OperationUpdate     = "update"
	OperationDelete     = "delete"
	OperationComplete   = "complete"
	OperationMove       = "move"
	OperationBulkUpdate = "bulk_update"
	OperationAssign     = "assign"
	OperationUnassign   = "unassign"
)
