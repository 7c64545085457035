package task_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskora/taskora-mcp/internal/boardsync"
	"github.com/taskora/taskora-mcp/internal/server"
)

// registerSyncTools registers the tools that expose the column-inference
// event log. They read server state only and never touch the Taskora API,
// so they are available in read-only mode too.
func registerSyncTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	syncEventsTool := mcp.NewTool("sync_events",
		mcp.WithDescription("List recorded status-to-column inference events, optionally filtered by operation or restricted to failures"),
		mcp.WithString("operation",
			mcp.Description("Filter by operation kind: 'complete', 'update' or 'bulk_update'"),
		),
		mcp.WithBoolean("failed_only",
			mcp.Description("Only return events where inference failed (default: false)"),
		),
		mcp.WithNumber("recent_failures",
			mcp.Description("Return only the N most recent failures, newest first (overrides the other filters)"),
		),
	)

	s.AddTool(syncEventsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		recorder := sc.Recorder()

		var events []boardsync.Event
		switch {
		case hasNumber(args, "recent_failures"):
			n := int(args["recent_failures"].(float64))
			if n <= 0 {
				return mcp.NewToolResultError("recent_failures must be positive"), nil
			}
			events = recorder.RecentFailures(n)
		case args["failed_only"] == true:
			events = recorder.Failures()
		default:
			if op, ok := args["operation"].(string); ok && op != "" {
				switch boardsync.Operation(op) {
				case boardsync.OpComplete, boardsync.OpUpdate, boardsync.OpBulkUpdate:
					events = recorder.EventsByOperation(boardsync.Operation(op))
				default:
					return mcp.NewToolResultError(fmt.Sprintf("unknown operation %q: expected 'complete', 'update' or 'bulk_update'", op)), nil
				}
			} else {
				events = recorder.Events()
			}
		}

		if len(events) == 0 {
			return mcp.NewToolResultText("No sync events recorded."), nil
		}

		result, _ := json.MarshalIndent(events, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	})

	syncMetricsTool := mcp.NewTool("sync_metrics",
		mcp.WithDescription("Aggregate counts over the status-to-column inference event log: total events, failures and failure rate"),
	)

	s.AddTool(syncMetricsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics := sc.Recorder().Metrics()
		result, _ := json.MarshalIndent(metrics, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	})

	return nil
}

func hasNumber(args map[string]interface{}, key string) bool {
	_, ok := args[key].(float64)
	return ok
}
