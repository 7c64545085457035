package task_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskora/taskora-mcp/internal/server"
	"github.com/taskora/taskora-mcp/internal/taskora"
	"github.com/taskora/taskora-mcp/internal/tools/batch"
	"github.com/taskora/taskora-mcp/internal/tools/common"
)

// RegisterTaskTools registers all task-related tools with the MCP server
func RegisterTaskTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := registerTaskQueryTools(s, sc); err != nil {
		return fmt.Errorf("failed to register task query tools: %w", err)
	}

	if err := registerTaskMutationTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register task mutation tools: %w", err)
	}

	if err := registerSyncTools(s, sc); err != nil {
		return fmt.Errorf("failed to register sync tools: %w", err)
	}

	return nil
}

// registerTaskQueryTools registers the read-only task tools
func registerTaskQueryTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// List tasks tool
	listTasksTool := mcp.NewTool("task_list",
		mcp.WithDescription("List tasks in a project with optional filters"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("The ID of the project"),
		),
		mcp.WithString("status",
			mcp.Description("Filter by canonical status: 'todo', 'in_progress', 'done' or 'cancelled'"),
		),
		mcp.WithString("column_id",
			mcp.Description("Filter by kanban column ID"),
		),
		mcp.WithString("milestone_id",
			mcp.Description("Filter by milestone ID"),
		),
		mcp.WithString("tag_id",
			mcp.Description("Filter by tag ID"),
		),
		mcp.WithBoolean("include_completed",
			mcp.Description("Include done and cancelled tasks (default: false)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of tasks to return (default: API default)"),
		),
	)

	s.AddTool(listTasksTool, common.InstrumentedToolHandlerWithService(
		"task_list", "task", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListTasks(ctx, request, sc)
		}))

	// Get tasks tool
	getTasksTool := mcp.NewTool("task_get",
		mcp.WithDescription("Get details of one or more tasks"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("task_ids",
			mcp.Required(),
			mcp.Description("Task ID (string) or array of task IDs to retrieve"),
		),
	)

	s.AddTool(getTasksTool, common.InstrumentedToolHandlerWithService(
		"task_get", "task", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetTasks(ctx, request, sc)
		}))

	return nil
}

func handleListTasks(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	workspace := common.GetWorkspaceFromArgs(args)

	projectID, ok := args["project_id"].(string)
	if !ok || projectID == "" {
		return mcp.NewToolResultError("project_id is required"), nil
	}

	opts := taskora.ListTasksOptions{}
	if status, ok := args["status"].(string); ok {
		opts.Status = status
	}
	if columnID, ok := args["column_id"].(string); ok {
		opts.ColumnID = columnID
	}
	if milestoneID, ok := args["milestone_id"].(string); ok {
		opts.MilestoneID = milestoneID
	}
	if tagID, ok := args["tag_id"].(string); ok {
		opts.TagID = tagID
	}
	if includeCompleted, ok := args["include_completed"].(bool); ok {
		opts.IncludeCompleted = includeCompleted
	}
	if limit, ok := args["limit"].(float64); ok && limit > 0 {
		opts.Limit = int(limit)
	}

	client, err := common.GetTaskoraClient(ctx, workspace, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tasks, err := client.ListTasks(ctx, projectID, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list tasks: %v", err)), nil
	}

	result, _ := json.MarshalIndent(tasks, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleGetTasks(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	workspace := common.GetWorkspaceFromArgs(args)

	taskIDs, err := batch.ParseStringOrArray(args["task_ids"], "task_ids")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := common.GetTaskoraClient(ctx, workspace, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := batch.ProcessBatch(taskIDs, func(taskID string) (string, error) {
		task, err := client.GetTask(ctx, taskID)
		if err != nil {
			return "", err
		}
		jsonBytes, _ := json.Marshal(task)
		return string(jsonBytes), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

// parseDueDate parses an RFC3339 due date argument; invalid values are ignored
func parseDueDate(args map[string]interface{}) *time.Time {
	dueStr, ok := args["due_date"].(string)
	if !ok || dueStr == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, dueStr)
	if err != nil {
		return nil
	}
	return &t
}

// columnName resolves a column ID to its display name; empty when the ID
// is unknown to the supplied snapshot
func columnName(columns []taskora.Column, columnID string) string {
	if columnID == "" {
		return ""
	}
	for i := range columns {
		if columns[i].ID == columnID {
			return columns[i].Name
		}
	}
	return ""
}
