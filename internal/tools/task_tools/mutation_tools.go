package task_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskora/taskora-mcp/internal/boardsync"
	"github.com/taskora/taskora-mcp/internal/server"
	"github.com/taskora/taskora-mcp/internal/taskora"
	"github.com/taskora/taskora-mcp/internal/tools/batch"
	"github.com/taskora/taskora-mcp/internal/tools/common"
)

// registerTaskMutationTools registers the task tools that write to the API.
// All of them are gated on write access.
func registerTaskMutationTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if readOnly {
		return nil
	}

	// Create task tool
	createTaskTool := mcp.NewTool("task_create",
		mcp.WithDescription("Create a new task in a project. When neither column_id nor status is given, the task is placed on the board's default column."),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("The ID of the project"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Task title"),
		),
		mcp.WithString("description",
			mcp.Description("Task description"),
		),
		mcp.WithString("status",
			mcp.Description("Canonical status: 'todo', 'in_progress', 'done' or 'cancelled'. The matching board column is inferred."),
		),
		mcp.WithString("column_id",
			mcp.Description("Explicit kanban column to place the task on (overrides status-based placement)"),
		),
		mcp.WithNumber("priority",
			mcp.Description("Task priority (higher is more urgent)"),
		),
		mcp.WithString("milestone_id",
			mcp.Description("Milestone to attach the task to"),
		),
		mcp.WithString("goal_id",
			mcp.Description("Goal to attach the task to"),
		),
		mcp.WithString("due_date",
			mcp.Description("Due date (RFC3339 format)"),
		),
	)

	s.AddTool(createTaskTool, common.InstrumentedToolHandlerWithService(
		"task_create", "task", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateTask(ctx, request, sc)
		}))

	// Update task tool
	updateTaskTool := mcp.NewTool("task_update",
		mcp.WithDescription("Update an existing task. A status change without an explicit column_id moves the card to the matching board column when one can be inferred; otherwise only the status changes."),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("The ID of the task to update"),
		),
		mcp.WithString("title",
			mcp.Description("New title for the task"),
		),
		mcp.WithString("description",
			mcp.Description("New description for the task"),
		),
		mcp.WithString("status",
			mcp.Description("New canonical status: 'todo', 'in_progress', 'done' or 'cancelled'"),
		),
		mcp.WithString("column_id",
			mcp.Description("Explicit kanban column to move the task to"),
		),
		mcp.WithNumber("priority",
			mcp.Description("New priority for the task"),
		),
		mcp.WithString("milestone_id",
			mcp.Description("New milestone for the task"),
		),
		mcp.WithString("goal_id",
			mcp.Description("New goal for the task"),
		),
		mcp.WithString("due_date",
			mcp.Description("New due date (RFC3339 format)"),
		),
	)

	s.AddTool(updateTaskTool, common.InstrumentedToolHandlerWithService(
		"task_update", "task", "update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateTask(ctx, request, sc)
		}))

	// Delete tasks tool
	deleteTasksTool := mcp.NewTool("task_delete",
		mcp.WithDescription("Delete one or more tasks"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("task_ids",
			mcp.Required(),
			mcp.Description("Task ID (string) or array of task IDs to delete"),
		),
	)

	s.AddTool(deleteTasksTool, common.InstrumentedToolHandlerWithService(
		"task_delete", "task", "delete", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteTasks(ctx, request, sc)
		}))

	// Complete tasks tool
	completeTasksTool := mcp.NewTool("task_complete",
		mcp.WithDescription("Mark one or more tasks as completed and move them to the board's Done column. Fails loudly when no Done column can be identified."),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("task_ids",
			mcp.Required(),
			mcp.Description("Task ID (string) or array of task IDs to complete"),
		),
	)

	s.AddTool(completeTasksTool, common.InstrumentedToolHandlerWithService(
		"task_complete", "task", "complete", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCompleteTasks(ctx, request, sc)
		}))

	// Move task tool
	moveTaskTool := mcp.NewTool("task_move",
		mcp.WithDescription("Move a task to a different kanban column. When the column name is recognized vocabulary for a canonical status, the task's status follows the move."),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("The ID of the task to move"),
		),
		mcp.WithString("column_id",
			mcp.Required(),
			mcp.Description("The ID of the destination column"),
		),
	)

	s.AddTool(moveTaskTool, common.InstrumentedToolHandlerWithService(
		"task_move", "task", "move", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleMoveTask(ctx, request, sc)
		}))

	// Bulk update tool
	bulkUpdateTool := mcp.NewTool("task_bulk_update",
		mcp.WithDescription("Apply the same update to several tasks of one project in a single call"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("The ID of the project the tasks belong to"),
		),
		mcp.WithString("task_ids",
			mcp.Required(),
			mcp.Description("Task ID (string) or array of task IDs to update"),
		),
		mcp.WithString("status",
			mcp.Description("New canonical status for all tasks; the matching board column is inferred when possible"),
		),
		mcp.WithString("column_id",
			mcp.Description("Explicit kanban column for all tasks (overrides status-based placement)"),
		),
		mcp.WithNumber("priority",
			mcp.Description("New priority for all tasks"),
		),
		mcp.WithString("milestone_id",
			mcp.Description("New milestone for all tasks"),
		),
	)

	s.AddTool(bulkUpdateTool, common.InstrumentedToolHandlerWithService(
		"task_bulk_update", "task", "bulk_update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleBulkUpdateTasks(ctx, request, sc)
		}))

	return nil
}

func handleCreateTask(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	workspace := common.GetWorkspaceFromArgs(args)

	projectID, ok := args["project_id"].(string)
	if !ok || projectID == "" {
		return mcp.NewToolResultError("project_id is required"), nil
	}

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	input := taskora.TaskInput{Title: title}
	if description, ok := args["description"].(string); ok {
		input.Description = description
	}
	if status, ok := args["status"].(string); ok {
		input.Status = status
	}
	if columnID, ok := args["column_id"].(string); ok {
		input.ColumnID = columnID
	}
	if priority, ok := args["priority"].(float64); ok {
		input.Priority = int(priority)
	}
	if milestoneID, ok := args["milestone_id"].(string); ok {
		input.MilestoneID = milestoneID
	}
	if goalID, ok := args["goal_id"].(string); ok {
		input.GoalID = goalID
	}
	input.DueDate = parseDueDate(args)

	client, err := common.GetTaskoraClient(ctx, workspace, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Board placement: an explicit column wins; a status picks its matching
	// column; neither means the board's default column.
	if input.ColumnID == "" {
		columns, err := client.ListColumns(ctx, projectID)
		if err != nil {
			// Board unavailable: create the task without a placement
			columns = nil
		}
		if input.Status != "" {
			if res := sc.Matcher().MatchColumn(columns, input.Status); res.Matched() {
				input.ColumnID = res.Column.ID
			}
		} else if col := sc.Matcher().ResolveDefaultColumn(columns); col != nil {
			input.ColumnID = col.ID
		}
	}

	task, err := client.CreateTask(ctx, projectID, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create task: %v", err)), nil
	}

	result, _ := json.MarshalIndent(task, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Task created successfully:\n%s", string(result))), nil
}

func handleUpdateTask(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	workspace := common.GetWorkspaceFromArgs(args)

	taskID, ok := args["task_id"].(string)
	if !ok || taskID == "" {
		return mcp.NewToolResultError("task_id is required"), nil
	}

	update := taskora.TaskUpdate{}
	if title, ok := args["title"].(string); ok {
		update.Title = title
	}
	if description, ok := args["description"].(string); ok {
		update.Description = description
	}
	if status, ok := args["status"].(string); ok {
		update.Status = status
	}
	if columnID, ok := args["column_id"].(string); ok {
		update.ColumnID = columnID
	}
	if priority, ok := args["priority"].(float64); ok {
		p := int(priority)
		update.Priority = &p
	}
	if milestoneID, ok := args["milestone_id"].(string); ok {
		update.MilestoneID = milestoneID
	}
	if goalID, ok := args["goal_id"].(string); ok {
		update.GoalID = goalID
	}
	update.DueDate = parseDueDate(args)

	client, err := common.GetTaskoraClient(ctx, workspace, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// A status change without an explicit column moves the card too, when a
	// matching column can be inferred. Inference failure is lenient here:
	// the status still changes, the card stays where it is.
	if update.Status != "" && update.ColumnID == "" {
		task, err := client.GetTask(ctx, taskID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get task: %v", err)), nil
		}

		columns, err := client.ListColumns(ctx, task.ProjectID)
		if err != nil {
			// An unavailable board degrades to "no columns": status-only update
			columns = nil
		}

		res := sc.Matcher().MatchColumn(columns, update.Status)
		event := boardsync.Event{
			TaskID:       taskID,
			Operation:    boardsync.OpUpdate,
			StatusBefore: task.Status,
			StatusAfter:  update.Status,
			ColumnBefore: columnName(columns, task.ColumnID),
			Inferred:     true,
			Failed:       !res.Matched(),
		}
		if res.Matched() {
			update.ColumnID = res.Column.ID
			event.ColumnAfter = res.Column.Name
			event.Strategy = string(res.Strategy)
		}
		sc.Recorder().Record(event)
	}

	task, err := client.UpdateTask(ctx, taskID, update)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update task: %v", err)), nil
	}

	result, _ := json.MarshalIndent(task, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Task updated successfully:\n%s", string(result))), nil
}

func handleDeleteTasks(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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
		if err := client.DeleteTask(ctx, taskID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Task %s deleted successfully", taskID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}
