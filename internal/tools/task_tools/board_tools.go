package task_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/taskora/taskora-mcp/internal/boardsync"
	"github.com/taskora/taskora-mcp/internal/server"
	"github.com/taskora/taskora-mcp/internal/taskora"
	"github.com/taskora/taskora-mcp/internal/tools/batch"
	"github.com/taskora/taskora-mcp/internal/tools/common"
)

func handleCompleteTasks(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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
		return completeTask(ctx, client, sc, taskID)
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

// completeTask marks one task done. Completion is the strict inference
// path: a card that silently never reaches the Done column is worse than
// a loud error, so a missing board or an unmatched Done column fails the
// task instead of degrading.
func completeTask(ctx context.Context, client *taskora.Client, sc *server.ServerContext, taskID string) (string, error) {
	task, err := client.GetTask(ctx, taskID)
	if err != nil {
		return "", err
	}

	columns, err := client.ListColumns(ctx, task.ProjectID)
	if err != nil {
		return "", fmt.Errorf("failed to list board columns: %w", err)
	}

	event := boardsync.Event{
		TaskID:       taskID,
		Operation:    boardsync.OpComplete,
		StatusBefore: task.Status,
		StatusAfter:  boardsync.StatusDone,
		ColumnBefore: columnName(columns, task.ColumnID),
		Inferred:     true,
	}

	res := sc.Matcher().MatchColumn(columns, boardsync.StatusDone)
	if !res.Matched() {
		event.Failed = true
		sc.Recorder().Record(event)
		_, err := sc.Matcher().RequireColumn(columns, boardsync.StatusDone)
		return "", err
	}

	col := res.Column
	event.ColumnAfter = col.Name
	event.Strategy = string(res.Strategy)
	sc.Recorder().Record(event)

	completed, err := client.CompleteTask(ctx, taskID, col.ID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Task %s (%s) completed and moved to column %q", taskID, completed.Title, col.Name), nil
}

func handleMoveTask(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	workspace := common.GetWorkspaceFromArgs(args)

	taskID, ok := args["task_id"].(string)
	if !ok || taskID == "" {
		return mcp.NewToolResultError("task_id is required"), nil
	}

	columnID, ok := args["column_id"].(string)
	if !ok || columnID == "" {
		return mcp.NewToolResultError("column_id is required"), nil
	}

	client, err := common.GetTaskoraClient(ctx, workspace, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	column, err := client.GetColumn(ctx, columnID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get column: %v", err)), nil
	}

	// Status follows the card only when the column name is recognized
	// vocabulary; an arbitrary name never guesses a status.
	status, inferred := sc.Matcher().InferStatus(*column)

	task, err := client.MoveTask(ctx, taskID, columnID, status)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to move task: %v", err)), nil
	}

	result, _ := json.MarshalIndent(task, "", "  ")
	if inferred {
		return mcp.NewToolResultText(fmt.Sprintf("Task moved to column %q, status set to %q:\n%s", column.Name, status, string(result))), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Task moved to column %q (status unchanged, column name matches no known status):\n%s", column.Name, string(result))), nil
}

func handleBulkUpdateTasks(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	workspace := common.GetWorkspaceFromArgs(args)

	projectID, ok := args["project_id"].(string)
	if !ok || projectID == "" {
		return mcp.NewToolResultError("project_id is required"), nil
	}

	taskIDs, err := batch.ParseStringOrArray(args["task_ids"], "task_ids")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	update := taskora.TaskUpdate{}
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

	if update.Status == "" && update.ColumnID == "" && update.Priority == nil && update.MilestoneID == "" {
		return mcp.NewToolResultError("at least one of status, column_id, priority or milestone_id is required"), nil
	}

	client, err := common.GetTaskoraClient(ctx, workspace, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Column inference happens once: all tasks share the project board and
	// the same target status. Lenient, like single-task update.
	var res boardsync.MatchResult
	inferring := update.Status != "" && update.ColumnID == ""
	if inferring {
		columns, err := client.ListColumns(ctx, projectID)
		if err != nil {
			columns = nil
		}
		res = sc.Matcher().MatchColumn(columns, update.Status)
		if res.Matched() {
			update.ColumnID = res.Column.ID
		}
	}

	updates := make([]taskora.BulkTaskUpdate, 0, len(taskIDs))
	for _, taskID := range taskIDs {
		updates = append(updates, taskora.BulkTaskUpdate{TaskID: taskID, Update: update})

		if inferring {
			event := boardsync.Event{
				TaskID:      taskID,
				Operation:   boardsync.OpBulkUpdate,
				StatusAfter: update.Status,
				Inferred:    true,
				Failed:      !res.Matched(),
			}
			if res.Matched() {
				event.ColumnAfter = res.Column.Name
				event.Strategy = string(res.Strategy)
			}
			sc.Recorder().Record(event)
		}
	}

	tasks, err := client.BulkUpdateTasks(ctx, updates)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to bulk update tasks: %v", err)), nil
	}

	result, _ := json.MarshalIndent(tasks, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Updated %d task(s):\n%s", len(tasks), string(result))), nil
}
