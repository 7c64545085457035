package goal_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskora/taskora-mcp/internal/server"
	"github.com/taskora/taskora-mcp/internal/taskora"
	"github.com/taskora/taskora-mcp/internal/tools/common"
)

// RegisterGoalTools registers all goal-related tools with the MCP server
func RegisterGoalTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List goals tool (read-only, always available)
	listGoalsTool := mcp.NewTool("goal_list",
		mcp.WithDescription("List all workspace-level goals"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithBoolean("include_archived",
			mcp.Description("Include archived goals (default: false)"),
		),
	)

	s.AddTool(listGoalsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		workspace := common.GetWorkspaceFromArgs(args)

		includeArchived := false
		if v, ok := args["include_archived"].(bool); ok {
			includeArchived = v
		}

		client, err := common.GetTaskoraClient(ctx, workspace, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		goals, err := client.ListGoals(ctx, includeArchived)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list goals: %v", err)), nil
		}

		result, _ := json.MarshalIndent(goals, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	})

	// Get goal tool
	getGoalTool := mcp.NewTool("goal_get",
		mcp.WithDescription("Get details of a specific goal"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("goal_id",
			mcp.Required(),
			mcp.Description("The ID of the goal to retrieve"),
		),
	)

	s.AddTool(getGoalTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		workspace := common.GetWorkspaceFromArgs(args)

		goalID, ok := args["goal_id"].(string)
		if !ok || goalID == "" {
			return mcp.NewToolResultError("goal_id is required"), nil
		}

		client, err := common.GetTaskoraClient(ctx, workspace, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		goal, err := client.GetGoal(ctx, goalID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get goal: %v", err)), nil
		}

		result, _ := json.MarshalIndent(goal, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	})

	// Register mutation tools only if not in read-only mode
	if !readOnly {
		// Create goal tool
		createGoalTool := mcp.NewTool("goal_create",
			mcp.WithDescription("Create a new workspace-level goal"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("The name of the new goal"),
			),
			mcp.WithString("description",
				mcp.Description("Description of the goal"),
			),
			mcp.WithString("target_date",
				mcp.Description("Target date for the goal (RFC3339 format)"),
			),
		)

		s.AddTool(createGoalTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			name, ok := args["name"].(string)
			if !ok || name == "" {
				return mcp.NewToolResultError("name is required"), nil
			}

			input := taskora.GoalInput{Name: name}
			if description, ok := args["description"].(string); ok {
				input.Description = description
			}
			if targetStr, ok := args["target_date"].(string); ok && targetStr != "" {
				if target, err := time.Parse(time.RFC3339, targetStr); err == nil {
					input.TargetDate = &target
				}
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			goal, err := client.CreateGoal(ctx, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create goal: %v", err)), nil
			}

			result, _ := json.MarshalIndent(goal, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Goal created successfully:\n%s", string(result))), nil
		})

		// Update goal tool
		updateGoalTool := mcp.NewTool("goal_update",
			mcp.WithDescription("Update a goal's name, description, target date, progress or archived flag"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("goal_id",
				mcp.Required(),
				mcp.Description("The ID of the goal to update"),
			),
			mcp.WithString("name",
				mcp.Description("New name for the goal"),
			),
			mcp.WithString("description",
				mcp.Description("New description for the goal"),
			),
			mcp.WithString("target_date",
				mcp.Description("New target date (RFC3339 format)"),
			),
			mcp.WithNumber("progress",
				mcp.Description("New progress as a fraction between 0.0 and 1.0"),
			),
			mcp.WithBoolean("archived",
				mcp.Description("Archive (true) or unarchive (false) the goal"),
			),
		)

		s.AddTool(updateGoalTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			goalID, ok := args["goal_id"].(string)
			if !ok || goalID == "" {
				return mcp.NewToolResultError("goal_id is required"), nil
			}

			input := taskora.GoalInput{}
			if name, ok := args["name"].(string); ok {
				input.Name = name
			}
			if description, ok := args["description"].(string); ok {
				input.Description = description
			}
			if targetStr, ok := args["target_date"].(string); ok && targetStr != "" {
				if target, err := time.Parse(time.RFC3339, targetStr); err == nil {
					input.TargetDate = &target
				}
			}
			if progress, ok := args["progress"].(float64); ok {
				if progress < 0 || progress > 1 {
					return mcp.NewToolResultError("progress must be between 0.0 and 1.0"), nil
				}
				input.Progress = &progress
			}
			if archived, ok := args["archived"].(bool); ok {
				input.Archived = &archived
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			goal, err := client.UpdateGoal(ctx, goalID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update goal: %v", err)), nil
			}

			result, _ := json.MarshalIndent(goal, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Goal updated successfully:\n%s", string(result))), nil
		})

		// Delete goal tool
		deleteGoalTool := mcp.NewTool("goal_delete",
			mcp.WithDescription("Delete a goal (tasks keep existing, detached from it)"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("goal_id",
				mcp.Required(),
				mcp.Description("The ID of the goal to delete"),
			),
		)

		s.AddTool(deleteGoalTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			goalID, ok := args["goal_id"].(string)
			if !ok || goalID == "" {
				return mcp.NewToolResultError("goal_id is required"), nil
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := client.DeleteGoal(ctx, goalID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete goal: %v", err)), nil
			}

			return mcp.NewToolResultText(fmt.Sprintf("Goal %s deleted successfully", goalID)), nil
		})
	}

	return nil
}
