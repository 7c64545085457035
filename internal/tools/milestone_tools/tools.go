package milestone_tools

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

// RegisterMilestoneTools registers all milestone-related tools with the MCP server
func RegisterMilestoneTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List milestones tool (read-only, always available)
	listMilestonesTool := mcp.NewTool("milestone_list",
		mcp.WithDescription("List all milestones of a project"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("The ID of the project"),
		),
	)

	s.AddTool(listMilestonesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		workspace := common.GetWorkspaceFromArgs(args)

		projectID, ok := args["project_id"].(string)
		if !ok || projectID == "" {
			return mcp.NewToolResultError("project_id is required"), nil
		}

		client, err := common.GetTaskoraClient(ctx, workspace, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		milestones, err := client.ListMilestones(ctx, projectID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list milestones: %v", err)), nil
		}

		result, _ := json.MarshalIndent(milestones, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	})

	// Get milestone tool
	getMilestoneTool := mcp.NewTool("milestone_get",
		mcp.WithDescription("Get details of a specific milestone"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("milestone_id",
			mcp.Required(),
			mcp.Description("The ID of the milestone to retrieve"),
		),
	)

	s.AddTool(getMilestoneTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		workspace := common.GetWorkspaceFromArgs(args)

		milestoneID, ok := args["milestone_id"].(string)
		if !ok || milestoneID == "" {
			return mcp.NewToolResultError("milestone_id is required"), nil
		}

		client, err := common.GetTaskoraClient(ctx, workspace, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		milestone, err := client.GetMilestone(ctx, milestoneID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get milestone: %v", err)), nil
		}

		result, _ := json.MarshalIndent(milestone, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	})

	// Register mutation tools only if not in read-only mode
	if !readOnly {
		// Create milestone tool
		createMilestoneTool := mcp.NewTool("milestone_create",
			mcp.WithDescription("Create a new milestone in a project"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("project_id",
				mcp.Required(),
				mcp.Description("The ID of the project"),
			),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("The name of the new milestone"),
			),
			mcp.WithString("description",
				mcp.Description("Description of the milestone"),
			),
			mcp.WithString("due_date",
				mcp.Description("Due date for the milestone (RFC3339 format)"),
			),
		)

		s.AddTool(createMilestoneTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			projectID, ok := args["project_id"].(string)
			if !ok || projectID == "" {
				return mcp.NewToolResultError("project_id is required"), nil
			}

			name, ok := args["name"].(string)
			if !ok || name == "" {
				return mcp.NewToolResultError("name is required"), nil
			}

			input := taskora.MilestoneInput{Name: name}
			if description, ok := args["description"].(string); ok {
				input.Description = description
			}
			if dueStr, ok := args["due_date"].(string); ok && dueStr != "" {
				if due, err := time.Parse(time.RFC3339, dueStr); err == nil {
					input.DueDate = &due
				}
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			milestone, err := client.CreateMilestone(ctx, projectID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create milestone: %v", err)), nil
			}

			result, _ := json.MarshalIndent(milestone, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Milestone created successfully:\n%s", string(result))), nil
		})

		// Update milestone tool
		updateMilestoneTool := mcp.NewTool("milestone_update",
			mcp.WithDescription("Update a milestone's name, description, due date or completion"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("milestone_id",
				mcp.Required(),
				mcp.Description("The ID of the milestone to update"),
			),
			mcp.WithString("name",
				mcp.Description("New name for the milestone"),
			),
			mcp.WithString("description",
				mcp.Description("New description for the milestone"),
			),
			mcp.WithString("due_date",
				mcp.Description("New due date (RFC3339 format)"),
			),
			mcp.WithBoolean("completed",
				mcp.Description("Mark the milestone as completed (true) or reopen it (false)"),
			),
		)

		s.AddTool(updateMilestoneTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			milestoneID, ok := args["milestone_id"].(string)
			if !ok || milestoneID == "" {
				return mcp.NewToolResultError("milestone_id is required"), nil
			}

			input := taskora.MilestoneInput{}
			if name, ok := args["name"].(string); ok {
				input.Name = name
			}
			if description, ok := args["description"].(string); ok {
				input.Description = description
			}
			if dueStr, ok := args["due_date"].(string); ok && dueStr != "" {
				if due, err := time.Parse(time.RFC3339, dueStr); err == nil {
					input.DueDate = &due
				}
			}
			if completed, ok := args["completed"].(bool); ok {
				input.Completed = &completed
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			milestone, err := client.UpdateMilestone(ctx, milestoneID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update milestone: %v", err)), nil
			}

			result, _ := json.MarshalIndent(milestone, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Milestone updated successfully:\n%s", string(result))), nil
		})

		// Delete milestone tool
		deleteMilestoneTool := mcp.NewTool("milestone_delete",
			mcp.WithDescription("Delete a milestone (tasks keep existing, detached from it)"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("milestone_id",
				mcp.Required(),
				mcp.Description("The ID of the milestone to delete"),
			),
		)

		s.AddTool(deleteMilestoneTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			milestoneID, ok := args["milestone_id"].(string)
			if !ok || milestoneID == "" {
				return mcp.NewToolResultError("milestone_id is required"), nil
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := client.DeleteMilestone(ctx, milestoneID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete milestone: %v", err)), nil
			}

			return mcp.NewToolResultText(fmt.Sprintf("Milestone %s deleted successfully", milestoneID)), nil
		})
	}

	return nil
}
