package tag_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskora/taskora-mcp/internal/server"
	"github.com/taskora/taskora-mcp/internal/taskora"
	"github.com/taskora/taskora-mcp/internal/tools/batch"
	"github.com/taskora/taskora-mcp/internal/tools/common"
)

// RegisterTagTools registers all tag-related tools with the MCP server
func RegisterTagTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List tags tool (read-only, always available)
	listTagsTool := mcp.NewTool("tag_list",
		mcp.WithDescription("List all workspace-level tags"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
	)

	s.AddTool(listTagsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		workspace := common.GetWorkspaceFromArgs(args)

		client, err := common.GetTaskoraClient(ctx, workspace, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		tags, err := client.ListTags(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list tags: %v", err)), nil
		}

		result, _ := json.MarshalIndent(tags, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	})

	// Register mutation tools only if not in read-only mode
	if !readOnly {
		// Create tag tool
		createTagTool := mcp.NewTool("tag_create",
			mcp.WithDescription("Create a new workspace-level tag"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("The name of the new tag"),
			),
			mcp.WithString("color",
				mcp.Description("Display color as a hex string, e.g. '#ff7a00'"),
			),
		)

		s.AddTool(createTagTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			name, ok := args["name"].(string)
			if !ok || name == "" {
				return mcp.NewToolResultError("name is required"), nil
			}

			input := taskora.TagInput{Name: name}
			if color, ok := args["color"].(string); ok {
				input.Color = color
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			tag, err := client.CreateTag(ctx, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create tag: %v", err)), nil
			}

			result, _ := json.MarshalIndent(tag, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Tag created successfully:\n%s", string(result))), nil
		})

		// Update tag tool
		updateTagTool := mcp.NewTool("tag_update",
			mcp.WithDescription("Update a tag's name or color"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("tag_id",
				mcp.Required(),
				mcp.Description("The ID of the tag to update"),
			),
			mcp.WithString("name",
				mcp.Description("New name for the tag"),
			),
			mcp.WithString("color",
				mcp.Description("New display color as a hex string"),
			),
		)

		s.AddTool(updateTagTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			tagID, ok := args["tag_id"].(string)
			if !ok || tagID == "" {
				return mcp.NewToolResultError("tag_id is required"), nil
			}

			input := taskora.TagInput{}
			if name, ok := args["name"].(string); ok {
				input.Name = name
			}
			if color, ok := args["color"].(string); ok {
				input.Color = color
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			tag, err := client.UpdateTag(ctx, tagID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update tag: %v", err)), nil
			}

			result, _ := json.MarshalIndent(tag, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Tag updated successfully:\n%s", string(result))), nil
		})

		// Delete tag tool
		deleteTagTool := mcp.NewTool("tag_delete",
			mcp.WithDescription("Delete a tag from the workspace and from every task carrying it"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("tag_id",
				mcp.Required(),
				mcp.Description("The ID of the tag to delete"),
			),
		)

		s.AddTool(deleteTagTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			tagID, ok := args["tag_id"].(string)
			if !ok || tagID == "" {
				return mcp.NewToolResultError("tag_id is required"), nil
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := client.DeleteTag(ctx, tagID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete tag: %v", err)), nil
			}

			return mcp.NewToolResultText(fmt.Sprintf("Tag %s deleted successfully", tagID)), nil
		})

		// Assign tag tool
		assignTagTool := mcp.NewTool("tag_assign",
			mcp.WithDescription("Assign a tag to one or more tasks"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("tag_id",
				mcp.Required(),
				mcp.Description("The ID of the tag to assign"),
			),
			mcp.WithString("task_ids",
				mcp.Required(),
				mcp.Description("Task ID (string) or array of task IDs to tag"),
			),
		)

		s.AddTool(assignTagTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleTagAssignment(ctx, request, sc, true)
		})

		// Unassign tag tool
		unassignTagTool := mcp.NewTool("tag_unassign",
			mcp.WithDescription("Remove a tag from one or more tasks"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("tag_id",
				mcp.Required(),
				mcp.Description("The ID of the tag to remove"),
			),
			mcp.WithString("task_ids",
				mcp.Required(),
				mcp.Description("Task ID (string) or array of task IDs to untag"),
			),
		)

		s.AddTool(unassignTagTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleTagAssignment(ctx, request, sc, false)
		})
	}

	return nil
}

// handleTagAssignment covers both assign and unassign: the two flows only
// differ in the client call and the verb in the result message
func handleTagAssignment(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, assign bool) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	workspace := common.GetWorkspaceFromArgs(args)

	tagID, ok := args["tag_id"].(string)
	if !ok || tagID == "" {
		return mcp.NewToolResultError("tag_id is required"), nil
	}

	taskIDs, err := batch.ParseStringOrArray(args["task_ids"], "task_ids")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := common.GetTaskoraClient(ctx, workspace, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := batch.ProcessBatch(taskIDs, func(taskID string) (string, error) {
		if assign {
			if err := client.AssignTag(ctx, taskID, tagID); err != nil {
				return "", err
			}
			return fmt.Sprintf("Tag %s assigned to task %s", tagID, taskID), nil
		}
		if err := client.UnassignTag(ctx, taskID, tagID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Tag %s removed from task %s", tagID, taskID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}
