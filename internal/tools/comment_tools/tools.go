package comment_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskora/taskora-mcp/internal/server"
	"github.com/taskora/taskora-mcp/internal/tools/common"
)

// RegisterCommentTools registers all comment-related tools with the MCP server
func RegisterCommentTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List comments tool (read-only, always available)
	listCommentsTool := mcp.NewTool("comment_list",
		mcp.WithDescription("List all comments on a task, oldest first"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("The ID of the task"),
		),
	)

	s.AddTool(listCommentsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		workspace := common.GetWorkspaceFromArgs(args)

		taskID, ok := args["task_id"].(string)
		if !ok || taskID == "" {
			return mcp.NewToolResultError("task_id is required"), nil
		}

		client, err := common.GetTaskoraClient(ctx, workspace, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		comments, err := client.ListComments(ctx, taskID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list comments: %v", err)), nil
		}

		result, _ := json.MarshalIndent(comments, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	})

	// Register mutation tools only if not in read-only mode
	if !readOnly {
		// Create comment tool
		createCommentTool := mcp.NewTool("comment_create",
			mcp.WithDescription("Add a comment to a task"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("task_id",
				mcp.Required(),
				mcp.Description("The ID of the task to comment on"),
			),
			mcp.WithString("body",
				mcp.Required(),
				mcp.Description("Comment text (Markdown)"),
			),
		)

		s.AddTool(createCommentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			taskID, ok := args["task_id"].(string)
			if !ok || taskID == "" {
				return mcp.NewToolResultError("task_id is required"), nil
			}

			body, ok := args["body"].(string)
			if !ok || body == "" {
				return mcp.NewToolResultError("body is required"), nil
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			comment, err := client.CreateComment(ctx, taskID, body)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create comment: %v", err)), nil
			}

			result, _ := json.MarshalIndent(comment, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Comment created successfully:\n%s", string(result))), nil
		})

		// Update comment tool
		updateCommentTool := mcp.NewTool("comment_update",
			mcp.WithDescription("Edit the body of an existing comment"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("comment_id",
				mcp.Required(),
				mcp.Description("The ID of the comment to edit"),
			),
			mcp.WithString("body",
				mcp.Required(),
				mcp.Description("New comment text (Markdown)"),
			),
		)

		s.AddTool(updateCommentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			commentID, ok := args["comment_id"].(string)
			if !ok || commentID == "" {
				return mcp.NewToolResultError("comment_id is required"), nil
			}

			body, ok := args["body"].(string)
			if !ok || body == "" {
				return mcp.NewToolResultError("body is required"), nil
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			comment, err := client.UpdateComment(ctx, commentID, body)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update comment: %v", err)), nil
			}

			result, _ := json.MarshalIndent(comment, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Comment updated successfully:\n%s", string(result))), nil
		})

		// Delete comment tool
		deleteCommentTool := mcp.NewTool("comment_delete",
			mcp.WithDescription("Delete a comment"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("comment_id",
				mcp.Required(),
				mcp.Description("The ID of the comment to delete"),
			),
		)

		s.AddTool(deleteCommentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			commentID, ok := args["comment_id"].(string)
			if !ok || commentID == "" {
				return mcp.NewToolResultError("comment_id is required"), nil
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := client.DeleteComment(ctx, commentID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete comment: %v", err)), nil
			}

			return mcp.NewToolResultText(fmt.Sprintf("Comment %s deleted successfully", commentID)), nil
		})
	}

	return nil
}
