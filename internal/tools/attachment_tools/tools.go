package attachment_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskora/taskora-mcp/internal/server"
	"github.com/taskora/taskora-mcp/internal/tools/common"
)

// RegisterAttachmentTools registers all attachment-related tools with the
// MCP server. Uploads go through the Taskora web client; this surface is
// metadata only.
func RegisterAttachmentTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List attachments tool (read-only, always available)
	listAttachmentsTool := mcp.NewTool("attachment_list",
		mcp.WithDescription("List the file attachments of a task (metadata only)"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("The ID of the task"),
		),
	)

	s.AddTool(listAttachmentsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

		attachments, err := client.ListAttachments(ctx, taskID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list attachments: %v", err)), nil
		}

		result, _ := json.MarshalIndent(attachments, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	})

	// Get attachment tool
	getAttachmentTool := mcp.NewTool("attachment_get",
		mcp.WithDescription("Get metadata of a specific attachment, including its download URL"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("attachment_id",
			mcp.Required(),
			mcp.Description("The ID of the attachment to retrieve"),
		),
	)

	s.AddTool(getAttachmentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		workspace := common.GetWorkspaceFromArgs(args)

		attachmentID, ok := args["attachment_id"].(string)
		if !ok || attachmentID == "" {
			return mcp.NewToolResultError("attachment_id is required"), nil
		}

		client, err := common.GetTaskoraClient(ctx, workspace, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		attachment, err := client.GetAttachment(ctx, attachmentID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get attachment: %v", err)), nil
		}

		result, _ := json.MarshalIndent(attachment, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	})

	// Register delete tool only if not in read-only mode
	if !readOnly {
		deleteAttachmentTool := mcp.NewTool("attachment_delete",
			mcp.WithDescription("Delete an attachment from a task"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("attachment_id",
				mcp.Required(),
				mcp.Description("The ID of the attachment to delete"),
			),
		)

		s.AddTool(deleteAttachmentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			attachmentID, ok := args["attachment_id"].(string)
			if !ok || attachmentID == "" {
				return mcp.NewToolResultError("attachment_id is required"), nil
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := client.DeleteAttachment(ctx, attachmentID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete attachment: %v", err)), nil
			}

			return mcp.NewToolResultText(fmt.Sprintf("Attachment %s deleted successfully", attachmentID)), nil
		})
	}

	return nil
}
