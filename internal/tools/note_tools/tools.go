package note_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskora/taskora-mcp/internal/server"
	"github.com/taskora/taskora-mcp/internal/taskora"
	"github.com/taskora/taskora-mcp/internal/tools/common"
)

// RegisterNoteTools registers all note-related tools with the MCP server
func RegisterNoteTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List notes tool (read-only, always available)
	listNotesTool := mcp.NewTool("note_list",
		mcp.WithDescription("List all notes of a project"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("The ID of the project"),
		),
	)

	s.AddTool(listNotesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

		notes, err := client.ListNotes(ctx, projectID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list notes: %v", err)), nil
		}

		result, _ := json.MarshalIndent(notes, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	})

	// Get note tool
	getNoteTool := mcp.NewTool("note_get",
		mcp.WithDescription("Get a specific note including its body"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("note_id",
			mcp.Required(),
			mcp.Description("The ID of the note to retrieve"),
		),
	)

	s.AddTool(getNoteTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		workspace := common.GetWorkspaceFromArgs(args)

		noteID, ok := args["note_id"].(string)
		if !ok || noteID == "" {
			return mcp.NewToolResultError("note_id is required"), nil
		}

		client, err := common.GetTaskoraClient(ctx, workspace, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		note, err := client.GetNote(ctx, noteID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get note: %v", err)), nil
		}

		result, _ := json.MarshalIndent(note, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	})

	// Register mutation tools only if not in read-only mode
	if !readOnly {
		// Create note tool
		createNoteTool := mcp.NewTool("note_create",
			mcp.WithDescription("Create a new note in a project"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("project_id",
				mcp.Required(),
				mcp.Description("The ID of the project"),
			),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("The title of the new note"),
			),
			mcp.WithString("body",
				mcp.Description("Body text of the note (Markdown)"),
			),
			mcp.WithBoolean("pinned",
				mcp.Description("Pin the note to the top of the project (default: false)"),
			),
		)

		s.AddTool(createNoteTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

			input := taskora.NoteInput{Title: title}
			if body, ok := args["body"].(string); ok {
				input.Body = body
			}
			if pinned, ok := args["pinned"].(bool); ok {
				input.Pinned = &pinned
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			note, err := client.CreateNote(ctx, projectID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create note: %v", err)), nil
			}

			result, _ := json.MarshalIndent(note, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Note created successfully:\n%s", string(result))), nil
		})

		// Update note tool
		updateNoteTool := mcp.NewTool("note_update",
			mcp.WithDescription("Update a note's title, body or pinned flag"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("note_id",
				mcp.Required(),
				mcp.Description("The ID of the note to update"),
			),
			mcp.WithString("title",
				mcp.Description("New title for the note"),
			),
			mcp.WithString("body",
				mcp.Description("New body text (Markdown)"),
			),
			mcp.WithBoolean("pinned",
				mcp.Description("Pin (true) or unpin (false) the note"),
			),
		)

		s.AddTool(updateNoteTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			noteID, ok := args["note_id"].(string)
			if !ok || noteID == "" {
				return mcp.NewToolResultError("note_id is required"), nil
			}

			input := taskora.NoteInput{}
			if title, ok := args["title"].(string); ok {
				input.Title = title
			}
			if body, ok := args["body"].(string); ok {
				input.Body = body
			}
			if pinned, ok := args["pinned"].(bool); ok {
				input.Pinned = &pinned
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			note, err := client.UpdateNote(ctx, noteID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update note: %v", err)), nil
			}

			result, _ := json.MarshalIndent(note, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Note updated successfully:\n%s", string(result))), nil
		})

		// Delete note tool
		deleteNoteTool := mcp.NewTool("note_delete",
			mcp.WithDescription("Delete a note"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("note_id",
				mcp.Required(),
				mcp.Description("The ID of the note to delete"),
			),
		)

		s.AddTool(deleteNoteTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			workspace := common.GetWorkspaceFromArgs(args)

			noteID, ok := args["note_id"].(string)
			if !ok || noteID == "" {
				return mcp.NewToolResultError("note_id is required"), nil
			}

			client, err := common.GetTaskoraClient(ctx, workspace, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := client.DeleteNote(ctx, noteID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete note: %v", err)), nil
			}

			return mcp.NewToolResultText(fmt.Sprintf("Note %s deleted successfully", noteID)), nil
		})
	}

	return nil
}
