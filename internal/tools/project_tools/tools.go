package project_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskora/taskora-mcp/internal/boardsync"
	"github.com/taskora/taskora-mcp/internal/server"
	"github.com/taskora/taskora-mcp/internal/taskora"
	"github.com/taskora/taskora-mcp/internal/tools/common"
)

// RegisterProjectTools registers all project-related tools with the MCP server
func RegisterProjectTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List projects tool (read-only, always available)
	listProjectsTool := mcp.NewTool("project_list",
		mcp.WithDescription("List all projects in the workspace"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithBoolean("include_archived",
			mcp.Description("Include archived projects (default: false)"),
		),
	)

	s.AddTool(listProjectsTool, common.InstrumentedToolHandlerWithService(
		"project_list", "project", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListProjects(ctx, request, sc)
		}))

	// Get project tool
	getProjectTool := mcp.NewTool("project_get",
		mcp.WithDescription("Get details of a specific project"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("The ID of the project to retrieve"),
		),
	)

	s.AddTool(getProjectTool, common.InstrumentedToolHandlerWithService(
		"project_get", "project", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetProject(ctx, request, sc)
		}))

	// List columns tool: the board view of a project, formatted for display
	listColumnsTool := mcp.NewTool("project_list_columns",
		mcp.WithDescription("List the kanban board columns of a project, sorted by position, with default and WIP-limit annotations"),
		mcp.WithString("workspace",
			mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
		),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("The ID of the project whose columns to list"),
		),
	)

	s.AddTool(listColumnsTool, common.InstrumentedToolHandlerWithService(
		"project_list_columns", "project", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListColumns(ctx, request, sc)
		}))

	// Register mutation tools only if not in read-only mode
	if !readOnly {
		createProjectTool := mcp.NewTool("project_create",
			mcp.WithDescription("Create a new project"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("The name of the new project"),
			),
			mcp.WithString("description",
				mcp.Description("Description of the project"),
			),
		)

		s.AddTool(createProjectTool, common.InstrumentedToolHandlerWithService(
			"project_create", "project", "create", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleCreateProject(ctx, request, sc)
			}))

		updateProjectTool := mcp.NewTool("project_update",
			mcp.WithDescription("Update a project's name, description or archived flag"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("project_id",
				mcp.Required(),
				mcp.Description("The ID of the project to update"),
			),
			mcp.WithString("name",
				mcp.Description("New name for the project"),
			),
			mcp.WithString("description",
				mcp.Description("New description for the project"),
			),
			mcp.WithBoolean("archived",
				mcp.Description("Archive (true) or unarchive (false) the project"),
			),
		)

		s.AddTool(updateProjectTool, common.InstrumentedToolHandlerWithService(
			"project_update", "project", "update", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleUpdateProject(ctx, request, sc)
			}))

		deleteProjectTool := mcp.NewTool("project_delete",
			mcp.WithDescription("Delete a project and everything in it"),
			mcp.WithString("workspace",
				mcp.Description("Workspace name (default: 'default'). Used to manage multiple Taskora workspaces."),
			),
			mcp.WithString("project_id",
				mcp.Required(),
				mcp.Description("The ID of the project to delete"),
			),
		)

		s.AddTool(deleteProjectTool, common.InstrumentedToolHandlerWithService(
			"project_delete", "project", "delete", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleDeleteProject(ctx, request, sc)
			}))
	}

	return nil
}

func handleListProjects(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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

	projects, err := client.ListProjects(ctx, includeArchived)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list projects: %v", err)), nil
	}

	result, _ := json.MarshalIndent(projects, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleGetProject(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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

	project, err := client.GetProject(ctx, projectID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get project: %v", err)), nil
	}

	result, _ := json.MarshalIndent(project, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleListColumns(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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

	columns, err := client.ListColumns(ctx, projectID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list columns: %v", err)), nil
	}

	return mcp.NewToolResultText(boardsync.FormatColumns(columns)), nil
}

func handleCreateProject(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	workspace := common.GetWorkspaceFromArgs(args)

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	input := taskora.ProjectInput{Name: name}
	if description, ok := args["description"].(string); ok {
		input.Description = description
	}

	client, err := common.GetTaskoraClient(ctx, workspace, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	project, err := client.CreateProject(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create project: %v", err)), nil
	}

	result, _ := json.MarshalIndent(project, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Project created successfully:\n%s", string(result))), nil
}

func handleUpdateProject(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	workspace := common.GetWorkspaceFromArgs(args)

	projectID, ok := args["project_id"].(string)
	if !ok || projectID == "" {
		return mcp.NewToolResultError("project_id is required"), nil
	}

	input := taskora.ProjectInput{}
	if name, ok := args["name"].(string); ok {
		input.Name = name
	}
	if description, ok := args["description"].(string); ok {
		input.Description = description
	}
	if archived, ok := args["archived"].(bool); ok {
		input.Archived = &archived
	}

	client, err := common.GetTaskoraClient(ctx, workspace, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	project, err := client.UpdateProject(ctx, projectID, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update project: %v", err)), nil
	}

	result, _ := json.MarshalIndent(project, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("Project updated successfully:\n%s", string(result))), nil
}

func handleDeleteProject(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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

	if err := client.DeleteProject(ctx, projectID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete project: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Project %s deleted successfully", projectID)), nil
}
