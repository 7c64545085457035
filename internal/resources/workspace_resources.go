package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskora/taskora-mcp/internal/server"
)

// RegisterWorkspaceResources registers the read-only workspace resources.
// These expose contextual data an assistant usually wants up front without
// spending a tool call: the workspace profile and the project list.
func RegisterWorkspaceResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	profileResource := mcp.NewResource(
		"taskora://workspace/profile",
		"Workspace Profile",
		mcp.WithResourceDescription("Name, plan and counters of the default Taskora workspace"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(profileResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleWorkspaceProfile(ctx, request, sc)
	})

	projectsResource := mcp.NewResource(
		"taskora://projects",
		"Projects",
		mcp.WithResourceDescription("All active projects of the default Taskora workspace"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(projectsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleProjects(ctx, request, sc)
	})

	return nil
}

// handleWorkspaceProfile returns the authenticated workspace's profile
func handleWorkspaceProfile(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	client := sc.Client()
	if client == nil {
		return nil, fmt.Errorf("no Taskora client available for the default workspace")
	}

	profile, err := client.GetWorkspaceProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace profile: %w", err)
	}

	profileData := map[string]interface{}{
		"workspace":     client.Workspace(),
		"id":            profile.ID,
		"name":          profile.Name,
		"plan":          profile.Plan,
		"project_count": profile.ProjectCount,
		"task_count":    profile.TaskCount,
	}

	jsonData, err := json.MarshalIndent(profileData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleProjects returns the active projects of the workspace
func handleProjects(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	client := sc.Client()
	if client == nil {
		return nil, fmt.Errorf("no Taskora client available for the default workspace")
	}

	projects, err := client.ListProjects(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	jsonData, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal projects: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
