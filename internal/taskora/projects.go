package taskora

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListProjects lists all projects in the workspace.
// Archived projects are excluded unless includeArchived is true.
func (c *Client) ListProjects(ctx context.Context, includeArchived bool) ([]Project, error) {
	query := url.Values{}
	if includeArchived {
		query.Set("include_archived", "true")
	}

	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/projects", query, nil, &projects); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject retrieves a specific project by ID
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodGet, "/projects/"+projectID, nil, nil, &project); err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// CreateProject creates a new project
func (c *Client) CreateProject(ctx context.Context, input ProjectInput) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPost, "/projects", nil, input, &project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

// UpdateProject applies a partial update to a project
func (c *Client) UpdateProject(ctx context.Context, projectID string, input ProjectInput) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPatch, "/projects/"+projectID, nil, input, &project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &project, nil
}

// DeleteProject deletes a project and all of its tasks
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	if err := c.do(ctx, http.MethodDelete, "/projects/"+projectID, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
