package taskora

import (
	"context"
	"fmt"
	"net/http"
)

// ListTags lists the workspace's tags
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.do(ctx, http.MethodGet, "/tags", nil, nil, &tags); err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// CreateTag creates a workspace tag
func (c *Client) CreateTag(ctx context.Context, input TagInput) (*Tag, error) {
	var tag Tag
	if err := c.do(ctx, http.MethodPost, "/tags", nil, input, &tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return &tag, nil
}

// UpdateTag applies a partial update to a tag
func (c *Client) UpdateTag(ctx context.Context, tagID string, input TagInput) (*Tag, error) {
	var tag Tag
	if err := c.do(ctx, http.MethodPatch, "/tags/"+tagID, nil, input, &tag); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return &tag, nil
}

// DeleteTag deletes a tag and removes it from all tasks
func (c *Client) DeleteTag(ctx context.Context, tagID string) error {
	if err := c.do(ctx, http.MethodDelete, "/tags/"+tagID, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

// AssignTag attaches a tag to a task
func (c *Client) AssignTag(ctx context.Context, taskID, tagID string) error {
	if err := c.do(ctx, http.MethodPut, "/tasks/"+taskID+"/tags/"+tagID, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to assign tag: %w", err)
	}
	return nil
}

// UnassignTag detaches a tag from a task
func (c *Client) UnassignTag(ctx context.Context, taskID, tagID string) error {
	if err := c.do(ctx, http.MethodDelete, "/tasks/"+taskID+"/tags/"+tagID, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to unassign tag: %w", err)
	}
	return nil
}
