package taskora

import (
	"context"
	"fmt"
	"net/http"
)

// ListMilestones lists the milestones of a project
func (c *Client) ListMilestones(ctx context.Context, projectID string) ([]Milestone, error) {
	var milestones []Milestone
	if err := c.do(ctx, http.MethodGet, "/projects/"+projectID+"/milestones", nil, nil, &milestones); err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	return milestones, nil
}

// GetMilestone retrieves a specific milestone by ID
func (c *Client) GetMilestone(ctx context.Context, milestoneID string) (*Milestone, error) {
	var milestone Milestone
	if err := c.do(ctx, http.MethodGet, "/milestones/"+milestoneID, nil, nil, &milestone); err != nil {
		return nil, fmt.Errorf("failed to get milestone: %w", err)
	}
	return &milestone, nil
}

// CreateMilestone creates a milestone in a project
func (c *Client) CreateMilestone(ctx context.Context, projectID string, input MilestoneInput) (*Milestone, error) {
	var milestone Milestone
	if err := c.do(ctx, http.MethodPost, "/projects/"+projectID+"/milestones", nil, input, &milestone); err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}
	return &milestone, nil
}

// UpdateMilestone applies a partial update to a milestone
func (c *Client) UpdateMilestone(ctx context.Context, milestoneID string, input MilestoneInput) (*Milestone, error) {
	var milestone Milestone
	if err := c.do(ctx, http.MethodPatch, "/milestones/"+milestoneID, nil, input, &milestone); err != nil {
		return nil, fmt.Errorf("failed to update milestone: %w", err)
	}
	return &milestone, nil
}

// DeleteMilestone deletes a milestone. Tasks keep their milestone-less state.
func (c *Client) DeleteMilestone(ctx context.Context, milestoneID string) error {
	if err := c.do(ctx, http.MethodDelete, "/milestones/"+milestoneID, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete milestone: %w", err)
	}
	return nil
}
