package taskora

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListGoals lists workspace goals.
// Archived goals are excluded unless includeArchived is true.
func (c *Client) ListGoals(ctx context.Context, includeArchived bool) ([]Goal, error) {
	query := url.Values{}
	if includeArchived {
		query.Set("include_archived", "true")
	}

	var goals []Goal
	if err := c.do(ctx, http.MethodGet, "/goals", query, nil, &goals); err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// GetGoal retrieves a specific goal by ID
func (c *Client) GetGoal(ctx context.Context, goalID string) (*Goal, error) {
	var goal Goal
	if err := c.do(ctx, http.MethodGet, "/goals/"+goalID, nil, nil, &goal); err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &goal, nil
}

// CreateGoal creates a workspace goal
func (c *Client) CreateGoal(ctx context.Context, input GoalInput) (*Goal, error) {
	var goal Goal
	if err := c.do(ctx, http.MethodPost, "/goals", nil, input, &goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return &goal, nil
}

// UpdateGoal applies a partial update to a goal
func (c *Client) UpdateGoal(ctx context.Context, goalID string, input GoalInput) (*Goal, error) {
	var goal Goal
	if err := c.do(ctx, http.MethodPatch, "/goals/"+goalID, nil, input, &goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return &goal, nil
}

// DeleteGoal deletes a goal
func (c *Client) DeleteGoal(ctx context.Context, goalID string) error {
	if err := c.do(ctx, http.MethodDelete, "/goals/"+goalID, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
