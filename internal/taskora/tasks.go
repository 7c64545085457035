package taskora

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListTasksOptions filters task listings
type ListTasksOptions struct {
	// Status filters by canonical status ("todo", "in_progress", "done", "cancelled")
	Status string
	// ColumnID filters by kanban column
	ColumnID string
	// MilestoneID filters by milestone
	MilestoneID string
	// TagID filters by tag
	TagID string
	// IncludeCompleted includes tasks with status done/cancelled
	IncludeCompleted bool
	// Limit caps the number of returned tasks (0 means API default)
	Limit int
}

// ListTasks lists tasks in a project
func (c *Client) ListTasks(ctx context.Context, projectID string, opts ListTasksOptions) ([]Task, error) {
	query := url.Values{}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.ColumnID != "" {
		query.Set("column_id", opts.ColumnID)
	}
	if opts.MilestoneID != "" {
		query.Set("milestone_id", opts.MilestoneID)
	}
	if opts.TagID != "" {
		query.Set("tag_id", opts.TagID)
	}
	if opts.IncludeCompleted {
		query.Set("include_completed", "true")
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/projects/"+projectID+"/tasks", query, nil, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask retrieves a specific task by ID
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodGet, "/tasks/"+taskID, nil, nil, &task); err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

// CreateTask creates a new task in a project
func (c *Client) CreateTask(ctx context.Context, projectID string, input TaskInput) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, "/projects/"+projectID+"/tasks", nil, input, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// UpdateTask applies a partial update to a task.
// Status and ColumnID travel independently; the server does not infer one
// from the other, which is why callers run the column matcher first.
func (c *Client) UpdateTask(ctx context.Context, taskID string, update TaskUpdate) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+taskID, nil, update, &task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return &task, nil
}

// completeRequest is the body for the task completion endpoint
type completeRequest struct {
	ColumnID string `json:"column_id,omitempty"`
}

// CompleteTask marks a task done, optionally moving it to columnID
func (c *Client) CompleteTask(ctx context.Context, taskID, columnID string) (*Task, error) {
	var task Task
	body := completeRequest{ColumnID: columnID}
	if err := c.do(ctx, http.MethodPost, "/tasks/"+taskID+"/complete", nil, body, &task); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}
	return &task, nil
}

// moveRequest is the body for the task move endpoint
type moveRequest struct {
	ColumnID string `json:"column_id"`
	Status   string `json:"status,omitempty"`
}

// MoveTask moves a task to a column, optionally updating its status in
// the same call
func (c *Client) MoveTask(ctx context.Context, taskID, columnID, status string) (*Task, error) {
	var task Task
	body := moveRequest{ColumnID: columnID, Status: status}
	if err := c.do(ctx, http.MethodPost, "/tasks/"+taskID+"/move", nil, body, &task); err != nil {
		return nil, fmt.Errorf("failed to move task: %w", err)
	}
	return &task, nil
}

// BulkUpdateTasks applies several task updates in one API call.
// The response carries the updated tasks in request order.
func (c *Client) BulkUpdateTasks(ctx context.Context, updates []BulkTaskUpdate) ([]Task, error) {
	body := struct {
		Updates []BulkTaskUpdate `json:"updates"`
	}{Updates: updates}

	var tasks []Task
	if err := c.do(ctx, http.MethodPost, "/tasks/bulk", nil, body, &tasks); err != nil {
		return nil, fmt.Errorf("failed to bulk update tasks: %w", err)
	}
	return tasks, nil
}

// DeleteTask deletes a task
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	if err := c.do(ctx, http.MethodDelete, "/tasks/"+taskID, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
