package taskora

import (
	"context"
	"fmt"
	"net/http"
)

// ListColumns lists the kanban columns of a project.
// The API returns columns as an unordered set; callers that care about
// board order must sort by Position themselves.
func (c *Client) ListColumns(ctx context.Context, projectID string) ([]Column, error) {
	var columns []Column
	if err := c.do(ctx, http.MethodGet, "/projects/"+projectID+"/columns", nil, nil, &columns); err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	return columns, nil
}

// GetColumn retrieves a specific column by ID
func (c *Client) GetColumn(ctx context.Context, columnID string) (*Column, error) {
	var column Column
	if err := c.do(ctx, http.MethodGet, "/columns/"+columnID, nil, nil, &column); err != nil {
		return nil, fmt.Errorf("failed to get column: %w", err)
	}
	return &column, nil
}

// CreateColumn adds a column to a project's board
func (c *Client) CreateColumn(ctx context.Context, projectID string, input ColumnInput) (*Column, error) {
	var column Column
	if err := c.do(ctx, http.MethodPost, "/projects/"+projectID+"/columns", nil, input, &column); err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}
	return &column, nil
}

// UpdateColumn applies a partial update to a column
func (c *Client) UpdateColumn(ctx context.Context, columnID string, input ColumnInput) (*Column, error) {
	var column Column
	if err := c.do(ctx, http.MethodPatch, "/columns/"+columnID, nil, input, &column); err != nil {
		return nil, fmt.Errorf("failed to update column: %w", err)
	}
	return &column, nil
}

// DeleteColumn removes a column. Tasks in the column are moved to the
// project's default column by the API.
func (c *Client) DeleteColumn(ctx context.Context, columnID string) error {
	if err := c.do(ctx, http.MethodDelete, "/columns/"+columnID, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}
	return nil
}
