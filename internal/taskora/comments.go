package taskora

import (
	"context"
	"fmt"
	"net/http"
)

// ListComments lists the comments on a task, oldest first
func (c *Client) ListComments(ctx context.Context, taskID string) ([]Comment, error) {
	var comments []Comment
	if err := c.do(ctx, http.MethodGet, "/tasks/"+taskID+"/comments", nil, nil, &comments); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// commentBody is the request body for comment creation and edits
type commentBody struct {
	Body string `json:"body"`
}

// CreateComment adds a comment to a task
func (c *Client) CreateComment(ctx context.Context, taskID, body string) (*Comment, error) {
	var comment Comment
	if err := c.do(ctx, http.MethodPost, "/tasks/"+taskID+"/comments", nil, commentBody{Body: body}, &comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &comment, nil
}

// UpdateComment edits a comment's body
func (c *Client) UpdateComment(ctx context.Context, commentID, body string) (*Comment, error) {
	var comment Comment
	if err := c.do(ctx, http.MethodPatch, "/comments/"+commentID, nil, commentBody{Body: body}, &comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return &comment, nil
}

// DeleteComment deletes a comment
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	if err := c.do(ctx, http.MethodDelete, "/comments/"+commentID, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
