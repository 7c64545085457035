package taskora

import (
	"context"
	"fmt"
	"net/http"
)

// ListAttachments lists the attachment metadata of a task.
// File content is served by the Taskora web client; the URL field is a
// short-lived signed link.
func (c *Client) ListAttachments(ctx context.Context, taskID string) ([]Attachment, error) {
	var attachments []Attachment
	if err := c.do(ctx, http.MethodGet, "/tasks/"+taskID+"/attachments", nil, nil, &attachments); err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return attachments, nil
}

// GetAttachment retrieves a specific attachment's metadata by ID
func (c *Client) GetAttachment(ctx context.Context, attachmentID string) (*Attachment, error) {
	var attachment Attachment
	if err := c.do(ctx, http.MethodGet, "/attachments/"+attachmentID, nil, nil, &attachment); err != nil {
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	return &attachment, nil
}

// DeleteAttachment deletes an attachment
func (c *Client) DeleteAttachment(ctx context.Context, attachmentID string) error {
	if err := c.do(ctx, http.MethodDelete, "/attachments/"+attachmentID, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}
