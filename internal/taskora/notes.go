package taskora

import (
	"context"
	"fmt"
	"net/http"
)

// ListNotes lists the notes of a project
func (c *Client) ListNotes(ctx context.Context, projectID string) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, http.MethodGet, "/projects/"+projectID+"/notes", nil, nil, &notes); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// GetNote retrieves a specific note by ID
func (c *Client) GetNote(ctx context.Context, noteID string) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodGet, "/notes/"+noteID, nil, nil, &note); err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return &note, nil
}

// CreateNote creates a note in a project
func (c *Client) CreateNote(ctx context.Context, projectID string, input NoteInput) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodPost, "/projects/"+projectID+"/notes", nil, input, &note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return &note, nil
}

// UpdateNote applies a partial update to a note
func (c *Client) UpdateNote(ctx context.Context, noteID string, input NoteInput) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodPatch, "/notes/"+noteID, nil, input, &note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return &note, nil
}

// DeleteNote deletes a note
func (c *Client) DeleteNote(ctx context.Context, noteID string) error {
	if err := c.do(ctx, http.MethodDelete, "/notes/"+noteID, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
