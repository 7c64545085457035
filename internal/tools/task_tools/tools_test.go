package task_tools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskora/taskora-mcp/internal/taskora"
)

func TestColumnName(t *testing.T) {
	columns := []taskora.Column{
		{ID: "col_1", Name: "To Do"},
		{ID: "col_2", Name: "Done"},
	}

	tests := []struct {
		name     string
		columnID string
		expected string
	}{
		{name: "known column", columnID: "col_2", expected: "Done"},
		{name: "unknown column", columnID: "col_9", expected: ""},
		{name: "empty id", columnID: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, columnName(columns, tt.columnID))
		})
	}
}

func TestParseDueDate(t *testing.T) {
	// Valid RFC3339 value
	args := map[string]interface{}{"due_date": "2026-03-01T12:00:00Z"}
	due := parseDueDate(args)
	if assert.NotNil(t, due) {
		assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), due.UTC())
	}

	// Missing, empty and malformed values are ignored
	assert.Nil(t, parseDueDate(map[string]interface{}{}))
	assert.Nil(t, parseDueDate(map[string]interface{}{"due_date": ""}))
	assert.Nil(t, parseDueDate(map[string]interface{}{"due_date": "tomorrow"}))
	assert.Nil(t, parseDueDate(map[string]interface{}{"due_date": 42}))
}

func TestHasNumber(t *testing.T) {
	args := map[string]interface{}{
		"recent_failures": float64(5),
		"operation":       "update",
	}
	assert.True(t, hasNumber(args, "recent_failures"))
	assert.False(t, hasNumber(args, "operation"))
	assert.False(t, hasNumber(args, "missing"))
}

func TestRegisterTaskTools(t *testing.T) {
	// This test verifies that RegisterTaskTools doesn't panic
	// We can't fully test the registration without a real MCP server and context
	// But we can ensure the function signature is correct
	_ = RegisterTaskTools
}
