package note_tools

import (
	"testing"
)

func TestRegisterNoteTools(t *testing.T) {
	// This test verifies that RegisterNoteTools doesn't panic
	// We can't fully test the registration without a real MCP server and context
	// But we can ensure the function signature is correct
	_ = RegisterNoteTools
}
