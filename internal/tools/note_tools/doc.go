// Package note_tools provides MCP tools for managing Taskora project
// notes.
//
// # Available Tools
//
//   - note_list: List all notes of a project
//   - note_get: Get a note including its body
//   - note_create: Create a new note
//   - note_update: Update a note (including pinning)
//   - note_delete: Delete a note
//
// Mutation tools are only registered when the server runs with writes
// enabled.
package note_tools
