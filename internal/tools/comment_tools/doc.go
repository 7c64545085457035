// Package comment_tools provides MCP tools for managing comments on
// Taskora tasks.
//
// # Available Tools
//
//   - comment_list: List all comments on a task
//   - comment_create: Add a comment to a task
//   - comment_update: Edit a comment
//   - comment_delete: Delete a comment
//
// Mutation tools are only registered when the server runs with writes
// enabled.
package comment_tools
