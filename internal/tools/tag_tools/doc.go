// Package tag_tools provides MCP tools for managing Taskora
// workspace-level tags and their assignment to tasks.
//
// # Available Tools
//
//   - tag_list: List all tags
//   - tag_create: Create a new tag
//   - tag_update: Update a tag's name or color
//   - tag_delete: Delete a tag
//   - tag_assign: Assign a tag to one or more tasks
//   - tag_unassign: Remove a tag from one or more tasks
//
// Mutation tools are only registered when the server runs with writes
// enabled.
package tag_tools
