// Package milestone_tools provides MCP tools for managing Taskora
// project milestones.
//
// # Available Tools
//
//   - milestone_list: List all milestones of a project
//   - milestone_get: Get details of a specific milestone
//   - milestone_create: Create a new milestone
//   - milestone_update: Update a milestone (including completion)
//   - milestone_delete: Delete a milestone
//
// Mutation tools are only registered when the server runs with writes
// enabled.
package milestone_tools
