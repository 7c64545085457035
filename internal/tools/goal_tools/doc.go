// Package goal_tools provides MCP tools for managing Taskora
// workspace-level goals.
//
// # Available Tools
//
//   - goal_list: List all goals
//   - goal_get: Get details of a specific goal
//   - goal_create: Create a new goal
//   - goal_update: Update a goal (including progress and archiving)
//   - goal_delete: Delete a goal
//
// Mutation tools are only registered when the server runs with writes
// enabled.
package goal_tools
