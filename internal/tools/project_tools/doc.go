// Package project_tools provides MCP tools for managing Taskora projects.
//
// # Available Tools
//
//   - project_list: List all projects in the workspace
//   - project_get: Get details of a specific project
//   - project_list_columns: Show a project's kanban board columns, sorted
//     by position, with default and WIP-limit annotations
//   - project_create: Create a new project
//   - project_update: Update a project's name, description or archived flag
//   - project_delete: Delete a project
//
// Mutation tools are only registered when the server runs with writes
// enabled.
//
// # Multi-Workspace Support
//
// All tools support an optional 'workspace' parameter to specify which
// Taskora workspace to use. If not provided, the 'default' workspace is
// used.
package project_tools
