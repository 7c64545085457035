// Package task_tools provides MCP tools for managing Taskora tasks.
//
// Every task mutation consults the status-to-column synchronizer before
// writing, so that a task's canonical status and its kanban column stay
// consistent without the caller having to know the board's column names:
//
//   - task_create places new tasks on the board's default column when no
//     explicit column or status is given.
//   - task_update infers the target column from a status change (lenient:
//     on inference failure only the status changes).
//   - task_complete requires a Done column (strict: inference failure is
//     an error naming the expected and available column names).
//   - task_move works in the inverse direction, deriving the status from
//     the destination column when its name is recognized vocabulary.
//   - task_bulk_update applies lenient inference once per call and records
//     one event per task.
//
// # Available Tools
//
//   - task_list: List tasks in a project (with filters)
//   - task_get: Get details of one or more tasks
//   - task_create: Create a new task
//   - task_update: Update a task
//   - task_delete: Delete one or more tasks
//   - task_complete: Complete one or more tasks
//   - task_move: Move a task to another column
//   - task_bulk_update: Apply one update to several tasks
//   - sync_events: Inspect the inference event log
//   - sync_metrics: Aggregate inference failure counts
//
// # Multi-Workspace Support
//
// All tools support an optional 'workspace' parameter to specify which
// Taskora workspace to use. If not provided, the 'default' workspace is
// used.
package task_tools
