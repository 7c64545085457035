// Package taskora provides a client for the Taskora REST API.
//
// The client wraps the Taskora v1 HTTP endpoints with typed methods for
// projects, tasks, kanban columns, milestones, goals, notes, comments,
// attachments, and tags. Every method takes a context and returns wrapped
// errors; non-2xx responses are surfaced as *APIError.
//
// Authentication:
// This package uses the encrypted workspace token from the auth subpackage.
// Tokens are stored under the user cache directory (~/.cache/taskora-mcp/)
// and refreshed automatically through the OAuth2 token source. A personal
// access token can be supplied via TASKORA_API_TOKEN instead.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := taskora.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	projects, err := client.ListProjects(ctx, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	columns, err := client.ListColumns(ctx, projects[0].ID)
//	if err != nil {
//	    log.Fatal(err)
//	}
package taskora
