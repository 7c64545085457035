package common

import (
	"context"
	"fmt"

	"github.com/taskora/taskora-mcp/internal/server"
	"github.com/taskora/taskora-mcp/internal/taskora"
	"github.com/taskora/taskora-mcp/internal/taskora/auth"
)

// GetTaskoraClient retrieves or creates a Taskora client for the specified
// workspace. When no credentials exist, the returned error walks the user
// through the authorization flow.
func GetTaskoraClient(ctx context.Context, workspace string, sc *server.ServerContext) (*taskora.Client, error) {
	client := sc.ClientForWorkspace(workspace)
	if client != nil {
		return client, nil
	}

	// Check if credentials exist before trying to create a client
	if !taskora.HasTokenForWorkspace(workspace) {
		authURL := auth.GetAuthURL()
		return nil, fmt.Errorf(`Taskora credentials not found for workspace "%s". To authorize access:

1. Visit this URL in your browser:
   %s

2. Sign in to Taskora and grant access to the workspace
3. Copy the authorization code

4. Provide the authorization code to your AI agent
   The agent will use the auth login flow with workspace="%s" to complete authentication.

Alternatively, set the TASKORA_API_TOKEN environment variable to a personal access token.

Note: You only need to authorize once. Tokens are refreshed automatically.`, workspace, authURL, workspace)
	}

	client, err := taskora.NewClientForWorkspace(ctx, workspace)
	if err != nil {
		return nil, fmt.Errorf("failed to create Taskora client for workspace %s: %w", workspace, err)
	}
	sc.SetClientForWorkspace(workspace, client)
	return client, nil
}
