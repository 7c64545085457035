package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskora/taskora-mcp/internal/taskora/auth"
)

func newAuthCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Taskora authentication",
		Long: `Manage OAuth credentials for the Taskora API.

Tokens are cached per workspace under the user cache directory (override
with TASKORA_TOKEN_DIR). A personal access token in TASKORA_API_TOKEN
takes precedence over cached OAuth tokens.`,
	}

	cmd.PersistentFlags().StringVar(&workspace, "workspace", "default", "Workspace identifier the credentials belong to")

	cmd.AddCommand(newAuthLoginCmd(&workspace))
	cmd.AddCommand(newAuthStatusCmd(&workspace))
	cmd.AddCommand(newAuthLogoutCmd(&workspace))

	return cmd
}

func newAuthLoginCmd(workspace *string) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authorize access to a Taskora workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Visit the following URL to authorize taskora-mcp:\n\n  %s\n\n", auth.GetAuthURL())
			fmt.Print("Paste the authorization code here: ")

			reader := bufio.NewReader(os.Stdin)
			code, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			code = strings.TrimSpace(code)
			if code == "" {
				return fmt.Errorf("no authorization code provided")
			}

			if err := auth.SaveToken(cmd.Context(), code, *workspace); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Printf("Authorized workspace %q. Tokens are refreshed automatically.\n", *workspace)
			return nil
		},
	}
}

func newAuthStatusCmd(workspace *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status for a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("TASKORA_API_TOKEN") != "" {
				fmt.Println("Using personal access token from TASKORA_API_TOKEN")
				return nil
			}
			if auth.HasTokenForWorkspace(*workspace) {
				fmt.Printf("Workspace %q is authorized\n", *workspace)
				return nil
			}
			fmt.Printf("Workspace %q is not authorized. Run 'taskora-mcp auth login' to authorize.\n", *workspace)
			return nil
		},
	}
}

func newAuthLogoutCmd(workspace *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove cached credentials for a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !auth.HasTokenForWorkspace(*workspace) {
				fmt.Printf("No cached credentials for workspace %q\n", *workspace)
				return nil
			}
			if err := auth.DeleteToken(*workspace); err != nil {
				return fmt.Errorf("failed to delete token: %w", err)
			}
			fmt.Printf("Removed cached credentials for workspace %q\n", *workspace)
			return nil
		},
	}
}
