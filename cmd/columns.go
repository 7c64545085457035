package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskora/taskora-mcp/internal/boardsync"
	"github.com/taskora/taskora-mcp/internal/taskora"
)

func newColumnsCmd() *cobra.Command {
	var (
		workspace string
		aliasFile string
	)

	cmd := &cobra.Command{
		Use:   "columns <project-id>",
		Short: "Inspect a project's Kanban board columns",
		Long: `List the Kanban board columns of a project together with the canonical
status each column maps to. Useful for debugging why a status update
landed a task in an unexpected column.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID := args[0]

			client, err := taskora.NewClientForWorkspace(ctx, workspace)
			if err != nil {
				return fmt.Errorf("failed to create Taskora client: %w", err)
			}

			columns, err := client.ListColumns(ctx, projectID)
			if err != nil {
				return fmt.Errorf("failed to list columns for project %s: %w", projectID, err)
			}

			aliasTable, err := loadAliasTable(aliasFile)
			if err != nil {
				return err
			}
			matcher := boardsync.NewMatcher(aliasTable, nil)

			fmt.Print(boardsync.FormatColumns(columns))

			if len(columns) > 0 {
				fmt.Println("\nStatus mapping:")
				for _, col := range columns {
					if status, ok := matcher.InferStatus(col); ok {
						fmt.Printf("  %s -> %s\n", col.Name, status)
					} else {
						fmt.Printf("  %s -> (no mapping)\n", col.Name)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "default", "Workspace identifier to authenticate as")
	cmd.Flags().StringVar(&aliasFile, "aliases", "", "Path to a YAML file with additional status-to-column-name aliases")

	return cmd
}
