package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the taskora-mcp application
var rootCmd = &cobra.Command{
	Use:   "taskora-mcp",
	Short: "MCP server for the Taskora productivity API",
	Long: `taskora-mcp exposes Taskora projects, tasks, milestones, goals, notes,
comments, attachments and tags as MCP (Model Context Protocol) tools and
resources for AI assistants.

Task mutations keep the canonical task status and the kanban board column
in sync: status changes are mapped onto the board's user-named columns,
tolerating synonyms and typos, and column moves derive the status back.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "taskora-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newColumnsCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
