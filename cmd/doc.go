// Package cmd implements the command-line interface for taskora-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server to provide Taskora tools for AI assistants
//   - auth: Manage OAuth credentials per workspace (login, status, logout)
//   - columns: Inspect a project's board columns and their status mapping
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd
