package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskora/taskora-mcp/internal/boardsync"
	"github.com/taskora/taskora-mcp/internal/instrumentation"
	"github.com/taskora/taskora-mcp/internal/resources"
	"github.com/taskora/taskora-mcp/internal/server"
	"github.com/taskora/taskora-mcp/internal/tools/attachment_tools"
	"github.com/taskora/taskora-mcp/internal/tools/comment_tools"
	"github.com/taskora/taskora-mcp/internal/tools/goal_tools"
	"github.com/taskora/taskora-mcp/internal/tools/milestone_tools"
	"github.com/taskora/taskora-mcp/internal/tools/note_tools"
	"github.com/taskora/taskora-mcp/internal/tools/project_tools"
	"github.com/taskora/taskora-mcp/internal/tools/tag_tools"
	"github.com/taskora/taskora-mcp/internal/tools/task_tools"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: true)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		debugMode      bool
		transport      string
		httpAddr       string
		yolo           bool
		aliasFile      string
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server to provide Taskora
project and task management tools for AI assistants.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport

Safety Mode:
  By default, the server operates in read-only mode, providing only safe operations.
  Use --yolo to enable write operations (task creation, deletion, etc.)

Authentication:
  Credentials are loaded from the token cache written by 'taskora-mcp auth login',
  or from a personal access token in the TASKORA_API_TOKEN environment variable.

Column Matching:
  Status-to-column inference uses a built-in vocabulary of column names per
  canonical status. Use --aliases to merge additional names from a YAML file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}
			return runServe(transport, debugMode, httpAddr, yolo, aliasFile, metricsConfig)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for streamable-http transport)")
	cmd.Flags().BoolVar(&yolo, "yolo", false, "Enable write operations (task creation, deletion, etc.). Default is read-only mode.")
	cmd.Flags().StringVar(&aliasFile, "aliases", "", "Path to a YAML file with additional status-to-column-name aliases. Can also use TASKORA_ALIAS_FILE env var.")

	// Metrics server flags
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(transport string, debugMode bool, httpAddr string, yolo bool, aliasFile string, metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logs go to stderr so they never interleave with the stdio transport
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	// Load metrics config from environment if not set via flags
	if !metricsConfig.Enabled {
		if os.Getenv("METRICS_ENABLED") == "true" {
			metricsConfig.Enabled = true
		}
	}
	if metricsConfig.Addr == "" || metricsConfig.Addr == ":9090" {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			if transport != "stdio" {
				log.Printf("Error during instrumentation shutdown: %v", err)
			}
		}
	}()

	// Start metrics server if enabled and not in stdio mode
	var metricsServer *server.MetricsServer
	if transport != "stdio" && metricsConfig.Enabled && provider.Enabled() {
		var err error
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		go func() {
			if err := metricsServer.Start(); err != nil && err != http.ErrServerClosed {
				log.Printf("Metrics server error: %v", err)
			}
		}()
		log.Printf("Metrics server starting on %s", metricsServer.Addr())
	}

	// Load additional column-name aliases when configured
	aliasTable, err := loadAliasTable(aliasFile)
	if err != nil {
		return err
	}

	// Create server context
	var opts []server.ServerContextOption
	if aliasTable != nil {
		opts = append(opts, server.WithAliasTable(aliasTable))
	}
	serverContext, err := server.NewServerContext(shutdownCtx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}

	// Set metrics and audit logger on server context for tool instrumentation
	if provider.Enabled() {
		serverContext.SetMetrics(provider.Metrics())
		serverContext.SetAuditLogger(instrumentation.NewAuditLoggerWithConfig(nil, instrConfig.AuditLogging))
	}
	defer func() {
		// Shutdown metrics server first
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error during metrics server shutdown: %v", err)
			}
		}
		if err := serverContext.Shutdown(); err != nil {
			if transport != "stdio" {
				log.Printf("Error during server context shutdown: %v", err)
			}
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("taskora-mcp", version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false), // Subscribe and listChanged
	)

	// readOnly is the inverse of yolo
	readOnly := !yolo

	// Log the mode for visibility (only for non-stdio transports)
	if transport != "stdio" {
		if readOnly {
			log.Println("Starting server in READ-ONLY mode (use --yolo to enable write operations)")
		} else {
			log.Println("Starting server with WRITE operations enabled (--yolo flag is set)")
		}
	}

	// Register all tools and resources
	if err := registerAllTools(mcpSrv, serverContext, readOnly); err != nil {
		return err
	}

	// Start the appropriate server based on transport type
	switch transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "streamable-http":
		fmt.Printf("Starting taskora-mcp server with %s transport...\n", transport)
		return runStreamableHTTPServer(mcpSrv, serverContext, httpAddr, shutdownCtx, provider, metricsConfig)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", transport)
	}
}

// loadAliasTable loads the alias override file named by the flag or the
// TASKORA_ALIAS_FILE environment variable. Returns nil when neither is set.
func loadAliasTable(aliasFile string) (*boardsync.AliasTable, error) {
	if aliasFile == "" {
		aliasFile = os.Getenv("TASKORA_ALIAS_FILE")
	}
	if aliasFile == "" {
		return nil, nil
	}

	table, err := boardsync.LoadAliasFile(aliasFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load alias file %s: %w", aliasFile, err)
	}
	return table, nil
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

// registerAllTools registers all MCP tools and resources
func registerAllTools(mcpSrv *mcpserver.MCPServer, ctx *server.ServerContext, readOnly bool) error {
	// Define all tool registrations
	type toolRegistration struct {
		name     string
		register func() error
	}

	registrations := []toolRegistration{
		{
			name: "Project",
			register: func() error {
				return project_tools.RegisterProjectTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Task",
			register: func() error {
				return task_tools.RegisterTaskTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Milestone",
			register: func() error {
				return milestone_tools.RegisterMilestoneTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Goal",
			register: func() error {
				return goal_tools.RegisterGoalTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Note",
			register: func() error {
				return note_tools.RegisterNoteTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Comment",
			register: func() error {
				return comment_tools.RegisterCommentTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Attachment",
			register: func() error {
				return attachment_tools.RegisterAttachmentTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Tag",
			register: func() error {
				return tag_tools.RegisterTagTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Workspace Resources",
			register: func() error {
				return resources.RegisterWorkspaceResources(mcpSrv, ctx)
			},
		},
	}

	// Register all tools
	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s: %w", reg.name, err)
		}
	}

	return nil
}

func runStreamableHTTPServer(mcpSrv *mcpserver.MCPServer, serverContext *server.ServerContext, addr string, ctx context.Context, instrProvider *instrumentation.Provider, metricsConfig MetricsConfig) error {
	// Create Streamable HTTP server
	httpMCPServer := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath("/mcp"),
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", httpMCPServer)

	// Health check endpoints for orchestration probes
	healthChecker := server.NewHealthChecker(serverContext)
	healthChecker.RegisterHealthEndpoints(mux)
	healthChecker.SetReady(true)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	fmt.Printf("Streamable HTTP server starting on %s\n", addr)
	fmt.Printf("  HTTP endpoint: /mcp\n")
	fmt.Printf("  Health endpoints: /healthz, /readyz\n")
	if metricsConfig.Enabled && instrProvider != nil && instrProvider.Enabled() {
		fmt.Printf("  Metrics endpoint: %s/metrics\n", metricsConfig.Addr)
	}

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Println("Shutdown signal received, stopping HTTP server...")
		healthChecker.SetReady(false)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		fmt.Println("HTTP server stopped normally")
	}

	fmt.Println("HTTP server gracefully stopped")
	return nil
}
