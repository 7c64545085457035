package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taskora/taskora-mcp/internal/boardsync"
	"github.com/taskora/taskora-mcp/internal/instrumentation"
	"github.com/taskora/taskora-mcp/internal/taskora"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx      context.Context
	cancel   context.CancelFunc
	clients  map[string]*taskora.Client // Maps workspace name to Taskora client
	matcher  *boardsync.Matcher
	recorder *boardsync.Recorder
	metrics  *instrumentation.Metrics
	audit    *instrumentation.AuditLogger
	mu       sync.RWMutex
	shutdown bool
}

// ServerContextOption configures a ServerContext.
type ServerContextOption func(*ServerContext)

// WithInstrumentation attaches an instrumentation provider and audit logger.
func WithInstrumentation(provider *instrumentation.Provider, audit *instrumentation.AuditLogger) ServerContextOption {
	return func(sc *ServerContext) {
		if provider != nil {
			sc.metrics = provider.Metrics()
		}
		sc.audit = audit
	}
}

// WithAliasTable replaces the default column alias table used for
// status-to-column inference.
func WithAliasTable(table *boardsync.AliasTable) ServerContextOption {
	return func(sc *ServerContext) {
		sc.matcher = boardsync.NewMatcher(table, slog.Default())
	}
}

// NewServerContext creates a new server context
func NewServerContext(ctx context.Context, opts ...ServerContextOption) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		clients:  make(map[string]*taskora.Client),
		matcher:  boardsync.NewMatcher(nil, slog.Default()),
		shutdown: false,
	}

	// Feed inference outcomes into the metrics pipeline. The recorder
	// remains the source of truth for the sync_events tool; the observer
	// only mirrors each attempt into the status_inference_total counter.
	sc.recorder = boardsync.NewRecorderWithObserver(func(ev boardsync.Event) {
		metrics := sc.Metrics()
		if metrics == nil {
			return
		}
		if !ev.Inferred && !ev.Failed {
			return // explicit column, no inference attempted
		}
		result := instrumentation.InferenceResultFailed
		if !ev.Failed {
			result = ev.Strategy
		}
		metrics.RecordStatusInference(shutdownCtx, result)
	})

	for _, opt := range opts {
		opt(sc)
	}

	// Try to create the default workspace client eagerly, but don't fail if
	// credentials are missing. Clients are lazily initialized when first needed.
	if taskora.HasToken() {
		client, err := taskora.NewClient(shutdownCtx)
		if err != nil {
			slog.Warn("failed to create Taskora client for default workspace", "error", err)
		} else {
			sc.clients["default"] = client
		}
	}

	return sc, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// ClientForWorkspace returns the Taskora client for a specific workspace.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the workspace has no credentials.
func (sc *ServerContext) ClientForWorkspace(workspace string) *taskora.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	// Check if client already exists
	if client, ok := sc.clients[workspace]; ok {
		return client
	}

	// Try to create client if credentials exist
	if !taskora.HasTokenForWorkspace(workspace) {
		return nil
	}

	client, err := taskora.NewClientForWorkspace(sc.ctx, workspace)
	if err != nil {
		slog.Warn("failed to create Taskora client", "workspace", workspace, "error", err)
		return nil
	}

	sc.clients[workspace] = client
	return client
}

// Client returns the Taskora client for the default workspace
func (sc *ServerContext) Client() *taskora.Client {
	return sc.ClientForWorkspace("default")
}

// SetClientForWorkspace sets the Taskora client for a specific workspace
func (sc *ServerContext) SetClientForWorkspace(workspace string, client *taskora.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.clients[workspace] = client
}

// SetClient sets the Taskora client for the default workspace
func (sc *ServerContext) SetClient(client *taskora.Client) {
	sc.SetClientForWorkspace("default", client)
}

// Matcher returns the status-to-column matcher.
func (sc *ServerContext) Matcher() *boardsync.Matcher {
	return sc.matcher
}

// Recorder returns the task sync event recorder.
func (sc *ServerContext) Recorder() *boardsync.Recorder {
	return sc.recorder
}

// Metrics returns the metrics recorder, or nil when instrumentation is not attached.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder. Primarily used by tests.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// AuditLogger returns the audit logger, or nil when instrumentation is not attached.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.audit
}

// SetAuditLogger sets the audit logger.
func (sc *ServerContext) SetAuditLogger(audit *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.audit = audit
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
