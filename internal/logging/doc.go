// Package logging provides structured logging utilities for the
// taskora-mcp application.
//
// This package centralizes logging patterns to ensure consistent,
// structured logging throughout the codebase using the standard
// library's slog package.
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "tasks.update")
//	logger.Info("task updated",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Debug("refreshing credential",
//	    slog.String("token", logging.SanitizeToken(token)))
//
// # Security Considerations
//
// Tokens are never logged directly; SanitizeToken reduces them to a
// length indicator.
package logging
