// Package auth manages Taskora credentials for the MCP server and CLI.
//
// Two credential sources are supported:
//   - OAuth2 authorization-code flow against the Taskora identity service,
//     with tokens cached per workspace under the user cache directory
//     (~/.cache/taskora-mcp/<workspace>.token) and refreshed automatically.
//   - A personal access token from the TASKORA_API_TOKEN environment
//     variable, which bypasses the token cache entirely.
//
// Cached tokens are encrypted at rest with AES-256-GCM when
// TASKORA_TOKEN_ENCRYPTION_KEY (base64, 32 bytes) is set. Without a key
// the token file is stored in plaintext with 0600 permissions.
package auth
