// Package resources provides MCP resources for exposing workspace data.
// Resources are read-only data sources that MCP clients can fetch, such as
// the workspace profile and the project list, without spending tool calls.
package resources
