// Package attachment_tools provides MCP tools for task attachments.
//
// Attachments are metadata only on this surface: uploads and downloads
// are handled by the Taskora web client, the API exposes file name,
// content type, size and a download URL.
//
// # Available Tools
//
//   - attachment_list: List the attachments of a task
//   - attachment_get: Get attachment metadata
//   - attachment_delete: Delete an attachment
//
// The delete tool is only registered when the server runs with writes
// enabled.
package attachment_tools
