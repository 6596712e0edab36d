// Package domain translates MCP tool calls into trading API requests.
//
// The package is intentionally explicit about that mapping:
// - validate MCP tool input before any network traffic,
// - route calls to the correct trading API endpoint,
// - and surface the API payload unchanged so MCP clients see exactly
//   what the simulator returned.
//
// This keeps MCP behavior auditable from protocol message -> HTTP request ->
// rendered tool result.
package domain
