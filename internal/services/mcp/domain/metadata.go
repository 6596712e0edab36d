package domain

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// requestIDMetaKey carries the per-call request identifier in tool result metadata.
	requestIDMetaKey = "x-simbridge-request-id"
	// invocationIDMetaKey carries the tool invocation identifier in tool result metadata.
	invocationIDMetaKey = "x-simbridge-invocation-id"
)

// ToolCallMetadata carries correlation identifiers for MCP tool calls.
type ToolCallMetadata struct {
	RequestID    string
	InvocationID string
}

// NewInvocationID generates an invocation identifier for a tool call.
func NewInvocationID() string {
	return uuid.NewString()
}

// NewRequestID generates a request identifier for a trading API call.
func NewRequestID() string {
	return uuid.NewString()
}

// NewToolCallMetadata generates the full correlation pair for one tool call.
func NewToolCallMetadata() ToolCallMetadata {
	return ToolCallMetadata{
		RequestID:    NewRequestID(),
		InvocationID: NewInvocationID(),
	}
}

// CallToolResultWithMetadata builds a tool result with correlation metadata.
func CallToolResultWithMetadata(meta ToolCallMetadata) *mcp.CallToolResult {
	result := &mcp.CallToolResult{
		Meta: map[string]any{
			requestIDMetaKey: meta.RequestID,
		},
	}
	if meta.InvocationID != "" {
		result.Meta[invocationIDMetaKey] = meta.InvocationID
	}
	return result
}

// PayloadResultWithMetadata builds a tool result that carries the trading API
// payload verbatim as text content, plus correlation metadata. Keeping the raw
// payload means MCP clients see exactly what the simulator returned.
func PayloadResultWithMetadata(meta ToolCallMetadata, payload json.RawMessage) *mcp.CallToolResult {
	result := CallToolResultWithMetadata(meta)
	result.Content = []mcp.Content{
		&mcp.TextContent{Text: string(payload)},
	}
	return result
}
