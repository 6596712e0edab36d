package domain

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// HealthAPI is the slice of the trading client used by the health tool.
type HealthAPI interface {
	Health(ctx context.Context) (json.RawMessage, error)
	DetailedHealth(ctx context.Context) (json.RawMessage, error)
}

// HealthInput represents the MCP tool input for a health check.
type HealthInput struct {
	Detailed bool `json:"detailed,omitempty" jsonschema:"set to true for per-service health status"`
}

// HealthTool defines the MCP tool schema for a health check.
func HealthTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_health",
		Description: "Checks trading API health. Set detailed to true for per-service status.",
	}
}

// HealthHandler executes a health check request.
func HealthHandler(client HealthAPI) mcp.ToolHandlerFor[HealthInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input HealthInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
		defer cancel()

		check := client.Health
		if input.Detailed {
			check = client.DetailedHealth
		}
		payload, err := check(callCtx)
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}
