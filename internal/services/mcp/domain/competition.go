package domain

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CompetitionAPI is the slice of the trading client used by competition tools.
type CompetitionAPI interface {
	CompetitionStatus(ctx context.Context) (json.RawMessage, error)
	Leaderboard(ctx context.Context, competitionID string) (json.RawMessage, error)
	CompetitionRules(ctx context.Context) (json.RawMessage, error)
}

// CompetitionStatusInput represents the MCP tool input for the competition status.
type CompetitionStatusInput struct{}

// CompetitionStatusTool defines the MCP tool schema for the competition status.
func CompetitionStatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_competition_status",
		Description: "Gets the status of the active competition.",
	}
}

// CompetitionStatusHandler executes a competition status request.
func CompetitionStatusHandler(client CompetitionAPI) mcp.ToolHandlerFor[CompetitionStatusInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ CompetitionStatusInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
		defer cancel()

		payload, err := client.CompetitionStatus(callCtx)
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}

// LeaderboardInput represents the MCP tool input for the competition leaderboard.
type LeaderboardInput struct {
	CompetitionID string `json:"competitionId,omitempty" jsonschema:"optional competition identifier; defaults to the active competition"`
}

// LeaderboardTool defines the MCP tool schema for the competition leaderboard.
func LeaderboardTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_leaderboard",
		Description: "Gets the competition leaderboard rankings.",
	}
}

// LeaderboardHandler executes a leaderboard request.
func LeaderboardHandler(client CompetitionAPI) mcp.ToolHandlerFor[LeaderboardInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LeaderboardInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
		defer cancel()

		payload, err := client.Leaderboard(callCtx, strings.TrimSpace(input.CompetitionID))
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}

// CompetitionRulesInput represents the MCP tool input for the competition rules.
type CompetitionRulesInput struct{}

// CompetitionRulesTool defines the MCP tool schema for the competition rules.
func CompetitionRulesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_competition_rules",
		Description: "Gets the competition rules and trading constraints.",
	}
}

// CompetitionRulesHandler executes a competition rules request.
func CompetitionRulesHandler(client CompetitionAPI) mcp.ToolHandlerFor[CompetitionRulesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ CompetitionRulesInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
		defer cancel()

		payload, err := client.CompetitionRules(callCtx)
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}
