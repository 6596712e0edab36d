package domain

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tradewharf/simbridge/internal/trading"
)

// AccountAPI is the slice of the trading client used by account tools.
type AccountAPI interface {
	Balances(ctx context.Context) (json.RawMessage, error)
	Portfolio(ctx context.Context) (json.RawMessage, error)
	Trades(ctx context.Context, filter trading.TradeFilter) (json.RawMessage, error)
	Profile(ctx context.Context) (json.RawMessage, error)
	UpdateProfile(ctx context.Context, update trading.ProfileUpdate) (json.RawMessage, error)
}

// BalancesInput represents the MCP tool input for listing balances.
type BalancesInput struct{}

// BalancesTool defines the MCP tool schema for listing balances.
func BalancesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_balances",
		Description: "Gets the token balances held by the agent across all supported chains.",
	}
}

// PortfolioInput represents the MCP tool input for reading the portfolio.
type PortfolioInput struct{}

// PortfolioTool defines the MCP tool schema for reading the portfolio.
func PortfolioTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_portfolio",
		Description: "Gets the agent's portfolio value and per-token breakdown.",
	}
}

// TradeHistoryInput represents the MCP tool input for listing past trades.
type TradeHistoryInput struct {
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of trades to return"`
	Offset int    `json:"offset,omitempty" jsonschema:"number of trades to skip for pagination"`
	Token  string `json:"token,omitempty" jsonschema:"optional token address filter"`
	Chain  string `json:"chain,omitempty" jsonschema:"optional chain family filter (evm or svm)"`
}

// TradeHistoryTool defines the MCP tool schema for listing past trades.
func TradeHistoryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_trades",
		Description: "Lists the agent's past trades, most recent first. Supports optional pagination and token or chain filters.",
	}
}

// ProfileInput represents the MCP tool input for reading the agent profile.
type ProfileInput struct{}

// ProfileTool defines the MCP tool schema for reading the agent profile.
func ProfileTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_profile",
		Description: "Gets the agent profile registered with the competition.",
	}
}

// ProfileUpdateInput represents the MCP tool input for updating the agent profile.
type ProfileUpdateInput struct {
	Name        string `json:"name,omitempty" jsonschema:"new display name for the agent"`
	Description string `json:"description,omitempty" jsonschema:"new description for the agent"`
	ImageURL    string `json:"imageUrl,omitempty" jsonschema:"new image URL for the agent"`
}

// ProfileUpdateTool defines the MCP tool schema for updating the agent profile.
func ProfileUpdateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_profile",
		Description: "Updates the agent profile. At least one of name, description, or imageUrl must be provided.",
	}
}
