package domain

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tradewharf/simbridge/internal/trading"
)

// PriceAPI is the slice of the trading client used by price tools.
type PriceAPI interface {
	Price(ctx context.Context, token string, chain trading.Chain, specificChain trading.SpecificChain) (json.RawMessage, error)
	TokenInfo(ctx context.Context, token string, chain trading.Chain, specificChain trading.SpecificChain) (json.RawMessage, error)
	PriceHistory(ctx context.Context, query trading.PriceHistoryQuery) (json.RawMessage, error)
}

// PriceInput represents the MCP tool input for a current price lookup.
type PriceInput struct {
	Token         string `json:"token" jsonschema:"token address to price"`
	Chain         string `json:"chain,omitempty" jsonschema:"optional chain family filter (evm or svm)"`
	SpecificChain string `json:"specificChain,omitempty" jsonschema:"optional exact network (eth, polygon, bsc, arbitrum, optimism, avalanche, base, linea, svm)"`
}

// PriceTool defines the MCP tool schema for a current price lookup.
func PriceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_price",
		Description: "Gets the current price for a token address.",
	}
}

// PriceHandler executes a current price request.
func PriceHandler(client PriceAPI) mcp.ToolHandlerFor[PriceInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PriceInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		token, chain, specificChain, err := priceLookupArgs(input.Token, input.Chain, input.SpecificChain)
		if err != nil {
			return nil, nil, err
		}

		callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
		defer cancel()

		payload, err := client.Price(callCtx, token, chain, specificChain)
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}

// TokenInfoInput represents the MCP tool input for a token metadata lookup.
type TokenInfoInput struct {
	Token         string `json:"token" jsonschema:"token address to look up"`
	Chain         string `json:"chain,omitempty" jsonschema:"optional chain family filter (evm or svm)"`
	SpecificChain string `json:"specificChain,omitempty" jsonschema:"optional exact network (eth, polygon, bsc, arbitrum, optimism, avalanche, base, linea, svm)"`
}

// TokenInfoTool defines the MCP tool schema for a token metadata lookup.
func TokenInfoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_token_info",
		Description: "Gets token metadata such as symbol, name, and chain placement.",
	}
}

// TokenInfoHandler executes a token metadata request.
func TokenInfoHandler(client PriceAPI) mcp.ToolHandlerFor[TokenInfoInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TokenInfoInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		token, chain, specificChain, err := priceLookupArgs(input.Token, input.Chain, input.SpecificChain)
		if err != nil {
			return nil, nil, err
		}

		callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
		defer cancel()

		payload, err := client.TokenInfo(callCtx, token, chain, specificChain)
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}

// PriceHistoryInput represents the MCP tool input for a historical price query.
type PriceHistoryInput struct {
	Token         string `json:"token" jsonschema:"token address to query"`
	StartTime     string `json:"startTime,omitempty" jsonschema:"optional window start as an RFC3339 timestamp"`
	EndTime       string `json:"endTime,omitempty" jsonschema:"optional window end as an RFC3339 timestamp"`
	Interval      string `json:"interval,omitempty" jsonschema:"optional candle interval (1m, 5m, 15m, 1h, 4h, 1d)"`
	Chain         string `json:"chain,omitempty" jsonschema:"optional chain family filter (evm or svm)"`
	SpecificChain string `json:"specificChain,omitempty" jsonschema:"optional exact network (eth, polygon, bsc, arbitrum, optimism, avalanche, base, linea, svm)"`
}

// PriceHistoryTool defines the MCP tool schema for a historical price query.
func PriceHistoryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_price_history",
		Description: "Gets historical price data for a token over an optional time window.",
	}
}

// PriceHistoryHandler executes a historical price request.
func PriceHistoryHandler(client PriceAPI) mcp.ToolHandlerFor[PriceHistoryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PriceHistoryInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		token, chain, specificChain, err := priceLookupArgs(input.Token, input.Chain, input.SpecificChain)
		if err != nil {
			return nil, nil, err
		}
		interval, err := intervalFromString(input.Interval)
		if err != nil {
			return nil, nil, err
		}

		callCtx, cancel := context.WithTimeout(ctx, apiLongCallTimeout)
		defer cancel()

		payload, err := client.PriceHistory(callCtx, trading.PriceHistoryQuery{
			Token:         token,
			StartTime:     strings.TrimSpace(input.StartTime),
			EndTime:       strings.TrimSpace(input.EndTime),
			Interval:      interval,
			Chain:         chain,
			SpecificChain: specificChain,
		})
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}

// priceLookupArgs validates the argument trio shared by all price tools.
func priceLookupArgs(token, chain, specificChain string) (string, trading.Chain, trading.SpecificChain, error) {
	validToken, err := requireString("token", token)
	if err != nil {
		return "", "", "", err
	}
	validChain, err := chainFromString("chain", chain)
	if err != nil {
		return "", "", "", err
	}
	validSpecific, err := specificChainFromString("specificChain", specificChain)
	if err != nil {
		return "", "", "", err
	}
	return validToken, validChain, validSpecific, nil
}
