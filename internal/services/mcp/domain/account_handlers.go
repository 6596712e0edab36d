package domain

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	apperrors "github.com/tradewharf/simbridge/internal/platform/errors"
	"github.com/tradewharf/simbridge/internal/trading"
)

// BalancesHandler executes a balance listing request.
func BalancesHandler(client AccountAPI) mcp.ToolHandlerFor[BalancesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ BalancesInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
		defer cancel()

		payload, err := client.Balances(callCtx)
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}

// PortfolioHandler executes a portfolio read request.
func PortfolioHandler(client AccountAPI) mcp.ToolHandlerFor[PortfolioInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ PortfolioInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
		defer cancel()

		payload, err := client.Portfolio(callCtx)
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}

// TradeHistoryHandler executes a trade history request.
func TradeHistoryHandler(client AccountAPI) mcp.ToolHandlerFor[TradeHistoryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TradeHistoryInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		if input.Limit < 0 {
			return nil, nil, apperrors.New(apperrors.CodeValidation, "limit must not be negative")
		}
		if input.Offset < 0 {
			return nil, nil, apperrors.New(apperrors.CodeValidation, "offset must not be negative")
		}
		chain, err := chainFromString("chain", input.Chain)
		if err != nil {
			return nil, nil, err
		}

		callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
		defer cancel()

		payload, err := client.Trades(callCtx, trading.TradeFilter{
			Limit:  input.Limit,
			Offset: input.Offset,
			Token:  strings.TrimSpace(input.Token),
			Chain:  chain,
		})
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}

// ProfileHandler executes a profile read request.
func ProfileHandler(client AccountAPI) mcp.ToolHandlerFor[ProfileInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ProfileInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
		defer cancel()

		payload, err := client.Profile(callCtx)
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}

// ProfileUpdateHandler executes a profile update request.
func ProfileUpdateHandler(client AccountAPI) mcp.ToolHandlerFor[ProfileUpdateInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileUpdateInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		update := trading.ProfileUpdate{
			Name:        strings.TrimSpace(input.Name),
			Description: strings.TrimSpace(input.Description),
			ImageURL:    strings.TrimSpace(input.ImageURL),
		}
		if update.Name == "" && update.Description == "" && update.ImageURL == "" {
			return nil, nil, apperrors.New(apperrors.CodeValidation, "at least one of name, description, or imageUrl is required")
		}

		callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
		defer cancel()

		payload, err := client.UpdateProfile(callCtx, update)
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}
