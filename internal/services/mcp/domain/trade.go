package domain

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tradewharf/simbridge/internal/trading"
)

// TradeAPI is the slice of the trading client used by trade tools.
type TradeAPI interface {
	ExecuteTrade(ctx context.Context, request trading.TradeRequest) (json.RawMessage, error)
	Quote(ctx context.Context, fromToken, toToken, amount string) (json.RawMessage, error)
}

// ExecuteTradeInput represents the MCP tool input for executing a trade.
type ExecuteTradeInput struct {
	FromToken         string `json:"fromToken" jsonschema:"token address to sell"`
	ToToken           string `json:"toToken" jsonschema:"token address to buy"`
	Amount            string `json:"amount" jsonschema:"amount of fromToken to sell, as a decimal string"`
	SlippageTolerance string `json:"slippageTolerance,omitempty" jsonschema:"optional slippage tolerance percentage, as a decimal string"`
	FromChain         string `json:"fromChain,omitempty" jsonschema:"optional chain family of fromToken (evm or svm); derived from the address when omitted"`
	ToChain           string `json:"toChain,omitempty" jsonschema:"optional chain family of toToken (evm or svm); derived from the address when omitted"`
	FromSpecificChain string `json:"fromSpecificChain,omitempty" jsonschema:"optional exact network of fromToken (eth, polygon, bsc, arbitrum, optimism, avalanche, base, linea, svm)"`
	ToSpecificChain   string `json:"toSpecificChain,omitempty" jsonschema:"optional exact network of toToken (eth, polygon, bsc, arbitrum, optimism, avalanche, base, linea, svm)"`
}

// ExecuteTradeTool defines the MCP tool schema for executing a trade.
func ExecuteTradeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "execute_trade",
		Description: "Executes a trade between two tokens. Chain fields are derived from the token addresses when not provided.",
	}
}

// ExecuteTradeHandler executes a trade request.
func ExecuteTradeHandler(client TradeAPI) mcp.ToolHandlerFor[ExecuteTradeInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExecuteTradeInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		fromToken, err := requireString("fromToken", input.FromToken)
		if err != nil {
			return nil, nil, err
		}
		toToken, err := requireString("toToken", input.ToToken)
		if err != nil {
			return nil, nil, err
		}
		amount, err := parseAmount(input.Amount)
		if err != nil {
			return nil, nil, err
		}
		slippage, err := parseSlippage(input.SlippageTolerance)
		if err != nil {
			return nil, nil, err
		}
		fromChain, err := chainFromString("fromChain", input.FromChain)
		if err != nil {
			return nil, nil, err
		}
		toChain, err := chainFromString("toChain", input.ToChain)
		if err != nil {
			return nil, nil, err
		}
		fromSpecific, err := specificChainFromString("fromSpecificChain", input.FromSpecificChain)
		if err != nil {
			return nil, nil, err
		}
		toSpecific, err := specificChainFromString("toSpecificChain", input.ToSpecificChain)
		if err != nil {
			return nil, nil, err
		}

		request := trading.TradeRequest{
			FromToken:         fromToken,
			ToToken:           toToken,
			Amount:            amount,
			SlippageTolerance: slippage,
		}
		request.FromChain, request.FromSpecificChain = trading.ResolveChain(fromToken, fromChain, fromSpecific)
		request.ToChain, request.ToSpecificChain = trading.ResolveChain(toToken, toChain, toSpecific)

		callCtx, cancel := context.WithTimeout(ctx, apiLongCallTimeout)
		defer cancel()

		payload, err := client.ExecuteTrade(callCtx, request)
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}

// QuoteInput represents the MCP tool input for quoting a trade.
type QuoteInput struct {
	FromToken string `json:"fromToken" jsonschema:"token address to sell"`
	ToToken   string `json:"toToken" jsonschema:"token address to buy"`
	Amount    string `json:"amount" jsonschema:"amount of fromToken to quote, as a decimal string"`
}

// QuoteTool defines the MCP tool schema for quoting a trade.
func QuoteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_quote",
		Description: "Gets a quote for a prospective trade without executing it.",
	}
}

// QuoteHandler executes a trade quote request.
func QuoteHandler(client TradeAPI) mcp.ToolHandlerFor[QuoteInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input QuoteInput) (*mcp.CallToolResult, any, error) {
		meta := NewToolCallMetadata()

		fromToken, err := requireString("fromToken", input.FromToken)
		if err != nil {
			return nil, nil, err
		}
		toToken, err := requireString("toToken", input.ToToken)
		if err != nil {
			return nil, nil, err
		}
		amount, err := parseAmount(input.Amount)
		if err != nil {
			return nil, nil, err
		}

		callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
		defer cancel()

		payload, err := client.Quote(callCtx, fromToken, toToken, amount)
		if err != nil {
			return nil, nil, err
		}
		return PayloadResultWithMetadata(meta, payload), nil, nil
	}
}
