package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/tradewharf/simbridge/internal/platform/errors"
	"github.com/tradewharf/simbridge/internal/trading"
)

// requireString validates that a required string argument is present and
// returns it trimmed. Validation runs before any network traffic so a bad
// call never reaches the trading API.
func requireString(name, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", apperrors.New(apperrors.CodeValidation, fmt.Sprintf("%s is required", name))
	}
	return trimmed, nil
}

// chainFromString validates an optional chain family argument. Empty input is
// allowed and maps to the zero Chain so callers can fall back to detection.
func chainFromString(name, value string) (trading.Chain, error) {
	switch chain := trading.Chain(strings.ToLower(strings.TrimSpace(value))); chain {
	case "", trading.ChainEVM, trading.ChainSVM:
		return chain, nil
	default:
		return "", apperrors.New(apperrors.CodeValidation, fmt.Sprintf("%s must be one of: evm, svm", name))
	}
}

// specificChainFromString validates an optional exact network argument.
func specificChainFromString(name, value string) (trading.SpecificChain, error) {
	switch chain := trading.SpecificChain(strings.ToLower(strings.TrimSpace(value))); chain {
	case "",
		trading.SpecificEth,
		trading.SpecificPolygon,
		trading.SpecificBSC,
		trading.SpecificArbitrum,
		trading.SpecificOptimism,
		trading.SpecificAvalanche,
		trading.SpecificBase,
		trading.SpecificLinea,
		trading.SpecificSVM:
		return chain, nil
	default:
		return "", apperrors.New(apperrors.CodeValidation,
			fmt.Sprintf("%s must be one of: eth, polygon, bsc, arbitrum, optimism, avalanche, base, linea, svm", name))
	}
}

// intervalFromString validates an optional candle interval argument.
func intervalFromString(value string) (trading.Interval, error) {
	switch interval := trading.Interval(strings.ToLower(strings.TrimSpace(value))); interval {
	case "",
		trading.Interval1m,
		trading.Interval5m,
		trading.Interval15m,
		trading.Interval1h,
		trading.Interval4h,
		trading.Interval1d:
		return interval, nil
	default:
		return "", apperrors.New(apperrors.CodeValidation, "interval must be one of: 1m, 5m, 15m, 1h, 4h, 1d")
	}
}

// parseAmount validates that a trade amount is a positive decimal string.
// The original text is returned so the value reaches the API without
// reformatting.
func parseAmount(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", apperrors.New(apperrors.CodeValidation, "amount is required")
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return "", apperrors.New(apperrors.CodeValidation, "amount must be a decimal number")
	}
	if amount.Sign() <= 0 {
		return "", apperrors.New(apperrors.CodeValidation, "amount must be greater than zero")
	}
	return trimmed, nil
}

// parseSlippage validates an optional slippage tolerance percentage. Empty
// input is allowed and omits the field from the trade request.
func parseSlippage(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	slippage, err := decimal.NewFromString(trimmed)
	if err != nil {
		return "", apperrors.New(apperrors.CodeValidation, "slippageTolerance must be a decimal number")
	}
	if slippage.Sign() < 0 {
		return "", apperrors.New(apperrors.CodeValidation, "slippageTolerance must not be negative")
	}
	return trimmed, nil
}
