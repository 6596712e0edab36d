package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tradewharf/simbridge/internal/services/mcp/domain"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
}

func registerAccountTools(registrar mcpRegistrationTarget, client domain.AccountAPI) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.BalancesTool(), handler: domain.BalancesHandler(client)},
		{tool: domain.PortfolioTool(), handler: domain.PortfolioHandler(client)},
		{tool: domain.TradeHistoryTool(), handler: domain.TradeHistoryHandler(client)},
		{tool: domain.ProfileTool(), handler: domain.ProfileHandler(client)},
		{tool: domain.ProfileUpdateTool(), handler: domain.ProfileUpdateHandler(client)},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerPriceTools(registrar mcpRegistrationTarget, client domain.PriceAPI) error {
	if err := registerTool(registrar, domain.PriceTool(), domain.PriceHandler(client)); err != nil {
		return err
	}
	if err := registerTool(registrar, domain.TokenInfoTool(), domain.TokenInfoHandler(client)); err != nil {
		return err
	}
	return registerTool(registrar, domain.PriceHistoryTool(), domain.PriceHistoryHandler(client))
}

func registerTradeTools(registrar mcpRegistrationTarget, client domain.TradeAPI) error {
	if err := registerTool(registrar, domain.ExecuteTradeTool(), domain.ExecuteTradeHandler(client)); err != nil {
		return err
	}
	return registerTool(registrar, domain.QuoteTool(), domain.QuoteHandler(client))
}

func registerCompetitionTools(registrar mcpRegistrationTarget, client domain.CompetitionAPI) error {
	if err := registerTool(registrar, domain.CompetitionStatusTool(), domain.CompetitionStatusHandler(client)); err != nil {
		return err
	}
	if err := registerTool(registrar, domain.LeaderboardTool(), domain.LeaderboardHandler(client)); err != nil {
		return err
	}
	return registerTool(registrar, domain.CompetitionRulesTool(), domain.CompetitionRulesHandler(client))
}

func registerHealthTools(registrar mcpRegistrationTarget, client domain.HealthAPI) error {
	return registerTool(registrar, domain.HealthTool(), domain.HealthHandler(client))
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	return registrar.AddTool(tool, handler)
}
