package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tradewharf/simbridge/internal/services/mcp/domain"
	"github.com/tradewharf/simbridge/internal/trading"
)

type mcpRegistrationModule struct {
	name     string
	register func(mcpRegistrationTarget) error
}

const (
	mcpAccountToolsModuleName     = "account-tools"
	mcpPriceToolsModuleName       = "price-tools"
	mcpTradeToolsModuleName       = "trade-tools"
	mcpCompetitionToolsModuleName = "competition-tools"
	mcpHealthToolsModuleName      = "health-tools"
)

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, any])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, any]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.BalancesInput](),
	newMCPToolRegistrar[domain.PortfolioInput](),
	newMCPToolRegistrar[domain.TradeHistoryInput](),
	newMCPToolRegistrar[domain.ProfileInput](),
	newMCPToolRegistrar[domain.ProfileUpdateInput](),
	newMCPToolRegistrar[domain.PriceInput](),
	newMCPToolRegistrar[domain.TokenInfoInput](),
	newMCPToolRegistrar[domain.PriceHistoryInput](),
	newMCPToolRegistrar[domain.ExecuteTradeInput](),
	newMCPToolRegistrar[domain.QuoteInput](),
	newMCPToolRegistrar[domain.CompetitionStatusInput](),
	newMCPToolRegistrar[domain.LeaderboardInput](),
	newMCPToolRegistrar[domain.CompetitionRulesInput](),
	newMCPToolRegistrar[domain.HealthInput](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func newMCPRegistrationModules(client *trading.Client) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpAccountToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerAccountTools(registrar, client)
			},
		},
		{
			name: mcpPriceToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerPriceTools(registrar, client)
			},
		},
		{
			name: mcpTradeToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerTradeTools(registrar, client)
			},
		},
		{
			name: mcpCompetitionToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerCompetitionTools(registrar, client)
			},
		},
		{
			name: mcpHealthToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerHealthTools(registrar, client)
			},
		},
	}
}
