package service

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tradewharf/simbridge/internal/trading"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "simbridge"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	client    *trading.Client
}

// New creates a configured MCP server that translates tool calls into trading
// API requests through the provided client.
func New(client *trading.Client) (*Server, error) {
	return newServer(client)
}

// newServer creates MCP tool handler bindings once so both stdio and HTTP
// transports serve the same tool set.
func newServer(client *trading.Client) (*Server, error) {
	if client == nil {
		return nil, fmt.Errorf("trading client is not configured")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler: completionHandler,
		// Resource and prompt capabilities are declared even though nothing
		// registers under them, so clients listing either get empty results
		// instead of a capability error.
		Capabilities: &mcp.ServerCapabilities{
			Tools:     &mcp.ToolCapabilities{ListChanged: true},
			Resources: &mcp.ResourceCapabilities{},
			Prompts:   &mcp.PromptCapabilities{},
		},
	})
	mcpServer.AddReceivingMiddleware(protocolMiddleware)

	server := &Server{mcpServer: mcpServer, client: client}
	for _, module := range newMCPRegistrationModules(client) {
		if err := module.register(mcpServerRegistrationAdapter{server: mcpServer}); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}

	return server, nil
}

// completionHandler handles completion/complete requests with empty results.
func completionHandler(ctx context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: []string{},
		},
	}, nil
}

// protocolMiddleware shapes protocol-level behavior around tool dispatch.
// Tool calls that fail before a handler runs, unknown tool names included,
// surface as isError tool results rather than protocol errors. Resource and
// prompt listings always answer with empty collections.
func protocolMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		switch method {
		case "resources/list":
			return &mcp.ListResourcesResult{Resources: []*mcp.Resource{}}, nil
		case "prompts/list":
			return &mcp.ListPromptsResult{Prompts: []*mcp.Prompt{}}, nil
		case "tools/call":
			result, err := next(ctx, method, req)
			if err != nil {
				return &mcp.CallToolResult{
					IsError: true,
					Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				}, nil
			}
			return result, nil
		default:
			return next(ctx, method, req)
		}
	}
}
