package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tradewharf/simbridge/internal/platform/timeouts"
	"github.com/tradewharf/simbridge/internal/trading"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	HTTPAddr  string // HTTP server address (e.g., "localhost:8081"). Defaults to localhost:8081 for HTTP transport.
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
// It is intentionally transport-agnostic so startup can choose stdio for local
// tools and HTTP for remote integrations.
func Run(ctx context.Context, client *trading.Client, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return runWithTransport(ctx, client, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, client, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// runWithTransport creates a server and serves it over the provided transport.
func runWithTransport(ctx context.Context, client *trading.Client, transport mcp.Transport) error {
	server, err := newServer(client)
	if err != nil {
		return err
	}
	return server.serveWithTransport(ctx, transport)
}

// runWithHTTPTransport creates a server and serves it over HTTP transport.
// HTTP session concerns stay isolated from the same tool handlers used by stdio.
func runWithHTTPTransport(ctx context.Context, client *trading.Client, cfg Config) error {
	// Default to localhost-only binding for security
	httpAddr := cfg.HTTPAddr
	if httpAddr == "" {
		httpAddr = "localhost:8081"
	}

	server, err := newServer(client)
	if err != nil {
		return err
	}

	// Probe the trading API in the background so connectivity failures show up
	// during HTTP server operation, not just on the next tool call.
	healthCtx, healthCancel := context.WithCancel(ctx)
	defer healthCancel()
	go server.monitorHealth(healthCtx)

	httpTransport := NewHTTPTransportWithServer(httpAddr, server.mcpServer)

	return httpTransport.Start(ctx)
}

// monitorHealth periodically checks trading API reachability.
// Failures are logged but don't terminate the HTTP server, allowing for
// graceful degradation while still surfacing connectivity issues quickly.
func (s *Server) monitorHealth(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.client == nil {
				log.Printf("trading client is nil, health check skipped")
				continue
			}

			callCtx, cancel := context.WithTimeout(ctx, timeouts.HealthProbe)
			_, err := s.client.Health(callCtx)
			cancel()

			if err != nil {
				log.Printf("trading API health check failed: %v", err)
			}
		}
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the normal shutdown path and is not reported as an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
