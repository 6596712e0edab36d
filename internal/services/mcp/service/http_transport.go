package service

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tradewharf/simbridge/internal/platform/timeouts"
)

var listenTCP = net.Listen

// defaultShutdownTimeout is the maximum time to wait for graceful HTTP server
// shutdown. It exceeds the trading API request timeout so in-flight tool calls
// can complete.
const defaultShutdownTimeout = 35 * time.Second

// HTTPTransport serves MCP over streamable HTTP for remote clients.
// The MCP protocol itself is handled by the SDK's streamable handler; this
// type owns listener lifecycle and graceful shutdown.
type HTTPTransport struct {
	addr       string
	server     *mcp.Server
	httpServer *http.Server
}

// NewHTTPTransport creates a new HTTP transport that will serve MCP over HTTP.
func NewHTTPTransport(addr string) *HTTPTransport {
	// Default to localhost-only binding for security
	if addr == "" {
		addr = "localhost:8081"
	}
	return &HTTPTransport{addr: addr}
}

// NewHTTPTransportWithServer creates a new HTTP transport with a reference to the MCP server.
func NewHTTPTransportWithServer(addr string, server *mcp.Server) *HTTPTransport {
	transport := NewHTTPTransport(addr)
	transport.server = server
	return transport
}

// Start starts the HTTP server and begins handling requests.
// It blocks until the context is cancelled or the server fails.
func (t *HTTPTransport) Start(ctx context.Context) error {
	if t == nil || t.server == nil {
		return fmt.Errorf("HTTP transport is not configured")
	}

	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.server
	}, nil)

	mux := http.NewServeMux()

	// /mcp endpoint carries the MCP session; the SDK handler multiplexes
	// POST messages and GET event streams on the same path.
	mux.Handle("/mcp", streamable)

	// GET /mcp/health - liveness endpoint for process supervisors
	mux.HandleFunc("/mcp/health", t.handleHealth)

	t.httpServer = &http.Server{
		Addr:              t.addr,
		Handler:           mux,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	log.Printf("Starting MCP HTTP server on %s", t.addr)

	errChan := make(chan error, 1)
	go func() {
		listener, err := listenTCP("tcp", t.addr)
		if err != nil {
			errChan <- err
			return
		}
		if err := t.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		if err := t.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

// handleHealth reports transport liveness without touching the trading API.
func (t *HTTPTransport) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("Failed to write health response: %v", err)
	}
}
