package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tradewharf/simbridge/internal/trading"
)

// requestLog records trading API requests observed by the fake backend.
type requestLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *requestLog) add(entry string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func (l *requestLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func startTradingBackend(t *testing.T, status int, body string) (*trading.Client, *requestLog, func()) {
	t.Helper()

	requests := &requestLog{}
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.add(r.Method + " " + r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))

	client := trading.New(trading.Config{APIKey: "test-key", BaseURL: backend.URL})

	return client, requests, backend.Close
}

// startSession serves an MCP server over in-memory transports and returns a
// connected client session.
func startSession(t *testing.T, client *trading.Client) (*mcp.ClientSession, func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- runWithTransport(ctx, client, serverTransport)
	}()

	mcpClient := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)

	type connectResult struct {
		session *mcp.ClientSession
		err     error
	}
	connectDone := make(chan connectResult, 1)
	go func() {
		session, err := mcpClient.Connect(context.Background(), clientTransport, nil)
		connectDone <- connectResult{session: session, err: err}
	}()

	var session *mcp.ClientSession
	select {
	case result := <-connectDone:
		if result.err != nil {
			cancel()
			t.Fatalf("connect client: %v", result.err)
		}
		session = result.session
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatal("connect client timed out")
	}

	stop := func() {
		_ = session.Close()
		cancel()
		select {
		case <-serveErr:
		case <-time.After(2 * time.Second):
		}
	}

	return session, stop
}

func sessionResultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected content in result")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

// failingTransport returns a connection error for tests.
type failingTransport struct{}

// Connect returns the configured error for tests.
func (f failingTransport) Connect(context.Context) (mcp.Connection, error) {
	return nil, errors.New("transport failure")
}

// TestRunWithTransportServesAndStops ensures runWithTransport serves and exits on cancel.
func TestRunWithTransportServesAndStops(t *testing.T) {
	client, _, stop := startTradingBackend(t, http.StatusOK, `{}`)
	defer stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- runWithTransport(ctx, client, serverTransport)
	}()

	mcpClient := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	clientCtx, clientCancel := context.WithTimeout(context.Background(), time.Second)
	defer clientCancel()

	type connectResult struct {
		session *mcp.ClientSession
		err     error
	}
	connectDone := make(chan connectResult, 1)
	go func() {
		session, err := mcpClient.Connect(clientCtx, clientTransport, nil)
		connectDone <- connectResult{session: session, err: err}
	}()

	var session *mcp.ClientSession
	select {
	case result := <-connectDone:
		if result.err != nil {
			t.Fatalf("connect client: %v", result.err)
		}
		session = result.session
	case <-time.After(2 * time.Second):
		t.Fatal("connect client timed out")
	}

	defer session.Close()

	cancel()

	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

// TestRunUnsupportedTransport ensures Run rejects unknown transport kinds.
func TestRunUnsupportedTransport(t *testing.T) {
	client, _, stop := startTradingBackend(t, http.StatusOK, `{}`)
	defer stop()

	err := Run(context.Background(), client, Config{Transport: "websocket"})
	if err == nil {
		t.Fatal("expected error for unsupported transport")
	}
	if !strings.Contains(err.Error(), "not supported") {
		t.Errorf("expected 'not supported' in error, got: %v", err)
	}
}

// TestRunNilClient ensures Run rejects a missing trading client.
func TestRunNilClient(t *testing.T) {
	err := Run(context.Background(), nil, Config{})
	if err == nil {
		t.Fatal("expected error for nil client")
	}
	if !strings.Contains(err.Error(), "not configured") {
		t.Errorf("expected 'not configured' in error, got: %v", err)
	}
}

// TestSessionListsTools ensures every bridge tool is visible to a connected client.
func TestSessionListsTools(t *testing.T) {
	client, _, stopBackend := startTradingBackend(t, http.StatusOK, `{}`)
	defer stopBackend()

	session, stop := startSession(t, client)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}

	want := []string{
		"get_balances",
		"get_portfolio",
		"get_trades",
		"get_profile",
		"update_profile",
		"get_price",
		"get_token_info",
		"get_price_history",
		"execute_trade",
		"get_quote",
		"get_competition_status",
		"get_leaderboard",
		"get_competition_rules",
		"get_health",
	}
	got := make(map[string]bool, len(result.Tools))
	for _, tool := range result.Tools {
		got[tool.Name] = true
	}
	if len(result.Tools) != len(want) {
		t.Errorf("expected %d tools, got %d", len(want), len(result.Tools))
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("tool %q not listed", name)
		}
	}
}

// TestSessionListsNoResourcesOrPrompts ensures resource and prompt listings answer empty.
func TestSessionListsNoResourcesOrPrompts(t *testing.T) {
	client, _, stopBackend := startTradingBackend(t, http.StatusOK, `{}`)
	defer stopBackend()

	session, stop := startSession(t, client)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resources, err := session.ListResources(ctx, nil)
	if err != nil {
		t.Fatalf("list resources: %v", err)
	}
	if len(resources.Resources) != 0 {
		t.Errorf("expected no resources, got %d", len(resources.Resources))
	}

	prompts, err := session.ListPrompts(ctx, nil)
	if err != nil {
		t.Fatalf("list prompts: %v", err)
	}
	if len(prompts.Prompts) != 0 {
		t.Errorf("expected no prompts, got %d", len(prompts.Prompts))
	}
}

// TestSessionToolCallReturnsPayload ensures a tool call surfaces the trading API
// payload verbatim.
func TestSessionToolCallReturnsPayload(t *testing.T) {
	payload := `{"balances":[{"token":"USDC","amount":125.5,"chain":"evm"}]}`
	client, requests, stopBackend := startTradingBackend(t, http.StatusOK, payload)
	defer stopBackend()

	session, stop := startSession(t, client)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_balances",
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", sessionResultText(t, result))
	}
	if got := sessionResultText(t, result); got != payload {
		t.Errorf("expected payload %s, got %s", payload, got)
	}
	if requests.count() != 1 {
		t.Errorf("expected 1 backend request, got %d", requests.count())
	}
	id, ok := result.Meta["x-simbridge-request-id"].(string)
	if !ok || id == "" {
		t.Error("expected request id in result metadata")
	}
}

// TestSessionUnknownToolReturnsError ensures calling an unregistered tool yields
// an error result, not a protocol failure.
func TestSessionUnknownToolReturnsError(t *testing.T) {
	client, requests, stopBackend := startTradingBackend(t, http.StatusOK, `{}`)
	defer stopBackend()

	session, stop := startSession(t, client)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "simulate_airdrop",
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("expected error result, got protocol error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for unknown tool")
	}
	if sessionResultText(t, result) == "" {
		t.Error("expected a descriptive error message")
	}
	if requests.count() != 0 {
		t.Errorf("expected no backend requests, got %d", requests.count())
	}
}

// TestSessionMissingArgumentSkipsBackend ensures validation failures reach the
// client as error results without touching the trading API.
func TestSessionMissingArgumentSkipsBackend(t *testing.T) {
	client, requests, stopBackend := startTradingBackend(t, http.StatusOK, `{}`)
	defer stopBackend()

	session, stop := startSession(t, client)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_price",
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("expected error result, got protocol error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for missing token argument")
	}
	if !strings.Contains(sessionResultText(t, result), "token") {
		t.Errorf("expected message naming the missing argument, got %s", sessionResultText(t, result))
	}
	if requests.count() != 0 {
		t.Errorf("expected no backend requests, got %d", requests.count())
	}
}

// TestSessionAPIErrorMessagePassesThrough ensures trading API error messages
// reach the client unchanged.
func TestSessionAPIErrorMessagePassesThrough(t *testing.T) {
	client, _, stopBackend := startTradingBackend(t, http.StatusInternalServerError, `{"error":{"message":"boom"}}`)
	defer stopBackend()

	session, stop := startSession(t, client)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_balances",
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("expected error result, got protocol error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for API failure")
	}
	if got := sessionResultText(t, result); got != "boom" {
		t.Errorf("expected message %q, got %q", "boom", got)
	}
}

// TestMonitorHealthExitsOnCancel ensures monitorHealth returns when context is cancelled.
func TestMonitorHealthExitsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	server := &Server{}

	done := make(chan struct{})
	go func() {
		server.monitorHealth(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// monitorHealth returned promptly
	case <-time.After(2 * time.Second):
		t.Fatal("monitorHealth did not exit after context cancellation")
	}
}

// TestMonitorHealthNilClient ensures monitorHealth handles a nil client gracefully.
func TestMonitorHealthNilClient(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	server := &Server{client: nil}

	done := make(chan struct{})
	go func() {
		server.monitorHealth(ctx)
		close(done)
	}()

	select {
	case <-done:
		// returned after context timeout
	case <-time.After(2 * time.Second):
		t.Fatal("monitorHealth did not exit after context timeout")
	}
}

// TestMonitorHealthWithClient ensures monitorHealth exits cleanly with a live client.
func TestMonitorHealthWithClient(t *testing.T) {
	client, _, stopBackend := startTradingBackend(t, http.StatusOK, `{"status":"ok"}`)
	defer stopBackend()

	// Use a short-lived context so the test doesn't wait 30s for a tick.
	// We just need monitorHealth to exit cleanly.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	server := &Server{client: client}

	done := make(chan struct{})
	go func() {
		server.monitorHealth(ctx)
		close(done)
	}()

	select {
	case <-done:
		// exited after context timeout
	case <-time.After(2 * time.Second):
		t.Fatal("monitorHealth did not exit")
	}
}

// TestServeWithTransportErrors ensures serveWithTransport reports configuration
// and transport failures.
func TestServeWithTransportErrors(t *testing.T) {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "1.0"}, nil)

	var nilServer *Server
	err := nilServer.serveWithTransport(context.Background(), &mcp.StdioTransport{})
	if err == nil {
		t.Fatal("expected error for nil server")
	}

	// Empty server (no mcpServer)
	emptyServer := &Server{}
	err = emptyServer.serveWithTransport(context.Background(), &mcp.StdioTransport{})
	if err == nil {
		t.Fatal("expected error for missing mcp server")
	}

	// Nil context defaults to background; failing transport still errors
	server := &Server{mcpServer: mcpServer}
	err = server.serveWithTransport(nil, failingTransport{})
	if err == nil {
		t.Fatal("expected error from failing transport")
	}
}
