package service

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestNewHTTPTransportDefaults(t *testing.T) {
	transport := NewHTTPTransport("")
	if transport.addr != "localhost:8081" {
		t.Errorf("expected default addr localhost:8081, got %s", transport.addr)
	}

	custom := NewHTTPTransport("127.0.0.1:9000")
	if custom.addr != "127.0.0.1:9000" {
		t.Errorf("expected addr 127.0.0.1:9000, got %s", custom.addr)
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "1.0"}, nil)
	withServer := NewHTTPTransportWithServer("", mcpServer)
	if withServer.server != mcpServer {
		t.Error("expected server reference to be set")
	}
}

func TestHandleHealthGET(t *testing.T) {
	transport := NewHTTPTransport("localhost:8081")
	req := httptest.NewRequest(http.MethodGet, "/mcp/health", nil)
	w := httptest.NewRecorder()
	transport.handleHealth(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("expected body OK, got %q", w.Body.String())
	}
}

func TestHandleHealthMethodNotAllowed(t *testing.T) {
	transport := NewHTTPTransport("localhost:8081")
	req := httptest.NewRequest(http.MethodPost, "/mcp/health", nil)
	w := httptest.NewRecorder()
	transport.handleHealth(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestStartNotConfigured(t *testing.T) {
	transport := NewHTTPTransport("")
	if err := transport.Start(context.Background()); err == nil {
		t.Fatal("expected error for transport without server")
	}
}

// TestStartServesAndShutsDown ensures Start serves requests and exits cleanly on cancel.
func TestStartServesAndShutsDown(t *testing.T) {
	server, err := New(newTestTradingClient())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := listener.Addr().String()
	_ = listener.Close()

	transport := NewHTTPTransportWithServer(addr, server.mcpServer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startErr := make(chan error, 1)
	go func() {
		startErr <- transport.Start(ctx)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get("http://" + addr + "/mcp/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected 200 from health endpoint, got %d", resp.StatusCode)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("health endpoint never came up: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()

	select {
	case err := <-startErr:
		if err != nil {
			t.Fatalf("start returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("start did not stop after cancel")
	}
}

// TestStartListenError ensures Start surfaces listener failures.
func TestStartListenError(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "1.0"}, nil)
	transport := NewHTTPTransportWithServer(listener.Addr().String(), mcpServer)

	err = transport.Start(context.Background())
	if err == nil {
		t.Fatal("expected error for busy address")
	}
	if !strings.Contains(err.Error(), "HTTP server error") {
		t.Errorf("unexpected error: %v", err)
	}
}
