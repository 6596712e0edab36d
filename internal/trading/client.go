package trading

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/tradewharf/simbridge/internal/platform/errors"
	"github.com/tradewharf/simbridge/internal/platform/redact"
	"github.com/tradewharf/simbridge/internal/platform/timeouts"
)

const (
	// defaultBaseURL targets a locally running simulator.
	defaultBaseURL = "http://localhost:3000"
	// apiPrefix is prepended to every endpoint path.
	apiPrefix = "/api"
	// userAgent identifies this bridge on every outgoing request.
	userAgent = "simbridge-mcp/0.1.0"
	// parseSnippetLimit bounds how much of an unparseable body is quoted
	// in error messages.
	parseSnippetLimit = 200
)

// ErrMissingCredential is logged once at construction when no API key is
// configured. Requests still go out unauthenticated and fail remotely, so
// the host process reports per-call errors instead of crashing at boot.
var ErrMissingCredential = apperrors.New(apperrors.CodeMissingCredential,
	"trading API credential is not configured; authenticated requests will be rejected")

// Config carries the client's construction parameters, resolved by the
// command layer from environment and flags.
type Config struct {
	APIKey  string
	BaseURL string
	Debug   bool
}

// Client is the authenticated HTTP adapter to the trading-simulation API.
// It holds no mutable per-call state, so one instance is shared across all
// concurrent tool calls without locking.
type Client struct {
	apiKey     string
	baseURL    string
	debug      bool
	httpClient *http.Client
	tracer     trace.Tracer
}

// New builds a client. A missing credential is not a construction error:
// the client logs a warning and every authenticated request fails remotely,
// which lets the host start up and report richer errors per call.
func New(cfg Config) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	if cfg.APIKey == "" {
		log.Printf("%v", ErrMissingCredential)
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		debug:   cfg.Debug,
		httpClient: &http.Client{
			Timeout: timeouts.HTTPRequest,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		tracer: otel.Tracer("simbridge/trading"),
	}
}

// BaseURL returns the normalized base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executes one request against the trading API and normalizes the
// response. The body is read fully as text before any status-dependent
// decoding so unparseable bodies surface as their own error condition.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(ctx, "trading.request", trace.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", apiPrefix+path),
	))
	defer span.End()

	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeValidation, "request body could not be encoded", err)
		}
		payload = encoded
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeNetwork, "unable to reach trading API", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	if c.debug {
		if payload != nil {
			log.Printf("trading API %s %s body=%s", method, path, redact.JSON(payload))
		} else {
			log.Printf("trading API %s %s", method, path)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport detail stays on the diagnostic channel; the surfaced
		// message is generic so host internals never reach the caller.
		span.RecordError(err)
		log.Printf("trading API %s %s transport failure: %v", method, path, err)
		return nil, apperrors.Wrap(apperrors.CodeNetwork, "unable to reach trading API", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		log.Printf("trading API %s %s read failure: %v", method, path, err)
		return nil, apperrors.Wrap(apperrors.CodeNetwork, "unable to reach trading API", err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if c.debug {
		log.Printf("trading API %s %s status=%d body=%s", method, path, resp.StatusCode, redact.JSON(raw))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := extractErrorMessage(raw)
		if message == "" {
			message = fmt.Sprintf("trading API request failed with status %d", resp.StatusCode)
		}
		return nil, apperrors.WithMetadata(apperrors.CodeAPI, message, map[string]string{
			"status": strconv.Itoa(resp.StatusCode),
		})
	}

	if !json.Valid(raw) {
		return nil, apperrors.New(apperrors.CodeResponseParse,
			fmt.Sprintf("unable to parse trading API response: %s", truncate(raw, parseSnippetLimit)))
	}

	return json.RawMessage(raw), nil
}

// extractErrorMessage probes a non-success body for the best human-readable
// message. The fallback order is a compatibility contract with the remote
// API's inconsistent error shapes: error.message, error as a bare string,
// top-level message, then the raw text.
func extractErrorMessage(raw []byte) string {
	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if len(envelope.Error) > 0 {
			var nested struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(envelope.Error, &nested); err == nil && nested.Message != "" {
				return nested.Message
			}
			var plain string
			if err := json.Unmarshal(envelope.Error, &plain); err == nil && plain != "" {
				return plain
			}
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

func truncate(raw []byte, limit int) string {
	text := strings.TrimSpace(string(raw))
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}

// Balances retrieves current token balances for the account.
func (c *Client) Balances(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/account/balances", nil, nil)
}

// Portfolio retrieves portfolio value and composition.
func (c *Client) Portfolio(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/account/portfolio", nil, nil)
}

// Trades retrieves trade history, narrowed by any set filter fields.
func (c *Client) Trades(ctx context.Context, filter TradeFilter) (json.RawMessage, error) {
	query := url.Values{}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}
	if filter.Token != "" {
		query.Set("token", filter.Token)
	}
	if filter.Chain != "" {
		query.Set("chain", string(filter.Chain))
	}
	return c.do(ctx, http.MethodGet, "/account/trades", query, nil)
}

// Profile retrieves the account profile.
func (c *Client) Profile(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/account/profile", nil, nil)
}

// UpdateProfile updates the set fields of the account profile.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, "/account/profile", nil, update)
}

// Price retrieves the current price for a token.
func (c *Client) Price(ctx context.Context, token string, chain Chain, specificChain SpecificChain) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("token", token)
	if chain != "" {
		query.Set("chain", string(chain))
	}
	if specificChain != "" {
		query.Set("specificChain", string(specificChain))
	}
	return c.do(ctx, http.MethodGet, "/price", query, nil)
}

// TokenInfo retrieves metadata for a token.
func (c *Client) TokenInfo(ctx context.Context, token string, chain Chain, specificChain SpecificChain) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("token", token)
	if chain != "" {
		query.Set("chain", string(chain))
	}
	if specificChain != "" {
		query.Set("specificChain", string(specificChain))
	}
	return c.do(ctx, http.MethodGet, "/price/token-info", query, nil)
}

// PriceHistory retrieves historical prices for a token.
func (c *Client) PriceHistory(ctx context.Context, q PriceHistoryQuery) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("token", q.Token)
	if q.StartTime != "" {
		query.Set("startTime", q.StartTime)
	}
	if q.EndTime != "" {
		query.Set("endTime", q.EndTime)
	}
	if q.Interval != "" {
		query.Set("interval", string(q.Interval))
	}
	if q.Chain != "" {
		query.Set("chain", string(q.Chain))
	}
	if q.SpecificChain != "" {
		query.Set("specificChain", string(q.SpecificChain))
	}
	return c.do(ctx, http.MethodGet, "/price/history", query, nil)
}

// ExecuteTrade submits a trade. Chain fields the caller left empty are
// resolved from the token addresses: explicit value, then known-token
// table, then pattern detection.
func (c *Client) ExecuteTrade(ctx context.Context, req TradeRequest) (json.RawMessage, error) {
	req.FromChain, req.FromSpecificChain = ResolveChain(req.FromToken, req.FromChain, req.FromSpecificChain)
	req.ToChain, req.ToSpecificChain = ResolveChain(req.ToToken, req.ToChain, req.ToSpecificChain)
	return c.do(ctx, http.MethodPost, "/trade/execute", nil, req)
}

// Quote retrieves a quote for a prospective trade without executing it.
func (c *Client) Quote(ctx context.Context, fromToken, toToken, amount string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("fromToken", fromToken)
	query.Set("toToken", toToken)
	query.Set("amount", amount)
	return c.do(ctx, http.MethodGet, "/trade/quote", query, nil)
}

// CompetitionStatus retrieves the current competition state.
func (c *Client) CompetitionStatus(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/competition/status", nil, nil)
}

// Leaderboard retrieves competition rankings, for a specific competition
// when competitionID is set.
func (c *Client) Leaderboard(ctx context.Context, competitionID string) (json.RawMessage, error) {
	query := url.Values{}
	if competitionID != "" {
		query.Set("competitionId", competitionID)
	}
	return c.do(ctx, http.MethodGet, "/competition/leaderboard", query, nil)
}

// CompetitionRules retrieves the competition rule set.
func (c *Client) CompetitionRules(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/competition/rules", nil, nil)
}

// Health probes the trading API's basic health endpoint.
func (c *Client) Health(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// DetailedHealth probes the trading API's detailed health endpoint.
func (c *Client) DetailedHealth(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/health/detailed", nil, nil)
}
