// Package bridge parses bridge command flags and selects stdio or HTTP transport.
package bridge

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/tradewharf/simbridge/internal/platform/config"
	"github.com/tradewharf/simbridge/internal/platform/otel"
	"github.com/tradewharf/simbridge/internal/platform/timeouts"
	"github.com/tradewharf/simbridge/internal/services/mcp/service"
	"github.com/tradewharf/simbridge/internal/trading"
)

// Config holds bridge command configuration. The API credential is read from
// the environment only; there is no flag for it so process listings never
// carry the key.
type Config struct {
	APIKey    string `env:"SIMBRIDGE_API_KEY"`
	APIURL    string `env:"SIMBRIDGE_API_URL"       envDefault:"http://localhost:3000"`
	Debug     bool   `env:"SIMBRIDGE_DEBUG"`
	Transport string `env:"SIMBRIDGE_MCP_TRANSPORT" envDefault:"stdio"`
	HTTPAddr  string `env:"SIMBRIDGE_MCP_HTTP_ADDR" envDefault:"localhost:8081"`

	// OTelEnabled is a string toggle: any value except "false" (case
	// insensitive) leaves tracing on, matching the usual collector opt-out
	// convention without failing startup on odd values.
	OTelEnabled  string `env:"SIMBRIDGE_OTEL_ENABLED"`
	OTelEndpoint string `env:"SIMBRIDGE_OTEL_ENDPOINT"`
}

// otelEndpoint resolves the trace exporter target. Tracing is opt-in: an
// empty endpoint or an explicit "false" toggle disables it.
func (c Config) otelEndpoint() string {
	if strings.EqualFold(c.OTelEnabled, "false") {
		return ""
	}
	return c.OTelEndpoint
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := config.Parse[Config]()
	if err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "trading API base URL")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log trading API requests and responses")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the trading bridge.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "simbridge", cfg.otelEndpoint())
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	client := trading.New(trading.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.APIURL,
		Debug:   cfg.Debug,
	})

	return service.Run(ctx, client, service.Config{
		Transport: service.TransportKind(cfg.Transport),
		HTTPAddr:  cfg.HTTPAddr,
	})
}
