// Package timeouts defines shared timeout constants used across the bridge.
// Centralizing these values prevents drift between layers and makes the
// durations discoverable.
package timeouts

import "time"

// HTTPRequest caps the total time for a single HTTP request to the trading
// API, covering connection, request, and body read.
const HTTPRequest = 30 * time.Second

// HealthProbe caps the time allowed for a background health check against
// the trading API.
const HealthProbe = 5 * time.Second

// ReadHeader limits how long the HTTP transport waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long process teardown waits for telemetry flush and
// other cleanup.
const Shutdown = 5 * time.Second
