// Package trading is the authenticated HTTP client for the remote
// trading-simulation API.
//
// The package owns credential handling, request construction, and response
// normalization:
// - every request carries bearer authorization, JSON content type, and a
//   fixed user agent,
// - responses are read as text first and decoded only after status checks,
// - failures normalize into platform error codes (NETWORK, API,
//   RESPONSE_PARSE) with messages that never contain credential material.
//
// Chain classification for token addresses lives here too, so the trade
// endpoints can fill in chain fields the caller omitted.
package trading
