package trading

// Interval is a price-history granularity accepted by the remote API.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval1h  Interval = "1h"
	Interval4h  Interval = "4h"
	Interval1d  Interval = "1d"
)

// TradeFilter narrows trade history queries. Zero values mean "not set" and
// are omitted from the outbound query string entirely.
type TradeFilter struct {
	Limit  int
	Offset int
	Token  string
	Chain  Chain
}

// PriceHistoryQuery selects a price history slice. Token is required; the
// remaining fields are omitted from the query string when empty. StartTime
// and EndTime pass through verbatim; the remote API owns their format.
type PriceHistoryQuery struct {
	Token         string
	StartTime     string
	EndTime       string
	Interval      Interval
	Chain         Chain
	SpecificChain SpecificChain
}

// TradeRequest is the POST body for trade execution. Amount stays a string
// end to end so the remote API receives exactly what the caller sent. Chain
// fields left empty are resolved from the token addresses before sending.
type TradeRequest struct {
	FromToken         string        `json:"fromToken"`
	ToToken           string        `json:"toToken"`
	Amount            string        `json:"amount"`
	FromChain         Chain         `json:"fromChain,omitempty"`
	FromSpecificChain SpecificChain `json:"fromSpecificChain,omitempty"`
	ToChain           Chain         `json:"toChain,omitempty"`
	ToSpecificChain   SpecificChain `json:"toSpecificChain,omitempty"`
	SlippageTolerance string        `json:"slippageTolerance,omitempty"`
}

// ProfileUpdate is the PUT body for profile updates. Only set fields are
// sent; the remote API leaves the rest unchanged.
type ProfileUpdate struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}
