package domain

import "time"

// apiCallTimeout caps the time for a single trading API call from an MCP tool handler.
const apiCallTimeout = 15 * time.Second

// apiLongCallTimeout caps the time for trading API calls that involve heavier
// operations such as trade execution or full price history windows.
const apiLongCallTimeout = 30 * time.Second
