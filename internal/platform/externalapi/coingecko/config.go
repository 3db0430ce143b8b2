// Package coingecko provides a client for the CoinGecko public market data API.
package coingecko

import "time"

const (
	// DefaultBaseURL is the public CoinGecko v3 API root.
	DefaultBaseURL = "https://api.coingecko.com/api/v3"
	// DefaultTimeout bounds a single outbound request.
	DefaultTimeout = 10 * time.Second
)

// Config holds configuration for the CoinGecko API client.
type Config struct {
	APIKey  string        // Demo API key; requests are sent unauthenticated when empty
	BaseURL string        // Base URL for the API (e.g., "https://api.coingecko.com/api/v3")
	Timeout time.Duration // HTTP request timeout
}

// DefaultConfig returns a Config pointing at the public API without a key.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}
