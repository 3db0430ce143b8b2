// Package di provides dependency injection factories for creating application components.
package di

import (
	"crypto_backend/internal/platform/externalapi/coingecko"
	infrahttp "crypto_backend/internal/platform/http"
)

// NewMarket creates a CoinGeckoMarket with its own outbound HTTP client.
func NewMarket(cfg coingecko.Config) *coingecko.CoinGeckoMarket {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return coingecko.NewCoinGeckoMarket(cfg, httpClient)
}
