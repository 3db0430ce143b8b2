package di

import (
	"log/slog"

	"crypto_backend/internal/feature/crypto/transport/handler"
	"crypto_backend/internal/feature/crypto/usecase"
	"crypto_backend/internal/platform/config"
)

// NewCryptoHandler wires market, usecase and handler for the crypto feature.
func NewCryptoHandler(cfg *config.Config) *handler.CryptoHandler {
	if cfg.CoinGecko.APIKey == "" {
		slog.Warn("COINGECKO_API_KEY is not set; calling CoinGecko unauthenticated")
	}
	market := NewMarket(cfg.CoinGecko)
	uc := usecase.NewCryptoUsecase(market)
	return handler.NewCryptoHandler(uc, cfg.StatusMode == config.StatusModeStrict)
}
