package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/feature/crypto/transport/handler"
	"crypto_backend/internal/feature/crypto/usecase"
)

// mockCryptoUsecase はCryptoUsecaseインターフェースのモック実装です。
type mockCryptoUsecase struct {
	FetchCoinFunc func(ctx context.Context, id string) (entity.CoinSnapshot, error)
}

func (m *mockCryptoUsecase) FetchCoin(ctx context.Context, id string) (entity.CoinSnapshot, error) {
	return m.FetchCoinFunc(ctx, id)
}

func bitcoinSnapshot() entity.CoinSnapshot {
	maxSupply := 21000000.0
	return entity.CoinSnapshot{
		Name:                     "Bitcoin",
		Symbol:                   "BTC",
		CurrentPrice:             50000,
		MarketCap:                1000000000,
		High24h:                  51000,
		Low24h:                   49000,
		PriceChangePercentage24h: 1.5,
		Volume:                   20000000000,
		ATH:                      69000,
		ATHDate:                  "2021-11-10T00:00:00Z",
		ATL:                      67.81,
		ATLDate:                  "2013-07-06T00:00:00Z",
		CirculatingSupply:        19000000,
		MaxSupply:                &maxSupply,
		LastUpdated:              "2024-01-01T00:00:00Z",
	}
}

const bitcoinJSON = `{"name":"Bitcoin","symbol":"BTC","current_price":50000,"market_cap":1000000000,"high_24h":51000,"low_24h":49000,"price_change_percentage_24h":1.5,"volume":20000000000,"ath":69000,"ath_date":"2021-11-10T00:00:00Z","atl":67.81,"atl_date":"2013-07-06T00:00:00Z","circulating_supply":19000000,"max_supply":21000000,"last_updated":"2024-01-01T00:00:00Z"}`

// TestCryptoHandler_GetCoin はGetCoinのHTTPリクエスト/レスポンス処理をテストします。
func TestCryptoHandler_GetCoin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	notFoundErr := fmt.Errorf("%w: %w: coingecko http 404: coin not found", usecase.ErrUpstreamStatus, usecase.ErrCoinNotFound)
	statusErr := fmt.Errorf("%w: coingecko http 429", usecase.ErrUpstreamStatus)
	schemaErr := fmt.Errorf("%w: missing field market_data", usecase.ErrSchema)
	transportErr := fmt.Errorf("%w: dial tcp: connection refused", usecase.ErrTransport)

	tests := []struct {
		name           string
		url            string
		strict         bool
		mockFetchCoin  func(ctx context.Context, id string) (entity.CoinSnapshot, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: snapshot serialized",
			url:  "/crypto/bitcoin",
			mockFetchCoin: func(ctx context.Context, id string) (entity.CoinSnapshot, error) {
				assert.Equal(t, "bitcoin", id)
				return bitcoinSnapshot(), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   bitcoinJSON,
		},
		{
			name: "success: null max supply",
			url:  "/crypto/ethereum",
			mockFetchCoin: func(ctx context.Context, id string) (entity.CoinSnapshot, error) {
				s := bitcoinSnapshot()
				s.MaxSupply = nil
				return s, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"name":"Bitcoin","symbol":"BTC","current_price":50000,"market_cap":1000000000,"high_24h":51000,"low_24h":49000,"price_change_percentage_24h":1.5,"volume":20000000000,"ath":69000,"ath_date":"2021-11-10T00:00:00Z","atl":67.81,"atl_date":"2013-07-06T00:00:00Z","circulating_supply":19000000,"max_supply":null,"last_updated":"2024-01-01T00:00:00Z"}`,
		},
		{
			name: "edge case: path segment decoded and passed verbatim",
			url:  "/crypto/Some%20Coin",
			mockFetchCoin: func(ctx context.Context, id string) (entity.CoinSnapshot, error) {
				assert.Equal(t, "Some Coin", id)
				return bitcoinSnapshot(), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   bitcoinJSON,
		},
		{
			name: "compat: not found still 200",
			url:  "/crypto/nope",
			mockFetchCoin: func(ctx context.Context, id string) (entity.CoinSnapshot, error) {
				return entity.CoinSnapshot{}, notFoundErr
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"error":"Error fetching data: upstream status: coin not found: coingecko http 404: coin not found"}`,
		},
		{
			name: "compat: schema error still 200",
			url:  "/crypto/bitcoin",
			mockFetchCoin: func(ctx context.Context, id string) (entity.CoinSnapshot, error) {
				return entity.CoinSnapshot{}, schemaErr
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"error":"Error fetching data: schema mismatch: missing field market_data"}`,
		},
		{
			name: "compat: untyped error still 200",
			url:  "/crypto/bitcoin",
			mockFetchCoin: func(ctx context.Context, id string) (entity.CoinSnapshot, error) {
				return entity.CoinSnapshot{}, errors.New("boom")
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"error":"Error fetching data: boom"}`,
		},
		{
			name:   "strict: not found is 404",
			url:    "/crypto/nope",
			strict: true,
			mockFetchCoin: func(ctx context.Context, id string) (entity.CoinSnapshot, error) {
				return entity.CoinSnapshot{}, notFoundErr
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Error fetching data: upstream status: coin not found: coingecko http 404: coin not found"}`,
		},
		{
			name:   "strict: other upstream status is 502",
			url:    "/crypto/bitcoin",
			strict: true,
			mockFetchCoin: func(ctx context.Context, id string) (entity.CoinSnapshot, error) {
				return entity.CoinSnapshot{}, statusErr
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"Error fetching data: upstream status: coingecko http 429"}`,
		},
		{
			name:   "strict: schema is 422",
			url:    "/crypto/bitcoin",
			strict: true,
			mockFetchCoin: func(ctx context.Context, id string) (entity.CoinSnapshot, error) {
				return entity.CoinSnapshot{}, schemaErr
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"Error fetching data: schema mismatch: missing field market_data"}`,
		},
		{
			name:   "strict: transport is 502",
			url:    "/crypto/bitcoin",
			strict: true,
			mockFetchCoin: func(ctx context.Context, id string) (entity.CoinSnapshot, error) {
				return entity.CoinSnapshot{}, transportErr
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"Error fetching data: transport failure: dial tcp: connection refused"}`,
		},
		{
			name:   "strict: success stays 200",
			url:    "/crypto/bitcoin",
			strict: true,
			mockFetchCoin: func(ctx context.Context, id string) (entity.CoinSnapshot, error) {
				return bitcoinSnapshot(), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   bitcoinJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockCryptoUsecase{FetchCoinFunc: tt.mockFetchCoin}
			h := handler.NewCryptoHandler(mockUC, tt.strict)

			router := gin.New()
			router.GET("/crypto/:coin", h.GetCoin)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestHome は GET / が常に固定テキストを返すことを検証します。
func TestHome(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/", handler.Home)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, handler.WelcomeMessage, w.Body.String())
}
