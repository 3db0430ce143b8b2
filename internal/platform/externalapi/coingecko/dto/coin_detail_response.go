// Package dto holds the wire shapes of CoinGecko responses.
package dto

// CoinDetailResponse は /coins/{id} のレスポンスのうち、使用するフィールドのみを表します。
// 必須フィールドはポインタで受け取り、欠落とnullをゼロ値と区別します。
type CoinDetailResponse struct {
	Name        *string     `json:"name"`
	Symbol      *string     `json:"symbol" validate:"required"`
	LastUpdated *string     `json:"last_updated" validate:"required"`
	MarketData  *MarketData `json:"market_data" validate:"required"`
}

// MarketData は market_data オブジェクトです。
type MarketData struct {
	CurrentPrice             *USDAmount `json:"current_price" validate:"required"`
	MarketCap                *USDAmount `json:"market_cap" validate:"required"`
	High24h                  *USDAmount `json:"high_24h" validate:"required"`
	Low24h                   *USDAmount `json:"low_24h" validate:"required"`
	PriceChangePercentage24h *float64   `json:"price_change_percentage_24h" validate:"required"`
	TotalVolume              *USDAmount `json:"total_volume" validate:"required"`
	ATH                      *USDAmount `json:"ath" validate:"required"`
	ATHDate                  *USDDate   `json:"ath_date" validate:"required"`
	ATL                      *USDAmount `json:"atl" validate:"required"`
	ATLDate                  *USDDate   `json:"atl_date" validate:"required"`
	CirculatingSupply        *float64   `json:"circulating_supply" validate:"required"`
	MaxSupply                *float64   `json:"max_supply"` // 上限のないコインではnull
}

// USDAmount は通貨ごとの金額マップからUSDのみを取り出します。
type USDAmount struct {
	USD *float64 `json:"usd" validate:"required"`
}

// USDDate は通貨ごとの日時マップからUSDのみを取り出します。
type USDDate struct {
	USD *string `json:"usd" validate:"required"`
}

// ErrorResponse covers the two error bodies CoinGecko returns:
// {"error": "coin not found"} and {"status": {"error_code": 429, "error_message": "..."}}.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	} `json:"status"`
}

// Message returns the human-readable part of the error body, if any.
func (e ErrorResponse) Message() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Status.ErrorMessage
}
