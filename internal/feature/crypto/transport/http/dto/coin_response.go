package dto

// CoinResponse はコインスナップショットのレスポンスDTOです。
// フィールド順はJSON出力順を兼ねます。
type CoinResponse struct {
	Name                     string   `json:"name"`                        // 名称
	Symbol                   string   `json:"symbol"`                      // シンボル（大文字）
	CurrentPrice             float64  `json:"current_price"`               // 現在価格（USD）
	MarketCap                float64  `json:"market_cap"`                  // 時価総額（USD）
	High24h                  float64  `json:"high_24h"`                    // 24時間高値
	Low24h                   float64  `json:"low_24h"`                     // 24時間安値
	PriceChangePercentage24h float64  `json:"price_change_percentage_24h"` // 24時間変化率（%）
	Volume                   float64  `json:"volume"`                      // 24時間出来高（USD）
	ATH                      float64  `json:"ath"`                         // 史上最高値
	ATHDate                  string   `json:"ath_date"`                    // 史上最高値の日時
	ATL                      float64  `json:"atl"`                         // 史上最安値
	ATLDate                  string   `json:"atl_date"`                    // 史上最安値の日時
	CirculatingSupply        float64  `json:"circulating_supply"`          // 流通供給量
	MaxSupply                *float64 `json:"max_supply"`                  // 最大供給量（上限なしはnull）
	LastUpdated              string   `json:"last_updated"`                // 最終更新日時
}
