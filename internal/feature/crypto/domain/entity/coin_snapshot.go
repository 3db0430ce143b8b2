// Package entity defines the domain models for the crypto feature.
package entity

// CoinSnapshot is the current market state of one coin, priced in USD.
// It is built fresh for every request and never stored.
type CoinSnapshot struct {
	Name                     string   // Display name (e.g., "Bitcoin")
	Symbol                   string   // Ticker symbol, upper-cased (e.g., "BTC")
	CurrentPrice             float64  // Current price
	MarketCap                float64  // Market capitalisation
	High24h                  float64  // Highest price over the last 24 hours
	Low24h                   float64  // Lowest price over the last 24 hours
	PriceChangePercentage24h float64  // Price change over the last 24 hours, in percent
	Volume                   float64  // Total traded volume over the last 24 hours
	ATH                      float64  // All-time high
	ATHDate                  string   // Timestamp of the all-time high
	ATL                      float64  // All-time low
	ATLDate                  string   // Timestamp of the all-time low
	CirculatingSupply        float64  // Coins in circulation
	MaxSupply                *float64 // Supply cap; nil for coins without one
	LastUpdated              string   // Timestamp of the upstream data
}
