package models

import "time"

// Holding is one position in a user's portfolio.
type Holding struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Ticker   string    `json:"ticker"`
	Quantity float64   `json:"quantity"`
	BuyPrice float64   `json:"buy_price"`
	PriceAim float64   `json:"price_aim"`
	Created  time.Time `json:"created_at"`
}

// EnrichedHolding is a holding augmented with a live quote.
// GainPercent is zero when the buy price is zero or the quote fetch failed.
type EnrichedHolding struct {
	Holding
	CurrentPrice float64 `json:"current_price"`
	MarketValue  float64 `json:"market_value"`
	GainPercent  float64 `json:"gain_percent"`
	AimPercent   float64 `json:"aim_percent"` // distance to price aim
	QuoteStale   bool    `json:"quote_stale"` // true when the live fetch failed
}

// PortfolioValuation is the aggregate view returned with enriched holdings.
type PortfolioValuation struct {
	Holdings   []EnrichedHolding `json:"holdings"`
	TotalValue float64           `json:"total_value"`
	TotalCost  float64           `json:"total_cost"`
}

// SavedInsight is a per-user bookmark of a scored insight payload.
type SavedInsight struct {
	UserID  string        `json:"user_id"`
	Ticker  string        `json:"ticker"`
	Insight ScoredInsight `json:"insight"`
	Saved   time.Time     `json:"saved_at"`
}
