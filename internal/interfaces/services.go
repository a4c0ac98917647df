// Package interfaces defines service contracts for Fizen
package interfaces

import (
	"context"

	"github.com/fizenhive/fizen/internal/models"
)

// InsightService runs the single-ticker intrinsic-value pipeline:
// fetch → normalize → value → score → narrate.
type InsightService interface {
	// AnalyzeTicker produces a full scored insight for one ticker.
	// Provider data unavailability is terminal; narrative failure degrades
	// to fixed fallback text.
	AnalyzeTicker(ctx context.Context, req models.InsightRequest) (*models.ScoredInsight, error)
}

// ScreenerService ranks a curated regional universe of tickers.
type ScreenerService interface {
	// Screen evaluates the region universe concurrently and returns the
	// sorted, sector-filtered rows. Individual ticker failures are dropped.
	Screen(ctx context.Context, region, filter, sector string) ([]models.ScreenerRow, error)

	// Regions lists the available region names
	Regions() []string
}

// QuoteService is the thin pass-through over the market-data provider.
type QuoteService interface {
	GetQuote(ctx context.Context, symbol string) (*models.QuoteSnapshot, error)
	GetQuoteWithSummary(ctx context.Context, symbol string) (*models.QuoteSnapshot, *models.FinancialsBundle, error)
	GetChart(ctx context.Context, symbol, rng string) ([]models.HistoryBar, error)
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// ChartRange enumerates the supported chart ranges.
var ChartRanges = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "ALL"}

// ChatService handles the market chat conversation.
type ChatService interface {
	// Reply generates the assistant's next message, enriching the prompt
	// with live quotes for tickers detected in the latest user message.
	Reply(ctx context.Context, req models.ChatRequest) (*models.ChatMessage, error)
}

// PortfolioService manages per-user holdings.
type PortfolioService interface {
	ListHoldings(ctx context.Context, userID string) (*models.PortfolioValuation, error)
	AddHolding(ctx context.Context, userID, ticker string, quantity, buyPrice, priceAim float64) (*models.Holding, error)
	UpdateHolding(ctx context.Context, userID, id string, quantity, buyPrice, priceAim float64) (*models.Holding, error)
	DeleteHolding(ctx context.Context, userID, id string) error
}

// InsightVault stores per-user saved insight bookmarks.
type InsightVault interface {
	Save(ctx context.Context, userID string, insight *models.ScoredInsight) error
	List(ctx context.Context, userID string) ([]models.SavedInsight, error)
	Delete(ctx context.Context, userID, ticker string) error
}
