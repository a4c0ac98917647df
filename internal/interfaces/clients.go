// Package interfaces defines service contracts for Fizen
package interfaces

import (
	"context"
	"time"

	"github.com/fizenhive/fizen/internal/models"
)

// QuoteProvider provides access to the market-data API.
type QuoteProvider interface {
	// GetQuote retrieves a point-in-time quote snapshot
	GetQuote(ctx context.Context, symbol string) (*models.QuoteSnapshot, error)

	// GetFinancials retrieves the requested quote-summary statement modules.
	// Missing modules degrade to nil fields rather than an error.
	GetFinancials(ctx context.Context, symbol string, modules []string) (*models.FinancialsBundle, error)

	// GetHistory retrieves ordered price history bars
	GetHistory(ctx context.Context, symbol string, start, end time.Time, interval string) ([]models.HistoryBar, error)

	// Search retrieves top symbol matches for a free-text query
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// NarrativeProvider provides access to the generative text API.
// Callers own all parsing and fallback logic; the provider makes no
// structural guarantee beyond best-effort instruction following.
type NarrativeProvider interface {
	// GenerateContent generates text from a prompt
	GenerateContent(ctx context.Context, prompt string) (string, error)

	// GenerateChat generates the next reply for a conversation under a
	// system instruction
	GenerateChat(ctx context.Context, systemInstruction string, messages []models.ChatMessage) (string, error)
}
