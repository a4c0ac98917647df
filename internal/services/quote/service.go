// Package quote is the thin pass-through over the market-data provider for
// quotes, summaries, charts, and symbol search.
package quote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/interfaces"
	"github.com/fizenhive/fizen/internal/models"
)

// summaryModules are the statement modules attached to a detailed quote.
var summaryModules = []string{
	models.ModuleFinancialData,
	models.ModuleSummaryDetail,
	models.ModuleDefaultKeyStatistics,
}

// Service wraps the provider with request validation and chart range
// resolution.
type Service struct {
	quotes interfaces.QuoteProvider
	logger *common.Logger
}

// NewService creates the quote service.
func NewService(quotes interfaces.QuoteProvider, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{quotes: quotes, logger: logger}
}

// GetQuote retrieves a quote snapshot for one symbol.
func (s *Service) GetQuote(ctx context.Context, symbol string) (*models.QuoteSnapshot, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", common.ErrInvalidRequest)
	}
	quote, err := s.quotes.GetQuote(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: quote for %s: %v", common.ErrDataUnavailable, symbol, err)
	}
	return quote, nil
}

// GetQuoteWithSummary retrieves a quote plus its statement modules. A
// summary failure degrades to a nil bundle rather than failing the quote.
func (s *Service) GetQuoteWithSummary(ctx context.Context, symbol string) (*models.QuoteSnapshot, *models.FinancialsBundle, error) {
	quote, err := s.GetQuote(ctx, symbol)
	if err != nil {
		return nil, nil, err
	}

	summary, err := s.quotes.GetFinancials(ctx, symbol, summaryModules)
	if err != nil {
		s.logger.Warn().Str("symbol", symbol).Err(err).Msg("Could not fetch quote summary")
		summary = nil
	}

	return quote, summary, nil
}

// chartSpan resolves a named range to its lookback window and bar interval.
// Unknown ranges (including "ALL") cover five years of monthly bars.
func chartSpan(rng string, now time.Time) (time.Time, string) {
	switch rng {
	case "1d":
		return now.AddDate(0, 0, -1), "5m"
	case "5d":
		return now.AddDate(0, 0, -5), "15m"
	case "1mo":
		return now.AddDate(0, -1, 0), "1d"
	case "3mo":
		return now.AddDate(0, -3, 0), "1d"
	case "6mo":
		return now.AddDate(0, -6, 0), "1wk"
	case "1y":
		return now.AddDate(-1, 0, 0), "1wk"
	default:
		return now.AddDate(-5, 0, 0), "1mo"
	}
}

// GetChart retrieves history bars for the named range.
func (s *Service) GetChart(ctx context.Context, symbol, rng string) ([]models.HistoryBar, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", common.ErrInvalidRequest)
	}
	if rng == "" {
		rng = "1mo"
	}

	now := time.Now()
	start, interval := chartSpan(rng, now)

	bars, err := s.quotes.GetHistory(ctx, symbol, start, now, interval)
	if err != nil {
		return nil, fmt.Errorf("%w: history for %s: %v", common.ErrDataUnavailable, symbol, err)
	}
	return bars, nil
}

// Search retrieves the top equity/ETF matches for a query.
func (s *Service) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", common.ErrInvalidRequest)
	}
	results, err := s.quotes.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: search %q: %v", common.ErrDataUnavailable, query, err)
	}
	return results, nil
}

// Ensure Service implements QuoteService
var _ interfaces.QuoteService = (*Service)(nil)
