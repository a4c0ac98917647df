// Package portfolio manages per-user holdings and their live valuation.
package portfolio

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/interfaces"
	"github.com/fizenhive/fizen/internal/models"
)

const (
	// defaultQuantity is applied when a holding is added without one
	defaultQuantity = 10

	// defaultAimMultiple sets the price aim at 20% above the entry price
	defaultAimMultiple = 1.2

	// maxConcurrentQuotes bounds the valuation fan-out
	maxConcurrentQuotes = 8
)

// Service implements PortfolioService over the user store and the
// market-data provider.
type Service struct {
	storage interfaces.StorageManager
	quotes  interfaces.QuoteProvider
	logger  *common.Logger
}

// NewService creates the portfolio service.
func NewService(storage interfaces.StorageManager, quotes interfaces.QuoteProvider, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{storage: storage, quotes: quotes, logger: logger}
}

// ListHoldings returns the user's holdings enriched with live quotes and
// the aggregate portfolio valuation. A failed quote marks the holding
// stale and values it at its entry price instead of dropping it.
func (s *Service) ListHoldings(ctx context.Context, userID string) (*models.PortfolioValuation, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", common.ErrInvalidRequest)
	}

	holdings, err := s.storage.UserDataStore().ListHoldings(ctx, userID)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedHolding, len(holdings))
	semaphore := make(chan struct{}, maxConcurrentQuotes)
	done := make(chan int, len(holdings))

	for i, h := range holdings {
		go func(idx int, holding models.Holding) {
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			enriched[idx] = s.enrich(ctx, holding)
			done <- idx
		}(i, h)
	}
	for range holdings {
		<-done
	}

	valuation := &models.PortfolioValuation{Holdings: enriched}
	for _, e := range enriched {
		valuation.TotalValue += e.MarketValue
		valuation.TotalCost += e.Quantity * e.BuyPrice
	}
	return valuation, nil
}

// enrich attaches the live quote to one holding.
func (s *Service) enrich(ctx context.Context, holding models.Holding) models.EnrichedHolding {
	e := models.EnrichedHolding{Holding: holding}

	quote, err := s.quotes.GetQuote(ctx, holding.Ticker)
	if err != nil || quote == nil || quote.RegularMarketPrice == 0 {
		s.logger.Warn().Str("ticker", holding.Ticker).Err(err).Msg("Quote unavailable, valuing at entry price")
		e.QuoteStale = true
		e.CurrentPrice = holding.BuyPrice
	} else {
		e.CurrentPrice = quote.RegularMarketPrice
	}

	e.MarketValue = e.CurrentPrice * holding.Quantity
	if holding.BuyPrice > 0 {
		e.GainPercent = (e.CurrentPrice - holding.BuyPrice) / holding.BuyPrice * 100
	}
	if e.CurrentPrice > 0 && holding.PriceAim > 0 {
		e.AimPercent = (holding.PriceAim - e.CurrentPrice) / e.CurrentPrice * 100
	}
	return e
}

// AddHolding creates a holding. Zero quantity defaults to 10 shares; a
// zero buy price takes the current market price, and a zero price aim is
// set 20% above the buy price.
func (s *Service) AddHolding(ctx context.Context, userID, ticker string, quantity, buyPrice, priceAim float64) (*models.Holding, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if userID == "" || ticker == "" {
		return nil, fmt.Errorf("%w: user ID and ticker are required", common.ErrInvalidRequest)
	}
	if quantity < 0 || buyPrice < 0 || priceAim < 0 {
		return nil, fmt.Errorf("%w: quantity and prices must not be negative", common.ErrInvalidRequest)
	}

	if quantity == 0 {
		quantity = defaultQuantity
	}
	if buyPrice == 0 {
		quote, err := s.quotes.GetQuote(ctx, ticker)
		if err != nil {
			return nil, fmt.Errorf("%w: quote for %s: %v", common.ErrDataUnavailable, ticker, err)
		}
		buyPrice = quote.RegularMarketPrice
	}
	if priceAim == 0 {
		priceAim = buyPrice * defaultAimMultiple
	}

	holding := &models.Holding{
		ID:       uuid.New().String(),
		UserID:   userID,
		Ticker:   ticker,
		Quantity: quantity,
		BuyPrice: buyPrice,
		PriceAim: priceAim,
	}
	if err := s.storage.UserDataStore().PutHolding(ctx, holding); err != nil {
		return nil, err
	}
	return holding, nil
}

// UpdateHolding modifies an existing holding. Zero-valued fields keep
// their current values.
func (s *Service) UpdateHolding(ctx context.Context, userID, id string, quantity, buyPrice, priceAim float64) (*models.Holding, error) {
	if userID == "" || id == "" {
		return nil, fmt.Errorf("%w: user ID and holding ID are required", common.ErrInvalidRequest)
	}

	holding, err := s.storage.UserDataStore().GetHolding(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if quantity > 0 {
		holding.Quantity = quantity
	}
	if buyPrice > 0 {
		holding.BuyPrice = buyPrice
	}
	if priceAim > 0 {
		holding.PriceAim = priceAim
	}

	if err := s.storage.UserDataStore().PutHolding(ctx, holding); err != nil {
		return nil, err
	}
	return holding, nil
}

// DeleteHolding removes a holding.
func (s *Service) DeleteHolding(ctx context.Context, userID, id string) error {
	if userID == "" || id == "" {
		return fmt.Errorf("%w: user ID and holding ID are required", common.ErrInvalidRequest)
	}
	return s.storage.UserDataStore().DeleteHolding(ctx, userID, id)
}

// Ensure Service implements PortfolioService
var _ interfaces.PortfolioService = (*Service)(nil)
