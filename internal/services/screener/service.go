package screener

import (
	"context"
	"time"

	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/interfaces"
	"github.com/fizenhive/fizen/internal/models"
)

const (
	// historyWindow covers roughly seven trading days for sparklines
	historyWindow = 10 * 24 * time.Hour

	// maxConcurrentFetches bounds the per-region fan-out
	maxConcurrentFetches = 16
)

// Service evaluates a region universe concurrently and returns ranked rows.
type Service struct {
	quotes interfaces.QuoteProvider
	logger *common.Logger
}

// NewService creates the screener service.
func NewService(quotes interfaces.QuoteProvider, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{quotes: quotes, logger: logger}
}

// Regions lists the available region names.
func (s *Service) Regions() []string {
	out := make([]string, len(regionOrder))
	copy(out, regionOrder)
	return out
}

// Screen fetches and scores every ticker in the region universe in
// parallel, then applies the sector filter and sort mode. A ticker whose
// fetch fails is dropped; the batch never fails for one bad symbol.
func (s *Service) Screen(ctx context.Context, region, filter, sector string) ([]models.ScreenerRow, error) {
	if region == "" {
		region = "US"
	}
	if filter == "" {
		filter = models.FilterDayGainers
	}
	if sector == "" {
		sector = models.SectorAll
	}

	tickers := resolveUniverse(region)
	end := time.Now()
	start := end.Add(-historyWindow)

	semaphore := make(chan struct{}, maxConcurrentFetches)
	results := make(chan *models.ScreenerRow, len(tickers))

	for _, ticker := range tickers {
		go func(sym string) {
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			results <- s.evaluate(ctx, sym, start, end)
		}(ticker)
	}

	rows := make([]models.ScreenerRow, 0, len(tickers))
	for range tickers {
		if row := <-results; row != nil {
			rows = append(rows, *row)
		}
	}

	if sector != models.SectorAll {
		filtered := rows[:0]
		for _, r := range rows {
			if r.Sector == sector {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	sortRows(rows, filter)

	s.logger.Debug().
		Str("region", region).
		Str("filter", filter).
		Int("rows", len(rows)).
		Msg("Screener evaluated")

	return rows, nil
}

// evaluate fetches history and statement modules for one ticker and builds
// its row. Returns nil when the ticker cannot be evaluated.
func (s *Service) evaluate(ctx context.Context, sym string, start, end time.Time) *models.ScreenerRow {
	// History failures degrade to the flat sparkline
	var closes []float64
	if bars, err := s.quotes.GetHistory(ctx, sym, start, end, "1d"); err == nil {
		for _, b := range bars {
			closes = append(closes, b.Close)
		}
	}

	fin, err := s.quotes.GetFinancials(ctx, sym, models.ScreenerModules)
	if err != nil || fin == nil {
		s.logger.Warn().Str("ticker", sym).Err(err).Msg("Dropping ticker from screener")
		return nil
	}

	return buildRow(sym, fin, closes)
}

// firstNonZero walks the fallback chain, treating absent and zero alike.
func firstNonZero(ptrs ...*float64) *float64 {
	for _, p := range ptrs {
		if p != nil && *p != 0 {
			v := *p
			return &v
		}
	}
	return nil
}

// scaledIfPresent multiplies a fraction into percentage points, keeping nil
// for absent values. A reported zero stays a real zero.
func scaledIfPresent(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p * 100
	return &v
}

// buildRow extracts the display fields and composite scores for one ticker.
func buildRow(sym string, fin *models.FinancialsBundle, closes []float64) *models.ScreenerRow {
	name := fin.ShortName
	if name == "" {
		name = fin.LongName
	}
	if name == "" {
		name = sym
	}

	price := 0.0
	if fin.RegularMarketPrice != nil {
		price = *fin.RegularMarketPrice
	}
	changePct := 0.0
	if fin.RegularMarketChangePercent != nil {
		changePct = *fin.RegularMarketChangePercent * 100
	}

	sector := fin.Sector
	if sector == "" {
		sector = "Unknown"
	}

	pe := firstNonZero(fin.TrailingPE, fin.ForwardPE)

	dividendYield := scaledIfPresent(fin.DividendYield)
	if dividendYield == nil {
		dividendYield = scaledIfPresent(fin.TrailingAnnualDividendYield)
	}

	return &models.ScreenerRow{
		Ticker:             sym,
		Name:               name,
		Price:              price,
		Change:             changePct,
		IsPositive:         changePct >= 0,
		Sector:             sector,
		Spark:              sparkline(closes),
		PE:                 pe,
		RevenueGrowth:      scaledIfPresent(fin.RevenueGrowth),
		ProfitMargin:       scaledIfPresent(fin.ProfitMargins),
		DividendYield:      dividendYield,
		DebtToEquity:       firstNonZero(fin.DebtToEquity),
		MarketCap:          firstNonZero(fin.MarketCap),
		Volume:             firstNonZero(fin.Volume, fin.RegularMarketVolume),
		FiftyTwoWeekChange: scaledIfPresent(fin.FiftyTwoWeekChange),
		Scores:             calculateScores(fin),
		Metrics: models.ScreenerMetrics{
			DebtToEquity:    fin.DebtToEquity,
			CurrentRatio:    fin.CurrentRatio,
			FreeCashflow:    fin.FreeCashflow,
			PE:              pe,
			TargetMeanPrice: fin.TargetMeanPrice,
			ReturnOnEquity:  fin.ReturnOnEquity,
			RevenueGrowth:   fin.RevenueGrowth,
			ProfitMargins:   fin.ProfitMargins,
		},
	}
}

// Ensure Service implements ScreenerService
var _ interfaces.ScreenerService = (*Service)(nil)
