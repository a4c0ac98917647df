package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/interfaces"
	"github.com/fizenhive/fizen/internal/models"
)

const defaultNarrativeTimeout = 30 * time.Second

// Service runs the single-ticker pipeline against the market-data and
// generative providers.
type Service struct {
	quotes           interfaces.QuoteProvider
	narrative        interfaces.NarrativeProvider
	logger           *common.Logger
	narrativeTimeout time.Duration
}

// NewService creates the insight service.
func NewService(quotes interfaces.QuoteProvider, narrative interfaces.NarrativeProvider, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		quotes:           quotes,
		narrative:        narrative,
		logger:           logger,
		narrativeTimeout: defaultNarrativeTimeout,
	}
}

// AnalyzeTicker produces a full scored insight for one ticker. Provider
// data unavailability is terminal with no partial result; a failed or
// unparseable narrative degrades to the fixed fallback text.
func (s *Service) AnalyzeTicker(ctx context.Context, req models.InsightRequest) (*models.ScoredInsight, error) {
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker is required", common.ErrInvalidRequest)
	}

	quote, err := s.quotes.GetQuote(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch quote for %s: %v", common.ErrDataUnavailable, ticker, err)
	}

	financials, err := s.quotes.GetFinancials(ctx, ticker, models.InsightModules)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch financials for %s: %v", common.ErrDataUnavailable, ticker, err)
	}

	normalized := Normalize(ticker, quote, financials)
	intrinsic, marginOfSafety := ComputeIntrinsic(normalized, req.ValuationInputs)
	qualityScore, riskFlags := ScoreQuality(normalized.Raw)

	scored := &models.ScoredInsight{
		Ticker:         ticker,
		CompanyInfo:    normalized.Company,
		Valuation:      normalized.Valuation,
		Strength:       normalized.Strength,
		Cashflow:       normalized.Cashflow,
		IntrinsicValue: intrinsic,
		MarginOfSafety: marginOfSafety,
		QualityScore:   qualityScore,
		RiskFlags:      riskFlags,
	}

	s.narrate(ctx, scored, req.Language)

	return scored, nil
}

// narrate fills the takeaway and context fields, substituting the fixed
// fallback on any call or parse failure. The numeric fields are already
// final when this runs.
func (s *Service) narrate(ctx context.Context, scored *models.ScoredInsight, language string) {
	scored.Takeaway = FallbackTakeaway
	scored.Context = FallbackContext

	if s.narrative == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.narrativeTimeout)
	defer cancel()

	prompt := buildPrompt(scored, language)
	text, err := s.narrative.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", scored.Ticker).Msg("Narrative generation failed, using fallback")
		return
	}

	parsed, err := parseNarrative(text)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", scored.Ticker).Msg("Narrative output unparseable, using fallback")
		return
	}

	scored.Takeaway = parsed.Takeaway
	scored.Context = parsed.Context
}

// Ensure Service implements InsightService
var _ interfaces.InsightService = (*Service)(nil)
