// Package insight implements the single-ticker intrinsic-value pipeline:
// fetch, normalize, value, score, narrate.
package insight

import (
	"strconv"

	"github.com/fizenhive/fizen/internal/models"
)

// floatOr dereferences p, substituting def when the field is absent.
func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// present reports whether the field arrived and is non-zero. Provider
// fields use zero interchangeably with absent, so defaults treat both the
// same way.
func present(p *float64) bool {
	return p != nil && *p != 0
}

// nonZeroPtr collapses absent and zero to nil so ratio fields marshal as
// null rather than a misleading 0.
func nonZeroPtr(p *float64) *float64 {
	if !present(p) {
		return nil
	}
	v := *p
	return &v
}

func formatRangeBound(p *float64) string {
	if !present(p) {
		return "N/A"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// Normalize fills gaps in the raw provider fields with documented defaults
// and computes the derived ratios. The raw provider shape never passes
// beyond this stage; every default is applied here exactly once.
func Normalize(ticker string, quote *models.QuoteSnapshot, fin *models.FinancialsBundle) *models.NormalizedMetrics {
	// Free cash flow: direct field first, else approximate from the latest
	// cashflow statement. Capex is conventionally negative, so adding it
	// subtracts in effect.
	fcf := floatOr(fin.FreeCashflow, 0)
	if fcf == 0 && present(fin.TotalCashFromOperatingActivities) && present(fin.CapitalExpenditures) {
		fcf = *fin.TotalCashFromOperatingActivities + *fin.CapitalExpenditures
	}

	price := quote.RegularMarketPrice
	marketCap := quote.MarketCap
	if marketCap == 0 {
		marketCap = floatOr(fin.MarketCap, 0)
	}
	debt := floatOr(fin.TotalDebt, 0)
	cash := floatOr(fin.TotalCash, 0)

	netDebt := debt - cash
	fcfYield := 0.0
	if marketCap > 0 {
		fcfYield = fcf / marketCap
	}

	// Approximate EPS from price and trailing P/E when the statement data
	// looks complete enough; otherwise fall back to the reported figure.
	currentEPS := floatOr(fin.TrailingEps, 0)
	if present(fin.RevenuePerShare) && present(fin.TrailingPE) {
		currentEPS = price / *fin.TrailingPE
	}

	// Shares outstanding stays nullable so the FCF valuation method can
	// tell "absent" from zero.
	var shares *float64
	if present(fin.SharesOutstanding) {
		shares = nonZeroPtr(fin.SharesOutstanding)
	} else if quote.SharesOutstanding > 0 {
		s := quote.SharesOutstanding
		shares = &s
	}

	name := quote.LongName
	if name == "" {
		name = quote.ShortName
	}
	sector := fin.QuoteType
	if sector == "" {
		sector = "Unknown"
	}

	company := models.CompanyInfo{
		Name:              name,
		Sector:            sector,
		Industry:          "Unknown",
		Price:             price,
		MarketCap:         marketCap,
		EnterpriseValue:   floatOr(fin.EnterpriseValue, 0),
		FiftyTwoWeekRange: formatRangeBound(fin.FiftyTwoWeekLow) + " - " + formatRangeBound(fin.FiftyTwoWeekHigh),
	}

	valuation := models.ValuationMetrics{
		PETrailing:   nonZeroPtr(fin.TrailingPE),
		PEForward:    nonZeroPtr(fin.ForwardPE),
		PEG:          nonZeroPtr(fin.PegRatio),
		PriceToSales: nonZeroPtr(fin.PriceToSales),
		PriceToBook:  nonZeroPtr(fin.PriceToBook),
		EVToEBITDA:   nonZeroPtr(fin.EnterpriseToEbitda),
	}

	// The provider reports debt-to-equity percentage-scaled; normalize to a
	// ratio for scoring and display.
	debtEquity := 0.0
	if present(fin.DebtToEquity) {
		debtEquity = *fin.DebtToEquity / 100
	}
	currentRatio := floatOr(fin.CurrentRatio, 0)

	strength := models.FinancialStrength{
		TotalDebt:    debt,
		TotalCash:    cash,
		NetDebt:      netDebt,
		DebtToEquity: debtEquity,
		CurrentRatio: currentRatio,
		QuickRatio:   nonZeroPtr(fin.QuickRatio),
	}

	// Dividend yield arrives as a fraction; presented in percentage points.
	dividendYield := 0.0
	if present(fin.DividendYield) {
		dividendYield = *fin.DividendYield * 100
	}

	cashflow := models.CashflowBlock{
		OperatingCashFlow: floatOr(fin.OperatingCashflow, 0),
		FreeCashFlow:      fcf,
		DividendYield:     dividendYield,
	}

	return &models.NormalizedMetrics{
		Ticker:            ticker,
		Company:           company,
		Valuation:         valuation,
		Strength:          strength,
		Cashflow:          cashflow,
		Price:             price,
		MarketCap:         marketCap,
		FCF:               fcf,
		FCFYield:          fcfYield,
		NetDebt:           netDebt,
		CurrentEPS:        currentEPS,
		SharesOutstanding: shares,
		Raw: models.ScoringBundle{
			FCF:             fcf,
			RevenueGrowth:   floatOr(fin.RevenueGrowth, 0),
			OperatingMargin: floatOr(fin.OperatingMargins, 0),
			ReturnOnEquity:  floatOr(fin.ReturnOnEquity, 0),
			DebtToEquity:    debtEquity,
			CurrentRatio:    currentRatio,
		},
	}
}
