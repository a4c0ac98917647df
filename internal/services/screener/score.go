package screener

import "github.com/fizenhive/fizen/internal/models"

// scoreValue is the effective P/E used by the mispricing bands: the trailing
// ratio unless it is absent or zero, then the forward ratio even when that
// is zero. This mirrors the row-level fallback but keeps a reported zero
// meaningful for banding.
func scorePE(fin *models.FinancialsBundle) *float64 {
	if fin.TrailingPE != nil && *fin.TrailingPE != 0 {
		v := *fin.TrailingPE
		return &v
	}
	if fin.ForwardPE != nil {
		v := *fin.ForwardPE
		return &v
	}
	return nil
}

// calculateScores derives the composite safety (0-40) and mispricing (0-40)
// scores from one ticker's statement fields. Absent fields contribute
// nothing. Note the debt-to-equity bands operate on the provider's raw
// percentage-scaled value, unlike the ratio-normalized figure the
// single-ticker pipeline scores against.
func calculateScores(fin *models.FinancialsBundle) models.ScreenerScores {
	safety := 0
	mispricing := 0

	if de := fin.DebtToEquity; de != nil {
		switch {
		case *de < 50:
			safety += 15
		case *de < 100:
			safety += 10
		case *de < 200:
			safety += 5
		}
	}

	if cr := fin.CurrentRatio; cr != nil {
		switch {
		case *cr > 2.0:
			safety += 15
		case *cr > 1.5:
			safety += 10
		case *cr > 1.0:
			safety += 5
		}
	}

	if fcf := fin.FreeCashflow; fcf != nil && *fcf > 0 {
		safety += 10
	}

	if pe := scorePE(fin); pe != nil {
		switch {
		case *pe < 15:
			mispricing += 15
		case *pe < 25:
			mispricing += 10
		case *pe < 35:
			mispricing += 5
		}
	}

	price := fin.RegularMarketPrice
	target := fin.TargetMeanPrice
	if price != nil && *price != 0 && target != nil && *target != 0 {
		upside := (*target - *price) / *price
		switch {
		case upside > 0.3:
			mispricing += 15
		case upside > 0.15:
			mispricing += 10
		case upside > 0.05:
			mispricing += 5
		}
	}

	if roe := fin.ReturnOnEquity; roe != nil {
		switch {
		case *roe > 0.2:
			mispricing += 10
		case *roe > 0.15:
			mispricing += 7
		case *roe > 0.1:
			mispricing += 4
		}
	}

	return models.ScreenerScores{
		Safety:     min(40, safety),
		Mispricing: min(40, mispricing),
		Total:      min(80, safety+mispricing),
	}
}
