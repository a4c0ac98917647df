package insight

import "github.com/fizenhive/fizen/internal/models"

// Risk flag strings, emitted in this fixed order when triggered.
const (
	FlagHighLeverage  = "High Leverage: Debt to Equity ratio exceeds 1.0"
	FlagLiquidityRisk = "Liquidity Risk: Current ratio is less than 1.0 (Current Assets < Current Liabilities)"
	FlagCashBurn      = "Cash Burn: Free Cash Flow is negative"
)

// ScoreQuality converts the raw scoring bundle into a 0-5 quality score and
// the triggered risk flags. Each point and each flag is evaluated
// independently; boundary values and absent (zero) metrics never trigger a
// flag.
func ScoreQuality(raw models.ScoringBundle) (int, []string) {
	score := 0
	if raw.FCF > 0 {
		score++
	}
	if raw.RevenueGrowth > 0 {
		score++
	}
	if raw.OperatingMargin > 0.10 {
		score++
	}
	if raw.ReturnOnEquity > 0.12 {
		score++
	}
	if raw.DebtToEquity > 0 && raw.DebtToEquity < 0.8 {
		score++
	}

	flags := []string{}
	if raw.DebtToEquity > 1 {
		flags = append(flags, FlagHighLeverage)
	}
	if raw.CurrentRatio > 0 && raw.CurrentRatio < 1 {
		flags = append(flags, FlagLiquidityRisk)
	}
	if raw.FCF < 0 {
		flags = append(flags, FlagCashBurn)
	}

	return score, flags
}
