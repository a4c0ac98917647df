package insight

import (
	"reflect"
	"testing"

	"github.com/fizenhive/fizen/internal/models"
)

func TestScoreQuality(t *testing.T) {
	tests := []struct {
		name      string
		raw       models.ScoringBundle
		wantScore int
		wantFlags []string
	}{
		{
			name: "all points",
			raw: models.ScoringBundle{
				FCF:             1e9,
				RevenueGrowth:   0.08,
				OperatingMargin: 0.25,
				ReturnOnEquity:  0.30,
				DebtToEquity:    0.5,
				CurrentRatio:    2.0,
			},
			wantScore: 5,
			wantFlags: []string{},
		},
		{
			name:      "zero everything",
			raw:       models.ScoringBundle{},
			wantScore: 0,
			wantFlags: []string{},
		},
		{
			name: "negative fcf loses point and flags cash burn",
			raw: models.ScoringBundle{
				FCF:             -5e8,
				RevenueGrowth:   0.10,
				OperatingMargin: 0.15,
				ReturnOnEquity:  0.20,
				DebtToEquity:    0.4,
			},
			wantScore: 4,
			wantFlags: []string{FlagCashBurn},
		},
		{
			name: "high leverage flag",
			raw: models.ScoringBundle{
				FCF:          1e8,
				DebtToEquity: 1.5,
			},
			wantScore: 1,
			wantFlags: []string{FlagHighLeverage},
		},
		{
			name: "liquidity risk flag",
			raw: models.ScoringBundle{
				FCF:          1e8,
				CurrentRatio: 0.8,
			},
			wantScore: 1,
			wantFlags: []string{FlagLiquidityRisk},
		},
		{
			name: "all flags in fixed order",
			raw: models.ScoringBundle{
				FCF:          -1,
				DebtToEquity: 2.0,
				CurrentRatio: 0.5,
			},
			wantScore: 0,
			wantFlags: []string{FlagHighLeverage, FlagLiquidityRisk, FlagCashBurn},
		},
		{
			name: "boundaries do not trigger",
			raw: models.ScoringBundle{
				FCF:             0,
				OperatingMargin: 0.10,
				ReturnOnEquity:  0.12,
				DebtToEquity:    1.0,
				CurrentRatio:    1.0,
			},
			wantScore: 0,
			wantFlags: []string{},
		},
		{
			name: "absent current ratio does not flag liquidity",
			raw: models.ScoringBundle{
				FCF:          1,
				CurrentRatio: 0,
			},
			wantScore: 1,
			wantFlags: []string{},
		},
		{
			name: "debt to equity at 0.8 no point, below 1 no flag",
			raw: models.ScoringBundle{
				DebtToEquity: 0.8,
			},
			wantScore: 0,
			wantFlags: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, flags := ScoreQuality(tt.raw)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
			if score < 0 || score > 5 {
				t.Errorf("score %d out of [0,5]", score)
			}
			if !reflect.DeepEqual(flags, tt.wantFlags) {
				t.Errorf("flags = %v, want %v", flags, tt.wantFlags)
			}
		})
	}
}
