package screener

import (
	"testing"

	"github.com/fizenhive/fizen/internal/models"
)

func fptr(v float64) *float64 { return &v }

func TestCalculateScores(t *testing.T) {
	tests := []struct {
		name           string
		fin            models.FinancialsBundle
		wantSafety     int
		wantMispricing int
	}{
		{
			name:           "no data scores zero",
			fin:            models.FinancialsBundle{},
			wantSafety:     0,
			wantMispricing: 0,
		},
		{
			name: "best bands everywhere",
			fin: models.FinancialsBundle{
				DebtToEquity:       fptr(30), // raw percentage scale
				CurrentRatio:       fptr(2.5),
				FreeCashflow:       fptr(1e9),
				TrailingPE:         fptr(12),
				RegularMarketPrice: fptr(100),
				TargetMeanPrice:    fptr(140),
				ReturnOnEquity:     fptr(0.25),
			},
			wantSafety:     40,
			wantMispricing: 40,
		},
		{
			name: "middle bands",
			fin: models.FinancialsBundle{
				DebtToEquity:       fptr(80),
				CurrentRatio:       fptr(1.6),
				FreeCashflow:       fptr(-5e8), // negative gets no point
				TrailingPE:         fptr(20),
				RegularMarketPrice: fptr(100),
				TargetMeanPrice:    fptr(120),
				ReturnOnEquity:     fptr(0.17),
			},
			wantSafety:     20,
			wantMispricing: 27,
		},
		{
			name: "weakest bands",
			fin: models.FinancialsBundle{
				DebtToEquity:       fptr(150),
				CurrentRatio:       fptr(1.2),
				TrailingPE:         fptr(30),
				RegularMarketPrice: fptr(100),
				TargetMeanPrice:    fptr(108),
				ReturnOnEquity:     fptr(0.12),
			},
			wantSafety:     10,
			wantMispricing: 14,
		},
		{
			name: "out of band values score zero",
			fin: models.FinancialsBundle{
				DebtToEquity:       fptr(250),
				CurrentRatio:       fptr(0.9),
				TrailingPE:         fptr(40),
				RegularMarketPrice: fptr(100),
				TargetMeanPrice:    fptr(101),
				ReturnOnEquity:     fptr(0.05),
			},
			wantSafety:     0,
			wantMispricing: 0,
		},
		{
			name: "reported zero debt to equity still lands the best band",
			fin: models.FinancialsBundle{
				DebtToEquity: fptr(0),
			},
			wantSafety:     15,
			wantMispricing: 0,
		},
		{
			name: "forward PE fallback when trailing absent",
			fin: models.FinancialsBundle{
				ForwardPE: fptr(14),
			},
			wantSafety:     0,
			wantMispricing: 15,
		},
		{
			name: "zero price never divides for upside",
			fin: models.FinancialsBundle{
				RegularMarketPrice: fptr(0),
				TargetMeanPrice:    fptr(50),
			},
			wantSafety:     0,
			wantMispricing: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := calculateScores(&tt.fin)
			if scores.Safety != tt.wantSafety {
				t.Errorf("safety = %d, want %d", scores.Safety, tt.wantSafety)
			}
			if scores.Mispricing != tt.wantMispricing {
				t.Errorf("mispricing = %d, want %d", scores.Mispricing, tt.wantMispricing)
			}
			if scores.Safety > 40 || scores.Mispricing > 40 {
				t.Errorf("component score exceeds cap: %+v", scores)
			}
			wantTotal := min(80, scores.Safety+scores.Mispricing)
			if scores.Total != wantTotal {
				t.Errorf("total = %d, want %d", scores.Total, wantTotal)
			}
		})
	}
}
