package insight

import (
	"strings"
	"testing"

	"github.com/fizenhive/fizen/internal/models"
)

func TestParseNarrative(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantTakeaway string
		wantContext  string
		wantErr      bool
	}{
		{
			name:         "bare json",
			text:         `{"takeaway": "Solid cash generation.", "context": "P/E is average."}`,
			wantTakeaway: "Solid cash generation.",
			wantContext:  "P/E is average.",
		},
		{
			name: "fenced json",
			text: "```json\n{\"takeaway\": \"Healthy margins.\", \"context\": \"Typical for the sector.\"}\n```",
			wantTakeaway: "Healthy margins.",
			wantContext:  "Typical for the sector.",
		},
		{
			name:         "trailing comma repaired",
			text:         `{"takeaway": "Leverage is elevated.", "context": "Above sector norms.",}`,
			wantTakeaway: "Leverage is elevated.",
			wantContext:  "Above sector norms.",
		},
		{
			name:    "prose without takeaway",
			text:    "I cannot produce JSON right now.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := parseNarrative(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", resp)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Takeaway != tt.wantTakeaway {
				t.Errorf("takeaway = %q, want %q", resp.Takeaway, tt.wantTakeaway)
			}
			if resp.Context != tt.wantContext {
				t.Errorf("context = %q, want %q", resp.Context, tt.wantContext)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	pe := 22.5
	scored := &models.ScoredInsight{
		Ticker: "ACME",
		CompanyInfo: models.CompanyInfo{
			Name:  "Acme Corp",
			Price: 120,
		},
		Valuation:      models.ValuationMetrics{PETrailing: &pe},
		Strength:       models.FinancialStrength{DebtToEquity: 0.85},
		Cashflow:       models.CashflowBlock{DividendYield: 2.1},
		MarginOfSafety: 33.333333,
		QualityScore:   4,
		RiskFlags:      []string{FlagHighLeverage},
	}

	prompt := buildPrompt(scored, "en")

	for _, want := range []string{
		"ACME",
		"Acme Corp",
		"Price: $120",
		"Margin of Safety: 33.33%",
		"Quality Score: 4 out of 5",
		FlagHighLeverage,
		"P/E (Trailing): 22.5",
		"Debt to Equity: 0.85",
		"Dividend Yield: 2.10%",
		"Provide the text in English",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	scored.RiskFlags = nil
	scored.Valuation.PETrailing = nil
	prompt = buildPrompt(scored, "fr")
	if !strings.Contains(prompt, "Risk Flags: None Detected") {
		t.Errorf("prompt missing empty-flag placeholder")
	}
	if !strings.Contains(prompt, "P/E (Trailing): N/A") {
		t.Errorf("prompt missing N/A for null P/E")
	}
	if !strings.Contains(prompt, "Provide the text in French") {
		t.Errorf("prompt missing French language instruction")
	}
}
