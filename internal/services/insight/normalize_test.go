package insight

import (
	"reflect"
	"testing"

	"github.com/fizenhive/fizen/internal/models"
)

func TestNormalizeDefaults(t *testing.T) {
	quote := &models.QuoteSnapshot{Symbol: "EMPTY"}
	fin := &models.FinancialsBundle{}

	m := Normalize("EMPTY", quote, fin)

	if m.FCF != 0 || m.NetDebt != 0 || m.FCFYield != 0 || m.CurrentEPS != 0 {
		t.Errorf("expected zero defaults, got fcf=%v netDebt=%v fcfYield=%v eps=%v",
			m.FCF, m.NetDebt, m.FCFYield, m.CurrentEPS)
	}
	if m.SharesOutstanding != nil {
		t.Errorf("shares outstanding should stay nil when absent")
	}
	if m.Company.Sector != "Unknown" {
		t.Errorf("sector = %q, want Unknown", m.Company.Sector)
	}
	if m.Company.FiftyTwoWeekRange != "N/A - N/A" {
		t.Errorf("range = %q, want N/A - N/A", m.Company.FiftyTwoWeekRange)
	}
	if m.Valuation.PETrailing != nil {
		t.Errorf("trailing P/E should marshal as null when absent")
	}
}

func TestNormalizeFCFApproximation(t *testing.T) {
	quote := &models.QuoteSnapshot{Symbol: "APPROX", RegularMarketPrice: 50, MarketCap: 1e10}

	tests := []struct {
		name string
		fin  models.FinancialsBundle
		want float64
	}{
		{
			name: "direct fcf preferred",
			fin: models.FinancialsBundle{
				FreeCashflow:                     fptr(3e9),
				TotalCashFromOperatingActivities: fptr(5e9),
				CapitalExpenditures:              fptr(-1e9),
			},
			want: 3e9,
		},
		{
			name: "approximated from operating cash flow minus capex",
			fin: models.FinancialsBundle{
				TotalCashFromOperatingActivities: fptr(5e9),
				CapitalExpenditures:              fptr(-1e9),
			},
			want: 4e9,
		},
		{
			name: "no approximation without capex",
			fin: models.FinancialsBundle{
				TotalCashFromOperatingActivities: fptr(5e9),
			},
			want: 0,
		},
		{
			name: "zero direct fcf falls through to approximation",
			fin: models.FinancialsBundle{
				FreeCashflow:                     fptr(0),
				TotalCashFromOperatingActivities: fptr(2e9),
				CapitalExpenditures:              fptr(-5e8),
			},
			want: 1.5e9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Normalize("APPROX", quote, &tt.fin)
			if m.FCF != tt.want {
				t.Errorf("fcf = %v, want %v", m.FCF, tt.want)
			}
		})
	}
}

func TestNormalizeRatios(t *testing.T) {
	quote := &models.QuoteSnapshot{
		Symbol:             "ACME",
		LongName:           "Acme Corp",
		RegularMarketPrice: 120,
		MarketCap:          6e10,
	}
	fin := &models.FinancialsBundle{
		FreeCashflow:    fptr(3e9),
		TotalDebt:       fptr(2e10),
		TotalCash:       fptr(5e9),
		DebtToEquity:    fptr(85), // percentage-scaled at the provider
		CurrentRatio:    fptr(1.4),
		DividendYield:   fptr(0.021),
		RevenueGrowth:   fptr(0.07),
		TrailingPE:      fptr(24),
		RevenuePerShare: fptr(40),
		TrailingEps:     fptr(3.5),
	}

	m := Normalize("ACME", quote, fin)

	if m.NetDebt != 1.5e10 {
		t.Errorf("net debt = %v, want 1.5e10", m.NetDebt)
	}
	if m.FCFYield != 3e9/6e10 {
		t.Errorf("fcf yield = %v, want %v", m.FCFYield, 3e9/6e10)
	}
	if m.Strength.DebtToEquity != 0.85 {
		t.Errorf("debt to equity = %v, want 0.85 (ratio-normalized)", m.Strength.DebtToEquity)
	}
	if m.Cashflow.DividendYield != 2.1 {
		t.Errorf("dividend yield = %v, want 2.1 percentage points", m.Cashflow.DividendYield)
	}
	// EPS approximated from price over trailing P/E when revenue per share
	// is also reported
	if m.CurrentEPS != 120.0/24.0 {
		t.Errorf("eps = %v, want %v", m.CurrentEPS, 120.0/24.0)
	}
	if m.Raw.RevenueGrowth != 0.07 {
		t.Errorf("raw revenue growth = %v, want fraction 0.07", m.Raw.RevenueGrowth)
	}
}

func TestNormalizeEPSFallback(t *testing.T) {
	quote := &models.QuoteSnapshot{Symbol: "FB", RegularMarketPrice: 120}

	// Without revenue per share the reported trailing EPS is used
	m := Normalize("FB", quote, &models.FinancialsBundle{
		TrailingPE:  fptr(24),
		TrailingEps: fptr(3.5),
	})
	if m.CurrentEPS != 3.5 {
		t.Errorf("eps = %v, want reported 3.5", m.CurrentEPS)
	}

	// Without either, zero
	m = Normalize("FB", quote, &models.FinancialsBundle{})
	if m.CurrentEPS != 0 {
		t.Errorf("eps = %v, want 0", m.CurrentEPS)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	quote := &models.QuoteSnapshot{Symbol: "IDEM", RegularMarketPrice: 77, MarketCap: 9e9}
	fin := &models.FinancialsBundle{
		FreeCashflow: fptr(1e9),
		TotalDebt:    fptr(3e9),
		TotalCash:    fptr(1e9),
		DebtToEquity: fptr(120),
		CurrentRatio: fptr(0.9),
	}

	first := Normalize("IDEM", quote, fin)
	second := Normalize("IDEM", quote, fin)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
