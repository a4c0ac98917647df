package models

// ValuationInputs are the user-supplied overrides for the intrinsic value
// calculation. A nil field means "not supplied"; defaults are applied by the
// calculator (target P/E 15, target FCF yield 5%).
type ValuationInputs struct {
	NormalizedEPS  *float64 `json:"normalizedEPS,omitempty"`
	TargetPE       *float64 `json:"targetPE,omitempty"`
	TargetFCFYield *float64 `json:"targetFCFYield,omitempty"`
	ManualOverride *float64 `json:"manualOverride,omitempty"`
}

// InsightRequest is the single-ticker insight request contract.
type InsightRequest struct {
	Ticker string `json:"ticker"`
	ValuationInputs
	Language string `json:"language,omitempty"`
}

// CompanyInfo is the identity block of a scored insight.
type CompanyInfo struct {
	Name              string  `json:"name"`
	Sector            string  `json:"sector"`
	Industry          string  `json:"industry"`
	Price             float64 `json:"price"`
	MarketCap         float64 `json:"marketCap"`
	EnterpriseValue   float64 `json:"enterpriseValue"`
	FiftyTwoWeekRange string  `json:"fiftyTwoWeekRange"`
}

// ValuationMetrics holds the ratio block; nil marshals as null like the
// provider's missing fields.
type ValuationMetrics struct {
	PETrailing   *float64 `json:"pe_trailing"`
	PEForward    *float64 `json:"pe_forward"`
	PEG          *float64 `json:"peg"`
	PriceToSales *float64 `json:"price_to_sales"`
	PriceToBook  *float64 `json:"price_to_book"`
	EVToEBITDA   *float64 `json:"ev_to_ebitda"`
}

// FinancialStrength holds the balance-sheet block. DebtToEquity is the
// ratio-normalized value (provider percentage divided by 100).
type FinancialStrength struct {
	TotalDebt    float64  `json:"total_debt"`
	TotalCash    float64  `json:"total_cash"`
	NetDebt      float64  `json:"net_debt"`
	DebtToEquity float64  `json:"debt_to_equity"`
	CurrentRatio float64  `json:"current_ratio"`
	QuickRatio   *float64 `json:"quick_ratio"`
}

// CashflowBlock holds the cashflow block. DividendYield is in percentage
// points for presentation.
type CashflowBlock struct {
	OperatingCashFlow float64 `json:"operating_cash_flow"`
	FreeCashFlow      float64 `json:"free_cash_flow"`
	DividendYield     float64 `json:"dividend_yield"`
}

// IntrinsicMethods are the two independent valuation estimates.
type IntrinsicMethods struct {
	PEBased  float64 `json:"pe_based"`
	FCFBased float64 `json:"fcf_based"`
}

// IntrinsicValue reconciles the two methods into one final figure.
type IntrinsicValue struct {
	Methods IntrinsicMethods `json:"methods"`
	Final   float64          `json:"final"`
}

// ScoringBundle is the raw metric set consumed by the quality scorer.
// All values are defaulted (never missing); percentage-natured fields are
// fractions and DebtToEquity is the ratio-normalized value.
type ScoringBundle struct {
	FCF             float64 `json:"fcf"`
	RevenueGrowth   float64 `json:"revenueGrowth"`
	OperatingMargin float64 `json:"operatingMargin"`
	ReturnOnEquity  float64 `json:"returnOnEquity"`
	DebtToEquity    float64 `json:"debtToEquity"`
	CurrentRatio    float64 `json:"currentRatio"`
}

// NormalizedMetrics is the output of the normalization stage: no missing
// numeric fields, with the raw scoring bundle attached. The raw provider
// shape never passes beyond this boundary.
type NormalizedMetrics struct {
	Ticker            string
	Company           CompanyInfo
	Valuation         ValuationMetrics
	Strength          FinancialStrength
	Cashflow          CashflowBlock
	Price             float64
	MarketCap         float64
	FCF               float64
	FCFYield          float64
	NetDebt           float64
	CurrentEPS        float64
	SharesOutstanding *float64 // nil when the provider omits it
	Raw               ScoringBundle
}

// ScoredInsight is the output entity of the single-ticker pipeline.
// Constructed fresh per request and never persisted by the core.
type ScoredInsight struct {
	Ticker         string            `json:"ticker"`
	CompanyInfo    CompanyInfo       `json:"company_info"`
	Valuation      ValuationMetrics  `json:"valuation_metrics"`
	Strength       FinancialStrength `json:"financial_strength"`
	Cashflow       CashflowBlock     `json:"cashflow"`
	IntrinsicValue IntrinsicValue    `json:"intrinsic_value"`
	MarginOfSafety float64           `json:"margin_of_safety"` // percentage points
	QualityScore   int               `json:"quality_score"`
	RiskFlags      []string          `json:"risk_flags"`
	Takeaway       string            `json:"takeaway,omitempty"`
	Context        string            `json:"context,omitempty"`
}
