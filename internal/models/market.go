// Package models defines domain types for Fizen
package models

import "time"

// QuoteSnapshot holds point-in-time quote fields for one ticker.
// It is fetched on demand and never cached beyond a single request.
type QuoteSnapshot struct {
	Symbol                     string   `json:"symbol"`
	ShortName                  string   `json:"shortName,omitempty"`
	LongName                   string   `json:"longName,omitempty"`
	Currency                   string   `json:"currency,omitempty"`
	QuoteType                  string   `json:"quoteType,omitempty"`
	Exchange                   string   `json:"exchange,omitempty"`
	RegularMarketPrice         float64  `json:"regularMarketPrice"`
	RegularMarketChange        float64  `json:"regularMarketChange"`
	RegularMarketChangePercent float64  `json:"regularMarketChangePercent"`
	RegularMarketVolume        int64    `json:"regularMarketVolume"`
	MarketCap                  float64  `json:"marketCap"`
	SharesOutstanding          float64  `json:"sharesOutstanding"`
	TrailingPE                 *float64 `json:"trailingPE,omitempty"`
	ForwardPE                  *float64 `json:"forwardPE,omitempty"`
	DividendYield              *float64 `json:"dividendYield,omitempty"` // fraction
	EpsTrailingTwelveMonths    *float64 `json:"epsTrailingTwelveMonths,omitempty"`
	FiftyTwoWeekLow            float64  `json:"fiftyTwoWeekLow"`
	FiftyTwoWeekHigh           float64  `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekChangePercent  *float64 `json:"fiftyTwoWeekChangePercent,omitempty"`
}

// FinancialsBundle is the union of the quote-summary statement modules for
// one ticker. Every field is optional at the provider: pointers stay nil when
// the module or field is absent so callers can distinguish missing from zero.
// Percentage-natured fields keep the provider's scaling (fractions, except
// DebtToEquity which arrives percentage-scaled).
type FinancialsBundle struct {
	// financialData module
	FreeCashflow      *float64 `json:"freeCashflow,omitempty"`
	OperatingCashflow *float64 `json:"operatingCashflow,omitempty"`
	TotalDebt         *float64 `json:"totalDebt,omitempty"`
	TotalCash         *float64 `json:"totalCash,omitempty"`
	CurrentRatio      *float64 `json:"currentRatio,omitempty"`
	QuickRatio        *float64 `json:"quickRatio,omitempty"`
	DebtToEquity      *float64 `json:"debtToEquity,omitempty"` // percentage-scaled
	RevenueGrowth     *float64 `json:"revenueGrowth,omitempty"`
	OperatingMargins  *float64 `json:"operatingMargins,omitempty"`
	ProfitMargins     *float64 `json:"profitMargins,omitempty"`
	ReturnOnEquity    *float64 `json:"returnOnEquity,omitempty"`
	RevenuePerShare   *float64 `json:"revenuePerShare,omitempty"`
	TargetMeanPrice   *float64 `json:"targetMeanPrice,omitempty"`

	// summaryDetail module
	TrailingPE                  *float64 `json:"trailingPE,omitempty"`
	ForwardPE                   *float64 `json:"forwardPE,omitempty"`
	DividendYield               *float64 `json:"dividendYield,omitempty"` // fraction
	TrailingAnnualDividendYield *float64 `json:"trailingAnnualDividendYield,omitempty"`
	MarketCap                   *float64 `json:"marketCap,omitempty"`
	Volume                      *float64 `json:"volume,omitempty"`
	FiftyTwoWeekLow             *float64 `json:"fiftyTwoWeekLow,omitempty"`
	FiftyTwoWeekHigh            *float64 `json:"fiftyTwoWeekHigh,omitempty"`
	PriceToSales                *float64 `json:"priceToSalesTrailing12Months,omitempty"`

	// defaultKeyStatistics module
	TrailingEps        *float64 `json:"trailingEps,omitempty"`
	SharesOutstanding  *float64 `json:"sharesOutstanding,omitempty"`
	EnterpriseValue    *float64 `json:"enterpriseValue,omitempty"`
	PegRatio           *float64 `json:"pegRatio,omitempty"`
	PriceToBook        *float64 `json:"priceToBook,omitempty"`
	EnterpriseToEbitda *float64 `json:"enterpriseToEbitda,omitempty"`
	FiftyTwoWeekChange *float64 `json:"fiftyTwoWeekChange,omitempty"` // fraction

	// price module
	RegularMarketPrice         *float64 `json:"regularMarketPrice,omitempty"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent,omitempty"` // fraction
	RegularMarketVolume        *float64 `json:"regularMarketVolume,omitempty"`
	ShortName                  string   `json:"shortName,omitempty"`
	LongName                   string   `json:"longName,omitempty"`
	QuoteType                  string   `json:"quoteType,omitempty"`

	// assetProfile module
	Sector   string `json:"sector,omitempty"`
	Industry string `json:"industry,omitempty"`

	// cashflowStatementHistory module (latest statement)
	TotalCashFromOperatingActivities *float64 `json:"totalCashFromOperatingActivities,omitempty"`
	CapitalExpenditures              *float64 `json:"capitalExpenditures,omitempty"` // conventionally negative
}

// HistoryBar is one bar of price history.
type HistoryBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// SearchResult is one symbol-search match.
type SearchResult struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	Exchange  string `json:"exchange"`
	QuoteType string `json:"quoteType"`
}

// Quote-summary module names accepted by the provider.
const (
	ModuleFinancialData        = "financialData"
	ModuleDefaultKeyStatistics = "defaultKeyStatistics"
	ModuleSummaryDetail        = "summaryDetail"
	ModulePrice                = "price"
	ModuleAssetProfile         = "assetProfile"
	ModuleEarningsTrend        = "earningsTrend"
	ModuleCashflowHistory      = "cashflowStatementHistory"
)

// InsightModules are the statement modules the single-ticker pipeline needs.
var InsightModules = []string{
	ModuleFinancialData,
	ModuleDefaultKeyStatistics,
	ModuleSummaryDetail,
	ModulePrice,
	ModuleEarningsTrend,
	ModuleCashflowHistory,
}

// ScreenerModules are the statement modules the screener needs per ticker.
var ScreenerModules = []string{
	ModulePrice,
	ModuleAssetProfile,
	ModuleDefaultKeyStatistics,
	ModuleFinancialData,
	ModuleSummaryDetail,
}
