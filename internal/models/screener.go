package models

// ScreenerScores holds the composite valuation scores for a screener row.
// Safety and mispricing are each capped at 40; total at 80.
type ScreenerScores struct {
	Safety     int `json:"safety"`
	Mispricing int `json:"mispricing"`
	Total      int `json:"total"`
}

// ScreenerMetrics is the raw metric subset echoed back for client drill-down.
// Values keep the provider's scaling (DebtToEquity percentage-scaled,
// growth/margins/ROE as fractions).
type ScreenerMetrics struct {
	DebtToEquity    *float64 `json:"debtToEquity"`
	CurrentRatio    *float64 `json:"currentRatio"`
	FreeCashflow    *float64 `json:"freeCashflow"`
	PE              *float64 `json:"pe"`
	TargetMeanPrice *float64 `json:"targetMeanPrice"`
	ReturnOnEquity  *float64 `json:"returnOnEquity"`
	RevenueGrowth   *float64 `json:"revenueGrowth"`
	ProfitMargins   *float64 `json:"profitMargins"`
}

// ScreenerRow is one ranked entry in the screener result set.
// Percentage fields (Change, RevenueGrowth, ProfitMargin, DividendYield,
// FiftyTwoWeekChange) are in percentage points; nil means the provider had
// no value.
type ScreenerRow struct {
	Ticker             string          `json:"ticker"`
	Name               string          `json:"name"`
	Price              float64         `json:"price"`
	Change             float64         `json:"change"`
	IsPositive         bool            `json:"isPositive"`
	Sector             string          `json:"sector"`
	Spark              []float64       `json:"spark"` // 0-100 normalized closes
	PE                 *float64        `json:"pe"`
	RevenueGrowth      *float64        `json:"revenueGrowth"`
	ProfitMargin       *float64        `json:"profitMargin"`
	DividendYield      *float64        `json:"dividendYield"`
	DebtToEquity       *float64        `json:"debtToEquity"`
	MarketCap          *float64        `json:"marketCap"`
	Volume             *float64        `json:"volume"`
	FiftyTwoWeekChange *float64        `json:"fiftyTwoWeekChange"`
	Scores             ScreenerScores  `json:"scores"`
	Metrics            ScreenerMetrics `json:"metrics"`
}

// Screener sort modes. Unknown modes fall back to descending market cap.
const (
	FilterDayGainers       = "Day Gainers"
	FilterDayLosers        = "Day Losers"
	FilterMostActive       = "Most Active"
	FilterHighestDividend  = "Highest Dividend"
	FilterHighestRevGrowth = "Highest Revenue Growth"
	FilterHighestMargin    = "Highest Profit Margin"
	FilterFiftyTwoWeekLow  = "52-Week Low Gainers"
	FilterLowestPE         = "Lowest P/E Ratio"
	FilterLargestMarketCap = "Largest Market Cap"
	FilterFiftyTwoWeekHigh = "52-Week High Gainers"
	SectorAll              = "All Sectors"
)
