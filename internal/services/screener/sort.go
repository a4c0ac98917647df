package screener

import (
	"sort"

	"github.com/fizenhive/fizen/internal/models"
)

// numOr substitutes def when the value is absent or zero, matching the
// loose sort defaults the UI relies on (a reported zero sorts with the
// missing values).
func numOr(p *float64, def float64) float64 {
	if p == nil || *p == 0 {
		return def
	}
	return *p
}

// sortRows applies the selected sort mode in place. Unknown modes fall back
// to descending market cap. Stable sorting keeps ties in fetch order.
func sortRows(rows []models.ScreenerRow, filter string) {
	switch filter {
	case models.FilterDayGainers:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Change > rows[j].Change
		})
	case models.FilterDayLosers:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Change < rows[j].Change
		})
	case models.FilterMostActive:
		sort.SliceStable(rows, func(i, j int) bool {
			return numOr(rows[i].Volume, 0) > numOr(rows[j].Volume, 0)
		})
	case models.FilterHighestDividend:
		sort.SliceStable(rows, func(i, j int) bool {
			return numOr(rows[i].DividendYield, 0) > numOr(rows[j].DividendYield, 0)
		})
	case models.FilterHighestRevGrowth:
		sort.SliceStable(rows, func(i, j int) bool {
			return numOr(rows[i].RevenueGrowth, -9999) > numOr(rows[j].RevenueGrowth, -9999)
		})
	case models.FilterHighestMargin:
		sort.SliceStable(rows, func(i, j int) bool {
			return numOr(rows[i].ProfitMargin, -9999) > numOr(rows[j].ProfitMargin, -9999)
		})
	case models.FilterFiftyTwoWeekLow:
		sort.SliceStable(rows, func(i, j int) bool {
			return numOr(rows[i].FiftyTwoWeekChange, 9999) < numOr(rows[j].FiftyTwoWeekChange, 9999)
		})
	case models.FilterLowestPE:
		// Nulls always rank after any real value, regardless of sign
		sort.SliceStable(rows, func(i, j int) bool {
			pi, pj := rows[i].PE, rows[j].PE
			if pi == nil {
				return false
			}
			if pj == nil {
				return true
			}
			return *pi < *pj
		})
	case models.FilterFiftyTwoWeekHigh:
		sort.SliceStable(rows, func(i, j int) bool {
			return numOr(rows[i].FiftyTwoWeekChange, -9999) > numOr(rows[j].FiftyTwoWeekChange, -9999)
		})
	default:
		// Largest Market Cap and any unknown mode
		sort.SliceStable(rows, func(i, j int) bool {
			return numOr(rows[i].MarketCap, 0) > numOr(rows[j].MarketCap, 0)
		})
	}
}
