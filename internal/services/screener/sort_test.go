package screener

import (
	"testing"

	"github.com/fizenhive/fizen/internal/models"
)

func tickersOf(rows []models.ScreenerRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Ticker
	}
	return out
}

func assertOrder(t *testing.T, rows []models.ScreenerRow, want ...string) {
	t.Helper()
	got := tickersOf(rows)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSortRowsLowestPENullsLast(t *testing.T) {
	rows := []models.ScreenerRow{
		{Ticker: "NULL1"},
		{Ticker: "NEG", PE: fptr(-5)},
		{Ticker: "NULL2"},
		{Ticker: "LOW", PE: fptr(8)},
		{Ticker: "HIGH", PE: fptr(30)},
	}

	sortRows(rows, models.FilterLowestPE)

	// Negative P/E still ranks before nulls
	assertOrder(t, rows, "NEG", "LOW", "HIGH", "NULL1", "NULL2")
}

func TestSortRowsGainersAndLosers(t *testing.T) {
	build := func() []models.ScreenerRow {
		return []models.ScreenerRow{
			{Ticker: "A", Change: -2.5},
			{Ticker: "B", Change: 4.0},
			{Ticker: "C", Change: 0.5},
		}
	}

	rows := build()
	sortRows(rows, models.FilterDayGainers)
	assertOrder(t, rows, "B", "C", "A")

	rows = build()
	sortRows(rows, models.FilterDayLosers)
	assertOrder(t, rows, "A", "C", "B")
}

func TestSortRowsRevenueGrowthZeroSortsLast(t *testing.T) {
	// A reported zero falls through to the -9999 default like a missing
	// value, so it trails every real growth figure including negatives
	rows := []models.ScreenerRow{
		{Ticker: "ZERO", RevenueGrowth: fptr(0)},
		{Ticker: "NEG", RevenueGrowth: fptr(-3)},
		{Ticker: "POS", RevenueGrowth: fptr(12)},
		{Ticker: "NONE"},
	}

	sortRows(rows, models.FilterHighestRevGrowth)

	assertOrder(t, rows, "POS", "NEG", "ZERO", "NONE")
}

func TestSortRowsFiftyTwoWeekLowGainers(t *testing.T) {
	rows := []models.ScreenerRow{
		{Ticker: "UP", FiftyTwoWeekChange: fptr(40)},
		{Ticker: "DOWN", FiftyTwoWeekChange: fptr(-30)},
		{Ticker: "NONE"},
	}

	sortRows(rows, models.FilterFiftyTwoWeekLow)

	// Ascending change, missing values pushed to the back via +9999
	assertOrder(t, rows, "DOWN", "UP", "NONE")
}

func TestSortRowsUnknownModeFallsBackToMarketCap(t *testing.T) {
	rows := []models.ScreenerRow{
		{Ticker: "SMALL", MarketCap: fptr(1e9)},
		{Ticker: "BIG", MarketCap: fptr(5e11)},
		{Ticker: "NONE"},
	}

	sortRows(rows, "Something Else")

	assertOrder(t, rows, "BIG", "SMALL", "NONE")
}

func TestSortRowsMostActiveNullsAsZero(t *testing.T) {
	rows := []models.ScreenerRow{
		{Ticker: "QUIET", Volume: fptr(1e5)},
		{Ticker: "NONE"},
		{Ticker: "BUSY", Volume: fptr(9e7)},
	}

	sortRows(rows, models.FilterMostActive)

	assertOrder(t, rows, "BUSY", "QUIET", "NONE")
}
