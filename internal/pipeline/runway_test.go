package pipeline

import (
	"math"
	"testing"
	"time"

	"finq/internal/model"
)

func burnMonths(t *testing.T, ebitdas ...float64) []model.MonthlySummary {
	t.Helper()
	out := make([]model.MonthlySummary, len(ebitdas))
	for i, e := range ebitdas {
		out[i] = model.MonthlySummary{
			Month:  month(2025, time.Month(i+1)),
			EBITDA: e,
		}
	}
	return out
}

func TestRunway_Finite(t *testing.T) {
	summaries := burnMonths(t, -100, -50000, -50000, -50000)
	cash := []model.CashBalance{
		{Date: month(2025, time.March), Balance: 900000},
		{Date: month(2025, time.April), Balance: 600000},
	}

	stats := Runway(summaries, cash, 3)
	if stats.AvgBurn != 50000 {
		t.Errorf("AvgBurn = %v, want 50000 (trailing 3, first month excluded)", stats.AvgBurn)
	}
	if stats.Cash != 600000 {
		t.Errorf("Cash = %v, want latest balance 600000", stats.Cash)
	}
	if math.Abs(stats.Months-12) > 1e-9 {
		t.Errorf("Months = %v, want 12", stats.Months)
	}
}

func TestRunway_InfiniteWhenNotBurning(t *testing.T) {
	summaries := burnMonths(t, 10000, 5000, 2000)
	cash := []model.CashBalance{{Date: month(2025, time.March), Balance: 100000}}

	stats := Runway(summaries, cash, 3)
	if !stats.Infinite() {
		t.Errorf("Months = %v, want +Inf for cash-flow-positive window", stats.Months)
	}
}

func TestRunway_BreakevenIsInfinite(t *testing.T) {
	summaries := burnMonths(t, 0, 0, 0)
	cash := []model.CashBalance{{Date: month(2025, time.March), Balance: 100000}}

	if stats := Runway(summaries, cash, 3); !stats.Infinite() {
		t.Errorf("Months = %v, want +Inf at breakeven", stats.Months)
	}
}

func TestRunway_ShortHistoryAveragesWhatExists(t *testing.T) {
	summaries := burnMonths(t, -30000)
	cash := []model.CashBalance{{Date: month(2025, time.January), Balance: 90000}}

	stats := Runway(summaries, cash, 3)
	if stats.AvgBurn != 30000 {
		t.Errorf("AvgBurn = %v, want 30000 with one month of history", stats.AvgBurn)
	}
	if math.Abs(stats.Months-3) > 1e-9 {
		t.Errorf("Months = %v, want 3", stats.Months)
	}
}

func TestRunway_LatestCashByDate(t *testing.T) {
	summaries := burnMonths(t, -10000)
	cash := []model.CashBalance{
		{Date: month(2025, time.February), Balance: 50000},
		{Date: month(2025, time.January), Balance: 99999},
	}

	if stats := Runway(summaries, cash, 3); stats.Cash != 50000 {
		t.Errorf("Cash = %v, want 50000 (max date, not input order)", stats.Cash)
	}
}

func TestRunway_SameMonthLastRowWins(t *testing.T) {
	summaries := burnMonths(t, -10000)
	// Source dates within one month truncate to the same month start;
	// the later row in file order is the restated balance.
	cash := []model.CashBalance{
		{Date: month(2025, time.June), Balance: 150000},
		{Date: month(2025, time.June), Balance: 120000},
	}

	if stats := Runway(summaries, cash, 3); stats.Cash != 120000 {
		t.Errorf("Cash = %v, want 120000 (last row for the month)", stats.Cash)
	}
}

func TestRunway_NoDataIsNaN(t *testing.T) {
	stats := Runway(nil, nil, 3)
	if !math.IsNaN(stats.Months) || !math.IsNaN(stats.Cash) {
		t.Errorf("stats = %+v, want NaN fields with no data", stats)
	}
}
