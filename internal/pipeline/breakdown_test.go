package pipeline

import (
	"testing"
	"time"

	"finq/internal/model"
)

func TestOpexBreakdown_SortedDescending(t *testing.T) {
	jun := month(2025, time.June)
	actual := []model.LedgerRow{
		usd(jun, "Opex:Marketing", 25000),
		usd(jun, "Opex:R&D", 40000),
		usd(jun, "Opex:Travel", 5000),
		usd(jun, "Revenue:Subscriptions", 100000),
	}

	rows := OpexBreakdown(actual, nil, jun)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	want := []string{"R&D", "Marketing", "Travel"}
	for i, w := range want {
		if rows[i].Category != w {
			t.Errorf("rows[%d].Category = %q, want %q", i, rows[i].Category, w)
		}
	}
}

func TestOpexBreakdown_MatchesAggregateOpex(t *testing.T) {
	jun := month(2025, time.June)
	actual := []model.LedgerRow{
		usd(jun, "Opex:Marketing", 25000),
		usd(jun, "Opex:R&D", 40000),
		usd(jun, "Opex", 1000), // no sub-category
		usd(jun, "COGS:Hosting", 9999),
	}

	rows := OpexBreakdown(actual, nil, jun)
	var total float64
	for _, r := range rows {
		total += r.Actual
	}

	summaries := Summarize(actual)
	s, ok := SummaryFor(summaries, jun)
	if !ok {
		t.Fatal("no summary for June")
	}
	if total != s.Opex {
		t.Errorf("breakdown total = %v, aggregate Opex = %v; must match", total, s.Opex)
	}
}

func TestOpexBreakdown_NoColonFallsToOther(t *testing.T) {
	jun := month(2025, time.June)
	rows := OpexBreakdown([]model.LedgerRow{usd(jun, "Opex", 500)}, nil, jun)

	if len(rows) != 1 || rows[0].Category != "Other" {
		t.Fatalf("rows = %+v, want one Other category", rows)
	}
}

func TestOpexBreakdown_EmptyMonthIsNotError(t *testing.T) {
	jun := month(2025, time.June)
	jul := month(2025, time.July)
	rows := OpexBreakdown([]model.LedgerRow{usd(jun, "Opex:Marketing", 100)}, nil, jul)

	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0 for a month with no Opex", len(rows))
	}
}

func TestOpexBreakdown_IncludesBudgetOnlyCategories(t *testing.T) {
	jun := month(2025, time.June)
	actual := []model.LedgerRow{usd(jun, "Opex:Marketing", 100)}
	budget := []model.LedgerRow{
		usd(jun, "Opex:Marketing", 120),
		usd(jun, "Opex:Recruiting", 80),
	}

	rows := OpexBreakdown(actual, budget, jun)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	found := false
	for _, r := range rows {
		if r.Category == "Recruiting" && r.Actual == 0 && r.Budget == 80 {
			found = true
		}
	}
	if !found {
		t.Errorf("budget-only category missing: %+v", rows)
	}
}
