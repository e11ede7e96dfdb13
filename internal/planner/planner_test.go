package planner

import (
	"testing"
	"time"

	"finq/internal/model"
)

func mustPlanMonth(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestParse_PointWithBudget(t *testing.T) {
	plan := Parse("What was June 2025 revenue vs budget?")

	if plan.Intent != model.IntentPoint {
		t.Errorf("Intent = %q, want point", plan.Intent)
	}
	if plan.Metric != model.MetricRevenue {
		t.Errorf("Metric = %q, want revenue", plan.Metric)
	}
	if !plan.Month.Equal(mustPlanMonth(2025, time.June)) {
		t.Errorf("Month = %v, want 2025-06", plan.Month)
	}
	if !plan.CompareBudget {
		t.Error("CompareBudget = false, want true")
	}
}

func TestParse_Trend(t *testing.T) {
	plan := Parse("Show Gross Margin % trend for the last 3 months.")

	if plan.Intent != model.IntentTrend {
		t.Errorf("Intent = %q, want trend", plan.Intent)
	}
	if plan.Metric != model.MetricGrossMargin {
		t.Errorf("Metric = %q, want gross margin %%", plan.Metric)
	}
	if plan.Months != 3 {
		t.Errorf("Months = %d, want 3", plan.Months)
	}
}

func TestParse_Breakdown(t *testing.T) {
	plan := Parse("Break down Opex by category for June 2025.")

	if plan.Intent != model.IntentBreakdown {
		t.Errorf("Intent = %q, want breakdown", plan.Intent)
	}
	if plan.Metric != model.MetricOpex {
		t.Errorf("Metric = %q, want opex (forced)", plan.Metric)
	}
	if !plan.Month.Equal(mustPlanMonth(2025, time.June)) {
		t.Errorf("Month = %v, want 2025-06", plan.Month)
	}
}

func TestParse_CashRunwayWinsOverEverything(t *testing.T) {
	plan := Parse("What is our cash runway right now?")
	if plan.Intent != model.IntentCashRunway {
		t.Errorf("Intent = %q, want cash_runway", plan.Intent)
	}

	// Trend keywords present, runway still wins
	plan = Parse("Chart our cash runway trend over time")
	if plan.Intent != model.IntentCashRunway {
		t.Errorf("Intent = %q, want cash_runway despite trend keywords", plan.Intent)
	}

	// "cash" and "runway" apart also qualify
	plan = Parse("how much runway does our cash give us")
	if plan.Intent != model.IntentCashRunway {
		t.Errorf("Intent = %q, want cash_runway for split keywords", plan.Intent)
	}
}

func TestParse_DefaultsToRevenuePoint(t *testing.T) {
	plan := Parse("How are we doing?")

	if plan.Intent != model.IntentPoint {
		t.Errorf("Intent = %q, want point", plan.Intent)
	}
	if plan.Metric != model.MetricRevenue {
		t.Errorf("Metric = %q, want revenue (default)", plan.Metric)
	}
	if !plan.Month.IsZero() {
		t.Errorf("Month = %v, want zero (caller picks latest)", plan.Month)
	}
}

func TestParse_IsoMonth(t *testing.T) {
	plan := Parse("ebitda for 2025-09")

	if plan.Metric != model.MetricEBITDA {
		t.Errorf("Metric = %q, want ebitda", plan.Metric)
	}
	if !plan.Month.Equal(mustPlanMonth(2025, time.September)) {
		t.Errorf("Month = %v, want 2025-09", plan.Month)
	}
}

func TestParse_MonthNameVariants(t *testing.T) {
	cases := []struct {
		text string
		want time.Time
	}{
		{"revenue Jun 2025", mustPlanMonth(2025, time.June)},
		{"revenue june 2025", mustPlanMonth(2025, time.June)},
		{"revenue September 2024", mustPlanMonth(2024, time.September)},
		{"revenue sept 2024", mustPlanMonth(2024, time.September)},
	}
	for _, tc := range cases {
		if plan := Parse(tc.text); !plan.Month.Equal(tc.want) {
			t.Errorf("Parse(%q).Month = %v, want %v", tc.text, plan.Month, tc.want)
		}
	}
}

func TestParse_TrailingVariants(t *testing.T) {
	if plan := Parse("opex for the last 6 months"); plan.Months != 6 {
		t.Errorf("Months = %d, want 6", plan.Months)
	}
	if plan := Parse("trailing 12 ebitda trend"); plan.Months != 12 {
		t.Errorf("Months = %d, want 12", plan.Months)
	}
}

func TestParse_BudgetAloneSetsCompare(t *testing.T) {
	if plan := Parse("june 2025 opex against budget"); !plan.CompareBudget {
		t.Error("CompareBudget = false, want true for bare 'budget'")
	}
	if plan := Parse("revenue variance for June 2025"); !plan.CompareBudget {
		t.Error("CompareBudget = false, want true for 'variance'")
	}
}

func TestMatchMetric_FirstAliasWins(t *testing.T) {
	cases := []struct {
		text string
		want model.Metric
	}{
		{"how are sales", model.MetricRevenue},
		{"top line growth", model.MetricRevenue},
		{"gm% please", model.MetricGrossMargin},
		{"gross profit", model.MetricGrossProfit},
		{"cost of goods", model.MetricCOGS},
		{"operating expenses", model.MetricOpex},
		{"operating income", model.MetricEBITDA},
		{"nothing relevant", model.MetricRevenue},
	}
	for _, tc := range cases {
		if got := MatchMetric(tc.text); got != tc.want {
			t.Errorf("MatchMetric(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestMatchMetric_CaseInsensitive(t *testing.T) {
	// Flag values arrive with whatever casing the user typed.
	cases := []struct {
		text string
		want model.Metric
	}{
		{"Gross Margin", model.MetricGrossMargin},
		{"EBITDA", model.MetricEBITDA},
		{"Revenue", model.MetricRevenue},
		{"OPEX", model.MetricOpex},
	}
	for _, tc := range cases {
		if got := MatchMetric(tc.text); got != tc.want {
			t.Errorf("MatchMetric(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestMatchMonth_CaseInsensitive(t *testing.T) {
	want := mustPlanMonth(2025, time.June)
	for _, text := range []string{"June 2025", "JUNE 2025", "Jun 2025"} {
		if got := MatchMonth(text); !got.Equal(want) {
			t.Errorf("MatchMonth(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestParse_TrendKeywordLast(t *testing.T) {
	plan := Parse("revenue over the last 3 months")
	if plan.Intent != model.IntentTrend {
		t.Errorf("Intent = %q, want trend ('last' is a trend keyword)", plan.Intent)
	}
}
