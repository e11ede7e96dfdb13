package pipeline

import (
	"math"
	"testing"
	"time"

	"finq/internal/model"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func usd(date time.Time, account string, amount float64) model.LedgerRow {
	return model.LedgerRow{
		Date:      date,
		Account:   account,
		Currency:  "USD",
		Amount:    amount,
		AmountUSD: amount,
		Entity:    "Total",
	}
}

func TestSummarize_DerivedColumns(t *testing.T) {
	jun := month(2025, time.June)
	rows := []model.LedgerRow{
		usd(jun, "Revenue:Subscriptions", 80000),
		usd(jun, "Revenue:Services", 20000),
		usd(jun, "COGS:Hosting", 30000),
		usd(jun, "Opex:Marketing", 25000),
		usd(jun, "Opex:R&D", 15000),
	}

	summaries := Summarize(rows)
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(summaries))
	}
	s := summaries[0]

	if s.Revenue != 100000 {
		t.Errorf("Revenue = %v, want 100000", s.Revenue)
	}
	if s.GrossProfit != s.Revenue-s.COGS {
		t.Errorf("GrossProfit = %v, want Revenue-COGS = %v", s.GrossProfit, s.Revenue-s.COGS)
	}
	if s.EBITDA != s.Revenue-s.COGS-s.Opex {
		t.Errorf("EBITDA = %v, want Revenue-COGS-Opex = %v", s.EBITDA, s.Revenue-s.COGS-s.Opex)
	}
	if s.GrossMarginPct != 70 {
		t.Errorf("GrossMarginPct = %v, want 70", s.GrossMarginPct)
	}
	if s.EBITDAPct != 30 {
		t.Errorf("EBITDAPct = %v, want 30", s.EBITDAPct)
	}
}

func TestSummarize_ZeroRevenueUndefinedPercents(t *testing.T) {
	jun := month(2025, time.June)
	summaries := Summarize([]model.LedgerRow{
		usd(jun, "Opex:Marketing", 5000),
	})

	s := summaries[0]
	if !math.IsNaN(s.GrossMarginPct) {
		t.Errorf("GrossMarginPct = %v, want NaN when Revenue is zero", s.GrossMarginPct)
	}
	if !math.IsNaN(s.EBITDAPct) {
		t.Errorf("EBITDAPct = %v, want NaN when Revenue is zero", s.EBITDAPct)
	}
	if s.EBITDA != -5000 {
		t.Errorf("EBITDA = %v, want -5000", s.EBITDA)
	}
}

func TestSummarize_OtherExcluded(t *testing.T) {
	jun := month(2025, time.June)
	summaries := Summarize([]model.LedgerRow{
		usd(jun, "Revenue", 1000),
		usd(jun, "Depreciation:Equipment", 400),
		usd(jun, "Interest", 100),
	})

	s := summaries[0]
	if s.Revenue != 1000 || s.COGS != 0 || s.Opex != 0 {
		t.Errorf("unrecognized prefixes leaked into sums: %+v", s)
	}
}

func TestSummarize_SortedAscending(t *testing.T) {
	summaries := Summarize([]model.LedgerRow{
		usd(month(2025, time.June), "Revenue", 3),
		usd(month(2025, time.April), "Revenue", 1),
		usd(month(2025, time.May), "Revenue", 2),
	})

	if len(summaries) != 3 {
		t.Fatalf("summaries = %d, want 3", len(summaries))
	}
	for i := 1; i < len(summaries); i++ {
		if !summaries[i-1].Month.Before(summaries[i].Month) {
			t.Fatalf("months out of order: %v before %v",
				summaries[i-1].Month, summaries[i].Month)
		}
	}
}

func TestClassify_CaseInsensitivePrefix(t *testing.T) {
	cases := []struct {
		account string
		want    Class
	}{
		{"Revenue:Subscriptions", ClassRevenue},
		{"REVENUE", ClassRevenue},
		{"cogs:Hosting", ClassCOGS},
		{"Opex:Marketing", ClassOpex},
		{" opex : Travel", ClassOpex},
		{"Depreciation:Equipment", ClassOther},
		{"", ClassOther},
	}
	for _, tc := range cases {
		if got := Classify(tc.account); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.account, got, tc.want)
		}
	}
}

func TestSubcategory(t *testing.T) {
	cases := []struct {
		account string
		want    string
	}{
		{"Opex:Marketing", "Marketing"},
		{"Opex: Sales Tools ", "Sales Tools"},
		{"Opex", "Other"},
		{"Opex:", "Other"},
	}
	for _, tc := range cases {
		if got := Subcategory(tc.account); got != tc.want {
			t.Errorf("Subcategory(%q) = %q, want %q", tc.account, got, tc.want)
		}
	}
}

func TestMetricPoint_Variance(t *testing.T) {
	jun := month(2025, time.June)
	actual := Summarize([]model.LedgerRow{usd(jun, "Revenue", 100000)})
	budget := Summarize([]model.LedgerRow{usd(jun, "Revenue", 90000)})

	p := MetricPoint(actual, budget, model.MetricRevenue, jun)
	if p.Variance != 10000 {
		t.Errorf("Variance = %v, want 10000", p.Variance)
	}
	if math.Abs(p.VariancePct-11.111111) > 0.001 {
		t.Errorf("VariancePct = %v, want ~11.11", p.VariancePct)
	}
}

func TestMetricPoint_MissingMonth(t *testing.T) {
	jun := month(2025, time.June)
	actual := Summarize([]model.LedgerRow{usd(jun, "Revenue", 100000)})

	p := MetricPoint(actual, nil, model.MetricRevenue, month(2025, time.July))
	if !math.IsNaN(p.Actual) || !math.IsNaN(p.Budget) || !math.IsNaN(p.Variance) {
		t.Errorf("expected all NaN for missing month, got %+v", p)
	}
}

func TestMetricTrend_TrailingWindow(t *testing.T) {
	actual := Summarize([]model.LedgerRow{
		usd(month(2025, time.April), "Revenue", 1),
		usd(month(2025, time.May), "Revenue", 2),
		usd(month(2025, time.June), "Revenue", 3),
	})

	points := MetricTrend(actual, nil, model.MetricRevenue, 2)
	if len(points) != 2 {
		t.Fatalf("points = %d, want 2", len(points))
	}
	if !points[0].Month.Equal(month(2025, time.May)) {
		t.Errorf("first month = %v, want May (trailing tail)", points[0].Month)
	}
	if !math.IsNaN(points[0].Budget) {
		t.Errorf("Budget = %v, want NaN with no budget data", points[0].Budget)
	}
}
