package pipeline

import (
	"math"
	"sort"
	"time"

	"finq/internal/model"
)

// Summarize pivots USD-normalized rows into one MonthlySummary per
// observed month, sorted ascending. Months always carry all three
// class columns (zero when absent); percentage columns are NaN when
// Revenue is zero.
func Summarize(rows []model.LedgerRow) []model.MonthlySummary {
	buckets := make(map[time.Time]*model.MonthlySummary)

	for _, r := range rows {
		class := Classify(r.Account)
		if class == ClassOther {
			continue
		}
		s, ok := buckets[r.Date]
		if !ok {
			s = &model.MonthlySummary{Month: r.Date}
			buckets[r.Date] = s
		}
		switch class {
		case ClassRevenue:
			s.Revenue += r.AmountUSD
		case ClassCOGS:
			s.COGS += r.AmountUSD
		case ClassOpex:
			s.Opex += r.AmountUSD
		}
	}

	summaries := make([]model.MonthlySummary, 0, len(buckets))
	for _, s := range buckets {
		s.GrossProfit = s.Revenue - s.COGS
		s.EBITDA = s.Revenue - s.COGS - s.Opex
		if s.Revenue != 0 {
			s.GrossMarginPct = s.GrossProfit / s.Revenue * 100
			s.EBITDAPct = s.EBITDA / s.Revenue * 100
		} else {
			s.GrossMarginPct = math.NaN()
			s.EBITDAPct = math.NaN()
		}
		summaries = append(summaries, *s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Month.Before(summaries[j].Month)
	})

	return summaries
}

// SummaryFor returns the summary row for a month, if present.
func SummaryFor(summaries []model.MonthlySummary, month time.Time) (model.MonthlySummary, bool) {
	for _, s := range summaries {
		if s.Month.Equal(month) {
			return s, true
		}
	}
	return model.MonthlySummary{}, false
}

// LatestMonth returns the most recent month in the summaries, or the
// zero time when there are none. Summaries are sorted ascending.
func LatestMonth(summaries []model.MonthlySummary) time.Time {
	if len(summaries) == 0 {
		return time.Time{}
	}
	return summaries[len(summaries)-1].Month
}

// MetricValue looks up one metric for one month, NaN when the month is
// absent.
func MetricValue(summaries []model.MonthlySummary, m model.Metric, month time.Time) float64 {
	s, ok := SummaryFor(summaries, month)
	if !ok {
		return math.NaN()
	}
	return s.Value(m)
}

// MetricPoint computes actual vs budget for one metric and month.
// Variance and VariancePct are NaN when either side is missing;
// VariancePct is additionally NaN when budget is zero.
func MetricPoint(actual, budget []model.MonthlySummary, m model.Metric, month time.Time) model.MetricPoint {
	p := model.MetricPoint{
		Actual:      MetricValue(actual, m, month),
		Budget:      MetricValue(budget, m, month),
		Variance:    math.NaN(),
		VariancePct: math.NaN(),
	}
	if !math.IsNaN(p.Actual) && !math.IsNaN(p.Budget) {
		p.Variance = p.Actual - p.Budget
		if p.Budget != 0 {
			p.VariancePct = p.Variance / p.Budget * 100
		}
	}
	return p
}

// MetricTrend builds the per-month series for one metric across both
// scenarios. Budget is NaN for months with no budget row. A positive
// months limits the series to its trailing tail.
func MetricTrend(actual, budget []model.MonthlySummary, m model.Metric, months int) []model.TrendPoint {
	points := make([]model.TrendPoint, 0, len(actual))
	for _, s := range actual {
		points = append(points, model.TrendPoint{
			Month:  s.Month,
			Actual: s.Value(m),
			Budget: MetricValue(budget, m, s.Month),
		})
	}
	if months > 0 && len(points) > months {
		points = points[len(points)-months:]
	}
	return points
}
