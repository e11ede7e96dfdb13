package engine

import (
	"fmt"
	"math"
	"strings"
	"time"

	"finq/internal/cli"
	"finq/internal/model"
)

func formatPoint(metric model.Metric, month time.Time, p model.MetricPoint) string {
	lines := []string{
		fmt.Sprintf("%s — %s", metric.Display(), cli.FormatMonth(month)),
	}
	if !math.IsNaN(p.Actual) {
		lines = append(lines, "Actual: "+cli.FormatMetricValue(metric, p.Actual))
	}
	if !math.IsNaN(p.Budget) {
		lines = append(lines, "Budget: "+cli.FormatMetricValue(metric, p.Budget))
	}
	if !math.IsNaN(p.Variance) {
		// Percent-of-budget annotation only makes sense for currency
		// metrics; a percentage metric's variance already is one.
		if !math.IsNaN(p.VariancePct) && !metric.IsPercent() {
			lines = append(lines, fmt.Sprintf("Variance: %s (%s)",
				cli.FormatMetricValue(metric, p.Variance),
				cli.FormatSignedPercent(p.VariancePct)))
		} else {
			lines = append(lines, "Variance: "+cli.FormatMetricValue(metric, p.Variance))
		}
	}
	if len(lines) == 1 {
		lines = append(lines, "No data for this month.")
	}
	return strings.Join(lines, "\n")
}

func formatTrend(metric model.Metric, points []model.TrendPoint) string {
	first := points[0].Month
	last := points[len(points)-1].Month
	return fmt.Sprintf("Showing %s trend from %s to %s.",
		metric.Display(), cli.FormatMonth(first), cli.FormatMonth(last))
}

func formatBreakdown(month time.Time, table []model.CategoryAmount) string {
	if len(table) == 0 {
		return fmt.Sprintf("No Opex recorded for %s.", cli.FormatMonth(month))
	}
	var total float64
	for _, row := range table {
		total += row.Actual
	}
	return fmt.Sprintf("Opex breakdown for %s. Total actual spend: %s.",
		cli.FormatMonth(month), cli.FormatCurrency(total))
}

func formatRunway(stats model.RunwayStats) string {
	if math.IsNaN(stats.Months) {
		return "I could not find cash balances and actuals to compute runway from."
	}
	if stats.Infinite() {
		return fmt.Sprintf("Cash runway: %s of cash and a positive or neutral operating run rate. "+
			"The company is not burning cash over the trailing period.",
			cli.FormatCurrency(stats.Cash))
	}
	return fmt.Sprintf("Cash runway: %s on hand, average burn %s per month. Runway ≈ %.1f months.",
		cli.FormatCurrency(stats.Cash), cli.FormatCurrency(stats.AvgBurn), stats.Months)
}
