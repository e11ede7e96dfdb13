package model

import (
	"strings"
	"time"
)

// Intent is the kind of question the planner recognized.
type Intent string

// Intent values.
const (
	IntentCashRunway Intent = "cash_runway"
	IntentBreakdown  Intent = "breakdown"
	IntentTrend      Intent = "trend"
	IntentPoint      Intent = "point"
)

// Metric identifies a P&L metric column.
type Metric string

// Metric values. The names match the planner's alias table keys.
const (
	MetricRevenue     Metric = "revenue"
	MetricCOGS        Metric = "cogs"
	MetricGrossProfit Metric = "gross profit"
	MetricGrossMargin Metric = "gross margin %"
	MetricOpex        Metric = "opex"
	MetricEBITDA      Metric = "ebitda"
	MetricEBITDAPct   Metric = "ebitda %"
)

var metricDisplay = map[Metric]string{
	MetricRevenue:     "Revenue",
	MetricCOGS:        "COGS",
	MetricGrossProfit: "Gross Profit",
	MetricGrossMargin: "Gross Margin %",
	MetricOpex:        "Opex",
	MetricEBITDA:      "EBITDA",
	MetricEBITDAPct:   "EBITDA %",
}

// Display returns the human-readable metric name.
func (m Metric) Display() string {
	if name, ok := metricDisplay[m]; ok {
		return name
	}
	return strings.Title(string(m)) //nolint:staticcheck // metric names are ASCII
}

// IsPercent reports whether the metric is itself a percentage, which
// changes how values and variances are formatted.
func (m Metric) IsPercent() bool {
	return strings.Contains(string(m), "%")
}

// Plan is the planner's classification of one question. Month is the
// zero time when the question named no month; Months is zero when no
// trailing window was given.
type Plan struct {
	Intent        Intent
	Metric        Metric
	Month         time.Time
	Months        int
	CompareBudget bool
}
