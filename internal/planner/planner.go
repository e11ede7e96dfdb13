// Package planner classifies free-text finance questions into plans.
// Classification is an ordered set of keyword and regex checks; first
// match wins, and the ordering is part of the contract.
package planner

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"finq/internal/model"
)

var metricAliases = []struct {
	metric  model.Metric
	aliases []string
}{
	{model.MetricRevenue, []string{"revenue", "sales", "top line"}},
	{model.MetricGrossMargin, []string{"gross margin", "gm%", "margin%", "margin %"}},
	{model.MetricGrossProfit, []string{"gross profit", "gp"}},
	{model.MetricCOGS, []string{"cogs", "cost of goods", "costs"}},
	{model.MetricOpex, []string{"opex", "operating expense", "expenses"}},
	{model.MetricEBITDA, []string{"ebitda", "operating income"}},
	{model.MetricEBITDAPct, []string{"ebitda %", "ebitda margin"}},
}

var trendWords = []string{"trend", "over time", "chart", "plot", "line", "last", "history", "trailing"}

var budgetPhrases = []string{"vs budget", "versus budget", "budget", "variance"}

var (
	monthNameRe = regexp.MustCompile(`\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(20\d{2})\b`)
	isoMonthRe  = regexp.MustCompile(`\b(20\d{2})-(0[1-9]|1[0-2])\b`)
	lastNRe     = regexp.MustCompile(`last (\d+) month`)
	trailingNRe = regexp.MustCompile(`trailing (\d+)`)
)

var monthByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Parse classifies a question. Pure and deterministic; there is no
// error path — anything unrecognized degrades to a point lookup of
// revenue for the latest month.
func Parse(question string) model.Plan {
	q := strings.ToLower(question)

	if strings.Contains(q, "cash runway") ||
		(strings.Contains(q, "cash") && strings.Contains(q, "runway")) {
		return model.Plan{Intent: model.IntentCashRunway}
	}

	metric := MatchMetric(q)
	month := MatchMonth(q)
	months := detectTrailing(q)
	compare := detectCompareBudget(q)

	if strings.Contains(q, "break down") || strings.Contains(q, "breakdown") ||
		strings.Contains(q, "by category") {
		return model.Plan{
			Intent:        model.IntentBreakdown,
			Metric:        model.MetricOpex,
			Month:         month,
			CompareBudget: compare,
		}
	}

	for _, w := range trendWords {
		if strings.Contains(q, w) {
			return model.Plan{
				Intent:        model.IntentTrend,
				Metric:        metric,
				Months:        months,
				CompareBudget: compare,
			}
		}
	}

	return model.Plan{
		Intent:        model.IntentPoint,
		Metric:        metric,
		Month:         month,
		CompareBudget: compare,
	}
}

// MatchMetric returns the first metric whose alias appears in the
// text, defaulting to revenue. Matching is case-insensitive.
func MatchMetric(q string) model.Metric {
	q = strings.ToLower(q)
	for _, entry := range metricAliases {
		for _, alias := range entry.aliases {
			if strings.Contains(q, alias) {
				return entry.metric
			}
		}
	}
	return model.MetricRevenue
}

// MatchMonth finds "<month-name> <4-digit-year>" or "YYYY-MM" in the
// text and returns the month start, or the zero time. Matching is
// case-insensitive; unparseable month text is treated as absent,
// never an error.
func MatchMonth(q string) time.Time {
	q = strings.ToLower(q)
	if m := monthNameRe.FindStringSubmatch(q); m != nil {
		year, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}
		}
		return time.Date(year, monthByPrefix[m[1]], 1, 0, 0, 0, 0, time.UTC)
	}
	if m := isoMonthRe.FindStringSubmatch(q); m != nil {
		year, err1 := strconv.Atoi(m[1])
		monthNum, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			return time.Time{}
		}
		return time.Date(year, time.Month(monthNum), 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}

func detectTrailing(q string) int {
	for _, re := range []*regexp.Regexp{lastNRe, trailingNRe} {
		if m := re.FindStringSubmatch(q); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}
	return 0
}

func detectCompareBudget(q string) bool {
	for _, phrase := range budgetPhrases {
		if strings.Contains(q, phrase) {
			return true
		}
	}
	return false
}
