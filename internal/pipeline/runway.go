package pipeline

import (
	"math"

	"finq/internal/model"
)

// DefaultTrailingMonths is the burn-rate window when a question names
// none.
const DefaultTrailingMonths = 3

// Runway computes the trailing-average net burn and months of cash
// left. Net burn per month is -EBITDA. Shorter history than the window
// is averaged as-is; a non-positive average burn means the company is
// cash-flow-positive over the window and runway is +Inf. With no
// summaries or cash rows everything is NaN.
func Runway(summaries []model.MonthlySummary, cash []model.CashBalance, trailing int) model.RunwayStats {
	nan := math.NaN()
	if len(summaries) == 0 || len(cash) == 0 {
		return model.RunwayStats{Cash: nan, AvgBurn: nan, Months: nan}
	}
	if trailing <= 0 {
		trailing = DefaultTrailingMonths
	}

	window := summaries
	if len(window) > trailing {
		window = window[len(window)-trailing:]
	}

	var totalBurn float64
	for _, s := range window {
		totalBurn += -s.EBITDA
	}
	avgBurn := totalBurn / float64(len(window))

	// Dates are month-truncated, so duplicates within a month resolve
	// to the last source row.
	latest := cash[0]
	for _, c := range cash[1:] {
		if !c.Date.Before(latest.Date) {
			latest = c
		}
	}

	stats := model.RunwayStats{Cash: latest.Balance, AvgBurn: avgBurn}
	if avgBurn <= 0 {
		stats.Months = math.Inf(1)
	} else {
		stats.Months = latest.Balance / avgBurn
	}
	return stats
}
