package model

import (
	"math"
	"time"
)

// MonthlySummary holds one scenario's derived P&L for a single month.
// Percentage fields are NaN when Revenue is zero (undefined, not zero).
type MonthlySummary struct {
	Month          time.Time
	Revenue        float64
	COGS           float64
	Opex           float64
	GrossProfit    float64
	GrossMarginPct float64
	EBITDA         float64
	EBITDAPct      float64
}

// Value returns the named metric column from the summary.
func (s MonthlySummary) Value(m Metric) float64 {
	switch m {
	case MetricRevenue:
		return s.Revenue
	case MetricCOGS:
		return s.COGS
	case MetricOpex:
		return s.Opex
	case MetricGrossProfit:
		return s.GrossProfit
	case MetricGrossMargin:
		return s.GrossMarginPct
	case MetricEBITDA:
		return s.EBITDA
	case MetricEBITDAPct:
		return s.EBITDAPct
	default:
		return math.NaN()
	}
}

// MetricPoint holds point-in-time actual vs budget values for one metric.
// NaN marks a missing value (no data for the month/scenario).
type MetricPoint struct {
	Actual      float64
	Budget      float64
	Variance    float64
	VariancePct float64
}

// TrendPoint is one month's actual and budget value for a metric.
// Budget is NaN when no budget data exists for the month.
type TrendPoint struct {
	Month  time.Time
	Actual float64
	Budget float64
}

// CategoryAmount is one Opex sub-category's actual and budget spend
// for a month.
type CategoryAmount struct {
	Category string
	Actual   float64
	Budget   float64
}

// RunwayStats holds the cash runway computation result.
// Months is +Inf when average burn is zero or negative, and NaN when
// there is no history to compute from.
type RunwayStats struct {
	Cash    float64
	AvgBurn float64
	Months  float64
}

// Infinite reports whether the runway is effectively unlimited over
// the trailing window.
func (r RunwayStats) Infinite() bool {
	return math.IsInf(r.Months, 1)
}
