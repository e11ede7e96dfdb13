// Package model defines domain types for finq ledgers, metrics, and plans.
package model

import "time"

// Scenario distinguishes actual from budget ledger data.
type Scenario string

// Scenario values.
const (
	ScenarioActual Scenario = "actual"
	ScenarioBudget Scenario = "budget"
)

// LedgerRow is one monthly P&L line as loaded from CSV.
// Date is normalized to the first of its month. Account is a
// colon-delimited "Group:Category" string.
type LedgerRow struct {
	Date      time.Time
	Account   string
	Currency  string
	Amount    float64
	AmountUSD float64
	Entity    string
}

// FXRate is one month's conversion rate to USD for a currency.
// Keyed uniquely by (Date, Currency); duplicate source rows are
// resolved last-write-wins.
type FXRate struct {
	Date      time.Time
	Currency  string
	RateToUSD float64
}

// CashBalance is the cash position at the end of one month.
type CashBalance struct {
	Date    time.Time
	Balance float64
}
