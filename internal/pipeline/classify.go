// Package pipeline turns raw ledger rows into USD-normalized monthly
// aggregates, breakdowns, and runway figures.
package pipeline

import "strings"

// Class is the P&L bucket an account classifies into.
type Class int

// Class values.
const (
	ClassRevenue Class = iota
	ClassCOGS
	ClassOpex
	ClassOther
)

// Classify buckets an account by the case-insensitive prefix before the
// first colon. Unrecognized prefixes fall into ClassOther and are
// excluded from Revenue/COGS/Opex sums.
func Classify(account string) Class {
	group := account
	if i := strings.Index(account, ":"); i >= 0 {
		group = account[:i]
	}
	switch strings.ToLower(strings.TrimSpace(group)) {
	case "revenue":
		return ClassRevenue
	case "cogs":
		return ClassCOGS
	case "opex":
		return ClassOpex
	default:
		return ClassOther
	}
}

// Subcategory returns the account text after the first colon, or
// "Other" when the account has no colon.
func Subcategory(account string) string {
	if i := strings.Index(account, ":"); i >= 0 {
		if sub := strings.TrimSpace(account[i+1:]); sub != "" {
			return sub
		}
	}
	return "Other"
}
