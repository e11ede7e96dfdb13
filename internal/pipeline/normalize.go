package pipeline

import (
	"strings"
	"time"

	"finq/internal/model"
)

type fxKey struct {
	date     time.Time
	currency string
}

// FXTable indexes FX rates by (date, currency) for conversion lookups.
type FXTable map[fxKey]float64

// BuildFXTable indexes a rate slice. Later entries for the same
// (date, currency) overwrite earlier ones.
func BuildFXTable(rates []model.FXRate) FXTable {
	t := make(FXTable, len(rates))
	for _, r := range rates {
		t[fxKey{r.Date, strings.ToUpper(r.Currency)}] = r.RateToUSD
	}
	return t
}

// Rate returns the conversion rate for (date, currency), defaulting to
// 1.0 when no rate is known. The implicit USD-equivalence assumption is
// deliberate; a missing rate is not an error.
func (t FXTable) Rate(date time.Time, currency string) float64 {
	if rate, ok := t[fxKey{date, strings.ToUpper(currency)}]; ok {
		return rate
	}
	return 1.0
}

// Normalize fills AmountUSD on every row by joining to the FX table.
// Pure: the input slice is not modified.
func Normalize(rows []model.LedgerRow, fx FXTable) []model.LedgerRow {
	out := make([]model.LedgerRow, len(rows))
	for i, r := range rows {
		r.AmountUSD = r.Amount * fx.Rate(r.Date, r.Currency)
		out[i] = r
	}
	return out
}
