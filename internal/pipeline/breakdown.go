package pipeline

import (
	"sort"
	"time"

	"finq/internal/model"
)

// OpexBreakdown sums Opex-classified rows by sub-category for one
// month, actual and budget side by side, sorted by actual spend
// descending. An empty result (no Opex rows that month) is not an
// error.
func OpexBreakdown(actual, budget []model.LedgerRow, month time.Time) []model.CategoryAmount {
	actualSums := sumOpexByCategory(actual, month)
	budgetSums := sumOpexByCategory(budget, month)

	categories := make(map[string]struct{}, len(actualSums)+len(budgetSums))
	for c := range actualSums {
		categories[c] = struct{}{}
	}
	for c := range budgetSums {
		categories[c] = struct{}{}
	}

	out := make([]model.CategoryAmount, 0, len(categories))
	for c := range categories {
		out = append(out, model.CategoryAmount{
			Category: c,
			Actual:   actualSums[c],
			Budget:   budgetSums[c],
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Actual != out[j].Actual {
			return out[i].Actual > out[j].Actual
		}
		if out[i].Budget != out[j].Budget {
			return out[i].Budget > out[j].Budget
		}
		return out[i].Category < out[j].Category
	})

	return out
}

func sumOpexByCategory(rows []model.LedgerRow, month time.Time) map[string]float64 {
	sums := make(map[string]float64)
	for _, r := range rows {
		if !r.Date.Equal(month) || Classify(r.Account) != ClassOpex {
			continue
		}
		sums[Subcategory(r.Account)] += r.AmountUSD
	}
	return sums
}
