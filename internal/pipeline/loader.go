package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"finq/internal/model"
	"finq/internal/source"
)

// Paths names the four CSV inputs.
type Paths struct {
	Actuals string
	Budget  string
	FX      string
	Cash    string
}

// All returns the paths in load order. The FX file is optional and may
// not exist on disk.
func (p Paths) All() []string {
	return []string{p.Actuals, p.Budget, p.FX, p.Cash}
}

// Dataset holds everything the engine needs, built once per load and
// read-only afterwards.
type Dataset struct {
	Actual        []model.LedgerRow
	Budget        []model.LedgerRow
	ActualSummary []model.MonthlySummary
	BudgetSummary []model.MonthlySummary
	Cash          []model.CashBalance
	SkippedRows   int
}

// Load reads and normalizes all four files and derives the monthly
// summaries for both scenarios.
func Load(p Paths) (*Dataset, error) {
	actuals, skippedA, err := source.ParseLedgerFile(p.Actuals)
	if err != nil {
		return nil, fmt.Errorf("loading actuals: %w", err)
	}
	budget, skippedB, err := source.ParseLedgerFile(p.Budget)
	if err != nil {
		return nil, fmt.Errorf("loading budget: %w", err)
	}
	rates, skippedF, err := source.ParseFXFile(p.FX)
	if err != nil {
		return nil, fmt.Errorf("loading fx rates: %w", err)
	}
	cash, skippedC, err := source.ParseCashFile(p.Cash)
	if err != nil {
		return nil, fmt.Errorf("loading cash balances: %w", err)
	}

	fx := BuildFXTable(rates)
	ds := &Dataset{
		Actual:      Normalize(actuals, fx),
		Budget:      Normalize(budget, fx),
		Cash:        cash,
		SkippedRows: skippedA + skippedB + skippedF + skippedC,
	}
	ds.ActualSummary = Summarize(ds.Actual)
	ds.BudgetSummary = Summarize(ds.Budget)
	return ds, nil
}

// FromRows rebuilds a Dataset from already-normalized rows, e.g. a
// cache snapshot.
func FromRows(actual, budget []model.LedgerRow, cash []model.CashBalance) *Dataset {
	return &Dataset{
		Actual:        actual,
		Budget:        budget,
		ActualSummary: Summarize(actual),
		BudgetSummary: Summarize(budget),
		Cash:          cash,
	}
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "finq")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "finq")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "ledger.db")
}
