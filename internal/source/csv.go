// Package source reads the four CSV inputs: actuals, budget, FX rates,
// and cash balances.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"finq/internal/model"
)

// header maps lowercased column names to their index in the CSV.
type header map[string]int

func readHeader(rec []string) header {
	h := make(header, len(rec))
	for i, name := range rec {
		name = strings.TrimSpace(strings.ToLower(name))
		// Strip a UTF-8 BOM from the first cell if present
		name = strings.TrimPrefix(name, "\ufeff")
		h[name] = i
	}
	return h
}

func (h header) get(rec []string, name string) (string, bool) {
	idx, ok := h[name]
	if !ok || idx >= len(rec) {
		return "", false
	}
	return strings.TrimSpace(rec[idx]), true
}

// ParseDate parses a CSV date cell as YYYY-MM-DD or YYYY-MM and
// normalizes it to the first of its month.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	return strconv.ParseFloat(s, 64)
}

// ParseLedger reads actuals or budget rows from r. Missing currency
// and entity columns default to "USD" and "Total". Malformed rows are
// skipped and counted, not fatal. A missing required column is an error.
func ParseLedger(r io.Reader) ([]model.LedgerRow, int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	first, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}
	h := readHeader(first)
	for _, col := range []string{"date", "account", "amount"} {
		if _, ok := h[col]; !ok {
			return nil, 0, fmt.Errorf("missing required column %q", col)
		}
	}

	var rows []model.LedgerRow
	skipped := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		dateStr, _ := h.get(rec, "date")
		date, err := ParseDate(dateStr)
		if err != nil {
			skipped++
			continue
		}
		account, _ := h.get(rec, "account")
		if account == "" {
			skipped++
			continue
		}
		amountStr, _ := h.get(rec, "amount")
		amount, err := parseAmount(amountStr)
		if err != nil {
			skipped++
			continue
		}

		currency, ok := h.get(rec, "currency")
		if !ok || currency == "" {
			currency = "USD"
		}
		entity, ok := h.get(rec, "entity")
		if !ok || entity == "" {
			entity = "Total"
		}

		rows = append(rows, model.LedgerRow{
			Date:     date,
			Account:  account,
			Currency: strings.ToUpper(currency),
			Amount:   amount,
			Entity:   entity,
		})
	}

	return rows, skipped, nil
}

// ParseFX reads FX rates from r. A missing rate_to_usd column (or
// cell) defaults to 1.0. Duplicate (date, currency) rows resolve
// last-write-wins; output order follows first appearance.
func ParseFX(r io.Reader) ([]model.FXRate, int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	first, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}
	h := readHeader(first)
	for _, col := range []string{"date", "currency"} {
		if _, ok := h[col]; !ok {
			return nil, 0, fmt.Errorf("missing required column %q", col)
		}
	}

	type key struct {
		date     time.Time
		currency string
	}
	index := make(map[key]int)

	var rates []model.FXRate
	skipped := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		dateStr, _ := h.get(rec, "date")
		date, err := ParseDate(dateStr)
		if err != nil {
			skipped++
			continue
		}
		currency, _ := h.get(rec, "currency")
		if currency == "" {
			skipped++
			continue
		}
		currency = strings.ToUpper(currency)

		rate := 1.0
		if rateStr, ok := h.get(rec, "rate_to_usd"); ok && rateStr != "" {
			rate, err = parseAmount(rateStr)
			if err != nil {
				skipped++
				continue
			}
		}

		fx := model.FXRate{Date: date, Currency: currency, RateToUSD: rate}
		k := key{date, currency}
		if i, ok := index[k]; ok {
			rates[i] = fx
		} else {
			index[k] = len(rates)
			rates = append(rates, fx)
		}
	}

	return rates, skipped, nil
}

// ParseCash reads month-end cash balances from r.
func ParseCash(r io.Reader) ([]model.CashBalance, int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	first, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}
	h := readHeader(first)
	for _, col := range []string{"date", "cash_balance"} {
		if _, ok := h[col]; !ok {
			return nil, 0, fmt.Errorf("missing required column %q", col)
		}
	}

	var rows []model.CashBalance
	skipped := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		dateStr, _ := h.get(rec, "date")
		date, err := ParseDate(dateStr)
		if err != nil {
			skipped++
			continue
		}
		balanceStr, _ := h.get(rec, "cash_balance")
		balance, err := parseAmount(balanceStr)
		if err != nil {
			skipped++
			continue
		}

		rows = append(rows, model.CashBalance{Date: date, Balance: balance})
	}

	return rows, skipped, nil
}

// ParseLedgerFile reads a ledger CSV from disk.
func ParseLedgerFile(path string) ([]model.LedgerRow, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return ParseLedger(f)
}

// ParseFXFile reads an FX rate CSV from disk. A missing file is not an
// error: FX data is optional and all amounts pass through at 1.0.
func ParseFXFile(path string) ([]model.FXRate, int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return ParseFX(f)
}

// ParseCashFile reads a cash balance CSV from disk.
func ParseCashFile(path string) ([]model.CashBalance, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return ParseCash(f)
}
