// Package store provides a SQLite-backed snapshot cache for normalized
// ledger data, so unchanged CSVs skip the parse-and-convert pass.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"finq/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const dateLayout = "2006-01-02"

// Cache holds the snapshot database handle.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked mtime and size for a source file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// TrackedFiles returns file_path -> FileInfo for every tracked file.
func (c *Cache) TrackedFiles() (map[string]FileInfo, error) {
	rows, err := c.db.Query("SELECT file_path, mtime_ns, size_bytes FROM file_tracker")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// SaveSnapshot replaces the entire cached snapshot in one transaction:
// both scenarios' normalized rows, cash balances, and file tracking.
func (c *Cache) SaveSnapshot(actual, budget []model.LedgerRow, cash []model.CashBalance, files map[string]FileInfo) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"ledger_rows", "cash_balances", "file_tracker"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	insertRow, err := tx.Prepare(`INSERT INTO ledger_rows
		(scenario, date, account, currency, amount, amount_usd, entity)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = insertRow.Close() }()

	for scenario, rows := range map[model.Scenario][]model.LedgerRow{
		model.ScenarioActual: actual,
		model.ScenarioBudget: budget,
	} {
		for _, r := range rows {
			_, err := insertRow.Exec(string(scenario), r.Date.Format(dateLayout),
				r.Account, r.Currency, r.Amount, r.AmountUSD, r.Entity)
			if err != nil {
				return err
			}
		}
	}

	for _, cb := range cash {
		_, err := tx.Exec("INSERT OR REPLACE INTO cash_balances (date, cash_balance) VALUES (?, ?)",
			cb.Date.Format(dateLayout), cb.Balance)
		if err != nil {
			return err
		}
	}

	for path, fi := range files {
		_, err := tx.Exec("INSERT INTO file_tracker (file_path, mtime_ns, size_bytes) VALUES (?, ?, ?)",
			path, fi.MtimeNs, fi.SizeBytes)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadRows returns the cached normalized rows for one scenario.
func (c *Cache) LoadRows(scenario model.Scenario) ([]model.LedgerRow, error) {
	rows, err := c.db.Query(`SELECT date, account, currency, amount, amount_usd, entity
		FROM ledger_rows WHERE scenario = ? ORDER BY id`, string(scenario))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.LedgerRow
	for rows.Next() {
		var r model.LedgerRow
		var date string
		if err := rows.Scan(&date, &r.Account, &r.Currency, &r.Amount, &r.AmountUSD, &r.Entity); err != nil {
			return nil, err
		}
		r.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("cached date %q: %w", date, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// LoadCash returns the cached cash balances sorted by date.
func (c *Cache) LoadCash() ([]model.CashBalance, error) {
	rows, err := c.db.Query("SELECT date, cash_balance FROM cash_balances ORDER BY date")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.CashBalance
	for rows.Next() {
		var cb model.CashBalance
		var date string
		if err := rows.Scan(&date, &cb.Balance); err != nil {
			return nil, err
		}
		cb.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("cached date %q: %w", date, err)
		}
		out = append(out, cb)
	}
	return out, rows.Err()
}
