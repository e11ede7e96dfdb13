package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS ledger_rows (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    scenario    TEXT NOT NULL,
    date        TEXT NOT NULL,
    account     TEXT NOT NULL,
    currency    TEXT NOT NULL,
    amount      REAL NOT NULL,
    amount_usd  REAL NOT NULL,
    entity      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cash_balances (
    date         TEXT PRIMARY KEY,
    cash_balance REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path   TEXT PRIMARY KEY,
    mtime_ns    INTEGER NOT NULL,
    size_bytes  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ledger_scenario ON ledger_rows(scenario);
CREATE INDEX IF NOT EXISTS idx_ledger_date ON ledger_rows(date);
`
