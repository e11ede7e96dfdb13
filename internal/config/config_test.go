package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.TrailingMonths != 3 {
		t.Errorf("TrailingMonths = %d, want 3", cfg.General.TrailingMonths)
	}
	if cfg.Files.Actuals != "actuals.csv" {
		t.Errorf("Actuals = %q, want actuals.csv", cfg.Files.Actuals)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataDir = "/data/finance"
	cfg.General.TrailingMonths = 6
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != cfg {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "finq")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	partial := "[general]\ndata_dir = \"/srv/ledgers\"\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(partial), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DataDir != "/srv/ledgers" {
		t.Errorf("DataDir = %q, want override applied", cfg.General.DataDir)
	}
	if cfg.Files.Budget != "budget.csv" {
		t.Errorf("Budget = %q, want default preserved", cfg.Files.Budget)
	}
}

func TestResolve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/data"

	if got := cfg.Resolve("actuals.csv"); got != filepath.Join("/data", "actuals.csv") {
		t.Errorf("relative resolve = %q", got)
	}
	if got := cfg.Resolve("/elsewhere/cash.csv"); got != "/elsewhere/cash.csv" {
		t.Errorf("absolute resolve = %q", got)
	}
}
