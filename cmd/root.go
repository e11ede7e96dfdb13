// Package cmd wires the finq subcommands.
package cmd

import (
	"fmt"
	"os"

	"finq/internal/config"
	"finq/internal/engine"
	"finq/internal/pipeline"
	"finq/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir  string
	flagNoCache  bool
	flagQuiet    bool
	flagTrailing int
)

var rootCmd = &cobra.Command{
	Use:   "finq [question]",
	Short: "CFO copilot CLI",
	Long: "Ask natural-language finance questions against monthly actuals, " +
		"budget, FX, and cash CSVs.",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runAsk(cmd, args)
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the four CSVs (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reparse everything")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().IntVarP(&flagTrailing, "trailing", "t", 0, "Trailing months for burn rate (overrides config)")
}

// dataPaths resolves the four CSV paths from config plus flags.
func dataPaths() (pipeline.Paths, config.Config) {
	cfg, _ := config.Load()
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return pipeline.Paths{
		Actuals: cfg.Resolve(cfg.Files.Actuals),
		Budget:  cfg.Resolve(cfg.Files.Budget),
		FX:      cfg.Resolve(cfg.Files.FX),
		Cash:    cfg.Resolve(cfg.Files.Cash),
	}, cfg
}

// loadData is the shared data loading path used by all commands.
// Uses the SQLite snapshot when the source files are unchanged.
func loadData() (*pipeline.Dataset, config.Config, error) {
	paths, cfg := dataPaths()

	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			// Cache open failed — fall back to uncached
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full parse\n")
			}
		} else {
			defer func() { _ = cache.Close() }()

			cl, err := pipeline.LoadWithCache(paths, cache)
			if err == nil {
				if !flagQuiet && cl.FromCache {
					fmt.Fprintf(os.Stderr, "  Loaded snapshot from cache\n")
				}
				return cl.Dataset, cfg, nil
			}
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache error, falling back to full parse\n")
			}
		}
	}

	ds, err := pipeline.Load(paths)
	if err != nil {
		return nil, cfg, err
	}
	if !flagQuiet && ds.SkippedRows > 0 {
		fmt.Fprintf(os.Stderr, "  %d malformed rows skipped\n", ds.SkippedRows)
	}
	return ds, cfg, nil
}

// buildEngine loads data and wraps it in an engine with the effective
// trailing window.
func buildEngine() (*engine.Engine, error) {
	ds, cfg, err := loadData()
	if err != nil {
		return nil, err
	}
	trailing := cfg.General.TrailingMonths
	if flagTrailing > 0 {
		trailing = flagTrailing
	}
	return engine.New(ds, trailing), nil
}
