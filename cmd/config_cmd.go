package cmd

import (
	"fmt"

	"finq/internal/cli"
	"finq/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	source := config.ConfigPath()
	if !config.Exists() {
		source = "(defaults, no config file)"
	}

	fmt.Println()
	table := cli.Table{
		Headers: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Config file", source},
			{"Data dir", cfg.General.DataDir},
			{"Trailing months", fmt.Sprintf("%d", cfg.General.TrailingMonths)},
			{"---"},
			{"Actuals", cfg.Resolve(cfg.Files.Actuals)},
			{"Budget", cfg.Resolve(cfg.Files.Budget)},
			{"FX", cfg.Resolve(cfg.Files.FX)},
			{"Cash", cfg.Resolve(cfg.Files.Cash)},
			{"---"},
			{"Theme", cfg.Appearance.Theme},
		},
	}
	fmt.Print(cli.RenderTable(table))
	return nil
}
