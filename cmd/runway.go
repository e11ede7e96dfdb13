package cmd

import (
	"fmt"
	"math"

	"finq/internal/cli"
	"finq/internal/pipeline"

	"github.com/spf13/cobra"
)

var runwayCmd = &cobra.Command{
	Use:   "runway",
	Short: "Cash runway from trailing burn rate",
	RunE:  runRunway,
}

func init() {
	rootCmd.AddCommand(runwayCmd)
}

func runRunway(_ *cobra.Command, _ []string) error {
	ds, cfg, err := loadData()
	if err != nil {
		return err
	}

	trailing := cfg.General.TrailingMonths
	if flagTrailing > 0 {
		trailing = flagTrailing
	}

	stats := pipeline.Runway(ds.ActualSummary, ds.Cash, trailing)
	if math.IsNaN(stats.Months) {
		fmt.Println("\n  No cash balances or actuals to compute runway from.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CASH RUNWAY"))
	fmt.Println()

	table := cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Cash on hand", cli.FormatCurrency(stats.Cash)},
			{fmt.Sprintf("Avg burn (last %dmo)", trailing), cli.FormatCurrency(stats.AvgBurn)},
			{"---"},
			{"Runway", cli.FormatRunwayMonths(stats.Months)},
		},
	}
	fmt.Print(cli.RenderTable(table))

	if stats.Infinite() {
		fmt.Println("  Not burning cash over the trailing window.")
	}
	fmt.Println()
	return nil
}
