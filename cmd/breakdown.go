package cmd

import (
	"fmt"

	"finq/internal/cli"
	"finq/internal/pipeline"
	"finq/internal/planner"

	"github.com/spf13/cobra"
)

var flagMonth string

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Opex by category for one month",
	RunE:  runBreakdown,
}

func init() {
	breakdownCmd.Flags().StringVarP(&flagMonth, "month", "m", "", `Month, e.g. "2025-06" or "June 2025" (default latest)`)
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	ds, _, err := loadData()
	if err != nil {
		return err
	}

	month := planner.MatchMonth(flagMonth)
	if month.IsZero() {
		month = pipeline.LatestMonth(ds.ActualSummary)
	}
	if month.IsZero() {
		fmt.Println("\n  No ledger rows found.")
		return nil
	}

	rows := pipeline.OpexBreakdown(ds.Actual, ds.Budget, month)
	if len(rows) == 0 {
		fmt.Printf("\n  No Opex recorded for %s.\n", cli.FormatMonth(month))
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("OPEX BREAKDOWN  " + cli.FormatMonth(month)))
	fmt.Println()

	var totalActual, totalBudget float64
	table := cli.Table{
		Headers: []string{"Category", "Actual", "Budget"},
	}
	for _, row := range rows {
		totalActual += row.Actual
		totalBudget += row.Budget
		table.Rows = append(table.Rows, []string{
			row.Category,
			cli.FormatCurrency(row.Actual),
			cli.FormatCurrency(row.Budget),
		})
	}
	table.Rows = append(table.Rows, []string{"---"})
	table.Rows = append(table.Rows, []string{
		"TOTAL",
		cli.FormatCurrency(totalActual),
		cli.FormatCurrency(totalBudget),
	})

	fmt.Print(cli.RenderTable(table))
	return nil
}
