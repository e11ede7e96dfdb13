package cmd

import (
	"fmt"

	"finq/internal/cli"
	"finq/internal/model"

	"github.com/spf13/cobra"
)

var flagScenario string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly P&L summary table",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&flagScenario, "scenario", "s", "actual", "Scenario to show: actual or budget")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	ds, _, err := loadData()
	if err != nil {
		return err
	}

	summaries := ds.ActualSummary
	title := "MONTHLY P&L  Actual"
	if model.Scenario(flagScenario) == model.ScenarioBudget {
		summaries = ds.BudgetSummary
		title = "MONTHLY P&L  Budget"
	}

	if len(summaries) == 0 {
		fmt.Println("\n  No ledger rows found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	table := cli.Table{
		Headers: []string{"Month", "Revenue", "COGS", "Gross Profit", "GM %", "Opex", "EBITDA", "EBITDA %"},
	}
	for _, s := range summaries {
		table.Rows = append(table.Rows, []string{
			cli.FormatMonth(s.Month),
			cli.FormatCurrency(s.Revenue),
			cli.FormatCurrency(s.COGS),
			cli.FormatCurrency(s.GrossProfit),
			cli.FormatPercent(s.GrossMarginPct),
			cli.FormatCurrency(s.Opex),
			cli.FormatCurrency(s.EBITDA),
			cli.FormatPercent(s.EBITDAPct),
		})
	}

	fmt.Print(cli.RenderTable(table))
	return nil
}
