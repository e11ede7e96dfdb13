package cmd

import (
	"fmt"
	"strings"

	"finq/internal/cli"
	"finq/internal/engine"
	"finq/internal/tui/components"

	"github.com/spf13/cobra"
)

var flagNoChart bool

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer one finance question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&flagNoChart, "no-chart", false, "Suppress chart output")
	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}

	question := strings.Join(args, " ")
	res := eng.Answer(question, !flagNoChart)

	fmt.Println()
	printResult(res)
	return nil
}

// printResult renders an engine result: text, then chart, then table.
func printResult(res engine.Result) {
	for _, line := range strings.Split(res.Text, "\n") {
		fmt.Println("  " + line)
	}

	if res.Chart != nil {
		fmt.Println()
		fmt.Print(components.Chart(res.Chart, 80))
	}

	if len(res.Table) > 0 {
		table := cli.Table{
			Headers: []string{"Category", "Actual", "Budget"},
		}
		for _, row := range res.Table {
			table.Rows = append(table.Rows, []string{
				row.Category,
				cli.FormatCurrency(row.Actual),
				cli.FormatCurrency(row.Budget),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(table))
	}
	fmt.Println()
}
