package cmd

import (
	"fmt"
	"math"

	"finq/internal/cli"
	"finq/internal/pipeline"
	"finq/internal/planner"

	"github.com/spf13/cobra"
)

var (
	flagMetric string
	flagMonths int
	flagBudget bool
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Metric trend across months",
	RunE:  runTrend,
}

func init() {
	trendCmd.Flags().StringVarP(&flagMetric, "metric", "m", "revenue", "Metric (revenue, cogs, opex, gross margin, ebitda, ...)")
	trendCmd.Flags().IntVarP(&flagMonths, "months", "n", 0, "Trailing months to show (0 = all)")
	trendCmd.Flags().BoolVar(&flagBudget, "budget", false, "Overlay budget values")
	rootCmd.AddCommand(trendCmd)
}

func runTrend(_ *cobra.Command, _ []string) error {
	ds, _, err := loadData()
	if err != nil {
		return err
	}

	metric := planner.MatchMetric(flagMetric)
	points := pipeline.MetricTrend(ds.ActualSummary, ds.BudgetSummary, metric, flagMonths)
	if len(points) == 0 {
		fmt.Println("\n  No data for that metric.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(metric.Display() + " TREND"))
	fmt.Println()

	maxVal := 0.0
	actuals := make([]float64, len(points))
	for i, p := range points {
		actuals[i] = p.Actual
		if !math.IsNaN(p.Actual) && math.Abs(p.Actual) > maxVal {
			maxVal = math.Abs(p.Actual)
		}
		if flagBudget && !math.IsNaN(p.Budget) && math.Abs(p.Budget) > maxVal {
			maxVal = math.Abs(p.Budget)
		}
	}

	format := cli.FormatCurrency
	if metric.IsPercent() {
		format = cli.FormatPercent
	}

	for _, p := range points {
		fmt.Printf("%s  %s\n",
			cli.RenderHorizontalBar(cli.FormatMonth(p.Month), p.Actual, maxVal, 40),
			format(p.Actual))
		if flagBudget && !math.IsNaN(p.Budget) {
			fmt.Printf("%s  %s (budget)\n",
				cli.RenderHorizontalBar("", p.Budget, maxVal, 40),
				format(p.Budget))
		}
	}

	fmt.Printf("\n  %s\n\n", cli.RenderSparkline(actuals))
	return nil
}
