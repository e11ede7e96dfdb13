// Package engine answers natural-language finance questions against a
// loaded dataset: plan the question, run the computation, format the
// answer.
package engine

import (
	"math"
	"time"

	"finq/internal/model"
	"finq/internal/pipeline"
	"finq/internal/planner"
)

// Chart is a presentation-agnostic description of the chart a query
// would plot. Rendering is up to the caller (CLI bars, TUI chart).
type Chart struct {
	Title     string
	IsPercent bool
	Labels    []string
	Series    []Series
}

// Series is one named line or bar group in a chart.
type Series struct {
	Name   string
	Values []float64
}

// Result is the answer to one question.
type Result struct {
	Plan  model.Plan
	Text  string
	Chart *Chart
	Table []model.CategoryAmount
}

// Engine holds the aggregate tables for one loaded dataset. Build it
// once and treat it as an immutable value; Answer does no mutation.
type Engine struct {
	ds       *pipeline.Dataset
	trailing int
}

// New wraps a loaded dataset. trailingMonths is the default runway
// window; values below 1 fall back to pipeline.DefaultTrailingMonths.
func New(ds *pipeline.Dataset, trailingMonths int) *Engine {
	if trailingMonths < 1 {
		trailingMonths = pipeline.DefaultTrailingMonths
	}
	return &Engine{ds: ds, trailing: trailingMonths}
}

const noActualsText = "I could not find any actuals to report on."

// Answer runs one question. plotting=false suppresses chart generation
// but leaves text and table untouched; that is the seam for headless
// and test use.
func (e *Engine) Answer(question string, plotting bool) Result {
	plan := planner.Parse(question)

	var res Result
	switch plan.Intent {
	case model.IntentCashRunway:
		res = e.answerRunway(plan)
	case model.IntentBreakdown:
		res = e.answerBreakdown(plan)
	case model.IntentTrend:
		res = e.answerTrend(plan)
	default:
		res = e.answerPoint(plan)
	}

	res.Plan = plan
	if !plotting {
		res.Chart = nil
	}
	return res
}

// month resolves the plan's month, defaulting to the latest month with
// actuals. Zero when there are no actuals at all.
func (e *Engine) month(plan model.Plan) time.Time {
	if !plan.Month.IsZero() {
		return plan.Month
	}
	return pipeline.LatestMonth(e.ds.ActualSummary)
}

func (e *Engine) answerRunway(model.Plan) Result {
	stats := pipeline.Runway(e.ds.ActualSummary, e.ds.Cash, e.trailing)
	res := Result{Text: formatRunway(stats)}
	if !math.IsNaN(stats.Months) && !stats.Infinite() {
		res.Chart = &Chart{
			Title:  "Cash Runway (months)",
			Labels: []string{"Runway"},
			Series: []Series{{Name: "Months", Values: []float64{stats.Months}}},
		}
	}
	return res
}

func (e *Engine) answerBreakdown(plan model.Plan) Result {
	month := e.month(plan)
	if month.IsZero() {
		return Result{Text: noActualsText}
	}

	table := pipeline.OpexBreakdown(e.ds.Actual, e.ds.Budget, month)
	res := Result{
		Table: table,
		Text:  formatBreakdown(month, table),
	}
	if len(table) > 0 {
		chart := &Chart{Title: "Opex Breakdown — " + month.Format("Jan 2006")}
		actuals := make([]float64, len(table))
		budgets := make([]float64, len(table))
		for i, row := range table {
			chart.Labels = append(chart.Labels, row.Category)
			actuals[i] = row.Actual
			budgets[i] = row.Budget
		}
		chart.Series = []Series{{Name: "Actual", Values: actuals}}
		if plan.CompareBudget {
			chart.Series = append(chart.Series, Series{Name: "Budget", Values: budgets})
		}
		res.Chart = chart
	}
	return res
}

func (e *Engine) answerTrend(plan model.Plan) Result {
	points := pipeline.MetricTrend(e.ds.ActualSummary, e.ds.BudgetSummary, plan.Metric, plan.Months)
	if len(points) == 0 {
		return Result{Text: "I could not find data for that metric."}
	}

	chart := &Chart{
		Title:     plan.Metric.Display() + " Trend",
		IsPercent: plan.Metric.IsPercent(),
	}
	actuals := make([]float64, len(points))
	budgets := make([]float64, len(points))
	hasBudget := false
	for i, p := range points {
		chart.Labels = append(chart.Labels, p.Month.Format("Jan 2006"))
		actuals[i] = p.Actual
		budgets[i] = p.Budget
		if !math.IsNaN(p.Budget) {
			hasBudget = true
		}
	}
	chart.Series = []Series{{Name: "Actual", Values: actuals}}
	if plan.CompareBudget && hasBudget {
		chart.Series = append(chart.Series, Series{Name: "Budget", Values: budgets})
	}

	return Result{
		Text:  formatTrend(plan.Metric, points),
		Chart: chart,
	}
}

func (e *Engine) answerPoint(plan model.Plan) Result {
	month := e.month(plan)
	if month.IsZero() {
		return Result{Text: noActualsText}
	}

	point := pipeline.MetricPoint(e.ds.ActualSummary, e.ds.BudgetSummary, plan.Metric, month)
	res := Result{Text: formatPoint(plan.Metric, month, point)}

	labels := []string{"Actual"}
	values := []float64{point.Actual}
	if !math.IsNaN(point.Budget) {
		labels = append(labels, "Budget")
		values = append(values, point.Budget)
	}
	res.Chart = &Chart{
		Title:     plan.Metric.Display() + " — " + month.Format("Jan 2006"),
		IsPercent: plan.Metric.IsPercent(),
		Labels:    labels,
		Series:    []Series{{Name: plan.Metric.Display(), Values: values}},
	}
	return res
}
