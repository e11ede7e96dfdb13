// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"finq/internal/model"
)

// Placeholder stands in for undefined values. Never render "NaN".
const Placeholder = "—"

// FormatCurrency formats a USD value as $X,XXX with no decimals.
// NaN renders as the placeholder glyph.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) {
		return Placeholder
	}
	n := int64(math.Round(v))
	if n < 0 {
		return "-$" + FormatNumber(-n)
	}
	return "$" + FormatNumber(n)
}

// FormatPercent formats a percentage value (already scaled to 0-100)
// with one decimal. NaN renders as the placeholder glyph.
func FormatPercent(v float64) string {
	if math.IsNaN(v) {
		return Placeholder
	}
	return fmt.Sprintf("%.1f%%", v)
}

// FormatSignedPercent formats a variance percentage with an explicit
// sign, e.g. "+11.1%".
func FormatSignedPercent(v float64) string {
	if math.IsNaN(v) {
		return Placeholder
	}
	return fmt.Sprintf("%+.1f%%", v)
}

// FormatMetricValue picks currency or percent formatting based on the
// metric.
func FormatMetricValue(m model.Metric, v float64) string {
	if m.IsPercent() {
		return FormatPercent(v)
	}
	return FormatCurrency(v)
}

// FormatMonth renders a month as e.g. "Jun 2025".
func FormatMonth(t time.Time) string {
	return t.Format("Jan 2006")
}

// FormatRunwayMonths renders a runway length, with infinity spelled
// out rather than as a large number.
func FormatRunwayMonths(months float64) string {
	if math.IsNaN(months) {
		return Placeholder
	}
	if math.IsInf(months, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.1f months", months)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
