// Package components provides reusable rendering pieces for the TUI.
package components

import (
	"fmt"
	"math"
	"strings"

	"finq/internal/cli"
	"finq/internal/engine"
	"finq/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// seriesColors assigns a color per series index: actual, budget, rest.
func seriesColors() []lipgloss.Color {
	t := theme.Active
	return []lipgloss.Color{t.Blue, t.TextMuted, t.Green, t.Orange}
}

// Chart renders an engine chart as labeled horizontal bars, one bar
// per label per series, scaled against the chart-wide maximum.
func Chart(c *engine.Chart, width int) string {
	if c == nil || len(c.Labels) == 0 || len(c.Series) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	for _, l := range c.Labels {
		if len(l) > labelW {
			labelW = len(l)
		}
	}

	peak := 0.0
	for _, s := range c.Series {
		for _, v := range s.Values {
			if !math.IsNaN(v) && math.Abs(v) > peak {
				peak = math.Abs(v)
			}
		}
	}

	barW := width - labelW - 16
	if barW < 10 {
		barW = 10
	}

	colors := seriesColors()
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(titleStyle.Render(c.Title))
	b.WriteString("\n")

	for i, label := range c.Labels {
		for si, s := range c.Series {
			if i >= len(s.Values) {
				continue
			}
			v := s.Values[i]

			name := label
			if si > 0 {
				name = "" // only label the first bar of the group
			}

			barLen := 0
			if peak > 0 && !math.IsNaN(v) && v > 0 {
				barLen = int(v / peak * float64(barW))
			}
			bar := strings.Repeat("█", barLen)

			var formatted string
			if c.IsPercent {
				formatted = cli.FormatPercent(v)
			} else {
				formatted = cli.FormatCurrency(v)
			}

			barStyle := lipgloss.NewStyle().Foreground(colors[si%len(colors)])
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				labelStyle.Render(fmt.Sprintf("%-*s", labelW, name)),
				barStyle.Render(bar),
				valueStyle.Render(formatted)))
		}
	}

	if len(c.Series) > 1 {
		b.WriteString("  ")
		legend := make([]string, 0, len(c.Series))
		for si, s := range c.Series {
			sw := lipgloss.NewStyle().Foreground(colors[si%len(colors)])
			legend = append(legend, sw.Render("█ ")+labelStyle.Render(s.Name))
		}
		b.WriteString(strings.Join(legend, "  "))
		b.WriteString("\n")
	}

	return b.String()
}

// Sparkline renders a unicode sparkline from a trend series.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := 0.0
	for _, v := range values {
		if !math.IsNaN(v) && v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		if math.IsNaN(v) || v < 0 {
			buf.WriteRune(' ')
			continue
		}
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}
