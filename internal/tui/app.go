// Package tui implements the interactive question-and-answer screen.
package tui

import (
	"strings"

	"finq/internal/cli"
	"finq/internal/engine"
	"finq/internal/tui/components"
	"finq/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxContentWidth = 100

// App is the bubbletea model for the Q&A screen.
type App struct {
	eng    *engine.Engine
	input  textinput.Model
	answer string // rendered answer block for the last question
	asked  string // last question asked
	width  int
	height int
}

// NewApp builds the TUI around an already-loaded engine.
func NewApp(eng *engine.Engine) App {
	ti := textinput.New()
	ti.Placeholder = "What was June 2025 revenue vs budget?"
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	return App{eng: eng, input: ti}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			question := strings.TrimSpace(a.input.Value())
			if question == "" {
				return a, nil
			}
			a.asked = question
			a.answer = a.renderAnswer(a.eng.Answer(question, true))
			a.input.SetValue("")
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) renderAnswer(res engine.Result) string {
	t := theme.Active
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for _, line := range strings.Split(res.Text, "\n") {
		b.WriteString("  ")
		b.WriteString(textStyle.Render(line))
		b.WriteString("\n")
	}

	if res.Chart != nil {
		b.WriteString("\n")
		b.WriteString(components.Chart(res.Chart, a.contentWidth()-4))
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
		b.WriteString("\n")
		b.WriteString(cli.RenderTable(table))
	}

	return b.String()
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  finq — ask about the numbers"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Revenue, COGS, Opex, margins, EBITDA, cash runway"))
	b.WriteString("\n\n")

	if a.answer != "" {
		b.WriteString(mutedStyle.Render("  > " + a.asked))
		b.WriteString("\n\n")
		b.WriteString(a.answer)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  Enter to ask · Esc to quit"))
	b.WriteString("\n")

	return b.String()
}
