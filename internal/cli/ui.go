package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/dptrace/problem"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - titles
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - headers
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
	colorYellow = lipgloss.Color("220") // Amber - infinity
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(16)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
	styleRowName = styleCell.Foreground(colorGray)
	styleInf     = styleCell.Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInf     = "∞"
)

// printSuccess prints a success line.
func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// printError prints an error line.
func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// renderSummary renders the solution header and its summary fields.
func renderSummary(sol problem.Solution) string {
	var b strings.Builder
	title := string(sol.Kind)
	if sol.Name != "" {
		title += " · " + sol.Name
	}
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n")
	for _, f := range sol.Summary {
		b.WriteString(styleKey.Render(f.Name) + " " + styleValue.Render(f.Value))
		b.WriteString("\n")
	}

	return b.String()
}

// renderFrame renders frame i of n as a heading, its description and a table.
func renderFrame(f problem.Frame, i, n int) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("Step %d/%d", i+1, n)))
	b.WriteString(styleDim.Render(" · " + f.Title))
	b.WriteString("\n")
	b.WriteString(f.Description)
	b.WriteString("\n")
	if len(f.Columns) == 0 {
		return b.String()
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(f.Columns...).
		Rows(f.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if row < 0 || row >= len(f.Rows) || col >= len(f.Rows[row]) {
				return styleCell
			}
			if col == 0 && f.Columns[0] == "" {
				return styleRowName
			}
			if f.Rows[row][col] == iconInf {
				return styleInf
			}
			return styleCell
		})
	b.WriteString(t.Render())
	b.WriteString("\n")

	return b.String()
}
