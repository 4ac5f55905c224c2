package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/megabyte6/WordDateGenerator/internal/document"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// renderDateTable produces a plain text table from the table data, used by
// preview and as the non-TTY output format.
func renderDateTable(data document.TableData) string {
	widths := make([]int, len(data.Header))
	for c, label := range data.Header {
		widths[c] = len(label)
	}
	for _, row := range data.Rows {
		for c, cell := range row {
			if c < len(widths) && len(cell) > widths[c] {
				widths[c] = len(cell)
			}
		}
	}

	var b strings.Builder

	if data.Title != "" {
		b.WriteString(headerStyle.Render("--- " + data.Title + " ---"))
		b.WriteString("\n")
	}

	// Header row
	for c, label := range data.Header {
		if c > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(headerStyle.Render(padCenter(label, widths[c])))
	}
	b.WriteString("\n")

	// Separator
	for c, w := range widths {
		if c > 0 {
			b.WriteString("-+-")
		}
		b.WriteString(strings.Repeat("-", w))
	}
	b.WriteString("\n")

	// Data rows
	for _, row := range data.Rows {
		for c, cell := range row {
			if c > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(padRight(cell, widths[c]))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s
	}
	total := width - len(s)
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}
