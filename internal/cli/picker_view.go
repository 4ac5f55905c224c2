package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/megabyte6/WordDateGenerator/internal/daterange"
)

var (
	calendarTitleStyle    = lipgloss.NewStyle().Bold(true)
	calendarCursorStyle   = lipgloss.NewStyle().Reverse(true)
	calendarBoundStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	calendarInRangeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	calendarExcludedStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	calendarDimStyle      = lipgloss.NewStyle().Faint(true)
)

func (m pickerModel) View() string {
	if m.overlay != nil {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, m.overlay.View(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	var b strings.Builder
	b.WriteString(m.renderCalendar())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderCalendar draws the visible month as a Monday-first grid.
func (m pickerModel) renderCalendar() string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", m.viewMonth, m.viewYear)
	b.WriteString("  " + calendarTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(calendarDimStyle.Render("  Mo  Tu  We  Th  Fr  Sa  Su"))
	b.WriteString("\n")

	first := time.Date(m.viewYear, m.viewMonth, 1, 0, 0, 0, 0, time.UTC)
	lead := mondayIndex(first.Weekday())
	last := daysInMonth(m.viewYear, m.viewMonth)

	col := 0
	b.WriteString(strings.Repeat("    ", lead))
	col = lead
	for day := 1; day <= last; day++ {
		d := time.Date(m.viewYear, m.viewMonth, day, 0, 0, 0, 0, time.UTC)
		b.WriteString(" " + m.renderDay(d))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func (m pickerModel) renderDay(d time.Time) string {
	label := fmt.Sprintf("%3d", d.Day())
	switch {
	case d.Equal(m.cursor):
		return calendarCursorStyle.Render(label)
	case m.isBound(d):
		return calendarBoundStyle.Render(label)
	case m.inSelection(d):
		return calendarInRangeStyle.Render(label)
	case m.isExcluded(d):
		return calendarExcludedStyle.Render(label)
	}
	return label
}

func (m pickerModel) isBound(d time.Time) bool {
	if m.start != nil && d.Equal(*m.start) {
		return true
	}
	return m.end != nil && d.Equal(*m.end)
}

func (m pickerModel) inSelection(d time.Time) bool {
	if m.start == nil || m.end == nil {
		return false
	}
	return !d.Before(*m.start) && !d.After(*m.end)
}

func (m pickerModel) isExcluded(d time.Time) bool {
	for _, wd := range m.opts.ExcludedWeekdays {
		if d.Weekday() == wd {
			return true
		}
	}
	for _, rng := range m.opts.ExcludedRanges {
		if rng.Contains(d) {
			return true
		}
	}
	return false
}

func (m pickerModel) renderStatus() string {
	var b strings.Builder

	start, end := "(none)", "(none)"
	if m.start != nil {
		start = daterange.FormatDate(*m.start, m.opts.Format)
	}
	if m.end != nil {
		end = daterange.FormatDate(*m.end, m.opts.Format)
	}
	b.WriteString(fmt.Sprintf("  Start: %s    End: %s\n", start, end))
	b.WriteString(fmt.Sprintf("  Format: %s\n", m.opts.Format))

	if summary := excludedSummary(m.opts); summary != "" {
		b.WriteString("  Excluding: " + summary + "\n")
	}
	return b.String()
}

func (m pickerModel) renderFooter() string {
	var b strings.Builder
	if m.footerMsg != "" {
		b.WriteString("  " + Warning(m.footerMsg) + "\n")
	}
	b.WriteString(calendarDimStyle.Render("  arrows move  |  [/] month  |  enter pick  |  w weekdays  |  x ranges  |  f format  |  g save  |  q quit"))
	return b.String()
}

// excludedSummary describes the active exclusions in one line.
func excludedSummary(opts daterange.Options) string {
	var parts []string
	for _, wd := range opts.ExcludedWeekdays {
		parts = append(parts, wd.String()[:3])
	}
	for _, rng := range opts.ExcludedRanges {
		parts = append(parts, rng.String())
	}
	if len(opts.ExcludedRules) > 0 {
		parts = append(parts, fmt.Sprintf("%d recurrence rule(s)", len(opts.ExcludedRules)))
	}
	return strings.Join(parts, ", ")
}

// mondayIndex maps a weekday to its column in a Monday-first week.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
