package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/megabyte6/WordDateGenerator/internal/daterange"
)

// overlayResult is sent when an overlay completes.
type overlayResult struct {
	action string // "cancel" or "apply"
}

func overlayResultMsg(action string) tea.Cmd {
	return func() tea.Msg {
		return overlayResult{action: action}
	}
}

var (
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(50)
	overlayTitleStyle  = lipgloss.NewStyle().Bold(true)
	overlayActiveStyle = lipgloss.NewStyle().Reverse(true)
	overlayMutedStyle  = lipgloss.NewStyle().Faint(true)
)

// --- Weekday Overlay ---
// Multi-select of weekdays to leave out of the generated table.

var overlayWeekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

type weekdayOverlay struct {
	checked map[time.Weekday]bool
	cursor  int
}

func newWeekdayOverlay(excluded []time.Weekday) *weekdayOverlay {
	checked := make(map[time.Weekday]bool, len(excluded))
	for _, wd := range excluded {
		checked[wd] = true
	}
	return &weekdayOverlay{checked: checked}
}

func (o *weekdayOverlay) Init() tea.Cmd { return nil }

func (o *weekdayOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return o, overlayResultMsg("cancel")
		case "up", "k":
			if o.cursor > 0 {
				o.cursor--
			}
		case "down", "j":
			if o.cursor < len(overlayWeekdays)-1 {
				o.cursor++
			}
		case " ", "x":
			wd := overlayWeekdays[o.cursor]
			o.checked[wd] = !o.checked[wd]
		case "enter":
			return o, overlayResultMsg("apply")
		}
	}
	return o, nil
}

func (o *weekdayOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Excluded Weekdays"))
	b.WriteString("\n\n")

	for i, wd := range overlayWeekdays {
		mark := "[ ]"
		if o.checked[wd] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, wd.String())
		if i == o.cursor {
			b.WriteString(overlayActiveStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(overlayMutedStyle.Render("space toggle  |  enter apply  |  esc cancel"))

	return overlayBoxStyle.Render(b.String())
}

// selectedWeekdays returns the checked weekdays in week order.
func (o *weekdayOverlay) selectedWeekdays() []time.Weekday {
	var out []time.Weekday
	for _, wd := range overlayWeekdays {
		if o.checked[wd] {
			out = append(out, wd)
		}
	}
	return out
}

// --- Range Overlay ---
// List of excluded sub-ranges with a text field to add more.

type rangeOverlay struct {
	ranges []daterange.Range
	cursor int
	input  string
	adding bool
	err    string
}

func newRangeOverlay(ranges []daterange.Range) *rangeOverlay {
	return &rangeOverlay{ranges: append([]daterange.Range(nil), ranges...)}
}

func (o *rangeOverlay) Init() tea.Cmd { return nil }

func (o *rangeOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	if o.adding {
		switch keyMsg.String() {
		case "esc":
			o.adding = false
			o.input = ""
			o.err = ""
		case "enter":
			rng, err := daterange.ParseRangeExpr(o.input)
			if err != nil {
				o.err = err.Error()
				return o, nil
			}
			o.ranges = append(o.ranges, rng)
			o.adding = false
			o.input = ""
			o.err = ""
		case "backspace":
			if len(o.input) > 0 {
				o.input = o.input[:len(o.input)-1]
			}
		default:
			if len(keyMsg.String()) == 1 {
				o.input += keyMsg.String()
			}
		}
		return o, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return o, overlayResultMsg("cancel")
	case "up", "k":
		if o.cursor > 0 {
			o.cursor--
		}
	case "down", "j":
		if o.cursor < len(o.ranges)-1 {
			o.cursor++
		}
	case "a":
		o.adding = true
		o.err = ""
	case "d":
		if len(o.ranges) > 0 {
			o.ranges = append(o.ranges[:o.cursor], o.ranges[o.cursor+1:]...)
			if o.cursor >= len(o.ranges) && o.cursor > 0 {
				o.cursor--
			}
		}
	case "enter":
		return o, overlayResultMsg("apply")
	}
	return o, nil
}

func (o *rangeOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Excluded Ranges"))
	b.WriteString("\n\n")

	if len(o.ranges) == 0 {
		b.WriteString(overlayMutedStyle.Render("  (none)") + "\n")
	}
	for i, rng := range o.ranges {
		line := rng.String()
		if i == o.cursor && !o.adding {
			b.WriteString(overlayActiveStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if o.adding {
		b.WriteString("\n")
		b.WriteString(overlayActiveStyle.Render("> Add: " + o.input))
		b.WriteString("\n")
		b.WriteString(overlayMutedStyle.Render("  e.g. 2025-07-01..2025-07-14"))
	}

	if o.err != "" {
		b.WriteString("\n")
		b.WriteString(Error(o.err))
	}

	b.WriteString("\n\n")
	if o.adding {
		b.WriteString(overlayMutedStyle.Render("enter add  |  esc back"))
	} else {
		b.WriteString(overlayMutedStyle.Render("a add  |  d delete  |  enter apply  |  esc cancel"))
	}

	return overlayBoxStyle.Render(b.String())
}

// --- Format Overlay ---
// Text field for the date format with a live preview of today's date.

type formatOverlay struct {
	value string
	now   time.Time
	err   string
}

func newFormatOverlay(format string, now time.Time) *formatOverlay {
	return &formatOverlay{value: format, now: now}
}

func (o *formatOverlay) Init() tea.Cmd { return nil }

func (o *formatOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch keyMsg.String() {
	case "esc":
		return o, overlayResultMsg("cancel")
	case "enter":
		if err := daterange.ValidFormat(o.value); err != nil {
			o.err = err.Error()
			return o, nil
		}
		o.err = ""
		return o, overlayResultMsg("apply")
	case "backspace":
		if len(o.value) > 0 {
			o.value = o.value[:len(o.value)-1]
		}
	default:
		if len(keyMsg.String()) == 1 {
			o.value += keyMsg.String()
		}
	}
	return o, nil
}

func (o *formatOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Date Format"))
	b.WriteString("\n\n")

	b.WriteString(overlayActiveStyle.Render("> " + o.value))
	b.WriteString("\n\n")
	b.WriteString("Preview: " + daterange.FormatDate(o.now, o.value))
	b.WriteString("\n")

	if o.err != "" {
		b.WriteString("\n")
		b.WriteString(Error(o.err))
	}

	b.WriteString("\n")
	b.WriteString(overlayMutedStyle.Render("enter apply  |  esc cancel"))

	return overlayBoxStyle.Render(b.String())
}
