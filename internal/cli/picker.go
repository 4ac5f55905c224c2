package cli

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/megabyte6/WordDateGenerator/internal/daterange"
)

// pickerModel is the interactive calendar used to choose a date range when
// generate is run without --start/--end.
type pickerModel struct {
	now        time.Time
	viewYear   int
	viewMonth  time.Month
	cursor     time.Time // highlighted day, UTC midnight
	start      *time.Time
	end        *time.Time
	opts       daterange.Options
	overlay    tea.Model // active overlay (nil in normal mode)
	footerMsg  string    // temporary message shown in footer
	termWidth  int
	termHeight int
	done       bool
	cancelled  bool
}

func newPickerModel(opts daterange.Options, now time.Time) pickerModel {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return pickerModel{
		now:        now,
		viewYear:   today.Year(),
		viewMonth:  today.Month(),
		cursor:     today,
		opts:       opts,
		termWidth:  80,
		termHeight: 24,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil

	case overlayResult:
		return m.applyOverlayResult(msg)

	case tea.KeyMsg:
		if m.overlay != nil {
			updated, cmd := m.overlay.Update(msg)
			m.overlay = updated
			return m, cmd
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m pickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.footerMsg = ""

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		return m, tea.Quit

	case "left", "h":
		return m.moveCursor(-1), nil
	case "right", "l":
		return m.moveCursor(1), nil
	case "up", "k":
		return m.moveCursor(-7), nil
	case "down", "j":
		return m.moveCursor(7), nil

	case "[":
		return m.pageMonth(-1), nil
	case "]":
		return m.pageMonth(1), nil

	case "enter", " ":
		return m.selectCursor(), nil

	case "w":
		m.overlay = newWeekdayOverlay(m.opts.ExcludedWeekdays)
		return m, nil
	case "x":
		m.overlay = newRangeOverlay(m.opts.ExcludedRanges)
		return m, nil
	case "f":
		m.overlay = newFormatOverlay(m.opts.Format, m.now)
		return m, nil

	case "g":
		if m.start == nil || m.end == nil {
			m.footerMsg = "Select a start and end date first"
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m pickerModel) moveCursor(days int) pickerModel {
	m.cursor = m.cursor.AddDate(0, 0, days)
	m.viewYear = m.cursor.Year()
	m.viewMonth = m.cursor.Month()
	return m
}

// pageMonth shifts the visible month, clamping the cursor's day to the new
// month's length.
func (m pickerModel) pageMonth(months int) pickerModel {
	first := time.Date(m.viewYear, m.viewMonth, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	day := m.cursor.Day()
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	m.cursor = time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
	m.viewYear = first.Year()
	m.viewMonth = first.Month()
	return m
}

// selectCursor picks the cursor date as start, then end. Picking an end
// before the start swaps the two. A third pick restarts the selection.
func (m pickerModel) selectCursor() pickerModel {
	d := m.cursor
	switch {
	case m.start == nil:
		m.start = &d
	case m.end == nil:
		if d.Before(*m.start) {
			m.end = m.start
			m.start = &d
		} else {
			m.end = &d
		}
	default:
		m.start = &d
		m.end = nil
	}
	return m
}

func (m pickerModel) applyOverlayResult(result overlayResult) (tea.Model, tea.Cmd) {
	switch result.action {
	case "cancel":
		m.overlay = nil
		return m, nil

	case "apply":
		switch o := m.overlay.(type) {
		case *weekdayOverlay:
			m.opts.ExcludedWeekdays = o.selectedWeekdays()
		case *rangeOverlay:
			m.opts.ExcludedRanges = o.ranges
		case *formatOverlay:
			m.opts.Format = o.value
		}
		m.overlay = nil
		return m, nil
	}

	m.overlay = nil
	return m, nil
}

func (m pickerModel) selectedRange() (daterange.Range, bool) {
	if m.start == nil || m.end == nil {
		return daterange.Range{}, false
	}
	rng, err := daterange.New(*m.start, *m.end)
	if err != nil {
		return daterange.Range{}, false
	}
	return rng, true
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// runPicker runs the interactive calendar and returns the chosen range and
// possibly-edited options. cancelled is true when the user quit without
// completing a selection.
func runPicker(out io.Writer, opts daterange.Options, now time.Time) (daterange.Range, daterange.Options, bool, error) {
	m := newPickerModel(opts, now)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return daterange.Range{}, daterange.Options{}, false, err
	}

	fm, ok := final.(pickerModel)
	if !ok || !fm.done {
		return daterange.Range{}, daterange.Options{}, true, nil
	}

	rng, ok := fm.selectedRange()
	if !ok {
		return daterange.Range{}, daterange.Options{}, true, nil
	}
	return rng, fm.opts, false, nil
}
