package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/megabyte6/WordDateGenerator/internal/daterange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickerAt(t *testing.T, year int, month time.Month, day int) pickerModel {
	t.Helper()
	now := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return newPickerModel(daterange.Options{
		Format:           daterange.DefaultFormat,
		ExcludedWeekdays: daterange.DefaultExcludedWeekdays(),
	}, now)
}

func pressKey(t *testing.T, m pickerModel, key string) pickerModel {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	next, ok := updated.(pickerModel)
	require.True(t, ok)
	return next
}

func TestPickerStartsOnToday(t *testing.T) {
	m := pickerAt(t, 2025, time.March, 12)

	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), m.cursor)
	assert.Equal(t, time.March, m.viewMonth)
	assert.Equal(t, 2025, m.viewYear)
}

func TestPickerCursorMovement(t *testing.T) {
	m := pickerAt(t, 2025, time.March, 12)

	m = pressKey(t, m, "right")
	assert.Equal(t, 13, m.cursor.Day())

	m = pressKey(t, m, "down")
	assert.Equal(t, 20, m.cursor.Day())

	m = pressKey(t, m, "h")
	assert.Equal(t, 19, m.cursor.Day())

	m = pressKey(t, m, "k")
	assert.Equal(t, 12, m.cursor.Day())
}

func TestPickerCursorCrossesMonthBoundary(t *testing.T) {
	m := pickerAt(t, 2025, time.March, 31)

	m = pressKey(t, m, "right")

	assert.Equal(t, time.April, m.viewMonth)
	assert.Equal(t, 1, m.cursor.Day())
}

func TestPickerMonthPagingClampsDay(t *testing.T) {
	m := pickerAt(t, 2025, time.January, 31)

	m = pressKey(t, m, "]")

	assert.Equal(t, time.February, m.viewMonth)
	assert.Equal(t, 28, m.cursor.Day())

	m = pressKey(t, m, "[")
	assert.Equal(t, time.January, m.viewMonth)
	assert.Equal(t, 28, m.cursor.Day())
}

func TestPickerSelectStartThenEnd(t *testing.T) {
	m := pickerAt(t, 2025, time.March, 10)

	m = pressKey(t, m, "enter")
	require.NotNil(t, m.start)
	assert.Nil(t, m.end)
	assert.Equal(t, 10, m.start.Day())

	m = pressKey(t, m, "right")
	m = pressKey(t, m, "right")
	m = pressKey(t, m, "enter")
	require.NotNil(t, m.end)
	assert.Equal(t, 12, m.end.Day())
}

func TestPickerSelectSwapsWhenEndBeforeStart(t *testing.T) {
	m := pickerAt(t, 2025, time.March, 14)

	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "left")
	m = pressKey(t, m, "left")
	m = pressKey(t, m, "enter")

	require.NotNil(t, m.start)
	require.NotNil(t, m.end)
	assert.Equal(t, 12, m.start.Day())
	assert.Equal(t, 14, m.end.Day())
}

func TestPickerThirdSelectRestarts(t *testing.T) {
	m := pickerAt(t, 2025, time.March, 10)

	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "right")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "right")
	m = pressKey(t, m, "enter")

	require.NotNil(t, m.start)
	assert.Nil(t, m.end)
	assert.Equal(t, 12, m.start.Day())
}

func TestPickerSaveRequiresSelection(t *testing.T) {
	m := pickerAt(t, 2025, time.March, 10)

	m = pressKey(t, m, "g")

	assert.False(t, m.done)
	assert.NotEmpty(t, m.footerMsg)
}

func TestPickerSaveCompletesSelection(t *testing.T) {
	m := pickerAt(t, 2025, time.March, 10)

	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "right")
	m = pressKey(t, m, "enter")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	m = updated.(pickerModel)

	assert.True(t, m.done)
	require.NotNil(t, cmd)

	rng, ok := m.selectedRange()
	require.True(t, ok)
	assert.Equal(t, "2025-03-10..2025-03-11", rng.String())
}

func TestPickerQuitCancels(t *testing.T) {
	m := pickerAt(t, 2025, time.March, 10)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(pickerModel)

	assert.True(t, m.cancelled)
	require.NotNil(t, cmd)
}

func TestPickerOpensOverlays(t *testing.T) {
	m := pickerAt(t, 2025, time.March, 10)

	m = pressKey(t, m, "w")
	_, ok := m.overlay.(*weekdayOverlay)
	assert.True(t, ok)

	m.overlay = nil
	m = pressKey(t, m, "x")
	_, ok = m.overlay.(*rangeOverlay)
	assert.True(t, ok)

	m.overlay = nil
	m = pressKey(t, m, "f")
	_, ok = m.overlay.(*formatOverlay)
	assert.True(t, ok)
}

func TestPickerAppliesWeekdayOverlay(t *testing.T) {
	m := pickerAt(t, 2025, time.March, 10)
	m = pressKey(t, m, "w")

	o, ok := m.overlay.(*weekdayOverlay)
	require.True(t, ok)
	o.checked[time.Friday] = true

	updated, _ := m.Update(overlayResult{action: "apply"})
	m = updated.(pickerModel)

	assert.Nil(t, m.overlay)
	assert.Contains(t, m.opts.ExcludedWeekdays, time.Friday)
	assert.Contains(t, m.opts.ExcludedWeekdays, time.Saturday)
}

func TestPickerCancelledOverlayKeepsOptions(t *testing.T) {
	m := pickerAt(t, 2025, time.March, 10)
	m = pressKey(t, m, "w")

	o := m.overlay.(*weekdayOverlay)
	o.checked[time.Friday] = true

	updated, _ := m.Update(overlayResult{action: "cancel"})
	m = updated.(pickerModel)

	assert.Nil(t, m.overlay)
	assert.NotContains(t, m.opts.ExcludedWeekdays, time.Friday)
}

func TestPickerViewShowsMonth(t *testing.T) {
	m := pickerAt(t, 2025, time.March, 12)
	m.termWidth = 80
	m.termHeight = 24

	view := m.View()

	assert.Contains(t, view, "March 2025")
	assert.Contains(t, view, "Mo  Tu  We  Th  Fr  Sa  Su")
	assert.Contains(t, view, "31")
}

func TestMondayIndex(t *testing.T) {
	assert.Equal(t, 0, mondayIndex(time.Monday))
	assert.Equal(t, 5, mondayIndex(time.Saturday))
	assert.Equal(t, 6, mondayIndex(time.Sunday))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, daysInMonth(2025, time.March))
	assert.Equal(t, 28, daysInMonth(2025, time.February))
	assert.Equal(t, 29, daysInMonth(2024, time.February))
}
