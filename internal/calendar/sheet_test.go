package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference "now": Aug 15 2025, mid-morning
var refNow = time.Date(2025, 8, 15, 10, 30, 0, 0, time.UTC)

func newTestSheet(t *testing.T) *Sheet {
	t.Helper()
	s := NewSheet(FixedClock{T: refNow}, DefaultYearSpan)
	s.Open(date(2025, 8, 15))
	return s
}

func TestSheetOpenShowsSelectedMonth(t *testing.T) {
	s := newTestSheet(t)

	assert.Equal(t, date(2025, 8, 15), s.DisplayedMonth())
	assert.False(t, s.YearPickerVisible())

	cells := s.Grid()
	assert.Equal(t, int(date(2025, 8, 1).Weekday()), LeadingEmpties(s.DisplayedMonth()))

	idx := IndexOf(cells, date(2025, 8, 15))
	require.NotEqual(t, -1, idx)
	d, _ := cells[idx].Day()
	assert.True(t, s.IsSelected(d))

	for day := 1; day <= 14; day++ {
		assert.True(t, s.IsPastDate(date(2025, 8, day)), "day %d should be disabled", day)
	}
	assert.False(t, s.IsPastDate(date(2025, 8, 15)))
}

func TestSheetOpenNeverShowsPastMonth(t *testing.T) {
	s := NewSheet(FixedClock{T: refNow}, DefaultYearSpan)
	s.Open(date(2024, 3, 10))

	assert.False(t, s.IsPastMonth(s.DisplayedMonth()))
	assert.Equal(t, 0, CompareMonth(s.DisplayedMonth(), refNow))
}

func TestGoToPreviousMonthBlockedAtCurrentMonth(t *testing.T) {
	s := newTestSheet(t)

	assert.False(t, s.CanGoToPreviousMonth())
	for i := 0; i < 3; i++ {
		assert.False(t, s.GoToPreviousMonth())
		assert.Equal(t, date(2025, 8, 15), s.DisplayedMonth())
	}
}

func TestNavigateForwardAndBack(t *testing.T) {
	s := newTestSheet(t)

	s.GoToNextMonth()
	assert.Equal(t, date(2025, 9, 15), s.DisplayedMonth())
	assert.True(t, s.CanGoToPreviousMonth())

	assert.True(t, s.GoToPreviousMonth())
	assert.Equal(t, date(2025, 8, 15), s.DisplayedMonth())
	assert.False(t, s.GoToPreviousMonth())
}

func TestGoToNextMonthUnbounded(t *testing.T) {
	s := newTestSheet(t)
	for i := 0; i < 12*50; i++ {
		s.GoToNextMonth()
	}
	assert.Equal(t, date(2075, 8, 15), s.DisplayedMonth())
}

func TestNavigationDoesNotTouchSelection(t *testing.T) {
	s := newTestSheet(t)
	s.GoToNextMonth()
	s.ToggleYearPicker()
	s.ToggleYearPicker()
	assert.Equal(t, date(2025, 8, 15), s.Selected())
}

func TestSelectYearPreservesMonthAndDay(t *testing.T) {
	s := NewSheet(FixedClock{T: refNow}, DefaultYearSpan)
	s.Open(date(2026, 3, 15))

	require.True(t, s.SelectYear(2030))
	assert.Equal(t, date(2030, 3, 15), s.DisplayedMonth())
}

func TestSelectYearClampsLeapDay(t *testing.T) {
	s := NewSheet(FixedClock{T: refNow}, DefaultYearSpan)
	s.Open(date(2028, 2, 29))

	require.True(t, s.SelectYear(2029))
	assert.Equal(t, date(2029, 2, 28), s.DisplayedMonth())
}

func TestSelectYearScenario(t *testing.T) {
	s := newTestSheet(t)
	s.ToggleYearPicker()
	require.True(t, s.YearPickerVisible())

	require.True(t, s.SelectYear(2026))
	assert.Equal(t, date(2026, 8, 15), s.DisplayedMonth())
	assert.False(t, s.YearPickerVisible())
}

func TestSelectYearOutOfRange(t *testing.T) {
	s := newTestSheet(t)
	s.ToggleYearPicker()

	assert.False(t, s.SelectYear(2024))
	assert.False(t, s.SelectYear(2025+DefaultYearSpan+1))
	assert.True(t, s.YearPickerVisible())
	assert.Equal(t, date(2025, 8, 15), s.DisplayedMonth())
}

func TestSelectCurrentYearFromEarlierMonthShowsCurrentMonth(t *testing.T) {
	s := NewSheet(FixedClock{T: refNow}, DefaultYearSpan)
	s.Open(date(2026, 3, 10))

	require.True(t, s.SelectYear(2025))
	assert.Equal(t, date(2025, 8, 10), s.DisplayedMonth())
	assert.False(t, s.IsPastMonth(s.DisplayedMonth()))
}

func TestYearOptionsStartAtCurrentYear(t *testing.T) {
	s := newTestSheet(t)
	years := s.YearOptions()

	require.NotEmpty(t, years)
	assert.Equal(t, 2025, years[0])
	assert.Equal(t, 2045, years[len(years)-1])
	for _, y := range years {
		assert.GreaterOrEqual(t, y, refNow.Year())
	}
}

func TestSelectDay(t *testing.T) {
	s := newTestSheet(t)

	assert.False(t, s.SelectDay(date(2025, 8, 14)))
	assert.Equal(t, date(2025, 8, 15), s.Selected())

	assert.True(t, s.SelectDay(date(2025, 8, 20)))
	assert.Equal(t, date(2025, 8, 20), s.Selected())
	assert.True(t, s.IsSelected(date(2025, 8, 20)))
	assert.False(t, s.IsSelected(date(2025, 8, 15)))
}

func TestFirstSelectableDay(t *testing.T) {
	s := newTestSheet(t)
	assert.Equal(t, date(2025, 8, 15), s.FirstSelectableDay())

	s.GoToNextMonth()
	assert.Equal(t, date(2025, 9, 1), s.FirstSelectableDay())

	// Selection in the past: cursor lands on today
	s.Open(date(2025, 8, 2))
	assert.Equal(t, date(2025, 8, 15), s.FirstSelectableDay())
}

func TestNewSheetNegativeSpan(t *testing.T) {
	s := NewSheet(FixedClock{T: refNow}, -1)
	assert.Equal(t, DefaultYearSpan, s.YearSpan())
}
