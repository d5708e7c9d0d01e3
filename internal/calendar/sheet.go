package calendar

import "time"

// Sheet holds the browsing state of an open calendar sheet: the month on
// screen, the tentative selection, and whether the year grid is showing.
// All "today" decisions go through the clock.
type Sheet struct {
	clock    Clock
	yearSpan int

	displayed         time.Time
	selected          time.Time
	yearPickerVisible bool
}

// NewSheet returns a sheet with the given year span. A nil clock means the
// system clock; a negative span falls back to DefaultYearSpan.
func NewSheet(clock Clock, yearSpan int) *Sheet {
	if clock == nil {
		clock = RealClock{}
	}
	if yearSpan < 0 {
		yearSpan = DefaultYearSpan
	}
	s := &Sheet{clock: clock, yearSpan: yearSpan}
	s.Open(clock.Now())
	return s
}

// Open resets the sheet for a new interaction: the displayed month follows
// selected, but never starts before the current month.
func (s *Sheet) Open(selected time.Time) {
	now := s.clock.Now()
	s.selected = StartOfDay(selected)
	s.displayed = s.selected
	if IsPastMonth(s.displayed, now) {
		s.displayed = StartOfDay(now)
	}
	s.yearPickerVisible = false
}

func (s *Sheet) Now() time.Time {
	return s.clock.Now()
}

// Today is the current date at midnight.
func (s *Sheet) Today() time.Time {
	return StartOfDay(s.clock.Now())
}

// DisplayedMonth is the date the grid is built from. Its day of month is
// kept so year changes can preserve it.
func (s *Sheet) DisplayedMonth() time.Time {
	return s.displayed
}

func (s *Sheet) Selected() time.Time {
	return s.selected
}

func (s *Sheet) YearSpan() int {
	return s.yearSpan
}

// Grid builds the cells for the displayed month.
func (s *Sheet) Grid() []DayCell {
	return BuildGrid(s.displayed)
}

func (s *Sheet) IsPastDate(d time.Time) bool {
	return IsPastDate(d, s.clock.Now())
}

func (s *Sheet) IsPastMonth(m time.Time) bool {
	return IsPastMonth(m, s.clock.Now())
}

func (s *Sheet) IsSelected(d time.Time) bool {
	return SameDay(d, s.selected)
}

// CanGoToPreviousMonth drives the enabled state of the back arrow.
func (s *Sheet) CanGoToPreviousMonth() bool {
	return !s.IsPastMonth(AddMonths(s.displayed, -1))
}

// GoToPreviousMonth steps back one month unless that month is already over.
func (s *Sheet) GoToPreviousMonth() bool {
	prev := AddMonths(s.displayed, -1)
	if s.IsPastMonth(prev) {
		return false
	}
	s.displayed = prev
	return true
}

// GoToNextMonth steps forward one month. There is no upper bound.
func (s *Sheet) GoToNextMonth() {
	s.displayed = AddMonths(s.displayed, 1)
}

// YearOptions lists the years the year picker may offer.
func (s *Sheet) YearOptions() []int {
	return YearRange(s.clock.Now(), s.yearSpan)
}

// SelectYear moves the displayed month to year y keeping month and day.
// Years outside YearOptions are ignored. When the same month in y is
// already over (only possible for the current year) the current month is
// shown instead. The year picker closes on success.
func (s *Sheet) SelectYear(y int) bool {
	now := s.clock.Now()
	if y < now.Year() || y > now.Year()+s.yearSpan {
		return false
	}
	next := WithYear(s.displayed, y)
	if IsPastMonth(next, now) {
		next = DateClamped(now.Year(), now.Month(), s.displayed.Day(), s.displayed.Location())
	}
	s.displayed = next
	s.yearPickerVisible = false
	return true
}

func (s *Sheet) YearPickerVisible() bool {
	return s.yearPickerVisible
}

// ToggleYearPicker flips between the day grid and the year grid.
func (s *Sheet) ToggleYearPicker() {
	s.yearPickerVisible = !s.yearPickerVisible
}

// SelectDay makes d the tentative selection unless it is in the past.
func (s *Sheet) SelectDay(d time.Time) bool {
	if s.IsPastDate(d) {
		return false
	}
	s.selected = StartOfDay(d)
	return true
}

// FirstSelectableDay is where a cursor should land in the displayed month:
// the selected day if it is on screen, else the first day that is not past.
func (s *Sheet) FirstSelectableDay() time.Time {
	if CompareMonth(s.selected, s.displayed) == 0 && !s.IsPastDate(s.selected) {
		return s.selected
	}
	first := StartOfMonth(s.displayed)
	if today := s.Today(); CompareMonth(first, today) == 0 && first.Before(today) {
		return today
	}
	return first
}
