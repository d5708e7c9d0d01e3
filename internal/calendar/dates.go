package calendar

import (
	"errors"
	"time"
)

// DefaultYearSpan is how many years past the current one the year picker offers.
const DefaultYearSpan = 20

// ErrPastDate is returned when a date before today is offered as a selection.
var ErrPastDate = errors.New("date is in the past")

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight on the 1st of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateClamped builds a date, pulling day back to the month's last day
// when the month is shorter (Feb 29 on a non-leap year becomes Feb 28).
func DateClamped(year int, month time.Month, day int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// AddMonths moves t by n months keeping the day of month where possible.
// Unlike time.AddDate it never spills into the following month.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	return DateClamped(first.Year(), first.Month(), d, t.Location())
}

// WithYear replaces the year of t, keeping month and day (clamped).
func WithYear(t time.Time, year int) time.Time {
	_, m, d := t.Date()
	return DateClamped(year, m, d, t.Location())
}

// CompareDay compares a and b truncated to the day.
// b is interpreted in a's location.
func CompareDay(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	switch {
	case ay != by:
		return cmpInt(ay, by)
	case am != bm:
		return cmpInt(int(am), int(bm))
	default:
		return cmpInt(ad, bd)
	}
}

// CompareMonth compares a and b truncated to the month.
func CompareMonth(a, b time.Time) int {
	ay, am, _ := a.Date()
	by, bm, _ := b.In(a.Location()).Date()
	if ay != by {
		return cmpInt(ay, by)
	}
	return cmpInt(int(am), int(bm))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return CompareDay(a, b) == 0
}

// IsPastDate reports whether d is strictly before now at day granularity.
func IsPastDate(d, now time.Time) bool {
	return CompareDay(d.In(now.Location()), now) < 0
}

// IsPastMonth reports whether m is strictly before now at month granularity.
func IsPastMonth(m, now time.Time) bool {
	return CompareMonth(m.In(now.Location()), now) < 0
}

// YearRange lists the years from now's year through span years later.
// A negative span is treated as zero.
func YearRange(now time.Time, span int) []int {
	if span < 0 {
		span = 0
	}
	start := now.Year()
	years := make([]int, 0, span+1)
	for y := start; y <= start+span; y++ {
		years = append(years, y)
	}
	return years
}

// ValidateSelectable returns ErrPastDate when d is before today.
func ValidateSelectable(d, now time.Time) error {
	if IsPastDate(d, now) {
		return ErrPastDate
	}
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
