package calendar

import "time"

// DaysPerWeek is the width of a month grid row.
const DaysPerWeek = 7

// CellKind tells an empty padding cell apart from a real day.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellDay
)

// DayCell is one position in a month grid: either leading padding or a date.
type DayCell struct {
	Kind CellKind
	Date time.Time // zero for CellEmpty
}

// EmptyCell returns a padding cell.
func EmptyCell() DayCell {
	return DayCell{Kind: CellEmpty}
}

// DayOf returns a cell holding date d.
func DayOf(d time.Time) DayCell {
	return DayCell{Kind: CellDay, Date: d}
}

func (c DayCell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// Day returns the cell's date and true, or the zero time and false for padding.
func (c DayCell) Day() (time.Time, bool) {
	if c.Kind != CellDay {
		return time.Time{}, false
	}
	return c.Date, true
}

// LeadingEmpties is the Sunday-based weekday index of the 1st of month's month.
func LeadingEmpties(month time.Time) int {
	return int(StartOfMonth(month).Weekday())
}

// BuildGrid lays out month as row-major cells: one empty cell per weekday
// before the 1st (weeks start on Sunday), then every day of the month.
// The last row is not padded.
func BuildGrid(month time.Time) []DayCell {
	first := StartOfMonth(month)
	y, m, _ := first.Date()
	lead := int(first.Weekday())
	days := DaysInMonth(y, m)

	cells := make([]DayCell, 0, lead+days)
	for i := 0; i < lead; i++ {
		cells = append(cells, EmptyCell())
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, DayOf(time.Date(y, m, day, 0, 0, 0, 0, first.Location())))
	}
	return cells
}

// Rows splits cells into weeks of DaysPerWeek. The final week may be short.
func Rows(cells []DayCell) [][]DayCell {
	rows := make([][]DayCell, 0, (len(cells)+DaysPerWeek-1)/DaysPerWeek)
	for start := 0; start < len(cells); start += DaysPerWeek {
		end := min(start+DaysPerWeek, len(cells))
		rows = append(rows, cells[start:end])
	}
	return rows
}

// IndexOf returns the grid index holding d, or -1.
func IndexOf(cells []DayCell, d time.Time) int {
	for i, c := range cells {
		if date, ok := c.Day(); ok && SameDay(date, d) {
			return i
		}
	}
	return -1
}
