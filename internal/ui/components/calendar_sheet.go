package components

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calsheet/internal/calendar"
	"calsheet/internal/i18n"
)

// DismissReason says how the sheet was closed.
type DismissReason int

const (
	DismissConfirm DismissReason = iota
	DismissBackground
	DismissClose
)

func (r DismissReason) String() string {
	switch r {
	case DismissConfirm:
		return "confirm"
	case DismissBackground:
		return "background"
	case DismissClose:
		return "close"
	}
	return "unknown"
}

// DateSelectedMsg is sent when a day is picked. The sheet stays open.
type DateSelectedMsg struct {
	Date time.Time
}

// SheetDismissedMsg is sent once, after the close animation finishes.
type SheetDismissedMsg struct {
	Date   time.Time
	Reason DismissReason
}

// sheetFrameMsg advances the slide animation. seq ties it to one animation
// so ticks from an earlier open/close are dropped.
type sheetFrameMsg struct {
	seq int
}

type presentation int

const (
	presentHidden presentation = iota
	presentOpening
	presentShown
	presentClosing
)

const (
	// presentFrames is how many ticks a slide in or out takes
	presentFrames = 6

	// DefaultCloseDelay is the length of the slide animation
	DefaultCloseDelay = 300 * time.Millisecond

	yearColumns = 4
	cellWidth   = 5
)

// SheetOptions configures a CalendarSheet.
type SheetOptions struct {
	Title      string
	YearSpan   int
	CloseDelay time.Duration
}

// CalendarSheet is a bottom sheet holding a month grid and a year grid.
// It never writes the host's date; it reports picks and dismissal as
// messages.
type CalendarSheet struct {
	sheet      *calendar.Sheet
	title      string
	closeDelay time.Duration
	keys       SheetKeyMap
	help       help.Model

	state  presentation
	frame  int
	seq    int
	reason DismissReason

	cursor     time.Time // focused day in the grid
	yearCursor int       // index into YearOptions
	width      int
	height     int
}

// NewCalendarSheet creates a closed sheet.
func NewCalendarSheet(clock calendar.Clock, opts SheetOptions) CalendarSheet {
	if opts.Title == "" {
		opts.Title = i18n.T("sheet.default_title")
	}
	if opts.CloseDelay <= 0 {
		opts.CloseDelay = DefaultCloseDelay
	}
	if opts.YearSpan <= 0 {
		opts.YearSpan = calendar.DefaultYearSpan
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(Muted)

	return CalendarSheet{
		sheet:      calendar.NewSheet(clock, opts.YearSpan),
		title:      opts.Title,
		closeDelay: opts.CloseDelay,
		keys:       DefaultSheetKeys(),
		help:       h,
		width:      80,
		height:     24,
	}
}

// Open presents the sheet for selected and starts the slide-in.
func (c *CalendarSheet) Open(selected time.Time) tea.Cmd {
	c.sheet.Open(selected)
	c.cursor = c.sheet.FirstSelectableDay()
	c.state = presentOpening
	c.frame = 0
	c.seq++
	slog.Debug("calendar sheet opened",
		"selected", selected.Format(time.DateOnly),
		"displayed", c.sheet.DisplayedMonth().Format("2006-01"))
	return c.nextFrame()
}

// Visible reports whether any part of the sheet is on screen.
func (c CalendarSheet) Visible() bool {
	return c.state != presentHidden
}

// Closing reports whether the slide-out is running.
func (c CalendarSheet) Closing() bool {
	return c.state == presentClosing
}

// Progress is how far the sheet has slid in, from 0 to 1.
func (c CalendarSheet) Progress() float64 {
	return float64(c.frame) / float64(presentFrames)
}

// Sheet exposes the browsing state.
func (c CalendarSheet) Sheet() *calendar.Sheet {
	return c.sheet
}

// Cursor returns the focused day.
func (c CalendarSheet) Cursor() time.Time {
	return c.cursor
}

func (c CalendarSheet) Title() string {
	return c.title
}

// SetSize sets the terminal dimensions the sheet is laid out in.
func (c *CalendarSheet) SetSize(width, height int) {
	c.width = width
	c.height = height
}

func (c CalendarSheet) nextFrame() tea.Cmd {
	seq := c.seq
	return tea.Tick(c.closeDelay/presentFrames, func(time.Time) tea.Msg {
		return sheetFrameMsg{seq: seq}
	})
}

// dismiss starts the slide-out. Repeated calls while closing do nothing,
// so the dismissal message fires once.
func (c *CalendarSheet) dismiss(reason DismissReason) tea.Cmd {
	if c.state == presentClosing || c.state == presentHidden {
		return nil
	}
	c.state = presentClosing
	c.reason = reason
	c.seq++
	slog.Debug("calendar sheet dismissing", "reason", reason.String())
	return c.nextFrame()
}

// Update handles keys and animation ticks.
func (c CalendarSheet) Update(msg tea.Msg) (CalendarSheet, tea.Cmd) {
	switch msg := msg.(type) {
	case sheetFrameMsg:
		return c.advance(msg)

	case tea.WindowSizeMsg:
		c.SetSize(msg.Width, msg.Height)
		return c, nil

	case tea.KeyMsg:
		if c.state != presentOpening && c.state != presentShown {
			return c, nil
		}
		return c.handleKey(msg)
	}

	return c, nil
}

func (c CalendarSheet) advance(msg sheetFrameMsg) (CalendarSheet, tea.Cmd) {
	if msg.seq != c.seq {
		return c, nil
	}

	switch c.state {
	case presentOpening:
		c.frame++
		if c.frame >= presentFrames {
			c.frame = presentFrames
			c.state = presentShown
			return c, nil
		}
		return c, c.nextFrame()

	case presentClosing:
		c.frame--
		if c.frame > 0 {
			return c, c.nextFrame()
		}
		c.frame = 0
		c.state = presentHidden
		dismissed := SheetDismissedMsg{Date: c.sheet.Selected(), Reason: c.reason}
		return c, func() tea.Msg { return dismissed }
	}

	return c, nil
}

func (c CalendarSheet) handleKey(msg tea.KeyMsg) (CalendarSheet, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.Confirm):
		return c, c.dismiss(DismissConfirm)
	case key.Matches(msg, c.keys.Close):
		return c, c.dismiss(DismissClose)
	case key.Matches(msg, c.keys.Background):
		return c, c.dismiss(DismissBackground)
	case key.Matches(msg, c.keys.ToggleYears):
		c.sheet.ToggleYearPicker()
		c.yearCursor = c.displayedYearIndex()
		return c, nil
	case key.Matches(msg, c.keys.PrevMonth):
		if c.sheet.GoToPreviousMonth() {
			c.cursor = c.sheet.FirstSelectableDay()
		}
		return c, nil
	case key.Matches(msg, c.keys.NextMonth):
		c.sheet.GoToNextMonth()
		c.cursor = c.sheet.FirstSelectableDay()
		return c, nil
	}

	if c.sheet.YearPickerVisible() {
		return c.handleYearKey(msg)
	}
	return c.handleDayKey(msg)
}

func (c CalendarSheet) handleDayKey(msg tea.KeyMsg) (CalendarSheet, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.Left):
		c.moveCursor(-1)
	case key.Matches(msg, c.keys.Right):
		c.moveCursor(1)
	case key.Matches(msg, c.keys.Up):
		c.moveCursor(-calendar.DaysPerWeek)
	case key.Matches(msg, c.keys.Down):
		c.moveCursor(calendar.DaysPerWeek)
	case key.Matches(msg, c.keys.Select):
		if !c.sheet.SelectDay(c.cursor) {
			return c, nil
		}
		picked := DateSelectedMsg{Date: c.sheet.Selected()}
		slog.Debug("calendar day picked", "date", picked.Date.Format(time.DateOnly))
		return c, func() tea.Msg { return picked }
	}
	return c, nil
}

// moveCursor shifts the focused day, following it into the next or
// previous month. It never lands on a past day.
func (c *CalendarSheet) moveCursor(days int) {
	next := c.cursor.AddDate(0, 0, days)
	if c.sheet.IsPastDate(next) {
		return
	}
	switch cmp := calendar.CompareMonth(next, c.sheet.DisplayedMonth()); {
	case cmp > 0:
		c.sheet.GoToNextMonth()
	case cmp < 0:
		if !c.sheet.GoToPreviousMonth() {
			return
		}
	}
	c.cursor = next
}

func (c CalendarSheet) handleYearKey(msg tea.KeyMsg) (CalendarSheet, tea.Cmd) {
	years := c.sheet.YearOptions()
	move := func(delta int) {
		if i := c.yearCursor + delta; i >= 0 && i < len(years) {
			c.yearCursor = i
		}
	}

	switch {
	case key.Matches(msg, c.keys.Left):
		move(-1)
	case key.Matches(msg, c.keys.Right):
		move(1)
	case key.Matches(msg, c.keys.Up):
		move(-yearColumns)
	case key.Matches(msg, c.keys.Down):
		move(yearColumns)
	case key.Matches(msg, c.keys.Select):
		if c.yearCursor < len(years) && c.sheet.SelectYear(years[c.yearCursor]) {
			c.cursor = c.sheet.FirstSelectableDay()
		}
	}
	return c, nil
}

func (c CalendarSheet) displayedYearIndex() int {
	year := c.sheet.DisplayedMonth().Year()
	for i, y := range c.sheet.YearOptions() {
		if y == year {
			return i
		}
	}
	return 0
}

// View renders the sheet body without positioning.
func (c CalendarSheet) View() string {
	if c.state == presentHidden {
		return ""
	}

	width := min(max(c.width-4, calendar.DaysPerWeek*cellWidth+4), 60)

	var b strings.Builder
	b.WriteString(c.renderHeader(width))
	b.WriteString("\n\n")
	b.WriteString(c.renderMonthBar(width))
	b.WriteString("\n\n")
	if c.sheet.YearPickerVisible() {
		b.WriteString(c.renderYearGrid(width))
	} else {
		b.WriteString(c.renderDayGrid(width))
	}
	b.WriteString("\n\n")

	confirm := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(Danger).
		Width(width - 4).
		Align(lipgloss.Center).
		Render(i18n.T("sheet.confirm"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, confirm))
	b.WriteString("\n\n")
	b.WriteString(c.help.ShortHelpView(c.keys.ShortHelp()))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true, true, false, true).
		BorderForeground(Muted).
		Padding(1, 1, 0, 1).
		Render(b.String())
}

func (c CalendarSheet) renderHeader(width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(Text).Render(c.title)
	closeIcon := lipgloss.NewStyle().Foreground(Text).Render("✕")
	gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(closeIcon))
	return title + strings.Repeat(" ", gap) + closeIcon
}

func (c CalendarSheet) renderMonthBar(width int) string {
	label := lipgloss.NewStyle().Bold(true).Foreground(Text).
		Render(c.sheet.DisplayedMonth().Format("January 2006"))
	chevron := lipgloss.NewStyle().Foreground(Primary).Render(" ›")
	if c.sheet.YearPickerVisible() {
		chevron = lipgloss.NewStyle().Foreground(Primary).Render(" ⌄")
	}

	backStyle := lipgloss.NewStyle().Foreground(Primary)
	if !c.sheet.CanGoToPreviousMonth() {
		backStyle = lipgloss.NewStyle().Foreground(Muted)
	}
	arrows := backStyle.Render("‹") + "   " + lipgloss.NewStyle().Foreground(Primary).Render("›")

	left := label + chevron
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(arrows))
	return left + strings.Repeat(" ", gap) + arrows
}

func (c CalendarSheet) renderDayGrid(width int) string {
	headerStyle := lipgloss.NewStyle().Foreground(Muted).Width(cellWidth).Align(lipgloss.Center)
	dayStyle := lipgloss.NewStyle().Foreground(Text).Width(cellWidth).Align(lipgloss.Center)
	pastStyle := dayStyle.Foreground(Muted)
	selectedStyle := dayStyle.Bold(true).Foreground(Secondary).Background(Bg)
	cursorStyle := dayStyle.Bold(true).Foreground(Text).Background(Primary)

	var header strings.Builder
	for _, name := range i18n.Weekdays() {
		header.WriteString(headerStyle.Render(name))
	}

	lines := []string{header.String()}
	for _, row := range calendar.Rows(c.sheet.Grid()) {
		var line strings.Builder
		for _, cell := range row {
			d, ok := cell.Day()
			if !ok {
				line.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}

			label := fmt.Sprintf("%d", d.Day())
			var style lipgloss.Style
			switch {
			case c.sheet.IsPastDate(d):
				style = pastStyle
			case calendar.SameDay(d, c.cursor):
				style = cursorStyle
			case c.sheet.IsSelected(d):
				style = selectedStyle
			default:
				style = dayStyle
			}
			line.WriteString(style.Render(label))
		}
		lines = append(lines, line.String())
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}

func (c CalendarSheet) renderYearGrid(width int) string {
	yearStyle := lipgloss.NewStyle().Foreground(Text).Width(8).Align(lipgloss.Center)
	currentStyle := yearStyle.Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(Secondary)
	cursorStyle := yearStyle.Bold(true).Foreground(Text).Background(Primary)

	displayed := c.sheet.DisplayedMonth().Year()
	years := c.sheet.YearOptions()

	var lines []string
	for start := 0; start < len(years); start += yearColumns {
		var line strings.Builder
		for i := start; i < min(start+yearColumns, len(years)); i++ {
			style := yearStyle
			switch {
			case i == c.yearCursor:
				style = cursorStyle
			case years[i] == displayed:
				style = currentStyle
			}
			line.WriteString(style.Render(fmt.Sprintf("%d", years[i])))
		}
		lines = append(lines, line.String())
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}
