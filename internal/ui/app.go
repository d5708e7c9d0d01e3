package ui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calsheet/config"
	"calsheet/internal/calendar"
	"calsheet/internal/i18n"
	"calsheet/internal/ui/components"
)

// App is the host screen: it owns the selected date, shows it, and opens
// the calendar sheet on request.
type App struct {
	selected time.Time

	sheet        components.CalendarSheet
	showCalendar bool

	keys   appKeyMap
	help   help.Model
	width  int
	height int

	// Aborted is set when the user quit with ctrl+c
	Aborted bool
}

type appKeyMap struct {
	Open  key.Binding
	Quit  key.Binding
	Abort key.Binding
}

func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Quit}
}

func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// NewApp creates the host view with initial as the selected date.
func NewApp(cfg *config.Config, initial time.Time, clock calendar.Clock) App {
	if clock == nil {
		clock = calendar.RealClock{}
	}

	sheet := components.NewCalendarSheet(clock, components.SheetOptions{
		Title:      cfg.Title,
		YearSpan:   cfg.YearSpan,
		CloseDelay: cfg.CloseDelay(),
	})

	return App{
		selected: calendar.StartOfDay(initial),
		sheet:    sheet,
		keys: appKeyMap{
			Open:  key.NewBinding(key.WithKeys("enter", " ", "o"), key.WithHelp("enter", i18n.T("app.help.open"))),
			Quit:  key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", i18n.T("app.help.quit"))),
			Abort: key.NewBinding(key.WithKeys("ctrl+c")),
		},
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

// Selected returns the host's current date.
func (a App) Selected() time.Time {
	return a.selected
}

// CalendarOpen reports whether the sheet is showing or animating.
func (a App) CalendarOpen() bool {
	return a.showCalendar
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.sheet.SetSize(msg.Width, msg.Height)
		return a, nil

	case components.DateSelectedMsg:
		a.selected = msg.Date
		slog.Info("date selected", "date", msg.Date.Format(time.DateOnly))
		return a, nil

	case components.SheetDismissedMsg:
		a.selected = msg.Date
		a.showCalendar = false
		slog.Info("calendar dismissed",
			"date", msg.Date.Format(time.DateOnly),
			"reason", msg.Reason.String())
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Abort) {
			a.Aborted = true
			return a, tea.Quit
		}
		if a.showCalendar {
			break
		}
		switch {
		case key.Matches(msg, a.keys.Open):
			a.showCalendar = true
			return a, a.sheet.Open(a.selected)
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		}
		return a, nil
	}

	if !a.showCalendar {
		return a, nil
	}
	var cmd tea.Cmd
	a.sheet, cmd = a.sheet.Update(msg)
	return a, cmd
}

func (a App) View() string {
	base := a.renderHost()
	if !a.showCalendar {
		return base
	}
	return components.RenderBottomSheet(base, a.sheet.View(), a.width, a.height, a.sheet.Progress())
}

func (a App) renderHost() string {
	var b strings.Builder

	b.WriteString(headingStyle().Render(i18n.T("app.heading")))
	b.WriteString("\n\n")
	b.WriteString(labelStyle().Render(i18n.T("app.selected_label")))
	b.WriteString("\n")
	b.WriteString(dateBadgeStyle().Render(a.selected.Format("January 2, 2006")))
	b.WriteString("\n\n")
	b.WriteString(buttonStyle().Render(i18n.T("app.open_button")))
	b.WriteString("\n")
	b.WriteString(helpStyle().Render(a.help.ShortHelpView(a.keys.ShortHelp())))

	content := lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, content)
}
