package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calsheet/internal/ui/components"
)

// SelectorItem is one choice offered by a Selector.
type SelectorItem struct {
	ID    string
	Label string
}

type selectorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

func (k selectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Cancel}
}

func (k selectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var selectorKeys = selectorKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// Selector is a single-choice list used by interactive subcommands.
type Selector struct {
	title     string
	items     []SelectorItem
	cursor    int
	selected  string
	cancelled bool
	help      help.Model
}

// NewSelector starts with the cursor on the item whose ID is current,
// or on the first item.
func NewSelector(title string, items []SelectorItem, current string) Selector {
	s := Selector{title: title, items: items, help: help.New()}
	for i, item := range items {
		if item.ID == current {
			s.cursor = i
			break
		}
	}
	return s
}

func (s Selector) Init() tea.Cmd {
	return nil
}

func (s Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(keyMsg, selectorKeys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, selectorKeys.Down):
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, selectorKeys.Select):
		if len(s.items) > 0 {
			s.selected = s.items[s.cursor].ID
		}
		return s, tea.Quit
	case key.Matches(keyMsg, selectorKeys.Cancel):
		s.cancelled = true
		return s, tea.Quit
	}
	return s, nil
}

func (s Selector) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(components.Primary).MarginBottom(1)
	itemStyle := lipgloss.NewStyle().PaddingLeft(4).Foreground(components.Text)
	cursorStyle := lipgloss.NewStyle().PaddingLeft(4).Bold(true).
		Foreground(components.BgDark).Background(components.Primary)

	var b strings.Builder
	b.WriteString(titleStyle.Render(s.title))
	b.WriteString("\n\n")

	for i, item := range s.items {
		if i == s.cursor {
			b.WriteString(cursorStyle.Render(fmt.Sprintf("> %s", item.Label)))
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", item.Label)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.help.View(selectorKeys))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s Selector) Selected() string {
	return s.selected
}

func (s Selector) Cancelled() bool {
	return s.cancelled
}

// RunSelector runs the selector TUI and returns the chosen ID.
// ok is false when the user cancelled.
func RunSelector(title string, items []SelectorItem, current string) (id string, ok bool, err error) {
	p := tea.NewProgram(NewSelector(title, items, current))
	m, err := p.Run()
	if err != nil {
		return "", false, err
	}

	result := m.(Selector)
	if result.Cancelled() || result.Selected() == "" {
		return "", false, nil
	}
	return result.Selected(), true, nil
}
