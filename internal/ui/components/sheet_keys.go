package components

import (
	"github.com/charmbracelet/bubbles/key"

	"calsheet/internal/i18n"
)

// SheetKeyMap holds the calendar sheet key bindings.
type SheetKeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	PrevMonth   key.Binding
	NextMonth   key.Binding
	ToggleYears key.Binding
	Select      key.Binding
	Confirm     key.Binding
	Close       key.Binding
	Background  key.Binding
}

// DefaultSheetKeys returns the standard bindings. Help text is looked up
// at call time so it follows i18n.Init.
func DefaultSheetKeys() SheetKeyMap {
	return SheetKeyMap{
		Left:        key.NewBinding(key.WithKeys("left", "h")),
		Right:       key.NewBinding(key.WithKeys("right", "l")),
		Up:          key.NewBinding(key.WithKeys("up", "k")),
		Down:        key.NewBinding(key.WithKeys("down", "j")),
		PrevMonth:   key.NewBinding(key.WithKeys("[", "pgup", "H"), key.WithHelp("[/]", i18n.T("sheet.help.month"))),
		NextMonth:   key.NewBinding(key.WithKeys("]", "pgdown", "L")),
		ToggleYears: key.NewBinding(key.WithKeys("y", "tab"), key.WithHelp("y", i18n.T("sheet.help.years"))),
		Select:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", i18n.T("sheet.help.select"))),
		Confirm:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", i18n.T("sheet.help.confirm"))),
		Close:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", i18n.T("sheet.help.close"))),
		Background:  key.NewBinding(key.WithKeys("esc")),
	}
}

// ShortHelp implements help.KeyMap.
func (k SheetKeyMap) ShortHelp() []key.Binding {
	move := key.NewBinding(key.WithKeys("left"), key.WithHelp("←↑↓→", i18n.T("sheet.help.move")))
	return []key.Binding{move, k.Select, k.PrevMonth, k.ToggleYears, k.Confirm, k.Close}
}

// FullHelp implements help.KeyMap.
func (k SheetKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
