package ui

import (
	"github.com/charmbracelet/lipgloss"

	"calsheet/internal/ui/components"
)

// Host view styles. Built as functions so a theme applied after package
// init is picked up.

func headingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(components.Text).
		MarginBottom(1)
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(components.TextDim)
}

func dateBadgeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(components.Secondary).
		Background(components.Bg).
		Padding(1, 3)
}

func buttonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(components.Primary).
		Padding(1, 6)
}

func helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(components.Muted).
		MarginTop(1)
}
