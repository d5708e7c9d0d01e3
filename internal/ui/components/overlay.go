package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderBottomSheet draws sheet over base, anchored to the bottom edge.
// progress (0..1) controls how much of the sheet has slid up into view;
// the base is dimmed behind it.
func RenderBottomSheet(base, sheet string, width, height int, progress float64) string {
	if sheet == "" || progress <= 0 {
		return base
	}
	progress = math.Min(progress, 1)

	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	if height > 0 && len(baseLines) > height {
		baseLines = baseLines[:height]
	}

	dim := lipgloss.NewStyle().Foreground(Muted)
	for i, line := range baseLines {
		baseLines[i] = dim.Render(ansi.Strip(line))
	}

	sheetLines := strings.Split(sheet, "\n")
	shown := int(math.Ceil(float64(len(sheetLines)) * progress))
	sheetLines = sheetLines[:shown]
	if shown > len(baseLines) {
		sheetLines = sheetLines[:len(baseLines)]
	}

	start := len(baseLines) - len(sheetLines)
	for i, line := range sheetLines {
		if width > 0 {
			line = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
		}
		baseLines[start+i] = line
	}

	return strings.Join(baseLines, "\n")
}
