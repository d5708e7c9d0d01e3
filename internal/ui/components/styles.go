package components

import "github.com/charmbracelet/lipgloss"

// Palette colors shared by the host view and the calendar sheet.
var (
	Primary   = lipgloss.Color("#7C3AED")
	Secondary = lipgloss.Color("#A78BFA")
	Success   = lipgloss.Color("#10B981")
	Warning   = lipgloss.Color("#F59E0B")
	Danger    = lipgloss.Color("#EF4444")
	Muted     = lipgloss.Color("#6B7280")
	Text      = lipgloss.Color("#F9FAFB")
	TextDim   = lipgloss.Color("#9CA3AF")
	Bg        = lipgloss.Color("#1F2937")
	BgDark    = lipgloss.Color("#111827")
)

type palette struct {
	primary, secondary, success, warning, danger lipgloss.Color
	muted, text, textDim, bg, bgDark             lipgloss.Color
}

var themes = map[string]palette{
	"default": {
		primary: "#7C3AED", secondary: "#A78BFA", success: "#10B981",
		warning: "#F59E0B", danger: "#EF4444", muted: "#6B7280",
		text: "#F9FAFB", textDim: "#9CA3AF", bg: "#1F2937", bgDark: "#111827",
	},
	// Blue accent for light terminal backgrounds
	"light": {
		primary: "#2563EB", secondary: "#3B82F6", success: "#059669",
		warning: "#D97706", danger: "#DC2626", muted: "#9CA3AF",
		text: "#111827", textDim: "#4B5563", bg: "#E5E7EB", bgDark: "#FFFFFF",
	},
}

// ApplyTheme swaps the palette. Unknown names leave it unchanged and
// report false.
func ApplyTheme(name string) bool {
	p, ok := themes[name]
	if !ok {
		return false
	}
	Primary, Secondary, Success = p.primary, p.secondary, p.success
	Warning, Danger, Muted = p.warning, p.danger, p.muted
	Text, TextDim, Bg, BgDark = p.text, p.textDim, p.bg, p.bgDark
	return true
}

// Themes lists the names accepted by ApplyTheme.
func Themes() []string {
	return []string{"default", "light"}
}
