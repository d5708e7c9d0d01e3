package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calsheet/config"
	"calsheet/internal/calendar"
	"calsheet/internal/export"
	"calsheet/internal/i18n"
	"calsheet/internal/ui/components"
)

var testNow = time.Date(2025, 8, 15, 10, 30, 0, 0, time.UTC)

func setTempHome(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("USERPROFILE", dir)
}

func setFlags(t *testing.T, date, title, format, output string) {
	t.Helper()
	prevDate, prevTitle, prevFormat, prevOutput := flagDate, flagTitle, flagFormat, flagOutput
	t.Cleanup(func() {
		flagDate, flagTitle, flagFormat, flagOutput = prevDate, prevTitle, prevFormat, prevOutput
	})
	flagDate, flagTitle, flagFormat, flagOutput = date, title, format, output
}

func TestResolveOptionsDefaults(t *testing.T) {
	setFlags(t, "", "", "", "")

	opts, err := resolveOptions(config.DefaultConfig(), calendar.FixedClock{T: testNow})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC), opts.initial)
	assert.Equal(t, export.FormatText, opts.format)
	assert.Equal(t, "", opts.cfg.Title)
}

func TestResolveOptionsFlagsOverrideConfig(t *testing.T) {
	setFlags(t, "2025-09-01", "Launch", "ics", "")

	cfg := config.DefaultConfig()
	cfg.Title = "From config"
	cfg.DateFormat = "json"

	opts, err := resolveOptions(cfg, calendar.FixedClock{T: testNow})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), opts.initial)
	assert.Equal(t, export.FormatICS, opts.format)
	assert.Equal(t, "Launch", opts.cfg.Title)
}

func TestResolveOptionsRejectsPastDate(t *testing.T) {
	setFlags(t, "2025-08-14", "", "", "")

	_, err := resolveOptions(config.DefaultConfig(), calendar.FixedClock{T: testNow})
	assert.True(t, errors.Is(err, calendar.ErrPastDate))
}

func TestResolveOptionsRejectsBadInput(t *testing.T) {
	setFlags(t, "15/08/2025", "", "", "")
	_, err := resolveOptions(config.DefaultConfig(), calendar.FixedClock{T: testNow})
	assert.Error(t, err)

	setFlags(t, "", "", "xml", "")
	_, err = resolveOptions(config.DefaultConfig(), calendar.FixedClock{T: testNow})
	assert.True(t, errors.Is(err, export.ErrUnknownFormat))
}

func TestWriteGrid(t *testing.T) {
	require.NoError(t, i18n.Init("en"))

	var buf bytes.Buffer
	require.NoError(t, writeGrid(&buf, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), testNow))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "August 2025", lines[0])
	assert.Equal(t, "  SUN  MON  TUE  WED  THU  FRI  SAT", lines[1])
	assert.Equal(t, strings.Repeat(" ", 25)+"  (1)  (2)", lines[2])
	assert.Equal(t, " (10) (11) (12) (13) (14)   15   16", lines[4])
	assert.Equal(t, "   31", lines[7])
	assert.Equal(t, "", lines[8])
}

func TestWriteResultToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "target.txt")
	setFlags(t, "", "", "", out)

	sel := export.Selection{Title: "Target date", Date: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)}
	var stdout bytes.Buffer
	require.NoError(t, writeResult(&stdout, export.FormatISO, sel, testNow))

	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-20\n", string(data))
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	setTempHome(t)

	var out bytes.Buffer
	configInitCmd.SetOut(&out)
	require.NoError(t, configInitCmd.RunE(configInitCmd, nil))
	assert.Contains(t, out.String(), "config.yml")

	err := configInitCmd.RunE(configInitCmd, nil)
	assert.Error(t, err)
}

func TestConfigShowPrintsYAML(t *testing.T) {
	setTempHome(t)

	var out bytes.Buffer
	configShowCmd.SetOut(&out)
	require.NoError(t, configShowCmd.RunE(configShowCmd, nil))
	assert.Contains(t, out.String(), "year_span: 20")
	assert.Contains(t, out.String(), "date_format: text")
}

func TestConfigThemeSetsAndSaves(t *testing.T) {
	setTempHome(t)
	t.Cleanup(func() { components.ApplyTheme("default") })

	var out bytes.Buffer
	configThemeCmd.SetOut(&out)
	require.NoError(t, configThemeCmd.RunE(configThemeCmd, []string{"light"}))
	assert.Contains(t, out.String(), "Theme set to light")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)

	err = configThemeCmd.RunE(configThemeCmd, []string{"neon"})
	assert.Error(t, err)
}

func TestSelectorStartsOnCurrentAndSelects(t *testing.T) {
	items := []SelectorItem{{ID: "default", Label: "default"}, {ID: "light", Label: "light"}}
	s := NewSelector("Select a theme", items, "light")
	assert.Contains(t, s.View(), "> light")

	m, _ := s.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := m.(Selector).Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, "default", m.(Selector).Selected())
	assert.False(t, m.(Selector).Cancelled())
}

func TestSelectorCancel(t *testing.T) {
	s := NewSelector("Select a theme", []SelectorItem{{ID: "default", Label: "default"}}, "")
	m, _ := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.(Selector).Cancelled())
	assert.Empty(t, m.(Selector).Selected())
}
