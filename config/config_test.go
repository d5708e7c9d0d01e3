package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("USERPROFILE", dir)
	return dir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	setTempHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 300*time.Millisecond, cfg.CloseDelay())
}

func TestSaveThenLoad(t *testing.T) {
	home := setTempHome(t)

	cfg := DefaultConfig()
	cfg.Title = "Deadline"
	cfg.YearSpan = 5
	cfg.DateFormat = "ics"
	require.NoError(t, cfg.Save())

	info, err := os.Stat(filepath.Join(home, ".config", "calsheet", "config.yml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadAppliesDefaultsForZeroValues(t *testing.T) {
	setTempHome(t)

	path, err := Path()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte("title: Launch\n"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Launch", cfg.Title)
	assert.Equal(t, DefaultYearSpan, cfg.YearSpan)
	assert.Equal(t, DefaultDateFormat, cfg.DateFormat)
	assert.Equal(t, DefaultCloseDelayMs, cfg.CloseDelayMs)
	assert.Equal(t, DefaultTheme, cfg.Theme)
}

func TestLoadInvalidYAML(t *testing.T) {
	setTempHome(t)

	path, err := Path()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte("year_span: [oops\n"), 0600))

	cfg, err := Load()
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
