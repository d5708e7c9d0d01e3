package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yml"
	appDirName     = "calsheet"

	DefaultYearSpan     = 20
	DefaultCloseDelayMs = 300
	DefaultDateFormat   = "text"
	DefaultTheme        = "default"
)

type Config struct {
	// Title shown at the top of the calendar sheet; empty uses the
	// translated default ("Target date")
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	// YearSpan is how many years after the current one the year picker lists
	YearSpan int `yaml:"year_span" json:"year_span"`

	Language     string `yaml:"language,omitempty" json:"language,omitempty"` // empty means auto-detect
	DateFormat   string `yaml:"date_format" json:"date_format"`               // text, iso, json or ics
	CloseDelayMs int    `yaml:"close_delay_ms" json:"close_delay_ms"`
	Theme        string `yaml:"theme" json:"theme"`
}

func DefaultConfig() Config {
	return Config{
		YearSpan:     DefaultYearSpan,
		DateFormat:   DefaultDateFormat,
		CloseDelayMs: DefaultCloseDelayMs,
		Theme:        DefaultTheme,
	}
}

// CloseDelay is the sheet slide duration.
func (c Config) CloseDelay() time.Duration {
	return time.Duration(c.CloseDelayMs) * time.Millisecond
}

func Load() (Config, error) {
	configPath, err := Path()
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", configPath, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero values
func (c *Config) applyDefaults() {
	if c.YearSpan <= 0 {
		c.YearSpan = DefaultYearSpan
	}
	if c.DateFormat == "" {
		c.DateFormat = DefaultDateFormat
	}
	if c.CloseDelayMs <= 0 {
		c.CloseDelayMs = DefaultCloseDelayMs
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
}

func (c Config) Save() error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, configFileName), data, 0600)
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", appDirName), nil
}

func GetConfigDir() (string, error) {
	return getConfigDir()
}

// Path returns the config file location.
func Path() (string, error) {
	dir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
