package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/megabyte6/WordDateGenerator/internal/daterange"
)

// Config holds the persisted user defaults.
type Config struct {
	// DefaultFormat is the strftime-style format applied when --format is
	// not given.
	DefaultFormat string `json:"default_format"`
	// ExcludedWeekdays are lower-case weekday names dropped by default.
	ExcludedWeekdays []string `json:"excluded_weekdays"`
	// MaxDays caps the inclusive day count of a range. Zero disables the cap.
	MaxDays int `json:"max_days"`
	// OutputDir is where generated documents land when --output is relative
	// or omitted. Empty means the current directory.
	OutputDir string `json:"output_dir,omitempty"`
}

// FactoryMaxDays is the default range cap.
const FactoryMaxDays = 1000

// Factory returns the built-in defaults.
func Factory() Config {
	return Config{
		DefaultFormat:    daterange.DefaultFormat,
		ExcludedWeekdays: []string{"saturday", "sunday"},
		MaxDays:          FactoryMaxDays,
	}
}

// Dir returns the global config directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".worddategen")
}

// Path returns the path to the global config.json.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.json")
}

// HistoryPath returns the path to the generate-run journal database.
func HistoryPath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "history.db")
}

// Read reads the global config. Returns factory defaults if the file does
// not exist.
func Read(homeDir string) (Config, error) {
	data, err := os.ReadFile(Path(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return Factory(), nil
	}
	if err != nil {
		return Config{}, err
	}

	cfg := Factory()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write writes the global config, creating the directory if needed.
func Write(homeDir string, cfg Config) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(homeDir), data, 0644)
}

// Reset removes the config file, restoring factory defaults on next Read.
func Reset(homeDir string) error {
	err := os.Remove(Path(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Weekdays parses the configured weekday names.
func (c Config) Weekdays() ([]time.Weekday, error) {
	weekdays := make([]time.Weekday, 0, len(c.ExcludedWeekdays))
	for _, name := range c.ExcludedWeekdays {
		wd, err := daterange.ParseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		weekdays = append(weekdays, wd)
	}
	return weekdays, nil
}

// SetWeekdays stores weekdays as lower-case names.
func (c *Config) SetWeekdays(weekdays []time.Weekday) {
	names := make([]string, len(weekdays))
	for i, wd := range weekdays {
		names[i] = strings.ToLower(wd.String())
	}
	c.ExcludedWeekdays = names
}
