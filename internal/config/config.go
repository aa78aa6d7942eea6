package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds the scrollbar timing and appearance settings.
type Config struct {
	HideDelayMs     int    `json:"hide_delay_ms"`   // thumb auto-hide delay
	SettleDelayMs   int    `json:"settle_delay_ms"` // scroll settle (debounce) delay
	MinThumb        int    `json:"min_thumb"`       // smallest thumb drawn for an overflowing axis
	VerticalGlyph   string `json:"vertical_glyph"`
	HorizontalGlyph string `json:"horizontal_glyph"`
	ThumbColor      string `json:"thumb_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HideDelayMs:     1500,
		SettleDelayMs:   100,
		MinThumb:        1,
		VerticalGlyph:   "┃",
		HorizontalGlyph: "━",
		ThumbColor:      "7",
	}
}

// HideDelay returns the auto-hide delay as a duration.
func (c Config) HideDelay() time.Duration {
	return time.Duration(c.HideDelayMs) * time.Millisecond
}

// SettleDelay returns the scroll settle delay as a duration.
func (c Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMs) * time.Millisecond
}

// ValidationError reports an invalid configuration field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

// Validate checks the configuration for values the widget cannot use.
func (c Config) Validate() error {
	switch {
	case c.HideDelayMs < 0:
		return &ValidationError{Field: "hide_delay_ms", Reason: "must not be negative"}
	case c.SettleDelayMs < 0:
		return &ValidationError{Field: "settle_delay_ms", Reason: "must not be negative"}
	case c.MinThumb < 0:
		return &ValidationError{Field: "min_thumb", Reason: "must not be negative"}
	case c.VerticalGlyph == "":
		return &ValidationError{Field: "vertical_glyph", Reason: "must not be empty"}
	case c.HorizontalGlyph == "":
		return &ValidationError{Field: "horizontal_glyph", Reason: "must not be empty"}
	}
	return nil
}

// Load reads a JSON config file on top of the defaults. A missing file is not
// an error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// #nosec G304 -- path comes from the user's own flag or config dir
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config as indented JSON, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
