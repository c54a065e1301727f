// Package config loads viewer configuration from a TOML file and watches
// it for changes.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/loupeview/loupe/internal/engine/row"
)

// Config holds the viewer settings.
type Config struct {
	// TabStop is the tab stop width in columns.
	TabStop int `toml:"tab_stop"`

	// Filler is the glyph drawn on rows past the end of the document.
	Filler string `toml:"filler"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// LogFile receives log output. Empty means logging is discarded,
	// since stderr is unusable while the terminal is in raw mode.
	LogFile string `toml:"log_file"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		TabStop:  row.DefaultTabStop,
		Filler:   "~",
		LogLevel: "info",
	}
}

// DefaultPath returns the conventional config file location, or "" if the
// user's config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "loupe", "loupe.toml")
}

// Load reads configuration from path, layered over the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// FillerRune returns the filler glyph as a rune.
func (c Config) FillerRune() rune {
	for _, ch := range c.Filler {
		return ch
	}
	return '~'
}

// normalize clamps nonsense values back to usable ones.
func (c *Config) normalize() {
	if c.TabStop < 1 {
		c.TabStop = row.DefaultTabStop
	}
	if c.Filler == "" {
		c.Filler = "~"
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = "info"
	}
}
