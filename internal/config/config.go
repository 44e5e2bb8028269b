// Package config loads the optional safarimarks configuration file.
//
// The file lives at ~/.config/safarimarks/config.toml (or the platform
// equivalent reported by os.UserConfigDir) and provides defaults for values
// that would otherwise be repeated on every invocation:
//
//	# Path to the bookmarks store.
//	file = "~/Library/Safari/Bookmarks.plist"
//
//	# Default template for the list command.
//	format = "{{.Title}} {{.URL}}"
//
//	# Disable terminal colors.
//	color = false
//
// Command-line flags always win over the file; the file wins over the
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultBookmarksPath is where Safari keeps its bookmark store.
const DefaultBookmarksPath = "~/Library/Safari/Bookmarks.plist"

// Config holds the user-configurable defaults.
type Config struct {
	// File is the bookmarks plist path. Defaults to Safari's location.
	File string `toml:"file"`

	// Format is the default list template. Empty selects the built-in
	// column layout.
	Format string `toml:"format"`

	// Color enables terminal styling. Nil means auto (on when stdout is a
	// terminal).
	Color *bool `toml:"color"`
}

// Path returns the expected location of the configuration file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "safarimarks", "config.toml"), nil
}

// Load reads the configuration file from its default location. A missing
// file is not an error; it yields the zero Config.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path. A missing file
// yields the zero Config; a malformed file is an error.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// BookmarksFile resolves the effective bookmarks path: the flag value when
// set, else the configured file, else Safari's default location. A leading
// ~ is expanded against the user's home directory.
func (c *Config) BookmarksFile(flag string) string {
	path := flag
	if path == "" {
		path = c.File
	}
	if path == "" {
		path = DefaultBookmarksPath
	}
	return ExpandHome(path)
}

// ExpandHome replaces a leading ~ with the current user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
