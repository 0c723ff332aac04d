// Package config handles loading and resolving chartspec configuration.
// Resolution order (first non-empty value wins):
//  1. CLI flags --format and --db
//  2. Environment variables CHARTSPEC_FORMAT and CHARTSPEC_DB_PATH
//  3. chartspec.toml in the current working directory
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultConfigFile    = "chartspec.toml"
	DefaultFormat        = "json"
	DefaultIndent        = 2
	DefaultWatchInterval = 500 * time.Millisecond
	DefaultConcurrency   = 4
	EnvFormat            = "CHARTSPEC_FORMAT"
	EnvDBPath            = "CHARTSPEC_DB_PATH"
)

// Formats lists the output formats every document-producing command accepts.
var Formats = []string{"json", "compact", "yaml"}

// File is the on-disk representation of chartspec.toml.
type File struct {
	DefaultFormat string `toml:"default_format"`
	DBPath        string `toml:"db_path"`
	Indent        int    `toml:"indent"`
	WatchInterval string `toml:"watch_interval"`
	Concurrency   int    `toml:"concurrency"`
}

// Config is the fully-resolved runtime configuration.
// All callers use this struct; the File is only read during loading.
type Config struct {
	Format        string
	DBPath        string
	Indent        int
	WatchInterval time.Duration
	Concurrency   int
	ConfigPath    string // path of the chartspec.toml that was loaded (empty if none found)

	// Runtime overrides set from CLI flags after Load()
	Quiet   bool
	Verbose bool
	Debug   bool
}

// Load resolves configuration from all sources. flagFormat and flagDBPath
// are the values of --format and --db (empty string if not set).
func Load(flagFormat, flagDBPath string) (*Config, error) {
	cfg := &Config{
		Format:        DefaultFormat,
		Indent:        DefaultIndent,
		WatchInterval: DefaultWatchInterval,
		Concurrency:   DefaultConcurrency,
	}

	// Layer 1: chartspec.toml (lowest priority). A missing file is fine, a
	// broken one is not.
	f, path, err := loadFile()
	switch {
	case err == nil:
		applyFile(cfg, f, path)
	case !errors.Is(err, os.ErrNotExist):
		return nil, err
	}

	// Layer 2: environment
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}

	// Layer 3: CLI flags (highest priority)
	if flagFormat != "" {
		cfg.Format = flagFormat
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}

	// Set default DB path if still unset
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.DBPath = filepath.Join(home, ".chartspec", "charts.db")
		}
	}

	return cfg, nil
}

// Validate returns an error if a resolved value is unusable.
func (c *Config) Validate() error {
	if !ValidFormat(c.Format) {
		return fmt.Errorf("unknown format %q (expected one of json, compact, yaml)", c.Format)
	}
	if c.Indent < 0 || c.Indent > 8 {
		return fmt.Errorf("indent must be between 0 and 8, got %d", c.Indent)
	}
	return nil
}

// ValidFormat reports whether name is one of Formats.
func ValidFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// loadFile attempts to read chartspec.toml from the current working directory.
func loadFile() (*File, string, error) {
	path, err := filepath.Abs(DefaultConfigFile)
	if err != nil {
		return nil, "", err
	}
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("%s not found at %s: %w", DefaultConfigFile, path, err)
		}
		return nil, "", fmt.Errorf("parsing %s: %w", DefaultConfigFile, err)
	}
	return &f, path, nil
}

// applyFile copies values from a parsed File into cfg,
// skipping any fields that are zero/empty.
func applyFile(cfg *Config, f *File, path string) {
	cfg.ConfigPath = path
	if f.DefaultFormat != "" {
		cfg.Format = f.DefaultFormat
	}
	if f.DBPath != "" {
		cfg.DBPath = f.DBPath
	}
	if f.Indent > 0 {
		cfg.Indent = f.Indent
	}
	if f.WatchInterval != "" {
		if d, err := time.ParseDuration(f.WatchInterval); err == nil && d > 0 {
			cfg.WatchInterval = d
		}
	}
	if f.Concurrency > 0 {
		cfg.Concurrency = f.Concurrency
	}
}

// Template returns a File populated with sensible defaults, suitable for
// writing an initial chartspec.toml via `chartspec config init`.
func Template() File {
	return File{
		DefaultFormat: DefaultFormat,
		Indent:        DefaultIndent,
		WatchInterval: DefaultWatchInterval.String(),
		Concurrency:   DefaultConcurrency,
	}
}

// WriteFile serialises a File to the given path.
func WriteFile(path string, f File) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0600)
}
