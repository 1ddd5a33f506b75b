// Package config handles bm configuration.
//
// Settings come from, in increasing order of precedence: built-in defaults,
// the YAML file at $XDG_CONFIG_HOME/bm/config.yml, a .env file in the
// working directory, environment variables, and finally command-line flags
// (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents bm configuration.
type Config struct {
	File        string `yaml:"file,omitempty"`         // Store file path
	OutputFile  string `yaml:"output_file,omitempty"`  // Output sink, "-" for stdout
	AtomicWrite bool   `yaml:"atomic_write,omitempty"` // Replace the store via temp file + rename
	LogLevel    string `yaml:"log_level,omitempty"`    // debug, info, warn or error
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "bm"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"

	DefaultFile       = "bookmarks"
	DefaultOutputFile = "-"
	DefaultLogLevel   = "warn"
)

// ErrInvalid is returned for configuration that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// ValidLogLevels lists the supported log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		File:       DefaultFile,
		OutputFile: DefaultOutputFile,
		LogLevel:   DefaultLogLevel,
	}
}

// Path returns the path to the config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/bm/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load builds the configuration from defaults, the config file, the .env
// files given (".env" when none) and the environment.
// A missing config file or .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(Path()); err != nil {
		return nil, err
	}
	loadDotEnv(envFiles...)
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.File = ExpandPath(cfg.File)
	if cfg.OutputFile != DefaultOutputFile {
		cfg.OutputFile = ExpandPath(cfg.OutputFile)
	}
	return cfg, nil
}

// loadFile overlays the YAML file at path onto c.
func (c *Config) loadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("%w: parsing %s: %v", ErrInvalid, path, err)
	}
	c.merge(&fileCfg)
	return nil
}

// merge copies the non-empty fields of o onto c.
func (c *Config) merge(o *Config) {
	if o.File != "" {
		c.File = o.File
	}
	if o.OutputFile != "" {
		c.OutputFile = o.OutputFile
	}
	if o.AtomicWrite {
		c.AtomicWrite = true
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// Validate checks that the configuration can be used. LogLevel is left to
// ParseLogLevel once command-line overrides are applied.
func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("%w: file must not be empty", ErrInvalid)
	}
	return nil
}

// ParseLogLevel converts a log_level value to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: log level %q (valid: %v)", ErrInvalid, s, ValidLogLevels)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
