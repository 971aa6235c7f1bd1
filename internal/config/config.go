// Package config provides configuration loading for pyrapath.
// It supports loading from a TOML file and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	pio "github.com/matzehuels/pyrapath/pkg/io"
)

// appName is used for the config directory.
const appName = "pyrapath"

// Config contains all pyrapath configuration settings.
type Config struct {
	// Input is the pyramid file read when no file argument is given.
	Input string `toml:"input"`

	// Force builds malformed pyramids leniently by default.
	Force bool `toml:"force"`

	// Format is the default output format: text, json, or yaml.
	Format string `toml:"format"`

	// Values prints the factor trail beside each text result.
	Values bool `toml:"values"`

	// Serve contains settings for the HTTP API.
	Serve ServeConfig `toml:"serve"`
}

// ServeConfig configures the HTTP API server.
type ServeConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// ReadTimeout bounds how long reading a request may take.
	ReadTimeout time.Duration `toml:"read_timeout"`

	// MaxDepth rejects pyramids with more rows than this. Path count doubles
	// with every row, so the API needs a ceiling the CLI does not.
	MaxDepth int `toml:"max_depth"`

	// MaxMatches caps how many matching paths one response lists. Inputs
	// such as an all-ones pyramid match on every path.
	MaxMatches int `toml:"max_matches"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Input:  pio.DefaultInputFile,
		Format: pio.FormatText,
		Serve: ServeConfig{
			Addr:        ":8080",
			ReadTimeout: 10 * time.Second,
			MaxDepth:    24,
			MaxMatches:  1000,
		},
	}
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/pyrapath/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load loads configuration from path and environment variables.
// Order: defaults -> config file -> environment variables.
//
// An empty path means the default location, which may be absent. An explicit
// path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if p, err := DefaultPath(); err == nil {
			if _, statErr := os.Stat(p); statErr == nil {
				path = p
			}
		}
	}

	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific TOML file. Keys absent
// from the file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing config file: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := pio.ValidateFormat(c.Format); err != nil {
		return err
	}
	if c.Serve.ReadTimeout < 0 {
		return fmt.Errorf("read_timeout must be non-negative, got %v", c.Serve.ReadTimeout)
	}
	if c.Serve.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be at least 1, got %d", c.Serve.MaxDepth)
	}
	if c.Serve.MaxMatches < 1 {
		return fmt.Errorf("max_matches must be at least 1, got %d", c.Serve.MaxMatches)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PYRAPATH_INPUT"); v != "" {
		cfg.Input = v
	}

	if v := os.Getenv("PYRAPATH_FORCE"); v != "" {
		cfg.Force = v == "true" || v == "1"
	}

	if v := os.Getenv("PYRAPATH_FORMAT"); v != "" {
		cfg.Format = v
	}

	if v := os.Getenv("PYRAPATH_ADDR"); v != "" {
		cfg.Serve.Addr = v
	}

	if v := os.Getenv("PYRAPATH_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Serve.MaxDepth = n
		}
	}

	if v := os.Getenv("PYRAPATH_MAX_MATCHES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Serve.MaxMatches = n
		}
	}
}
