package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) for unreadable, malformed or
// out-of-range configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the CLI settings.
type Config struct {
	Source   string `yaml:"source"`
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
	Acyclic  bool   `yaml:"acyclic"`
	Metrics  bool   `yaml:"metrics"`
	Trace    bool   `yaml:"trace"`
}

// Default returns the built-in settings: source "v0", sequential passes,
// info logging, cyclic reference graph, no metrics or tracing.
func Default() Config {
	return Config{
		Source:   "v0",
		Workers:  1,
		LogLevel: "info",
	}
}

// yamlConfig uses pointers so an explicit zero value can be told apart from
// an absent key.
type yamlConfig struct {
	Source   *string `yaml:"source"`
	Workers  *int    `yaml:"workers"`
	LogLevel *string `yaml:"log_level"`
	Acyclic  *bool   `yaml:"acyclic"`
	Metrics  *bool   `yaml:"metrics"`
	Trace    *bool   `yaml:"trace"`
}

// Load reads path and overlays it on Default(). An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
	}

	return Parse(b)
}

// Parse decodes YAML bytes on top of Default() and validates the result.
func Parse(b []byte) (Config, error) {
	cfg := Default()

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if y.Source != nil {
		cfg.Source = *y.Source
	}
	if y.Workers != nil {
		cfg.Workers = *y.Workers
	}
	if y.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(*y.LogLevel))
	}
	if y.Acyclic != nil {
		cfg.Acyclic = *y.Acyclic
	}
	if y.Metrics != nil {
		cfg.Metrics = *y.Metrics
	}
	if y.Trace != nil {
		cfg.Trace = *y.Trace
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("%w: source must not be empty", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Level returns the slog level for c.LogLevel, or slog.LevelInfo when it is
// not recognised.
func (c Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}

	return l
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, s)
}
