// Package config loads transformctl settings from yaml.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging Logging `yaml:"logging"`
	Scripts Scripts `yaml:"scripts"`
	Watch   Watch   `yaml:"watch"`
}

type Logging struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

type Scripts struct {
	// Dirs are searched in order for scripts and rigs given by bare name.
	Dirs    []string      `yaml:"dirs"`
	Timeout time.Duration `yaml:"timeout"`
}

type Watch struct {
	Debounce time.Duration `yaml:"debounce"`
}

func Default() Config {
	return Config{
		Logging: Logging{Level: "info", Format: "console"},
		Scripts: Scripts{Timeout: 5 * time.Second},
		Watch:   Watch{Debounce: 100 * time.Millisecond},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}
	if c.Scripts.Timeout < 0 {
		return fmt.Errorf("scripts.timeout must not be negative")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}
