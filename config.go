package aoc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls which puzzles a Runner executes and where their input
// comes from.
type Config struct {
	Year     int    `yaml:"year"`
	InputDir string `yaml:"input_dir"`
	Demo     bool   `yaml:"demo"`
	Debug    bool   `yaml:"debug"`
	Quick    bool   `yaml:"quick"` // skip long-running parts
	Part     string `yaml:"part"`  // "", "1" or "2"

	// SessionFile holds an adventofcode.com session cookie. When set, missing
	// real inputs are downloaded and cached in InputDir.
	SessionFile string `yaml:"session_file"`

	// PrintAfterLast also reports days after the last implemented one when
	// running every day.
	PrintAfterLast bool `yaml:"print_after_last"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Year == 0 {
		c.Year = 2025
	}
	if c.InputDir == "" {
		c.InputDir = "."
	}
}

func (c *Config) validate() error {
	switch c.Part {
	case "", "1", "2":
	default:
		return fmt.Errorf("part must be empty, 1 or 2; got %q", c.Part)
	}
	if c.Year < 2015 {
		return fmt.Errorf("year %d predates Advent of Code", c.Year)
	}
	return nil
}

// MaxDays returns the number of puzzle days in the configured year. Starting
// 2025 there are only 12.
func (c *Config) MaxDays() int {
	if c.Year < 2025 {
		return 25
	}
	return 12
}

func (c *Config) runsPart(n int) bool {
	return c.Part == "" || c.Part == fmt.Sprint(n)
}
