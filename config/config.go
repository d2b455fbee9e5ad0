// Package config holds the settings of a benchmark run, loaded from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration of a run.
type Config struct {
	// CorporaDir is the base directory holding the corpus files.
	CorporaDir string `yaml:"corpora_dir"`
	// Output is the result file; empty or "-" means stdout.
	Output string `yaml:"output"`
	// Header writes the column names once before the first record.
	Header bool `yaml:"header"`
	// Families restricts the sweep to these scheme families; empty means all.
	Families []string `yaml:"families"`
	// CompressionOnly skips decompression measurements.
	CompressionOnly bool `yaml:"compression_only"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		CorporaDir: "corpora",
		Output:     "-",
		LogLevel:   "info",
	}
}

// Load reads configuration from r on top of the defaults. A nil or empty
// reader yields the defaults. Unknown keys are rejected.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()

	if r == nil {
		return cfg, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config data: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads configuration from the YAML file at path.
func LoadFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer file.Close()

	return Load(file)
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.CorporaDir) == "" {
		errs = append(errs, errors.New("corpora_dir must not be empty"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	for i, family := range c.Families {
		if strings.TrimSpace(family) == "" {
			errs = append(errs, fmt.Errorf("families[%d] must not be empty", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	return level, nil
}

// UseStdout reports whether results go to standard output.
func (c *Config) UseStdout() bool {
	return c.Output == "" || c.Output == "-"
}
