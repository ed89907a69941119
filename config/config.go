// Package config loads the optional YAML configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI can also set through flags; flag values
// take precedence over file values.
type Config struct {
	// DataPath is the default scheduling data source.
	DataPath string `yaml:"data_path"`
	// Policies restricts the comparison list (fcfs, sjf, srtn, rr).
	// Empty means all four, in the default order.
	Policies []string `yaml:"policies"`
	// ReportDir receives JSON run reports.
	ReportDir string `yaml:"report_dir"`
	// DBPath is the SQLite run-history database. Empty disables persistence.
	DBPath string `yaml:"db_path"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	PageReplacement PageReplacementConfig `yaml:"page_replacement"`
}

type PageReplacementConfig struct {
	// DataPath is the default page-replacement data source.
	DataPath string `yaml:"data_path"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ReportDir: "reports",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads a YAML config file and validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: want text or json", c.LogFormat)
	}
	for _, name := range c.Policies {
		if name == "" {
			return fmt.Errorf("policies must not contain empty names")
		}
	}
	return nil
}
