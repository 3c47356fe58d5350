// Package config declares where the milk-study sources live and how
// analyte columns are recognized in the sample table.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config names the three tabular sources and the analyte detection
// policy. Sources may be CSV or Parquet files; the loader dispatches
// on the file extension.
type Config struct {
	// Samples is the per-sample measurement table: sample identifier,
	// study identifier, secretor code, and one concentration column
	// per analyte.
	Samples string `yaml:"samples"`

	// Locations is the study location metadata table (institution,
	// city, country, coordinates, analyzed date).
	Locations string `yaml:"locations"`

	// Descriptions is the study free-text metadata table
	// (description, keywords, collection window, population, sample
	// type).
	Descriptions string `yaml:"descriptions"`

	// AnalyteMarker is the column-name suffix that identifies
	// concentration columns. Defaults to "%".
	AnalyteMarker string `yaml:"analyte_marker"`

	// ExcludeColumns lists marker-matching columns that are declared
	// summary fields rather than analytes, such as a total column.
	ExcludeColumns []string `yaml:"exclude_columns"`
}

// Default returns the configuration values used for fields left
// unset in the file.
func Default() *Config {
	return &Config{AnalyteMarker: "%"}
}

// Load reads a YAML configuration file, fills in defaults, and
// validates that all three sources are named.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.AnalyteMarker == "" {
		cfg.AnalyteMarker = "%"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every required source path is set.
func (c *Config) Validate() error {
	switch {
	case c.Samples == "":
		return fmt.Errorf("config: samples source is required")
	case c.Locations == "":
		return fmt.Errorf("config: locations source is required")
	case c.Descriptions == "":
		return fmt.Errorf("config: descriptions source is required")
	}
	return nil
}
