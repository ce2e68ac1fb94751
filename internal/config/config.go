// Package config loads the optional YAML file that lets a deployment
// override the metadata package's per-dialect key priority lists
// without recompiling, using struct-tag-driven gopkg.in/yaml.v2
// unmarshaling.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/sqltypedef/sqltypedef/dialect"
	"github.com/sqltypedef/sqltypedef/util"
)

// MetadataKeys overrides metadata.DefaultCandidateKeys per dialect. Any
// unset field leaves that dialect's built-in default in place.
type MetadataKeys struct {
	Postgres   []string `yaml:"postgres,omitempty"`
	Snowflake  []string `yaml:"snowflake,omitempty"`
	BigQuery   []string `yaml:"bigquery,omitempty"`
	Databricks []string `yaml:"databricks,omitempty"`
	Redshift   []string `yaml:"redshift,omitempty"`
	Generic    []string `yaml:"generic,omitempty"`
}

// Config is the top-level shape of a --config YAML file.
type Config struct {
	MetadataKeys MetadataKeys `yaml:"metadata_keys"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// KeysFor returns the configured key override for d, or nil if the
// config has none, so callers can fall back to the package default.
func (c *Config) KeysFor(d dialect.Dialect) []string {
	if c == nil {
		return nil
	}
	switch d.Kind {
	case dialect.KindPostgres, dialect.KindSalesforce:
		return normalizeKeys(c.MetadataKeys.Postgres)
	case dialect.KindSnowflake:
		return normalizeKeys(c.MetadataKeys.Snowflake)
	case dialect.KindBigQuery:
		return normalizeKeys(c.MetadataKeys.BigQuery)
	case dialect.KindDatabricks, dialect.KindDatabricksODBC:
		return normalizeKeys(c.MetadataKeys.Databricks)
	case dialect.KindRedshift, dialect.KindRedshiftODBC:
		return normalizeKeys(c.MetadataKeys.Redshift)
	default:
		return normalizeKeys(c.MetadataKeys.Generic)
	}
}

// normalizeKeys trims stray whitespace off each configured key (a YAML
// file edited by hand is the likeliest source of it) and drops entries
// left empty afterward.
func normalizeKeys(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	trimmed := util.TransformSlice(s, strings.TrimSpace)
	out := make([]string, 0, len(trimmed))
	for _, k := range trimmed {
		if k != "" {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
