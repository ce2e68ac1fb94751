package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqltypedef/sqltypedef/dialect"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadAndKeysFor(t *testing.T) {
	path := writeConfig(t, `
metadata_keys:
  postgres:
    - "APP:type"
  bigquery:
    - "APP:bq_type"
`)
	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, []string{"APP:type"}, cfg.KeysFor(dialect.Postgres))
	assert.Equal(t, []string{"APP:bq_type"}, cfg.KeysFor(dialect.BigQuery))
	assert.Nil(t, cfg.KeysFor(dialect.Snowflake))
}

func TestKeysForTrimsWhitespaceAndDropsBlankEntries(t *testing.T) {
	path := writeConfig(t, `
metadata_keys:
  postgres:
    - "  APP:type  "
    - ""
    - "type"
`)
	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, []string{"APP:type", "type"}, cfg.KeysFor(dialect.Postgres))
}

func TestKeysForOnNilConfig(t *testing.T) {
	var cfg *Config
	assert.Nil(t, cfg.KeysFor(dialect.Postgres))
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
