package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPostgresFamily(t *testing.T) {
	tests := map[string]struct {
		d    Dialect
		want bool
	}{
		"postgres":         {Postgres, true},
		"redshift":         {Redshift, true},
		"redshift-odbc":    {RedshiftODBC, true},
		"snowflake":        {Snowflake, false},
		"salesforce":       {Salesforce, false},
		"generic fallback": {Generic("duckdb", ""), false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.IsPostgresFamily())
		})
	}
}

func TestIsDatabricksFamily(t *testing.T) {
	assert.True(t, Databricks.IsDatabricksFamily())
	assert.True(t, DatabricksODBC.IsDatabricksFamily())
	assert.False(t, Snowflake.IsDatabricksFamily())
}

func TestDialectString(t *testing.T) {
	assert.Equal(t, "postgres", Postgres.String())
	assert.Equal(t, "generic:duckdb", Generic("duckdb", "main").String())
	assert.Equal(t, "generic", Generic("", "").String())
}
