package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqltypedef/sqltypedef/dialect"
)

func TestDefaultCandidateKeysPostgresAndSalesforceShareTable(t *testing.T) {
	assert.Equal(t, DefaultCandidateKeys(dialect.Postgres), DefaultCandidateKeys(dialect.Salesforce))
}

func TestDefaultCandidateKeysPerDialect(t *testing.T) {
	assert.Equal(t, []string{"BIGQUERY:type", "type"}, DefaultCandidateKeys(dialect.BigQuery))
	assert.Equal(t, []string{"DBX:type", "type_text", "type"}, DefaultCandidateKeys(dialect.Databricks))
	assert.Equal(t, []string{"DBX:type", "type_text", "type"}, DefaultCandidateKeys(dialect.DatabricksODBC))
	assert.Equal(t, []string{"SQL:type", "type"}, DefaultCandidateKeys(dialect.Generic("duckdb", "")))
}

func TestDefaultWriteKeyIsFirstCandidate(t *testing.T) {
	assert.Equal(t, "SNOWFLAKE:type", DefaultWriteKey(dialect.Snowflake))
}

func TestAllDefaultCandidateKeysCoversEveryNamedDialect(t *testing.T) {
	all := AllDefaultCandidateKeys()
	assert.Equal(t, []string{"POSTGRES:type", "type"}, all["postgres"])
	assert.Equal(t, []string{"SNOWFLAKE:type", "type"}, all["snowflake"])
	assert.Equal(t, []string{"DBX:type", "type_text", "type"}, all["databricks-odbc"])
	assert.Equal(t, []string{"SQL:type", "type"}, all["generic"])
}
