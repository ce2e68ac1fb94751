// Package metadata bridges SqlType values and Apache Arrow columnar
// field metadata: the type string stored on a field's metadata map
// under a dialect-specific key, and a best-effort fallback mapping from
// a field's physical Arrow type when no such string is present, using
// github.com/apache/arrow-go/v18's arrow.Field as the columnar field
// abstraction.
package metadata

import "github.com/sqltypedef/sqltypedef/dialect"

var (
	postgresKeys   = []string{"POSTGRES:type", "type"}
	snowflakeKeys  = []string{"SNOWFLAKE:type", "type"}
	bigqueryKeys   = []string{"BIGQUERY:type", "type"}
	databricksKeys = []string{"DBX:type", "type_text", "type"}
	redshiftKeys   = []string{"REDSHIFT:type", "type"}
	genericKeys    = []string{"SQL:type", "type"}
)

// DefaultCandidateKeys returns the ordered metadata key candidates
// consulted when reading a SQL type annotation off a field for d.
// Salesforce shares Postgres's key table even though it does not share
// Postgres's parsing/rendering grammar (dialect.Dialect.IsPostgresFamily
// excludes it; this table does not).
func DefaultCandidateKeys(d dialect.Dialect) []string {
	switch d.Kind {
	case dialect.KindPostgres, dialect.KindSalesforce:
		return postgresKeys
	case dialect.KindSnowflake:
		return snowflakeKeys
	case dialect.KindBigQuery:
		return bigqueryKeys
	case dialect.KindDatabricks, dialect.KindDatabricksODBC:
		return databricksKeys
	case dialect.KindRedshift, dialect.KindRedshiftODBC:
		return redshiftKeys
	default:
		return genericKeys
	}
}

// DefaultWriteKey returns the key ToField uses when annotating a new
// field for d: the first (most specific) entry in its candidate list.
func DefaultWriteKey(d dialect.Dialect) string {
	return DefaultCandidateKeys(d)[0]
}

// AllDefaultCandidateKeys returns DefaultCandidateKeys for every named
// dialect, keyed by its display name, for tooling that enumerates the
// whole key table (e.g. a --list-metadata-keys CLI flag).
func AllDefaultCandidateKeys() map[string][]string {
	dialects := []dialect.Dialect{
		dialect.Postgres, dialect.Redshift, dialect.RedshiftODBC,
		dialect.Snowflake, dialect.BigQuery, dialect.Databricks,
		dialect.DatabricksODBC, dialect.Salesforce, dialect.Generic("", ""),
	}
	out := make(map[string][]string, len(dialects))
	for _, d := range dialects {
		out[d.String()] = DefaultCandidateKeys(d)
	}
	return out
}
