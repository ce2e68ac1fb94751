package sqltype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqltypedef/sqltypedef/dialect"
)

func TestIsWithTimeZoneDatabricksUnspecifiedIsTrue(t *testing.T) {
	assert.True(t, Unspecified.IsWithTimeZone(dialect.Databricks))
}

func TestIsWithTimeZoneDatabricksODBCUnspecifiedIsFalse(t *testing.T) {
	// DatabricksODBC does not get Databricks's special case for
	// Unspecified and falls through to the generic rule.
	assert.False(t, Unspecified.IsWithTimeZone(dialect.DatabricksODBC))
}

func TestIsWithTimeZoneSnowflakeUnspecifiedIsFalse(t *testing.T) {
	assert.False(t, Unspecified.IsWithTimeZone(dialect.Snowflake))
}

func TestIsWithTimeZoneGenericRule(t *testing.T) {
	assert.True(t, With.IsWithTimeZone(dialect.Postgres))
	assert.True(t, Local.IsWithTimeZone(dialect.Postgres))
	assert.False(t, Without.IsWithTimeZone(dialect.Postgres))
}

func TestSetStrictAssertionsDoesNotPanicOnInvalidCombination(t *testing.T) {
	SetStrictAssertions(true)
	defer SetStrictAssertions(false)

	var out strings.Builder
	Local.writeWithLeadingSpace(dialect.Postgres, &out)
	assert.Equal(t, " WITH LOCAL TIME ZONE", out.String())
}

func TestWriteSingleTokenSuffixWithOnDatabricksRendersNothing(t *testing.T) {
	// TIMESTAMP_TZ is a valid, common Databricks spelling: With must not
	// be treated as an invalid combination the way Local is.
	SetStrictAssertions(true)
	defer SetStrictAssertions(false)

	var out strings.Builder
	With.writeSingleTokenSuffix(dialect.Databricks, &out)
	assert.Equal(t, "", out.String())
}
