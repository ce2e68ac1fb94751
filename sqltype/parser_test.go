package sqltype

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqltypedef/sqltypedef/dialect"
)

func TestParseAndRenderRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		d     dialect.Dialect
		input string
		want  string
	}{
		{"varchar with length", dialect.Postgres, "VARCHAR(255)", "VARCHAR(255)"},
		{"bare varchar", dialect.Postgres, "VARCHAR", "VARCHAR"},
		{"numeric precision and scale", dialect.Generic("", ""), "NUMERIC(10, 2)", "NUMERIC(10, 2)"},
		{"postgres array suffix", dialect.Postgres, "INT[]", "INT[]"},
		{"bigquery array", dialect.BigQuery, "ARRAY<INT64>", "ARRAY<INT64>"},
		{"snowflake number", dialect.Snowflake, "NUMBER(38, 0)", "NUMBER(38, 0)"},
		{"timestamp with time zone", dialect.Postgres, "TIMESTAMP WITH TIME ZONE", "TIMESTAMPTZ"},
		{"interval day to second", dialect.Generic("", ""), "INTERVAL DAY TO SECOND", "INTERVAL DAY TO SECOND"},
		{"struct postgres parens", dialect.Postgres, "(a INT, b TEXT NOT NULL)", "(a INT, b TEXT NOT NULL)"},
		{"struct generic angle", dialect.BigQuery, "STRUCT<a INT64, b STRING NOT NULL>", "STRUCT<a INT64, b STRING NOT NULL>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ty, _, err := Parse(tt.d, tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ty.String(tt.d))
		})
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	ty, _, err := Parse(dialect.Postgres, "varchar(10)")
	assert.NoError(t, err)
	assert.Equal(t, "VARCHAR(10)", ty.String(dialect.Postgres))
}

func TestParseIgnoresExtraWhitespace(t *testing.T) {
	a, _, err := Parse(dialect.Postgres, "NUMERIC(10,2)")
	assert.NoError(t, err)
	b, _, err := Parse(dialect.Postgres, "  NUMERIC ( 10 , 2 )  ")
	assert.NoError(t, err)
	assert.Equal(t, a.String(dialect.Postgres), b.String(dialect.Postgres))
}

func TestParseDefaultNullability(t *testing.T) {
	_, nullable, err := Parse(dialect.Postgres, "INT")
	assert.NoError(t, err)
	assert.True(t, nullable)

	_, nullable, err = Parse(dialect.Postgres, "INT NOT NULL")
	assert.NoError(t, err)
	assert.False(t, nullable)

	_, nullable, err = Parse(dialect.Postgres, "INT NULLABLE")
	assert.NoError(t, err)
	assert.True(t, nullable)
}

func TestStructFieldNullabilityDefaultsToNullable(t *testing.T) {
	ty, _, err := Parse(dialect.BigQuery, "STRUCT<a INT64>")
	assert.NoError(t, err)
	fields, ok := ty.StructFields()
	assert.True(t, ok)
	assert.True(t, fields[0].Nullable)
}

func TestIntervalPrecisionMapping(t *testing.T) {
	tests := []struct {
		input string
		want  DateTimeField
	}{
		{"INTERVAL(2)", Second},
		{"INTERVAL(3)", Millisecond},
		{"INTERVAL(6)", Microsecond},
		{"INTERVAL(9)", Nanosecond},
		{"INTERVAL SECOND(6)", Microsecond},
	}
	for _, tt := range tests {
		ty, _, err := Parse(dialect.Generic("", ""), tt.input)
		assert.NoError(t, err)
		start, _, _, hasQualifier := ty.IntervalQualifier()
		assert.True(t, hasQualifier)
		assert.Equal(t, tt.want, start)
	}
}

func TestIntervalDayToSecondWithPrecision(t *testing.T) {
	ty, _, err := Parse(dialect.Generic("", ""), "INTERVAL DAY TO SECOND(6)")
	assert.NoError(t, err)
	start, end, hasEnd, hasQualifier := ty.IntervalQualifier()
	assert.True(t, hasQualifier)
	assert.True(t, hasEnd)
	assert.Equal(t, Day, start)
	assert.Equal(t, Microsecond, end)
}

func TestUnrecognizedTypeCapturedAsOther(t *testing.T) {
	ty, nullable, err := Parse(dialect.Postgres, "TSVECTOR NOT NULL")
	assert.NoError(t, err)
	assert.False(t, nullable)
	assert.Equal(t, KindOther, ty.Kind())
	assert.Equal(t, "TSVECTOR", ty.Other())
}

func TestUnrecognizedTypeWithArgsCapturedVerbatim(t *testing.T) {
	ty, _, err := Parse(dialect.Postgres, "BIT VARYING ( 10 )")
	assert.NoError(t, err)
	assert.Equal(t, KindOther, ty.Kind())
	assert.Equal(t, "BIT VARYING ( 10 )", ty.Other())
}

func TestUnexpectedEndOfInputErrors(t *testing.T) {
	_, _, err := Parse(dialect.Postgres, "VARCHAR(")
	assert.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrUnexpectedEndOfInput, parseErr.Kind)
}

func TestDialectSpecificSpellings(t *testing.T) {
	ty, _, err := Parse(dialect.Generic("", ""), "BOOLEAN")
	assert.NoError(t, err)
	assert.Equal(t, "BOOL", ty.String(dialect.BigQuery))
	assert.Equal(t, "BOOLEAN", ty.String(dialect.Postgres))

	binary, _, err := Parse(dialect.Generic("", ""), "BINARY")
	assert.NoError(t, err)
	assert.Equal(t, "BYTEA", binary.String(dialect.Postgres))
	assert.Equal(t, "BYTES", binary.String(dialect.BigQuery))
	assert.Equal(t, "BINARY", binary.String(dialect.Databricks))
}

func TestSnowflakeDatetimeIsTimestampWithoutTimeZone(t *testing.T) {
	ty, _, err := Parse(dialect.Snowflake, "DATETIME")
	assert.NoError(t, err)
	assert.Equal(t, KindTimestamp, ty.Kind())
	assert.Equal(t, Without, ty.TimeZoneSpec())
}

func TestExpectIdentifierHandlesQuoted(t *testing.T) {
	id, err := ExpectIdentifier(dialect.Postgres, `"weird name"`)
	assert.NoError(t, err)
	assert.True(t, id.IsQuoted())
	assert.Equal(t, "weird name", id.Text())
}

func TestMapTypeRoundTrip(t *testing.T) {
	ty, _, err := Parse(dialect.Generic("", ""), "MAP<TEXT, INT>")
	assert.NoError(t, err)
	key, value, ok := ty.MapTypes()
	assert.True(t, ok)
	assert.Equal(t, KindText, key.Kind())
	assert.Equal(t, KindInteger, value.Kind())
	assert.Equal(t, "MAP<TEXT, INT>", ty.String(dialect.Generic("", "")))
}
