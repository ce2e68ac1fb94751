package sqltype

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/sqltypedef/sqltypedef/dialect"
)

// TimeZoneSpec records how a TIME or TIMESTAMP value relates to time
// zones. Local and Unspecified exist because some dialects distinguish
// "local session time zone" from "an explicit, arbitrary time zone" or
// simply never say either way.
type TimeZoneSpec int

const (
	Local TimeZoneSpec = iota
	With
	Without
	Unspecified
)

var strictAssertions atomic.Bool

// SetStrictAssertions turns on warnings for TimeZoneSpec/Dialect
// combinations that are invalid but still rendered best-effort (for
// example Local on Postgres, which has no "WITH LOCAL TIME ZONE"
// concept). Off by default so production callers are never surprised
// by log noise; tests that want to catch these combinations turn it on.
func SetStrictAssertions(on bool) {
	strictAssertions.Store(on)
}

func warnInvalidCombination(format string, args ...any) {
	if strictAssertions.Load() {
		slog.Warn("invalid but rendered", "detail", fmt.Sprintf(format, args...))
	}
}

// writeWithLeadingSpace renders the long-form clause (" WITH TIME ZONE"
// and the like), including its leading space, or nothing when the dialect and spec
// combination calls for silence.
func (t TimeZoneSpec) writeWithLeadingSpace(d dialect.Dialect, out *strings.Builder) {
	if d.Kind == dialect.KindBigQuery && (t == Without || t == Unspecified) {
		return
	}
	if d.IsPostgresFamily() && t == Without {
		return
	}
	switch t {
	case Local:
		if d.IsPostgresFamily() || d.IsDatabricksFamily() {
			warnInvalidCombination("TimeZoneSpec.Local on %s", d)
		}
		out.WriteString(" WITH LOCAL TIME ZONE")
	case With:
		out.WriteString(" WITH TIME ZONE")
	case Without:
		out.WriteString(" WITHOUT TIME ZONE")
	case Unspecified:
		// nothing to render
	}
}

// writeSingleTokenSuffix renders the short suffix form (BigQuery emits
// nothing; Postgres-family appends "TZ" for Local/With; Databricks-family appends
// "_NTZ" for Without; everyone else falls back to _LTZ/_TZ/_NTZ).
func (t TimeZoneSpec) writeSingleTokenSuffix(d dialect.Dialect, out *strings.Builder) {
	if d.Kind == dialect.KindBigQuery {
		return
	}
	if d.IsPostgresFamily() {
		switch t {
		case Local, With:
			out.WriteString("TZ")
		}
		return
	}
	if d.IsDatabricksFamily() {
		switch t {
		case Local:
			warnInvalidCombination("TimeZoneSpec.Local on %s", d)
		case Without:
			out.WriteString("_NTZ")
		case With:
			// valid and common: e.g. parsing TIMESTAMP_TZ on Databricks.
		}
		return
	}
	switch t {
	case Local:
		out.WriteString("_LTZ")
	case With:
		out.WriteString("_TZ")
	case Without:
		out.WriteString("_NTZ")
	case Unspecified:
		// nothing to render
	}
}

// IsWithTimeZone answers whether a value carrying this spec under
// dialect d should be treated as time-zone-aware. Databricks treats an
// unqualified timestamp as zone-aware by convention; its ODBC driver
// variant does not get that special case and falls through to the
// generic rule below. Snowflake's Unspecified is ambiguous (it depends
// on a session parameter this module has no visibility into) and is
// reported as false rather than guessed.
func (t TimeZoneSpec) IsWithTimeZone(d dialect.Dialect) bool {
	if d.Kind == dialect.KindDatabricks && (t == Unspecified || t == With || t == Local) {
		return true
	}
	if d.Kind == dialect.KindSnowflake && t == Unspecified {
		return false
	}
	return t == With || t == Local
}
