package sqltype

import (
	"fmt"
	"strings"

	"github.com/sqltypedef/sqltypedef/dialect"
)

// String renders t the way it would be spelled in a CREATE TABLE
// statement for d.
func (t SqlType) String(d dialect.Dialect) string {
	var b strings.Builder
	t.Write(d, &b)
	return b.String()
}

// Write renders t into out for d. Dispatch follows a mode-tagged
// if-chain style: each dialect-specific block claims the Kind values
// it overrides and returns true; anything left unclaimed falls
// through, in priority order, to the generic renderer.
func (t SqlType) Write(d dialect.Dialect, out *strings.Builder) {
	if d.Kind == dialect.KindBigQuery && t.writeBigQuery(d, out) {
		return
	}
	if d.Kind == dialect.KindSnowflake && t.writeSnowflake(d, out) {
		return
	}
	if d.IsPostgresFamily() && t.writePostgresFamily(d, out) {
		return
	}
	if d.IsDatabricksFamily() && t.writeDatabricks(d, out) {
		return
	}
	t.writeGeneric(d, out)
}

func (t SqlType) writeBigQuery(d dialect.Dialect, out *strings.Builder) bool {
	switch t.kind {
	case KindBoolean:
		out.WriteString("BOOL")
	case KindTinyInt, KindSmallInt, KindInteger, KindBigInt:
		out.WriteString("INT64")
	case KindReal, KindFloat, KindDouble:
		out.WriteString("FLOAT64")
	case KindChar, KindVarchar, KindText, KindClob:
		out.WriteString("STRING")
	case KindBlob, KindBinary:
		out.WriteString("BYTES")
	case KindTime:
		out.WriteString("TIME")
		t.timeZone.writeWithLeadingSpace(d, out)
	case KindTimestamp:
		out.WriteString("TIMESTAMP")
		t.timeZone.writeWithLeadingSpace(d, out)
	default:
		return false
	}
	return true
}

func (t SqlType) writeSnowflake(d dialect.Dialect, out *strings.Builder) bool {
	switch t.kind {
	case KindFloat:
		out.WriteString("FLOAT")
	case KindNumeric, KindBigNumeric:
		writeDecimalArgs(out, "NUMBER", t.precision, t.scale)
	case KindClob:
		out.WriteString("TEXT")
	case KindBlob:
		out.WriteString("BINARY")
	case KindTime:
		out.WriteString("TIME")
		if t.timePrecision != nil {
			fmt.Fprintf(out, "(%d)", *t.timePrecision)
		}
		if t.timeZone == Local || t.timeZone == With {
			t.timeZone.writeWithLeadingSpace(d, out)
		}
	case KindTimestamp:
		out.WriteString("TIMESTAMP")
		t.timeZone.writeSingleTokenSuffix(d, out)
		if t.timePrecision != nil {
			fmt.Fprintf(out, "(%d)", *t.timePrecision)
		}
	case KindDateTime:
		out.WriteString("TIMESTAMP_NTZ")
	default:
		return false
	}
	return true
}

func (t SqlType) writePostgresFamily(d dialect.Dialect, out *strings.Builder) bool {
	switch t.kind {
	case KindTinyInt:
		out.WriteString("SMALLINT")
	case KindBinary, KindBlob:
		out.WriteString("BYTEA")
	case KindDateTime:
		out.WriteString("TIMESTAMP")
	case KindTimestamp:
		if t.timePrecision != nil {
			fmt.Fprintf(out, "TIMESTAMP(%d)", *t.timePrecision)
			t.timeZone.writeWithLeadingSpace(d, out)
		} else {
			out.WriteString("TIMESTAMP")
			t.timeZone.writeSingleTokenSuffix(d, out)
		}
	case KindFloat:
		out.WriteString("REAL")
	case KindClob:
		out.WriteString("TEXT")
	case KindArray:
		if t.elem == nil {
			return false
		}
		t.elem.Write(d, out)
		out.WriteString("[]")
	default:
		return false
	}
	return true
}

func (t SqlType) writeDatabricks(d dialect.Dialect, out *strings.Builder) bool {
	switch t.kind {
	case KindBinary, KindBlob:
		out.WriteString("BINARY")
	case KindClob, KindText, KindVarchar:
		out.WriteString("STRING")
	case KindNumeric, KindBigNumeric:
		writeDecimalArgs(out, "DECIMAL", t.precision, t.scale)
	case KindReal, KindFloat:
		out.WriteString("FLOAT")
	case KindDouble:
		out.WriteString("DOUBLE")
	case KindDateTime:
		out.WriteString("TIMESTAMP_NTZ")
	case KindTimestamp:
		out.WriteString("TIMESTAMP")
		t.timeZone.writeSingleTokenSuffix(d, out)
	default:
		return false
	}
	return true
}

func (t SqlType) writeGeneric(d dialect.Dialect, out *strings.Builder) {
	switch t.kind {
	case KindBoolean:
		out.WriteString("BOOLEAN")
	case KindTinyInt:
		out.WriteString("TINYINT")
	case KindSmallInt:
		out.WriteString("SMALLINT")
	case KindInteger:
		out.WriteString("INT")
	case KindBigInt:
		out.WriteString("BIGINT")
	case KindReal:
		out.WriteString("REAL")
	case KindFloat:
		if t.floatPrecision != nil {
			fmt.Fprintf(out, "FLOAT(%d)", *t.floatPrecision)
		} else {
			out.WriteString("FLOAT")
		}
	case KindDouble:
		out.WriteString("DOUBLE PRECISION")
	case KindNumeric:
		writeDecimalArgs(out, "NUMERIC", t.precision, t.scale)
	case KindBigNumeric:
		writeDecimalArgs(out, "BIGNUMERIC", t.precision, t.scale)
	case KindChar:
		writeCharLike(out, "CHAR", t.length)
	case KindVarchar:
		writeCharLike(out, "VARCHAR", t.length)
	case KindText:
		out.WriteString("TEXT")
	case KindClob:
		out.WriteString("CLOB")
	case KindBlob:
		out.WriteString("BLOB")
	case KindBinary:
		out.WriteString("BINARY")
	case KindDate:
		out.WriteString("DATE")
	case KindTime:
		if t.timePrecision != nil {
			fmt.Fprintf(out, "TIME(%d)", *t.timePrecision)
		} else {
			out.WriteString("TIME")
		}
		t.timeZone.writeWithLeadingSpace(d, out)
	case KindDateTime:
		out.WriteString("DATETIME")
	case KindTimestamp:
		if t.timePrecision != nil {
			fmt.Fprintf(out, "TIMESTAMP(%d)", *t.timePrecision)
		} else {
			out.WriteString("TIMESTAMP")
		}
		t.timeZone.writeWithLeadingSpace(d, out)
	case KindInterval:
		t.writeInterval(d, out)
	case KindJson:
		out.WriteString("JSON")
	case KindJsonb:
		out.WriteString("JSONB")
	case KindGeometry:
		out.WriteString("GEOMETRY")
	case KindGeography:
		out.WriteString("GEOGRAPHY")
	case KindArray:
		if t.elem == nil {
			out.WriteString("ARRAY")
		} else {
			out.WriteString("ARRAY<")
			t.elem.Write(d, out)
			out.WriteString(">")
		}
	case KindStruct:
		t.writeStruct(d, out)
	case KindMap:
		if t.mapKey == nil {
			out.WriteString("MAP")
		} else {
			out.WriteString("MAP<")
			t.mapKey.Write(d, out)
			out.WriteString(", ")
			t.mapValue.Write(d, out)
			out.WriteString(">")
		}
	case KindVariant:
		out.WriteString("VARIANT")
	case KindVoid:
		out.WriteString("VOID")
	case KindOther:
		out.WriteString(t.other)
	}
}

func (t SqlType) writeStruct(d dialect.Dialect, out *strings.Builder) {
	if !t.hasStructFields {
		out.WriteString("STRUCT")
		return
	}
	parens := d.IsPostgresFamily()
	if parens {
		out.WriteString("(")
	} else {
		out.WriteString("STRUCT<")
	}
	for i, f := range t.structFields {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(renderIdentForStruct(f.Name, d))
		out.WriteString(" ")
		f.Type.Write(d, out)
		if !f.Nullable {
			out.WriteString(" NOT NULL")
		}
	}
	if parens {
		out.WriteString(")")
	} else {
		out.WriteString(">")
	}
}

// writeInterval: a lone start field always renders dialect-aware (so
// Millisecond folds to SECOND(3) on Postgres), but when an end field is
// present the start field is always spelled out in full and only the
// end field gets dialect-aware treatment. A qualifier is preserved even
// on backends that treat it as non-binding decoration rather than a
// real constraint.
func (t SqlType) writeInterval(d dialect.Dialect, out *strings.Builder) {
	if t.intervalStart == nil {
		out.WriteString("INTERVAL")
		return
	}
	out.WriteString("INTERVAL ")
	if t.intervalEnd != nil {
		out.WriteString(t.intervalStart.String())
		out.WriteString(" TO ")
		t.intervalEnd.write(d, out)
		return
	}
	t.intervalStart.write(d, out)
}

func writeDecimalArgs(out *strings.Builder, name string, precision *uint8, scale *int8) {
	if precision == nil {
		out.WriteString(name)
		return
	}
	if scale == nil {
		fmt.Fprintf(out, "%s(%d)", name, *precision)
		return
	}
	fmt.Fprintf(out, "%s(%d, %d)", name, *precision, *scale)
}

func writeCharLike(out *strings.Builder, name string, length *uint) {
	out.WriteString(name)
	if length != nil && *length > 0 {
		fmt.Fprintf(out, "(%d)", *length)
	}
}
