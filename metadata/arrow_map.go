package metadata

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/sqltypedef/sqltypedef/dialect"
	"github.com/sqltypedef/sqltypedef/ident"
	"github.com/sqltypedef/sqltypedef/sqltype"
)

// FromArrowType implements the best-effort physical-columnar-type to
// SqlType fallback used when a field carries no type-string metadata.
// Decimal precision/scale are taken as-is rather than consulting
// dialect-specific defaults; List/Struct nullability and quoting are
// not necessarily recoverable from the Arrow schema alone.
func FromArrowType(d dialect.Dialect, dt arrow.DataType) sqltype.SqlType {
	switch dt.ID() {
	case arrow.NULL:
		return sqltype.Varchar(nil)
	case arrow.BOOL:
		return sqltype.Boolean()
	case arrow.INT8, arrow.UINT8, arrow.INT16:
		return sqltype.SmallInt()
	case arrow.UINT16, arrow.INT32:
		return sqltype.Integer()
	case arrow.UINT32, arrow.INT64, arrow.UINT64:
		return sqltype.BigInt()
	case arrow.FLOAT16, arrow.FLOAT32:
		return sqltype.Real()
	case arrow.FLOAT64:
		return sqltype.Double()
	case arrow.DECIMAL128:
		dec := dt.(*arrow.Decimal128Type)
		p := uint8(dec.Precision)
		s := int8(dec.Scale)
		return sqltype.Numeric(&p, &s)
	case arrow.DECIMAL256:
		dec := dt.(*arrow.Decimal256Type)
		p := uint8(dec.Precision)
		s := int8(dec.Scale)
		return sqltype.Numeric(&p, &s)
	case arrow.STRING, arrow.STRING_VIEW:
		return sqltype.Varchar(nil)
	case arrow.LARGE_STRING:
		return sqltype.Text()
	case arrow.BINARY, arrow.LARGE_BINARY, arrow.BINARY_VIEW, arrow.FIXED_SIZE_BINARY:
		return sqltype.Binary()
	case arrow.DATE32, arrow.DATE64:
		return sqltype.Date()
	case arrow.TIME32:
		t := dt.(*arrow.Time32Type)
		if t.Unit == arrow.Millisecond {
			p := uint8(3)
			return sqltype.Time(&p, sqltype.Without)
		}
		return sqltype.Time(nil, sqltype.Without)
	case arrow.TIME64:
		t := dt.(*arrow.Time64Type)
		if t.Unit == arrow.Nanosecond {
			p := uint8(9)
			return sqltype.Time(&p, sqltype.Without)
		}
		p := uint8(6)
		return sqltype.Time(&p, sqltype.Without)
	case arrow.TIMESTAMP:
		ts := dt.(*arrow.TimestampType)
		tz := sqltype.Without
		if ts.TimeZone != "" {
			tz = sqltype.With
		}
		switch ts.Unit {
		case arrow.Second:
			return sqltype.Timestamp(nil, tz)
		case arrow.Millisecond:
			p := uint8(3)
			return sqltype.Timestamp(&p, tz)
		case arrow.Microsecond:
			p := uint8(6)
			return sqltype.Timestamp(&p, tz)
		default:
			p := uint8(9)
			return sqltype.Timestamp(&p, tz)
		}
	case arrow.INTERVAL_MONTHS:
		month := sqltype.Month
		return sqltype.IntervalOf(sqltype.Year, &month)
	case arrow.INTERVAL_DAY_TIME:
		ms := sqltype.Millisecond
		return sqltype.IntervalOf(sqltype.Day, &ms)
	case arrow.INTERVAL_MONTH_DAY_NANO:
		ns := sqltype.Nanosecond
		return sqltype.IntervalOf(sqltype.Month, &ns)
	case arrow.LIST, arrow.LARGE_LIST, arrow.LIST_VIEW, arrow.LARGE_LIST_VIEW:
		return sqltype.ArrayUnconstrained()
	case arrow.FIXED_SIZE_LIST:
		return sqltype.Other("ARRAY")
	case arrow.STRUCT:
		st := dt.(*arrow.StructType)
		fields := make([]sqltype.StructField, 0, st.NumFields())
		for _, f := range st.Fields() {
			fields = append(fields, sqltype.StructField{
				Name:     ident.Plain(f.Name),
				Type:     FromArrowType(d, f.Type),
				Nullable: f.Nullable,
			})
		}
		return sqltype.StructOf(fields)
	case arrow.MAP:
		return sqltype.MapUnconstrained()
	case arrow.DICTIONARY:
		dict := dt.(*arrow.DictionaryType)
		return FromArrowType(d, dict.ValueType)
	case arrow.RUN_END_ENCODED:
		ree := dt.(*arrow.RunEndEncodedType)
		return FromArrowType(d, ree.Encoded())
	default:
		return sqltype.Other(dt.Name())
	}
}

// PickBestArrowType is the inverse of FromArrowType: given a SqlType,
// pick the Arrow DataType that best represents it, using the same
// precision/field table FromArrowType uses so the common primitive
// types round-trip through ToField/FromField even without the
// metadata-string annotation.
func PickBestArrowType(ty sqltype.SqlType, d dialect.Dialect) arrow.DataType {
	switch ty.Kind() {
	case sqltype.KindBoolean:
		return arrow.FixedWidthTypes.Boolean
	case sqltype.KindTinyInt, sqltype.KindSmallInt:
		return arrow.PrimitiveTypes.Int16
	case sqltype.KindInteger:
		return arrow.PrimitiveTypes.Int32
	case sqltype.KindBigInt:
		return arrow.PrimitiveTypes.Int64
	case sqltype.KindReal:
		return arrow.PrimitiveTypes.Float32
	case sqltype.KindFloat:
		if p, ok := ty.FloatPrecision(); ok && p <= 24 {
			return arrow.PrimitiveTypes.Float32
		}
		return arrow.PrimitiveTypes.Float64
	case sqltype.KindDouble:
		return arrow.PrimitiveTypes.Float64
	case sqltype.KindNumeric, sqltype.KindBigNumeric:
		precision, scale, _, hasArgs := ty.NumericArgs()
		if !hasArgs {
			precision, scale = 38, 0
		}
		return &arrow.Decimal128Type{Precision: int32(precision), Scale: int32(scale)}
	case sqltype.KindChar, sqltype.KindVarchar, sqltype.KindText, sqltype.KindClob:
		return arrow.BinaryTypes.String
	case sqltype.KindBinary, sqltype.KindBlob:
		return arrow.BinaryTypes.Binary
	case sqltype.KindDate:
		return arrow.FixedWidthTypes.Date32
	case sqltype.KindTime:
		precision, _ := ty.TimePrecision()
		switch {
		case precision >= 7:
			return arrow.FixedWidthTypes.Time64ns
		case precision >= 4:
			return arrow.FixedWidthTypes.Time64us
		case precision >= 1:
			return arrow.FixedWidthTypes.Time32ms
		default:
			return arrow.FixedWidthTypes.Time32s
		}
	case sqltype.KindDateTime, sqltype.KindTimestamp:
		precision, _ := ty.TimePrecision()
		tz := ""
		if ty.TimeZoneSpec().IsWithTimeZone(d) {
			tz = "UTC"
		}
		var unit arrow.TimeUnit
		switch {
		case precision == 0:
			unit = arrow.Second
		case precision <= 3:
			unit = arrow.Millisecond
		case precision <= 6:
			unit = arrow.Microsecond
		default:
			unit = arrow.Nanosecond
		}
		return &arrow.TimestampType{Unit: unit, TimeZone: tz}
	case sqltype.KindInterval:
		start, end, hasEnd, hasQualifier := ty.IntervalQualifier()
		switch {
		case !hasQualifier:
			return arrow.FixedWidthTypes.MonthDayNanoInterval
		case start == sqltype.Year && hasEnd && end == sqltype.Month:
			return arrow.FixedWidthTypes.MonthInterval
		case start == sqltype.Day && hasEnd:
			return arrow.FixedWidthTypes.DayTimeInterval
		default:
			return arrow.FixedWidthTypes.MonthDayNanoInterval
		}
	case sqltype.KindJson, sqltype.KindJsonb, sqltype.KindVariant, sqltype.KindGeometry, sqltype.KindGeography:
		return arrow.BinaryTypes.String
	case sqltype.KindArray:
		if elem, ok := ty.Elem(); ok {
			return arrow.ListOf(PickBestArrowType(elem, d))
		}
		return arrow.ListOf(arrow.BinaryTypes.String)
	case sqltype.KindStruct:
		if fields, ok := ty.StructFields(); ok {
			arrowFields := make([]arrow.Field, 0, len(fields))
			for _, f := range fields {
				arrowFields = append(arrowFields, arrow.Field{
					Name:     f.Name.Text(),
					Type:     PickBestArrowType(f.Type, d),
					Nullable: f.Nullable,
				})
			}
			return arrow.StructOf(arrowFields...)
		}
		return arrow.StructOf()
	case sqltype.KindMap:
		if key, value, ok := ty.MapTypes(); ok {
			return arrow.MapOf(PickBestArrowType(key, d), PickBestArrowType(value, d))
		}
		return arrow.MapOf(arrow.BinaryTypes.String, arrow.BinaryTypes.String)
	case sqltype.KindVoid:
		return &arrow.NullType{}
	default:
		return arrow.BinaryTypes.String
	}
}
