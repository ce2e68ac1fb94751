// Package sqltype models SQL column types independently of any one SQL
// dialect: a tokenizer, a recursive-descent parser, and a dialect-aware
// renderer, plus the SqlType value type itself, following a
// dialect-tagged dispatch style throughout.
package sqltype

import (
	"github.com/sqltypedef/sqltypedef/ident"
)

// Kind tags which SqlType variant a value holds.
type Kind int

const (
	KindBoolean Kind = iota
	KindTinyInt
	KindSmallInt
	KindInteger
	KindBigInt
	KindReal
	KindFloat
	KindDouble
	KindNumeric
	KindBigNumeric
	KindChar
	KindVarchar
	KindText
	KindClob
	KindBlob
	KindBinary
	KindDate
	KindTime
	KindTimestamp
	KindDateTime
	KindInterval
	KindJson
	KindJsonb
	KindGeometry
	KindGeography
	KindArray
	KindStruct
	KindMap
	KindVariant
	KindVoid
	KindOther
)

// StructField is one named, typed, nullable member of a Struct type.
type StructField struct {
	Name     ident.Ident
	Type     SqlType
	Nullable bool
}

// SqlType is an immutable SQL type value. It is represented as a single
// tagged struct rather than an interface hierarchy, following a
// mode-tagged dispatch idiom rather than Go's interface-based
// polymorphism - there is exactly one closed set of variants and no
// caller ever needs to add a new one.
type SqlType struct {
	kind Kind

	floatPrecision *uint8

	precision *uint8 // Numeric/BigNumeric
	scale     *int8  // Numeric/BigNumeric, only meaningful if precision != nil

	length *uint // Char/Varchar

	timePrecision *uint8 // Time/Timestamp
	timeZone      TimeZoneSpec

	intervalStart *DateTimeField
	intervalEnd   *DateTimeField

	elem *SqlType // Array

	structFields    []StructField
	hasStructFields bool

	mapKey   *SqlType
	mapValue *SqlType

	other string
}

func Boolean() SqlType  { return SqlType{kind: KindBoolean} }
func TinyInt() SqlType  { return SqlType{kind: KindTinyInt} }
func SmallInt() SqlType { return SqlType{kind: KindSmallInt} }
func Integer() SqlType  { return SqlType{kind: KindInteger} }
func BigInt() SqlType   { return SqlType{kind: KindBigInt} }
func Real() SqlType     { return SqlType{kind: KindReal} }

func Float(precision *uint8) SqlType {
	return SqlType{kind: KindFloat, floatPrecision: precision}
}

func Double() SqlType { return SqlType{kind: KindDouble} }

func Numeric(precision *uint8, scale *int8) SqlType {
	return SqlType{kind: KindNumeric, precision: precision, scale: scale}
}

func BigNumeric(precision *uint8, scale *int8) SqlType {
	return SqlType{kind: KindBigNumeric, precision: precision, scale: scale}
}

func Char(length *uint) SqlType    { return SqlType{kind: KindChar, length: length} }
func Varchar(length *uint) SqlType { return SqlType{kind: KindVarchar, length: length} }
func Text() SqlType                { return SqlType{kind: KindText} }
func Clob() SqlType                { return SqlType{kind: KindClob} }
func Blob() SqlType                { return SqlType{kind: KindBlob} }
func Binary() SqlType              { return SqlType{kind: KindBinary} }
func Date() SqlType                { return SqlType{kind: KindDate} }

func Time(precision *uint8, tz TimeZoneSpec) SqlType {
	return SqlType{kind: KindTime, timePrecision: precision, timeZone: tz}
}

func Timestamp(precision *uint8, tz TimeZoneSpec) SqlType {
	return SqlType{kind: KindTimestamp, timePrecision: precision, timeZone: tz}
}

func DateTime() SqlType { return SqlType{kind: KindDateTime} }

// IntervalUnconstrained is a bare INTERVAL with no start/end qualifier.
func IntervalUnconstrained() SqlType { return SqlType{kind: KindInterval} }

// IntervalOf is an INTERVAL qualified by a start field and, optionally,
// an end field (INTERVAL DAY TO SECOND has start=Day, end=&Second).
func IntervalOf(start DateTimeField, end *DateTimeField) SqlType {
	s := start
	return SqlType{kind: KindInterval, intervalStart: &s, intervalEnd: end}
}

func Json() SqlType      { return SqlType{kind: KindJson} }
func Jsonb() SqlType     { return SqlType{kind: KindJsonb} }
func Geometry() SqlType  { return SqlType{kind: KindGeometry} }
func Geography() SqlType { return SqlType{kind: KindGeography} }
func Variant() SqlType   { return SqlType{kind: KindVariant} }
func Void() SqlType      { return SqlType{kind: KindVoid} }

// ArrayUnconstrained is a bare ARRAY with no declared element type.
func ArrayUnconstrained() SqlType { return SqlType{kind: KindArray} }

func ArrayOf(elem SqlType) SqlType {
	e := elem
	return SqlType{kind: KindArray, elem: &e}
}

// StructUnconstrained is a bare STRUCT with no declared fields.
func StructUnconstrained() SqlType { return SqlType{kind: KindStruct} }

// StructOf is a STRUCT with a known, possibly empty, field list.
func StructOf(fields []StructField) SqlType {
	return SqlType{kind: KindStruct, structFields: fields, hasStructFields: true}
}

// MapUnconstrained is a bare MAP with no declared key/value types.
func MapUnconstrained() SqlType { return SqlType{kind: KindMap} }

func MapOf(key, value SqlType) SqlType {
	k, v := key, value
	return SqlType{kind: KindMap, mapKey: &k, mapValue: &v}
}

// Other captures a type expression this package does not recognize,
// preserved verbatim so a caller can still round-trip it.
func Other(text string) SqlType { return SqlType{kind: KindOther, other: text} }

func (t SqlType) Kind() Kind { return t.kind }

func (t SqlType) FloatPrecision() (uint8, bool) {
	if t.floatPrecision == nil {
		return 0, false
	}
	return *t.floatPrecision, true
}

// NumericArgs returns the parsed precision/scale for a Numeric or
// BigNumeric type. hasArgs is false when neither was given at all;
// hasScale is false when a precision was given but no scale.
func (t SqlType) NumericArgs() (precision uint8, scale int8, hasScale, hasArgs bool) {
	if t.precision == nil {
		return 0, 0, false, false
	}
	if t.scale == nil {
		return *t.precision, 0, false, true
	}
	return *t.precision, *t.scale, true, true
}

func (t SqlType) Length() (uint, bool) {
	if t.length == nil {
		return 0, false
	}
	return *t.length, true
}

func (t SqlType) TimePrecision() (uint8, bool) {
	if t.timePrecision == nil {
		return 0, false
	}
	return *t.timePrecision, true
}

func (t SqlType) TimeZoneSpec() TimeZoneSpec { return t.timeZone }

// IntervalQualifier returns the parsed start/end fields of an Interval
// type. hasQualifier is false for a bare INTERVAL; hasEnd is false for
// a single-field qualifier like INTERVAL DAY.
func (t SqlType) IntervalQualifier() (start, end DateTimeField, hasEnd, hasQualifier bool) {
	if t.intervalStart == nil {
		return 0, 0, false, false
	}
	if t.intervalEnd == nil {
		return *t.intervalStart, 0, false, true
	}
	return *t.intervalStart, *t.intervalEnd, true, true
}

func (t SqlType) Elem() (SqlType, bool) {
	if t.elem == nil {
		return SqlType{}, false
	}
	return *t.elem, true
}

func (t SqlType) StructFields() ([]StructField, bool) {
	if !t.hasStructFields {
		return nil, false
	}
	return t.structFields, true
}

func (t SqlType) MapTypes() (key, value SqlType, ok bool) {
	if t.mapKey == nil {
		return SqlType{}, SqlType{}, false
	}
	return *t.mapKey, *t.mapValue, true
}

func (t SqlType) Other() string { return t.other }
