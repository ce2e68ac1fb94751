package metadata

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"

	"github.com/sqltypedef/sqltypedef/dialect"
	"github.com/sqltypedef/sqltypedef/sqltype"
)

func TestFromArrowTypePrimitives(t *testing.T) {
	assert.Equal(t, sqltype.KindBoolean, FromArrowType(dialect.Postgres, arrow.FixedWidthTypes.Boolean).Kind())
	assert.Equal(t, sqltype.KindBigInt, FromArrowType(dialect.Postgres, arrow.PrimitiveTypes.Int64).Kind())
	assert.Equal(t, sqltype.KindVarchar, FromArrowType(dialect.Postgres, arrow.BinaryTypes.String).Kind())
	assert.Equal(t, sqltype.KindText, FromArrowType(dialect.Postgres, arrow.BinaryTypes.LargeString).Kind())
}

func TestFromArrowTypeDecimal(t *testing.T) {
	dt := &arrow.Decimal128Type{Precision: 12, Scale: 4}
	ty := FromArrowType(dialect.Postgres, dt)
	assert.Equal(t, sqltype.KindNumeric, ty.Kind())
	precision, scale, hasScale, hasArgs := ty.NumericArgs()
	assert.True(t, hasArgs)
	assert.True(t, hasScale)
	assert.Equal(t, uint8(12), precision)
	assert.Equal(t, int8(4), scale)
}

func TestFromArrowTypeStructRecurses(t *testing.T) {
	dt := arrow.StructOf(
		arrow.Field{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		arrow.Field{Name: "b", Type: arrow.BinaryTypes.String, Nullable: false},
	)
	ty := FromArrowType(dialect.Postgres, dt)
	assert.Equal(t, sqltype.KindStruct, ty.Kind())
	fields, ok := ty.StructFields()
	assert.True(t, ok)
	assert.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Name.Text())
	assert.True(t, fields[0].Nullable)
	assert.False(t, fields[1].Nullable)
}

func TestPickBestArrowTypePrimitives(t *testing.T) {
	assert.Equal(t, arrow.FixedWidthTypes.Boolean, PickBestArrowType(sqltype.Boolean(), dialect.Postgres))
	assert.Equal(t, arrow.PrimitiveTypes.Int64, PickBestArrowType(sqltype.BigInt(), dialect.Postgres))
	assert.Equal(t, arrow.BinaryTypes.String, PickBestArrowType(sqltype.Text(), dialect.Postgres))
}

func TestPickBestArrowTypeDecimalDefaultsWhenNoArgs(t *testing.T) {
	dt := PickBestArrowType(sqltype.Numeric(nil, nil), dialect.Postgres)
	dec, ok := dt.(*arrow.Decimal128Type)
	assert.True(t, ok)
	assert.Equal(t, int32(38), dec.Precision)
	assert.Equal(t, int32(0), dec.Scale)
}

func TestPickBestArrowTypeArrayRecurses(t *testing.T) {
	dt := PickBestArrowType(sqltype.ArrayOf(sqltype.Integer()), dialect.Postgres)
	listType, ok := dt.(*arrow.ListType)
	assert.True(t, ok)
	assert.Equal(t, arrow.PrimitiveTypes.Int32, listType.Elem())
}

func TestFromArrowAndPickBestRoundTripPrimitiveKind(t *testing.T) {
	ty := FromArrowType(dialect.Postgres, arrow.PrimitiveTypes.Float64)
	assert.Equal(t, arrow.PrimitiveTypes.Float64, PickBestArrowType(ty, dialect.Postgres))
}
