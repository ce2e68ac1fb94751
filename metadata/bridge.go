package metadata

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/sqltypedef/sqltypedef/dialect"
	"github.com/sqltypedef/sqltypedef/sqltype"
)

// FromField recovers a SqlType from an Arrow field: a type string found
// under one of d's candidate metadata keys takes priority and is
// parsed; otherwise the field's physical Arrow type is mapped
// best-effort via FromArrowType. The returned bool is the resulting
// nullability: when a type string was found, its own NOT NULL/NULLABLE
// suffix combined with the field's physical Nullable flag via logical
// OR (nullable if either source says so); otherwise just the field's
// Nullable flag.
func FromField(d dialect.Dialect, field *arrow.Field) (sqltype.SqlType, bool, error) {
	return FromFieldWithKeys(d, field, DefaultCandidateKeys(d))
}

// FromFieldWithKeys is FromField with an explicit, caller-supplied key
// priority list, letting internal/config override the per-dialect
// defaults without any package-level mutable state.
func FromFieldWithKeys(d dialect.Dialect, field *arrow.Field, keys []string) (sqltype.SqlType, bool, error) {
	if typeStr, ok := typeStringFromField(field, keys); ok {
		ty, nullable, err := sqltype.Parse(d, typeStr)
		if err != nil {
			return sqltype.SqlType{}, false, err
		}
		return ty, nullable || field.Nullable, nil
	}
	return FromArrowType(d, field.Type), field.Nullable, nil
}

func typeStringFromField(field *arrow.Field, keys []string) (string, bool) {
	md := field.Metadata
	for _, k := range keys {
		if idx := md.FindKey(k); idx >= 0 {
			return md.Values()[idx], true
		}
	}
	return "", false
}

// ToField builds an Arrow field named name for ty under d: its physical
// type is the best matching Arrow type (PickBestArrowType) and its
// metadata carries ty's exact rendering under d, so a later FromField
// recovers ty exactly rather than only its best-effort Arrow-type
// approximation.
func ToField(d dialect.Dialect, name string, ty sqltype.SqlType, nullable bool) arrow.Field {
	return ToFieldWithKey(d, name, ty, nullable, DefaultWriteKey(d))
}

// ToFieldWithKey is ToField with an explicit metadata key.
func ToFieldWithKey(d dialect.Dialect, name string, ty sqltype.SqlType, nullable bool, key string) arrow.Field {
	return arrow.Field{
		Name:     name,
		Type:     PickBestArrowType(ty, d),
		Nullable: nullable,
		Metadata: arrow.NewMetadata([]string{key}, []string{ty.String(d)}),
	}
}
