package sqltype

// Snapshot is a plain, exported view of a SqlType's fields, built so
// debug tooling (the CLI's --debug flag, backed by k0kubun/pp) has
// something to walk; SqlType itself keeps its fields unexported to
// preserve its invariants.
type Snapshot struct {
	Kind          string
	FloatPrecison *uint8
	Precision     *uint8
	Scale         *int8
	Length        *uint
	TimePrecision *uint8
	TimeZone      string
	Other         string
	ElemKind      string
	StructFields  int
}

func (tz TimeZoneSpec) name() string {
	switch tz {
	case Local:
		return "LOCAL"
	case With:
		return "WITH"
	case Without:
		return "WITHOUT"
	case Unspecified:
		return "UNSPECIFIED"
	default:
		return "?"
	}
}

func (k Kind) name() string {
	names := [...]string{
		"Boolean", "TinyInt", "SmallInt", "Integer", "BigInt", "Real", "Float",
		"Double", "Numeric", "BigNumeric", "Char", "Varchar", "Text", "Clob",
		"Blob", "Binary", "Date", "Time", "Timestamp", "DateTime", "Interval",
		"Json", "Jsonb", "Geometry", "Geography", "Array", "Struct", "Map",
		"Variant", "Void", "Other",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "Unknown"
	}
	return names[k]
}

// Debug builds a Snapshot of t for pretty-printing.
func (t SqlType) Debug() Snapshot {
	s := Snapshot{
		Kind:          t.kind.name(),
		FloatPrecison: t.floatPrecision,
		Precision:     t.precision,
		Scale:         t.scale,
		Length:        t.length,
		TimePrecision: t.timePrecision,
		TimeZone:      t.timeZone.name(),
		Other:         t.other,
	}
	if t.elem != nil {
		s.ElemKind = t.elem.kind.name()
	}
	if t.hasStructFields {
		s.StructFields = len(t.structFields)
	}
	return s
}
