package sqltype

import (
	"strings"

	"github.com/sqltypedef/sqltypedef/dialect"
)

// DateTimeField is one of the fields that can appear in an INTERVAL
// qualifier (YEAR TO MONTH, DAY TO SECOND, and so on).
type DateTimeField int

const (
	Year DateTimeField = iota
	Month
	Day
	Hour
	Minute
	Second
	Millisecond
	Microsecond
	Nanosecond
)

func (f DateTimeField) String() string {
	switch f {
	case Year:
		return "YEAR"
	case Month:
		return "MONTH"
	case Day:
		return "DAY"
	case Hour:
		return "HOUR"
	case Minute:
		return "MINUTE"
	case Second:
		return "SECOND"
	case Millisecond:
		return "MILLISECOND"
	case Microsecond:
		return "MICROSECOND"
	case Nanosecond:
		return "NANOSECOND"
	default:
		return "UNKNOWN"
	}
}

// write renders f the way d spells it. Postgres and its Redshift
// relatives have no MILLISECOND/MICROSECOND/NANOSECOND keywords; they
// fold those sub-second fields into the standard SECOND(n) fractional
// precision instead.
func (f DateTimeField) write(d dialect.Dialect, out *strings.Builder) {
	if d.IsPostgresFamily() {
		switch f {
		case Millisecond:
			out.WriteString("SECOND(3)")
			return
		case Microsecond:
			out.WriteString("SECOND(6)")
			return
		case Nanosecond:
			out.WriteString("SECOND(9)")
			return
		}
	}
	out.WriteString(f.String())
}

// FromPrecision maps a fractional-second precision to the sub-second
// field it implies: 0-2 fits in whole seconds, 3-5 needs millisecond
// resolution, 6-8 microsecond, and 9 or above nanosecond.
func FromPrecision(p uint8) DateTimeField {
	switch {
	case p <= 2:
		return Second
	case p <= 5:
		return Millisecond
	case p <= 8:
		return Microsecond
	default:
		return Nanosecond
	}
}

func dateTimeFieldFromWord(word string) (DateTimeField, bool) {
	switch {
	case strings.EqualFold(word, "YEAR"):
		return Year, true
	case strings.EqualFold(word, "MONTH"):
		return Month, true
	case strings.EqualFold(word, "DAY"):
		return Day, true
	case strings.EqualFold(word, "HOUR"):
		return Hour, true
	case strings.EqualFold(word, "MINUTE"):
		return Minute, true
	case strings.EqualFold(word, "SECOND"):
		return Second, true
	case strings.EqualFold(word, "MILLISECOND"):
		return Millisecond, true
	case strings.EqualFold(word, "MICROSECOND"):
		return Microsecond, true
	case strings.EqualFold(word, "NANOSECOND"):
		return Nanosecond, true
	default:
		return 0, false
	}
}
