package sqltype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sqltypedef/sqltypedef/dialect"
	"github.com/sqltypedef/sqltypedef/ident"
)

// Parser is a recursive-descent parser over a single SQL type
// expression, dialect-aware everywhere the grammar diverges (postfix
// array suffixes, anonymous struct parens, DATETIME on Snowflake, and
// so on).
type Parser struct {
	dialect dialect.Dialect
	tkn     *Tokenizer
}

// NewParser creates a parser over input for d.
func NewParser(d dialect.Dialect, input string) *Parser {
	return &Parser{dialect: d, tkn: NewTokenizer(input)}
}

// Parse parses input as a constrained SQL type (a type optionally
// followed by NOT NULL or NULLABLE) for d. Nullable defaults to true
// when no suffix is present. Any failure is wrapped with the original
// input text.
func Parse(d dialect.Dialect, input string) (SqlType, bool, error) {
	p := NewParser(d, input)
	ty, nullable, err := p.parseConstrainedType()
	if err != nil {
		return SqlType{}, false, fmt.Errorf("failed to parse SQL type %q: %w", input, err)
	}
	n := true
	if nullable != nil {
		n = *nullable
	}
	return ty, n, nil
}

func (p *Parser) next() (Token, error) {
	tok, ok := p.tkn.Next()
	if !ok {
		return Token{}, newUnexpectedEndOfInput()
	}
	return tok, nil
}

func (p *Parser) expect(kind TokenKind) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind != kind {
		return newUnexpected(tok)
	}
	return nil
}

func (p *Parser) expectWord(word string) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind != TokWord || !strings.EqualFold(tok.Word, word) {
		return newUnexpected(tok)
	}
	return nil
}

func (p *Parser) match_(kind TokenKind) bool {
	return p.tkn.Match(func(t Token) bool { return t.Kind == kind })
}

func (p *Parser) matchWord(word string) bool {
	return p.tkn.Match(func(t Token) bool {
		return t.Kind == TokWord && strings.EqualFold(t.Word, word)
	})
}

func (p *Parser) datetimeField() (DateTimeField, bool) {
	return PeekAndThen(p.tkn, func(t Token) (DateTimeField, bool) {
		if t.Kind != TokWord {
			return 0, false
		}
		return dateTimeFieldFromWord(t.Word)
	})
}

func (p *Parser) nextUint8() (uint8, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	if tok.Kind != TokWord {
		return 0, newUnexpected(tok)
	}
	v, err := strconv.ParseUint(tok.Word, 10, 8)
	if err != nil {
		return 0, newParseIntError(err)
	}
	return uint8(v), nil
}

func (p *Parser) nextInt8() (int8, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	if tok.Kind != TokWord {
		return 0, newUnexpected(tok)
	}
	v, err := strconv.ParseInt(tok.Word, 10, 8)
	if err != nil {
		return 0, newParseIntError(err)
	}
	return int8(v), nil
}

func (p *Parser) nextUint() (uint, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	if tok.Kind != TokWord {
		return 0, newUnexpected(tok)
	}
	v, err := strconv.ParseUint(tok.Word, 10, strconv.IntSize)
	if err != nil {
		return 0, newParseIntError(err)
	}
	return uint(v), nil
}

// precisionU8 parses an optional "(N)" suffix.
func (p *Parser) precisionU8() (*uint8, error) {
	if !p.match_(TokLParen) {
		return nil, nil
	}
	v, err := p.nextUint8()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokRParen); err != nil {
		return nil, err
	}
	return &v, nil
}

// precisionUint parses an optional "(N)" suffix for lengths too large
// to fit a uint8 (Char/Varchar lengths).
func (p *Parser) precisionUint() (*uint, error) {
	if !p.match_(TokLParen) {
		return nil, nil
	}
	v, err := p.nextUint()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokRParen); err != nil {
		return nil, err
	}
	return &v, nil
}

// precisionAndScale parses an optional "(P[, S])" suffix.
func (p *Parser) precisionAndScale() (*uint8, *int8, error) {
	if !p.match_(TokLParen) {
		return nil, nil, nil
	}
	precision, err := p.nextUint8()
	if err != nil {
		return nil, nil, err
	}
	var scale *int8
	if p.match_(TokComma) {
		s, err := p.nextInt8()
		if err != nil {
			return nil, nil, err
		}
		scale = &s
	}
	if err := p.expect(TokRParen); err != nil {
		return nil, nil, err
	}
	return &precision, scale, nil
}

func (p *Parser) timeZoneSpec() (TimeZoneSpec, error) {
	if p.matchWord("WITH") {
		local := p.matchWord("LOCAL")
		if err := p.expectWord("TIME"); err != nil {
			return 0, err
		}
		if err := p.expectWord("ZONE"); err != nil {
			return 0, err
		}
		if local {
			return Local, nil
		}
		return With, nil
	}
	if p.matchWord("WITHOUT") {
		if err := p.expectWord("TIME"); err != nil {
			return 0, err
		}
		if err := p.expectWord("ZONE"); err != nil {
			return 0, err
		}
		return Without, nil
	}
	return Unspecified, nil
}

// intervalQualifier parses the optional "<start> [TO <end>]" that can
// follow INTERVAL.
func (p *Parser) intervalQualifier() (start, end *DateTimeField, err error) {
	s, ok := p.datetimeField()
	if !ok {
		return nil, nil, nil
	}
	if p.matchWord("TO") {
		e, ok := p.datetimeField()
		if !ok {
			return nil, nil, newExpectedDateTimeField()
		}
		return &s, &e, nil
	}
	return &s, nil, nil
}

func (p *Parser) nullable() (*bool, error) {
	if p.matchWord("NOT") {
		if err := p.expectWord("NULL"); err != nil {
			return nil, err
		}
		f := false
		return &f, nil
	}
	if p.matchWord("NULLABLE") {
		t := true
		return &t, nil
	}
	return nil, nil
}

func (p *Parser) parseConstrainedType() (SqlType, *bool, error) {
	ty, err := p.parseUnconstrainedType()
	if err != nil {
		return SqlType{}, nil, err
	}
	n, err := p.nullable()
	if err != nil {
		return SqlType{}, nil, err
	}
	return ty, n, nil
}

// parseUnconstrainedType parses a bare type, then - on Postgres-family
// and Generic dialects only - any number of trailing "[]" suffixes,
// wrapping the type in an Array for each.
func (p *Parser) parseUnconstrainedType() (SqlType, error) {
	ty, err := p.parseInner()
	if err != nil {
		return SqlType{}, err
	}
	if p.dialect.IsPostgresFamily() || p.dialect.Kind == dialect.KindGeneric {
		for p.match_(TokLBracket) {
			if err := p.expect(TokRBracket); err != nil {
				return SqlType{}, err
			}
			ty = ArrayOf(ty)
		}
	}
	return ty, nil
}

// structFields parses a comma-separated "name type [NOT NULL]" list up
// to terminator, which is consumed. A missing nullability suffix on a
// struct field defaults to nullable, matching the top-level default.
func (p *Parser) structFields(terminator TokenKind) ([]StructField, error) {
	fields := []StructField{}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == terminator {
			break
		}
		if tok.Kind != TokWord {
			return nil, newUnexpected(tok)
		}
		name, err := wordToIdent(tok.Word, p.dialect)
		if err != nil {
			return nil, err
		}
		ty, nullable, err := p.parseConstrainedType()
		if err != nil {
			return nil, err
		}
		n := true
		if nullable != nil {
			n = *nullable
		}
		fields = append(fields, StructField{Name: name, Type: ty, Nullable: n})

		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokComma {
			continue
		}
		if tok.Kind == terminator {
			break
		}
		return nil, newUnexpected(tok)
	}
	return fields, nil
}

func (p *Parser) parseInner() (SqlType, error) {
	tok, err := p.next()
	if err != nil {
		return SqlType{}, err
	}
	if tok.Kind == TokLParen {
		if p.dialect.IsPostgresFamily() || p.dialect.Kind == dialect.KindGeneric {
			fields, err := p.structFields(TokRParen)
			if err != nil {
				return SqlType{}, err
			}
			return StructOf(fields), nil
		}
		return SqlType{}, newUnexpected(tok)
	}
	if tok.Kind != TokWord {
		return SqlType{}, newUnexpected(tok)
	}
	return p.parseWordType(tok.Word)
}

func eqi(a, b string) bool { return strings.EqualFold(a, b) }

// parseWordType dispatches on the keyword that opened the type
// expression. PostgreSQL-only types this grammar does not support
// (money, bit/varbit, network address types, geometric types,
// tsvector/uuid/xml, and the rest) fall through to the Other branch the
// same way an unrecognized word anywhere else does.
func (p *Parser) parseWordType(w string) (SqlType, error) {
	switch {
	case eqi(w, "BOOLEAN") || eqi(w, "BOOL"):
		return Boolean(), nil
	case eqi(w, "TINYINT") || eqi(w, "BYTEINT"):
		return TinyInt(), nil
	case eqi(w, "SMALLINT") || eqi(w, "INT2") || eqi(w, "SMALLSERIAL") || eqi(w, "SERIAL2"):
		return SmallInt(), nil
	case eqi(w, "INTEGER") || eqi(w, "INT") || eqi(w, "INT4") || eqi(w, "SERIAL") || eqi(w, "SERIAL4"):
		return Integer(), nil
	case eqi(w, "BIGINT") || eqi(w, "INT64") || eqi(w, "INT8") || eqi(w, "BIGSERIAL") || eqi(w, "SERIAL8"):
		return BigInt(), nil
	case eqi(w, "REAL"):
		return Real(), nil
	case eqi(w, "FLOAT4"):
		if p.dialect.IsPostgresFamily() {
			return Real(), nil
		}
		return Float(nil), nil
	case eqi(w, "FLOAT8") || eqi(w, "FLOAT64"):
		return Double(), nil
	case eqi(w, "FLOAT"):
		precision, err := p.precisionU8()
		if err != nil {
			return SqlType{}, err
		}
		return Float(precision), nil
	case eqi(w, "DOUBLE"):
		p.matchWord("PRECISION")
		return Double(), nil
	case eqi(w, "DECIMAL") || eqi(w, "NUMERIC") || eqi(w, "NUMBER"):
		precision, scale, err := p.precisionAndScale()
		if err != nil {
			return SqlType{}, err
		}
		return Numeric(precision, scale), nil
	case eqi(w, "BIGDECIMAL") || eqi(w, "BIGNUMERIC"):
		precision, scale, err := p.precisionAndScale()
		if err != nil {
			return SqlType{}, err
		}
		return BigNumeric(precision, scale), nil
	case eqi(w, "CHAR") || eqi(w, "CHARACTER") || eqi(w, "NCHAR"):
		return p.parseCharLike()
	case eqi(w, "VARCHAR") || eqi(w, "NVARCHAR"):
		length, err := p.precisionUint()
		if err != nil {
			return SqlType{}, err
		}
		return Varchar(length), nil
	case eqi(w, "NATIONAL"):
		if err := p.expectWord("CHAR"); err != nil {
			return SqlType{}, err
		}
		varying := p.matchWord("VARYING")
		length, err := p.precisionUint()
		if err != nil {
			return SqlType{}, err
		}
		if varying {
			return Varchar(length), nil
		}
		return Char(length), nil
	case eqi(w, "STRING"):
		return Varchar(nil), nil
	case eqi(w, "TEXT"):
		return Text(), nil
	case eqi(w, "CLOB"):
		return Clob(), nil
	case eqi(w, "BLOB"):
		return Blob(), nil
	case eqi(w, "BINARY"):
		if p.matchWord("LARGE") {
			if err := p.expectWord("OBJECT"); err != nil {
				return SqlType{}, err
			}
			return Blob(), nil
		}
		return Binary(), nil
	case eqi(w, "VARBINARY") || eqi(w, "BYTES") || eqi(w, "BYTEA"):
		return Binary(), nil
	case eqi(w, "DATE"):
		return Date(), nil
	case eqi(w, "TIMETZ"):
		return Time(nil, With), nil
	case eqi(w, "TIME"):
		precision, err := p.precisionU8()
		if err != nil {
			return SqlType{}, err
		}
		tz, err := p.timeZoneSpec()
		if err != nil {
			return SqlType{}, err
		}
		if tz == Unspecified {
			tz = Without
		}
		return Time(precision, tz), nil
	case eqi(w, "TIMESTAMPTZ"):
		return Timestamp(nil, With), nil
	case eqi(w, "TIMESTAMP_NTZ"):
		precision, err := p.precisionU8()
		if err != nil {
			return SqlType{}, err
		}
		return Timestamp(precision, Without), nil
	case eqi(w, "TIMESTAMP_TZ"):
		precision, err := p.precisionU8()
		if err != nil {
			return SqlType{}, err
		}
		return Timestamp(precision, With), nil
	case eqi(w, "TIMESTAMP"):
		precision, err := p.precisionU8()
		if err != nil {
			return SqlType{}, err
		}
		tz, err := p.timeZoneSpec()
		if err != nil {
			return SqlType{}, err
		}
		return Timestamp(precision, tz), nil
	case eqi(w, "DATETIME"):
		precision, err := p.precisionU8()
		if err != nil {
			return SqlType{}, err
		}
		if p.dialect.Kind == dialect.KindSnowflake {
			return Timestamp(precision, Without), nil
		}
		return DateTime(), nil
	case eqi(w, "INTERVAL"):
		return p.parseInterval()
	case eqi(w, "JSON"):
		return Json(), nil
	case eqi(w, "JSONB"):
		return Jsonb(), nil
	case eqi(w, "GEOMETRY"):
		return Geometry(), nil
	case eqi(w, "GEOGRAPHY"):
		return Geography(), nil
	case eqi(w, "VARIANT"):
		return Variant(), nil
	case eqi(w, "VOID"):
		return Void(), nil
	case eqi(w, "ARRAY"):
		if p.match_(TokLAngle) {
			inner, err := p.parseUnconstrainedType()
			if err != nil {
				return SqlType{}, err
			}
			if err := p.expect(TokRAngle); err != nil {
				return SqlType{}, err
			}
			return ArrayOf(inner), nil
		}
		return ArrayUnconstrained(), nil
	case eqi(w, "STRUCT"):
		if p.match_(TokLAngle) {
			fields, err := p.structFields(TokRAngle)
			if err != nil {
				return SqlType{}, err
			}
			return StructOf(fields), nil
		}
		return StructUnconstrained(), nil
	case eqi(w, "MAP"):
		if p.match_(TokLAngle) {
			key, err := p.parseUnconstrainedType()
			if err != nil {
				return SqlType{}, err
			}
			if err := p.expect(TokComma); err != nil {
				return SqlType{}, err
			}
			value, err := p.parseUnconstrainedType()
			if err != nil {
				return SqlType{}, err
			}
			if err := p.expect(TokRAngle); err != nil {
				return SqlType{}, err
			}
			return MapOf(key, value), nil
		}
		return MapUnconstrained(), nil
	default:
		return p.parseOther(w)
	}
}

func (p *Parser) parseCharLike() (SqlType, error) {
	if p.matchWord("LARGE") {
		if err := p.expectWord("OBJECT"); err != nil {
			return SqlType{}, err
		}
		return Clob(), nil
	}
	varying := p.matchWord("VARYING")
	length, err := p.precisionUint()
	if err != nil {
		return SqlType{}, err
	}
	if varying {
		return Varchar(length), nil
	}
	return Char(length), nil
}

// parseInterval implements the precision-to-field remapping from
// FromPrecision: a trailing "(p)" on a bare INTERVAL, on
// an INTERVAL SECOND, or on the end field of an INTERVAL ... TO SECOND
// all resolve through the same table, so "INTERVAL(6)",
// "INTERVAL SECOND(6)", and "INTERVAL DAY TO SECOND(6)" each land on
// Microsecond.
func (p *Parser) parseInterval() (SqlType, error) {
	start, end, err := p.intervalQualifier()
	if err != nil {
		return SqlType{}, err
	}

	switch {
	case start == nil:
		precision, err := p.precisionU8()
		if err != nil {
			return SqlType{}, err
		}
		if precision == nil {
			return IntervalUnconstrained(), nil
		}
		return IntervalOf(FromPrecision(*precision), nil), nil

	case end == nil:
		if *start == Second {
			precision, err := p.precisionU8()
			if err != nil {
				return SqlType{}, err
			}
			if precision != nil {
				return IntervalOf(FromPrecision(*precision), nil), nil
			}
		}
		return IntervalOf(*start, nil), nil

	default:
		if *end == Second {
			precision, err := p.precisionU8()
			if err != nil {
				return SqlType{}, err
			}
			if precision != nil {
				unit := FromPrecision(*precision)
				return IntervalOf(*start, &unit), nil
			}
		}
		return IntervalOf(*start, end), nil
	}
}

// parseOther gathers whatever follows an unrecognized leading word,
// stopping before a bare NOT or NULL so a NOT NULL suffix still parses
// correctly, and folds it into a single Other value that preserves the
// original spelling (including any quoted words). A trailing NULLABLE
// does not stop collection and becomes part of the Other text.
func (p *Parser) parseOther(firstWord string) (SqlType, error) {
	var b strings.Builder
	b.WriteString(firstWord)
	for {
		tok, matched := PeekAndThen(p.tkn, func(t Token) (Token, bool) {
			if t.Kind == TokWord && (strings.EqualFold(t.Word, "NOT") || strings.EqualFold(t.Word, "NULL")) {
				return Token{}, false
			}
			return t, true
		})
		if !matched {
			break
		}
		b.WriteString(" ")
		b.WriteString(tok.String())
	}
	return Other(b.String()), nil
}

// ExpectIdentifier parses a single identifier token, applying the same
// quoting rules as a struct field name. It is exposed for callers that
// need to parse a bare identifier outside of a full type expression.
func ExpectIdentifier(d dialect.Dialect, input string) (ident.Ident, error) {
	p := NewParser(d, input)
	tok, err := p.next()
	if err != nil {
		return ident.Ident{}, err
	}
	if tok.Kind != TokWord {
		return ident.Ident{}, newUnexpected(tok)
	}
	return wordToIdent(tok.Word, d)
}
