package sqltype

import (
	"strings"

	"github.com/sqltypedef/sqltypedef/dialect"
	"github.com/sqltypedef/sqltypedef/ident"
)

// wordToIdent turns a scanned Word token into an Ident. A word token
// that begins and ends with the same quote character is a quoted
// identifier; its interior is unescaped (doubled quote characters
// collapse to one) according to dialect-specific rules. Anything else
// is a plain identifier.
func wordToIdent(word string, d dialect.Dialect) (ident.Ident, error) {
	if word == "" {
		return ident.Ident{}, newUnexpectedEndOfInput()
	}
	first := rune(word[0])
	if first != '"' && first != '`' && first != '\'' {
		return ident.Plain(word), nil
	}
	if len(word) < 2 || rune(word[len(word)-1]) != first {
		return ident.Ident{}, newUnclosedQuote(first)
	}
	inner := word[1 : len(word)-1]
	return ident.Quoted(ident.Quote(first), unescapeQuotedIdent(inner, byte(first), d)), nil
}

// unescapeQuotedIdent collapses a doubled quote character into one,
// the escape convention both double-quoted Postgres-family identifiers
// and single-quoted identifiers use.
func unescapeQuotedIdent(inner string, quote byte, d dialect.Dialect) string {
	switch {
	case quote == '"' && d.IsPostgresFamily():
		return strings.ReplaceAll(inner, `""`, `"`)
	case quote == '\'':
		return strings.ReplaceAll(inner, "''", "'")
	default:
		return inner
	}
}
