// Package ident models SQL identifiers: either written bare (Plain) or
// enclosed in a quote character that must be escaped and re-rendered
// per dialect (Quoted), dispatching on dialect to decide how a name is
// quoted when rendered.
package ident

import (
	"strings"

	"github.com/sqltypedef/sqltypedef/dialect"
)

// Quote is one of the quote characters SQL dialects use to delimit a
// case-sensitive or reserved-word identifier.
type Quote byte

const (
	DoubleQuote Quote = '"'
	Backtick    Quote = '`'
	SingleQuote Quote = '\''
)

// Ident is an identifier as it was spelled in source text: either a bare
// word (Plain) or a word that arrived inside a pair of quote characters
// (Quoted), which records which quote character was used.
type Ident struct {
	quoted bool
	quote  Quote
	text   string
}

// Plain builds an identifier that was not quoted in source text.
func Plain(text string) Ident {
	return Ident{text: text}
}

// Quoted builds an identifier that arrived enclosed in quote in source
// text. text is already unescaped (no doubled quote characters).
func Quoted(quote Quote, text string) Ident {
	return Ident{quoted: true, quote: quote, text: text}
}

// IsQuoted reports whether the identifier was parsed from quoted source.
func (i Ident) IsQuoted() bool { return i.quoted }

// Text returns the identifier's unescaped textual content.
func (i Ident) Text() string { return i.text }

// CanonicalQuote returns the quote character a dialect prefers for
// identifiers that need quoting: double quotes for the ANSI-style
// backends, backticks for the backends that grew up quoting with them.
func CanonicalQuote(d dialect.Dialect) Quote {
	switch d.Kind {
	case dialect.KindBigQuery, dialect.KindDatabricks, dialect.KindDatabricksODBC:
		return Backtick
	default:
		return DoubleQuote
	}
}

// Display renders the identifier as it should appear in d's SQL text. A
// Plain identifier is written verbatim; this module does not attempt
// reserved-word detection, so it never forces quoting onto a name that
// arrived unquoted. A Quoted identifier is re-rendered using d's
// canonical quote character (not necessarily the one it was originally
// parsed with), doubling any embedded occurrence of that character -
// this is what lets a struct field name quoted under one dialect
// re-render correctly when converted to another.
func (i Ident) Display(d dialect.Dialect) string {
	if !i.quoted {
		return i.text
	}
	q := CanonicalQuote(d)
	qs := string(q)
	escaped := strings.ReplaceAll(i.text, qs, qs+qs)
	return qs + escaped + qs
}
