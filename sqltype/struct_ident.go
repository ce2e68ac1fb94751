package sqltype

import (
	"strings"

	"github.com/sqltypedef/sqltypedef/dialect"
	"github.com/sqltypedef/sqltypedef/ident"
)

// renderIdentForStruct renders a struct field name for d. A name that
// was parsed quoted is simply redisplayed (Ident.Display already picks
// the right quote character per dialect). A name that was parsed plain
// is left bare unless it contains a character that would not survive
// unquoted in SQL text (whitespace or punctuation outside underscore),
// in which case it is wrapped in d's canonical quote - this is the one
// place ident.CanonicalQuote is applied to a plain name, one that must
// be re-quoted to remain valid under the target dialect.
func renderIdentForStruct(name ident.Ident, d dialect.Dialect) string {
	if name.IsQuoted() {
		return name.Display(d)
	}
	text := name.Text()
	if identSafe(text) {
		return text
	}
	q := ident.CanonicalQuote(d)
	qs := string(q)
	escaped := strings.ReplaceAll(text, qs, qs+qs)
	return qs + escaped + qs
}

func identSafe(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}
