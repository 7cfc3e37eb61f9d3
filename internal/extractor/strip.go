package extractor

import (
	"regexp"
	"strings"

	"github.com/vvka-141/ddlx/internal/ident"
)

const refID = `"(?:[^"]|"")*"|[a-zA-Z_][a-zA-Z0-9_$]*`

var threePartRefRegex = regexp.MustCompile(`(` + refID + `)\s*\.\s*(` + refID + `)\s*\.\s*(` + refID + `)`)

// StripSelfDatabaseReferences rewrites db.schema.object references whose
// database part equals dbName (case-insensitive, after unquoting) to
// schema.object. Text between single quotes is not rewritten.
// An empty dbName returns ddl unchanged.
func StripSelfDatabaseReferences(ddl, dbName string) string {
	if dbName == "" {
		return ddl
	}
	target := ident.Unquote(dbName)

	segments := strings.Split(ddl, "'")
	for i := 0; i < len(segments); i += 2 {
		segments[i] = stripSegment(segments[i], target)
	}
	return strings.Join(segments, "'")
}

func stripSegment(s, dbName string) string {
	matches := threePartRefRegex.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		db := s[m[2]:m[3]]
		if !strings.EqualFold(ident.Unquote(db), dbName) {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(s[m[4]:m[5]])
		b.WriteByte('.')
		b.WriteString(s[m[6]:m[7]])
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
