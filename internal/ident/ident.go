package ident

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceObjectIdentity is the UUID namespace for object IDs, derived
// from "ddlx/object-identity/v1" under the standard URL namespace.
var NamespaceObjectIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("ddlx/object-identity/v1"))

// Unquote trims surrounding whitespace and, when the identifier is wrapped in
// double quotes, removes them and collapses doubled quotes.
func Unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
	}
	return s
}

// Normalize returns the comparison form of an identifier: unquoted and upper-case.
func Normalize(s string) string {
	return strings.ToUpper(Unquote(s))
}

// CanonicalFQN builds the canonical fully-qualified name from raw parts.
// Returns "" when the object part is empty.
func CanonicalFQN(database, schema, object string) string {
	db, sch, obj := Normalize(database), Normalize(schema), Normalize(object)
	switch {
	case db != "" && sch != "" && obj != "":
		return db + "." + sch + "." + obj
	case sch != "" && obj != "":
		return sch + "." + obj
	default:
		return obj
	}
}

// SplitQualified splits a dotted name into its parts, ignoring dots inside
// double-quoted identifiers. Parts are returned as written, quotes included.
func SplitQualified(name string) []string {
	var parts []string
	start := 0
	inQuote := false
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '"':
			inQuote = !inQuote
		case '.':
			if !inQuote {
				parts = append(parts, strings.TrimSpace(name[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(name[start:]))
}

// Quote wraps an identifier in double quotes, doubling embedded quotes.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ObjectID returns the deterministic ID of an object with the given canonical name.
func ObjectID(fqn string) uuid.UUID {
	return uuid.NewSHA1(NamespaceObjectIdentity, []byte(fqn))
}
