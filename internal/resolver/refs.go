package resolver

import (
	"unicode"
	"unicode/utf8"
)

// reference is a dotted identifier found in DDL text. parts holds two or
// three identifiers as written, quotes included.
type reference struct {
	parts []string
}

// scanReferences finds SCHEMA.OBJECT and DB.SCHEMA.OBJECT references in s.
//
// An identifier is a bare name ([A-Za-z_][A-Za-z0-9_$]*) or a non-empty
// double-quoted run. Whitespace may surround the dots. A reference must not
// start right after a word character nor end right before one. When the
// three-part form fails that check the two-part prefix is tried, and bare
// names may be shortened to end before a '$', as a backtracking regex would.
// Matches do not overlap.
func scanReferences(s string) []reference {
	var refs []reference
	i := 0
	for i < len(s) {
		if !wordBefore(s, i) {
			if ref, end, ok := matchReference(s, i); ok {
				refs = append(refs, ref)
				i = end
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return refs
}

func matchReference(s string, i int) (reference, int, bool) {
	for _, e1 := range identEnds(s, i) {
		j := skipSpace(s, e1)
		if j >= len(s) || s[j] != '.' {
			continue
		}
		k := skipSpace(s, j+1)
		for _, e2 := range identEnds(s, k) {
			if j2 := skipSpace(s, e2); j2 < len(s) && s[j2] == '.' {
				k2 := skipSpace(s, j2+1)
				for _, e3 := range identEnds(s, k2) {
					if !wordAt(s, e3) {
						return reference{parts: []string{s[i:e1], s[k:e2], s[k2:e3]}}, e3, true
					}
				}
			}
			if !wordAt(s, e2) {
				return reference{parts: []string{s[i:e1], s[k:e2]}}, e2, true
			}
		}
	}
	return reference{}, 0, false
}

// identEnds returns the possible end offsets of an identifier starting at i,
// longest first.
func identEnds(s string, i int) []int {
	if i >= len(s) {
		return nil
	}
	if s[i] == '"' {
		for j := i + 1; j < len(s); j++ {
			if s[j] == '"' {
				if j == i+1 {
					return nil
				}
				return []int{j + 1}
			}
		}
		return nil
	}
	if !isIdentStart(s[i]) {
		return nil
	}
	j := i + 1
	for j < len(s) && isIdentChar(s[j]) {
		j++
	}
	ends := make([]int, 0, j-i)
	for e := j; e > i; e-- {
		ends = append(ends, e)
	}
	return ends
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

// wordBefore reports whether the rune before offset i is a word character.
func wordBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isWord(r)
}

// wordAt reports whether the rune at offset i is a word character.
func wordAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isWord(r)
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '$'
}
