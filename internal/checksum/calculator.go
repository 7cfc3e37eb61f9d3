package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// Calculator computes DDL fingerprints.
type Calculator interface {
	// Raw fingerprints the exact statement text.
	Raw(ddl string) string

	// Normalized fingerprints the statement after normalization.
	Normalized(ddl string) string
}

// SHA256 implements Calculator using SHA-256. It is a zero-size type.
type SHA256 struct{}

// New creates a SHA-256 calculator.
func New() SHA256 {
	return SHA256{}
}

// Raw computes SHA-256 of the statement text.
func (c SHA256) Raw(ddl string) string {
	hash := sha256.Sum256([]byte(ddl))
	return hex.EncodeToString(hash[:])
}

// Normalized computes SHA-256 of the normalized statement.
func (c SHA256) Normalized(ddl string) string {
	hash := sha256.Sum256([]byte(Normalize(ddl)))
	return hex.EncodeToString(hash[:])
}

var (
	orReplaceRegex   = regexp.MustCompile(`\ACREATE OR REPLACE `)
	ifNotExistsRegex = regexp.MustCompile(`\A(CREATE (?:[A-Z]+ )+?)IF NOT EXISTS `)
)

// Normalize returns the canonical text that Normalized hashes.
func Normalize(ddl string) string {
	s := orReplaceRegex.ReplaceAllString(collapse(ddl), "CREATE ")
	return ifNotExistsRegex.ReplaceAllString(s, "$1")
}

type scanState int

const (
	scanNormal scanState = iota
	scanLineComment
	scanBlockComment
	scanSingleQuote
	scanDoubleQuote
	scanDollarQuote
)

// collapse removes comments, collapses whitespace and upper-cases unquoted text.
func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	state := scanNormal
	pendingSpace := false
	i := 0

	write := func(ch byte) {
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteByte(ch)
	}

	for i < len(s) {
		ch := s[i]
		var next byte
		if i+1 < len(s) {
			next = s[i+1]
		}

		switch state {
		case scanNormal:
			switch {
			case ch == '-' && next == '-':
				state = scanLineComment
				pendingSpace = true
				i += 2
				continue
			case ch == '/' && next == '*':
				state = scanBlockComment
				pendingSpace = true
				i += 2
				continue
			case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v':
				pendingSpace = true
			case ch == '\'':
				state = scanSingleQuote
				write(ch)
			case ch == '"':
				state = scanDoubleQuote
				write(ch)
			case ch == '$' && next == '$':
				state = scanDollarQuote
				write(ch)
				b.WriteByte(next)
				i += 2
				continue
			case ch >= 'a' && ch <= 'z':
				write(ch - 'a' + 'A')
			default:
				write(ch)
			}

		case scanLineComment:
			if ch == '\n' {
				state = scanNormal
			}

		case scanBlockComment:
			if ch == '*' && next == '/' {
				state = scanNormal
				i += 2
				continue
			}

		case scanSingleQuote, scanDoubleQuote:
			b.WriteByte(ch)
			quote := byte('\'')
			if state == scanDoubleQuote {
				quote = '"'
			}
			if ch == quote {
				if next == quote {
					b.WriteByte(next)
					i += 2
					continue
				}
				state = scanNormal
			}

		case scanDollarQuote:
			b.WriteByte(ch)
			if ch == '$' && next == '$' {
				b.WriteByte(next)
				state = scanNormal
				i += 2
				continue
			}
		}
		i++
	}

	return b.String()
}
