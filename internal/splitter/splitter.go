package splitter

import (
	"strings"
	"unicode"

	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// lexState is the lexical state of the scanner.
type lexState int

const (
	stateDefault lexState = iota
	stateLineComment
	stateBlockComment
	stateSingleQuote
	stateDoubleQuote
	stateDollarQuote
)

// Option configures a Splitter.
type Option func(*Splitter)

// WithTaggedDollarQuotes enables $tag$...$tag$ bodies in addition to $$...$$.
// A tag opens only when the '$' does not continue an identifier, so names
// like price$usd are left alone.
func WithTaggedDollarQuotes() Option {
	return func(s *Splitter) {
		s.taggedDollar = true
	}
}

// Splitter splits DDL text into statements. The zero value is ready to use
// and recognizes only $$ dollar quotes.
type Splitter struct {
	taggedDollar bool
}

// New creates a Splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Split splits text into trimmed, non-empty statements without their
// terminating semicolons.
func Split(text string) []string {
	stmts := New().Statements(text)
	out := make([]string, len(stmts))
	for i, st := range stmts {
		out[i] = st.Text
	}
	return out
}

// Statements splits text and reports each statement's position.
func (s *Splitter) Statements(text string) []ddlx.RawStatement {
	var stmts []ddlx.RawStatement
	state := stateDefault
	tag := ""
	n := len(text)
	i, start := 0, 0
	line, startLn := 1, 1

	emit := func(end int) {
		raw := text[start:end]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return
		}
		lead := raw[:len(raw)-len(strings.TrimLeftFunc(raw, unicode.IsSpace))]
		stmts = append(stmts, ddlx.RawStatement{
			Text:  trimmed,
			Index: len(stmts),
			Line:  startLn + strings.Count(lead, "\n"),
		})
	}

	for i < n {
		c := text[i]
		var next byte
		if i+1 < n {
			next = text[i+1]
		}

		switch state {
		case stateDefault:
			switch {
			case c == '-' && next == '-':
				state = stateLineComment
				i += 2
				continue
			case c == '/' && next == '*':
				state = stateBlockComment
				i += 2
				continue
			case c == '\'':
				state = stateSingleQuote
			case c == '"':
				state = stateDoubleQuote
			case c == '$':
				if t := s.openDollar(text, i); t != "" {
					state = stateDollarQuote
					tag = t
					i += len(t)
					continue
				}
			case c == ';':
				emit(i)
				i++
				for i < n && isSpace(text[i]) {
					if text[i] == '\n' {
						line++
					}
					i++
				}
				start = i
				startLn = line
				continue
			}

		case stateLineComment:
			if c == '\n' {
				state = stateDefault
			}

		case stateBlockComment:
			if c == '*' && next == '/' {
				state = stateDefault
				i += 2
				continue
			}

		case stateSingleQuote:
			if c == '\'' {
				if next == '\'' {
					i += 2
					continue
				}
				state = stateDefault
			}

		case stateDoubleQuote:
			if c == '"' {
				if next == '"' {
					i += 2
					continue
				}
				state = stateDefault
			}

		case stateDollarQuote:
			if c == '$' && strings.HasPrefix(text[i:], tag) {
				state = stateDefault
				i += len(tag)
				tag = ""
				continue
			}
		}

		if c == '\n' {
			line++
		}
		i++
	}

	emit(n)
	return stmts
}

// openDollar returns the dollar-quote opener starting at text[i], or "".
func (s *Splitter) openDollar(text string, i int) string {
	if strings.HasPrefix(text[i:], "$$") {
		return "$$"
	}
	if !s.taggedDollar {
		return ""
	}
	if i > 0 && isIdentChar(text[i-1]) {
		return ""
	}
	j := i + 1
	if j >= len(text) || !isIdentStart(text[j]) {
		return ""
	}
	for j < len(text) && isIdentChar(text[j]) {
		j++
	}
	if j < len(text) && text[j] == '$' {
		return text[i : j+1]
	}
	return ""
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '$'
}
