package extractor

import (
	"errors"
	"fmt"
)

// ErrNotCreateStatement reports that a statement has no recognizable CREATE
// header. It is not fatal: callers skip the statement.
var ErrNotCreateStatement = errors.New("not a recognized CREATE statement")

// StatementError describes a skipped statement with its location and a hint.
// It matches ErrNotCreateStatement under errors.Is.
type StatementError struct {
	Index   int    // Position of the statement in the input
	Line    int    // Line number (0 if unknown)
	Preview string // Leading text of the statement
	Message string // Primary error message
	Hint    string // Actionable suggestion, if any
}

// Error implements the error interface.
func (e *StatementError) Error() string {
	location := fmt.Sprintf("statement %d", e.Index+1)
	if e.Line > 0 {
		location = fmt.Sprintf("statement %d (line %d)", e.Index+1, e.Line)
	}

	msg := fmt.Sprintf("%s: %s", location, e.Message)
	if e.Preview != "" {
		msg += fmt.Sprintf(": %q", e.Preview)
	}
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap returns ErrNotCreateStatement.
func (e *StatementError) Unwrap() error {
	return ErrNotCreateStatement
}
