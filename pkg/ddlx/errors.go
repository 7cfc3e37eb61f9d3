package ddlx

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	res, err := svc.Export(ctx, "SALES")
//	if errors.Is(err, ddlx.ErrDatabaseNotFound) {
//	    // Offer the list of known databases instead
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSourceNotFound indicates the DDL source (file or directory) does not exist.
	ErrSourceNotFound = errors.New("ddl source not found")

	// ErrDatabaseNotFound indicates the source has no DDL for the requested database.
	ErrDatabaseNotFound = errors.New("database not found")

	// ErrNoObjects indicates the DDL text produced no recognizable CREATE statements.
	ErrNoObjects = errors.New("no objects extracted")

	// ErrConnectionFailed indicates database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrApprovalDenied indicates the user declined to overwrite an output file.
	ErrApprovalDenied = errors.New("overwrite not approved")
)

// usageErrorPatterns are substrings of cobra/pflag errors caused by
// command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrSourceNotFound), errors.Is(err, ErrDatabaseNotFound):
		return ExitSourceMissing
	case errors.Is(err, ErrNoObjects):
		return ExitNothingExtracted
	}

	errStr := err.Error()
	for _, p := range usageErrorPatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
