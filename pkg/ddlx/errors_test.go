package ddlx_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/ddlx/pkg/ddlx"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ddlx.ExitSuccess},
		{"unknown flag", errors.New("unknown flag --foo"), ddlx.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), ddlx.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), ddlx.ExitUsageError},
		{"required flag", errors.New("required flag \"database\" not set"), ddlx.ExitUsageError},
		{"missing argument", errors.New("missing required argument: <file>"), ddlx.ExitUsageError},
		{"invalid config", fmt.Errorf("bad: %w", ddlx.ErrInvalidConfig), ddlx.ExitConfigError},
		{"connection failed", ddlx.ErrConnectionFailed, ddlx.ExitConnectionError},
		{"approval denied", fmt.Errorf("out.sql: %w", ddlx.ErrApprovalDenied), ddlx.ExitApprovalDenied},
		{"connection refused text", errors.New("dial tcp: connection refused"), ddlx.ExitConnectionError},
		{"source not found", fmt.Errorf("x.sql: %w", ddlx.ErrSourceNotFound), ddlx.ExitSourceMissing},
		{"database not found", fmt.Errorf("SALES: %w", ddlx.ErrDatabaseNotFound), ddlx.ExitSourceMissing},
		{"no objects", ddlx.ErrNoObjects, ddlx.ExitNothingExtracted},
		{"general error", errors.New("something went wrong"), ddlx.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ddlx.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
