package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ddlx/internal/logging"
)

func TestInteractiveApprover(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"long yes", "YES\n", true},
		{"no", "n\n", false},
		{"empty line", "\n", false},
		{"eof", "", false},
		{"answer without newline", "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			a := NewInteractiveApprover(strings.NewReader(tt.input), &out)

			got, err := a.RequestApproval(context.Background(), "SALES.sql")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "SALES.sql already exists")
		})
	}
}

func TestInteractiveApprover_ContextCanceled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewInteractiveApprover(r, io.Discard).RequestApproval(ctx, "x.sql")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestForcedApprover(t *testing.T) {
	rec := logging.NewRecorder()

	ok, err := NewForcedApprover(rec).RequestApproval(context.Background(), "x.sql")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"Overwriting x.sql"}, rec.Messages("info"))
}
