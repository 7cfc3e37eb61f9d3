package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/ddlx/pkg/ddlx"
)

var (
	_ ddlx.Logger = (*ConsoleLogger)(nil)
	_ ddlx.Logger = (*NullLogger)(nil)
	_ ddlx.Logger = (*Recorder)(nil)
)

func TestConsoleLogger_Prefixes(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		log     func(l *ConsoleLogger)
		want    string
	}{
		{"verbose enabled", true, func(l *ConsoleLogger) { l.Verbose("parsed %d statements", 3) }, "[VERBOSE] parsed 3 statements\n"},
		{"verbose disabled", false, func(l *ConsoleLogger) { l.Verbose("parsed %d statements", 3) }, ""},
		{"info", false, func(l *ConsoleLogger) { l.Info("extracting %s", "SALES") }, "extracting SALES\n"},
		{"error", false, func(l *ConsoleLogger) { l.Error("failed: %v", "boom") }, "[ERROR] failed: boom\n"},
		{"no args keeps percent", false, func(l *ConsoleLogger) { l.Info("100%") }, "100%\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewWriterLogger(&buf, tt.verbose))
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Verbose("worker %d", n)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "[VERBOSE] worker "), "interleaved line %q", line)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Verbose("v %d", 1)
	r.Info("i")
	r.Error("e %s", "x")
	r.Info("j")

	assert.Equal(t, []string{"i", "j"}, r.Messages("info"))
	assert.Equal(t, []string{"e x"}, r.Messages("error"))
	assert.Len(t, r.Entries(), 4)
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	l.Verbose("x")
	l.Info("x")
	l.Error("x")
}
