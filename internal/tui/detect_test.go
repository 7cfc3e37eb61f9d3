package tui

import "testing"

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"explicit opt-out", map[string]string{"DDLX_NON_INTERACTIVE": "1"}},
		{"ci", map[string]string{"CI": "true"}},
		{"no color", map[string]string{"NO_COLOR": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"DDLX_NON_INTERACTIVE", "CI", "NO_COLOR"} {
				t.Setenv(k, tt.env[k])
			}
			if got := DetectMode(); got != ModeNonInteractive {
				t.Errorf("DetectMode() = %d, want ModeNonInteractive", got)
			}
			if IsInteractive() {
				t.Error("IsInteractive() = true, want false")
			}
		})
	}
}
