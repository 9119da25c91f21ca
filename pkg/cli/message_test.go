package cli

import (
	"bytes"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, f func()) string {
	t.Helper()

	var buf bytes.Buffer
	previous := Output
	Output = &buf
	t.Cleanup(func() { Output = previous })

	f()

	return buf.String()
}

func TestMessageFunctions(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string)
	}{
		{"Errorln", Errorln},
		{"Successln", Successln},
		{"Warningln", Warningln},
		{"Blueln", Blueln},
		{"Cyanln", Cyanln},
		{"Grayln", Grayln},
	}

	for _, tt := range tests {
		out := captureOutput(t, func() { tt.fn("hello") })

		if out != "hello\n" {
			t.Fatalf("%s: unexpected output %q", tt.name, out)
		}

		if strings.Contains(out, "\x1b[") {
			t.Fatalf("%s: colours should be skipped for non terminals", tt.name)
		}
	}
}
