package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_DebugFollowsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(LevelInfo, &buf).Debug("hidden", "k", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be filtered at info level, got %q", buf.String())
	}

	New(LevelDebug, &buf).Named("matchsim").Debug("shown", "fixture_id", "f1")
	out := buf.String()
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"fixture_id":"f1"`) || !strings.Contains(out, `"logger":"matchsim"`) {
		t.Fatalf("unexpected debug line: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): got=%v want=%v", in, got, want)
		}
	}
}

func TestLogger_NilIsSafe(t *testing.T) {
	t.Parallel()

	var l *Logger
	l.Info("dropped")
	if l.Zap() == nil {
		t.Fatalf("expected a nop zap logger")
	}
	if err := l.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
