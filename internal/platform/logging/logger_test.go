package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo, "fantasy-draft")

	logger.Info("gameweek scored", "gameweek", 3, "error", errors.New("boom"))
	logger.Debug("hidden below level")

	out := buf.String()
	for _, want := range []string{`"msg":"gameweek scored"`, `"gameweek":3`, `"error":"boom"`, `"service":"fantasy-draft"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
	if strings.Contains(out, "hidden below level") {
		t.Fatalf("debug line should be filtered: %s", out)
	}
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.Zap() == nil {
		t.Fatalf("expected nop zap logger")
	}
}
