package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(&buf, "regen", log.InfoLevel, false, false, log.TextFormatter)

	l.Debug("hidden")
	l.Info("written", "words", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line logged at info level: %q", out)
	}
	if !strings.Contains(out, "regen") || !strings.Contains(out, "words=3") {
		t.Errorf("unexpected log output: %q", out)
	}
}
