package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })
	return &buf
}

func TestInfofNoDoubleFormattingWithPercent(t *testing.T) {
	buf := capture(t)
	SetLogLevel("info")

	// Call through a function value: messages arrive here as plain strings,
	// not as compile-time format literals.
	infof := Infof
	msg := "Saved bench/graphs/scale_comparison.png (100% of panels rendered)"
	infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(100% of panels rendered)") {
		t.Fatalf("log output missing percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	SetLogLevel("warn")
	defer SetLogLevel("info")

	Infof("hidden")
	Warnf("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked at warn level: %s", out)
	}
	if !strings.Contains(out, "[WARN] shown") {
		t.Fatalf("warn line missing: %s", out)
	}
}

func TestSetLogLevelIgnoresUnknown(t *testing.T) {
	buf := capture(t)
	SetLogLevel("info")
	SetLogLevel("chatty") // no-op

	Infof("still here")
	if !strings.Contains(buf.String(), "still here") {
		t.Fatal("unknown level name changed filtering")
	}
}
