package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"Error": slog.LevelError,
		"info":  slog.LevelInfo,
		"bogus": slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q): Expected %v, got %v", in, want, got)
		}
	}
}

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	lg := New(Config{Level: "info", Format: "console", Output: &buf})

	lg.Debug("hidden")
	lg.With("scene", "mandel").Info("navigate", "route", "/mbrot", "title", "Blue Condition")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Expected debug line filtered at info level")
	}
	for _, want := range []string{"INFO", "navigate", "scene=mandel", "route=/mbrot", `title="Blue Condition"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected one line, got %q", out)
	}
}

func TestConsoleHandlerGroup(t *testing.T) {
	var buf bytes.Buffer
	lg := New(Config{Level: "debug", Output: &buf})
	lg.WithGroup("sim").Debug("step", "n", 3)

	if !strings.Contains(buf.String(), "sim.n=3") {
		t.Errorf("Expected grouped key, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	lg := New(Config{Level: "warn", Format: "json", Output: &buf})
	lg.Info("skipped")
	lg.Warn("audio unavailable", "err", "no device")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("Expected one JSON record, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "audio unavailable" || rec["err"] != "no device" {
		t.Errorf("Unexpected record %v", rec)
	}
}

func TestLConcurrentWithInit(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if L() == nil {
				t.Error("Expected a logger from L")
			}
		}()
		go func() {
			defer wg.Done()
			Init(Config{Level: "debug", Format: "text", Output: io.Discard})
		}()
	}
	wg.Wait()
	if L() != slog.Default() {
		t.Error("Expected L to return the installed default logger")
	}
}
