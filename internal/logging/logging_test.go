package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestInitWritesToStoreDir(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv(EnvLevel, "")

	dir := t.TempDir()
	closer, err := Init(dir)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	slog.Warn("store call failed", "op", "lists")
	slog.Debug("hidden at info level")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "logs", "todo.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "store call failed") || !strings.Contains(out, "op=lists") {
		t.Fatalf("expected warn record, got %q", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Fatalf("debug record should be filtered, got %q", out)
	}
}
