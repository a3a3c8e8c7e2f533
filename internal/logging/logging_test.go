package logging

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseLevel - Level names
// ---------------------------------------------------------------------------

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"Warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Parallel()

	getenv := func(key string) string {
		if key == EnvLevel {
			return "debug"
		}
		return ""
	}
	got, err := LevelFromEnv(getenv)
	if err != nil || got != slog.LevelDebug {
		t.Errorf("LevelFromEnv() = %v, %v; want DEBUG, nil", got, err)
	}
}

// ---------------------------------------------------------------------------
// TestHandler - Line format
// ---------------------------------------------------------------------------

var linePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[[A-Z]+\] \([^)]+\): `)

func TestHandler_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, &Options{Level: slog.LevelDebug}))

	log.Info("rendering", "document", "guide.docx", "count", 3)
	log.With("component", "pandoc").Debug("running pandoc", "cmdline", "pandoc --to=docx")
	log.WithGroup("doc").Warn("slow", "seconds", 2)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	for _, l := range lines {
		if !linePattern.MatchString(l) {
			t.Errorf("line %q does not match the console format", l)
		}
	}

	if !strings.Contains(lines[0], "[INFO] (mdbook-docx): rendering document=guide.docx count=3") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], `[DEBUG] (pandoc): running pandoc cmdline="pandoc --to=docx"`) {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "[WARN] (mdbook-docx): slow doc.seconds=2") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestHandler_MultiLineMessageStaysOnOneLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, &Options{Level: slog.LevelInfo}))

	log.Error("pandoc failed: line one\nline two\r\nline three", "hint", "install pandoc")

	out := strings.TrimSuffix(buf.String(), "\n")
	if strings.ContainsAny(out, "\r\n") {
		t.Fatalf("record spans several lines: %q", out)
	}
	if !strings.Contains(out, `pandoc failed: line one\nline two\nline three hint="install pandoc"`) {
		t.Errorf("line = %q", out)
	}
}

func TestHandler_Enabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewHandler(&buf, &Options{Level: slog.LevelWarn})
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info enabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error disabled at warn level")
	}

	slog.New(h).Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestHandler_Color(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slog.New(NewHandler(&buf, &Options{Color: true})).Error("boom")
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI escape in %q", buf.String())
	}

	buf.Reset()
	slog.New(NewHandler(&buf, nil)).Error("boom")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("unexpected ANSI escape in %q", buf.String())
	}
}

func TestNew_NonTerminalHasNoColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, slog.LevelInfo).Error("boom")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("unexpected ANSI escape in %q", buf.String())
	}
}
