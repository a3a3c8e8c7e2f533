package hints

// Notes:
// - ForConverterNotFound tests cannot use t.Parallel() because they modify the
//   package-level IsInContainer variable.
// These are acceptable gaps: we test observable behavior through a swapped detector.

import (
	"strings"
	"testing"
)

func TestForConverterNotFound_Host(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	hint := ForConverterNotFound()
	if hint == "" || strings.Contains(hint, "\n") {
		t.Errorf("hint = %q, want one non-empty line", hint)
	}
	if !strings.Contains(hint, "MDBOOK_DOCX_PANDOC") {
		t.Error("expected MDBOOK_DOCX_PANDOC suggestion")
	}
	if strings.Contains(hint, "Docker") {
		t.Error("unexpected Docker suggestion outside a container")
	}
}

func TestForConverterNotFound_Container(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	if hint := ForConverterNotFound(); !strings.Contains(hint, "Docker") {
		t.Errorf("hint = %q, want Docker suggestion", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		searched []string
		want     string
		notWant  string
	}{
		{
			name:     "suggests user config path",
			searched: []string{"docx.yaml", "/home/u/.config/mdbook-docx/docx.yaml"},
			want:     "or create /home/u/.config/mdbook-docx/docx.yaml",
		},
		{
			name:     "no user path searched",
			searched: []string{"docx.yaml"},
			want:     "--config",
			notWant:  "or create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hint := ForConfigNotFound(tt.searched)
			if !strings.Contains(hint, tt.want) {
				t.Errorf("hint = %q, want %q", hint, tt.want)
			}
			if tt.notWant != "" && strings.Contains(hint, tt.notWant) {
				t.Errorf("hint = %q, must not contain %q", hint, tt.notWant)
			}
		})
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"no matching chapters": ForNoMatchingChapters(),
		"bad encoding":         ForBadEncoding(),
		"missing input":        ForMissingInput(),
		"duplicate filename":   ForDuplicateFilename(),
	} {
		if hint == "" || strings.Contains(hint, "\n") {
			t.Errorf("%s: hint = %q, want one non-empty line", name, hint)
		}
	}
}

func TestFormatHints_Empty(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := format("use\n  --config   x"); got != "use --config x" {
		t.Errorf("format() = %q, want whitespace collapsed", got)
	}
}
