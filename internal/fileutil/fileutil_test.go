package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-book2docx/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "reference.docx")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing file", path: filepath.Join(dir, "missing.docx"), want: false},
		{name: "empty path", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveUnder - Root-relative path resolution
// ---------------------------------------------------------------------------

func TestResolveUnder(t *testing.T) {
	t.Parallel()

	base := filepath.Join(string(filepath.Separator)+"books", "guide")
	abs := filepath.Join(string(filepath.Separator)+"shared", "cover.docx")

	tests := []struct {
		name string
		p    string
		want string
	}{
		{name: "relative file", p: "reference.docx", want: filepath.Join(base, "reference.docx")},
		{name: "nested relative", p: filepath.Join("front", "cover.docx"), want: filepath.Join(base, "front", "cover.docx")},
		{name: "absolute kept", p: abs, want: abs},
		{name: "empty", p: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.ResolveUnder(base, tt.p); got != tt.want {
				t.Errorf("ResolveUnder(%q, %q) = %q, want %q", base, tt.p, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Path vs name detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"docx", false},
		{"my-docs", false},
		{"./docx.yaml", true},
		{"../shared/docx.yaml", true},
		{"/abs/docx.yaml", true},
		{`C:\books\docx.yaml`, true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
