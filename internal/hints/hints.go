// Package hints provides actionable error hints for common failure scenarios.
// Hints are single-line plain text, meant to be logged next to the error.
package hints

import (
	"strings"

	"github.com/alnah/go-book2docx/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForConverterNotFound returns hints for a missing pandoc executable.
func ForConverterNotFound() string {
	hints := []string{"install pandoc from https://pandoc.org/installing.html", "or set MDBOOK_DOCX_PANDOC to its path"}
	if IsInContainer() {
		hints = append(hints, "in Docker, add pandoc to the image")
	}
	return formatHints(hints)
}

// ForNoMatchingChapters explains what include patterns are matched against.
func ForNoMatchingChapters() string {
	return format(`include patterns match chapter paths relative to src/, e.g. "intro.md" or "part1/*"`)
}

// ForBadEncoding returns a hint for undecodable templates or chapters.
func ForBadEncoding() string {
	return format("save chapter files as UTF-8 and check that template is a .docx file")
}

// ForMissingInput returns a hint for prepend/append files that do not exist.
func ForMissingInput() string {
	return format("template, prepend and append paths are relative to the book root (the directory holding book.toml)")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating a config in ~/.config/mdbook-docx/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/docx.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/mdbook-docx") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForDuplicateFilename returns a hint for documents sharing an output file.
func ForDuplicateFilename() string {
	return format("give every entry in output.docx.documents its own filename")
}

// format trims a hint to one line.
func format(hint string) string {
	return strings.Join(strings.Fields(hint), " ")
}

// formatHints joins multiple hints into one line.
func formatHints(hints []string) string {
	return format(strings.Join(hints, "; "))
}
