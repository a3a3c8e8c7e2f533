// Package docxcheck verifies that files handed to pandoc as reference
// templates or merge inputs are readable Word documents.
package docxcheck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
)

// Sentinel errors for document checks.
var (
	ErrNotFound   = errors.New("file not found")
	ErrNotDocx    = errors.New("not a .docx file")
	ErrUnreadable = errors.New("file is not a readable Word document")
)

// Summary describes a parsed document.
type Summary struct {
	Path       string
	Paragraphs int
	Tables     int
}

// Inspect parses a .docx file and counts its top-level body items.
func Inspect(path string) (*Summary, error) {
	if !strings.EqualFold(filepath.Ext(path), ".docx") {
		return nil, fmt.Errorf("%w: %s", ErrNotDocx, path)
	}

	f, err := os.Open(path) // #nosec G304 -- path comes from book configuration
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	s := &Summary{Path: path}
	for _, item := range doc.Document.Body.Items {
		switch item.(type) {
		case *docx.Paragraph:
			s.Paragraphs++
		case *docx.Table:
			s.Tables++
		}
	}
	return s, nil
}

// IsDocx reports whether path names a .docx file by extension. Merge inputs
// of other formats (markdown, html) are passed to pandoc unchecked.
func IsDocx(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".docx")
}
