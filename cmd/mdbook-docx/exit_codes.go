package main

import (
	"errors"
	"os"

	book2docx "github.com/alnah/go-book2docx"
	"github.com/alnah/go-book2docx/internal/config"
	"github.com/alnah/go-book2docx/internal/mdbook"
)

// Exit codes for mdbook-docx.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // All documents written
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, patterns or selection
	ExitIO        = 3 // File not found, permission denied
	ExitConverter = 4 // pandoc missing or failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// A missing pandoc may surface as fs.ErrNotExist.
	if errors.Is(err, book2docx.ErrConverterNotFound) {
		return ExitConverter
	}

	// I/O errors (exit 3), ahead of other converter errors: a missing merge
	// input is also a converter error.
	if errors.Is(err, book2docx.ErrMissingInputFile) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Converter errors (exit 4)
	if errors.Is(err, book2docx.ErrConverterExecution) {
		return ExitConverter
	}

	// Usage/config/selection errors (exit 2)
	if errors.Is(err, book2docx.ErrPatternCompile) ||
		errors.Is(err, book2docx.ErrNoMatchingChapters) ||
		errors.Is(err, book2docx.ErrEmptyFilteredContent) ||
		errors.Is(err, book2docx.ErrConfigDeserialization) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrDuplicateFilename) ||
		errors.Is(err, config.ErrBookConfigNotFound) ||
		errors.Is(err, mdbook.ErrEmptyContext) ||
		errors.Is(err, mdbook.ErrInvalidContext) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}
