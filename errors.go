package book2docx

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pipeline stages.
var (
	ErrPatternCompile        = errors.New("invalid include pattern")
	ErrNoMatchingChapters    = errors.New("no markdown files match the specified include filters")
	ErrEmptyFilteredContent  = errors.New("the provided include filters do not match any content")
	ErrConverterExecution    = errors.New("document conversion failed")
	ErrConfigDeserialization = errors.New("failed to deserialize output.docx configuration")
)

// Converter failure causes. A *ConverterError always unwraps to
// ErrConverterExecution and to exactly one of these.
var (
	ErrConverterNotFound = errors.New("pandoc executable not found")
	ErrNoInputSpecified  = errors.New("no input specified")
	ErrNoOutputSpecified = errors.New("no output specified")
	ErrMissingInputFile  = errors.New("input file does not exist")
	ErrConverterIO       = errors.New("I/O failure while running pandoc")
	ErrBadEncoding       = errors.New("pandoc produced invalid UTF-8")
	ErrConverterFailed   = errors.New("pandoc exited with an error")
)

// ConverterError reports a failed converter invocation.
type ConverterError struct {
	Cause    error  // one of the converter failure causes
	ExitCode int    // -1 when the process never ran or was killed
	Stderr   string // pandoc's own diagnostic, trimmed
	Err      error  // underlying error, may be nil
}

func (e *ConverterError) Error() string {
	var b strings.Builder
	b.WriteString(ErrConverterExecution.Error())
	b.WriteString(": ")
	b.WriteString(e.Cause.Error())
	if e.Stderr != "" {
		b.WriteString(": ")
		b.WriteString(e.Stderr)
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes the execution sentinel, the cause and the underlying error
// so errors.Is matches any of them.
func (e *ConverterError) Unwrap() []error {
	errs := []error{ErrConverterExecution, e.Cause}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// DocumentError ties a failure to the document that produced it.
type DocumentError struct {
	Index    int
	Filename string
	Err      error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %d (%s): %v", e.Index+1, e.Filename, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
