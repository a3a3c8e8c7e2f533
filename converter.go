package book2docx

import (
	"context"
	"io/fs"

	"github.com/alnah/go-book2docx/internal/fileutil"
)

// Converter turns markdown or existing documents into a formatted document.
type Converter interface {
	Convert(ctx context.Context, req Request) error
}

// Request is one converter invocation.
// Content is piped to the converter as markdown; when Inputs is set the
// files are concatenated in order instead. The output is always docx.
type Request struct {
	Content string
	Inputs  []string
	Options ConversionOptions
	Output  string
}

// piped reports whether the request streams Content rather than reading files.
func (r Request) piped() bool {
	return len(r.Inputs) == 0
}

// validate reports missing inputs or output before any process is started.
func (r Request) validate() error {
	if r.Output == "" {
		return &ConverterError{Cause: ErrNoOutputSpecified, ExitCode: -1}
	}
	if r.Content == "" && len(r.Inputs) == 0 {
		return &ConverterError{Cause: ErrNoInputSpecified, ExitCode: -1}
	}
	for _, in := range r.requiredFiles() {
		if !fileutil.FileExists(in) {
			return &ConverterError{
				Cause:    ErrMissingInputFile,
				ExitCode: -1,
				Err:      &fs.PathError{Op: "stat", Path: in, Err: fs.ErrNotExist},
			}
		}
	}
	return nil
}

// requiredFiles lists every file the converter reads besides stdin: the
// reference doc, include-before/after bodies, then the inputs.
func (r Request) requiredFiles() []string {
	var files []string
	if r.Options.ReferenceDoc != "" {
		files = append(files, r.Options.ReferenceDoc)
	}
	files = append(files, r.Options.IncludeBefore...)
	files = append(files, r.Options.IncludeAfter...)
	return append(files, r.Inputs...)
}
