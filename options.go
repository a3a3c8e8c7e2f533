package book2docx

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-book2docx/internal/fileutil"
)

// MarkdownExtensions are enabled on top of the markdown_github reader.
var MarkdownExtensions = []string{
	"pipe_tables",
	"raw_html",
	"autolink_bare_uris",
	"auto_identifiers",
	"hard_line_breaks",
	"blank_before_header",
	"table_captions",
	"pandoc_title_block",
	"yaml_metadata_block",
	"implicit_header_references",
}

// Reader and writer formats.
const (
	InputFormat  = "markdown_github"
	OutputFormat = "docx"
)

// ConversionOptions is the converter option set for one invocation.
// Build it with BuildOptions; it is not modified afterwards.
type ConversionOptions struct {
	DataDir           string
	ResourcePath      []string
	ATXHeadings       bool
	ReferenceLinks    bool
	ShiftHeadingLevel *int
	ReferenceDoc      string
	IncludeBefore     []string
	IncludeAfter      []string
}

// BuildOptions maps a document to converter options relative to root.
// It has no side effects: equal inputs give equal Args.
func BuildOptions(root string, doc DocumentSpec) ConversionOptions {
	opts := ConversionOptions{
		DataDir:        root,
		ResourcePath:   []string{filepath.Join(root, "src")},
		ATXHeadings:    true,
		ReferenceLinks: true,
	}

	if doc.OffsetHeadingsBy != nil {
		n := *doc.OffsetHeadingsBy
		opts.ShiftHeadingLevel = &n
	}
	if doc.Template != "" {
		opts.ReferenceDoc = fileutil.ResolveUnder(root, doc.Template)
	}
	for _, p := range doc.Prepend {
		opts.IncludeBefore = append(opts.IncludeBefore, fileutil.ResolveUnder(root, p))
	}
	for _, p := range doc.Append {
		opts.IncludeAfter = append(opts.IncludeAfter, fileutil.ResolveUnder(root, p))
	}
	return opts
}

// Args renders the options as pandoc command-line arguments.
func (o ConversionOptions) Args() []string {
	var args []string
	if o.DataDir != "" {
		args = append(args, "--data-dir="+o.DataDir)
	}
	if len(o.ResourcePath) > 0 {
		args = append(args, "--resource-path="+strings.Join(o.ResourcePath, string(os.PathListSeparator)))
	}
	if o.ATXHeadings {
		args = append(args, "--markdown-headings=atx")
	}
	if o.ReferenceLinks {
		args = append(args, "--reference-links")
	}
	if o.ShiftHeadingLevel != nil {
		args = append(args, "--shift-heading-level-by="+strconv.Itoa(*o.ShiftHeadingLevel))
	}
	if o.ReferenceDoc != "" {
		args = append(args, "--reference-doc="+o.ReferenceDoc)
	}
	for _, p := range o.IncludeBefore {
		args = append(args, "--include-before-body="+p)
	}
	for _, p := range o.IncludeAfter {
		args = append(args, "--include-after-body="+p)
	}
	return args
}

// inputFormatArg returns the reader with every extension switched on.
func inputFormatArg() string {
	return InputFormat + "+" + strings.Join(MarkdownExtensions, "+")
}
