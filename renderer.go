package book2docx

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alnah/go-book2docx/internal/fileutil"
)

// Compile-time interface implementation check.
var _ Converter = (*PandocConverter)(nil)

const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// Renderer builds every configured document of a book.
type Renderer struct {
	converter Converter
	logger    *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithConverter replaces the pandoc converter.
func WithConverter(c Converter) Option {
	return func(r *Renderer) {
		r.converter = c
	}
}

// WithLogger sets the logger used for progress and the pandoc command line.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// NewRenderer creates a Renderer backed by pandoc from PATH unless
// WithConverter says otherwise.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	if r.converter == nil {
		r.converter = NewPandocConverter("", r.logger)
	}
	return r
}

// RenderAll builds the documents in list order and stops at the first
// failure; later documents are not attempted.
func (r *Renderer) RenderAll(ctx context.Context, rc RenderContext, list DocumentList) error {
	if len(list.Documents) == 0 {
		r.logger.Debug("no documents configured")
		return nil
	}

	for i, doc := range list.Documents {
		if err := r.Render(ctx, rc, doc); err != nil {
			name := doc.Filename
			if name == "" {
				name = DefaultFilename
			}
			return &DocumentError{Index: i, Filename: name, Err: err}
		}
	}
	return nil
}

// Render runs the whole pipeline for a single document: select chapters,
// assemble markdown, convert, then merge prepend/append files if any.
func (r *Renderer) Render(ctx context.Context, rc RenderContext, doc DocumentSpec) error {
	doc = doc.WithDefaults(rc.Root)
	log := r.logger.With("document", doc.Filename)

	patterns, err := CompilePatterns(doc.Include)
	if err != nil {
		return err
	}
	selected, err := SelectChapters(rc.Book, patterns)
	if err != nil {
		return err
	}
	log.Debug("selected chapters", "count", len(selected), "chapters", selected)

	content, err := AssembleContent(rc.Book, selected)
	if err != nil {
		return err
	}

	output := OutputPath(rc, doc)
	if err := os.MkdirAll(filepath.Dir(output), dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	err = r.converter.Convert(ctx, Request{
		Content: content,
		Options: BuildOptions(rc.Root, doc),
		Output:  output,
	})
	if err != nil {
		return err
	}

	if !doc.NeedsCombine() {
		log.Debug("document written", "path", output)
		return nil
	}

	err = r.converter.Convert(ctx, Request{
		Inputs:  CombineInputs(rc.Root, output, doc),
		Options: BuildOptions(rc.Root, doc),
		Output:  output,
	})
	if err != nil {
		return fmt.Errorf("combining prepend/append files: %w", err)
	}
	log.Debug("document written", "path", output, "prepend", len(doc.Prepend), "append", len(doc.Append))
	return nil
}

// OutputPath is where a document is written: its filename beneath the
// renderer's destination, or as given when absolute.
func OutputPath(rc RenderContext, doc DocumentSpec) string {
	return fileutil.ResolveUnder(DestinationDir(rc), doc.Filename)
}

// DestinationDir is the renderer's output directory. Hosts always send
// one; book/docx under root stands in when they do not.
func DestinationDir(rc RenderContext) string {
	if rc.Destination != "" {
		return rc.Destination
	}
	return filepath.Join(rc.Root, "book", "docx")
}

// CombineInputs orders the combine step's inputs: prepend files, the
// primary output, then append files. Relative paths resolve against root.
func CombineInputs(root, primary string, doc DocumentSpec) []string {
	inputs := make([]string, 0, len(doc.Prepend)+1+len(doc.Append))
	for _, p := range doc.Prepend {
		inputs = append(inputs, fileutil.ResolveUnder(root, p))
	}
	inputs = append(inputs, primary)
	for _, p := range doc.Append {
		inputs = append(inputs, fileutil.ResolveUnder(root, p))
	}
	return inputs
}
