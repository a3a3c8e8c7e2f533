package book2docx

import (
	"iter"
	"slices"

	"github.com/alnah/go-book2docx/internal/fileutil"
)

// Document defaults.
const (
	DefaultFilename = "output.docx"
	DefaultTemplate = "reference.docx"
	WildcardPattern = "*"
)

// ItemKind identifies the kind of a book item.
type ItemKind int

const (
	ItemChapter ItemKind = iota
	ItemSeparator
	ItemPartTitle
)

// Item is one entry of the book's table of contents.
// Chapter is set only for ItemChapter, Title only for ItemPartTitle.
type Item struct {
	Kind    ItemKind
	Chapter *Chapter
	Title   string
}

// Chapter is a leaf of the book holding markdown content.
type Chapter struct {
	Name     string
	Content  string
	Path     string // relative to the book's src dir, empty when not file-backed
	Draft    bool
	SubItems []Item
}

// Selectable reports whether the chapter may be picked by include patterns.
func (c *Chapter) Selectable() bool {
	return c.Path != "" && !c.Draft
}

// Book is the read-only chapter tree supplied by the host.
type Book struct {
	Items []Item
}

// Chapters walks the book depth-first in table-of-contents order.
// The sequence can be ranged over any number of times.
func (b Book) Chapters() iter.Seq[*Chapter] {
	return func(yield func(*Chapter) bool) {
		walkItems(b.Items, yield)
	}
}

func walkItems(items []Item, yield func(*Chapter) bool) bool {
	for _, it := range items {
		if it.Kind != ItemChapter || it.Chapter == nil {
			continue
		}
		if !yield(it.Chapter) {
			return false
		}
		if !walkItems(it.Chapter.SubItems, yield) {
			return false
		}
	}
	return true
}

// RenderContext is what the host hands to a renderer.
type RenderContext struct {
	Version     string
	Root        string // directory holding book.toml
	Destination string // output directory for this renderer
	Book        Book
}

// DocumentSpec describes one output document.
type DocumentSpec struct {
	Filename         string   `yaml:"filename" toml:"filename"`
	Template         string   `yaml:"template" toml:"template"`
	Include          []string `yaml:"include" toml:"include"`
	OffsetHeadingsBy *int     `yaml:"offset_headings_by" toml:"offset_headings_by"`
	Append           []string `yaml:"append" toml:"append"`
	Prepend          []string `yaml:"prepend" toml:"prepend"`
}

// WithDefaults returns a fully populated copy of d.
// The reference template falls back to DefaultTemplate only when that file
// exists under root, so books without one use pandoc's built-in styles.
func (d DocumentSpec) WithDefaults(root string) DocumentSpec {
	out := d
	out.Include = slices.Clone(d.Include)
	out.Append = slices.Clone(d.Append)
	out.Prepend = slices.Clone(d.Prepend)
	if d.OffsetHeadingsBy != nil {
		n := *d.OffsetHeadingsBy
		out.OffsetHeadingsBy = &n
	}

	if out.Filename == "" {
		out.Filename = DefaultFilename
	}
	if len(out.Include) == 0 {
		out.Include = []string{WildcardPattern}
	}
	if out.Template == "" && fileutil.FileExists(fileutil.ResolveUnder(root, DefaultTemplate)) {
		out.Template = DefaultTemplate
	}
	return out
}

// NeedsCombine reports whether prepend or append files must be merged
// around the converted body.
func (d DocumentSpec) NeedsCombine() bool {
	return len(d.Prepend) > 0 || len(d.Append) > 0
}

// DocumentList is the ordered set of documents to build.
type DocumentList struct {
	Documents []DocumentSpec `yaml:"documents" toml:"documents"`
}
