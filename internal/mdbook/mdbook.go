// Package mdbook decodes the render context mdBook writes to a renderer's stdin.
package mdbook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"

	book2docx "github.com/alnah/go-book2docx"
)

// SectionPath locates this renderer's table inside the context's config.
const SectionPath = "config.output.docx"

// Sentinel errors for render context decoding.
var (
	ErrEmptyContext   = errors.New("render context is empty")
	ErrInvalidContext = errors.New("invalid render context")
)

// Input is everything a renderer run needs from the host.
type Input struct {
	Context book2docx.RenderContext
	Section []byte // raw [output.docx] table as JSON, nil when absent
}

// Read decodes a render context from r.
func Read(r io.Reader) (*Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading render context: %w", err)
	}
	return Parse(data)
}

// Parse decodes a render context document.
func Parse(data []byte) (*Input, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyContext
	}

	var raw struct {
		Version     string `json:"version"`
		Root        string `json:"root"`
		Destination string `json:"destination"`
		Book        struct {
			Sections []item `json:"sections"`
			Items    []item `json:"items"`
		} `json:"book"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContext, err)
	}
	if raw.Root == "" {
		return nil, fmt.Errorf("%w: missing root", ErrInvalidContext)
	}

	items := raw.Book.Sections
	if len(items) == 0 {
		items = raw.Book.Items
	}

	in := &Input{
		Context: book2docx.RenderContext{
			Version:     raw.Version,
			Root:        raw.Root,
			Destination: raw.Destination,
			Book:        book2docx.Book{Items: toItems(items)},
		},
	}
	if section := gjson.GetBytes(data, SectionPath); section.Exists() {
		in.Section = []byte(section.Raw)
	}
	return in, nil
}

// item is one externally tagged book item: {"Chapter": {...}},
// "Separator" or {"PartTitle": "..."}.
type item struct {
	chapter   *chapter
	separator bool
	partTitle *string
}

type chapter struct {
	Name     string  `json:"name"`
	Content  string  `json:"content"`
	Path     *string `json:"path"`
	SubItems []item  `json:"sub_items"`
}

func (it *item) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "Separator" {
			return fmt.Errorf("unknown book item %q", tag)
		}
		it.separator = true
		return nil
	}

	var tagged struct {
		Chapter   *chapter `json:"Chapter"`
		PartTitle *string  `json:"PartTitle"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	switch {
	case tagged.Chapter != nil:
		it.chapter = tagged.Chapter
	case tagged.PartTitle != nil:
		it.partTitle = tagged.PartTitle
	default:
		return fmt.Errorf("unknown book item %s", data)
	}
	return nil
}

func toItems(raw []item) []book2docx.Item {
	if len(raw) == 0 {
		return nil
	}
	items := make([]book2docx.Item, 0, len(raw))
	for _, it := range raw {
		switch {
		case it.chapter != nil:
			items = append(items, book2docx.Item{Kind: book2docx.ItemChapter, Chapter: toChapter(it.chapter)})
		case it.partTitle != nil:
			items = append(items, book2docx.Item{Kind: book2docx.ItemPartTitle, Title: *it.partTitle})
		case it.separator:
			items = append(items, book2docx.Item{Kind: book2docx.ItemSeparator})
		}
	}
	return items
}

// toChapter converts a decoded chapter. mdBook marks draft chapters by
// leaving their path null.
func toChapter(c *chapter) *book2docx.Chapter {
	ch := &book2docx.Chapter{
		Name:     c.Name,
		Content:  c.Content,
		Draft:    c.Path == nil,
		SubItems: toItems(c.SubItems),
	}
	if c.Path != nil {
		ch.Path = *c.Path
	}
	return ch
}
