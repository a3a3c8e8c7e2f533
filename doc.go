// Package book2docx renders an mdBook book to Word documents through pandoc.
//
// # Quick Start
//
// Hand the renderer a render context and the documents to build:
//
//	r := book2docx.NewRenderer(book2docx.WithLogger(logger))
//	err := r.RenderAll(ctx, rc, book2docx.DocumentList{
//	    Documents: []book2docx.DocumentSpec{
//	        {Filename: "guide.docx", Include: []string{"intro.md", "guide/*"}},
//	    },
//	})
//
// The cmd/mdbook-docx binary does the same from the JSON the host writes to
// stdin, reading the list from the [output.docx] table of book.toml.
//
// # Pipeline
//
// Each document goes through these stages:
//
//  1. Include globs select chapters by path, in table-of-contents order
//  2. Selected chapter contents are joined, each followed by a blank line
//  3. pandoc reads the markdown from stdin and writes the .docx
//  4. When prepend or append files are set, pandoc runs again to merge
//     them around the generated document
//
// Documents are built in order and the first failure stops the run; the
// returned *DocumentError names the document.
//
// # Patterns
//
// "*" matches any sequence of characters including "/", so the default
// include list selects nested chapters too. "?", "[...]" and backslash
// escapes work as usual; "{" and "}" are plain characters. Draft chapters
// and chapters without a source file are never selected.
//
// # Errors
//
// Converter failures are *ConverterError values. They match
// ErrConverterExecution and one cause (ErrConverterNotFound,
// ErrMissingInputFile, ErrBadEncoding, ...) with errors.Is.
package book2docx
