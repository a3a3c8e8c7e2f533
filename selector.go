package book2docx

import (
	"fmt"
	"strings"
)

// SelectChapters returns the paths of selectable chapters matched by at
// least one pattern, in book order. Pathless and draft chapters are skipped.
func SelectChapters(book Book, patterns []Pattern) ([]string, error) {
	var paths []string
	for ch := range book.Chapters() {
		if !ch.Selectable() {
			continue
		}
		if matchAny(patterns, ch.Path) {
			paths = append(paths, ch.Path)
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatchingChapters, describePatterns(patterns))
	}
	return paths, nil
}

// AssembleContent concatenates the content of the selected chapters in book
// order. Each chapter is followed by a blank line: hosts strip trailing
// newlines from chapter files, and without the blank line a chapter's
// leading heading would not be recognised under blank_before_header.
func AssembleContent(book Book, selected []string) (string, error) {
	want := make(map[string]struct{}, len(selected))
	for _, p := range selected {
		want[p] = struct{}{}
	}

	var b strings.Builder
	for ch := range book.Chapters() {
		if ch.Path == "" {
			continue
		}
		if _, ok := want[ch.Path]; !ok {
			continue
		}
		b.WriteString(ch.Content)
		b.WriteString("\n\n")
	}

	if b.Len() == 0 {
		return "", ErrEmptyFilteredContent
	}
	return b.String(), nil
}

func describePatterns(patterns []Pattern) string {
	srcs := make([]string, len(patterns))
	for i, p := range patterns {
		srcs[i] = p.String()
	}
	return "include = [" + strings.Join(srcs, ", ") + "]"
}
