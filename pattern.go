package book2docx

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Pattern is a compiled include glob.
type Pattern struct {
	source string
	g      glob.Glob
}

// String returns the glob the pattern was compiled from.
func (p Pattern) String() string {
	return p.source
}

// Match reports whether a chapter path matches the pattern.
// Paths are compared with forward slashes on every platform.
func (p Pattern) Match(path string) bool {
	return p.g.Match(filepath.ToSlash(path))
}

// CompilePatterns compiles include globs. An empty list compiles to the
// catch-all wildcard. No separators are declared, so "*" also spans
// directories and matches nested chapters. Supported syntax is "*", "?",
// "[...]" and backslash escapes; braces are literal characters, not
// alternation.
// Patterns always use "/" between directories.
func CompilePatterns(includes []string) ([]Pattern, error) {
	if len(includes) == 0 {
		includes = []string{WildcardPattern}
	}

	patterns := make([]Pattern, 0, len(includes))
	for _, src := range includes {
		g, err := glob.Compile(escapeBraces(src))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrPatternCompile, src, err)
		}
		patterns = append(patterns, Pattern{source: src, g: g})
	}
	return patterns, nil
}

// matchAny reports whether any pattern matches path.
func matchAny(patterns []Pattern, path string) bool {
	for _, p := range patterns {
		if p.Match(path) {
			return true
		}
	}
	return false
}

// escapeBraces turns "{" and "}" outside character classes into literals.
// Existing escapes are copied unchanged.
func escapeBraces(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	inClass, escaped := false, false
	for _, r := range src {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case inClass:
			if r == ']' {
				inClass = false
			}
		case r == '[':
			inClass = true
		case r == '{' || r == '}':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
