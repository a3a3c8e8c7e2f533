package book2docx

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestCompilePatterns - Glob compilation
// ---------------------------------------------------------------------------

func TestCompilePatterns(t *testing.T) {
	t.Parallel()

	t.Run("empty list is the wildcard", func(t *testing.T) {
		t.Parallel()
		p, err := CompilePatterns(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p) != 1 || p[0].String() != WildcardPattern {
			t.Errorf("CompilePatterns(nil) = %v, want [*]", p)
		}
	})

	t.Run("keeps order and source", func(t *testing.T) {
		t.Parallel()
		p, err := CompilePatterns([]string{"b.md", "a/*"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p) != 2 || p[0].String() != "b.md" || p[1].String() != "a/*" {
			t.Errorf("CompilePatterns() = %v", p)
		}
	})

	t.Run("invalid glob", func(t *testing.T) {
		t.Parallel()
		_, err := CompilePatterns([]string{"ok.md", "[abc"})
		if !errors.Is(err, ErrPatternCompile) {
			t.Fatalf("error = %v, want ErrPatternCompile", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestPattern_Match - Glob semantics over chapter paths
// ---------------------------------------------------------------------------

func TestPattern_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*", "intro.md", true},
		{"*", "guide/install.md", true},
		{"guide/*", "guide/install.md", true},
		{"guide/*", "intro.md", false},
		{"*.md", "guide/index.md", true},
		{"intro.md", "intro.md", true},
		{"intro.md", "guide/intro.md", false},
		{"ch?.md", "ch1.md", true},
		{"ch[12].md", "ch3.md", false},
		{"{intro,appendix}.md", "appendix.md", false},
		{"{intro,appendix}.md", "{intro,appendix}.md", true},
		{"foo{1}.md", "foo{1}.md", true},
		{"a{b", "a{b", true},
		{"[{]x.md", "{x.md", true},
		{`\*.md`, "*.md", true},
		{`\*.md`, "a.md", false},
		{`\{x}.md`, "{x}.md", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			t.Parallel()
			p := mustCompile(tt.pattern)[0]
			if got := p.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
			}
		})
	}
}

func TestEscapeBraces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"plain/*.md", "plain/*.md"},
		{"a{b,c}", `a\{b,c\}`},
		{`already\{`, `already\{`},
		{"[{}]", "[{}]"},
		{"[a]{", `[a]\{`},
	}
	for _, tt := range tests {
		if got := escapeBraces(tt.in); got != tt.want {
			t.Errorf("escapeBraces(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
