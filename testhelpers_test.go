package book2docx

// chapter builds a file-backed chapter item.
func chapter(name, path, content string, sub ...Item) Item {
	return Item{Kind: ItemChapter, Chapter: &Chapter{Name: name, Path: path, Content: content, SubItems: sub}}
}

// draft builds a chapter item with no source file.
func draft(name string) Item {
	return Item{Kind: ItemChapter, Chapter: &Chapter{Name: name, Draft: true}}
}

// sampleBook is:
//
//	intro.md
//	-- separator --
//	Part I
//	guide/index.md
//	  guide/install.md
//	  (draft)
//	appendix.md
func sampleBook() Book {
	return Book{Items: []Item{
		chapter("Intro", "intro.md", "# Intro"),
		{Kind: ItemSeparator},
		{Kind: ItemPartTitle, Title: "Part I"},
		chapter("Guide", "guide/index.md", "# Guide",
			chapter("Install", "guide/install.md", "## Install"),
			draft("Later"),
		),
		chapter("Appendix", "appendix.md", "# Appendix"),
	}}
}

func mustCompile(includes ...string) []Pattern {
	p, err := CompilePatterns(includes)
	if err != nil {
		panic(err)
	}
	return p
}

func intPtr(n int) *int { return &n }
