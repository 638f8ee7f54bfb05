package pathfilter

import (
	"strings"
	"testing"

	"github.com/taigrr/combine-notes/internal/types"
)

func TestPathFilter_ShowsNotes(t *testing.T) {
	filter := New(nil)

	tests := []string{
		"notes/test.md",
		"test.markdown",
		"folder/subfolder/note.txt",
		"image.png",
		"Notes",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			if filter.IsIgnored(path) {
				t.Errorf("IsIgnored(%q) = true, want false", path)
			}
		})
	}
}

func TestPathFilter_HidesObsidianDirectory(t *testing.T) {
	filter := New(nil)

	tests := []string{
		".obsidian",
		".obsidian/app.json",
		".obsidian/plugins/plugin/main.js",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			if !filter.IsIgnored(path) {
				t.Errorf("IsIgnored(%q) = false, want true", path)
			}
		})
	}
}

func TestPathFilter_HidesAtAnyDepth(t *testing.T) {
	filter := New(nil)

	tests := []string{
		".git/config",
		"projects/site/.git/HEAD",
		".trash/deleted.md",
		"code/node_modules/package/index.js",
		".DS_Store",
		"photos/Thumbs.db",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			if !filter.IsIgnored(path) {
				t.Errorf("IsIgnored(%q) = false, want true", path)
			}
		})
	}
}

func TestPathFilter_SpecialCharactersInPaths(t *testing.T) {
	filter := New(nil)

	tests := []struct {
		name string
		path string
	}{
		{"dots in filenames", "file.name.md"},
		{"version notes", "v1.0.0-notes.md"},
		{"parentheses in paths", "notes/(archived)/old.md"},
		{"square brackets", "notes/[2024]/january.md"},
		{"curly braces", "templates/{daily}.md"},
		{"plus signs", "C++/notes.md"},
		{"question mark", "FAQ?.md"},
		{"asterisk in filename", "important*.md"},
		{"pipe character", "option|choice.md"},
		{"dollar sign", "price$100.md"},
		{"unicode", "中文/笔记.md"},
		{"spaces", "my notes/important file.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if filter.IsIgnored(tt.path) {
				t.Errorf("IsIgnored(%q) = true, want false", tt.path)
			}
		})
	}
}

func TestPathFilter_RootIsNeverIgnored(t *testing.T) {
	filter := New(&types.PathFilterConfig{IgnoredPatterns: []string{"*"}})

	for _, path := range []string{"", "/"} {
		if filter.IsIgnored(path) {
			t.Errorf("IsIgnored(%q) = true, want false", path)
		}
	}
}

func TestPathFilter_BackslashSeparators(t *testing.T) {
	filter := New(nil)

	if !filter.IsIgnored("vault\\.obsidian\\app.json") {
		t.Error("IsIgnored with backslashes = false, want true")
	}
	if filter.IsIgnored("folder\\subfolder\\note.md") {
		t.Error("IsIgnored(folder\\subfolder\\note.md) = true, want false")
	}
}

func TestPathFilter_CustomIgnoredPatterns(t *testing.T) {
	t.Run("directory name", func(t *testing.T) {
		filter := New(&types.PathFilterConfig{
			IgnoredPatterns: []string{"archive"},
		})

		tests := []struct {
			path string
			want bool
		}{
			{"archive", true},
			{"archive/old.md", true},
			{"archive/2024/jan/note.md", true},
			{"archives/note.md", false},
			{"notes/archive.md", false},
		}

		for _, tt := range tests {
			if got := filter.IsIgnored(tt.path); got != tt.want {
				t.Errorf("IsIgnored(%q) = %v, want %v", tt.path, got, tt.want)
			}
		}
	})

	t.Run("extension glob", func(t *testing.T) {
		filter := New(&types.PathFilterConfig{
			IgnoredPatterns: []string{"*.tmp"},
		})

		tests := []struct {
			path string
			want bool
		}{
			{"scratch.tmp", true},
			{"drafts/a.tmp", true},
			{"drafts/a.md", false},
		}

		for _, tt := range tests {
			if got := filter.IsIgnored(tt.path); got != tt.want {
				t.Errorf("IsIgnored(%q) = %v, want %v", tt.path, got, tt.want)
			}
		}
	})

	t.Run("negation", func(t *testing.T) {
		filter := New(&types.PathFilterConfig{
			IgnoredPatterns: []string{"archive", "!archive/keep.md"},
		})

		if filter.IsIgnored("archive/keep.md") {
			t.Error("IsIgnored(archive/keep.md) = true, want false")
		}
		if !filter.IsIgnored("archive/drop.md") {
			t.Error("IsIgnored(archive/drop.md) = false, want true")
		}
	})
}

func TestPathFilter_IsMarkdown(t *testing.T) {
	filter := New(nil)

	tests := []struct {
		extension string
		want      bool
	}{
		{"md", true},
		{"MD", false},
		{"markdown", false},
		{"txt", false},
		{"png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.extension, func(t *testing.T) {
			if got := filter.IsMarkdown(tt.extension); got != tt.want {
				t.Errorf("IsMarkdown(%q) = %v, want %v", tt.extension, got, tt.want)
			}
		})
	}
}

func TestPathFilter_Patterns(t *testing.T) {
	filter := New(&types.PathFilterConfig{IgnoredPatterns: []string{"drafts"}})

	patterns := filter.Patterns()
	if got := patterns[len(patterns)-1]; got != "drafts" {
		t.Errorf("last pattern = %q, want %q", got, "drafts")
	}

	patterns[0] = "changed"
	if filter.Patterns()[0] == "changed" {
		t.Error("Patterns() should return a copy")
	}
}

func TestPathFilter_FilterPaths(t *testing.T) {
	t.Run("filters array correctly", func(t *testing.T) {
		filter := New(nil)
		paths := []string{
			"notes/valid.md",
			".obsidian/config.json",
			"archive/old.md",
			".git/HEAD",
			"readme.txt",
		}

		got := filter.FilterPaths(paths)
		want := []string{
			"notes/valid.md",
			"archive/old.md",
			"readme.txt",
		}

		if len(got) != len(want) {
			t.Fatalf("FilterPaths() returned %d items, want %d", len(got), len(want))
		}

		for i, path := range got {
			if path != want[i] {
				t.Errorf("FilterPaths()[%d] = %q, want %q", i, path, want[i])
			}
		}
	})

	t.Run("handles empty array", func(t *testing.T) {
		filter := New(nil)
		got := filter.FilterPaths([]string{})
		if len(got) != 0 {
			t.Errorf("FilterPaths([]) = %v, want empty", got)
		}
	})
}

func TestPathFilter_VeryLongPath(t *testing.T) {
	filter := New(nil)

	var longPath strings.Builder
	for range 100 {
		longPath.WriteString("a/")
	}
	longPath.WriteString("note.md")

	if filter.IsIgnored(longPath.String()) {
		t.Error("IsIgnored(longPath) = true, want false")
	}
}
