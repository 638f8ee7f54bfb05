package main

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func setupTestVault(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "Vault")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	for rel, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
	if err := initServices(dir, "", false); err != nil {
		t.Fatalf("initServices() error = %v", err)
	}
	return dir
}

func TestHandleCombine(t *testing.T) {
	setupTestVault(t, map[string]string{
		"Projects/b.md":      "second",
		"Projects/a.md":      "first",
		"Projects/x/c.md":    "third",
		"Projects/notes.txt": "skip",
		"Other/d.md":         "other",
	})

	t.Run("folder", func(t *testing.T) {
		_, out, err := handleCombine(context.Background(), nil, CombineInput{Folder: "Projects"})
		if err != nil {
			t.Fatalf("handleCombine() error = %v", err)
		}

		want := "------------\n# Document: a.md\n\nfirst\n\n" +
			"------------\n# Document: b.md\n\nsecond\n\n" +
			"------------\n# Document: x/c.md\n\nthird\n\n"
		if out.Text != want {
			t.Errorf("Text = %q, want %q", out.Text, want)
		}
		if out.Count != 3 {
			t.Errorf("Count = %d, want 3", out.Count)
		}
		if !slices.Equal(out.Files, []string{"a.md", "b.md", "x/c.md"}) {
			t.Errorf("Files = %v", out.Files)
		}
	})

	t.Run("vault root keeps full paths", func(t *testing.T) {
		_, out, err := handleCombine(context.Background(), nil, CombineInput{})
		if err != nil {
			t.Fatalf("handleCombine() error = %v", err)
		}
		if !strings.HasPrefix(out.Text, "------------\n# Document: Other/d.md\n\n") {
			t.Errorf("Text should start with Other/d.md, got %q", out.Text)
		}
		if out.Count != 4 {
			t.Errorf("Count = %d, want 4", out.Count)
		}
	})

	t.Run("missing folder", func(t *testing.T) {
		res, _, err := handleCombine(context.Background(), nil, CombineInput{Folder: "Nope"})
		if err == nil {
			t.Fatal("expected error for missing folder")
		}
		if res == nil || !res.IsError {
			t.Error("expected an error result")
		}
	})

	t.Run("traversal", func(t *testing.T) {
		if _, _, err := handleCombine(context.Background(), nil, CombineInput{Folder: "../"}); err == nil {
			t.Error("expected error for path outside the vault")
		}
	})
}

func TestHandleSave(t *testing.T) {
	dir := setupTestVault(t, map[string]string{
		"Journal/2024-01-01.md": "day one",
		"Journal/2024-01-02.md": "day two",
		"Empty/readme.txt":      "no notes",
	})

	t.Run("writes into the output folder", func(t *testing.T) {
		_, out, err := handleSave(context.Background(), nil, SaveInput{Folder: "Journal"})
		if err != nil {
			t.Fatalf("handleSave() error = %v", err)
		}
		if out.Count != 2 {
			t.Errorf("Count = %d, want 2", out.Count)
		}
		if !strings.HasPrefix(out.Path, "combined_notes/") || !strings.HasSuffix(out.Path, "_Journal-combined.md") {
			t.Errorf("Path = %q", out.Path)
		}
		if !strings.HasPrefix(out.URI, "obsidian://open?vault=Vault&file=combined_notes%2F") {
			t.Errorf("URI = %q", out.URI)
		}

		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(out.Path)))
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if !strings.Contains(string(data), "# Document: 2024-01-02.md\n\nday two") {
			t.Errorf("saved document missing second note: %q", data)
		}
	})

	t.Run("nothing to combine creates nothing", func(t *testing.T) {
		appSettings.OutputFolder = "empty_out"
		t.Cleanup(func() { appSettings.OutputFolder = "combined_notes" })

		res, _, err := handleSave(context.Background(), nil, SaveInput{Folder: "Empty"})
		if err == nil {
			t.Fatal("expected error for folder without notes")
		}
		if res == nil || !res.IsError {
			t.Error("expected an error result")
		}
		if _, err := os.Stat(filepath.Join(dir, "empty_out")); !os.IsNotExist(err) {
			t.Error("output folder should not be created")
		}
	})
}

func TestHandleFolders(t *testing.T) {
	setupTestVault(t, map[string]string{
		"Projects/Web/a.md": "a",
		"Recipes/b.md":      "b",
		".obsidian/c.json":  "{}",
	})

	_, out, err := handleFolders(context.Background(), nil, FoldersInput{})
	if err != nil {
		t.Fatalf("handleFolders() error = %v", err)
	}
	want := []string{"/", "Projects", "Projects/Web", "Recipes"}
	if !slices.Equal(out.Folders, want) {
		t.Errorf("Folders = %v, want %v", out.Folders, want)
	}

	_, out, err = handleFolders(context.Background(), nil, FoldersInput{Query: "web"})
	if err != nil {
		t.Fatalf("handleFolders() error = %v", err)
	}
	if len(out.Folders) != 1 || out.Folders[0] != "Projects/Web" {
		t.Errorf("Folders(web) = %v, want [Projects/Web]", out.Folders)
	}
}
