package source

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file (and parent dirs) under dir.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.md", "")
	writeFile(t, dir, "a.md", "")
	writeFile(t, dir, "notes.txt", "")
	writeFile(t, dir, "nested/deep/c.md", "")
	writeFile(t, dir, "upper.MD", "")

	docs, err := Discover(dir, ".md", "")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.md"),
		filepath.Join(dir, "nested", "deep", "c.md"),
		filepath.Join(dir, "upper.MD"),
	}
	if len(docs) != len(want) {
		t.Fatalf("got %d docs %v, want %d", len(docs), docs, len(want))
	}
	for i := range want {
		if docs[i] != want[i] {
			t.Errorf("docs[%d] = %q, want %q", i, docs[i], want[i])
		}
	}
}

func TestDiscoverSkipsOutputDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "")
	writeFile(t, dir, "out/generated.md", "")

	docs, err := Discover(dir, ".md", filepath.Join(dir, "out"))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(docs) != 1 || docs[0] != filepath.Join(dir, "doc.md") {
		t.Errorf("docs = %v, want only doc.md", docs)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), ".md", "")
	if err == nil {
		t.Fatal("Discover on missing root succeeded, want error")
	}
}

func TestDiscoverDefaultExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "")
	writeFile(t, dir, "other.rst", "")

	docs, err := Discover(dir, "", "")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("got %d docs, want 1 (.md default)", len(docs))
	}
}
