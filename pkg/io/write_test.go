package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/lit/pkg/errors"
	"github.com/matzehuels/lit/pkg/tangle"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	files := []tangle.TangledFile{
		{Path: "main.rs", Content: "fn main() {}\n"},
		{Path: "src/lib.rs", Content: "pub fn greet() {}\n"},
	}
	if err := WriteFiles(dir, files); err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}

	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(f.Path)))
		if err != nil {
			t.Fatalf("read %s: %v", f.Path, err)
		}
		if string(got) != f.Content {
			t.Errorf("%s content = %q, want %q", f.Path, got, f.Content)
		}
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()

	if err := WriteFile(dir, tangle.TangledFile{Path: "out.txt", Content: "old\n"}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteFile(dir, tangle.TangledFile{Path: "out.txt", Content: "new\n"}); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new\n" {
		t.Errorf("content = %q, want %q", got, "new\n")
	}
}

func TestWriteFileRejectsEscapingPath(t *testing.T) {
	dir := t.TempDir()

	err := WriteFile(dir, tangle.TangledFile{Path: "../escape.txt", Content: "nope"})
	if err == nil {
		t.Fatal("WriteFile with traversal path succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error code = %v, want INVALID_PATH", errors.GetCode(err))
	}
}
