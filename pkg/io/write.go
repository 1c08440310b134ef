// Package io writes rendered tangle output to the filesystem.
//
// Writing happens only after an entire run has parsed, aggregated, and
// rendered successfully, so a failing run never leaves partially written
// output behind (files from prior successful runs are not cleaned up).
package io

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/lit/pkg/errors"
	"github.com/matzehuels/lit/pkg/tangle"
)

// WriteFiles writes each tangled file under dir, creating intermediate
// directories as needed and overwriting existing files. Destination paths
// are re-validated here as a last line of defense before touching disk.
func WriteFiles(dir string, files []tangle.TangledFile) error {
	for _, f := range files {
		if err := WriteFile(dir, f); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes a single tangled file under dir.
func WriteFile(dir string, f tangle.TangledFile) error {
	if err := errors.ValidateDestinationPath(f.Path); err != nil {
		return err
	}

	path := filepath.Join(dir, filepath.FromSlash(f.Path))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create directory for %s", f.Path)
	}
	if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", f.Path)
	}
	return nil
}
