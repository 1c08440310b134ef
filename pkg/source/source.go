// Package source discovers candidate markdown documents for a tangle run.
package source

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/lit/pkg/errors"
)

// DefaultExtension is the document extension used when none is configured.
const DefaultExtension = ".md"

// Discover walks root recursively and returns the paths of all documents
// matching ext (case-insensitive), sorted for deterministic processing
// order. Directories whose resolved path equals skipDir are not descended
// into; the orchestrator passes the output directory here so a previous
// run's output nested under the input tree is never re-tangled.
func Discover(root, ext, skipDir string) ([]string, error) {
	if ext == "" {
		ext = DefaultExtension
	}
	ext = strings.ToLower(ext)

	var docs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir != "" && samePath(path, skipDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) == ext {
			docs = append(docs, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "discover documents under %s", root)
	}

	sort.Strings(docs)
	return docs, nil
}

// samePath compares two paths after cleaning and absolutization where
// possible. Falls back to a cleaned lexical comparison when Abs fails.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil {
		return absA == absB
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
