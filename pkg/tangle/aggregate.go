package tangle

import (
	"github.com/matzehuels/lit/pkg/errors"
)

// FileBlocks accumulates the blocks destined for a single output file, in
// discovery order. Duplicate explicit position keys are rejected at
// insertion time so the failure is attributable to the exact fragment that
// introduced the conflict; sentinel-positioned blocks never conflict.
type FileBlocks struct {
	path   string
	blocks []Block

	// byPos tracks the origin of each explicit position key seen so far,
	// for duplicate diagnostics.
	byPos map[string]Origin
}

// newFileBlocks creates an empty collection for one destination path.
func newFileBlocks(path string) *FileBlocks {
	return &FileBlocks{
		path:  path,
		byPos: make(map[string]Origin),
	}
}

// Path returns the destination path this collection renders to.
func (fb *FileBlocks) Path() string {
	return fb.path
}

// Len returns the number of accumulated blocks.
func (fb *FileBlocks) Len() int {
	return len(fb.blocks)
}

// insert appends a block, enforcing per-destination position uniqueness for
// explicit keys.
func (fb *FileBlocks) insert(b Block) error {
	if !b.Pos.IsSentinel() {
		if prev, ok := fb.byPos[b.Pos.String()]; ok {
			return errors.New(errors.ErrCodeDuplicatePosition,
				"duplicate position %q for %s: fragment at %s conflicts with fragment at %s",
				b.Pos, fb.path, b.Origin, prev)
		}
		fb.byPos[b.Pos.String()] = b.Origin
	}
	fb.blocks = append(fb.blocks, b)
	return nil
}

// Aggregator groups blocks by destination path across all processed
// documents. Insertion order across documents does not affect final output
// (ordering is entirely determined by position keys), but it is preserved
// for diagnostics and for the stable ordering of sentinel blocks.
//
// One Aggregator serves one tangle run; there is no state between runs.
// The zero value is not usable, construct with NewAggregator.
type Aggregator struct {
	files map[string]*FileBlocks

	// order lists destination paths in first-seen order so output is
	// deterministic without depending on map iteration.
	order []string
}

// NewAggregator creates an empty aggregator for a single run.
func NewAggregator() *Aggregator {
	return &Aggregator{
		files: make(map[string]*FileBlocks),
	}
}

// Insert folds a block into the aggregation state. It fails when the
// block's explicit position key is already taken within its destination;
// the same key may be reused across different destinations.
func (a *Aggregator) Insert(b Block) error {
	fb, ok := a.files[b.Path]
	if !ok {
		fb = newFileBlocks(b.Path)
		a.files[b.Path] = fb
		a.order = append(a.order, b.Path)
	}
	return fb.insert(b)
}

// Destinations returns the distinct destination paths in first-seen order.
func (a *Aggregator) Destinations() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// BlockCount returns the total number of accepted blocks across all
// destinations.
func (a *Aggregator) BlockCount() int {
	n := 0
	for _, fb := range a.files {
		n += len(fb.blocks)
	}
	return n
}

// Files renders every destination and returns the final files in first-seen
// destination order. Call only after all documents have been aggregated.
func (a *Aggregator) Files() []TangledFile {
	out := make([]TangledFile, 0, len(a.order))
	for _, path := range a.order {
		out = append(out, TangledFile{
			Path:    path,
			Content: Render(a.files[path]),
		})
	}
	return out
}
