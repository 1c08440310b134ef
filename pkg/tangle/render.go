package tangle

import (
	"sort"
	"strings"
)

// Render produces the final content for one destination file.
//
// Blocks are sorted by position ascending. The sort is stable: blocks
// sharing the sentinel position have no other disambiguating key, so they
// keep their relative discovery order. Sorted contents are joined with a
// blank line between fragments (so fragments without trailing newlines stay
// visually distinct) and the result always ends with exactly one newline.
//
// Render is pure and deterministic; it never observes an empty collection
// because a destination only exists once a block was inserted for it.
func Render(fb *FileBlocks) string {
	sorted := make([]Block, len(fb.blocks))
	copy(sorted, fb.blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pos.Compare(sorted[j].Pos) < 0
	})

	contents := make([]string, len(sorted))
	for i, b := range sorted {
		contents[i] = b.Content
	}
	return strings.Join(contents, "\n\n") + "\n"
}
