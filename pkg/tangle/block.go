package tangle

import "fmt"

// Origin identifies where a fragment was discovered, for diagnostics.
type Origin struct {
	// File is the source document path.
	File string

	// Line is the 1-based line of the fragment's opening fence. Zero when
	// unknown (e.g. blocks constructed directly in tests).
	Line int
}

// String formats the origin as "file:line", or just the file when the line
// is unknown.
func (o Origin) String() string {
	if o.Line > 0 {
		return fmt.Sprintf("%s:%d", o.File, o.Line)
	}
	return o.File
}

// Block is one extracted fragment: a destination path, a position within
// that destination, and the fragment's raw content. Blocks are immutable
// once constructed and are consumed exactly once by the Aggregator.
type Block struct {
	// Path is the destination file path relative to the output directory.
	Path string

	// Pos orders the block within its destination file.
	Pos Position

	// Content is the fragment body, byte-exact as captured. A whitespace-only
	// or empty body is legitimate and renders verbatim at its position.
	Content string

	// Origin records the source document and line for error reporting.
	Origin Origin
}

// NewBlock constructs a block from a parsed address and fragment body.
func NewBlock(addr Address, content string, origin Origin) Block {
	return Block{
		Path:    addr.Path,
		Pos:     addr.Pos,
		Content: content,
		Origin:  origin,
	}
}

// TangledFile is a final rendered output file: one per distinct destination
// path observed across all input documents. Derived, never mutated.
type TangledFile struct {
	// Path is the destination file path relative to the output directory.
	Path string

	// Content is the fully rendered file content.
	Content string
}
