// Package document parses markdown sources into candidate tangle fragments.
//
// It is a thin wrapper over the goldmark AST: the tangle engine only needs
// the fenced code blocks that are direct children of the document root,
// each with its info string (the would-be tangle address) and raw body.
//
// Fragments nested inside block quotes, list items, or any other structural
// wrapper are intentionally excluded. Documents often show illustrative
// nested examples that must never be tangled, so the walk inspects only
// root-level children and refuses to recurse.
package document

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fragment is one top-level fenced code block found in a document.
type Fragment struct {
	// Info is the fence's info string, e.g. "rust" or "tangle:///lib.rs?at=a".
	Info string

	// Body is the fenced content with the closing fence's line terminator
	// stripped: a fragment ending without a newline stays that way, and an
	// empty fence yields an empty body. Otherwise byte-exact, no trimming.
	Body string

	// Line is the 1-based line number of the opening fence.
	Line int
}

// Parser extracts fragments from markdown documents. The zero value is not
// usable, construct with NewParser. A Parser is safe for reuse across
// documents.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a markdown fragment parser.
func NewParser() *Parser {
	return &Parser{md: goldmark.New()}
}

// Parse returns the top-level fenced code blocks of source in document
// order. Malformed markdown never fails: goldmark produces a best-effort
// tree and anything that is not a root-level fenced block simply yields no
// fragments.
func (p *Parser) Parse(source []byte) []Fragment {
	root := p.md.Parser().Parse(text.NewReader(source))

	var fragments []Fragment
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		fcb, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			// Quote, list, heading, paragraph: never recursed into.
			continue
		}
		fragments = append(fragments, Fragment{
			Info: fenceInfo(fcb, source),
			Body: fenceBody(fcb, source),
			Line: fenceLine(fcb, source),
		})
	}
	return fragments
}

// fenceInfo returns the fence's info string, empty for bare fences.
func fenceInfo(fcb *ast.FencedCodeBlock, source []byte) string {
	if fcb.Info == nil {
		return ""
	}
	return string(fcb.Info.Segment.Value(source))
}

// fenceBody concatenates the fence's content lines and strips the final
// line terminator, which belongs to the fence rather than the fragment.
func fenceBody(fcb *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// fenceLine computes the 1-based line of the opening fence from the info
// segment offset, falling back to the first content line.
func fenceLine(fcb *ast.FencedCodeBlock, source []byte) int {
	offset := -1
	if fcb.Info != nil {
		offset = fcb.Info.Segment.Start
	} else if fcb.Lines().Len() > 0 {
		offset = fcb.Lines().At(0).Start
	}
	if offset < 0 || offset > len(source) {
		return 0
	}
	return 1 + bytes.Count(source[:offset], []byte("\n"))
}
