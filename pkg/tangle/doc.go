// Package tangle implements the block-extraction and ordering engine for
// literate programming.
//
// # Overview
//
// Markdown documents can embed code fragments addressed to output files via
// fenced code blocks whose info string is a tangle address:
//
//	```tangle:///src/lib.rs?at=a
//	// Header comment
//	```
//
// The address names a destination path relative to the output directory and
// an optional position key controlling where the fragment lands within that
// file. Fragments without an explicit key receive the sentinel position "m"
// ("middle"), so unkeyed fragments sort between keys like "a" and "z".
//
// # Pipeline role
//
// The engine is a validating fold: every recognized fragment becomes a
// [Block] and is inserted into an [Aggregator], which groups blocks by
// destination and rejects duplicate explicit position keys at insertion
// time. Once all documents are aggregated, [Render] produces the final
// content for each destination: blocks sorted by position (stable, so
// sentinel-positioned blocks keep discovery order), joined by blank lines,
// with exactly one trailing newline.
//
// # Addressing
//
// Addresses are URLs with the "tangle" scheme and must be hostless:
//
//	tangle:///main.rs        destination main.rs, sentinel position
//	tangle:/main.rs          same (single-slash form)
//	tangle:///lib.rs?at=za   destination lib.rs, explicit position "za"
//	tangle://main.rs         ERROR: "main.rs" parses as an authority
//
// Any other scheme is not a tangle fragment and is skipped silently, so
// ordinary illustrative code blocks coexist with tangled ones.
package tangle
