// Package pkg provides the core libraries for lit literate-programming
// tangling.
//
// # Overview
//
// lit extracts tangle-addressed code fragments from markdown documents and
// reassembles them into standalone source files. The pkg directory is
// organized into small, single-purpose packages:
//
//  1. [tangle] - Domain logic: addresses, positions, aggregation, rendering
//  2. [document] - Markdown fragment extraction (goldmark AST)
//  3. [source] - Document discovery on the filesystem
//  4. [io] - Writing tangled output files
//  5. [pipeline] - Orchestration (discover → parse → aggregate → render → write)
//
// # Architecture
//
// The typical data flow through lit:
//
//	Input directory
//	      ↓ source.Discover
//	Markdown documents
//	      ↓ document.Parser
//	Top-level fenced code blocks
//	      ↓ tangle.ParseAddress + Aggregator.Insert
//	Blocks grouped per destination
//	      ↓ tangle.Render
//	Final file contents
//	      ↓ io.WriteFiles
//	Output directory
//
// The whole run is a single validating fold: any malformed address,
// invalid position key, or duplicate key aborts before anything is
// written.
package pkg
