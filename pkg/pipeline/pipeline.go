// Package pipeline provides the core tangle pipeline for lit.
//
// This package implements the complete discover → parse → aggregate →
// render → write pipeline driven by the CLI. By centralizing this logic we
// ensure consistent behavior and failure semantics for every entry point.
//
// # Architecture
//
// The pipeline is linear, with no branching persistence:
//
//  1. Discover: enumerate candidate markdown documents under the input dir
//  2. Parse: extract top-level fenced code blocks and their tangle addresses
//  3. Aggregate: fold all blocks into one per-run aggregator, validating
//     addresses and rejecting duplicate position keys
//  4. Render: produce final content per destination, ordered by position
//  5. Write: create directories and write every tangled file
//
// Rendering and writing only happen after every document has parsed and
// aggregated successfully: a failing run writes nothing.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{InputDir: "docs"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range result.Files {
//	    fmt.Println(f.Path)
//	}
package pipeline

import (
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lit/pkg/errors"
	"github.com/matzehuels/lit/pkg/source"
	"github.com/matzehuels/lit/pkg/tangle"
)

// DefaultOutputSubdir is the directory created under the input dir when no
// explicit output dir is given, matching the CLI's documented default.
const DefaultOutputSubdir = "out"

// Options contains all configuration for a tangle run.
type Options struct {
	// InputDir is the directory scanned recursively for documents. Required.
	InputDir string

	// OutputDir receives the tangled files. Defaults to InputDir/out.
	OutputDir string

	// Extension filters discovered documents. Defaults to ".md".
	Extension string

	// Logger receives progress output. Defaults to a discard logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.InputDir == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "input directory is required")
	}
	if o.OutputDir == "" {
		o.OutputDir = filepath.Join(o.InputDir, DefaultOutputSubdir)
	}
	if o.Extension == "" {
		o.Extension = source.DefaultExtension
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a tangle run.
type Result struct {
	// RunID identifies this run in log output.
	RunID string

	// Files are the rendered output files, in first-seen destination order.
	Files []tangle.TangledFile

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Documents   int
	Fragments   int
	OutputFiles int

	DiscoverTime time.Duration
	ParseTime    time.Duration
	RenderTime   time.Duration
	WriteTime    time.Duration
}

// TotalTime sums the per-stage durations.
func (s Stats) TotalTime() time.Duration {
	return s.DiscoverTime + s.ParseTime + s.RenderTime + s.WriteTime
}
