package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/lit/pkg/document"
	"github.com/matzehuels/lit/pkg/errors"
	pkgio "github.com/matzehuels/lit/pkg/io"
	"github.com/matzehuels/lit/pkg/source"
	"github.com/matzehuels/lit/pkg/tangle"
)

// Runner executes tangle runs. It holds no per-run state: each Execute call
// builds a fresh aggregator, so multiple goroutines can safely share one
// Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete discover → parse → aggregate → render → write
// pipeline. Any validation, aggregation, or I/O failure aborts the run
// before anything is written.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}
	logger := opts.Logger.With("run_id", result.RunID[:8])

	// Stage 1: Discover
	discoverStart := time.Now()
	docs, err := source.Discover(opts.InputDir, opts.Extension, opts.OutputDir)
	if err != nil {
		return nil, err
	}
	result.Stats.Documents = len(docs)
	result.Stats.DiscoverTime = time.Since(discoverStart)

	logger.Info("discovered documents",
		"input", opts.InputDir,
		"documents", len(docs),
		"duration", result.Stats.DiscoverTime)

	// Stage 2+3: Parse and aggregate. A single validating fold over every
	// fragment of every document; the first error aborts the run.
	parseStart := time.Now()
	agg := tangle.NewAggregator()
	parser := document.NewParser()

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := r.aggregateDocument(parser, agg, doc)
		if err != nil {
			return nil, err
		}
		result.Stats.Fragments += n
		logger.Debug("parsed document", "path", doc, "fragments", n)
	}
	result.Stats.ParseTime = time.Since(parseStart)

	logger.Info("aggregated fragments",
		"fragments", result.Stats.Fragments,
		"destinations", len(agg.Destinations()),
		"duration", result.Stats.ParseTime)

	// Stage 4: Render
	renderStart := time.Now()
	result.Files = agg.Files()
	result.Stats.OutputFiles = len(result.Files)
	result.Stats.RenderTime = time.Since(renderStart)

	// Stage 5: Write
	writeStart := time.Now()
	if err := pkgio.WriteFiles(opts.OutputDir, result.Files); err != nil {
		return nil, err
	}
	result.Stats.WriteTime = time.Since(writeStart)

	logger.Info("wrote tangled files",
		"output", opts.OutputDir,
		"files", result.Stats.OutputFiles,
		"duration", result.Stats.WriteTime)

	return result, nil
}

// aggregateDocument parses one document and folds its tangle fragments into
// the aggregator. Returns the number of tangle-addressed fragments found.
func (r *Runner) aggregateDocument(parser *document.Parser, agg *tangle.Aggregator, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "read document %s", path)
	}

	count := 0
	for _, frag := range parser.Parse(data) {
		origin := tangle.Origin{File: path, Line: frag.Line}

		addr, ok, err := tangle.ParseAddress(frag.Info)
		if err != nil {
			return 0, fmt.Errorf("fragment at %s: %w", origin, err)
		}
		if !ok {
			// Ordinary illustrative code block.
			continue
		}

		if err := agg.Insert(tangle.NewBlock(addr, frag.Body, origin)); err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
