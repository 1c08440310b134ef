package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/lit/internal/config"
	"github.com/matzehuels/lit/pkg/pipeline"
)

// tangleOpts holds the command-line inputs for a tangle run.
type tangleOpts struct {
	input     string // input directory (required positional)
	output    string // output directory (optional positional)
	extension string // document extension override
}

// runTangle loads project config, resolves effective options, and executes
// the tangle pipeline.
func (c *CLI) runTangle(ctx context.Context, opts tangleOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(opts.input)
	if err != nil {
		return err
	}

	extension := opts.extension
	if extension == "" {
		extension = cfg.Extension
	}

	pipeOpts := pipeline.Options{
		InputDir:  opts.input,
		OutputDir: cfg.ResolveOutput(opts.input, opts.output),
		Extension: extension,
		Logger:    logger,
	}
	if err := pipeOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	logger.Info("Reading markdown files", "input", pipeOpts.InputDir)
	logger.Info("Writing tangled files", "output", pipeOpts.OutputDir)

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, pipeOpts)
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Tangled %d fragments from %d documents into %d files",
		result.Stats.Fragments, result.Stats.Documents, result.Stats.OutputFiles))
	return nil
}
