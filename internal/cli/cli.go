// Package cli implements the lit command-line interface.
//
// The surface is deliberately small: one root command taking an input
// directory and an optional output directory, mirroring classic literate
// programming tools. All commands support --verbose (-v) for debug-level
// logging; loggers travel through context.Context.
//
//	lit docs/              # tangle docs/ into docs/out/
//	lit docs/ build/src    # tangle docs/ into build/src
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lit/pkg/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	opts := tangleOpts{}

	root := &cobra.Command{
		Use:   "lit <input-dir> [output-dir]",
		Short: "lit tangles literate markdown into source files",
		Long: `lit is a literate programming tool: it extracts tangle-addressed fenced
code blocks from markdown documents and reassembles them into standalone
source files, deterministically ordered by position key.

A fragment is addressed with a tangle URL in the fence info string:

    ` + "```tangle:///src/lib.rs?at=a" + `
    // this lands at position "a" in src/lib.rs
    ` + "```" + `

Fragments without ?at= land at the implicit middle position "m". Output
defaults to <input-dir>/out.`,
		Version:      buildinfo.Version,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := withLogger(cmd.Context(), c.Logger)
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.input = args[0]
			if len(args) == 2 {
				opts.output = args[1]
			}
			return c.runTangle(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.Flags().StringVar(&opts.extension, "extension", "", `document extension to tangle (default ".md", or lit.toml)`)

	return root
}
