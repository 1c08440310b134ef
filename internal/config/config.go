// Package config loads optional per-project settings for lit.
//
// A project may carry a lit.toml next to its documents (in the input
// directory). All fields are optional; command-line arguments take
// precedence over the file, and the file takes precedence over built-in
// defaults.
//
//	# lit.toml
//	extension = ".markdown"
//	output = "generated"
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lit/pkg/errors"
)

// Filename is the config file looked up in the input directory.
const Filename = "lit.toml"

// Config holds optional project-level settings.
type Config struct {
	// Extension filters discovered documents (default ".md").
	Extension string `toml:"extension"`

	// Output is the output directory, relative to the input directory
	// unless absolute (default "out").
	Output string `toml:"output"`
}

// Load reads lit.toml from inputDir. A missing file yields a zero Config
// and no error; a present but malformed file is a configuration error.
func Load(inputDir string) (Config, error) {
	path := filepath.Join(inputDir, Filename)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate rejects obviously broken settings early, before any documents
// are parsed.
func (c Config) validate() error {
	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		return errors.New(errors.ErrCodeInvalidConfig, "extension must start with a dot: %q", c.Extension)
	}
	return nil
}

// ResolveOutput returns the effective output directory: the explicit CLI
// argument if given, otherwise the configured one (resolved against
// inputDir when relative), otherwise empty to let the pipeline default
// apply.
func (c Config) ResolveOutput(inputDir, cliOutput string) string {
	if cliOutput != "" {
		return cliOutput
	}
	if c.Output == "" {
		return ""
	}
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(inputDir, c.Output)
}
