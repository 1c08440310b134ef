package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/lit/pkg/errors"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, Filename), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load without lit.toml: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("cfg = %+v, want zero value", cfg)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "extension = \".markdown\"\noutput = \"generated\"\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Extension != ".markdown" {
		t.Errorf("Extension = %q, want .markdown", cfg.Extension)
	}
	if cfg.Output != "generated" {
		t.Errorf("Output = %q, want generated", cfg.Output)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "extension = [broken\n")

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load of malformed toml succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestLoadInvalidExtension(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "extension = \"md\"\n")

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load with dotless extension succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestResolveOutput(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		cliOutput string
		want      string
	}{
		{"cli wins", Config{Output: "generated"}, "explicit", "explicit"},
		{"config relative", Config{Output: "generated"}, "", filepath.Join("docs", "generated")},
		{"config absolute", Config{Output: "/tmp/outdir"}, "", "/tmp/outdir"},
		{"nothing set", Config{}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ResolveOutput("docs", tt.cliOutput); got != tt.want {
				t.Errorf("ResolveOutput = %q, want %q", got, tt.want)
			}
		})
	}
}
