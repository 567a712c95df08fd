// Package config loads run configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the recognized configuration surface. Hero and Files are
// required for a run but may arrive from flags instead of the file, so
// both are optional here and validated after merging.
type Config struct {
	Hero      string   `hcl:"hero,optional"`
	Files     []string `hcl:"files,optional"`
	InputDir  string   `hcl:"input_dir,optional"`
	OutputDir string   `hcl:"output_dir,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		InputDir:  "hand_histories",
		OutputDir: "plots",
	}
}

// Load reads HCL configuration from filename. A missing file is not an
// error; defaults are returned so flag-only invocations work.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", filename, diags.Error())
	}

	if cfg.InputDir == "" {
		cfg.InputDir = "hand_histories"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "plots"
	}
	return &cfg, nil
}
