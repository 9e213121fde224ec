package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// File is the subset of Config settable from an HCL config file. Every
// attribute is optional; nil means "not set" so flag values win.
//
// Example:
//
//	alphabet   = digits
//	dot        = "out.dot"
//	listing    = true
//	log_level  = "debug"
//	log_format = "text"
type File struct {
	Alphabet  *string `hcl:"alphabet,optional"`
	Dot       *string `hcl:"dot,optional"`
	Listing   *bool   `hcl:"listing,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
}

// LoadFile parses and decodes an HCL config file.
//
// The eval context provides named constants for common alphabets, so a
// config can say `alphabet = alnum` instead of spelling out 62 characters.
func LoadFile(path string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %s", path, diags.Error())
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, evalContext(), &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %s", path, diags.Error())
	}
	return &f, nil
}

// Apply overlays the file's values onto cfg, leaving already-set (non-zero)
// cfg fields alone: flags take precedence over the config file.
func (f *File) Apply(cfg *Config) {
	if cfg.Alphabet == "" && f.Alphabet != nil {
		cfg.Alphabet = *f.Alphabet
	}
	if cfg.DotPath == "" && f.Dot != nil {
		cfg.DotPath = *f.Dot
	}
	if !cfg.Listing && f.Listing != nil {
		cfg.Listing = *f.Listing
	}
	if cfg.LogLevel == "" && f.LogLevel != nil {
		cfg.LogLevel = *f.LogLevel
	}
	if cfg.LogFormat == "" && f.LogFormat != nil {
		cfg.LogFormat = *f.LogFormat
	}
}

// evalContext exposes the named alphabet constants available to config
// expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"lowercase": cty.StringVal("abcdefghijklmnopqrstuvwxyz"),
			"uppercase": cty.StringVal("ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
			"digits":    cty.StringVal("0123456789"),
			"alnum": cty.StringVal("0123456789" +
				"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
				"abcdefghijklmnopqrstuvwxyz"),
		},
	}
}
