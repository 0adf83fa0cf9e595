package config

import (
	"fmt"
	"os"

	"github.com/CodeContextHQ/ccc/traverse"
)

// Config holds every setting the CLI accepts. Values come from the config
// file and environment; explicitly set command-line flags take precedence.
type Config struct {
	// Roots are the project roots used for root-relative import
	// resolution. Order is priority order: the first root with an
	// existing candidate wins.
	Roots []string `mapstructure:"roots"`

	// MaxDepth bounds the number of expansion rounds beyond the mandatory
	// first one. -1 removes the bound.
	MaxDepth int `mapstructure:"max_depth"`

	// SigTokens caps the token count of the signatures section. 0 means
	// unlimited.
	SigTokens int `mapstructure:"sig_tokens"`

	// SigOnly renders signatures for the named files themselves instead
	// of full content plus dependency signatures.
	SigOnly bool `mapstructure:"sig_only"`

	// SigDetailed includes fields and constant bindings in signatures.
	SigDetailed bool `mapstructure:"sig_detailed"`

	// Output is the bundle destination file; empty means stdout.
	Output string `mapstructure:"output"`

	// Find is a doublestar glob pattern selecting additional primary
	// files.
	Find string `mapstructure:"find"`

	Verbose bool `mapstructure:"verbose"`
}

// Validate checks constraints that must hold before traversal starts.
// Root validation happens here, at configuration time; the traversal engine
// assumes the roots it receives exist.
func (c *Config) Validate() error {
	for _, root := range c.Roots {
		info, err := os.Stat(root)
		if err != nil {
			return fmt.Errorf("root path does not exist: %s", root)
		}
		if !info.IsDir() {
			return fmt.Errorf("root path is not a directory: %s", root)
		}
	}

	if c.MaxDepth < traverse.UnlimitedDepth {
		return fmt.Errorf("max_depth must be -1 (unlimited) or a non-negative integer, got: %d", c.MaxDepth)
	}

	if c.SigTokens < 0 {
		return fmt.Errorf("sig_tokens must be a non-negative integer, got: %d", c.SigTokens)
	}

	return nil
}
