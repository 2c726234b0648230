// Package config holds the runtime knobs shared by the command-line host:
// parse depth limit, verbosity, and where results are written.
package config

import "io"

// Config collects the settings populated from cobra flags in cmd/cas.
type Config struct {
	// MaxParseDepth bounds recursive-descent nesting; see parser.DefaultMaxDepth.
	MaxParseDepth int
	// Verbose enables debug-level logging.
	Verbose bool
	// Out is where formatted results are written.
	Out io.Writer
}

// Default returns the configuration used when no flags override it.
func Default(out io.Writer) Config {
	return Config{
		MaxParseDepth: 500,
		Verbose:       false,
		Out:           out,
	}
}
