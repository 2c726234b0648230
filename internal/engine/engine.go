// Package engine wires the parser, simplifier, and LaTeX printer into the
// single entry point the CLI and any future host surface call through.
package engine

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/casforge/algebra/pkg/latex"
	"github.com/casforge/algebra/pkg/parser"
	"github.com/casforge/algebra/pkg/simplify"
)

// ParseAndSimplify parses text, simplifies it to canonical form, and renders
// the result as LaTeX. A mathematically undefined result (§7) is reported as
// the literal string "undefined" with a nil error, since it is a valid
// outcome of the computation rather than a failure to compute one; a
// malformed input instead comes back as a non-nil error.
func ParseAndSimplify(text string) (string, error) {
	return ParseAndSimplifyWithDepth(text, parser.DefaultMaxDepth)
}

// ParseAndSimplifyWithDepth is ParseAndSimplify with an explicit parse depth
// limit, used by the CLI's --max-depth flag.
func ParseAndSimplifyWithDepth(text string, maxDepth int) (string, error) {
	basic, err := parser.ParseWithDepth(text, maxDepth)
	if err != nil {
		return "", err
	}
	log.Debugf("engine: parsed %q", text)

	simple, err := simplify.Simplify(basic)
	if err != nil {
		if errors.Is(err, simplify.ErrUndefined) {
			return "undefined", nil
		}
		return "", err
	}
	log.Debugf("engine: simplified %q", text)

	return latex.Format(simple), nil
}
