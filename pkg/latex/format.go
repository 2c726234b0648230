// Package latex renders a simple expression as LaTeX.
package latex

import (
	"strings"

	"github.com/casforge/algebra/pkg/ast"
)

// Format renders expr as LaTeX per §4.8's contracts. Format panics if it
// encounters an empty Product, which invariant 4 guarantees cannot occur in
// a canonical simple expression — a non-canonical input is a programmer
// error, not a data error.
func Format(expr ast.Expr) string {
	return formatExpr(expr)
}

func formatExpr(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.Const:
		return formatConstant(v)
	case *ast.Symbol:
		return v.Name
	case *ast.Neg:
		return `-` + formatMaybeParen(v.X)
	case *ast.Sum:
		return formatSum(v)
	case *ast.Product:
		return formatProduct(v)
	case *ast.Pow:
		return formatPow(v)
	case *ast.Factorial:
		return formatExpr(v.X) + `!`
	case *ast.Function:
		return formatFunction(v)
	default:
		panic("latex: unhandled expression variant")
	}
}

// formatConstant renders an integer plainly and a non-integer rational as
// \frac{num}{denom}.
func formatConstant(c *ast.Const) string {
	if c.Value.IsInteger() {
		return c.Value.Num().String()
	}
	return `\frac{` + c.Value.Num().String() + `}{` + c.Value.Denom().String() + `}`
}

func formatSum(s *ast.Sum) string {
	parts := make([]string, len(s.Children))
	for i, c := range s.Children {
		parts[i] = formatExpr(c)
	}
	return strings.Join(parts, ` + `)
}

func formatProduct(p *ast.Product) string {
	if len(p.Children) == 0 {
		panic("latex: empty Product cannot be printed (invariant 4 guarantees this is unreachable for canonical input)")
	}
	parts := make([]string, len(p.Children))
	for i, c := range p.Children {
		parts[i] = formatMaybeParen(c)
	}
	return strings.Join(parts, ` \cdot `)
}

// formatPow always parenthesizes the base, matching the printer's own
// reference implementation, and renders the exponent as a brace group.
func formatPow(p *ast.Pow) string {
	return `(` + formatExpr(p.Base) + `)^{` + formatExpr(p.Exponent) + `}`
}

func formatFunction(f *ast.Function) string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = formatExpr(a)
	}
	return f.Name + `(` + strings.Join(args, `, `) + `)`
}

// formatMaybeParen wraps a Sum or a negative constant in parentheses before
// printing it as a Product factor, since naively joining "x+1 \cdot 2" would
// otherwise read as ambiguous LaTeX.
func formatMaybeParen(e ast.Expr) string {
	needsParen := false
	switch v := e.(type) {
	case *ast.Sum:
		needsParen = true
	case *ast.Const:
		needsParen = v.Value.IsNegative()
	}
	inner := formatExpr(e)
	if needsParen {
		return `(` + inner + `)`
	}
	return inner
}
