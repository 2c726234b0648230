// Package simplify implements the term-rewriting engine that turns a basic
// algebraic expression into a canonical simple expression.
package simplify

import (
	log "github.com/sirupsen/logrus"

	"github.com/casforge/algebra/pkg/ast"
)

// Simplify rewrites a basic expression (the parser's output) into canonical
// simple-expression form (§3.3), or reports ErrUndefined when any
// sub-expression is mathematically indeterminate.
func Simplify(expr ast.Expr) (ast.Expr, error) {
	switch e := expr.(type) {
	case *ast.Const:
		if e.Value.IsZeroDenom() {
			return nil, ErrUndefined
		}
		return e, nil

	case *ast.Symbol:
		return e, nil

	case *ast.Neg:
		// §4.6: Neg(x) simplifies as Product[-1, x] — see design note (c).
		x, err := Simplify(e.X)
		if err != nil {
			return nil, err
		}
		return Simplify(ast.NewProduct(ast.NewConstInt(-1), x))

	case *ast.Pow:
		base, err := Simplify(e.Base)
		if err != nil {
			return nil, err
		}
		exp, err := Simplify(e.Exponent)
		if err != nil {
			return nil, err
		}
		return simplifyPower(base, exp)

	case *ast.Sum:
		children, err := simplifyChildren(e.Children)
		if err != nil {
			return nil, err
		}
		log.Debugf("simplify: Sum of %d children", len(children))
		return Sum.Simplify(stableSort(children))

	case *ast.Product:
		children, err := simplifyChildren(e.Children)
		if err != nil {
			return nil, err
		}
		log.Debugf("simplify: Product of %d children", len(children))
		return Product.Simplify(stableSort(children))

	case *ast.Factorial:
		x, err := Simplify(e.X)
		if err != nil {
			return nil, err
		}
		return ast.NewFactorial(x), nil

	case *ast.Function:
		args := make([]ast.Expr, len(e.Args))
		for i, a := range e.Args {
			simplified, err := Simplify(a)
			if err != nil {
				return nil, err
			}
			args[i] = simplified
		}
		return ast.NewFunction(e.Name, args...), nil

	default:
		panic("simplify: unhandled expression variant")
	}
}

func simplifyChildren(children []ast.Expr) ([]ast.Expr, error) {
	out := make([]ast.Expr, len(children))
	for i, c := range children {
		simplified, err := Simplify(c)
		if err != nil {
			return nil, err
		}
		out[i] = simplified
	}
	return out, nil
}
