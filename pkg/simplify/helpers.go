package simplify

import "github.com/casforge/algebra/pkg/ast"

// base returns the base of e per §3.3's definition: base(Pow(x,e)) = x,
// base(Const) = none, base(other) = other.
func base(e ast.Expr) (ast.Expr, bool) {
	switch v := e.(type) {
	case *ast.Pow:
		return v.Base, true
	case *ast.Const:
		return nil, false
	default:
		return e, true
	}
}

// exponent returns the exponent of e, defaulting to 1 for anything that
// isn't itself a Pow (and none for a bare constant, mirroring base).
func exponent(e ast.Expr) (ast.Expr, bool) {
	switch v := e.(type) {
	case *ast.Pow:
		return v.Exponent, true
	case *ast.Const:
		return nil, false
	default:
		return ast.NewConstInt(1), true
	}
}

// splitProduct splits a simplified, non-constant expression into its leading
// rational coefficient and its symbolic remainder, e.g. splitProduct(6*x) =
// (6, x) and splitProduct(x) = (1, x). Per §4.4, a pure constant has no
// symbolic part and must not reach sum-collection; callers guarantee that.
func splitProduct(e ast.Expr) (coeff *ast.Const, symbolic ast.Expr) {
	p, ok := e.(*ast.Product)
	if !ok {
		return ast.NewConstInt(1), e
	}

	var constPart *ast.Const
	var rest []ast.Expr
	for _, c := range p.Children {
		if cc, isConst := c.(*ast.Const); isConst {
			constPart = cc
			continue
		}
		rest = append(rest, c)
	}
	if constPart == nil {
		constPart = ast.NewConstInt(1)
	}
	switch len(rest) {
	case 0:
		panic("simplify: product with only constant parts should already be simplified to a single Const")
	case 1:
		return constPart, rest[0]
	default:
		return constPart, ast.NewProduct(rest...)
	}
}
