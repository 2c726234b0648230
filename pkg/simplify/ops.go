package simplify

import (
	"github.com/casforge/algebra/pkg/ast"
	"github.com/casforge/algebra/pkg/rational"
)

// Product is the multiplication operation capability.
var Product operation

// Sum is the addition operation capability.
var Sum operation

func init() {
	Product = operation{
		name:                "product",
		hasAbsorbingElement: true,
		isAbsorbingElement: func(e ast.Expr) bool {
			c, ok := e.(*ast.Const)
			return ok && c.Value.IsZero()
		},
		identity:   func() ast.Expr { return ast.NewConstInt(1) },
		isIdentity: func(c rational.Constant) bool { return c.IsOne() },
		isList: func(e ast.Expr) bool {
			_, ok := e.(*ast.Product)
			return ok
		},
		tryExtractList: func(e ast.Expr) ([]ast.Expr, bool) {
			p, ok := e.(*ast.Product)
			if !ok {
				return nil, false
			}
			return p.Children, true
		},
		makeList:   func(xs []ast.Expr) ast.Expr { return ast.NewProduct(xs...) },
		doConstant: func(a, b rational.Constant) rational.Constant { return a.Mul(b) },
		collect:    productCollect,
	}

	Sum = operation{
		name:                "sum",
		hasAbsorbingElement: false,
		isAbsorbingElement:  func(ast.Expr) bool { return false },
		identity:            func() ast.Expr { return ast.NewConstInt(0) },
		isIdentity:          func(c rational.Constant) bool { return c.IsZero() },
		isList: func(e ast.Expr) bool {
			_, ok := e.(*ast.Sum)
			return ok
		},
		tryExtractList: func(e ast.Expr) ([]ast.Expr, bool) {
			s, ok := e.(*ast.Sum)
			if !ok {
				return nil, false
			}
			return s.Children, true
		},
		makeList:   func(xs []ast.Expr) ast.Expr { return ast.NewSum(xs...) },
		doConstant: func(a, b rational.Constant) rational.Constant { return a.Add(b) },
		collect:    sumCollect,
	}
}

// productCollect is §4.4's "Product collect": two children with the same
// base combine their exponents.
func productCollect(a, b ast.Expr) ([]ast.Expr, bool, error) {
	aBase, aHasBase := base(a)
	bBase, bHasBase := base(b)
	if !aHasBase || !bHasBase || !aBase.Equal(bBase) {
		return nil, false, nil
	}

	aExp, _ := exponent(a)
	bExp, _ := exponent(b)

	combinedExp, err := Sum.Simplify(stableSort([]ast.Expr{aExp, bExp}))
	if err != nil {
		return nil, false, err
	}

	result, err := simplifyPower(aBase, combinedExp)
	if err != nil {
		return nil, false, err
	}

	if c, ok := result.(*ast.Const); ok && c.Value.IsOne() {
		return nil, true, nil
	}
	return []ast.Expr{result}, true, nil
}

// sumCollect is §4.4's "Sum collect": two children with equal symbolic part
// combine their rational coefficients, deferred through a rational.Expr so
// the arithmetic only commits once the symbolic parts are confirmed equal.
func sumCollect(a, b ast.Expr) ([]ast.Expr, bool, error) {
	aCoeff, aSym := splitProduct(a)
	bCoeff, bSym := splitProduct(b)

	if !aSym.Equal(bSym) {
		return nil, false, nil
	}

	sum := rational.Add(rational.ConstExpr{C: aCoeff.Value}, rational.ConstExpr{C: bCoeff.Value})
	coeff, ok := sum.Simplify()
	if !ok {
		return nil, false, ErrUndefined
	}

	switch {
	case coeff.IsZero():
		// The combined coefficient cancels the term entirely; this is the
		// sum-collect analogue of two constants summing to the additive
		// identity in simplifyPair's "both constants" case.
		return []ast.Expr{}, true, nil
	case coeff.IsOne():
		return []ast.Expr{bSym}, true, nil
	default:
		// A constant always sorts before any non-constant (§4.2 rule 1),
		// so (coeff, symbolic...) is already in canonical order. A Product
		// symbolic part is spliced in rather than nested.
		factors := append([]ast.Expr{ast.NewConst(coeff)}, Product.extractOrMakeList(bSym)...)
		return []ast.Expr{ast.NewProduct(factors...)}, true, nil
	}
}
