package rational

import "math/big"

// Expr is an unevaluated tree over Constants. Sum-collection builds these
// instead of eagerly folding arithmetic, so that two coefficients are only
// combined once their symbolic parts have been confirmed equal.
type Expr interface {
	// Simplify folds the tree down to a single Constant, or reports that
	// doing so is mathematically undefined (division by zero).
	Simplify() (Constant, bool)
}

// ConstExpr wraps an already-known Constant.
type ConstExpr struct{ C Constant }

// MulExpr is a deferred product of sub-expressions.
type MulExpr struct{ Terms []Expr }

// AddExpr is a deferred sum of sub-expressions.
type AddExpr struct{ Terms []Expr }

// PowExpr is a deferred integer power.
type PowExpr struct {
	Base Expr
	Exp  *big.Int
}

func (e ConstExpr) Simplify() (Constant, bool) {
	if e.C.IsZeroDenom() {
		return Constant{}, false
	}
	return e.C, true
}

func (e MulExpr) Simplify() (Constant, bool) {
	acc := One()
	for _, t := range e.Terms {
		c, ok := t.Simplify()
		if !ok {
			return Constant{}, false
		}
		acc = acc.Mul(c)
	}
	return acc, true
}

func (e AddExpr) Simplify() (Constant, bool) {
	acc := Zero()
	for _, t := range e.Terms {
		c, ok := t.Simplify()
		if !ok {
			return Constant{}, false
		}
		acc = acc.Add(c)
	}
	return acc, true
}

func (e PowExpr) Simplify() (Constant, bool) {
	base, ok := e.Base.Simplify()
	if !ok {
		return Constant{}, false
	}
	return base.Pow(e.Exp)
}

// Add builds a deferred sum of two rational expressions, flattening nested
// AddExpr on either side so the tree doesn't grow unboundedly deep across a
// long chain of like-term collections.
func Add(a, b Expr) Expr {
	terms := make([]Expr, 0, 2)
	if aa, ok := a.(AddExpr); ok {
		terms = append(terms, aa.Terms...)
	} else {
		terms = append(terms, a)
	}
	if ba, ok := b.(AddExpr); ok {
		terms = append(terms, ba.Terms...)
	} else {
		terms = append(terms, b)
	}
	return AddExpr{Terms: terms}
}
