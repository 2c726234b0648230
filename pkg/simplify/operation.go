package simplify

import (
	log "github.com/sirupsen/logrus"

	"github.com/casforge/algebra/pkg/ast"
	"github.com/casforge/algebra/pkg/rational"
)

// operation is the capability record the shared merge skeleton is
// parameterized over. Sum and Product are the two package-level values
// declared in ops.go; this is a direct Go rendition of the Operation trait's two impls
// from the teacher's upstream design — a struct of function values instead
// of an interface, since there are exactly two instances and never a third,
// so dynamic dispatch buys nothing.
type operation struct {
	name string

	hasAbsorbingElement bool
	isAbsorbingElement  func(ast.Expr) bool

	identity   func() ast.Expr
	isIdentity func(rational.Constant) bool

	isList         func(ast.Expr) bool
	tryExtractList func(ast.Expr) ([]ast.Expr, bool)
	makeList       func([]ast.Expr) ast.Expr

	doConstant func(a, b rational.Constant) rational.Constant

	// collect implements the op-specific like-term rule (§4.4). It returns
	// (result, true, nil) when the rule fires, (nil, false, nil) when it
	// does not apply, or a non-nil error on Undefined poisoning.
	collect func(a, b ast.Expr) ([]ast.Expr, bool, error)
}

func (op operation) extractOrMakeList(x ast.Expr) []ast.Expr {
	if list, ok := op.tryExtractList(x); ok {
		return list
	}
	return []ast.Expr{x}
}

// simplifyPair is simplify_pair: given a, b in canonical order, returns a
// sorted list of length 0, 1, or 2 equivalent to op(a, b).
func (op operation) simplifyPair(a, b ast.Expr) ([]ast.Expr, error) {
	if op.isList(a) || op.isList(b) {
		return op.merge(op.extractOrMakeList(a), op.extractOrMakeList(b))
	}

	ac, aIsConst := a.(*ast.Const)
	bc, bIsConst := b.(*ast.Const)

	if aIsConst && bIsConst {
		result := op.doConstant(ac.Value, bc.Value)
		if op.isIdentity(result) {
			return nil, nil
		}
		return []ast.Expr{ast.NewConst(result)}, nil
	}
	if aIsConst && op.isIdentity(ac.Value) {
		return []ast.Expr{b}, nil
	}
	if bIsConst && op.isIdentity(bc.Value) {
		return []ast.Expr{a}, nil
	}

	if result, fired, err := op.collect(a, b); err != nil {
		return nil, err
	} else if fired {
		return result, nil
	}

	if ast.Compare(b, a) < 0 {
		return []ast.Expr{b, a}, nil
	}
	return []ast.Expr{a, b}, nil
}

// simplifyRec is simplify_rec: exprs has length >= 2.
func (op operation) simplifyRec(exprs []ast.Expr) ([]ast.Expr, error) {
	if len(exprs) == 2 {
		return op.simplifyPair(exprs[0], exprs[1])
	}
	first := op.extractOrMakeList(exprs[0])
	rest, err := op.simplifyRec(exprs[1:])
	if err != nil {
		return nil, err
	}
	return op.merge(first, rest)
}

// Simplify is the entry point described in §4.3: exprs must already be
// individually simplified and sorted by canonical order.
func (op operation) Simplify(exprs []ast.Expr) (ast.Expr, error) {
	if op.hasAbsorbingElement {
		for _, e := range exprs {
			if op.isAbsorbingElement(e) {
				return ast.NewConstInt(0), nil
			}
		}
	}

	if len(exprs) == 0 {
		return op.identity(), nil
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}

	log.Debugf("simplify.%s: merging %d children", op.name, len(exprs))

	list, err := op.simplifyRec(exprs)
	if err != nil {
		return nil, err
	}

	switch len(list) {
	case 0:
		return op.identity(), nil
	case 1:
		return list[0], nil
	default:
		return op.makeList(list), nil
	}
}

// merge is the entry-point wrapper around mergeInto described in §4.3's
// sorted-merge algorithm; a and b are each already sorted.
func (op operation) merge(a, b []ast.Expr) ([]ast.Expr, error) {
	out := make([]ast.Expr, 0, len(a)+len(b))
	if err := op.mergeInto(a, b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (op operation) mergeInto(a, b []ast.Expr, out *[]ast.Expr) error {
	if len(b) == 0 {
		*out = append(*out, a...)
		return nil
	}
	if len(a) == 0 {
		*out = append(*out, b...)
		return nil
	}

	aHead, aRest := a[0], a[1:]
	bHead, bRest := b[0], b[1:]

	// would_swap records which side the larger of the pair came from, so
	// that when simplifyPair returns two elements (no collection fired) the
	// larger one is reinserted into the tail it originally belonged to —
	// this is what keeps both tails individually sorted going into the next
	// recursive step.
	wouldSwap := ast.Compare(aHead, bHead) > 0

	simplified, err := op.simplifyPair(aHead, bHead)
	if err != nil {
		return err
	}

	switch len(simplified) {
	case 0:
		return op.mergeInto(aRest, bRest, out)
	case 1:
		*out = append(*out, simplified[0])
		return op.mergeInto(aRest, bRest, out)
	case 2:
		first, second := simplified[0], simplified[1]
		if wouldSwap {
			aRest = append([]ast.Expr{second}, aRest...)
		} else {
			bRest = append([]ast.Expr{second}, bRest...)
		}
		*out = append(*out, first)
		return op.mergeInto(aRest, bRest, out)
	default:
		panic("simplify: nested same-op children should have been flattened before reaching merge")
	}
}
