package ast

// Compare implements the canonical total order of simple expressions (and,
// by the same rules, basic expressions): -1 if a < b, 0 if equal, 1 if
// a > b. It is a direct port of the priority list, including the
// intentional reverse-lexicographic vs. forward-lexicographic asymmetry
// between Sum/Product children and Function arguments — see DESIGN.md.
func Compare(a, b Expr) int {
	if a.Equal(b) {
		return 0
	}

	ac, aIsConst := a.(*Const)
	bc, bIsConst := b.(*Const)
	switch {
	case aIsConst && bIsConst:
		return ac.Value.Cmp(bc.Value)
	case aIsConst:
		return -1
	case bIsConst:
		return 1
	}

	ap, aIsProduct := a.(*Product)
	bp, bIsProduct := b.(*Product)
	switch {
	case aIsProduct && bIsProduct:
		return cmpList(ap.Children, bp.Children)
	case aIsProduct:
		return cmpList(ap.Children, []Expr{b})
	case bIsProduct:
		return cmpList([]Expr{a}, bp.Children)
	}

	apow, aIsPow := a.(*Pow)
	bpow, bIsPow := b.(*Pow)
	if aIsPow || bIsPow {
		abase, aexp := asPowParts(a, apow, aIsPow)
		bbase, bexp := asPowParts(b, bpow, bIsPow)
		if c := Compare(abase, bbase); c != 0 {
			return c
		}
		return Compare(aexp, bexp)
	}

	asum, aIsSum := a.(*Sum)
	bsum, bIsSum := b.(*Sum)
	switch {
	case aIsSum && bIsSum:
		return cmpList(asum.Children, bsum.Children)
	case aIsSum:
		return cmpList(asum.Children, []Expr{b})
	case bIsSum:
		return cmpList([]Expr{a}, bsum.Children)
	}

	af, aIsFact := a.(*Factorial)
	bf, bIsFact := b.(*Factorial)
	if aIsFact || bIsFact {
		if aIsFact && bIsFact {
			return Compare(af.X, bf.X)
		}
		if aIsFact {
			if af.X.Equal(b) {
				return 1
			}
			return Compare(af.X, b)
		}
		// bIsFact
		if bf.X.Equal(a) {
			return -1
		}
		return Compare(a, bf.X)
	}

	afn, aIsFn := a.(*Function)
	bfn, bIsFn := b.(*Function)
	if aIsFn && bIsFn {
		if afn.Name != bfn.Name {
			return stringCompare(afn.Name, bfn.Name)
		}
		return compareListFwd(afn.Args, bfn.Args)
	}
	if aIsFn {
		bs, ok := b.(*Symbol)
		if ok {
			if afn.Name == bs.Name {
				return 1
			}
			return stringCompare(afn.Name, bs.Name)
		}
	}
	if bIsFn {
		as, ok := a.(*Symbol)
		if ok {
			if as.Name == bfn.Name {
				return -1
			}
			return stringCompare(as.Name, bfn.Name)
		}
	}

	asym, aIsSym := a.(*Symbol)
	bsym, bIsSym := b.(*Symbol)
	if aIsSym && bIsSym {
		return stringCompare(asym.Name, bsym.Name)
	}

	// Neg only ever appears in basic (pre-simplified) expressions; treat it
	// as the equivalent Product[-1, x] the way original_source's BasicExpr
	// Ord impl does, so ordering is still total on basic trees used for
	// error messages and round-trip tests.
	if an, ok := a.(*Neg); ok {
		return Compare(NewProduct(NewConstInt(-1), an.X), b)
	}
	if bn, ok := b.(*Neg); ok {
		return Compare(a, NewProduct(NewConstInt(-1), bn.X))
	}

	// Unreachable given the closed variant set above; a deterministic
	// fallback is safer than a panic in a total-order primitive.
	return stringCompare(a.String(), b.String())
}

func asPowParts(e Expr, p *Pow, isPow bool) (base, exp Expr) {
	if isPow {
		return p.Base, p.Exponent
	}
	return e, NewConstInt(1)
}

// cmpList implements rule 2/4: pair a and b by forward index over their
// common prefix (a[:n]/b[:n], n = min(len(a), len(b))), then visit those
// pairs in reverse order, returning on the first non-equal pair; a tie over
// the whole common prefix falls back to comparing lengths. This mirrors
// cmp_list's `a.iter().zip(b.iter()).rev()` exactly: zip (which truncates to
// the shorter list from the front) reverses only the order pairs are
// visited in, not which elements get paired.
func cmpList(a, b []Expr) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := n - 1; i >= 0; i-- {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// compareListFwd implements rule 6's explicit forward-lexicographic
// comparison for Function arguments.
func compareListFwd(a, b []Expr) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func stringCompare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
