package ast

import "testing"

func TestCompareConstantsFirst(t *testing.T) {
	c := NewConstInt(5)
	x := NewSymbol("x")
	if Compare(c, x) >= 0 {
		t.Errorf("expected a constant to sort before a symbol")
	}
	if Compare(x, c) <= 0 {
		t.Errorf("expected a symbol to sort after a constant")
	}
}

func TestCompareSymbolsByName(t *testing.T) {
	x := NewSymbol("x")
	y := NewSymbol("y")
	if Compare(x, y) >= 0 {
		t.Errorf("expected x < y")
	}
	if Compare(y, x) <= 0 {
		t.Errorf("expected y > x")
	}
	if Compare(x, NewSymbol("x")) != 0 {
		t.Errorf("expected equal symbols to compare equal")
	}
}

func TestCompareSumsReverseLexicographic(t *testing.T) {
	// x+y vs x+z: compare rightmost children first (y vs z).
	a := NewSum(NewSymbol("x"), NewSymbol("y"))
	b := NewSum(NewSymbol("x"), NewSymbol("z"))
	if Compare(a, b) >= 0 {
		t.Errorf("expected x+y < x+z under reverse-lexicographic order")
	}
}

func TestCompareFunctionArgsForwardLexicographic(t *testing.T) {
	// f(x,y) vs f(x,z): compare leftmost args first, unlike Sum/Product.
	a := NewFunction("f", NewSymbol("x"), NewSymbol("y"))
	b := NewFunction("f", NewSymbol("x"), NewSymbol("z"))
	if Compare(a, b) >= 0 {
		t.Errorf("expected f(x,y) < f(x,z) under forward-lexicographic order")
	}
}

func TestCompareProductVsSymbolMismatchedArity(t *testing.T) {
	// 2*x vs x: cmp_list pairs the front element of the longer list
	// (Const(2)) against the singleton (Symbol(x)), not the tail elements,
	// so a constant-led product sorts before the bare symbol: 2x < x.
	twoX := NewProduct(NewConstInt(2), NewSymbol("x"))
	x := NewSymbol("x")
	if Compare(twoX, x) >= 0 {
		t.Errorf("expected 2*x < x, got Compare = %d", Compare(twoX, x))
	}
	if Compare(x, twoX) <= 0 {
		t.Errorf("expected x > 2*x, got Compare = %d", Compare(x, twoX))
	}

	// z vs 2*a: the singleton pairs against the front element of the
	// longer list (Const(2)) whichever side it is on, so the constant-led
	// product again sorts first: z > 2*a.
	z := NewSymbol("z")
	twoA := NewProduct(NewConstInt(2), NewSymbol("a"))
	if Compare(z, twoA) <= 0 {
		t.Errorf("expected z > 2*a, got Compare = %d", Compare(z, twoA))
	}
	if Compare(twoA, z) >= 0 {
		t.Errorf("expected 2*a < z, got Compare = %d", Compare(twoA, z))
	}
}

func TestCompareIsTotalOrder(t *testing.T) {
	exprs := []Expr{
		NewConstInt(1),
		NewConstInt(2),
		NewSymbol("x"),
		NewSymbol("y"),
		NewProduct(NewConstInt(2), NewSymbol("x")),
		NewPow(NewSymbol("x"), NewConstInt(2)),
		NewSum(NewSymbol("x"), NewSymbol("y")),
		NewFactorial(NewSymbol("x")),
		NewFunction("f", NewSymbol("x")),
	}
	for i, a := range exprs {
		for j, b := range exprs {
			got := Compare(a, b)
			want := -Compare(b, a)
			if got != want {
				t.Errorf("Compare(%d,%d)=%d is not antisymmetric with Compare(%d,%d)=%d", i, j, got, j, i, -got)
			}
			if i == j && got != 0 {
				t.Errorf("Compare(%d,%d) should be 0 for identical expressions", i, j)
			}
		}
	}
}
