package ast

import "testing"

func TestEqualAndClone(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
	}{
		{"const", NewConstInt(3)},
		{"symbol", NewSymbol("x")},
		{"neg", NewNeg(NewSymbol("x"))},
		{"sum", NewSum(NewSymbol("x"), NewConstInt(1))},
		{"product", NewProduct(NewConstInt(2), NewSymbol("x"))},
		{"pow", NewPow(NewSymbol("x"), NewConstInt(2))},
		{"factorial", NewFactorial(NewSymbol("n"))},
		{"function", NewFunction("sin", NewSymbol("x"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clone := tt.expr.Clone()
			if !tt.expr.Equal(clone) {
				t.Errorf("clone of %s does not equal original", tt.expr.String())
			}
			if !tt.expr.Equal(tt.expr) {
				t.Errorf("%s does not equal itself", tt.expr.String())
			}
		})
	}
}

func TestVariables(t *testing.T) {
	expr := NewSum(NewSymbol("x"), NewProduct(NewConstInt(2), NewSymbol("y")))
	vars := expr.Variables()
	if len(vars) != 2 || vars[0] != "x" || vars[1] != "y" {
		t.Errorf("got %v, want [x y]", vars)
	}
}

func TestExprTypeString(t *testing.T) {
	if NewConstInt(1).Type().String() != "Const" {
		t.Errorf("expected Const")
	}
	if NewSymbol("x").Type().String() != "Symbol" {
		t.Errorf("expected Symbol")
	}
}
