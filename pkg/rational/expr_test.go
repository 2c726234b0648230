package rational

import (
	"math/big"
	"testing"
)

func TestExprSimplify(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		ok       bool
		expected string
	}{
		{"const", ConstExpr{C: NewInt(3)}, true, "3"},
		{"mul", MulExpr{Terms: []Expr{ConstExpr{C: NewInt(2)}, ConstExpr{C: NewInt(3)}}}, true, "6"},
		{"add", AddExpr{Terms: []Expr{ConstExpr{C: NewInt(2)}, ConstExpr{C: NewInt(3)}}}, true, "5"},
		{"zero denom propagates undefined", ConstExpr{C: NewFrac(big.NewInt(1), big.NewInt(0))}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := tt.expr.Simplify()
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && result.String() != tt.expected {
				t.Errorf("got %s, want %s", result.String(), tt.expected)
			}
		})
	}
}

func TestAddFlattensNestedAddExpr(t *testing.T) {
	a := AddExpr{Terms: []Expr{ConstExpr{C: NewInt(1)}, ConstExpr{C: NewInt(2)}}}
	combined := Add(a, ConstExpr{C: NewInt(3)})
	flat, ok := combined.(AddExpr)
	if !ok {
		t.Fatalf("expected Add to return an AddExpr")
	}
	if len(flat.Terms) != 3 {
		t.Errorf("expected nested AddExpr to flatten into 3 terms, got %d", len(flat.Terms))
	}
	result, ok := combined.Simplify()
	if !ok || result.String() != "6" {
		t.Errorf("got %v (ok=%v), want 6", result, ok)
	}
}
