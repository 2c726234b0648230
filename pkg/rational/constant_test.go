package rational

import (
	"math/big"
	"testing"
)

func TestConstantArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Constant
		op       func(a, b Constant) Constant
		expected string
	}{
		{"add integers", NewInt(2), NewInt(3), Constant.Add, "5"},
		{"add fractions", NewFrac(big.NewInt(1), big.NewInt(2)), NewFrac(big.NewInt(1), big.NewInt(3)), Constant.Add, "5/6"},
		{"sub to negative", NewInt(1), NewInt(5), Constant.Sub, "-4"},
		{"mul fractions", NewFrac(big.NewInt(2), big.NewInt(3)), NewFrac(big.NewInt(3), big.NewInt(4)), Constant.Mul, "1/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.op(tt.a, tt.b)
			if result.String() != tt.expected {
				t.Errorf("got %s, want %s", result.String(), tt.expected)
			}
		})
	}
}

func TestConstantPow(t *testing.T) {
	tests := []struct {
		name     string
		base     Constant
		exp      int64
		ok       bool
		expected string
	}{
		{"square", NewInt(3), 2, true, "9"},
		{"zero exponent", NewInt(5), 0, true, "1"},
		{"negative exponent", NewInt(2), -2, true, "1/4"},
		{"zero to positive", NewInt(0), 3, true, "0"},
		{"zero to negative is undefined", NewInt(0), -1, false, ""},
		{"fraction base", NewFrac(big.NewInt(2), big.NewInt(3)), 3, true, "8/27"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := tt.base.Pow(big.NewInt(tt.exp))
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && result.String() != tt.expected {
				t.Errorf("got %s, want %s", result.String(), tt.expected)
			}
		})
	}
}

func TestNewFracZeroDenom(t *testing.T) {
	c := NewFrac(big.NewInt(1), big.NewInt(0))
	if !c.IsZeroDenom() {
		t.Errorf("expected zero-denominator constant to report IsZeroDenom")
	}
}

func TestConstantCmp(t *testing.T) {
	a := NewFrac(big.NewInt(1), big.NewInt(2))
	b := NewFrac(big.NewInt(2), big.NewInt(3))
	if a.Cmp(b) >= 0 {
		t.Errorf("expected 1/2 < 2/3")
	}
	if a.Cmp(a) != 0 {
		t.Errorf("expected a.Cmp(a) == 0")
	}
}
