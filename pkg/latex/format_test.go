package latex

import (
	"math/big"
	"testing"

	"github.com/casforge/algebra/pkg/ast"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expr
		expected string
	}{
		{"integer constant", ast.NewConstInt(5), `5`},
		{"fraction constant", ast.NewConstFrac(big.NewInt(1), big.NewInt(2)), `\frac{1}{2}`},
		{"symbol", ast.NewSymbol("x"), `x`},
		{"sum", ast.NewSum(ast.NewSymbol("x"), ast.NewConstInt(1)), `x + 1`},
		{"product of symbols", ast.NewProduct(ast.NewConstInt(2), ast.NewSymbol("x")), `2 \cdot x`},
		{"power", ast.NewPow(ast.NewSymbol("x"), ast.NewConstInt(2)), `(x)^{2}`},
		{"factorial has no parens", ast.NewFactorial(ast.NewSymbol("n")), `n!`},
		{"function call", ast.NewFunction("f", ast.NewSymbol("x"), ast.NewSymbol("y")), `f(x, y)`},
		{
			"sum nested in product gets parenthesized",
			ast.NewProduct(ast.NewSum(ast.NewSymbol("x"), ast.NewConstInt(1)), ast.NewSymbol("y")),
			`(x + 1) \cdot y`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.expr)
			if got != tt.expected {
				t.Errorf("Format(%s) = %s, want %s", tt.expr.String(), got, tt.expected)
			}
		})
	}
}

func TestFormatEmptyProductPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Format to panic on an empty Product")
		}
	}()
	Format(ast.NewProduct())
}
