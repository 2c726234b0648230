package ast

import (
	"math/big"

	"github.com/casforge/algebra/pkg/rational"
)

// Const is a literal rational constant.
type Const struct {
	Value rational.Constant
}

// NewConst wraps a rational.Constant as an Expr.
func NewConst(c rational.Constant) *Const { return &Const{Value: c} }

// NewConstInt is a convenience constructor for small integer literals, used
// throughout the simplifier (identity and absorbing elements, etc.).
func NewConstInt(n int64) *Const { return &Const{Value: rational.NewInt(n)} }

// NewConstFrac builds a Const directly from a numerator/denominator pair, as
// the parser does for integer literals. A zero denominator is kept (see
// rational.NewFrac) and reported as Undefined by the simplifier.
func NewConstFrac(num, denom *big.Int) *Const {
	return &Const{Value: rational.NewFrac(num, denom)}
}

func (c *Const) String() string { return c.Value.String() }

func (c *Const) Equal(other Expr) bool {
	o, ok := other.(*Const)
	return ok && c.Value.Equal(o.Value)
}

func (c *Const) Clone() Expr { return &Const{Value: c.Value} }

func (c *Const) Variables() []string { return nil }

func (c *Const) Type() ExprType { return TypeConst }
