package ast

// Pow is exponentiation. The constructor performs no simplification at all;
// every normalization rule in §4.5/§3.3 invariant 8 lives exclusively in the
// simplifier, so a Pow built directly from the parser and one built by the
// simplifier look identical until Simplify runs.
type Pow struct {
	Base     Expr
	Exponent Expr
}

// NewPow builds a Pow node.
func NewPow(base, exponent Expr) *Pow { return &Pow{Base: base, Exponent: exponent} }

func (p *Pow) String() string {
	return "(" + p.Base.String() + ")^(" + p.Exponent.String() + ")"
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.Base.Equal(o.Base) && p.Exponent.Equal(o.Exponent)
}

func (p *Pow) Clone() Expr { return &Pow{Base: p.Base.Clone(), Exponent: p.Exponent.Clone()} }

func (p *Pow) Variables() []string {
	return append(p.Base.Variables(), p.Exponent.Variables()...)
}

func (p *Pow) Type() ExprType { return TypePow }
