package ast

// Sum is an n-ary addition. In a canonical simple expression it is never
// empty, never a singleton, never contains a nested Sum, and contains at
// most one Const child (placed first).
type Sum struct {
	Children []Expr
}

// NewSum builds a Sum node from the given children, taken as-is (no
// flattening or sorting: that is the simplifier's job, not the tree's).
func NewSum(children ...Expr) *Sum { return &Sum{Children: children} }

func (s *Sum) Terms() []Expr { return s.Children }

func (s *Sum) String() string {
	if len(s.Children) == 0 {
		return "0"
	}
	out := s.Children[0].String()
	for _, c := range s.Children[1:] {
		out += "+" + c.String()
	}
	return out
}

func (s *Sum) Equal(other Expr) bool {
	o, ok := other.(*Sum)
	if !ok || len(s.Children) != len(o.Children) {
		return false
	}
	for i := range s.Children {
		if !s.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

func (s *Sum) Clone() Expr {
	children := make([]Expr, len(s.Children))
	for i, c := range s.Children {
		children[i] = c.Clone()
	}
	return &Sum{Children: children}
}

func (s *Sum) Variables() []string {
	var out []string
	for _, c := range s.Children {
		out = append(out, c.Variables()...)
	}
	return out
}

func (s *Sum) Type() ExprType { return TypeSum }

// Product is an n-ary multiplication. In a canonical simple expression it is
// never empty, never a singleton, never contains a nested Product, never
// contains Const(0) (the whole product would have collapsed to 0), and
// contains at most one Const child (placed first).
type Product struct {
	Children []Expr
}

// NewProduct builds a Product node from the given children, taken as-is.
func NewProduct(children ...Expr) *Product { return &Product{Children: children} }

func (p *Product) Terms() []Expr { return p.Children }

func (p *Product) String() string {
	if len(p.Children) == 0 {
		return "1"
	}
	out := p.Children[0].String()
	for _, c := range p.Children[1:] {
		out += "*" + c.String()
	}
	return out
}

func (p *Product) Equal(other Expr) bool {
	o, ok := other.(*Product)
	if !ok || len(p.Children) != len(o.Children) {
		return false
	}
	for i := range p.Children {
		if !p.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

func (p *Product) Clone() Expr {
	children := make([]Expr, len(p.Children))
	for i, c := range p.Children {
		children[i] = c.Clone()
	}
	return &Product{Children: children}
}

func (p *Product) Variables() []string {
	var out []string
	for _, c := range p.Children {
		out = append(out, c.Variables()...)
	}
	return out
}

func (p *Product) Type() ExprType { return TypeProduct }
