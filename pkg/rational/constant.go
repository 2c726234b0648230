// Package rational implements the arbitrary-precision rational arithmetic
// kernel the simplifier folds constants through.
package rational

import (
	"fmt"
	"math/big"
)

// Constant is an arbitrary-precision rational number, always held in lowest
// terms with a positive denominator. The zero Constant is not valid; use
// NewInt or NewFrac to construct one.
//
// zeroDenom marks a Constant built from a zero denominator (e.g.
// NewFrac(1, 0)); big.Rat itself panics if asked to represent such a value,
// so it is tracked separately instead of inside r. Every other method on
// Constant assumes IsZeroDenom is false; callers check it immediately after
// construction, the same way the simplifier does for a parsed literal.
type Constant struct {
	r         *big.Rat
	zeroDenom bool
}

// NewInt builds a Constant holding an integer value.
func NewInt(n int64) Constant {
	return Constant{r: new(big.Rat).SetInt64(n)}
}

// NewBigInt builds a Constant from an arbitrary-precision integer.
func NewBigInt(n *big.Int) Constant {
	return Constant{r: new(big.Rat).SetInt(n)}
}

// NewFrac builds a Constant from a numerator and denominator, reducing to
// lowest terms. A zero denominator is preserved rather than rejected so that
// callers can detect it via IsZeroDenom and raise Undefined themselves.
func NewFrac(num, denom *big.Int) Constant {
	if denom.Sign() == 0 {
		return Constant{zeroDenom: true}
	}
	return Constant{r: new(big.Rat).SetFrac(num, denom)}
}

// Zero is the additive identity.
func Zero() Constant { return NewInt(0) }

// One is the multiplicative identity.
func One() Constant { return NewInt(1) }

// IsZeroDenom reports whether this Constant was built from a zero
// denominator and so can never be used in arithmetic.
func (c Constant) IsZeroDenom() bool {
	return c.zeroDenom
}

// Num returns the numerator in lowest terms.
func (c Constant) Num() *big.Int { return c.r.Num() }

// Denom returns the denominator in lowest terms (always positive).
func (c Constant) Denom() *big.Int { return c.r.Denom() }

// IsInteger reports whether the denominator is 1.
func (c Constant) IsInteger() bool {
	return c.r.IsInt()
}

// AsInt returns the integer value and true when IsInteger is true.
func (c Constant) AsInt() (*big.Int, bool) {
	if !c.r.IsInt() {
		return nil, false
	}
	return new(big.Int).Set(c.r.Num()), true
}

// IsZero reports whether the value is exactly 0.
func (c Constant) IsZero() bool { return c.r.Sign() == 0 }

// IsOne reports whether the value is exactly 1.
func (c Constant) IsOne() bool { return c.r.Cmp(big.NewRat(1, 1)) == 0 }

// IsPositive reports whether the value is strictly greater than 0.
func (c Constant) IsPositive() bool { return c.r.Sign() > 0 }

// IsNegative reports whether the value is strictly less than 0.
func (c Constant) IsNegative() bool { return c.r.Sign() < 0 }

// Add returns c + other.
func (c Constant) Add(other Constant) Constant {
	return Constant{r: new(big.Rat).Add(c.r, other.r)}
}

// Sub returns c - other.
func (c Constant) Sub(other Constant) Constant {
	return Constant{r: new(big.Rat).Sub(c.r, other.r)}
}

// Mul returns c * other.
func (c Constant) Mul(other Constant) Constant {
	return Constant{r: new(big.Rat).Mul(c.r, other.r)}
}

// Neg returns -c.
func (c Constant) Neg() Constant {
	return Constant{r: new(big.Rat).Neg(c.r)}
}

// Inv returns 1/c. The caller must ensure c is nonzero.
func (c Constant) Inv() Constant {
	return Constant{r: new(big.Rat).Inv(c.r)}
}

// Pow raises c to an integer power n, which may be negative (via Inv) or
// zero. Returns ok=false when n < 0 and c is zero (division by zero).
func (c Constant) Pow(n *big.Int) (Constant, bool) {
	if n.Sign() == 0 {
		return One(), true
	}
	if c.IsZero() && n.Sign() < 0 {
		return Constant{}, false
	}
	abs := new(big.Int).Abs(n)
	if !abs.IsInt64() {
		// A symbolic engine never needs exponents this large; treat as
		// unrepresentable rather than spin on a huge big.Int loop.
		return Constant{}, false
	}
	result := big.NewRat(1, 1)
	base := new(big.Rat).Set(c.r)
	e := abs.Int64()
	for e > 0 {
		if e&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		e >>= 1
	}
	out := Constant{r: result}
	if n.Sign() < 0 {
		out = out.Inv()
	}
	return out, true
}

// Cmp compares c and other, returning -1, 0, or 1.
func (c Constant) Cmp(other Constant) int {
	return c.r.Cmp(other.r)
}

// Equal reports structural (and so numeric, since Constants are always
// reduced) equality.
func (c Constant) Equal(other Constant) bool {
	if c.zeroDenom || other.zeroDenom {
		return c.zeroDenom == other.zeroDenom
	}
	return c.r.Cmp(other.r) == 0
}

// String renders the constant the way the rest of the engine's String()
// methods render basic and simple expressions: plain decimal for integers,
// "num/denom" otherwise.
func (c Constant) String() string {
	if c.zeroDenom {
		return "undefined"
	}
	if c.r.IsInt() {
		return c.r.Num().String()
	}
	return fmt.Sprintf("%s/%s", c.r.Num().String(), c.r.Denom().String())
}
