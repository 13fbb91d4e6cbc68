// Package bigrat is the numeric kernel of the analyzer: exact-precision
// integer and rational dense matrices, elementary row/column operations,
// Hermite (echelon) and Smith (diagonal) normal-form reduction, and
// lexicographic ordering of row vectors.
//
// Every value in this package is exact. No float64 arithmetic is performed
// anywhere here — that restriction is deliberate (see SPEC_FULL.md "Numeric
// precision"); floating point only ever appears downstream, in the text of
// emitted ceil/floor expressions.
package bigrat

import (
	"fmt"
	"math/big"
)

// Rat is a normalized exact rational number: denominator is always strictly
// positive, numerator and denominator share no common factor greater than
// one, and a zero value always carries denominator 1.
type Rat struct {
	num *big.Int
	den *big.Int
}

// NewRatInt returns the rational n/1.
func NewRatInt(n int64) Rat {
	return Rat{num: big.NewInt(n), den: big.NewInt(1)}
}

// NewRatBigInt returns the rational n/1 for an arbitrary-precision n.
func NewRatBigInt(n *big.Int) Rat {
	return normalizeRat(new(big.Int).Set(n), big.NewInt(1))
}

// NewRat returns the normalized rational num/den.
//
// Panics if den is zero: constructing a rational with a zero denominator is
// a programmer error, not a data-dependent outcome, so it is not reported
// via a sentinel.
func NewRat(num, den int64) Rat {
	return normalizeRat(big.NewInt(num), big.NewInt(den))
}

// NewRatFromBig returns the normalized rational num/den, taking ownership
// of neither argument (both are copied).
func NewRatFromBig(num, den *big.Int) Rat {
	return normalizeRat(new(big.Int).Set(num), new(big.Int).Set(den))
}

// ZeroRat is the additive identity.
var ZeroRat = NewRatInt(0)

// OneRat is the multiplicative identity.
var OneRat = NewRatInt(1)

// normalizeRat enforces the invariant documented on Rat, taking ownership of
// both arguments (neither is copied again).
func normalizeRat(num, den *big.Int) Rat {
	if den.Sign() == 0 {
		panic("bigrat: rational with zero denominator")
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return Rat{num: big.NewInt(0), den: big.NewInt(1)}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	if g.Cmp(bigOne) != 0 {
		num = new(big.Int).Quo(num, g)
		den = new(big.Int).Quo(den, g)
	}
	return Rat{num: num, den: den}
}

var bigOne = big.NewInt(1)

// Num returns the (already reduced) numerator.
func (r Rat) Num() *big.Int { return new(big.Int).Set(r.num) }

// Den returns the (already reduced, always positive) denominator.
func (r Rat) Den() *big.Int { return new(big.Int).Set(r.den) }

// IsZero reports whether r is the zero rational.
func (r Rat) IsZero() bool { return r.num.Sign() == 0 }

// Sign returns -1, 0 or +1 matching the sign of r.
func (r Rat) Sign() int { return r.num.Sign() }

// Add returns r + s.
func (r Rat) Add(s Rat) Rat {
	num := new(big.Int).Add(new(big.Int).Mul(r.num, s.den), new(big.Int).Mul(s.num, r.den))
	den := new(big.Int).Mul(r.den, s.den)
	return normalizeRat(num, den)
}

// Sub returns r - s.
func (r Rat) Sub(s Rat) Rat {
	num := new(big.Int).Sub(new(big.Int).Mul(r.num, s.den), new(big.Int).Mul(s.num, r.den))
	den := new(big.Int).Mul(r.den, s.den)
	return normalizeRat(num, den)
}

// Mul returns r * s.
func (r Rat) Mul(s Rat) Rat {
	num := new(big.Int).Mul(r.num, s.num)
	den := new(big.Int).Mul(r.den, s.den)
	return normalizeRat(num, den)
}

// Div returns r / s.
//
// Panics if s is zero (division by zero is a programmer/invariant error
// inside the numeric kernel).
func (r Rat) Div(s Rat) Rat {
	if s.IsZero() {
		panic("bigrat: division by zero rational")
	}
	num := new(big.Int).Mul(r.num, s.den)
	den := new(big.Int).Mul(r.den, s.num)
	return normalizeRat(num, den)
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{num: new(big.Int).Neg(r.num), den: new(big.Int).Set(r.den)}
}

// Cmp returns -1, 0 or +1 as r is less than, equal to, or greater than s.
func (r Rat) Cmp(s Rat) int {
	lhs := new(big.Int).Mul(r.num, s.den)
	rhs := new(big.Int).Mul(s.num, r.den)
	return lhs.Cmp(rhs)
}

// Equal reports whether r == s.
func (r Rat) Equal(s Rat) bool { return r.Cmp(s) == 0 }

// Less reports whether r < s.
func (r Rat) Less(s Rat) bool { return r.Cmp(s) < 0 }

// Max returns the greater of r and s.
func Max(r, s Rat) Rat {
	if r.Less(s) {
		return s
	}
	return r
}

// Min returns the lesser of r and s.
func Min(r, s Rat) Rat {
	if s.Less(r) {
		return s
	}
	return r
}

// IsInt reports whether r has denominator 1.
func (r Rat) IsInt() bool { return r.den.Cmp(bigOne) == 0 }

// Floor returns the greatest integer <= r.
func (r Rat) Floor() *big.Int {
	q, m := new(big.Int).QuoRem(r.num, r.den, new(big.Int))
	if m.Sign() != 0 && r.Sign() < 0 {
		q.Sub(q, bigOne)
	}
	return q
}

// Ceil returns the least integer >= r.
func (r Rat) Ceil() *big.Int {
	q, m := new(big.Int).QuoRem(r.num, r.den, new(big.Int))
	if m.Sign() != 0 && r.Sign() > 0 {
		q.Add(q, bigOne)
	}
	return q
}

// Float64 converts r to a float64 for emission into generated source text
// only (see package doc).
func (r Rat) Float64() float64 {
	f := new(big.Rat).SetFrac(r.num, r.den)
	v, _ := f.Float64()
	return v
}

// String renders r as "n" when integral, else "n/d".
func (r Rat) String() string {
	if r.IsInt() {
		return r.num.String()
	}
	return fmt.Sprintf("%s/%s", r.num.String(), r.den.String())
}
