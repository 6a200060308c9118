package nummatch

import (
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// MaxPowerBits bounds the size of exact powers. A power whose numerator or
// denominator would need more bits than this fails with ErrTooLarge.
const MaxPowerBits = 1 << 20

// Exact is an immutable arbitrary-precision rational number. The zero value
// is 0. Equality is by value, so 2/4 and 1/2 are the same Exact.
type Exact struct {
	// r is never modified after construction. nil means zero.
	r *big.Rat
}

var bigOne = big.NewInt(1)

// NewExact creates an Exact with an integer value.
func NewExact(n int64) Exact {
	return Exact{new(big.Rat).SetInt64(n)}
}

// Frac creates an Exact with the value num/den. Panics if den is 0.
func Frac(num, den int64) Exact {
	if den == 0 {
		panic("nummatch: zero denominator")
	}
	return Exact{big.NewRat(num, den)}
}

// FromRat creates an Exact with the value of r. The Exact does not retain r.
func FromRat(r *big.Rat) Exact {
	return Exact{new(big.Rat).Set(r)}
}

// FromInt creates an Exact with the value of n. The Exact does not retain n.
func FromInt(n *big.Int) Exact {
	return Exact{new(big.Rat).SetInt(n)}
}

// ParseExact parses a decimal literal like "12", "3.14", or ".5", or a
// fraction like "22/7".
func ParseExact(s string) (Exact, error) {
	t := s
	if strings.HasPrefix(t, ".") {
		t = "0" + t
	}
	if t == "" || strings.ContainsAny(t, "eEpPxX_") {
		return Exact{}, &NumberError{Text: s}
	}
	r, ok := new(big.Rat).SetString(t)
	if !ok {
		return Exact{}, &NumberError{Text: s}
	}
	return Exact{r}, nil
}

// MustExact is like ParseExact but panics if s is not a number.
func MustExact(s string) Exact {
	x, err := ParseExact(s)
	if err != nil {
		panic(err)
	}
	return x
}

// rat returns x's value for reading. The result must not be modified.
func (x Exact) rat() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

// Rat returns a copy of x's value.
func (x Exact) Rat() *big.Rat {
	return new(big.Rat).Set(x.rat())
}

// Num returns a copy of x's numerator, which carries the sign.
func (x Exact) Num() *big.Int {
	return new(big.Int).Set(x.rat().Num())
}

// Denom returns a copy of x's denominator, which is always positive.
func (x Exact) Denom() *big.Int {
	return new(big.Int).Set(x.rat().Denom())
}

// Add returns x + y.
func (x Exact) Add(y Exact) Exact {
	return Exact{new(big.Rat).Add(x.rat(), y.rat())}
}

// Sub returns x - y.
func (x Exact) Sub(y Exact) Exact {
	return Exact{new(big.Rat).Sub(x.rat(), y.rat())}
}

// Mul returns x * y.
func (x Exact) Mul(y Exact) Exact {
	return Exact{new(big.Rat).Mul(x.rat(), y.rat())}
}

// Quo returns x / y. The error is ErrDivideByZero if y is 0.
func (x Exact) Quo(y Exact) (Exact, error) {
	if y.Sign() == 0 {
		return Exact{}, ErrDivideByZero
	}
	return Exact{new(big.Rat).Quo(x.rat(), y.rat())}, nil
}

// Neg returns -x.
func (x Exact) Neg() Exact {
	return Exact{new(big.Rat).Neg(x.rat())}
}

// Sign returns -1, 0, or 1 according to the sign of x.
func (x Exact) Sign() int {
	return x.rat().Sign()
}

// Cmp compares x and y, returning -1, 0, or 1.
func (x Exact) Cmp(y Exact) int {
	return x.rat().Cmp(y.rat())
}

// Equal reports whether x and y have the same value.
func (x Exact) Equal(y Exact) bool {
	return x.Cmp(y) == 0
}

// IsInt reports whether x is an integer.
func (x Exact) IsInt() bool {
	return x.rat().IsInt()
}

// Int returns x as an integer. ok is false if x is not an integer.
func (x Exact) Int() (n *big.Int, ok bool) {
	if !x.IsInt() {
		return nil, false
	}
	return x.Num(), true
}

// String formats x as an integer or a reduced fraction, e.g. "7" or "-1/3".
func (x Exact) String() string {
	return x.rat().RatString()
}

// Decimal formats x as a terminating decimal, e.g. "3.14". ok is false if x
// has no terminating decimal expansion.
func (x Exact) Decimal() (s string, ok bool) {
	r := x.rat()
	if r.IsInt() {
		return r.Num().String(), true
	}
	d := new(big.Int).Set(r.Denom())
	twos := d.TrailingZeroBits()
	d.Rsh(d, twos)
	fives := uint(0)
	five := big.NewInt(5)
	var q, m big.Int
	for {
		q.QuoRem(d, five, &m)
		if m.Sign() != 0 {
			break
		}
		d.Set(&q)
		fives++
	}
	if d.Cmp(bigOne) != 0 {
		return "", false
	}
	digits := twos
	if fives > digits {
		digits = fives
	}
	return r.FloatString(int(digits)), true
}

// Root returns the n-th root of x, i.e. x^(1/n).
func (x Exact) Root(n Exact) (Exact, error) {
	e, err := NewExact(1).Quo(n)
	if err != nil {
		return Exact{}, err
	}
	return x.Pow(e)
}

// Pow returns x^y. The result must be rational: if y is not an integer, then
// x must be a perfect power of y's denominator. Errors are ErrDivideByZero for
// a negative power of 0, ErrIrrational for a result that is not rational, and
// ErrTooLarge for a result that would exceed MaxPowerBits.
func (x Exact) Pow(y Exact) (Exact, error) {
	b := x.rat()
	p, q := y.rat().Num(), y.rat().Denom()
	if b.Sign() == 0 {
		switch p.Sign() {
		case 0:
			return NewExact(1), nil
		case -1:
			return Exact{}, ErrDivideByZero
		}
		return Exact{}, nil
	}
	base := x
	if q.Cmp(bigOne) != 0 {
		r, err := x.root(q)
		if err != nil {
			return Exact{}, err
		}
		base = r
	}
	return base.powInt(p)
}

// root computes the q-th root of x for q > 1. x must be nonzero.
func (x Exact) root(q *big.Int) (Exact, error) {
	b := x.rat()
	if b.Sign() < 0 && q.Bit(0) == 0 {
		// Even root of a negative number.
		return Exact{}, ErrIrrational
	}
	num := new(big.Int).Abs(b.Num())
	rn, ok := intRoot(num, q)
	if !ok {
		return Exact{}, ErrIrrational
	}
	rd, ok := intRoot(b.Denom(), q)
	if !ok {
		return Exact{}, ErrIrrational
	}
	if b.Sign() < 0 {
		rn.Neg(rn)
	}
	return Exact{new(big.Rat).SetFrac(rn, rd)}, nil
}

// intRoot finds the integer q-th root of a > 0, if there is one.
func intRoot(a, q *big.Int) (*big.Int, bool) {
	if a.Cmp(bigOne) == 0 {
		return big.NewInt(1), true
	}
	// Any root of a > 1 is at least 2, and 2^q > a once q reaches a's bit
	// length, so there is nothing to find.
	if !q.IsInt64() || q.Int64() >= int64(a.BitLen()) {
		return nil, false
	}
	n := q.Int64()
	if n == 2 {
		s := new(big.Int).Sqrt(a)
		if new(big.Int).Mul(s, s).Cmp(a) != 0 {
			return nil, false
		}
		return s, true
	}
	x := rootEstimate(a, n)
	// Integer Newton iteration decreases monotonically from an overestimate
	// to the floor of the root.
	k := big.NewInt(n)
	k1 := big.NewInt(n - 1)
	var t, y big.Int
	for t.Exp(x, k, nil).Cmp(a) < 0 {
		x.Lsh(x, 1)
	}
	for {
		t.Exp(x, k1, nil)
		y.Quo(a, &t)
		t.Mul(x, k1)
		y.Add(&y, &t)
		y.Quo(&y, k)
		if y.Cmp(x) >= 0 {
			break
		}
		x.Set(&y)
	}
	if t.Exp(x, k, nil).Cmp(a) != 0 {
		return nil, false
	}
	return x, true
}

// rootEstimate returns an overestimate of the n-th root of a > 1 within a
// relative error of about 2^-40. Only the top bits of a are used, so the cost
// does not grow with the size of a.
func rootEstimate(a *big.Int, n int64) *big.Int {
	const prec = 64
	// a = m * 2^s with m holding the leading bits. Split s = n*qs + rs so that
	// the root is (m * 2^rs)^(1/n) * 2^qs.
	s := int64(a.BitLen()) - prec
	if s < 0 {
		s = 0
	}
	qs, rs := s/n, s%n
	m := new(big.Int).Rsh(a, uint(s))
	// The dropped bits make m at most one too small.
	m.Add(m, bigOne)
	f := new(big.Float).SetPrec(prec).SetInt(m)
	f.SetMantExp(f, int(rs))
	e := new(big.Float).SetPrec(prec).SetInt64(n)
	e.Quo(new(big.Float).SetPrec(prec).SetInt64(1), e)
	z := new(big.Float).SetPrec(prec)
	bigfloat.Pow(z, f, e)
	// Slack for rounding in the estimate.
	z.Mul(z, big.NewFloat(1+1.0/(1<<40)))
	z.SetMantExp(z, int(qs))
	x, _ := z.Int(nil)
	return x.Add(x, bigOne)
}

// powInt computes x^p for integer p.
func (x Exact) powInt(p *big.Int) (Exact, error) {
	b := x.rat()
	switch {
	case p.Sign() == 0:
		return NewExact(1), nil
	case p.Cmp(bigOne) == 0:
		return x, nil
	case b.IsInt() && b.Num().IsInt64() && (b.Num().Int64() == 1 || b.Num().Int64() == -1):
		// ±1 to any power is ±1, however large the power.
		if b.Sign() > 0 || p.Bit(0) == 0 {
			return NewExact(1), nil
		}
		return NewExact(-1), nil
	}
	k := new(big.Int).Abs(p)
	bits := b.Num().BitLen()
	if d := b.Denom().BitLen(); d > bits {
		bits = d
	}
	if !k.IsInt64() || k.Int64() > MaxPowerBits || int64(bits-1)*k.Int64() > MaxPowerBits {
		return Exact{}, ErrTooLarge
	}
	n := new(big.Int).Exp(b.Num(), k, nil)
	d := new(big.Int).Exp(b.Denom(), k, nil)
	if p.Sign() < 0 {
		n, d = d, n
	}
	return Exact{new(big.Rat).SetFrac(n, d)}, nil
}
