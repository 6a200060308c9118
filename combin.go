package nummatch

import "math/big"

// MaxFactorial is the largest number of factors any combinatorial function
// will multiply. Larger requests fail with ErrTooLarge.
const MaxFactorial = 10000

// smallInt converts x to a non-negative int64 for counting. The error is
// ErrNotInteger, ErrNegative, or ErrTooLarge.
func smallInt(x Exact) (int64, error) {
	n, ok := x.Int()
	if !ok {
		return 0, ErrNotInteger
	}
	if n.Sign() < 0 {
		return 0, ErrNegative
	}
	if !n.IsInt64() {
		return 0, ErrTooLarge
	}
	return n.Int64(), nil
}

// Factorial computes n!.
func Factorial(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	if n > MaxFactorial {
		return nil, ErrTooLarge
	}
	if n < 2 {
		return big.NewInt(1), nil
	}
	return new(big.Int).MulRange(1, n), nil
}

// MultiFactorial computes the k-step factorial n(n-k)(n-2k)..., stopping at
// the last positive factor. MultiFactorial(n, 1) is n! and
// MultiFactorial(n, 2) is the double factorial n!!.
func MultiFactorial(n, k int64) (*big.Int, error) {
	if n < 0 || k <= 0 {
		return nil, ErrNegative
	}
	if n/k > MaxFactorial {
		return nil, ErrTooLarge
	}
	r := big.NewInt(1)
	var f big.Int
	for ; n > 1; n -= k {
		r.Mul(r, f.SetInt64(n))
	}
	return r, nil
}

// Permutations computes nPr = n!/(n-r)!, the number of ordered selections of
// r items from n.
func Permutations(n, r int64) (*big.Int, error) {
	if n < 0 || r < 0 {
		return nil, ErrNegative
	}
	if r > n {
		return nil, ErrOutOfRange
	}
	if r > MaxFactorial {
		return nil, ErrTooLarge
	}
	if r == 0 {
		return big.NewInt(1), nil
	}
	return new(big.Int).MulRange(n-r+1, n), nil
}

// Combinations computes nCr = nPr/r!, the number of unordered selections of r
// items from n. It uses C(n, r) = C(n, n-r) to keep r at most n/2.
func Combinations(n, r int64) (*big.Int, error) {
	if n < 0 || r < 0 {
		return nil, ErrNegative
	}
	if r > n {
		return nil, ErrOutOfRange
	}
	if r > n/2 {
		r = n - r
	}
	p, err := Permutations(n, r)
	if err != nil {
		return nil, err
	}
	f, err := Factorial(r)
	if err != nil {
		return nil, err
	}
	return p.Quo(p, f), nil
}
