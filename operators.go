package nummatch

import (
	"math/big"
	"sort"
)

// Fixity describes the positions in which an operator may appear. Operators
// that can appear in more than one position combine flags.
type Fixity uint8

const (
	// Prefix operators take one operand following them, e.g. -x or sqrt x.
	Prefix Fixity = 1 << iota
	// Infix operators take operands on both sides, e.g. x+y.
	Infix
	// Postfix operators take one operand preceding them, e.g. x!.
	Postfix
	// Function operators take a bracketed, comma-separated argument list,
	// e.g. root(3, x).
	Function
	// Open brackets start a group.
	Open
	// Close brackets end a group or argument list.
	Close
	// Separator separates function arguments.
	Separator
)

// Operator is the definition of an operator symbol: where it may appear, how
// tightly it binds, and what it computes.
type Operator struct {
	// Symbol is the canonical spelling.
	Symbol string
	// Fixity is the set of positions the operator may take.
	Fixity Fixity
	// LBP is the left binding power, i.e. how tightly the operator binds to
	// an expression on its left. Tokens that end expressions have 0.
	LBP int
	// PrefixBP is the binding power of the operand of a prefix operator.
	PrefixBP int
	// InfixBP is the binding power of the right operand of an infix operator.
	// It is one less than LBP for right-associative operators.
	InfixBP int
	// Arity is the number of arguments in function form.
	Arity int
	// Unary computes the operator applied to one operand, if it can be.
	Unary func(x Exact) (Exact, error)
	// Binary computes the operator applied to two operands, if it can be.
	Binary func(x, y Exact) (Exact, error)
}

// Canonical symbols that the parser and simplifier refer to.
const (
	symPow   = "^"
	symMul   = "*"
	symDiv   = "/"
	symSqrt  = "sqrt"
	symRoot  = "root"
	symOpen  = "("
	symClose = ")"
	symSep   = ","
)

// registry maps canonical symbols to definitions. It is never modified.
var registry = map[string]Operator{
	"+": {
		Symbol: "+", Fixity: Prefix | Infix, LBP: 10, PrefixBP: 20, InfixBP: 10,
		Unary:  func(x Exact) (Exact, error) { return x, nil },
		Binary: func(x, y Exact) (Exact, error) { return x.Add(y), nil },
	},
	"-": {
		Symbol: "-", Fixity: Prefix | Infix, LBP: 10, PrefixBP: 20, InfixBP: 10,
		Unary:  func(x Exact) (Exact, error) { return x.Neg(), nil },
		Binary: func(x, y Exact) (Exact, error) { return x.Sub(y), nil },
	},
	"*": {
		Symbol: "*", Fixity: Infix, LBP: 20, InfixBP: 20,
		Binary: func(x, y Exact) (Exact, error) { return x.Mul(y), nil },
	},
	"/": {
		Symbol: "/", Fixity: Infix, LBP: 20, InfixBP: 20,
		Binary: Exact.Quo,
	},
	"^": {
		Symbol: "^", Fixity: Infix, LBP: 30, InfixBP: 29,
		Binary: Exact.Pow,
	},
	"!": {
		Symbol: "!", Fixity: Postfix, LBP: 50,
		Unary: func(x Exact) (Exact, error) { return multiFactorial(x, 1) },
	},
	"!!": {
		Symbol: "!!", Fixity: Postfix, LBP: 50,
		Unary: func(x Exact) (Exact, error) { return multiFactorial(x, 2) },
	},
	"sqrt": {
		Symbol: "sqrt", Fixity: Prefix, LBP: 60, PrefixBP: 60,
		Unary: func(x Exact) (Exact, error) { return x.Pow(Frac(1, 2)) },
	},
	"root": {
		Symbol: "root", Fixity: Function, Arity: 2,
		Binary: func(n, x Exact) (Exact, error) { return x.Root(n) },
	},
	"p": {
		Symbol: "p", Fixity: Function | Infix, LBP: 40, InfixBP: 40, Arity: 2,
		Binary: func(n, r Exact) (Exact, error) { return choose(n, r, Permutations) },
	},
	"c": {
		Symbol: "c", Fixity: Function | Infix, LBP: 40, InfixBP: 40, Arity: 2,
		Binary: func(n, r Exact) (Exact, error) { return choose(n, r, Combinations) },
	},
	"(": {Symbol: "(", Fixity: Open, LBP: 200},
	")": {Symbol: ")", Fixity: Close},
	",": {Symbol: ",", Fixity: Separator},
}

// aliases maps alternate spellings to canonical symbols.
var aliases = map[string]string{
	"**": "^",
	"[":  "(",
	"]":  ")",
}

// Resolve finds the definition of an operator symbol, which may be an alias.
func Resolve(symbol string) (Operator, bool) {
	if s, ok := aliases[symbol]; ok {
		symbol = s
	}
	op, ok := registry[symbol]
	return op, ok
}

// Symbols returns every spelling that Resolve accepts, sorted.
func Symbols() []string {
	r := make([]string, 0, len(registry)+len(aliases))
	for k := range registry {
		r = append(r, k)
	}
	for k := range aliases {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// spellings returns the symbol and its aliases.
func spellings(symbol string) []string {
	r := []string{symbol}
	for k, v := range aliases {
		if v == symbol {
			r = append(r, k)
		}
	}
	return r
}

// startsTerm reports whether the operator begins an operand on its own, so
// that following a complete operand it implies multiplication.
func (op Operator) startsTerm() bool {
	if op.Fixity&Open != 0 {
		return true
	}
	return op.Fixity&(Prefix|Function) != 0 && op.Fixity&Infix == 0
}

func multiFactorial(x Exact, k int64) (Exact, error) {
	n, err := smallInt(x)
	if err != nil {
		return Exact{}, err
	}
	r, err := MultiFactorial(n, k)
	if err != nil {
		return Exact{}, err
	}
	return FromInt(r), nil
}

func choose(n, r Exact, f func(n, r int64) (*big.Int, error)) (Exact, error) {
	a, err := smallInt(n)
	if err != nil {
		return Exact{}, err
	}
	b, err := smallInt(r)
	if err != nil {
		return Exact{}, err
	}
	v, err := f(a, b)
	if err != nil {
		return Exact{}, err
	}
	return FromInt(v), nil
}
