// Package nummatch checks answers in number-matching games, where players
// combine a round's numbers (tiles) with arithmetic to reach a target.
//
// A submission like "(5c2 + 3!) * .5" is tokenized against the round's tiles,
// each of which must be used exactly once, and its enabled operators. It is
// then parsed by precedence, so "1+2*3" is 7 and "2^3^2" is 2^(3^2). Numbers
// are exact rationals: "1/3 + 1/6" is exactly 1/2, and roots or powers that
// have no rational value are errors rather than approximations.
//
// Juxtaposition is multiplication, so "2(3+4)" and "2sqrt9" are products.
// Adjacent tiles join into one number only when the round allows
// concatenation.
//
// Everything in the package is safe for concurrent use. Failures are typed by
// the stage that produced them; see TokenError, ParseError, and EvalError.
package nummatch
