package nummatch_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/nummatch"
)

func ExampleCheck() {
	round := nummatch.Preset(nummatch.Extended(), nummatch.IntTiles(2, 3, 7, 25))
	target := nummatch.NewExact(83)
	for _, answer := range []string{"3*25 + 7 + 2", "25*3 + 7*2", "(25 - 7) * 3!"} {
		v, err := nummatch.Check(answer, target, round)
		if err != nil {
			fmt.Println(answer, "error:", err)
			continue
		}
		fmt.Println(answer, "=", v.Value, v.Correct)
	}

	// Output:
	// 3*25 + 7 + 2 = 84 false
	// 25*3 + 7*2 = 89 false
	// (25 - 7) * 3! error: 10: didn't use number 2
}

func ExampleParse() {
	e, err := nummatch.Parse("2(3 + 4)^2 - 5c2", nummatch.All(), nummatch.IntTiles(2, 3, 4, 2, 5, 2))
	if err != nil {
		panic(err)
	}
	v, _ := e.Eval()
	fmt.Println(e)
	fmt.Println(e.Tree())
	fmt.Println(v)

	// Output:
	// ((2)((3+4)^2))-(5c2)
	// ([(2) ([(3) + (4)] ^ [2])] - [(5) c (2)])
	// 88
}

func ExampleEval() {
	v, err := nummatch.Eval("root(3, .5^3) + 1/4", nummatch.All(), nummatch.IntTiles(3, 5, 3, 1, 4))
	fmt.Println(v, err)
	d, _ := v.Decimal()
	fmt.Println(d)

	_, err = nummatch.Eval("sqrt 2 * 1", nummatch.All(), nummatch.IntTiles(1, 2))
	fmt.Println(err, errors.Is(err, nummatch.ErrIrrational))

	// Output:
	// 3/4 <nil>
	// 0.75
	// "2^(1/2)": result is not rational true
}

func ExampleGameOperators() {
	rules, err := nummatch.GameOperators("+", "-", "*", "/", "^", "nthroot", "concat", ".")
	if err != nil {
		panic(err)
	}
	v, err := nummatch.Eval("root(2, 16) * 1.5", rules, nummatch.IntTiles(1, 2, 5, 16))
	fmt.Println(v, err)
	_, err = nummatch.Eval("5!", rules, nummatch.IntTiles(5))
	fmt.Println(err)

	// Output:
	// 6 <nil>
	// 2: symbol "!" not available
}
