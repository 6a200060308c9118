package nummatch

import "testing"

func TestSimplify(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "9", "(9)"},
		{"sqrt", "sqrt 9", "([9] ^ [0.5])"},
		{"root", "root(3, 8)", "([8] ^ [(1) / (3)])"},
		{"pow-pow", "(2^3)^2", "([2] ^ [(3) * (2)])"},
		{"pow-pow-pow", "((2^3)^2)^2", "([2] ^ [([3] * [2]) * (2)])"},
		{"right-assoc", "2^3^2", "([2] ^ [(3) ^ (2)])"},
		{"sqrt-sqrt", "sqrt sqrt 16", "([16] ^ [(0.5) * (0.5)])"},
		{"sqrt-pow", "sqrt(4)^2", "([4] ^ [(0.5) * (2)])"},
		{"root-sqrt", "root(3, sqrt 64)", "([64] ^ [(0.5) * ([1] / [3])])"},
		{"inside", "1+sqrt 4", "([1] + [(4) ^ (0.5)])"},
		{"implicit", "2sqrt4", "([2] [(4) ^ (0.5)])"},
		{"untouched", "1+2*3", "([1] + [(2) * (3)])"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src, All(), tilesOf(c.src))
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			before := a.Tree()
			s := a.Simplify()
			if got := s.Tree(); got != c.want {
				t.Errorf("wrong simplification of %q: want %q, got %q", c.src, c.want, got)
			}
			if after := a.Tree(); after != before {
				t.Errorf("simplifying modified %q: was %q, now %q", c.src, before, after)
			}
			if again := s.Simplify().Tree(); again != s.Tree() {
				t.Errorf("simplifying %q is not idempotent: %q then %q", c.src, s.Tree(), again)
			}
			x, errx := a.Eval()
			y, erry := s.Eval()
			if errx != nil || erry != nil || !x.Equal(y) {
				t.Errorf("simplifying %q changed its value: %v (%v) to %v (%v)", c.src, x, errx, y, erry)
			}
		})
	}
}

func TestSimplifyRootEquivalence(t *testing.T) {
	srcs := []string{"sqrt(9)", "9^(1/2)", "root(2, 9)"}
	for _, src := range srcs {
		x, err := Eval(src, All(), tilesOf(src))
		if err != nil {
			t.Errorf("%q failed: %v", src, err)
			continue
		}
		if !x.Equal(NewExact(3)) {
			t.Errorf("%q = %v, want 3", src, x)
		}
	}
}

func TestSimplifyUnknown(t *testing.T) {
	// Operators the simplifier does not know pass through.
	n := &Operation{Op: "%", Args: []Node{&Literal{Value: NewExact(1)}}}
	s := Simplify(n)
	if s == Node(n) {
		t.Errorf("Simplify returned its argument")
	}
	if got, want := (&Expr{s}).Tree(), (&Expr{n}).Tree(); got != want {
		t.Errorf("wrong simplification: want %q, got %q", want, got)
	}
}
