package nummatch

// Simplify normalizes roots and powers. sqrt(x) becomes x^(1/2), root(n, x)
// becomes x^(1/n), and (a^b)^c becomes a^(b*c), so that every chain of
// powers is a single power node. Simplify does not fold constants or
// reorder terms. It returns new nodes and never modifies n.
func Simplify(n Node) Node {
	op, ok := n.(*Operation)
	if !ok {
		return n
	}
	args := make([]Node, len(op.Args))
	for i, a := range op.Args {
		args[i] = Simplify(a)
	}
	return rewrite(&Operation{Op: op.Op, Args: args, Implicit: op.Implicit})
}

// rewrite applies rules at n, whose operands are already simplified, until
// none match.
func rewrite(n *Operation) Node {
	switch {
	case n.Op == symSqrt && len(n.Args) == 1:
		return rewrite(power(n.Args[0], &Literal{Value: Frac(1, 2)}))
	case n.Op == symRoot && len(n.Args) == 2:
		inv := &Operation{Op: symDiv, Args: []Node{&Literal{Value: NewExact(1)}, n.Args[0]}}
		return rewrite(power(n.Args[1], inv))
	case n.Op == symPow && len(n.Args) == 2:
		base, ok := n.Args[0].(*Operation)
		if !ok || base.Op != symPow || len(base.Args) != 2 {
			return n
		}
		exp := &Operation{Op: symMul, Args: []Node{base.Args[1], n.Args[1]}}
		return rewrite(power(base.Args[0], exp))
	}
	return n
}

func power(x, y Node) *Operation {
	return &Operation{Op: symPow, Args: []Node{x, y}}
}
