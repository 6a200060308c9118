package nummatch

// Evaluate computes the exact value of a tree. Operands are evaluated left to
// right, and the first failure is returned. Failures of operators are
// *EvalError values.
func Evaluate(n Node) (Exact, error) {
	switch n := n.(type) {
	case *Literal:
		return n.Value, nil
	case *Operation:
		return n.eval()
	default:
		panic("nummatch: invalid AST node")
	}
}

func (n *Operation) eval() (Exact, error) {
	op, ok := Resolve(n.Op)
	if !ok {
		return Exact{}, &EvalError{Op: n.Op, Err: ErrUnknownOperator}
	}
	switch len(n.Args) {
	case 1:
		if op.Unary == nil {
			return Exact{}, &EvalError{Op: n.Op, Err: ErrArity}
		}
	case 2:
		if op.Binary == nil {
			return Exact{}, &EvalError{Op: n.Op, Err: ErrArity}
		}
	default:
		return Exact{}, &EvalError{Op: n.Op, Err: ErrArity}
	}
	args := make([]Exact, len(n.Args))
	for i, a := range n.Args {
		v, err := Evaluate(a)
		if err != nil {
			return Exact{}, err
		}
		args[i] = v
	}
	var (
		r   Exact
		err error
	)
	if len(args) == 1 {
		r, err = op.Unary(args[0])
	} else {
		r, err = op.Binary(args[0], args[1])
	}
	if err != nil {
		return Exact{}, &EvalError{Op: n.Op, Args: args, Err: err}
	}
	return r, nil
}

// Eval is a shortcut to tokenize, parse, simplify, and evaluate a submission.
func Eval(input string, opts ...Option) (Exact, error) {
	c := newConfig(opts)
	toks, err := c.tokenize(input)
	if err != nil {
		return Exact{}, err
	}
	n, err := c.parse(toks)
	if err != nil {
		return Exact{}, err
	}
	return Evaluate(Simplify(n))
}

// Verdict is the outcome of a submission that evaluates successfully.
type Verdict struct {
	// Value is the exact value of the submission.
	Value Exact
	// Correct is whether Value equals the target.
	Correct bool
}

// Check evaluates a submission and compares it to the round's target. A
// submission that evaluates to a different value is not an error; the
// verdict is just incorrect.
func Check(input string, target Exact, opts ...Option) (Verdict, error) {
	v, err := Eval(input, opts...)
	if err != nil {
		return Verdict{}, err
	}
	return Verdict{Value: v, Correct: v.Equal(target)}, nil
}
