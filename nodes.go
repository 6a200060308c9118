package nummatch

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of a submission. It is either a
// *Literal or an *Operation.
type Node interface {
	// fmt writes the fully bracketed form of the node.
	fmt(b *strings.Builder, square bool)
	// render writes the node as re-parseable text.
	render(b *strings.Builder)
}

// Literal is a number.
type Literal struct {
	// Value is the exact value of the number.
	Value Exact
	// Text is the number as written in the input. It is empty for literals
	// that the simplifier creates.
	Text string
}

// Operation is an operator applied to one or two operands. Function-form
// operators list their arguments in order, e.g. root(n, x) has Args n, x.
type Operation struct {
	// Op is the canonical operator symbol.
	Op string
	// Args is the operands, left to right.
	Args []Node
	// Implicit marks a multiplication implied by juxtaposition.
	Implicit bool
}

func (n *Literal) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Operation) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Literal) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	n.render(b)
	b.WriteByte(r)
}

func (n *Operation) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	op, _ := Resolve(n.Op)
	switch {
	case len(n.Args) == 1 && op.Fixity&Postfix != 0:
		n.Args[0].fmt(b, !square)
		b.WriteString(n.Op)
	case len(n.Args) == 1:
		b.WriteString(n.Op)
		n.Args[0].fmt(b, !square)
	case len(n.Args) == 2 && op.Fixity&Infix != 0:
		n.Args[0].fmt(b, !square)
		if n.Implicit {
			b.WriteString(" ")
		} else {
			b.WriteString(" " + n.Op + " ")
		}
		n.Args[1].fmt(b, !square)
	default:
		// Function form, or an operator the registry doesn't know.
		b.WriteString(n.Op)
		b.WriteByte(':')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b, !square)
		}
	}
}

// Render writes a node as text that tokenizes and parses to an equivalent
// tree, given the same tiles and operators. It brackets every operand that
// is not a literal or function call, so the result does not depend on
// precedence.
func Render(n Node) string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Literal) render(b *strings.Builder) {
	if n.Text != "" {
		b.WriteString(n.Text)
		return
	}
	if n.Value.Sign() >= 0 {
		if n.Value.IsInt() {
			b.WriteString(n.Value.String())
			return
		}
		if d, ok := n.Value.Decimal(); ok {
			b.WriteString(d)
			return
		}
	}
	b.WriteByte('(')
	b.WriteString(n.Value.String())
	b.WriteByte(')')
}

func (n *Operation) render(b *strings.Builder) {
	op, _ := Resolve(n.Op)
	switch {
	case n.Implicit && len(n.Args) == 2:
		// Brackets on both sides imply the multiplication again.
		bracket(b, n.Args[0])
		bracket(b, n.Args[1])
	case n.Op == symSqrt, op.Fixity&Function != 0 && op.Fixity&Infix == 0:
		b.WriteString(n.Op)
		b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.render(b)
		}
		b.WriteByte(')')
	case len(n.Args) == 1 && op.Fixity&Postfix != 0:
		operand(b, n.Args[0], false)
		b.WriteString(n.Op)
	case len(n.Args) == 1:
		b.WriteString(n.Op)
		operand(b, n.Args[0], true)
	case len(n.Args) == 2:
		operand(b, n.Args[0], false)
		b.WriteString(n.Op)
		operand(b, n.Args[1], true)
	default:
		panic("nummatch: cannot render " + n.Op + " with " + strconv.Itoa(len(n.Args)) + " operands")
	}
}

// operand renders an operand, bracketing it unless it is a literal or, on the
// right of its operator, a function call.
func operand(b *strings.Builder, n Node, right bool) {
	switch n := n.(type) {
	case *Literal:
		n.render(b)
		return
	case *Operation:
		if right && isCall(n) {
			n.render(b)
			return
		}
	}
	bracket(b, n)
}

func bracket(b *strings.Builder, n Node) {
	b.WriteByte('(')
	n.render(b)
	b.WriteByte(')')
}

// isCall reports whether the operation renders in function form.
func isCall(n *Operation) bool {
	if n.Implicit {
		return false
	}
	if n.Op == symSqrt {
		return true
	}
	op, _ := Resolve(n.Op)
	return op.Fixity&Function != 0 && op.Fixity&Infix == 0
}
