package nummatch

import "strings"

// Expr = Number | Prefix Expr | Expr Infix Expr | Expr Postfix
//      | '(' Expr ')' | Function '(' Expr { ',' Expr } ')'
// Prefix = '+' | '-' | 'sqrt'
// Infix = '+' | '-' | '*' | '/' | '^' | 'p' | 'c'
// Postfix = '!' | '!!'
// Function = 'root' | 'p' | 'c'
//
// Brackets may be round or square, and either kind closes either kind.
// Juxtaposed operands are joined by an implicit '*' during tokenizing.

// Expr is a parsed submission.
type Expr struct {
	root Node
}

// Parse tokenizes and parses a submission. The given options are applied in
// order.
func Parse(input string, opts ...Option) (*Expr, error) {
	c := newConfig(opts)
	toks, err := c.tokenize(input)
	if err != nil {
		return nil, err
	}
	n, err := c.parse(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{root: n}, nil
}

// ParseTokens parses a token sequence produced by Tokenize. Of the options,
// only UnaryMinus affects parsing.
func ParseTokens(toks []Token, opts ...Option) (Node, error) {
	c := newConfig(opts)
	return c.parse(toks)
}

func (c *config) parse(toks []Token) (Node, error) {
	p := parser{toks: toks, unaryMinus: c.unaryMinus}
	n, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEnd {
		return nil, &ParseError{Col: tok.Pos, Token: tok.Text, Reason: ParseTrailing}
	}
	return n, nil
}

// parser is a cursor over a token sequence.
type parser struct {
	toks       []Token
	pos        int
	unaryMinus bool
}

// peek returns the current token. Past the end of the sequence, it is an end
// token.
func (p *parser) peek() Token {
	if p.pos >= len(p.toks) {
		var col int
		if len(p.toks) > 0 {
			col = p.toks[len(p.toks)-1].Pos
		}
		return Token{Kind: TokenEnd, Pos: col + 1}
	}
	return p.toks[p.pos]
}

// next consumes and returns the current token.
func (p *parser) next() Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

// expect consumes a token that must resolve to the given canonical symbol.
func (p *parser) expect(sym string) error {
	tok := p.next()
	if tok.Kind == TokenOperator && tok.Op.Symbol == sym {
		return nil
	}
	return &ParseError{Col: tok.Pos, Token: tok.Text, Want: sym, Reason: ParseExpected}
}

// expression parses operators with left binding power greater than rbp.
func (p *parser) expression(rbp int) (Node, error) {
	left, err := p.nud(p.next())
	if err != nil {
		return nil, err
	}
	for rbp < p.peek().lbp() {
		left, err = p.led(p.next(), left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// nud parses a token in operand position.
func (p *parser) nud(tok Token) (Node, error) {
	switch tok.Kind {
	case TokenNumber:
		return &Literal{Value: tok.Value, Text: tok.Text}, nil
	case TokenEnd:
		return nil, &ParseError{Col: tok.Pos, Reason: ParseUnfinished}
	case TokenOperator:
		// handled below
	default:
		panic("nummatch: unknown token: " + tok.String())
	}
	op := tok.Op
	switch {
	case op.Fixity&Open != 0:
		n, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		if err := p.expect(symClose); err != nil {
			return nil, err
		}
		return n, nil
	case op.Fixity&Function != 0:
		return p.call(op)
	case op.Fixity&Prefix != 0:
		if op.Symbol == "-" && !p.unaryMinus {
			return nil, &ParseError{Col: tok.Pos, Token: tok.Text, Reason: ParseUnaryMinus}
		}
		arg, err := p.expression(op.PrefixBP)
		if err != nil {
			return nil, err
		}
		return &Operation{Op: op.Symbol, Args: []Node{arg}}, nil
	}
	return nil, &ParseError{Col: tok.Pos, Token: tok.Text, Reason: ParseUnexpected}
}

// call parses the bracketed argument list of a function-form operator.
func (p *parser) call(op Operator) (Node, error) {
	if err := p.expect(symOpen); err != nil {
		return nil, err
	}
	args := make([]Node, 0, op.Arity)
	for i := 0; i < op.Arity; i++ {
		if i > 0 {
			if err := p.expect(symSep); err != nil {
				return nil, err
			}
		}
		arg, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if err := p.expect(symClose); err != nil {
		return nil, err
	}
	return &Operation{Op: op.Symbol, Args: args}, nil
}

// led parses a token following a complete operand.
func (p *parser) led(tok Token, left Node) (Node, error) {
	op := tok.Op
	switch {
	case op.Fixity&Postfix != 0:
		return &Operation{Op: op.Symbol, Args: []Node{left}}, nil
	case op.Fixity&Infix != 0:
		right, err := p.expression(op.InfixBP)
		if err != nil {
			return nil, err
		}
		return &Operation{Op: op.Symbol, Args: []Node{left, right}, Implicit: tok.Implicit}, nil
	}
	return nil, &ParseError{Col: tok.Pos, Token: tok.Text, Reason: ParseUnexpected}
}

// Root returns the root node of the expression.
func (e *Expr) Root() Node {
	return e.root
}

// String renders the expression as text that parses to an equivalent
// expression under the same rules.
func (e *Expr) String() string {
	return Render(e.root)
}

// Tree creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) Tree() string {
	var b strings.Builder
	e.root.fmt(&b, false)
	return b.String()
}

// Simplify returns the expression with roots rewritten as powers and nested
// powers flattened.
func (e *Expr) Simplify() *Expr {
	return &Expr{root: Simplify(e.root)}
}

// Eval evaluates the expression as written.
func (e *Expr) Eval() (Exact, error) {
	return Evaluate(e.root)
}
