package nummatch

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a number, an operator, or the end of input.
type Token struct {
	// Kind is the token kind.
	Kind TokenKind
	// Text is the token as written, after case folding. Implicit
	// multiplications have text "*".
	Text string
	// Value is the value of a number token.
	Value Exact
	// Op is the definition of an operator token.
	Op Operator
	// Pos is the 1-based byte column of the token in the input after case
	// folding and whitespace removal. Implicit multiplications have the
	// position of the token that follows them.
	Pos int
	// Implicit marks a multiplication implied by juxtaposition.
	Implicit bool
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// lbp is the token's left binding power.
func (t Token) lbp() int {
	if t.Kind != TokenOperator {
		return 0
	}
	return t.Op.LBP
}

// TokenKind is the kind of a Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNumber is a number made of one or more tiles.
	TokenNumber
	// TokenOperator is an operator, bracket, or separator.
	TokenOperator
	// TokenEnd terminates every token sequence.
	TokenEnd
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenEnd:
		return "End"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src  string
	i    int
	cfg  *config
	syms []string
	// tiles is the unused tiles, longest first.
	tiles []string
	toks  []Token
}

// Tokenize splits a submission into tokens using the round's operators and
// tiles. Case and whitespace are ignored. Every tile must be used exactly
// once. The result ends with a TokenEnd token.
func Tokenize(input string, opts ...Option) ([]Token, error) {
	c := newConfig(opts)
	return c.tokenize(input)
}

// normalize folds case and removes whitespace.
func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func (c *config) tokenize(input string) ([]Token, error) {
	l := lexer{
		src:   normalize(input),
		cfg:   c,
		tiles: make([]string, 0, len(c.tiles)),
	}
	for _, t := range c.tiles {
		if !ValidTile(t) {
			return nil, &TokenError{Col: len(l.src) + 1, Text: t, Reason: TokenBadTile}
		}
		l.tiles = append(l.tiles, t)
	}
	// Longest first, so that e.g. 10 is not read as 1 followed by 0.
	sort.SliceStable(l.tiles, func(i, j int) bool { return len(l.tiles[i]) > len(l.tiles[j]) })
	for _, sym := range Symbols() {
		if c.enabled(sym) {
			l.syms = append(l.syms, sym)
		}
	}
	sort.Slice(l.syms, func(i, j int) bool {
		a, b := l.syms[i], l.syms[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	if err := l.run(); err != nil {
		return nil, err
	}
	if len(l.tiles) != 0 {
		return nil, &TokenError{Col: len(l.src) + 1, Text: l.tiles[0], Reason: TokenTileUnused}
	}
	l.toks = append(l.toks, Token{Kind: TokenEnd, Pos: len(l.src) + 1})
	return l.toks, nil
}

// ValidTile reports whether a tile is decimal digits with at most one
// interior point, e.g. "7", "10", or "2.5".
func ValidTile(t string) bool {
	if t == "" || t[0] == '.' || t[len(t)-1] == '.' {
		return false
	}
	dot := false
	for i := 0; i < len(t); i++ {
		switch c := t[i]; {
		case c == '.':
			if dot {
				return false
			}
			dot = true
		case c < '0' || c > '9':
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (l *lexer) run() error {
	for l.i < len(l.src) {
		start := l.i
		c := l.src[l.i]
		switch {
		case c == '.' && l.cfg.decimal == DecimalLeading:
			l.i++
			num := l.scanTiles(true)
			if num == "" {
				return l.failNumber(start)
			}
			if err := l.emitNumber("."+num, start); err != nil {
				return err
			}
		case isDigit(c):
			num := l.scanTiles(false)
			if num == "" {
				return l.failNumber(start)
			}
			if err := l.emitNumber(num, start); err != nil {
				return err
			}
		default:
			sym := l.scanSymbol()
			if sym == "" {
				r, _ := utf8.DecodeRuneInString(l.src[start:])
				return &TokenError{Col: start + 1, Text: string(r), Reason: TokenUnknownSymbol}
			}
			op, _ := Resolve(sym)
			if err := l.emit(Token{Kind: TokenOperator, Text: sym, Op: op, Pos: start + 1}); err != nil {
				return err
			}
		}
	}
	return nil
}

// scanTiles consumes tiles from the input to form the digits of a number.
// With concatenation, it continues as long as tiles match. A decimal point
// is consumed between tiles if the policy allows it, the number has none yet,
// and a tile follows it. A number has at most one point, counting points
// inside tiles, so a second point ends it. The result is empty if no tile
// matches.
func (l *lexer) scanTiles(dot bool) string {
	var b strings.Builder
	for {
		t := l.takeTile(dot)
		if t == "" {
			break
		}
		b.WriteString(t)
		if strings.Contains(t, ".") {
			dot = true
		}
		if !dot && l.cfg.decimal != DecimalNotAllowed && l.i < len(l.src) && l.src[l.i] == '.' && l.tileAt(l.i+1, true) != "" {
			dot = true
			b.WriteByte('.')
			l.i++
			continue
		}
		if !l.cfg.concat {
			break
		}
	}
	return b.String()
}

// tileAt finds an unused tile that starts the input at i. With nodot, tiles
// containing a point are skipped.
func (l *lexer) tileAt(i int, nodot bool) string {
	if i > len(l.src) {
		return ""
	}
	for _, t := range l.tiles {
		if nodot && strings.Contains(t, ".") {
			continue
		}
		if strings.HasPrefix(l.src[i:], t) {
			return t
		}
	}
	return ""
}

// takeTile consumes an unused tile at the current position. With nodot,
// tiles containing a point are skipped.
func (l *lexer) takeTile(nodot bool) string {
	t := l.tileAt(l.i, nodot)
	if t == "" {
		return ""
	}
	for k, u := range l.tiles {
		if u == t {
			l.tiles = append(l.tiles[:k], l.tiles[k+1:]...)
			break
		}
	}
	l.i += len(t)
	return t
}

// scanSymbol consumes the longest enabled operator at the current position.
func (l *lexer) scanSymbol() string {
	for _, sym := range l.syms {
		if strings.HasPrefix(l.src[l.i:], sym) {
			l.i += len(sym)
			return sym
		}
	}
	return ""
}

// failNumber creates the error for a number position where no tile matches.
func (l *lexer) failNumber(start int) error {
	i := start
	if l.src[i] == '.' {
		i++
		// A leading point cannot join a tile that has its own.
		if i >= len(l.src) || !isDigit(l.src[i]) || l.tileAt(i, false) != "" {
			return &TokenError{Col: start + 1, Text: ".", Reason: TokenUnknownSymbol}
		}
	}
	return &TokenError{Col: i + 1, Text: l.src[i : i+1], Reason: TokenTileUsedUp}
}

func (l *lexer) emitNumber(text string, start int) error {
	v, err := ParseExact(text)
	if err != nil {
		return &TokenError{Col: start + 1, Text: text, Reason: TokenBadTile}
	}
	return l.emit(Token{Kind: TokenNumber, Text: text, Value: v, Pos: start + 1})
}

// emit appends a token, first inserting an implicit multiplication if the
// previous token and this one are juxtaposed operands.
func (l *lexer) emit(tok Token) error {
	if n := len(l.toks); n > 0 {
		prev := l.toks[n-1]
		switch {
		case juxtaposed(prev, tok):
			mul, _ := Resolve(symMul)
			l.toks = append(l.toks, Token{Kind: TokenOperator, Text: symMul, Op: mul, Pos: tok.Pos, Implicit: true})
		case prev.Kind == TokenNumber && tok.Kind == TokenNumber:
			return &TokenError{Col: tok.Pos, Text: tok.Text, Reason: TokenAdjacentNumbers}
		}
	}
	l.toks = append(l.toks, tok)
	return nil
}

// juxtaposed reports whether a multiplication is implied between two tokens.
// The left must end an operand: a number, a postfix operator, or a close
// bracket. The right must start one: a number beginning with a digit, sqrt,
// root, or an open bracket. Digits and points on both sides are never a
// multiplication; they would have been one number if the tiles allowed it.
func juxtaposed(left, right Token) bool {
	var l, r bool
	switch left.Kind {
	case TokenNumber:
		l = isDigit(left.Text[len(left.Text)-1])
	case TokenOperator:
		l = left.Op.Fixity&(Postfix|Close) != 0
	}
	switch right.Kind {
	case TokenNumber:
		r = isDigit(right.Text[0])
	case TokenOperator:
		r = right.Op.startsTerm()
	}
	if !l || !r {
		return false
	}
	return !(digitOrPoint(left.Text[len(left.Text)-1]) && digitOrPoint(right.Text[0]))
}

func digitOrPoint(c byte) bool {
	return c == '.' || isDigit(c)
}
