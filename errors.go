package nummatch

import (
	"errors"
	"strconv"
	"strings"
)

// Mathematical failures. EvalError unwraps to one of these.
var (
	ErrDivideByZero    = errors.New("division by zero")
	ErrNotInteger      = errors.New("not an integer")
	ErrNegative        = errors.New("negative argument")
	ErrOutOfRange      = errors.New("argument out of range")
	ErrIrrational      = errors.New("result is not rational")
	ErrTooLarge        = errors.New("result too large")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrArity           = errors.New("operator does not support this arity")
)

// ErrorKind classifies engine failures by the stage that produced them.
type ErrorKind int8

const (
	KindTokenize ErrorKind = iota + 1
	KindParse
	KindEval
)

func (k ErrorKind) String() string {
	switch k {
	case KindTokenize:
		return "tokenize"
	case KindParse:
		return "parse"
	case KindEval:
		return "eval"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is implemented by every error the engine returns for a submission.
type Error interface {
	error
	Kind() ErrorKind
}

// KindOf returns the kind of err, or 0 if err did not come from the engine.
func KindOf(err error) ErrorKind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return 0
}

// InputError is an error with position information. Every tokenizing and
// parsing error implements InputError.
type InputError interface {
	Error
	// Pos returns the 1-based byte column of the offending text in the input
	// after case folding and whitespace removal.
	Pos() int
}

// TokenReason is the cause of a TokenError.
type TokenReason int8

const (
	// TokenUnknownSymbol is text that matches no enabled operator.
	TokenUnknownSymbol TokenReason = iota + 1
	// TokenTileUsedUp is a number that matches no unused tile.
	TokenTileUsedUp
	// TokenTileUnused is a tile the input never used.
	TokenTileUnused
	// TokenAdjacentNumbers is two numbers with nothing joining them.
	TokenAdjacentNumbers
	// TokenBadTile is a tile that is not a decimal number.
	TokenBadTile
)

// TokenError indicates input that cannot be split into tokens using the
// round's operators and tiles. It implements InputError.
type TokenError struct {
	// Col is the position of the text. For TokenTileUnused and
	// TokenBadTile, it is the end of the input.
	Col int
	// Text is the offending symbol, digit, or tile.
	Text string
	// Reason is the cause.
	Reason TokenReason
}

func (err *TokenError) Error() string {
	var msg string
	switch err.Reason {
	case TokenUnknownSymbol:
		msg = "symbol " + strconv.Quote(err.Text) + " not available"
	case TokenTileUsedUp:
		msg = "number " + err.Text + " used too many times"
	case TokenTileUnused:
		msg = "didn't use number " + err.Text
	case TokenAdjacentNumbers:
		msg = "no operator before number " + err.Text
	case TokenBadTile:
		msg = "invalid tile " + strconv.Quote(err.Text)
	default:
		msg = "invalid token " + strconv.Quote(err.Text)
	}
	return errpos(err.Col, msg)
}

func (err *TokenError) Pos() int {
	return err.Col
}

func (err *TokenError) Kind() ErrorKind {
	return KindTokenize
}

// ParseReason is the cause of a ParseError.
type ParseReason int8

const (
	// ParseUnexpected is a token that cannot appear where it does.
	ParseUnexpected ParseReason = iota + 1
	// ParseExpected is a missing required delimiter; Want names it.
	ParseExpected
	// ParseUnaryMinus is a prefix minus while unary minus is disabled.
	ParseUnaryMinus
	// ParseTrailing is a token after a complete expression.
	ParseTrailing
	// ParseUnfinished is the end of input where an operand is required.
	ParseUnfinished
)

// ParseError indicates a token sequence that does not form an expression.
// It implements InputError.
type ParseError struct {
	// Col is the position of the offending token.
	Col int
	// Token is the offending token's text, or empty at the end of input.
	Token string
	// Want is the delimiter the parser required, for ParseExpected.
	Want string
	// Reason is the cause.
	Reason ParseReason
}

func (err *ParseError) Error() string {
	var msg string
	switch err.Reason {
	case ParseExpected:
		msg = "expected token " + strconv.Quote(err.Want)
		if err.Token != "" {
			msg += ", got " + strconv.Quote(err.Token)
		}
	case ParseUnaryMinus:
		msg = `unary minus "-" not allowed`
	case ParseTrailing:
		msg = "unexpected trailing token " + strconv.Quote(err.Token)
	case ParseUnfinished:
		msg = "expression ended unexpectedly"
	default:
		msg = "unexpected token " + strconv.Quote(err.Token)
	}
	return errpos(err.Col, msg)
}

func (err *ParseError) Pos() int {
	return err.Col
}

func (err *ParseError) Kind() ErrorKind {
	return KindParse
}

// EvalError indicates an operation that has no exact value, or an AST that
// the evaluator does not understand. It unwraps to one of the Err variables.
type EvalError struct {
	// Op is the operator symbol.
	Op string
	// Args is the evaluated arguments. It is empty when the failure happened
	// before evaluating them, e.g. for an unknown operator.
	Args []Exact
	// Err is the cause.
	Err error
}

func (err *EvalError) Error() string {
	if len(err.Args) == 0 {
		return err.Err.Error() + ": " + strconv.Quote(err.Op)
	}
	return strconv.Quote(applied(err.Op, err.Args)) + ": " + err.Err.Error()
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

func (err *EvalError) Kind() ErrorKind {
	return KindEval
}

// applied renders an operator applied to values, e.g. "5c7" or "sqrt(2)".
func applied(op string, args []Exact) string {
	var b strings.Builder
	o, _ := Resolve(op)
	switch {
	case o.Fixity&Function != 0 && o.Fixity&Infix == 0:
		b.WriteString(op)
		b.WriteByte('(')
		for i, x := range args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(abbrev(x))
		}
		b.WriteByte(')')
	case len(args) == 1 && o.Fixity&Postfix != 0:
		writeArg(&b, args[0])
		b.WriteString(op)
	case len(args) == 1:
		b.WriteString(op)
		writeArg(&b, args[0])
	default:
		writeArg(&b, args[0])
		b.WriteString(op)
		writeArg(&b, args[1])
	}
	return b.String()
}

func writeArg(b *strings.Builder, x Exact) {
	if x.IsInt() && x.Sign() >= 0 {
		b.WriteString(abbrev(x))
		return
	}
	b.WriteByte('(')
	b.WriteString(abbrev(x))
	b.WriteByte(')')
}

// maxArgLen is the longest operand an error message spells out in full.
const maxArgLen = 40

// abbrev formats x, shortening a long value to its first and last digits and
// its length, e.g. "123456789012...789012345678 (300000 digits)".
func abbrev(x Exact) string {
	s := x.String()
	if len(s) <= maxArgLen {
		return s
	}
	const keep = 12
	n := 0
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			n++
		}
	}
	return s[:keep] + "..." + s[len(s)-keep:] + " (" + strconv.Itoa(n) + " digits)"
}

// NumberError indicates text that is not a number.
type NumberError struct {
	Text string
}

func (err *NumberError) Error() string {
	return "invalid number " + strconv.Quote(err.Text)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*ParseError)(nil)
	_ Error      = (*EvalError)(nil)
)
