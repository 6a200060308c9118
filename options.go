package nummatch

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// DecimalPolicy controls whether and how decimal points join tiles.
type DecimalPolicy int8

const (
	// DecimalNotAllowed rejects every decimal point.
	DecimalNotAllowed DecimalPolicy = iota
	// DecimalNoLeading allows a decimal point between tiles, as in 3.14.
	DecimalNoLeading
	// DecimalLeading additionally allows a number to start with a decimal
	// point, as in .5.
	DecimalLeading
)

func (d DecimalPolicy) String() string {
	switch d {
	case DecimalNotAllowed:
		return "not_allowed"
	case DecimalNoLeading:
		return "no_leading"
	case DecimalLeading:
		return "leading"
	default:
		return "DecimalPolicy(" + strconv.Itoa(int(d)) + ")"
	}
}

// ParseDecimalPolicy parses the String form of a DecimalPolicy.
func ParseDecimalPolicy(s string) (DecimalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "not_allowed", "":
		return DecimalNotAllowed, nil
	case "no_leading":
		return DecimalNoLeading, nil
	case "leading":
		return DecimalLeading, nil
	default:
		return 0, fmt.Errorf("unknown decimal policy %q", s)
	}
}

// Option is an option for tokenizing, parsing, and checking submissions.
type Option interface {
	option(config) config
}

type (
	opsopt     []string
	tilesopt   []string
	concatopt  bool
	decimalopt DecimalPolicy
	unaryopt   bool
	rulesopt   struct {
		ops        []string
		concat     bool
		decimal    DecimalPolicy
		unaryMinus bool
	}
)

// config holds the rules of a round. It is also an Option.
type config struct {
	// ops is the set of enabled operator spellings. Brackets and the argument
	// separator are always enabled and do not appear here. Options never
	// modify an existing map, so presets may share it.
	ops map[string]bool
	// tiles is the round's numbers in their decimal forms.
	tiles []string
	// concat allows adjacent tiles to form one number.
	concat bool
	// decimal is the decimal point policy.
	decimal DecimalPolicy
	// unaryMinus allows prefix -.
	unaryMinus bool
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}

// enabled reports whether an operator spelling may appear in the input.
func (c *config) enabled(sym string) bool {
	op, ok := Resolve(sym)
	if !ok {
		return false
	}
	if op.Fixity&(Open|Close|Separator) != 0 {
		return true
	}
	return c.ops[sym]
}

// withOps returns a copy of ops with syms and their aliases enabled. Panics
// if any symbol is unknown.
func withOps(ops map[string]bool, syms []string) map[string]bool {
	m := make(map[string]bool, len(ops)+len(syms))
	for k, v := range ops {
		m[k] = v
	}
	for _, s := range syms {
		op, ok := Resolve(strings.ToLower(s))
		if !ok {
			panic("nummatch: unknown operator " + strconv.Quote(s))
		}
		for _, sp := range spellings(op.Symbol) {
			m[sp] = true
		}
	}
	return m
}

// Operators enables operator symbols in addition to those already enabled.
// Enabling a symbol also enables its aliases, e.g. ^ enables **. Brackets
// and commas are always enabled. Panics if any symbol is unknown; use
// GameOperators for names that come from users.
func Operators(syms ...string) Option {
	return opsopt(syms)
}

func (o opsopt) option(c config) config {
	c.ops = withOps(c.ops, o)
	return c
}

// Tiles sets the round's numbers. Each is a decimal string like "7" or
// "10". Every tile must be used exactly once.
func Tiles(tiles ...string) Option {
	return tilesopt(append([]string(nil), tiles...))
}

// IntTiles sets the round's numbers from integers.
func IntTiles(tiles ...int) Option {
	v := make(tilesopt, len(tiles))
	for i, n := range tiles {
		v[i] = strconv.Itoa(n)
	}
	return v
}

func (o tilesopt) option(c config) config {
	c.tiles = o
	return c
}

// Concat sets whether adjacent tiles join into one number, e.g. 1 and 2
// into 12.
func Concat(allow bool) Option {
	return concatopt(allow)
}

func (o concatopt) option(c config) config {
	c.concat = bool(o)
	return c
}

// Decimals sets the decimal point policy.
func Decimals(policy DecimalPolicy) Option {
	return decimalopt(policy)
}

func (o decimalopt) option(c config) config {
	c.decimal = DecimalPolicy(o)
	return c
}

// UnaryMinus sets whether prefix - is allowed.
func UnaryMinus(allow bool) Option {
	return unaryopt(allow)
}

func (o unaryopt) option(c config) config {
	c.unaryMinus = bool(o)
	return c
}

func (o *rulesopt) option(c config) config {
	c.ops = withOps(nil, o.ops)
	c.concat = o.concat
	c.decimal = o.decimal
	c.unaryMinus = o.unaryMinus
	return c
}

var (
	basicOps    = []string{"+", "-", "*", "/"}
	extendedOps = append(basicOps[:len(basicOps):len(basicOps)], "!", "^", "sqrt")
	allOps      = append(extendedOps[:len(extendedOps):len(extendedOps)], "root", "!!", "p", "c")

	basicRules    = &rulesopt{ops: basicOps}
	extendedRules = &rulesopt{ops: extendedOps, unaryMinus: true}
	allRules      = &rulesopt{ops: allOps, concat: true, decimal: DecimalLeading, unaryMinus: true}
)

// Basic replaces the rules with + - * / and nothing else.
func Basic() Option {
	return basicRules
}

// Extended replaces the rules with Basic plus ! ^ sqrt and unary minus.
func Extended() Option {
	return extendedRules
}

// All replaces the rules with Extended plus root !! p c, concatenation, and
// decimals with leading points.
func All() Option {
	return allRules
}

// GameOperators builds rules from a game's operator list. Besides operator
// symbols, the list may contain "nthroot" for root, "concat" to allow
// concatenation, "." to allow decimals, "unary -" to allow unary minus, and
// "()", which is always allowed. Names are case-insensitive. Rules not named
// are disabled.
func GameOperators(names ...string) (Option, error) {
	o := rulesopt{decimal: DecimalNotAllowed}
	for _, name := range names {
		switch n := strings.ToLower(strings.TrimSpace(name)); n {
		case "concat":
			o.concat = true
		case ".":
			o.decimal = DecimalLeading
		case "unary -", "unary-", "unary minus":
			o.unaryMinus = true
		case "()", "[]":
		case "nthroot":
			o.ops = append(o.ops, symRoot)
		default:
			op, ok := Resolve(n)
			if !ok || op.Fixity&(Prefix|Infix|Postfix|Function) == 0 {
				return nil, fmt.Errorf("unknown operator %q", name)
			}
			o.ops = append(o.ops, op.Symbol)
		}
	}
	return &o, nil
}

// MatchPreset reports which preset a game's operator list is equivalent to:
// "basic", "extended", or "all". It returns "" if the list matches none of
// them. Order, case, and repeated names do not matter.
func MatchPreset(names ...string) (string, error) {
	opt, err := GameOperators(names...)
	if err != nil {
		return "", err
	}
	c := newConfig([]Option{opt})
	presets := []struct {
		name  string
		rules Option
	}{
		{"basic", basicRules},
		{"extended", extendedRules},
		{"all", allRules},
	}
	for _, p := range presets {
		if c.sameRules(newConfig([]Option{p.rules})) {
			return p.name, nil
		}
	}
	return "", nil
}

// sameRules reports whether two configs allow the same submissions, ignoring
// tiles.
func (c *config) sameRules(d config) bool {
	return c.concat == d.concat && c.decimal == d.decimal && c.unaryMinus == d.unaryMinus && maps.Equal(c.ops, d.ops)
}

// Preset creates a preset that may be more efficient when using the same
// options for many submissions, e.g. a round's rules and tiles. A preset
// replaces every option applied before it, but options after it still apply.
func Preset(opts ...Option) Option {
	c := newConfig(opts)
	return &c
}

func (o *config) option(c config) config {
	return *o
}
