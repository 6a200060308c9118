package nummatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalPolicyString(t *testing.T) {
	for _, d := range []DecimalPolicy{DecimalNotAllowed, DecimalNoLeading, DecimalLeading} {
		got, err := ParseDecimalPolicy(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDecimalPolicy(" Leading ")
	require.NoError(t, err)
	assert.Equal(t, DecimalLeading, got)
	got, err = ParseDecimalPolicy("")
	require.NoError(t, err)
	assert.Equal(t, DecimalNotAllowed, got)
	_, err = ParseDecimalPolicy("trailing")
	assert.Error(t, err)
	assert.Equal(t, "DecimalPolicy(9)", DecimalPolicy(9).String())
}

func TestGameOperators(t *testing.T) {
	opt, err := GameOperators("+", "-", "nthroot", "concat", ".", "unary -", "()", "C", "!!")
	require.NoError(t, err)
	c := newConfig([]Option{opt})
	for _, sym := range []string{"+", "-", "root", "c", "!!", "(", ")", "[", "]", ","} {
		assert.True(t, c.enabled(sym), "%q should be enabled", sym)
	}
	for _, sym := range []string{"*", "/", "^", "**", "sqrt", "!", "p"} {
		assert.False(t, c.enabled(sym), "%q should be disabled", sym)
	}
	assert.True(t, c.concat)
	assert.Equal(t, DecimalLeading, c.decimal)
	assert.True(t, c.unaryMinus)

	c = newConfig([]Option{mustGame(t, "*")})
	assert.True(t, c.enabled("*"))
	assert.False(t, c.concat)
	assert.Equal(t, DecimalNotAllowed, c.decimal)
	assert.False(t, c.unaryMinus)

	for _, bad := range []string{"mod", "%", ",", "(", ""} {
		_, err := GameOperators("+", bad)
		assert.Error(t, err, "%q", bad)
	}
}

func mustGame(t *testing.T, names ...string) Option {
	t.Helper()
	opt, err := GameOperators(names...)
	require.NoError(t, err)
	return opt
}

func TestOperatorsAliases(t *testing.T) {
	c := newConfig([]Option{Operators("^")})
	assert.True(t, c.enabled("^"))
	assert.True(t, c.enabled("**"))
	assert.False(t, c.enabled("*"))

	toks, err := Tokenize("2**3", Operators("^"), IntTiles(2, 3))
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, "^", toks[1].Op.Symbol)

	assert.Panics(t, func() { newConfig([]Option{Operators("%")}) })
	c = newConfig([]Option{Operators("SQRT")})
	assert.True(t, c.enabled("sqrt"))
}

func TestOperatorsAccumulate(t *testing.T) {
	c := newConfig([]Option{Basic(), Operators("!"), Operators("c")})
	for _, sym := range []string{"+", "-", "*", "/", "!", "c"} {
		assert.True(t, c.enabled(sym), "%q", sym)
	}
	// Presets share their operator maps; adding must not leak into them.
	b := newConfig([]Option{Basic()})
	assert.False(t, b.enabled("!"))
	assert.False(t, b.enabled("c"))
}

func TestPresetReplaces(t *testing.T) {
	round := Preset(All(), IntTiles(1, 2))
	c := newConfig([]Option{Concat(false), IntTiles(9), round})
	assert.True(t, c.concat)
	assert.Equal(t, []string{"1", "2"}, c.tiles)
	assert.True(t, c.enabled("root"))

	c = newConfig([]Option{round, Concat(false), UnaryMinus(false), Decimals(DecimalNoLeading)})
	assert.False(t, c.concat)
	assert.False(t, c.unaryMinus)
	assert.Equal(t, DecimalNoLeading, c.decimal)
	assert.Equal(t, []string{"1", "2"}, c.tiles)

	// The preset itself is unchanged by later options.
	c = newConfig([]Option{round})
	assert.True(t, c.concat)
	assert.True(t, c.unaryMinus)
}

func TestPresetRules(t *testing.T) {
	cases := []struct {
		name  string
		opt   Option
		on    []string
		off   []string
		unary bool
	}{
		{"basic", Basic(), []string{"+", "-", "*", "/"}, []string{"!", "^", "sqrt", "root", "c"}, false},
		{"extended", Extended(), []string{"+", "*", "!", "^", "**", "sqrt"}, []string{"root", "!!", "p", "c"}, true},
		{"all", All(), []string{"+", "!", "^", "root", "!!", "p", "c"}, nil, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := newConfig([]Option{c.opt})
			for _, sym := range c.on {
				assert.True(t, cfg.enabled(sym), "%q", sym)
			}
			for _, sym := range c.off {
				assert.False(t, cfg.enabled(sym), "%q", sym)
			}
			assert.Equal(t, c.unary, cfg.unaryMinus)
		})
	}
}

func TestTilesCopied(t *testing.T) {
	src := []string{"1", "2"}
	opt := Tiles(src...)
	src[0] = "7"
	c := newConfig([]Option{opt})
	assert.Equal(t, []string{"1", "2"}, c.tiles)
}

func TestMatchPreset(t *testing.T) {
	cases := []struct {
		names []string
		want  string
	}{
		{[]string{"+", "-", "*", "/"}, "basic"},
		{[]string{"/", "*", "-", "+", "()"}, "basic"},
		{[]string{"+", "-", "*", "/", "!", "^", "sqrt", "unary -"}, "extended"},
		{[]string{"+", "-", "*", "/", "!", "**", "SQRT", "Unary -", "^"}, "extended"},
		{[]string{"+", "-", "*", "/", "!", "^", "sqrt", "unary -", "nthroot", "!!", "P", "C", "concat", "."}, "all"},
		{[]string{"+", "-", "*", "/", "!", "^", "sqrt"}, ""},
		{[]string{"+", "-", "*"}, ""},
		{[]string{"+", "-", "*", "/", "concat"}, ""},
		{nil, ""},
	}
	for _, c := range cases {
		got, err := MatchPreset(c.names...)
		require.NoError(t, err, "%q", c.names)
		assert.Equal(t, c.want, got, "%q", c.names)
	}
	_, err := MatchPreset("+", "mod")
	assert.Error(t, err)
}
