// Package config loads the rules of a round and the checker's logging
// settings from a YAML file and NUMMATCH_ environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/zephyrtronium/nummatch"
)

// Config holds all checker configuration.
type Config struct {
	Round RoundConfig `mapstructure:"round" validate:"required"`
	Log   LogConfig   `mapstructure:"log" validate:"required"`
}

// RoundConfig describes one round: the tiles, the target, and the rules that
// submissions follow.
type RoundConfig struct {
	// Tiles is the round's numbers in decimal form.
	Tiles []string `mapstructure:"tiles" validate:"dive,required"`
	// Target is the value to reach, as an integer, decimal, or fraction.
	// Empty means submissions are evaluated but not judged.
	Target string `mapstructure:"target"`
	// Preset names the base rules. With custom, only Operators are enabled.
	Preset string `mapstructure:"preset" validate:"required,oneof=basic extended all custom"`
	// Operators are added to the preset's, using the game's operator names.
	Operators []string `mapstructure:"operators"`
	// Concat, Decimal, and UnaryMinus override the preset when set.
	Concat     *bool  `mapstructure:"concat"`
	Decimal    string `mapstructure:"decimal" validate:"omitempty,oneof=not_allowed no_leading leading"`
	UnaryMinus *bool  `mapstructure:"unary_minus"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Round: RoundConfig{Preset: "extended"},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from the YAML file at path, if path is not empty,
// and from environment variables, which take precedence. Variables use the
// NUMMATCH_ prefix with keys joined by underscores, e.g. NUMMATCH_ROUND_PRESET.
// Lists in variables are comma separated, e.g. NUMMATCH_ROUND_TILES=1,2,10.
// The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("round.preset", def.Round.Preset)
	v.SetDefault("round.tiles", []string{})
	v.SetDefault("round.target", "")
	v.SetDefault("round.operators", []string{})
	v.SetDefault("round.decimal", "")
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("NUMMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Keys without defaults are only read from the environment when bound.
	for _, key := range []string{"round.concat", "round.unary_minus"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints, that every tile is one the engine
// accepts, and that the target is a number.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for _, t := range cfg.Round.Tiles {
		if !nummatch.ValidTile(t) {
			return fmt.Errorf("invalid config: round tile %q is not a decimal number", t)
		}
	}
	if cfg.Round.Target != "" {
		if _, err := nummatch.ParseExact(cfg.Round.Target); err != nil {
			return fmt.Errorf("invalid config: round target: %w", err)
		}
	}
	return nil
}

// presets are the game's operator names for each preset. They match
// nummatch.Basic, nummatch.Extended, and nummatch.All.
var presets = map[string][]string{
	"basic":    {"+", "-", "*", "/"},
	"extended": {"+", "-", "*", "/", "!", "^", "sqrt", "unary -"},
	"all":      {"+", "-", "*", "/", "!", "^", "sqrt", "unary -", "nthroot", "!!", "p", "c", "concat", "."},
	"custom":   nil,
}

// Options converts the round to engine options. The preset's names and the
// extra Operators are combined, then Concat, Decimal, and UnaryMinus apply on
// top. The result is a single preset that includes the tiles.
func (r *RoundConfig) Options() (nummatch.Option, error) {
	base, ok := presets[strings.ToLower(r.Preset)]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", r.Preset)
	}
	names := append(base[:len(base):len(base)], r.Operators...)
	rules, err := nummatch.GameOperators(names...)
	if err != nil {
		return nil, err
	}
	opts := []nummatch.Option{rules}
	if r.Concat != nil {
		opts = append(opts, nummatch.Concat(*r.Concat))
	}
	if r.Decimal != "" {
		d, err := nummatch.ParseDecimalPolicy(r.Decimal)
		if err != nil {
			return nil, err
		}
		opts = append(opts, nummatch.Decimals(d))
	}
	if r.UnaryMinus != nil {
		opts = append(opts, nummatch.UnaryMinus(*r.UnaryMinus))
	}
	opts = append(opts, nummatch.Tiles(r.Tiles...))
	return nummatch.Preset(opts...), nil
}

// TargetValue parses the target. ok is false if the round has none.
func (r *RoundConfig) TargetValue() (x nummatch.Exact, ok bool, err error) {
	if r.Target == "" {
		return x, false, nil
	}
	x, err = nummatch.ParseExact(r.Target)
	return x, err == nil, err
}
