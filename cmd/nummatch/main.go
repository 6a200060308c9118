package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/zephyrtronium/nummatch"
	"github.com/zephyrtronium/nummatch/internal/config"
	"github.com/zephyrtronium/nummatch/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run checks submissions and returns the exit status: 0 if every submission
// evaluated and, with a target, was correct; 1 otherwise; 2 for bad usage.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("nummatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgname, inname string
		nl, echo        bool
		over            config.RoundConfig
		loglevel        string
		logformat       string
	)
	list := func(dst *[]string) func(string) error {
		return func(s string) error {
			for _, v := range strings.Split(s, ",") {
				if v = strings.TrimSpace(v); v != "" {
					*dst = append(*dst, v)
				}
			}
			return nil
		}
	}
	optbool := func(dst **bool) func(string) error {
		return func(s string) error {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return err
			}
			*dst = &b
			return nil
		}
	}
	fs.StringVar(&cfgname, "config", "", "YAML round configuration file")
	fs.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	fs.Func("tiles", "comma-separated tiles (any number of times)", list(&over.Tiles))
	fs.StringVar(&over.Target, "target", "", "target value; submissions are judged against it")
	fs.StringVar(&over.Preset, "preset", "", "base rules: basic, extended, all, or custom")
	fs.Func("ops", "comma-separated extra operator names, e.g. nthroot,concat (any number of times)", list(&over.Operators))
	fs.Func("concat", "allow concatenating tiles (true or false)", optbool(&over.Concat))
	fs.StringVar(&over.Decimal, "decimal", "", "decimal point policy: not_allowed, no_leading, or leading")
	fs.Func("unary", "allow unary minus (true or false)", optbool(&over.UnaryMinus))
	fs.BoolVar(&nl, "n", false, "check separate input lines as separate submissions")
	fs.BoolVar(&echo, "echo", false, "print parse trees")
	fs.StringVar(&loglevel, "log-level", "", "log level: debug, info, warn, or error")
	fs.StringVar(&logformat, "log-format", "", "log format: text or json")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(cfgname)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	merge(&cfg.Round, &over)
	if loglevel != "" {
		cfg.Log.Level = loglevel
	}
	if logformat != "" {
		cfg.Log.Format = logformat
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if _, err := logger.Setup(stderr, cfg.Log.Level, cfg.Log.Format); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	round, err := cfg.Round.Options()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	target, judged, err := cfg.Round.TargetValue()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	inputs := fs.Args()
	f, done, err := infile(inname, stdin, len(inputs) == 0)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if f != nil {
		in, err := readInputs(f, nl)
		done()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		inputs = append(in, inputs...)
	}

	status := 0
	for _, input := range inputs {
		if !check(stdout, input, round, target, judged, echo) {
			status = 1
		}
	}
	return status
}

// merge applies the flags that were given over the loaded round.
func merge(dst, src *config.RoundConfig) {
	if len(src.Tiles) > 0 {
		dst.Tiles = src.Tiles
	}
	if src.Target != "" {
		dst.Target = src.Target
	}
	if src.Preset != "" {
		dst.Preset = src.Preset
	}
	dst.Operators = append(dst.Operators, src.Operators...)
	if src.Concat != nil {
		dst.Concat = src.Concat
	}
	if src.Decimal != "" {
		dst.Decimal = src.Decimal
	}
	if src.UnaryMinus != nil {
		dst.UnaryMinus = src.UnaryMinus
	}
}

// check evaluates one submission, prints the result, and reports whether it
// was accepted.
func check(w io.Writer, input string, round nummatch.Option, target nummatch.Exact, judged, echo bool) bool {
	if echo {
		e, err := nummatch.Parse(input, round)
		if err == nil {
			fmt.Fprintf(w, "%s : ", e.Tree())
		}
	}
	v, err := nummatch.Check(input, target, round)
	if err != nil {
		fmt.Fprintln(w, err)
		slog.Info("rejected",
			"input", input,
			"error_kind", nummatch.KindOf(err).String(),
			"error", err)
		return false
	}
	out := v.Value.String()
	if d, ok := v.Value.Decimal(); ok && !v.Value.IsInt() {
		out += " (" + d + ")"
	}
	if judged {
		if v.Correct {
			out += " correct"
		} else {
			out += " incorrect"
		}
	}
	fmt.Fprintln(w, out)
	attrs := []any{"input", input, "value", v.Value.String()}
	if judged {
		attrs = append(attrs, "target", target.String(), "correct", v.Correct)
	}
	slog.Debug("verdict", attrs...)
	return !judged || v.Correct
}

// readInputs reads submissions from r: one per line with lines, otherwise
// the whole input as one. Blank submissions are skipped.
func readInputs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, nil
		}
		return []string{strings.TrimSpace(string(b))}, nil
	}
	var in []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			in = append(in, s)
		}
	}
	return in, sc.Err()
}

// infile opens the named input, or stdin for "-" or when std is set. done
// closes the input if infile opened it.
func infile(inname string, stdin io.Reader, std bool) (r io.Reader, done func(), err error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	case inname == "-", std:
		if stdin == nil {
			return nil, nil, errors.New("no input")
		}
		return stdin, func() {}, nil
	}
	return nil, func() {}, nil
}
