package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/numeric"
	"github.com/zephyrtronium/numeric/internal/config"
)

// errFailed is returned when --keep-going reported at least one failure.
var errFailed = errors.New("some expressions could not be evaluated")

// options holds the flags shared by all commands.
type options struct {
	cfgFile   string
	envFiles  []string
	dsep      string
	rsep      string
	places    int
	maxPlaces int
	verbose   bool

	in        string
	raw       bool
	echo      bool
	keepGoing bool
}

func newRootCmd() *cobra.Command {
	o := new(options)
	root := &cobra.Command{
		Use:   "numeric [flags] [expr...]",
		Short: "Evaluate decimal arithmetic expressions",
		Long: `numeric evaluates arithmetic expressions using exact decimal arithmetic.

Each argument is one expression. With no arguments, or with --in, expressions
are read one per line. Results are printed one per line, truncated to the
configured number of decimal places.

Expressions support + - * / and parentheses. Operators that touch each other
form a single token, so write "1 + (2)" rather than "1+(2)". Use -- before an
expression that starts with a minus sign.

Settings come from, in increasing priority: defaults, the --config file,
NUMERIC_* environment variables (including those from .env files), and flags.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.cfgFile, "config", "", "config file (.toml, .yaml, or .yml)")
	pf.StringSliceVar(&o.envFiles, "env-file", nil, ".env files to load (default ./.env)")
	pf.StringVar(&o.dsep, "decimal-separator", "", "decimal separator (default \".\")")
	pf.StringVar(&o.rsep, "radix-separator", "", "digit grouping separator ignored on input (default \",\")")
	pf.IntVarP(&o.places, "places", "p", numeric.DefaultDecimalPlaces, "decimal places in results")
	pf.IntVar(&o.maxPlaces, "max-places", numeric.DefaultMaxDecimalPlaces, "maximum decimal places produced by division")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log debug information and show error details")

	f := root.Flags()
	f.StringVar(&o.in, "in", "", "input file, or - for stdin (default stdin if no args given)")
	f.BoolVar(&o.raw, "raw", false, "print results without truncating")
	f.BoolVar(&o.echo, "echo", false, "print parse trees")
	f.BoolVarP(&o.keepGoing, "keep-going", "k", false, "report failed expressions and continue")

	root.AddCommand(newTokensCmd(o), newTUICmd(o), newVersionCmd())
	return root
}

// setup creates the logger and resolves the configuration.
func (o *options) setup(cmd *cobra.Command) (numeric.Config, *slog.Logger, error) {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if err := config.LoadDotenv(o.envFiles...); err != nil {
		return numeric.Config{}, logger, err
	}
	var file map[string]any
	if o.cfgFile != "" {
		var err error
		file, err = config.Load(o.cfgFile)
		if err != nil {
			return numeric.Config{}, logger, err
		}
		logger.Debug("loaded config file", "path", o.cfgFile, "settings", len(file))
	}
	env, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return numeric.Config{}, logger, err
	}
	cfg, err := config.Resolve(file, env, o.flagLayer(cmd))
	if err != nil {
		return numeric.Config{}, logger, err
	}
	logger.Debug("resolved config", "config", cfg.String())
	return cfg, logger, nil
}

// flagLayer returns the settings given explicitly on the command line.
func (o *options) flagLayer(cmd *cobra.Command) map[string]any {
	flags := cmd.Flags()
	m := make(map[string]any)
	if flags.Changed("decimal-separator") {
		m[config.KeyDecimalSeparator] = o.dsep
	}
	if flags.Changed("radix-separator") {
		m[config.KeyRadixSeparator] = o.rsep
	}
	if flags.Changed("places") {
		m[config.KeyDecimalPlaces] = o.places
	}
	if flags.Changed("max-places") {
		m[config.KeyMaxDecimalPlaces] = o.maxPlaces
	}
	return m
}

// describe returns the message shown for a failed expression.
func (o *options) describe(err error) string {
	if o.verbose {
		return err.Error()
	}
	return "Invalid expression"
}

// inputs returns the expressions to evaluate: lines of the input file or
// stdin, followed by the arguments.
func (o *options) inputs(cmd *cobra.Command, args []string) ([]string, error) {
	var r io.Reader
	switch {
	case o.in != "" && o.in != "-":
		f, err := os.Open(o.in)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	case o.in == "-", len(args) == 0:
		r = cmd.InOrStdin()
	}
	var exprs []string
	if r != nil {
		s := bufio.NewScanner(r)
		for s.Scan() {
			exprs = append(exprs, s.Text())
		}
		if err := s.Err(); err != nil {
			return nil, err
		}
	}
	return append(exprs, args...), nil
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	cfg, logger, err := o.setup(cmd)
	if err != nil {
		return err
	}
	exprs, err := o.inputs(cmd, args)
	if err != nil {
		return err
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	failed := false
	for _, src := range exprs {
		if strings.TrimSpace(src) == "" {
			continue
		}
		logger.Debug("evaluating", "expr", src, "tokens", numeric.Tokenize(src))
		r, e, err := evaluate(src, cfg)
		if o.echo && e != nil {
			fmt.Fprintf(out, "%v : ", e)
		}
		if err != nil {
			logger.Debug("evaluation failed", "expr", src, "err", err)
			if o.echo && e != nil {
				fmt.Fprintln(out)
			}
			if !o.keepGoing {
				return fmt.Errorf("%s: %s", src, o.describe(err))
			}
			fmt.Fprintf(errOut, "%s: %s\n", src, o.describe(err))
			failed = true
			continue
		}
		if o.raw {
			fmt.Fprintln(out, r.String())
		} else {
			fmt.Fprintln(out, r.Format())
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

// evaluate parses and evaluates src. The parsed expression is returned even
// if evaluation fails, so that it can be echoed.
func evaluate(src string, cfg numeric.Config) (numeric.Decimal, *numeric.Expr, error) {
	e, err := numeric.Parse(src, cfg)
	if err != nil {
		return numeric.Decimal{}, nil, err
	}
	r, err := e.Eval()
	return r, e, err
}
