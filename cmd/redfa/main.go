// Command redfa compiles a regular expression into a DFA and prints the
// result as a textual listing and/or a Graphviz DOT digraph.
//
// Usage:
//
//	redfa [options] REGEX
//
// The exit status is 0 on success, 1 when the regex is rejected or an
// output cannot be written, and 2 for usage errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/coregx/redfa/dfa"
	"github.com/coregx/redfa/internal/config"
	"github.com/coregx/redfa/nfa"
	"github.com/coregx/redfa/render"
	"github.com/coregx/redfa/syntax"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, exit, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if exit {
		return 0
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	ab, err := buildAlphabet(cfg.Alphabet)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger.Debug("alphabet fixed", "symbols", ab.String())

	d, err := compile(cfg.Pattern, ab, logger)
	if err != nil {
		fmt.Fprintf(stderr, "regex %q is invalid: %v\n", cfg.Pattern, err)
		return 1
	}
	logger.Debug("pipeline finished", "dfa_states", d.States())

	if cfg.Listing {
		if err := render.WriteListing(stdout, d); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if cfg.DotPath != "" {
		if err := writeDOT(cfg.DotPath, d, stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		logger.Debug("dot rendering written", "path", cfg.DotPath)
	}
	return 0
}

// compile runs the pipeline stage by stage so that each intermediate form
// can be traced at debug level, the way the reference binary printed them.
func compile(pattern string, ab syntax.Alphabet, logger *slog.Logger) (*dfa.DFA, error) {
	expanded := syntax.InsertConcat(pattern, ab)
	logger.Debug("concatenation expanded", "infix", pattern, "expanded", expanded)

	postfix, err := syntax.ToPostfix(expanded, ab)
	if err != nil {
		return nil, err
	}
	logger.Debug("postfix form computed", "postfix", postfix)

	g, err := nfa.CompilePostfix(postfix, ab)
	if err != nil {
		return nil, err
	}
	logger.Debug("thompson NFA built", "states", g.Len())

	g.EliminateEpsilon()
	logger.Debug("epsilon transitions eliminated", "states", g.Len())

	return dfa.Determinize(g, ab), nil
}

func parseArgs(args []string, output io.Writer) (*config.Config, bool, error) {
	flagSet := flag.NewFlagSet("redfa", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `redfa - compile a regular expression into a DFA.

Usage:
  redfa [options] REGEX

Arguments:
  REGEX
    A regular expression over the working alphabet. Supported syntax:
    concatenation, union '|', star '*', plus '+', optional '?', grouping.

Options:
`)
		flagSet.PrintDefaults()
	}

	alphabetFlag := flagSet.String("alphabet", "", "Working alphabet (alphanumeric characters). Default: a-z.")
	configFlag := flagSet.String("config", "", "Path to an optional HCL config file.")
	dotFlag := flagSet.String("dot", "", "Write a Graphviz rendering to this path ('-' for stdout).")
	listingFlag := flagSet.Bool("listing", false, "Print the textual DFA listing to stdout.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json'. Default: text.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'. Default: info.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, err
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, fmt.Errorf("expected exactly one REGEX argument, got %d", flagSet.NArg())
	}

	cfg := config.Config{
		Pattern:   flagSet.Arg(0),
		Alphabet:  *alphabetFlag,
		DotPath:   *dotFlag,
		Listing:   *listingFlag,
		LogLevel:  strings.ToLower(*logLevelFlag),
		LogFormat: strings.ToLower(*logFormatFlag),
	}

	if *configFlag != "" {
		file, err := config.LoadFile(*configFlag)
		if err != nil {
			return nil, false, err
		}
		file.Apply(&cfg)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = config.LogFormatText
	}
	// With no output selected the listing is the useful default.
	if !cfg.Listing && cfg.DotPath == "" {
		cfg.Listing = true
	}

	validated, err := config.New(cfg)
	if err != nil {
		return nil, false, err
	}
	return validated, false, nil
}

func buildAlphabet(symbols string) (syntax.Alphabet, error) {
	if symbols == "" {
		return syntax.DefaultAlphabet(), nil
	}
	return syntax.NewAlphabet(symbols)
}

func writeDOT(path string, d *dfa.DFA, stdout io.Writer) error {
	if path == "-" {
		return render.WriteDOT(stdout, d)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.WriteDOT(f, d)
}

// newLogger creates a leveled slog.Logger writing to w. It does not touch
// the global logger.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
