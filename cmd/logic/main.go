package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/zephyrtronium/logic"
)

var (
	changedStyle = color.New(color.FgGreen, color.Bold)
	sameStyle    = color.New(color.FgWhite)
	trueStyle    = color.New(color.FgGreen)
	falseStyle   = color.New(color.FgRed)
	headerStyle  = color.New(color.FgCyan, color.Bold)
)

func main() {
	if err := Execute(); err != nil {
		if !errors.Is(err, errNotEquivalent) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// newLogger creates the logger for diagnostics on stderr. Rule tracing is at
// debug level, so it only appears when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// loadConfig loads the file named by --config, or the default config file if
// it exists, or else the default configuration.
func loadConfig(path string) (*logic.Config, error) {
	if path == "" {
		if _, err := os.Stat(logic.DefaultConfigFile); err != nil {
			return logic.DefaultConfig(), nil
		}
		path = logic.DefaultConfigFile
	}
	return logic.LoadConfig(path)
}

// inputs collects the sources of expressions: the named file, if any, then
// each argument. With no file and no arguments, std is used.
func inputs(inname string, args []string, std io.Reader) ([]io.RuneScanner, error) {
	var ins []io.RuneScanner
	f, err := infile(inname, len(args) == 0, std)
	if err != nil {
		return nil, err
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range args {
		ins = append(ins, strings.NewReader(arg))
	}
	return ins, nil
}

func infile(inname string, usestd bool, std io.Reader) (io.RuneScanner, error) {
	var f io.Reader
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", usestd:
		f = std
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}

// parseAll parses every expression from the inputs.
func parseAll(ins []io.RuneScanner, opts ...logic.ParseOption) ([]*logic.Expr, error) {
	var p []*logic.Expr
	for _, in := range ins {
		for {
			// First check whether we're done with the input.
			r, _, err := in.ReadRune()
			if err != nil {
				if err == io.EOF {
					break
				}
				return nil, err
			}
			if unicode.IsSpace(r) {
				continue
			}
			in.UnreadRune()
			a, err := logic.Parse(in, opts...)
			if err != nil {
				return nil, fmt.Errorf("expression %d: %w", len(p)+1, err)
			}
			p = append(p, a)
		}
	}
	return p, nil
}
