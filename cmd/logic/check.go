package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/logic"
)

// errNotEquivalent makes the process exit with status 1 without printing an
// error message.
var errNotEquivalent = errors.New("expressions are not equivalent")

var checkCmd = &cobra.Command{
	Use:   "check EXPR EXPR",
	Short: "Check whether two expressions are equivalent",
	Long: `Compares the truth tables of two expressions and prints an assignment where they differ.
Example) logic check "not (A and B)" "not A or not B"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		return runCheck(cmd.OutOrStdout(), cfg, args[0], args[1])
	},
}

func runCheck(w io.Writer, cfg *logic.Config, x, y string) error {
	a, err := logic.ParseString(x, cfg.ParseOptions()...)
	if err != nil {
		return fmt.Errorf("first expression: %w", err)
	}
	b, err := logic.ParseString(y, cfg.ParseOptions()...)
	if err != nil {
		return fmt.Errorf("second expression: %w", err)
	}
	eq, diff, err := logic.Equivalent(a, b)
	if err != nil {
		return err
	}
	if eq {
		trueStyle.Fprintln(w, "equivalent")
		return nil
	}
	va, _ := a.Eval(diff)
	vb, _ := b.Eval(diff)
	falseStyle.Fprint(w, "not equivalent")
	fmt.Fprintf(w, ": %v gives %v and %v\n", diff, tf(va), tf(vb))
	return errNotEquivalent
}

func tf(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
