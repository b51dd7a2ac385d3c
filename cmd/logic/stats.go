package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/logic"
)

var (
	prec int
	verb string
)

var statsCmd = &cobra.Command{
	Use:   "stats EXPR",
	Short: "Print truth table statistics of an expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if prec <= 0 {
			return fmt.Errorf("precision (%d) must be positive", prec)
		}
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		return runStats(cmd.OutOrStdout(), cfg, args[0], uint(prec), verb)
	},
}

func init() {
	statsCmd.Flags().IntVarP(&prec, "prec", "p", 64, "precision of calculations in bits")
	statsCmd.Flags().StringVar(&verb, "fmt", "%.6g", "formatting string for probability and entropy")
}

func runStats(w io.Writer, cfg *logic.Config, src string, prec uint, verb string) error {
	a, err := logic.ParseString(src, cfg.ParseOptions()...)
	if err != nil {
		return err
	}
	s, err := a.Analyze(prec)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "variables:   %d\n", s.Vars)
	fmt.Fprintf(w, "rows:        %v\n", s.Rows)
	fmt.Fprintf(w, "satisfying:  %v\n", s.Satisfying)
	fmt.Fprintf(w, "probability: "+verb+"\n", s.Probability)
	fmt.Fprintf(w, "entropy:     "+verb+" bits\n", s.Entropy)
	switch {
	case s.Tautology():
		trueStyle.Fprintln(w, "tautology")
	case s.Contradiction():
		falseStyle.Fprintln(w, "contradiction")
	}
	return nil
}
