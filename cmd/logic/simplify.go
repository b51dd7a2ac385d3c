package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/logic"
)

var (
	inName    string
	perLine   bool
	echo      bool
	showStats bool
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [exprs...]",
	Short: "Simplify expressions",
	Long: `Simplifies each expression given as an argument, or read from --in or stdin.
Example) logic simplify "(A or (not A)) and B"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		ins, err := inputs(inName, args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		return runSimplify(cmd.OutOrStdout(), logger, cfg, ins, perLine, echo, showStats)
	},
}

func init() {
	simplifyFlags(simplifyCmd)
}

// simplifyFlags registers the simplify flags on cmd. The root command shares
// them, since it simplifies its arguments too.
func simplifyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&inName, "in", "", "input file (default stdin if no args given)")
	cmd.Flags().BoolVarP(&perLine, "lines", "n", false, "parse separate input lines as separate expressions")
	cmd.Flags().BoolVar(&echo, "echo", false, "print each input before its result")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print rewrite statistics after each result")
}

func runSimplify(w io.Writer, logger *zap.Logger, cfg *logic.Config, ins []io.RuneScanner, nl, echo, stats bool) error {
	popts := cfg.ParseOptions()
	if nl {
		popts = append(popts, logic.StopOn('\n'))
	}
	p, err := parseAll(ins, popts...)
	if err != nil {
		return err
	}

	for _, a := range p {
		var rep logic.Report
		opts := append(cfg.SimplifyOptions(), logic.Trace(logger), logic.Record(&rep))
		r := logic.Simplify(a, opts...)
		if echo {
			fmt.Fprintf(w, "%v => ", a)
		}
		style := sameStyle
		if !r.Equal(a) {
			style = changedStyle
		}
		style.Fprintln(w, r)
		if stats {
			printReport(w, &rep)
		}
	}
	return nil
}

func printReport(w io.Writer, rep *logic.Report) {
	fmt.Fprintf(w, "  passes: %d, rewrites: %d, nodes: %d -> %d\n", rep.Passes, rep.Rewrites(), rep.Before, rep.After)
	names := make([]string, 0, len(rep.Fired))
	for k := range rep.Fired {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(w, "  %s: %d\n", k, rep.Fired[k])
	}
}
