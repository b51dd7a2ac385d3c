package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/logic"
)

var tableCmd = &cobra.Command{
	Use:   "table EXPR",
	Short: "Print the truth table of an expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		return runTable(cmd.OutOrStdout(), cfg, args[0])
	},
}

func runTable(w io.Writer, cfg *logic.Config, src string) error {
	a, err := logic.ParseString(src, cfg.ParseOptions()...)
	if err != nil {
		return err
	}
	names := a.Vars()
	widths := make([]int, len(names))
	for i, name := range names {
		widths[i] = utf8.RuneCountInString(name)
	}
	for _, name := range names {
		headerStyle.Fprint(w, name)
		fmt.Fprint(w, " | ")
	}
	headerStyle.Fprintln(w, a)
	for _, wd := range widths {
		fmt.Fprint(w, strings.Repeat("-", wd)+"-+-")
	}
	fmt.Fprintln(w, strings.Repeat("-", utf8.RuneCountInString(a.String())))
	return a.Table(func(x logic.Assignment, v bool) bool {
		for i, name := range names {
			cell(w, x[name], widths[i])
			fmt.Fprint(w, " | ")
		}
		cell(w, v, 1)
		fmt.Fprintln(w)
		return true
	})
}

// cell writes a colored T or F padded to width.
func cell(w io.Writer, v bool, width int) {
	pad := strings.Repeat(" ", width-1)
	if v {
		trueStyle.Fprint(w, "T"+pad)
		return
	}
	falseStyle.Fprint(w, "F"+pad)
}
