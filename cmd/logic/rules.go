package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/logic"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the simplification rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		runRules(cmd.OutOrStdout(), cfg)
		return nil
	},
}

func runRules(w io.Writer, cfg *logic.Config) {
	for _, r := range logic.Rules() {
		state := trueStyle.Sprint("on ")
		if !cfg.Enabled(r.Name) {
			state = falseStyle.Sprint("off")
		}
		fmt.Fprintf(w, "%s  %-18s %s\n", state, r.Name, r.Law)
	}
}
