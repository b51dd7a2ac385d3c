package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:              "logic [exprs...]",
	Short:            "logic - simplify boolean expressions",
	Args:             cobra.ArbitraryArgs,
	TraverseChildren: true,
	SilenceErrors:    true,
	SilenceUsage:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && inName == "" {
			return cmd.Help()
		}
		// logic [exprs...] behaves like the simplify subcommand.
		return simplifyCmd.RunE(simplifyCmd, args)
	},
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "rule configuration file (default .logic.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each rule application")
	simplifyFlags(rootCmd)

	rootCmd.AddCommand(simplifyCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(initCmd)
}
