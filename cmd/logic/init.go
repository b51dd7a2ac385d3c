package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/logic"
)

// initCmd: logic init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file enabling every rule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := initConfigurationFile(cfgFile)
		if err != nil {
			logger.Error("Error initializing config file", zap.String("path", path), zap.Error(err))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", path)
		return nil
	},
}

func initConfigurationFile(configurationPath string) (string, error) {
	if configurationPath == "" {
		configurationPath = logic.DefaultConfigFile
	}
	d, err := logic.DefaultConfig().Marshal()
	if err != nil {
		return configurationPath, err
	}
	if err := os.WriteFile(configurationPath, d, 0o644); err != nil {
		return configurationPath, err
	}
	return configurationPath, nil
}
