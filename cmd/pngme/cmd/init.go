/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MercMayhem/PngMe/pkg/config"
)

func newInitCmd(state *cliState) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default pngme configuration file",
		Long: `Write the default configuration to ~/.config/pngme/config.yaml, or to
the path given with --config.

Examples:
  pngme init
  pngme init --config ./pngme.yaml --force`,
		Args: cobra.NoArgs,
		// init must work when the existing config file is invalid.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path := state.configPath
			if path == "" {
				path = config.GetDefaultConfigPath()
			}

			if config.ConfigExists(path) && !force {
				cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", path)
				return nil
			}

			if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			cmd.Printf("Wrote default config to %s\n", path)
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return initCmd
}
