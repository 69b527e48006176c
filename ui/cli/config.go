// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/manytime/internal/config"
	"github.com/toeirei/manytime/internal/i18n"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var system bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path, err := config.WriteConfigFile(&c, system)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", path))
			return err
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide file instead of the user file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the user and system config file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, system := range []bool{false, true} {
				path, err := config.GetConfigPath(system)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}
