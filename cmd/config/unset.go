// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/pkg/config"
)

func newUnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset [key]",
		Short: "Remove configuration value",
		Long: `Remove a configuration key from a config file.

Environment variables and defaults still apply after removal.`,
		Args: cobra.ExactArgs(1),
		Example: `  welcome config unset panel.os
  welcome config unset --global panel.api-key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			scope := selectedScope()

			if err := config.UnsetConfigValue(key, scope); err != nil {
				return err
			}

			scopeName, configFile := scopeLabel(scope)
			fmt.Printf("Removed %s from %s config (%s)\n", key, scopeName, configFile)

			return nil
		},
	}

	addGlobalFlag(cmd)
	return cmd
}
