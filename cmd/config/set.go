// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/pkg/config"
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set configuration value",
		Long: `Set a configuration key to a value.

Keys use dot notation for nested values (e.g., panel.url).

Boolean values support natural language:
  - true:  true, yes, on, enable, enabled
  - false: false, no, off, disable, disabled

Values of string keys are stored as given, even when they look numeric.`,
		Args: cobra.ExactArgs(2),
		Example: `  welcome config set use-tui off
  welcome config set panel.timeout 30s
  welcome config set panel.api-version 1.6.7.0
  welcome config set --global panel.password s3cret`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			scope := selectedScope()

			if err := config.SetConfigValue(key, value, scope); err != nil {
				return err
			}

			scopeName, configFile := scopeLabel(scope)
			fmt.Printf("Set %s (%s: %s)\n", key, scopeName, configFile)

			return nil
		},
	}

	addGlobalFlag(cmd)
	return cmd
}
