// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/cmd/cmdutil"
	"github.com/Work-Fort/Welcome/pkg/config"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Get configuration value",
		Long: `Get a configuration value and show its source.

The source indicates where the value comes from in precedence order:
  - ENV: Environment variable (WELCOME_*)
  - Local: Local config file (./welcome.yaml)
  - User: User config file (~/.config/welcome/config.yaml)
  - Default: Built-in default value

Secrets are masked.`,
		Args: cobra.ExactArgs(1),
		Example: `  welcome config get panel.url
  # panel.url = https://panel.example.com:8443 (from ./welcome.yaml)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configValue, err := config.GetConfigValue(args[0])
			if err != nil {
				return err
			}

			return cmdutil.PrintResult(configValue, func() {
				fmt.Printf("%s = %v (%s)\n", configValue.Key, configValue.Value, configValue.Source)
			})
		},
	}

	return cmd
}
