// SPDX-License-Identifier: Apache-2.0
package config

import (
	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/pkg/config"
)

var (
	// globalFlag determines whether to operate on user config vs local config
	globalFlag bool
)

// NewConfigCmd creates the config command and its subcommands
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage welcome configuration",
		Long: `Manage welcome configuration settings.

Configuration precedence (highest to lowest):
  1. Environment variables (WELCOME_*, also read from ./.env)
  2. Local config (./welcome.yaml)
  3. User config (~/.config/welcome/config.yaml)
  4. Defaults

By default, config commands operate on local config (./welcome.yaml).
Use --global to operate on user config instead. Panel credentials can
only be stored in user config.`,
		Example: `  # Point the CLI at a panel
  welcome config set panel.url https://panel.example.com:8443
  welcome config set panel.os windows

  # Store credentials in user config
  welcome config set --global panel.api-key 0a1b2c3d

  # Keep wizard state in redis
  welcome config set settings.backend redis
  welcome config set --global settings.redis-url redis://localhost:6379/0

  # Inspect
  welcome config get panel.url
  welcome config list`,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newUnsetCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newSchemaCmd())

	return cmd
}

// addGlobalFlag adds the --global flag to a command
func addGlobalFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&globalFlag, "global", false, "Operate on user config instead of local config")
}

// selectedScope maps --global to a config scope
func selectedScope() config.ConfigScope {
	if globalFlag {
		return config.ScopeUser
	}
	return config.ScopeLocal
}

// scopeLabel describes the file a scope writes to
func scopeLabel(scope config.ConfigScope) (string, string) {
	if scope == config.ScopeUser {
		return "global", "~/.config/welcome/" + config.ConfigFileName + config.DefaultConfigExt
	}
	return "local", config.LocalConfigFile + config.DefaultConfigExt
}
