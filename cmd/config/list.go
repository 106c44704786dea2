// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/cmd/cmdutil"
	"github.com/Work-Fort/Welcome/pkg/config"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all configuration values",
		Long: `List all configuration values with their sources.

Output format: key = value (source)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := config.ListConfigValues()
			if err != nil {
				return err
			}

			return cmdutil.PrintResult(values, func() {
				if len(values) == 0 {
					fmt.Println("No configuration set")
					return
				}

				for _, cv := range values {
					fmt.Printf("%s = %v (%s)\n", cv.Key, cv.Value, cv.Source)
				}

				fmt.Println("\n" + config.CurrentTheme.SubtleStyle().Render("Configuration precedence: ENV > local config > user config > defaults"))
			})
		},
	}

	return cmd
}
