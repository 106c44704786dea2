// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/pkg/config"
)

func newSchemaCmd() *cobra.Command {
	var outputFile string
	var scopeFlag string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Export configuration schema",
		Long: `Export the configuration schema in JSON Schema Draft 2020-12 format.

By default, the schema includes all keys. Use --scope to drop keys that
are forbidden in user or local config.`,
		Example: `  welcome config schema
  welcome config schema --scope local --file welcome.schema.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var scope *config.ConfigScope
			switch scopeFlag {
			case "":
			case "user":
				s := config.ScopeUser
				scope = &s
			case "local":
				s := config.ScopeLocal
				scope = &s
			default:
				return fmt.Errorf("invalid scope: %s (must be 'user' or 'local')", scopeFlag)
			}

			schema, err := config.GenerateJSONSchemaForScope(scope)
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}

			if outputFile == "" {
				fmt.Println(string(schema))
				return nil
			}

			if err := os.WriteFile(outputFile, schema, 0644); err != nil {
				return fmt.Errorf("failed to write schema to file: %w", err)
			}
			fmt.Printf("Schema written to %s\n", outputFile)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "file", "f", "", "Write schema to file instead of stdout")
	cmd.Flags().StringVar(&scopeFlag, "scope", "", "Filter by scope: user or local (default: all)")

	return cmd
}
