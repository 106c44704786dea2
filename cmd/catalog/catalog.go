// SPDX-License-Identifier: Apache-2.0
package catalog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/cmd/cmdutil"
	"github.com/Work-Fort/Welcome/pkg/config"
	"github.com/Work-Fort/Welcome/pkg/welcome"
)

// entry is one catalog row as printed by list
type entry struct {
	Name      string `json:"name" yaml:"name"`
	ID        string `json:"id" yaml:"id"`
	Link      string `json:"link" yaml:"link"`
	Installed bool   `json:"installed" yaml:"installed"`
}

// NewCatalogCmd creates the catalog command and its subcommands
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the extensions the wizard offers",
		Long: `Inspect the extensions the wizard offers.

Extensions are looked up by their exact, case-sensitive name. An extension
counts as installed when a directory with its name sits next to this
extension's plib directory (panel.plib-dir).`,
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newIDCmd())
	cmd.AddCommand(newLinkCmd())
	cmd.AddCommand(newInstalledCmd())

	return cmd
}

// localHelper needs neither settings nor the panel API
func localHelper() *welcome.Helper {
	return welcome.New(welcome.Options{PluginDir: config.GetPlibDir()})
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List catalog extensions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helper := localHelper()

			var entries []entry
			for _, e := range welcome.Catalog() {
				entries = append(entries, entry{
					Name:      e.Name,
					ID:        e.ID,
					Link:      welcome.CatalogLink(e.Name),
					Installed: helper.IsExtensionInstalled(e.Name),
				})
			}

			return cmdutil.PrintResult(entries, func() {
				theme := config.CurrentTheme
				for _, e := range entries {
					indicator := theme.PendingIndicator()
					if e.Installed {
						indicator = theme.CompleteIndicator()
					}
					fmt.Printf("%s %-20s %s\n", indicator, e.Name, theme.SubtleStyle().Render(e.ID))
				}
			})
		},
	}
}

func newIDCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "id <name>",
		Short: "Print the catalog ID of an extension",
		Long: `Print the catalog ID of an extension.

With --all an unknown name prints the whole name to ID table instead of
failing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup := welcome.LookupCatalog(args[0], all)

			if !all {
				if !lookup.Found {
					return fmt.Errorf("extension %q is not in the catalog", args[0])
				}
				return cmdutil.PrintResult(lookup, func() {
					fmt.Println(lookup.ID)
				})
			}

			return cmdutil.PrintResult(lookup, func() {
				if lookup.Found {
					fmt.Println(lookup.ID)
					return
				}
				fmt.Println(config.CurrentTheme.WarningMessage(fmt.Sprintf("%s is not in the catalog", args[0])))
				fmt.Println()
				for _, e := range welcome.Catalog() {
					fmt.Printf("%-20s %s\n", e.Name, lookup.All[e.Name])
				}
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Print the full catalog table for unknown names")
	return cmd
}

func newLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <name>",
		Short: "Print the panel catalog page of an extension",
		Long: `Print the panel catalog page of an extension. Unknown names link to
the catalog front page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link := welcome.CatalogLink(args[0])
			return cmdutil.PrintResult(map[string]string{"extension": args[0], "link": link}, func() {
				fmt.Println(link)
			})
		},
	}
}

func newInstalledCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "installed <name>",
		Short: "Report whether an extension is installed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			installed := localHelper().IsExtensionInstalled(name)

			return cmdutil.PrintResult(map[string]any{"extension": name, "installed": installed}, func() {
				theme := config.CurrentTheme
				if installed {
					fmt.Println(theme.SuccessMessage(name + " is installed"))
				} else {
					fmt.Println(theme.SubtleStyle().Render(name + " is not installed"))
				}
			})
		},
	}
}
