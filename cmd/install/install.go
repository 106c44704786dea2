// SPDX-License-Identifier: Apache-2.0
package install

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/cmd/cmdutil"
	"github.com/Work-Fort/Welcome/pkg/config"
	"github.com/Work-Fort/Welcome/pkg/ui"
	"github.com/Work-Fort/Welcome/pkg/welcome"
)

// NewInstallCmd creates the install command
func NewInstallCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "install <name>...",
		Short: "Install catalog extensions through the panel API",
		Long: `Install catalog extensions through the panel API.

Each extension is installed from its catalog download URL with an
install-module request. Names that are not in the catalog are skipped.
The command fails when any install was rejected or could not be sent.`,
		Example: `  welcome install wp-toolkit
  welcome install --all
  welcome install security-advisor --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if all {
				names = nil
				for _, e := range welcome.Catalog() {
					names = append(names, e.Name)
				}
			}
			if len(names) == 0 {
				return fmt.Errorf("no extensions given (pass names or --all)")
			}

			session, err := cmdutil.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			results, err := run(cmd, session.Helper, names)
			if err != nil && !errors.Is(err, ui.ErrInstallCancelled) {
				return err
			}

			if printErr := cmdutil.PrintResult(results, func() { printResults(results) }); printErr != nil {
				return printErr
			}
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if !r.OK() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d extensions failed to install", failed, len(results))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Install every catalog extension")
	return cmd
}

// run installs names behind a spinner when interactive, plainly otherwise
func run(cmd *cobra.Command, helper *welcome.Helper, names []string) ([]welcome.InstallResult, error) {
	if cmdutil.IsInteractive() && config.GetOutput() == "text" {
		return ui.RunInstallProgress(cmd.Context(), names, helper.InstallExtension)
	}

	results := make([]welcome.InstallResult, 0, len(names))
	for _, name := range names {
		log.Debug("Installing extension", "extension", name)
		results = append(results, helper.InstallExtension(cmd.Context(), name))
	}
	return results, nil
}

func printResults(results []welcome.InstallResult) {
	theme := config.CurrentTheme

	for _, r := range results {
		display := cmdutil.DisplayName(r.Extension)
		switch {
		case r.Skipped:
			fmt.Println(theme.WarningMessage(fmt.Sprintf("%s is not in the catalog, skipped", r.Extension)))
		case r.OK():
			fmt.Println(theme.SuccessMessage(fmt.Sprintf("Installed %s", display)))
		default:
			fmt.Println(theme.ErrorMessage(fmt.Sprintf("%s: %s", display, r.Message)))
		}
	}
}
