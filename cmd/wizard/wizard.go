// SPDX-License-Identifier: Apache-2.0
package wizard

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/cmd/cmdutil"
	"github.com/Work-Fort/Welcome/pkg/config"
	"github.com/Work-Fort/Welcome/pkg/settings"
	"github.com/Work-Fort/Welcome/pkg/ui"
	"github.com/Work-Fort/Welcome/pkg/welcome"
)

// NewWizardCmd creates the wizard command
func NewWizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Walk through the onboarding wizard",
		Long: `Walk through the onboarding wizard.

The wizard resumes at the stored step and offers each catalog extension in
turn. Answering no skips the extension. The last step offers to start
over.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmdutil.IsInteractive() {
				return fmt.Errorf("the wizard needs an interactive terminal (use the step and install commands instead)")
			}

			session, err := cmdutil.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			return newWizard(session).run(cmd.Context())
		},
	}
}

// wizard runs the interactive loop against a session. Prompts and the
// install progress are fields so the loop can run without a terminal.
type wizard struct {
	session *cmdutil.Session
	out     io.Writer
	now     func() time.Time
	confirm func(title, description, affirmative, negative string) (bool, error)
	install func(ctx context.Context, names []string, install ui.InstallFunc) ([]welcome.InstallResult, error)
}

func newWizard(session *cmdutil.Session) *wizard {
	return &wizard{
		session: session,
		out:     os.Stdout,
		now:     time.Now,
		confirm: ui.ConfirmStep,
		install: ui.RunInstallProgress,
	}
}

func (w *wizard) run(ctx context.Context) error {
	helper := w.session.Helper
	theme := config.CurrentTheme

	if helper.ShouldShowMessage() {
		fmt.Fprintln(w.out, theme.RenderHeader(60, "WIZARD", "welcome"))
		fmt.Fprintln(w.out)
		fmt.Fprintln(w.out, "Let's finish setting up this panel.")
		if err := w.session.Settings.Set(settings.KeyExecuted, w.now().Unix()); err != nil {
			return err
		}
	}

	active, err := helper.HasActiveDomains(ctx)
	switch {
	case err != nil:
		log.Debug("Domain check failed", "err", err)
		fmt.Fprintln(w.out, theme.WarningMessage("Could not reach the panel API: "+err.Error()))
	case !active:
		fmt.Fprintln(w.out, theme.InfoMessage("No domains yet. Add a domain to make the most of these extensions."))
	}
	fmt.Fprintln(w.out)

	for {
		step := helper.CurrentStep()
		id, ok := helper.StepListForOS().Lookup(step)
		if !ok {
			// stored step belongs to another OS table; move on to an existing one
			if err := w.session.Settings.Set(settings.KeyWelcomeStep, helper.NextStep()); err != nil {
				return err
			}
			continue
		}

		if id == welcome.RestartStep {
			again, err := w.confirm("All done", "Start the wizard over?", "Start over", "Finish")
			if err != nil {
				return err
			}
			if again {
				return w.session.Settings.Set(settings.KeyWelcomeStep, 1)
			}
			fmt.Fprintln(w.out, theme.SuccessMessage("Wizard complete"))
			return nil
		}

		if err := w.offer(ctx, id); err != nil {
			return err
		}

		if err := w.session.Settings.Set(settings.KeyWelcomeStep, helper.NextStep()); err != nil {
			return err
		}
	}
}

// offer proposes installing extension id unless it is already installed
func (w *wizard) offer(ctx context.Context, id string) error {
	helper := w.session.Helper
	theme := config.CurrentTheme
	display := cmdutil.DisplayName(id)

	if helper.IsExtensionInstalled(id) {
		fmt.Fprintln(w.out, theme.SuccessMessage(display+" is already installed"))
		return nil
	}

	install, err := w.confirm("Install "+display+"?", "Catalog page: "+welcome.CatalogLink(id), "Install", "Skip")
	if err != nil {
		return err
	}
	if !install {
		fmt.Fprintln(w.out, theme.SubtleStyle().Render("Skipped "+display))
		return nil
	}

	results, err := w.install(ctx, []string{id}, helper.InstallExtension)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.OK() {
			fmt.Fprintln(w.out, theme.SuccessMessage("Installed "+display))
		} else {
			fmt.Fprintln(w.out, theme.ErrorMessage(display+": "+r.Message))
		}
	}
	return nil
}
