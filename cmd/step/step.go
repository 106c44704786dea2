// SPDX-License-Identifier: Apache-2.0
package step

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/cmd/cmdutil"
	"github.com/Work-Fort/Welcome/pkg/config"
	"github.com/Work-Fort/Welcome/pkg/platform"
	"github.com/Work-Fort/Welcome/pkg/settings"
	"github.com/Work-Fort/Welcome/pkg/welcome"
)

// position is a step as printed by current and next
type position struct {
	Number int    `json:"number" yaml:"number"`
	ID     string `json:"id" yaml:"id"`
}

// NewStepCmd creates the step command and its subcommands
func NewStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Inspect and move through the wizard steps",
		Long: `Inspect and move through the wizard steps.

The step table depends on the panel OS (panel.os). Windows panels skip
the security-advisor step. The current step is kept in the settings
store under welcome-step.`,
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newCurrentCmd())
	cmd.AddCommand(newNextCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newAdvanceCmd())

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the steps for the panel OS",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := cmdutil.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			table := session.Helper.StepListForOS()
			current := session.Helper.CurrentStep()

			return cmdutil.PrintResult(table, func() {
				theme := config.CurrentTheme
				fmt.Println(theme.SubtleStyle().Render("Steps for " + platform.Name(session.OS)))
				for _, s := range table {
					indicator := theme.PendingIndicator()
					if s.Number == current {
						indicator = theme.ActiveIndicator()
					}
					fmt.Printf("%s %d  %s\n", indicator, s.Number, cmdutil.DisplayName(s.ID))
				}
			})
		},
	}
}

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the stored step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := cmdutil.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			n := session.Helper.CurrentStep()
			id, _ := session.Helper.StepListForOS().Lookup(n)
			return printPosition(position{Number: n, ID: id})
		},
	}
}

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Print the step after the stored one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := cmdutil.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			return printPosition(position{
				Number: session.Helper.NextStep(),
				ID:     session.Helper.NextStepID(),
			})
		},
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <n>",
		Short: "Store the current step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid step number: %s", args[0])
			}

			session, err := cmdutil.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			p, err := setStep(session, n)
			if err != nil {
				return err
			}

			return printPosition(p)
		},
	}
}

func newAdvanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance",
		Short: "Move to the next step",
		Long: `Move to the next step. The last step is sticky: advancing from it
keeps it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := cmdutil.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			next, err := advance(session)
			if err != nil {
				return err
			}

			return printPosition(next)
		},
	}
}

// setStep stores n when the panel OS table has it
func setStep(session *cmdutil.Session, n int) (position, error) {
	table := session.Helper.StepListForOS()

	id, ok := table.Lookup(n)
	if !ok {
		return position{}, fmt.Errorf("step %d is not part of the %s wizard (steps: %v)",
			n, platform.Name(session.OS), table.Numbers())
	}

	if err := session.Settings.Set(settings.KeyWelcomeStep, n); err != nil {
		return position{}, err
	}

	return position{Number: n, ID: id}, nil
}

// advance stores the step after the current one
func advance(session *cmdutil.Session) (position, error) {
	next := position{Number: session.Helper.NextStep(), ID: session.Helper.NextStepID()}
	if err := session.Settings.Set(settings.KeyWelcomeStep, next.Number); err != nil {
		return position{}, err
	}
	return next, nil
}

func printPosition(p position) error {
	return cmdutil.PrintResult(p, func() {
		if p.ID == "" {
			fmt.Printf("%d\n", p.Number)
			return
		}
		fmt.Printf("%d %s\n", p.Number, welcomeLabel(p.ID))
	})
}

func welcomeLabel(id string) string {
	if id == welcome.RestartStep {
		return config.CurrentTheme.SubtleStyle().Render("(" + id + ")")
	}
	return config.CurrentTheme.InfoStyle().Render(cmdutil.DisplayName(id))
}
