// SPDX-License-Identifier: Apache-2.0
package status

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/cmd/cmdutil"
	"github.com/Work-Fort/Welcome/pkg/config"
	"github.com/Work-Fort/Welcome/pkg/platform"
	"github.com/Work-Fort/Welcome/pkg/settings"
	"github.com/Work-Fort/Welcome/pkg/welcome"
)

// Report is the wizard state shown by status
type Report struct {
	OS            string          `json:"os" yaml:"os"`
	DomainsActive *bool           `json:"domains_active" yaml:"domains_active"`
	DomainsError  string          `json:"domains_error,omitempty" yaml:"domains_error,omitempty"`
	Extensions    map[string]bool `json:"extensions" yaml:"extensions"`
	CurrentStep   int             `json:"current_step" yaml:"current_step"`
	NextStep      int             `json:"next_step" yaml:"next_step"`
	NextStepID    string          `json:"next_step_id" yaml:"next_step_id"`
	ShowMessage   bool            `json:"show_message" yaml:"show_message"`
}

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the wizard state",
		Long: `Show the wizard state: whether the panel has domains, which catalog
extensions are installed, where the wizard is and whether the welcome
message may be shown.

A panel that cannot be reached is reported, not treated as a failure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := cmdutil.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			report := Build(cmd.Context(), session)
			return cmdutil.PrintResult(report, func() { printReport(report) })
		},
	}

	cmd.AddCommand(newMessageCmd())
	return cmd
}

// Build collects the report for session
func Build(ctx context.Context, session *cmdutil.Session) Report {
	helper := session.Helper

	report := Report{
		OS:          platform.Name(session.OS),
		Extensions:  make(map[string]bool),
		CurrentStep: helper.CurrentStep(),
		NextStep:    helper.NextStep(),
		NextStepID:  helper.NextStepID(),
		ShowMessage: helper.ShouldShowMessage(),
	}

	if active, err := helper.HasActiveDomains(ctx); err != nil {
		report.DomainsError = err.Error()
	} else {
		report.DomainsActive = &active
	}

	for _, e := range welcome.Catalog() {
		report.Extensions[e.Name] = helper.IsExtensionInstalled(e.Name)
	}

	return report
}

func printReport(r Report) {
	theme := config.CurrentTheme

	fmt.Printf("Panel OS:      %s\n", r.OS)

	switch {
	case r.DomainsActive == nil:
		fmt.Printf("Domains:       %s\n", theme.WarningStyle().Render("unknown ("+r.DomainsError+")"))
	case *r.DomainsActive:
		fmt.Printf("Domains:       %s\n", theme.SuccessStyle().Render("active"))
	default:
		fmt.Printf("Domains:       %s\n", theme.SubtleStyle().Render("none"))
	}

	fmt.Printf("Step:          %d, next %d (%s)\n", r.CurrentStep, r.NextStep, r.NextStepID)
	fmt.Printf("Show message:  %t\n", r.ShowMessage)

	fmt.Println()
	for _, e := range welcome.Catalog() {
		indicator := theme.PendingIndicator()
		if r.Extensions[e.Name] {
			indicator = theme.CompleteIndicator()
		}
		fmt.Printf("%s %s\n", indicator, cmdutil.DisplayName(e.Name))
	}
}

func newMessageCmd() *cobra.Command {
	var mark bool

	cmd := &cobra.Command{
		Use:   "message",
		Short: "Report whether the welcome message may be shown",
		Long: `Report whether the welcome message may be shown. It is suppressed for
three seconds after it was last marked as shown.

With --mark the message is stamped as shown now when it may be shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := cmdutil.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			show, err := messageState(session, mark, time.Now())
			if err != nil {
				return err
			}

			return cmdutil.PrintResult(map[string]bool{"show_message": show}, func() {
				fmt.Println(show)
			})
		},
	}

	cmd.Flags().BoolVar(&mark, "mark", false, "Stamp the message as shown")
	return cmd
}

// messageState reports whether the welcome message may be shown and, when
// it may and mark is set, stamps it as shown at now
func messageState(session *cmdutil.Session, mark bool, now time.Time) (bool, error) {
	show := session.Helper.ShouldShowMessage()
	if show && mark {
		if err := session.Settings.Set(settings.KeyExecuted, now.Unix()); err != nil {
			return false, err
		}
	}
	return show, nil
}
