// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// styledHelpFunc renders help output as markdown through glamour
func styledHelpFunc(cmd *cobra.Command, args []string) {
	renderMarkdown(helpMarkdown(cmd))
}

// styledUsageFunc renders usage output as markdown through glamour
func styledUsageFunc(cmd *cobra.Command) error {
	renderMarkdown(usageMarkdown(cmd, "###"))
	return nil
}

// helpMarkdown creates markdown for the help output
func helpMarkdown(cmd *cobra.Command) string {
	var md strings.Builder

	fmt.Fprintf(&md, "# %s\n\n", cmd.CommandPath())

	switch {
	case cmd.Long != "":
		fmt.Fprintf(&md, "%s\n\n", cmd.Long)
	case cmd.Short != "":
		fmt.Fprintf(&md, "%s\n\n", cmd.Short)
	}

	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(&md, "Aliases: `%s`\n\n", strings.Join(cmd.Aliases, "`, `"))
	}

	md.WriteString(usageMarkdown(cmd, "##"))

	if cmd.Example != "" {
		fmt.Fprintf(&md, "## Examples\n\n```\n%s\n```\n\n", cmd.Example)
	}

	if hasSubCommands(cmd) {
		fmt.Fprintf(&md, "Use `%s [command] --help` for more information about a command.\n", cmd.CommandPath())
	}

	return md.String()
}

// usageMarkdown renders usage, subcommands and flags under headings of the
// given level
func usageMarkdown(cmd *cobra.Command, heading string) string {
	var md strings.Builder

	if cmd.Runnable() {
		fmt.Fprintf(&md, "%s Usage\n\n```\n%s\n```\n\n", heading, cmd.UseLine())
	}

	if hasSubCommands(cmd) {
		fmt.Fprintf(&md, "%s Commands\n\n", heading)
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() && !sub.IsAdditionalHelpTopicCommand() {
				fmt.Fprintf(&md, "- **%s** - %s\n", sub.Name(), sub.Short)
			}
		}
		md.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() {
		fmt.Fprintf(&md, "%s Flags\n\n```\n%s\n```\n\n", heading, cmd.LocalFlags().FlagUsages())
	}

	if cmd.HasAvailableInheritedFlags() {
		fmt.Fprintf(&md, "%s Global Flags\n\n```\n%s\n```\n\n", heading, cmd.InheritedFlags().FlagUsages())
	}

	return md.String()
}

// renderMarkdown renders markdown through glamour, falling back to plain text
func renderMarkdown(markdown string) {
	width := 100
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		fmt.Println(markdown)
		return
	}

	rendered, err := r.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}

	fmt.Println(strings.TrimRight(rendered, " \n"))
}

// hasSubCommands checks if command has available subcommands
func hasSubCommands(cmd *cobra.Command) bool {
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() && !sub.IsAdditionalHelpTopicCommand() {
			return true
		}
	}
	return false
}
