// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Work-Fort/Welcome/pkg/config"
	"github.com/Work-Fort/Welcome/pkg/welcome"
)

// ErrInstallCancelled is returned when the user stops the install run
var ErrInstallCancelled = errors.New("installation cancelled")

// InstallFunc installs one extension. Failures are reported in the result.
type InstallFunc func(ctx context.Context, name string) welcome.InstallResult

type installNextMsg struct{}
type installDoneMsg struct {
	result welcome.InstallResult
}

// InstallProgress installs extensions one at a time behind a spinner
type InstallProgress struct {
	ctx     context.Context
	install InstallFunc
	names   []string
	results []welcome.InstallResult

	width     int
	current   int
	running   bool
	stopping  bool
	cancelled bool
	spinner   spinner.Model
}

// NewInstallProgress creates the model for names
func NewInstallProgress(ctx context.Context, names []string, install InstallFunc) *InstallProgress {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(config.CurrentTheme.GetSecondaryColor())

	return &InstallProgress{
		ctx:     ctx,
		install: install,
		names:   names,
		spinner: s,
	}
}

// Init implements tea.Model
func (m *InstallProgress) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return installNextMsg{} },
	)
}

// Update implements tea.Model
func (m *InstallProgress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if InstallKeyBindings().Contains(msg.String()) != nil {
			// the running install cannot be interrupted; stop once it reports
			m.stopping = true
			if !m.running {
				m.cancelled = true
				return m, tea.Quit
			}
		}
		return m, nil

	case installNextMsg:
		if m.Done() {
			return m, tea.Quit
		}
		m.running = true
		return m, m.installCurrent()

	case installDoneMsg:
		m.running = false
		m.results = append(m.results, msg.result)
		m.current++
		log.Debug("Extension install finished", "extension", msg.result.Extension, "ok", msg.result.OK())

		if m.stopping && !m.Done() {
			m.cancelled = true
			return m, tea.Quit
		}
		return m, func() tea.Msg { return installNextMsg{} }

	case spinner.TickMsg:
		if !m.Done() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// installCurrent runs the install of the current extension
func (m *InstallProgress) installCurrent() tea.Cmd {
	name := m.names[m.current]
	return func() tea.Msg {
		return installDoneMsg{result: m.install(m.ctx, name)}
	}
}

// View implements tea.Model
func (m *InstallProgress) View() string {
	theme := config.CurrentTheme

	lines := []string{
		theme.RenderHeader(m.width, "INSTALL", fmt.Sprintf("%d/%d", len(m.results), len(m.names))),
		"",
	}

	for i, name := range m.names {
		switch {
		case i < len(m.results):
			r := m.results[i]
			switch {
			case r.Skipped:
				lines = append(lines, theme.WarningIndicator()+" "+name+" "+theme.SubtleStyle().Render("not in catalog, skipped"))
			case r.OK():
				lines = append(lines, theme.CompleteIndicator()+" "+name)
			default:
				lines = append(lines, theme.ErrorIndicator()+" "+name+" "+theme.SubtleStyle().Render(r.Message))
			}
		case i == m.current && m.running:
			lines = append(lines, m.spinner.View()+" "+name)
		default:
			lines = append(lines, theme.PendingIndicator()+" "+name)
		}
	}

	footer := InstallKeyBindings().Render(theme.SubtleStyle())
	if m.stopping {
		footer = theme.SubtleStyle().Render("Stopping after the current extension...")
	}
	lines = append(lines, "", theme.RenderFooter(m.width, footer))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Done reports whether every extension has been attempted
func (m *InstallProgress) Done() bool {
	return m.current >= len(m.names)
}

// Results returns the results collected so far
func (m *InstallProgress) Results() []welcome.InstallResult {
	return m.results
}

// RunInstallProgress runs the install TUI and returns one result per
// attempted extension
func RunInstallProgress(ctx context.Context, names []string, install InstallFunc) ([]welcome.InstallResult, error) {
	m := NewInstallProgress(ctx, names, install)

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, err
	}

	done := final.(*InstallProgress)
	if done.cancelled {
		return done.Results(), ErrInstallCancelled
	}
	return done.Results(), nil
}
