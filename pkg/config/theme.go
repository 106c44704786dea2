// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the application color scheme
type Theme struct {
	Primary   string // Panel blue
	Secondary string // Sky
	Muted     string // Slate
	Success   string
	Info      string
	Warning   string
	Error     string
}

// CurrentTheme is the active theme used throughout the application
var CurrentTheme = Theme{
	Primary:   "#4FA3F7",
	Secondary: "#8FD3FE",
	Muted:     "#7A8699",
	Success:   "#6CCB73",
	Info:      "#8FD3FE",
	Warning:   "#FFD700",
	Error:     "#FF6B6B",
}

// GetSecondaryColor is the accent used by headers and the install spinner
func (t Theme) GetSecondaryColor() lipgloss.Color {
	return lipgloss.Color(t.Secondary)
}

func (t Theme) SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true)
}

func (t Theme) InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info))
}

func (t Theme) WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning))
}

func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error))
}

func (t Theme) SubtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
}

// Message symbols, shared with the indicators
const (
	symbolSuccess = "✓"
	symbolInfo    = "ℹ"
	symbolWarning = "⚠"
	symbolError   = "✗"
)

func (t Theme) SuccessMessage(text string) string {
	return t.SuccessStyle().Render(symbolSuccess + " " + text)
}

func (t Theme) InfoMessage(text string) string {
	return t.InfoStyle().Render(symbolInfo + " " + text)
}

func (t Theme) WarningMessage(text string) string {
	return t.WarningStyle().Render(symbolWarning + " " + text)
}

func (t Theme) ErrorMessage(text string) string {
	return t.ErrorStyle().Render(symbolError + " " + text)
}

// ActiveIndicator marks the step the wizard is on
func (t Theme) ActiveIndicator() string {
	return t.SuccessStyle().Render("●")
}

// PendingIndicator marks steps and extensions not reached or not installed
func (t Theme) PendingIndicator() string {
	return t.SubtleStyle().Render("○")
}

// CompleteIndicator marks installed extensions
func (t Theme) CompleteIndicator() string {
	return t.SuccessStyle().Render(symbolSuccess)
}

// ErrorIndicator marks failed installs
func (t Theme) ErrorIndicator() string {
	return t.ErrorStyle().Render(symbolError)
}

// WarningIndicator marks skipped installs
func (t Theme) WarningIndicator() string {
	return t.WarningStyle().Render(symbolWarning)
}

// RenderHeader renders the banner shown above the wizard and install views
// Format: "  WELCOME  ▸  SECTION  ▸  [CONTEXT]  "
func (t Theme) RenderHeader(width int, section, context string) string {
	headerText := fmt.Sprintf("  WELCOME  ▸  %s  ▸  [%s]  ", section, context)
	return lipgloss.NewStyle().
		Foreground(t.GetSecondaryColor()).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render(headerText)
}

// RenderFooter renders the key binding line under the install view
// Format: "╰─ [content] ─╯"
func (t Theme) RenderFooter(width int, content string) string {
	return t.SubtleStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("╰─ " + content + " ─╯")
}
