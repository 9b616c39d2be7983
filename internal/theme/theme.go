// Package theme centralises the Lip Gloss styles used by the simulator.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Screen       *lipgloss.Style
	Bezel        *lipgloss.Style
	Title        *lipgloss.Style
	Footer       *lipgloss.Style
	Info         *lipgloss.Style
	Error        *lipgloss.Style
	Filter       *lipgloss.Style
	FilterPrompt *lipgloss.Style
}

var defaultStyles = Styles{
	Screen: ptr(
		// amber-on-black, in the spirit of the real panel
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("233")),
	),
	Bezel: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(s lipgloss.Style) *lipgloss.Style {
	return &s
}
