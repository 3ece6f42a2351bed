// Package ui renders search results in the terminal: a lipgloss-styled
// one-shot view, a plain view for piped output, and a bubbletea live-search
// model.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - single lime accent over grays.
const (
	ColorLime     = "154" // Primary accent - bright lime green
	ColorWhite    = "255" // Headers, important text
	ColorGray     = "245" // Secondary text, labels
	ColorDarkGray = "238" // Borders, separators
	ColorRed      = "196" // Errors
)

// Styles holds the result-rendering styles.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Kind     lipgloss.Style
	Section  lipgloss.Style
	Preview  lipgloss.Style
	Route    lipgloss.Style
	Score    lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the styles for TTY output.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Kind:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		Section:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Preview:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Route:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Score:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
	}
}
