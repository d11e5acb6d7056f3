package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups every style the view uses.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Card     lipgloss.Style
	Solution lipgloss.Style
	Step     lipgloss.Style
	Empty    lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	accent := lipgloss.Color("#7D56F4")
	muted := lipgloss.Color("#6C6C6C")

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(accent).
			Padding(0, 2).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(muted).
			Width(8),
		Focused: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Width(8),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Solution: lipgloss.NewStyle().
			Bold(true),
		Step: lipgloss.NewStyle().
			Foreground(muted).
			PaddingLeft(4),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Italic(true),
		Footer: lipgloss.NewStyle().
			Foreground(muted),
	}
}
