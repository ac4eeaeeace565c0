package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the pre-configured lipgloss styles for the browser.
type Styles struct {
	// Title is the header above the guide list and content pane.
	Title lipgloss.Style

	// Help is the dimmed key hint line at the bottom.
	Help lipgloss.Style

	// Content frames the guide text pane.
	Content lipgloss.Style

	// Error renders load failures.
	Error lipgloss.Style
}

// DefaultStyles returns the default browser styles.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")).
			Padding(0, 1),
		Content: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")).
			Padding(0, 1),
	}
}
