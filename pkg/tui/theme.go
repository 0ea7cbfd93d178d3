package tui

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header   lipgloss.Style
	Streak   lipgloss.Style
	Pane     lipgloss.Style
	Focused  lipgloss.Style
	Title    lipgloss.Style
	Category lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Ordinal  lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Date     lipgloss.Style
	Chip     lipgloss.Style
	Text     lipgloss.Style
	Empty    lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
	Warning  lipgloss.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	accent := lipgloss.Color("99")
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Streak:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Pane:     pane,
		Focused:  pane.BorderForeground(accent),
		Title:    lipgloss.NewStyle().Bold(true),
		Category: lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Cursor:   lipgloss.NewStyle().Reverse(true),
		Ordinal:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(accent).Padding(0, 1),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("236")).Padding(0, 1),
		Date:     lipgloss.NewStyle().Bold(true),
		Chip:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Text:     lipgloss.NewStyle().Italic(true),
		Empty:    lipgloss.NewStyle().Faint(true).Italic(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}
