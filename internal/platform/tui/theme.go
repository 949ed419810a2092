package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used outside the playfield.
type Theme struct {
	Title       lipgloss.Style
	Item        lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style
	Status      lipgloss.Style
	Warning     lipgloss.Style
}

// DefaultTheme returns the default styles.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Item:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

var theme = DefaultTheme()
