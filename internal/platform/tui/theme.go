package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the shell.
type Theme struct {
	// HUD styles
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	Goal         lipgloss.Style
	Achievement  lipgloss.Style
	Status       lipgloss.Style
	Warning      lipgloss.Style
	Help         lipgloss.Style

	// Progress bar
	ProgressFull  lipgloss.Style
	ProgressEmpty lipgloss.Style

	// Overlay styles (question modal, help, name prompt)
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style
	OptionNormal  lipgloss.Style
	OptionActive  lipgloss.Style

	// Welcome menu styles
	MenuTitle       lipgloss.Style
	MenuSubtitle    lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Goal:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Achievement:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		ProgressFull:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		ProgressEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		OptionNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OptionActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuSubtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
