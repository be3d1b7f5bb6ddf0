// Package style defines lipgloss styles for the TUI.
package style

import "github.com/charmbracelet/lipgloss"

// UI styles using lipgloss.
// These are package-level for convenience; lipgloss styles are value types
// and safe for concurrent use.
var (
	// Title is used for the program header.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Subtitle is used for secondary text.
	Subtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Error is used for error messages.
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	// Help is used for keyboard shortcut hints.
	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Label is used for parameter names.
	Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	// Focus marks the focused parameter.
	Focus = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	// Fill is used for the filled part of a slider bar.
	Fill = lipgloss.NewStyle().
		Foreground(lipgloss.Color("63"))

	// Track is used for the unfilled part of a slider bar.
	Track = lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	// Value is used for the formatted parameter value.
	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	// Editing is used for the text entry field.
	Editing = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	// Muted is used for de-emphasized text such as tick marks.
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
)
