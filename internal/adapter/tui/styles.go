package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Violet
	secondaryColor = lipgloss.Color("#10B981") // Emerald
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red

	fgColor     = lipgloss.Color("#CDD6F4")
	mutedColor  = lipgloss.Color("#6C7086")
	borderColor = lipgloss.Color("#45475A")
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(fgColor).
	Background(primaryColor).
	Padding(0, 2).
	MarginBottom(1)

var labelStyle = lipgloss.NewStyle().
	Foreground(secondaryColor).
	Bold(true).
	Width(7)

// focusedStyle marks the form field the arrow keys act on
var focusedStyle = lipgloss.NewStyle().
	Foreground(accentColor).
	Bold(true)

var valueStyle = lipgloss.NewStyle().
	Foreground(fgColor)

var placeholderStyle = lipgloss.NewStyle().
	Foreground(mutedColor).
	Italic(true)

var errorStyle = lipgloss.NewStyle().
	Foreground(errorColor).
	Bold(true)

var hintStyle = lipgloss.NewStyle().
	Foreground(mutedColor)

var fareStyle = lipgloss.NewStyle().
	Foreground(secondaryColor).
	Bold(true)

var progressStyle = lipgloss.NewStyle().
	Foreground(accentColor)

var helpStyle = lipgloss.NewStyle().
	Foreground(mutedColor).
	MarginTop(1)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(borderColor).
	Padding(1, 2)
