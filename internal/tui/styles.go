// Package tui renders key tables and conversions for the terminal and runs
// the interactive converter.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/pmpy/internal/phonetic"
)

// Color palette
var (
	ColorBlue   = lipgloss.Color("#5fa8ff") // Consonant keys
	ColorGreen  = lipgloss.Color("#a8e6cf") // Vowel keys
	ColorYellow = lipgloss.Color("#ffe66d") // Punctuation and unused keys
	ColorRed    = lipgloss.Color("#FF6B6B") // Space key
	ColorMuted  = lipgloss.Color("#666666") // Gray - help text, marks
	ColorText   = lipgloss.Color("#f1faee") // Light text
	ColorLabel  = lipgloss.Color("#a8dadc") // Label color
	ColorBg     = lipgloss.Color("#1a1a2e") // Dark background
	ColorBorder = lipgloss.Color("#3d5a80") // Border color
)

// GroupColor returns the color a key group is drawn in.
func GroupColor(g phonetic.Group) lipgloss.Color {
	switch g {
	case phonetic.GroupBlue:
		return ColorBlue
	case phonetic.GroupGreen:
		return ColorGreen
	case phonetic.GroupYellow:
		return ColorYellow
	case phonetic.GroupRed:
		return ColorRed
	default:
		return ColorText
	}
}

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRed).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)
)

// Conversion styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(10)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	MarkStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)
)
