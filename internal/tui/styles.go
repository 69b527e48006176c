// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal
	colorUnknown   = lipgloss.Color("160") // Dark red, for unresolved bytes
	colorError     = lipgloss.Color("196") // Bright red
	colorSuccess   = lipgloss.Color("40")  // Green
	colorWhite     = lipgloss.Color("231")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(0, 1)

	// Bordered boxes around the decryptions and the key.
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)
	boxTitleStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)

	lineNumberStyle = lipgloss.NewStyle().Foreground(colorSubtle).Bold(true)
	unknownStyle    = lipgloss.NewStyle().Foreground(colorUnknown).Bold(true)
	cursorStyle     = lipgloss.NewStyle().Reverse(true)
	columnStyle     = lipgloss.NewStyle().Underline(true)

	helpStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	menuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorHighlight).
			Padding(1, 3)
	menuItemStyle       = lipgloss.NewStyle().Padding(0, 1)
	menuActiveItemStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(colorWhite).
				Background(colorHighlight)
)
