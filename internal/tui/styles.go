package tui

import (
	"github.com/charmbracelet/lipgloss"

	"inkpad/internal/tui/theme"
)

var (
	// Status bar
	statusBarStyle = lipgloss.NewStyle().
		Foreground(theme.TextMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(theme.Border)
)
