package edit

import (
	"github.com/charmbracelet/lipgloss"

	"inkpad/internal/tui/theme"
)

var (
	titleBarStyle  = theme.Title
	labelStyle     = lipgloss.NewStyle().Foreground(theme.Secondary)
	mediaStyle     = theme.MediaPath
	mutedStyle     = theme.Muted
	helpStyle      = theme.ModalHelp
	noticeStyle    = theme.Warn
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	codeStyle      = lipgloss.NewStyle().Foreground(theme.TextMuted)
	checkedStyle   = theme.Done
	cursorStyle    = theme.Cursor
	selectedStyle  = theme.Selected
	moveModeStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	recordingStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Danger)
	canvasStyle    = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border)
	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1)
)
