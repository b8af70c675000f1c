package home

import (
	"github.com/charmbracelet/lipgloss"

	"inkpad/internal/tui/theme"
)

var (
	titleStyle    = theme.Title
	cursorStyle   = theme.Cursor
	selectedStyle = theme.Selected
	rowStyle      = lipgloss.NewStyle().Foreground(theme.Text)
	tagStyle      = theme.ContentTag
	snippetStyle  = theme.Muted
	timeStyle     = theme.Muted
	emptyStyle    = theme.Muted
	filterStyle   = lipgloss.NewStyle().Foreground(theme.Secondary)
	helpStyle     = theme.ModalHelp

	pickerTitleStyle = theme.ModalTitle
	pickerBoxStyle   = theme.ModalBox
)
