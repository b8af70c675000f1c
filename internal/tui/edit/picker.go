package edit

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inkpad/internal/media"
	"inkpad/internal/note"
	"inkpad/internal/tui/messages"
)

// ImagePickerModel asks for a source file path and imports it into the
// media library before the editor opens.
type ImagePickerModel struct {
	lib   *media.Library
	input textinput.Model
	err   error
	width int
}

func NewImagePickerModel(lib *media.Library) ImagePickerModel {
	input := textinput.New()
	input.Placeholder = "/path/to/image.png"
	input.Focus()
	return ImagePickerModel{lib: lib, input: input}
}

func (m *ImagePickerModel) SetSize(width, _ int) {
	m.width = width
	m.input.Width = width - 4
}

func (m ImagePickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ImagePickerModel) Update(msg tea.Msg) (ImagePickerModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, messages.BackToHome()
		case "enter":
			src := strings.TrimSpace(m.input.Value())
			if src == "" {
				return m, nil
			}
			path, err := m.lib.Import(src)
			if err != nil {
				m.err = err
				return m, nil
			}
			return m, func() tea.Msg {
				return messages.MediaReadyMsg{Type: note.TypeImage, Path: path}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ImagePickerModel) View() string {
	parts := []string{
		titleBarStyle.Render("Image note"),
		labelStyle.Render("Source file"),
		inputBoxStyle.Render(m.input.View()),
	}
	if m.err != nil {
		parts = append(parts, noticeStyle.Render(fmt.Sprintf("Import failed: %v", m.err)))
	}
	parts = append(parts, helpStyle.Render("enter: import • esc: cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
