package edit

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inkpad/internal/editor"
	"inkpad/internal/media"
	"inkpad/internal/note"
	"inkpad/internal/tui/messages"
	"inkpad/internal/tui/shared"
)

// MediaModel is the editor view for audio, image and existing drawing
// notes: the media payload with an optional caption, plus a delete action
// that degrades the note to text.
type MediaModel struct {
	session *editor.Session
	title   textinput.Model
	caption textinput.Model
	focus   int
	confirm *shared.ConfirmationModal
	width   int
	height  int
}

func NewMediaModel(session *editor.Session) MediaModel {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 256
	ti.SetValue(session.Title())
	ti.Focus()

	ci := textinput.New()
	ci.Placeholder = "Caption (optional)"
	ci.CharLimit = 512
	ci.SetValue(session.Text())

	return MediaModel{
		session: session,
		title:   ti,
		caption: ci,
	}
}

// SetSize updates the view dimensions
func (m *MediaModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.title.Width = width - 10
	m.caption.Width = width - 12
}

func (m MediaModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m MediaModel) Update(msg tea.Msg) (MediaModel, tea.Cmd) {
	switch msg := msg.(type) {
	case shared.ConfirmationResultMsg:
		wasOpen := m.confirm != nil
		m.confirm = nil
		if wasOpen && msg.Confirmed {
			m.session.DeleteMedia()
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil {
			return m, m.confirm.Update(msg)
		}
		switch msg.String() {
		case "esc":
			return m, m.close()
		case "tab":
			if m.focus == focusTitle {
				m.focus = focusBody
				m.title.Blur()
				return m, m.caption.Focus()
			}
			m.focus = focusTitle
			m.caption.Blur()
			return m, m.title.Focus()
		case "ctrl+d":
			if !m.session.MediaDeleted() && m.session.MediaPath() != "" {
				m.confirm = shared.NewConfirmationModal(
					fmt.Sprintf("Delete %s?", m.session.ContentType().DisplayName()),
					"The file is removed and the note becomes a text note.",
					48,
				)
			}
			return m, nil
		case "ctrl+o":
			if m.session.ContentType() == note.TypeAudio && !m.session.MediaDeleted() {
				media.Play(m.session.MediaPath())
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
		m.session.SetTitle(m.title.Value())
	} else {
		m.caption, cmd = m.caption.Update(msg)
		m.session.SetText(m.caption.Value())
	}
	return m, cmd
}

func (m MediaModel) close() tea.Cmd {
	m.session.SetTitle(m.title.Value())
	m.session.SetText(m.caption.Value())
	outcome := m.session.Close()
	return func() tea.Msg {
		return messages.EditorDoneMsg{Outcome: outcome}
	}
}

func (m MediaModel) View() string {
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	kind := m.session.ContentType().DisplayName()
	header := titleBarStyle.Render(kind + " note")
	if m.session.Editing() {
		header = titleBarStyle.Render("Edit " + kind + " note")
	}

	var mediaLine string
	if m.session.MediaDeleted() {
		mediaLine = noticeStyle.Render("Media removed. This note will be saved as text.")
	} else if p := m.session.MediaPath(); p != "" {
		mediaLine = labelStyle.Render("File: ") + mediaStyle.Render(filepath.Base(p))
	} else {
		mediaLine = mutedStyle.Render("No media attached.")
	}

	help := "tab: title/caption • ctrl+d: delete media • esc: save & close"
	if m.session.ContentType() == note.TypeAudio && !m.session.MediaDeleted() {
		help = "tab: title/caption • ctrl+o: play • ctrl+d: delete media • esc: save & close"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		mediaLine,
		"",
		labelStyle.Render("Title:   ")+m.title.View(),
		labelStyle.Render("Caption: ")+m.caption.View(),
		"",
		helpStyle.Render(help),
	)
}
