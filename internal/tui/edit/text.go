package edit

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inkpad/internal/editor"
	"inkpad/internal/tui/messages"
)

const (
	focusTitle = iota
	focusBody
)

// TextModel is the editor view for plain text notes: a title input, a body
// textarea and a markdown preview toggle.
type TextModel struct {
	session *editor.Session
	title   textinput.Model
	body    textarea.Model
	focus   int
	preview bool
	width   int
	height  int
}

func NewTextModel(session *editor.Session) TextModel {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 256
	ti.SetValue(session.Title())

	ta := textarea.New()
	ta.Placeholder = "Write something…"
	ta.SetValue(session.Text())
	ta.Focus()

	return TextModel{
		session: session,
		title:   ti,
		body:    ta,
		focus:   focusBody,
	}
}

// SetSize updates the view dimensions
func (m *TextModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.title.Width = width - 10
	m.body.SetWidth(width - 4)
	m.body.SetHeight(height - 6)
}

func (m TextModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m TextModel) Update(msg tea.Msg) (TextModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, m.close()
		case "tab":
			if m.focus == focusTitle {
				m.focus = focusBody
				m.title.Blur()
				return m, m.body.Focus()
			}
			m.focus = focusTitle
			m.body.Blur()
			return m, m.title.Focus()
		case "ctrl+p":
			m.preview = !m.preview
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
		m.session.SetTitle(m.title.Value())
	} else {
		m.body, cmd = m.body.Update(msg)
		m.session.SetText(m.body.Value())
	}
	return m, cmd
}

// close flushes the buffers into the session and emits the save decision.
func (m TextModel) close() tea.Cmd {
	m.session.SetTitle(m.title.Value())
	m.session.SetText(m.body.Value())
	outcome := m.session.Close()
	return func() tea.Msg {
		return messages.EditorDoneMsg{Outcome: outcome}
	}
}

func (m TextModel) View() string {
	header := titleBarStyle.Render("Text note")
	if m.session.Editing() {
		header = titleBarStyle.Render("Edit text note")
	}

	var body string
	if m.preview {
		body = RenderMarkdown(m.body.Value())
	} else {
		body = m.body.View()
	}

	help := helpStyle.Render("tab: title/body • ctrl+p: preview • esc: save & close")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		labelStyle.Render("Title: ")+m.title.View(),
		"",
		body,
		"",
		help,
	)
}
