package home

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"inkpad/internal/note"
	"inkpad/internal/tui/messages"
	"inkpad/internal/tui/shared"
)

type homeMode int

const (
	modeNormal homeMode = iota
	modeFilter
	modeTypePicker
	modeConfirmDelete
)

// Model is the home view: the recency-ordered note list fed by the store's
// observe stream, with fuzzy search, a content-type picker for new notes
// and delete confirmation.
type Model struct {
	notes         []note.Note
	cursor        int
	mode          homeMode
	filterInput   textinput.Model
	filterQuery   string
	filteredIdx   []int
	typeCursor    int
	confirm       *shared.ConfirmationModal
	pendingDelete *note.Note
	width         int
	height        int
}

func NewModel() Model {
	fi := textinput.New()
	fi.Placeholder = "search notes"
	fi.CharLimit = 128
	return Model{filterInput: fi}
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetNotes installs a fresh store snapshot. The stable-id diff keeps the
// cursor stable and skips work when nothing visible changed.
func (m *Model) SetNotes(notes []note.Note) {
	if note.Diff(m.notes, notes).Empty() && len(m.notes) == len(notes) {
		return
	}
	m.notes = notes
	if m.cursor >= len(m.visible()) {
		m.cursor = len(m.visible()) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.refilter()
}

// IsModal reports whether a modal (picker, filter, confirm) is active.
func (m Model) IsModal() bool {
	return m.mode != modeNormal
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shared.ConfirmationResultMsg:
		if m.mode != modeConfirmDelete {
			return m, nil
		}
		m.mode = modeNormal
		m.confirm = nil
		if msg.Confirmed && m.pendingDelete != nil {
			n := *m.pendingDelete
			m.pendingDelete = nil
			return m, func() tea.Msg {
				return messages.DeleteNoteMsg{Note: n}
			}
		}
		m.pendingDelete = nil
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeTypePicker:
			return m.updateTypePicker(msg)
		case modeConfirmDelete:
			if m.confirm != nil {
				return m, m.confirm.Update(msg)
			}
			m.mode = modeNormal
			return m, nil
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		if n := len(m.visible()); n > 0 {
			m.cursor = n - 1
		}
	case "enter":
		if n, ok := m.selected(); ok {
			return m, messages.EditNote(n)
		}
	case "n":
		m.mode = modeTypePicker
		m.typeCursor = 0
	case "d":
		if n, ok := m.selected(); ok {
			m.pendingDelete = &n
			m.confirm = shared.NewConfirmationModal(
				"Delete note?",
				fmt.Sprintf("%q will be removed along with its media.", displayTitle(n)),
				48,
			)
			m.mode = modeConfirmDelete
		}
	case "/":
		m.mode = modeFilter
		m.filterInput.SetValue(m.filterQuery)
		return m, m.filterInput.Focus()
	case "esc":
		if m.filterQuery != "" {
			m.filterQuery = ""
			m.refilter()
		}
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeNormal
		m.filterQuery = m.filterInput.Value()
		m.filterInput.Blur()
		m.refilter()
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.filterInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filterQuery = m.filterInput.Value()
	m.refilter()
	return m, cmd
}

func (m Model) updateTypePicker(msg tea.KeyMsg) (Model, tea.Cmd) {
	types := note.Types()
	switch msg.String() {
	case "j", "down":
		if m.typeCursor < len(types)-1 {
			m.typeCursor++
		}
	case "k", "up":
		if m.typeCursor > 0 {
			m.typeCursor--
		}
	case "enter":
		m.mode = modeNormal
		return m, messages.NewNote(types[m.typeCursor])
	case "esc":
		m.mode = modeNormal
	}
	return m, nil
}

func (m *Model) refilter() {
	if m.filterQuery == "" {
		m.filteredIdx = nil
		return
	}
	haystack := make([]string, len(m.notes))
	for i, n := range m.notes {
		haystack[i] = displayTitle(n) + " " + n.Snippet()
	}
	matches := fuzzy.Find(m.filterQuery, haystack)
	idx := make([]int, len(matches))
	for i, match := range matches {
		idx[i] = match.Index
	}
	m.filteredIdx = idx
	if m.cursor >= len(idx) {
		m.cursor = 0
	}
}

// visible returns indices into m.notes that pass the current filter.
func (m Model) visible() []int {
	if m.filterQuery == "" {
		idx := make([]int, len(m.notes))
		for i := range m.notes {
			idx[i] = i
		}
		return idx
	}
	return m.filteredIdx
}

func (m Model) selected() (note.Note, bool) {
	vis := m.visible()
	if m.cursor < 0 || m.cursor >= len(vis) {
		return note.Note{}, false
	}
	return m.notes[vis[m.cursor]], true
}

func (m Model) View() string {
	if m.mode == modeConfirmDelete && m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}
	if m.mode == modeTypePicker {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.typePickerView())
	}

	var b []string
	b = append(b, titleStyle.Render("Notes"))

	if m.mode == modeFilter {
		b = append(b, filterStyle.Render("/ ")+m.filterInput.View())
	} else if m.filterQuery != "" {
		b = append(b, filterStyle.Render("filter: "+m.filterQuery+"  (esc to clear)"))
	}

	vis := m.visible()
	if len(vis) == 0 {
		b = append(b, emptyStyle.Render("No notes. Press n to create one."))
	}

	maxRows := m.height - 4
	if maxRows < 1 {
		maxRows = len(vis)
	}
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	for i := start; i < len(vis) && i < start+maxRows; i++ {
		b = append(b, m.renderRow(m.notes[vis[i]], i == m.cursor))
	}

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}

func (m Model) renderRow(n note.Note, selected bool) string {
	cursor := "  "
	if selected {
		cursor = cursorStyle.Render("> ")
	}
	tag := tagStyle.Render(fmt.Sprintf("[%s]", n.Type().DisplayName()))
	title := displayTitle(n)
	if selected {
		title = selectedStyle.Render(title)
	} else {
		title = rowStyle.Render(title)
	}
	snippet := snippetStyle.Render(truncate(n.Snippet(), 40))
	when := timeStyle.Render(formatWhen(n.UpdatedAt))
	return fmt.Sprintf("%s%s %s  %s  %s", cursor, tag, title, snippet, when)
}

func (m Model) typePickerView() string {
	var content string
	content += pickerTitleStyle.Render("New note") + "\n\n"
	for i, t := range note.Types() {
		line := "  " + t.DisplayName()
		if i == m.typeCursor {
			line = cursorStyle.Render("> ") + selectedStyle.Render(t.DisplayName())
		}
		content += line + "\n"
	}
	content += "\n" + helpStyle.Render("[enter] create  [esc] cancel")
	return pickerBoxStyle.Render(content)
}

func displayTitle(n note.Note) string {
	if n.Title != "" {
		return n.Title
	}
	return "(untitled)"
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func formatWhen(millis int64) string {
	t := time.UnixMilli(millis)
	if time.Since(t) < 24*time.Hour {
		return t.Format("15:04")
	}
	return t.Format("2006-01-02")
}
