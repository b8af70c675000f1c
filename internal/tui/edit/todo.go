package edit

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inkpad/internal/editor"
	"inkpad/internal/todo"
	"inkpad/internal/tui/messages"
)

// itemsSnapshotMsg carries a controller list snapshot into the view.
type itemsSnapshotMsg struct {
	items []todo.Item
}

// TodoModel is the editor view for todo notes: rows bound to the list
// controller, per-row text editing, completion toggling and a move mode.
// Reorder key repeats are throttled, and snapshots arriving mid-move are
// deferred until the move mode ends so rows never snap back under the
// cursor.
type TodoModel struct {
	session     *editor.Session
	ctl         *todo.Controller
	items       []todo.Item
	cursor      int
	focus       int
	title       textinput.Model
	rowInput    textinput.Model
	editingID   string
	moveMode    bool
	lastMove    time.Time
	throttle    time.Duration
	deferred    []todo.Item
	hasDeferred bool
	sub         <-chan []todo.Item
	cancelSub   func()
	width       int
	height      int
}

func NewTodoModel(session *editor.Session, throttle time.Duration) TodoModel {
	ctl := session.Todo()
	ctl.InitializeIfEmpty()

	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 256
	ti.SetValue(session.Title())

	ri := textinput.New()
	ri.Placeholder = "item text"
	ri.CharLimit = 512

	sub, cancel := ctl.Subscribe()

	return TodoModel{
		session:   session,
		ctl:       ctl,
		items:     ctl.Items(),
		focus:     focusBody,
		title:     ti,
		rowInput:  ri,
		throttle:  throttle,
		sub:       sub,
		cancelSub: cancel,
	}
}

// SetSize updates the view dimensions
func (m *TodoModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.title.Width = width - 10
	m.rowInput.Width = width - 12
}

func (m TodoModel) Init() tea.Cmd {
	return m.waitItems()
}

// waitItems re-arms the controller subscription as a bubbletea command.
func (m TodoModel) waitItems() tea.Cmd {
	sub := m.sub
	return func() tea.Msg {
		items, ok := <-sub
		if !ok {
			return nil
		}
		return itemsSnapshotMsg{items: items}
	}
}

func (m TodoModel) Update(msg tea.Msg) (TodoModel, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsSnapshotMsg:
		if m.moveMode {
			// Applying an external list replacement mid-drag would snap
			// rows back under the cursor; hold it until the move ends.
			m.deferred = msg.items
			m.hasDeferred = true
		} else {
			m.apply(msg.items)
		}
		if m.session.SyncTitleFromController() {
			if m.title.Value() != m.session.Title() {
				m.title.SetValue(m.session.Title())
			}
		}
		return m, m.waitItems()

	case tea.KeyMsg:
		if m.editingID != "" {
			return m.updateRowEdit(msg)
		}
		if m.moveMode {
			return m.updateMoveMode(msg)
		}
		if m.focus == focusTitle {
			return m.updateTitle(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *TodoModel) apply(items []todo.Item) {
	m.items = items
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m TodoModel) updateTitle(msg tea.KeyMsg) (TodoModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.close()
	case "tab", "enter":
		m.focus = focusBody
		m.title.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	m.session.SetTitle(m.title.Value())
	return m, cmd
}

func (m TodoModel) updateList(msg tea.KeyMsg) (TodoModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.close()
	case "tab":
		m.focus = focusTitle
		return m, m.title.Focus()
	case "j", "down":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a", "n":
		item := m.ctl.Add()
		m.items = m.ctl.Items()
		m.cursor = len(m.items) - 1
		return m.startRowEdit(item.ID, "")
	case "enter":
		if it, ok := m.current(); ok {
			return m.startRowEdit(it.ID, it.Text)
		}
	case " ":
		if it, ok := m.current(); ok {
			m.ctl.Toggle(it.ID)
			m.items = m.ctl.Items()
		}
	case "d":
		if it, ok := m.current(); ok {
			m.ctl.Delete(it.ID)
			m.apply(m.ctl.Items())
		}
	case "m":
		if len(m.items) > 1 {
			m.moveMode = true
		}
	}
	return m, nil
}

func (m TodoModel) updateMoveMode(msg tea.KeyMsg) (TodoModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.throttledMove(m.cursor, m.cursor+1)
	case "k", "up":
		m.throttledMove(m.cursor, m.cursor-1)
	case "m", "esc", "enter":
		m.moveMode = false
		if m.hasDeferred {
			m.apply(m.deferred)
			m.deferred = nil
			m.hasDeferred = false
		}
	}
	return m, nil
}

// throttledMove applies a reorder step with a minimum inter-move spacing so
// a held-down key does not flood the controller with redundant moves.
func (m *TodoModel) throttledMove(from, to int) {
	if to < 0 || to >= len(m.items) {
		return
	}
	if time.Since(m.lastMove) < m.throttle {
		return
	}
	m.lastMove = time.Now()
	m.ctl.Move(from, to)
	m.items = m.ctl.Items()
	m.cursor = to
}

func (m TodoModel) startRowEdit(id, text string) (TodoModel, tea.Cmd) {
	m.editingID = id
	m.rowInput.SetValue(text)
	m.rowInput.CursorEnd()
	return m, m.rowInput.Focus()
}

func (m TodoModel) updateRowEdit(msg tea.KeyMsg) (TodoModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.ctl.SetText(m.editingID, m.rowInput.Value())
		m.editingID = ""
		m.rowInput.Blur()
		m.items = m.ctl.Items()
		return m, nil
	case "esc":
		// esc commits too: a mid-edit row must not silently vanish.
		m.ctl.SetText(m.editingID, m.rowInput.Value())
		m.editingID = ""
		m.rowInput.Blur()
		m.items = m.ctl.Items()
		return m, nil
	}
	var cmd tea.Cmd
	m.rowInput, cmd = m.rowInput.Update(msg)
	return m, cmd
}

// close flushes the in-flight row edit and the title, then emits the save
// decision.
func (m TodoModel) close() tea.Cmd {
	if m.editingID != "" {
		m.ctl.SetText(m.editingID, m.rowInput.Value())
	}
	m.session.SetTitle(m.title.Value())
	if m.cancelSub != nil {
		m.cancelSub()
	}
	outcome := m.session.Close()
	return func() tea.Msg {
		return messages.EditorDoneMsg{Outcome: outcome}
	}
}

func (m TodoModel) current() (todo.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return todo.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m TodoModel) View() string {
	header := titleBarStyle.Render("Todo note")
	if m.session.Editing() {
		header = titleBarStyle.Render("Edit todo note")
	}
	if m.moveMode {
		header += "  " + moveModeStyle.Render("[move]")
	}

	var rows []string
	for i, it := range m.items {
		rows = append(rows, m.renderRow(i, it))
	}
	if len(rows) == 0 {
		rows = append(rows, mutedStyle.Render("No items. Press a to add one."))
	}

	counts := mutedStyle.Render(fmt.Sprintf("%d/%d done", m.ctl.CompletedCount(), m.ctl.TotalCount()))

	help := "a: add • enter: edit • space: toggle • d: delete • m: move • tab: title • esc: save & close"
	if m.moveMode {
		help = "j/k: move item • m/esc: done"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		labelStyle.Render("Title: ")+m.title.View(),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		counts,
		helpStyle.Render(help),
	)
}

func (m TodoModel) renderRow(i int, it todo.Item) string {
	cursor := "  "
	if i == m.cursor && m.focus == focusBody {
		cursor = cursorStyle.Render("> ")
	}

	check := "[ ]"
	if it.Completed {
		check = "[x]"
	}

	if m.editingID == it.ID {
		return cursor + check + " " + m.rowInput.View()
	}

	text := it.Text
	if text == "" {
		text = mutedStyle.Render("(empty)")
	} else if it.Completed {
		text = checkedStyle.Strikethrough(true).Render(text)
	} else if i == m.cursor && m.focus == focusBody {
		text = selectedStyle.Render(text)
	}
	return cursor + check + " " + text
}
