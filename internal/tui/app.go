package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inkpad/internal/config"
	"inkpad/internal/editor"
	"inkpad/internal/logs"
	"inkpad/internal/media"
	"inkpad/internal/note"
	"inkpad/internal/store"
	"inkpad/internal/tui/edit"
	"inkpad/internal/tui/home"
	"inkpad/internal/tui/messages"
	"inkpad/internal/tui/theme"
)

// AppModel is the root model that dispatches to child views
type AppModel struct {
	cfg      *config.Config
	store    store.Store
	lib      *media.Library
	recorder *media.Recorder

	currentView messages.ViewType
	homeView    home.Model
	textView    edit.TextModel
	mediaView   edit.MediaModel
	todoView    edit.TodoModel
	drawingView edit.DrawingModel
	recView     edit.RecorderModel
	pickerView  edit.ImagePickerModel
	editorType  note.ContentType

	snapshots <-chan []note.Note
	cancelSub func()

	notice string
	width  int
	height int
	ready  bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, st store.Store, lib *media.Library) AppModel {
	ch, cancel := st.ObserveAll()
	m := AppModel{
		cfg:       cfg,
		store:     st,
		lib:       lib,
		recorder:  media.NewRecorder(lib, cfg.RecordCommand),
		homeView:  home.NewModel(),
		snapshots: ch,
		cancelSub: cancel,
	}
	m.homeView.SetNotes(st.List())
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.waitSnapshot()
}

// waitSnapshot blocks on the store's observe channel and surfaces the next
// full snapshot as a message. Re-armed after every delivery.
func (m AppModel) waitSnapshot() tea.Cmd {
	ch := m.snapshots
	return func() tea.Msg {
		notes, ok := <-ch
		if !ok {
			return nil
		}
		return messages.NotesSnapshotMsg{Notes: notes}
	}
}

func (m AppModel) throttle() time.Duration {
	return time.Duration(m.cfg.MoveThrottleMs) * time.Millisecond
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 2 // Reserve space for status bar
		m.homeView.SetSize(msg.Width, contentHeight)
		m.textView.SetSize(msg.Width, contentHeight)
		m.mediaView.SetSize(msg.Width, contentHeight)
		m.todoView.SetSize(msg.Width, contentHeight)
		m.drawingView.SetSize(msg.Width, contentHeight)
		m.recView.SetSize(msg.Width, contentHeight)
		m.pickerView.SetSize(msg.Width, contentHeight)
		return m, nil

	case messages.NotesSnapshotMsg:
		m.homeView.SetNotes(msg.Notes)
		return m, m.waitSnapshot()

	case messages.NewNoteMsg:
		m.notice = ""
		switch msg.Type {
		case note.TypeAudio:
			m.recView = edit.NewRecorderModel(m.recorder)
			m.recView.SetSize(m.width, m.height-2)
			m.currentView = messages.ViewRecorder
			return m, m.recView.Init()
		case note.TypeImage:
			m.pickerView = edit.NewImagePickerModel(m.lib)
			m.pickerView.SetSize(m.width, m.height-2)
			m.currentView = messages.ViewImagePicker
			return m, m.pickerView.Init()
		case note.TypeDrawing:
			m.drawingView = edit.NewDrawingModel(editor.NewSession(msg.Type), m.lib)
			m.drawingView.SetSize(m.width, m.height-2)
			m.currentView = messages.ViewDrawing
			return m, m.drawingView.Init()
		default:
			return m.openEditor(editor.NewSession(msg.Type))
		}

	case messages.MediaReadyMsg:
		session := editor.NewSession(msg.Type)
		session.SetMediaPath(msg.Path)
		return m.openEditor(session)

	case messages.EditNoteMsg:
		// Existing drawings reopen over their exported raster in the media
		// editor, not as editable strokes.
		return m.openEditor(editor.EditSession(msg.Note))

	case messages.EditorDoneMsg:
		m.applyOutcome(msg.Outcome)
		m.currentView = messages.ViewHome
		return m, nil

	case messages.DeleteNoteMsg:
		if err := m.store.Delete(msg.Note); err != nil {
			logs.Logger.Printf("Error deleting note %d: %v", msg.Note.ID, err)
			m.notice = "Delete failed"
		}
		return m, nil

	case messages.NoticeMsg:
		m.notice = msg.Text
		return m, nil

	case messages.BackToHomeMsg:
		m.currentView = messages.ViewHome
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.currentView == messages.ViewHome && !m.homeView.IsModal() {
			if msg.String() == "q" {
				return m, tea.Quit
			}
			if m.notice != "" {
				m.notice = ""
			}
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case messages.ViewHome:
		m.homeView, cmd = m.homeView.Update(msg)
	case messages.ViewRecorder:
		m.recView, cmd = m.recView.Update(msg)
	case messages.ViewImagePicker:
		m.pickerView, cmd = m.pickerView.Update(msg)
	case messages.ViewDrawing:
		m.drawingView, cmd = m.drawingView.Update(msg)
	case messages.ViewEditor:
		switch m.editorType {
		case note.TypeTodo:
			m.todoView, cmd = m.todoView.Update(msg)
		case note.TypeAudio, note.TypeImage, note.TypeDrawing:
			m.mediaView, cmd = m.mediaView.Update(msg)
		default:
			m.textView, cmd = m.textView.Update(msg)
		}
	}
	return m, cmd
}

// openEditor routes a prepared session into the editor matching its
// effective content type.
func (m AppModel) openEditor(session *editor.Session) (tea.Model, tea.Cmd) {
	m.notice = ""
	m.editorType = session.EffectiveType()
	m.currentView = messages.ViewEditor

	var cmd tea.Cmd
	switch m.editorType {
	case note.TypeTodo:
		m.todoView = edit.NewTodoModel(session, m.throttle())
		m.todoView.SetSize(m.width, m.height-2)
		cmd = m.todoView.Init()
	case note.TypeAudio, note.TypeImage, note.TypeDrawing:
		m.mediaView = edit.NewMediaModel(session)
		m.mediaView.SetSize(m.width, m.height-2)
		cmd = m.mediaView.Init()
	default:
		m.textView = edit.NewTextModel(session)
		m.textView.SetSize(m.width, m.height-2)
		cmd = m.textView.Init()
	}
	return m, cmd
}

// applyOutcome persists an editor's save decision.
func (m *AppModel) applyOutcome(outcome editor.Outcome) {
	if !outcome.Save {
		return
	}
	if outcome.Update {
		if err := m.store.Update(outcome.Note); err != nil {
			logs.Logger.Printf("Error updating note %d: %v", outcome.Note.ID, err)
			m.notice = "Save failed"
		}
		return
	}
	if _, err := m.store.Insert(outcome.Note); err != nil {
		logs.Logger.Printf("Error saving note: %v", err)
		m.notice = "Save failed"
	}
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var content string
	switch m.currentView {
	case messages.ViewHome:
		content = m.homeView.View()
	case messages.ViewRecorder:
		content = m.recView.View()
	case messages.ViewImagePicker:
		content = m.pickerView.View()
	case messages.ViewDrawing:
		content = m.drawingView.View()
	case messages.ViewEditor:
		switch m.editorType {
		case note.TypeTodo:
			content = m.todoView.View()
		case note.TypeAudio, note.TypeImage, note.TypeDrawing:
			content = m.mediaView.View()
		default:
			content = m.textView.View()
		}
	}

	var statusText string
	if m.notice != "" {
		statusText = theme.Warn.Render(m.notice)
	} else {
		switch m.currentView {
		case messages.ViewHome:
			statusText = "n:new enter:open d:delete /:filter q:quit"
		case messages.ViewDrawing:
			statusText = "space:pen b:brush c:color esc:save & close"
		default:
			statusText = "esc:close"
		}
	}

	statusBar := statusBarStyle.Width(m.width).Render(
		theme.ModalHelp.Render(statusText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

// Close releases the store subscription. Called after the program exits.
func (m AppModel) Close() {
	if m.cancelSub != nil {
		m.cancelSub()
	}
}
