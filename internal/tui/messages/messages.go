package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"inkpad/internal/editor"
	"inkpad/internal/note"
)

// ViewType represents the different views in the application
type ViewType int

const (
	ViewHome ViewType = iota
	ViewRecorder
	ViewImagePicker
	ViewDrawing
	ViewEditor
)

// NewNoteMsg requests opening an editor for a new note of the given type
type NewNoteMsg struct {
	Type note.ContentType
}

// EditNoteMsg requests opening an editor over an existing note
type EditNoteMsg struct {
	Note note.Note
}

// EditorDoneMsg is sent when an editor closes with its save decision
type EditorDoneMsg struct {
	Outcome editor.Outcome
}

// DeleteNoteMsg requests deleting a note from the store
type DeleteNoteMsg struct {
	Note note.Note
}

// NotesSnapshotMsg carries a full store snapshot from the observe stream
type NotesSnapshotMsg struct {
	Notes []note.Note
}

// NoticeMsg shows a transient, non-fatal user-visible notice
type NoticeMsg struct {
	Text string
}

// MediaReadyMsg is sent by the recorder/picker when a media file exists
type MediaReadyMsg struct {
	Type note.ContentType
	Path string
}

// BackToHomeMsg returns to the home view without any saving
type BackToHomeMsg struct{}

func NewNote(t note.ContentType) tea.Cmd {
	return func() tea.Msg {
		return NewNoteMsg{Type: t}
	}
}

func EditNote(n note.Note) tea.Cmd {
	return func() tea.Msg {
		return EditNoteMsg{Note: n}
	}
}

func Notice(text string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: text}
	}
}

func BackToHome() tea.Cmd {
	return func() tea.Msg {
		return BackToHomeMsg{}
	}
}
