package editor

import (
	"strings"
	"time"

	"inkpad/internal/drawing"
	"inkpad/internal/media"
	"inkpad/internal/note"
	"inkpad/internal/todo"
)

// Session is the per-note editor state machine. The content type is fixed
// when the session opens and never changes through normal editing; the one
// exception is media deletion, which irrevocably degrades the outgoing
// record to a text note.
type Session struct {
	contentType  note.ContentType
	existing     *note.Note
	title        string
	text         string
	mediaPath    string
	mediaDeleted bool
	todoCtl      *todo.Controller
	history      *drawing.History
	flushFns     []func()
}

// NewSession opens an editor for a brand new note of the given type. For
// audio and image notes the media path is produced by the recorder/picker
// before the editor opens; attach it with SetMediaPath.
func NewSession(t note.ContentType) *Session {
	s := &Session{contentType: t}
	s.init()
	return s
}

// EditSession opens an editor over an existing note, keeping a snapshot of
// the original for the dirty check on close.
func EditSession(n note.Note) *Session {
	orig := n
	s := &Session{
		contentType: n.Type(),
		existing:    &orig,
		title:       n.Title,
	}
	switch c := n.Content.(type) {
	case note.TextContent:
		s.text = c.Body
	case note.AudioContent:
		s.text = c.Caption
		s.mediaPath = c.Path
	case note.ImageContent:
		s.text = c.Caption
		s.mediaPath = c.Path
	case note.DrawingContent:
		s.mediaPath = c.Path
	case note.TodoContent:
		s.init()
		s.todoCtl.SetItems(c.Items)
		s.todoCtl.SetTitle(n.Title)
	}
	if s.todoCtl == nil {
		s.init()
	}
	return s
}

func (s *Session) init() {
	switch s.contentType {
	case note.TypeTodo:
		if s.todoCtl == nil {
			s.todoCtl = todo.NewController()
		}
	case note.TypeDrawing:
		if s.history == nil {
			s.history = drawing.NewHistory()
		}
	}
}

// ContentType returns the type the session opened with.
func (s *Session) ContentType() note.ContentType {
	return s.contentType
}

// EffectiveType is the content type of the outgoing record, accounting for
// the media-deleted degrade.
func (s *Session) EffectiveType() note.ContentType {
	if s.mediaDeleted {
		return note.TypeText
	}
	return s.contentType
}

// Editing reports whether the session updates an existing note.
func (s *Session) Editing() bool {
	return s.existing != nil
}

func (s *Session) Title() string { return s.title }

// SetTitle updates the title buffer. For todo notes the controller's title
// slot is kept in sync; the push is guarded on difference to avoid a
// feedback loop with controller-driven title changes.
func (s *Session) SetTitle(title string) {
	s.title = title
	if s.todoCtl != nil && s.todoCtl.Title() != title {
		s.todoCtl.SetTitle(title)
	}
}

// SyncTitleFromController pulls a controller-driven title change back into
// the title buffer. Returns true when the buffer actually changed, which is
// the view's cue to update its field without moving the cursor otherwise.
func (s *Session) SyncTitleFromController() bool {
	if s.todoCtl == nil {
		return false
	}
	if t := s.todoCtl.Title(); t != s.title {
		s.title = t
		return true
	}
	return false
}

func (s *Session) Text() string        { return s.text }
func (s *Session) SetText(text string) { s.text = text }

func (s *Session) MediaPath() string { return s.mediaPath }

// SetMediaPath attaches the file produced by the recorder, picker or
// drawing export.
func (s *Session) SetMediaPath(path string) {
	s.mediaPath = path
}

// MediaDeleted reports whether the degrade transition happened.
func (s *Session) MediaDeleted() bool {
	return s.mediaDeleted
}

// DeleteMedia removes the note's media payload: the outgoing record becomes
// a text note and the underlying file is deleted in the background,
// best-effort. There is no way back within this session.
func (s *Session) DeleteMedia() {
	if s.mediaPath == "" && !mediaType(s.contentType) {
		return
	}
	s.mediaDeleted = true
	media.Discard(s.mediaPath)
	s.mediaPath = ""
}

// Todo returns the session's todo list controller.
func (s *Session) Todo() *todo.Controller {
	return s.todoCtl
}

// Drawing returns the session's stroke history.
func (s *Session) Drawing() *drawing.History {
	return s.history
}

// RegisterFlush adds a hook that pushes an in-flight buffered edit into its
// controller. All hooks run before the close decision, so no mid-edit input
// silently vanishes.
func (s *Session) RegisterFlush(fn func()) {
	s.flushFns = append(s.flushFns, fn)
}

// Flush runs all registered flush hooks.
func (s *Session) Flush() {
	for _, fn := range s.flushFns {
		fn()
	}
}

// BuildNote derives the single outgoing record from the session's current
// content.
func (s *Session) BuildNote() note.Note {
	title := strings.TrimSpace(s.title)
	text := strings.TrimSpace(s.text)

	var n note.Note
	switch s.EffectiveType() {
	case note.TypeAudio:
		n = note.NewAudioNote(title, s.mediaPath, text)
	case note.TypeImage:
		n = note.NewImageNote(title, s.mediaPath, text)
	case note.TypeDrawing:
		n = note.NewDrawingNote(title, s.mediaPath)
	case note.TypeTodo:
		n = note.NewTodoNote(title, s.todoCtl.Items())
	default:
		n = note.NewTextNote(title, text)
	}
	if s.existing != nil {
		n.ID = s.existing.ID
		n.CreatedAt = s.existing.CreatedAt
	}
	return n
}

// ShouldSave is the save-worthiness policy, evaluated once when the editor
// closes. Audio/image/drawing notes count either a title or a media file as
// save-worthy.
func (s *Session) ShouldSave() bool {
	title := strings.TrimSpace(s.title)
	text := strings.TrimSpace(s.text)

	switch s.EffectiveType() {
	case note.TypeAudio, note.TypeImage:
		return title != "" || s.mediaPath != ""
	case note.TypeDrawing:
		// A fresh drawing is save-worthy only when strokes were committed;
		// reopening an existing drawing falls back to the media rule.
		if s.existing == nil && s.history != nil {
			return s.history.HasContent()
		}
		return title != "" || s.mediaPath != ""
	case note.TypeTodo:
		return s.todoCtl.HasContent()
	default:
		return title != "" || text != ""
	}
}

// Outcome is the editor's close decision.
type Outcome struct {
	Note   note.Note
	Save   bool
	Update bool
}

// Close flushes in-flight edits, evaluates save-worthiness and the edit-mode
// dirty check, and releases media that was never committed to a saved note.
func (s *Session) Close() Outcome {
	s.Flush()

	n := s.BuildNote()
	worthy := s.ShouldSave()

	if s.existing == nil {
		if !worthy && !s.mediaDeleted {
			// Never-committed recorder/picker output must not orphan.
			media.Discard(s.mediaPath)
		}
		return Outcome{Note: n, Save: worthy}
	}

	save := worthy && n.Changed(*s.existing)
	if save {
		n.UpdatedAt = time.Now().UnixMilli()
	}
	return Outcome{Note: n, Save: save, Update: true}
}

func mediaType(t note.ContentType) bool {
	return t == note.TypeAudio || t == note.TypeImage || t == note.TypeDrawing
}
