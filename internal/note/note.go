package note

import (
	"fmt"
	"time"

	"inkpad/internal/todo"
)

// Note is one persisted record. ID is 0 until the store assigns one.
// Timestamps are epoch milliseconds; CreatedAt is set once at construction
// and UpdatedAt refreshed on every mutating save.
type Note struct {
	ID        int
	Title     string
	Content   Content
	CreatedAt int64
	UpdatedAt int64
}

func newNote(title string, content Content) Note {
	now := time.Now().UnixMilli()
	return Note{
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTextNote builds a transient text note from raw editor input.
func NewTextNote(title, body string) Note {
	return newNote(title, TextContent{Body: body})
}

// NewAudioNote builds a transient audio note with an optional caption.
func NewAudioNote(title, audioPath, caption string) Note {
	return newNote(title, AudioContent{Path: audioPath, Caption: caption})
}

// NewImageNote builds a transient image note with an optional caption.
func NewImageNote(title, imagePath, caption string) Note {
	return newNote(title, ImageContent{Path: imagePath, Caption: caption})
}

// NewDrawingNote builds a transient drawing note from an exported raster.
func NewDrawingNote(title, drawingPath string) Note {
	return newNote(title, DrawingContent{Path: drawingPath})
}

// NewTodoNote builds a transient todo note from the controller's item list.
func NewTodoNote(title string, items []todo.Item) Note {
	copied := make([]todo.Item, len(items))
	copy(copied, items)
	return newNote(title, TodoContent{Items: copied})
}

// Type returns the note's content type; notes without content degrade to
// text.
func (n Note) Type() ContentType {
	if n.Content == nil {
		return TypeText
	}
	return n.Content.Type()
}

// Changed is the dirty check evaluated before an update-save: title, content
// type and every payload field relevant to the note's content type are
// compared. Timestamps are excluded so a no-op edit never writes.
func (n Note) Changed(old Note) bool {
	if n.Title != old.Title {
		return true
	}
	if n.Type() != old.Type() {
		return true
	}
	if n.Content == nil || old.Content == nil {
		return (n.Content == nil) != (old.Content == nil)
	}
	return !n.Content.Equal(old.Content)
}

// Snippet returns a short description of the payload for list rows.
func (n Note) Snippet() string {
	switch c := n.Content.(type) {
	case TextContent:
		return c.Body
	case AudioContent:
		if c.Caption != "" {
			return c.Caption
		}
		return c.Path
	case ImageContent:
		if c.Caption != "" {
			return c.Caption
		}
		return c.Path
	case DrawingContent:
		return c.Path
	case TodoContent:
		done := 0
		for _, it := range c.Items {
			if it.Completed {
				done++
			}
		}
		if len(c.Items) == 0 {
			return "empty list"
		}
		return fmt.Sprintf("%d/%d done", done, len(c.Items))
	default:
		return ""
	}
}
