package note

import "inkpad/internal/todo"

// Record is the flat table row the store persists: one nullable payload
// column per content type, only the column matching ContentType meaningful.
// It exists solely at the store boundary; everywhere else the tagged
// Content variants are used.
type Record struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ContentType string `json:"contentType"`
	TextContent string `json:"textContent,omitempty"`
	AudioPath   string `json:"audioPath,omitempty"`
	ImagePath   string `json:"imagePath,omitempty"`
	DrawingPath string `json:"drawingPath,omitempty"`
	TodoItems   string `json:"todoItems,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// ToRecord flattens the note for persistence.
func (n Note) ToRecord() Record {
	r := Record{
		ID:          n.ID,
		Title:       n.Title,
		ContentType: string(n.Type()),
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
	switch c := n.Content.(type) {
	case TextContent:
		r.TextContent = c.Body
	case AudioContent:
		r.AudioPath = c.Path
		r.TextContent = c.Caption
	case ImageContent:
		r.ImagePath = c.Path
		r.TextContent = c.Caption
	case DrawingContent:
		r.DrawingPath = c.Path
	case TodoContent:
		r.TodoItems = todo.ToJSON(c.Items)
	}
	return r
}

// FromRecord rebuilds the tagged note from a table row. Unknown content
// types degrade to text so an old or foreign row never fails to load.
func FromRecord(r Record) Note {
	n := Note{
		ID:        r.ID,
		Title:     r.Title,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	switch ContentType(r.ContentType) {
	case TypeAudio:
		n.Content = AudioContent{Path: r.AudioPath, Caption: r.TextContent}
	case TypeImage:
		n.Content = ImageContent{Path: r.ImagePath, Caption: r.TextContent}
	case TypeDrawing:
		n.Content = DrawingContent{Path: r.DrawingPath}
	case TypeTodo:
		n.Content = TodoContent{Items: todo.FromJSON(r.TodoItems)}
	default:
		n.Content = TextContent{Body: r.TextContent}
	}
	return n
}
