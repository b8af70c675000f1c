package note

import "inkpad/internal/todo"

// ContentType is the closed tag selecting which payload and editor a note
// uses.
type ContentType string

const (
	TypeText    ContentType = "text"
	TypeAudio   ContentType = "audio"
	TypeImage   ContentType = "image"
	TypeDrawing ContentType = "drawing"
	TypeTodo    ContentType = "todo"
)

var displayNames = map[ContentType]string{
	TypeText:    "Text",
	TypeAudio:   "Audio",
	TypeImage:   "Image",
	TypeDrawing: "Drawing",
	TypeTodo:    "Todo",
}

// DisplayName returns the user-facing name of the content type.
func (t ContentType) DisplayName() string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return "Text"
}

// Types returns all content types in menu order.
func Types() []ContentType {
	return []ContentType{TypeText, TypeAudio, TypeImage, TypeDrawing, TypeTodo}
}

// Content is a note's payload. Exactly one variant exists per content type,
// so a payload field can never be populated under the wrong tag.
type Content interface {
	Type() ContentType
	Equal(other Content) bool
}

// TextContent is a free-form text body.
type TextContent struct {
	Body string
}

func (c TextContent) Type() ContentType { return TypeText }

func (c TextContent) Equal(other Content) bool {
	o, ok := other.(TextContent)
	return ok && o.Body == c.Body
}

// AudioContent is a recorded audio file plus an optional caption.
type AudioContent struct {
	Path    string
	Caption string
}

func (c AudioContent) Type() ContentType { return TypeAudio }

func (c AudioContent) Equal(other Content) bool {
	o, ok := other.(AudioContent)
	return ok && o.Path == c.Path && o.Caption == c.Caption
}

// ImageContent is a picked image file plus an optional caption.
type ImageContent struct {
	Path    string
	Caption string
}

func (c ImageContent) Type() ContentType { return TypeImage }

func (c ImageContent) Equal(other Content) bool {
	o, ok := other.(ImageContent)
	return ok && o.Path == c.Path && o.Caption == c.Caption
}

// DrawingContent is the exported raster file of a drawing.
type DrawingContent struct {
	Path string
}

func (c DrawingContent) Type() ContentType { return TypeDrawing }

func (c DrawingContent) Equal(other Content) bool {
	o, ok := other.(DrawingContent)
	return ok && o.Path == c.Path
}

// TodoContent is the ordered todo item list.
type TodoContent struct {
	Items []todo.Item
}

func (c TodoContent) Type() ContentType { return TypeTodo }

func (c TodoContent) Equal(other Content) bool {
	o, ok := other.(TodoContent)
	if !ok || len(o.Items) != len(c.Items) {
		return false
	}
	for i := range c.Items {
		if c.Items[i] != o.Items[i] {
			return false
		}
	}
	return true
}

// MediaPath returns the filesystem path owned by the content, or "" when
// the content holds no media file.
func MediaPath(c Content) string {
	switch v := c.(type) {
	case AudioContent:
		return v.Path
	case ImageContent:
		return v.Path
	case DrawingContent:
		return v.Path
	default:
		return ""
	}
}
