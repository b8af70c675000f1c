package drawing

import (
	"image/color"
	"sync"
)

// History records committed strokes in time order and supports linear
// undo/redo. It also owns the paint template for the next stroke.
type History struct {
	mu        sync.Mutex
	committed []Stroke
	undone    []Stroke
	paint     Paint
	brush     BrushStyle
}

func NewHistory() *History {
	h := &History{
		paint: Paint{Color: color.RGBA{A: 255}},
		brush: Pencil,
	}
	Pencil.Apply(&h.paint)
	return h
}

// Append commits a finished stroke. Any new edit invalidates the redo
// history, so the undone stack is cleared entirely.
func (h *History) Append(s Stroke) {
	if s.Empty() {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.committed = append(h.committed, s)
	h.undone = nil
}

// Undo moves the newest committed stroke onto the redo stack. Returns false
// when there is nothing to undo.
func (h *History) Undo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.committed) == 0 {
		return false
	}
	last := h.committed[len(h.committed)-1]
	h.committed = h.committed[:len(h.committed)-1]
	h.undone = append(h.undone, last)
	return true
}

// Redo moves the most recently undone stroke back onto the committed list.
// Returns false when the redo stack is empty.
func (h *History) Redo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undone) == 0 {
		return false
	}
	last := h.undone[len(h.undone)-1]
	h.undone = h.undone[:len(h.undone)-1]
	h.committed = append(h.committed, last)
	return true
}

func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.committed) > 0
}

func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undone) > 0
}

// Clear empties both stacks.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.committed = nil
	h.undone = nil
}

// HasContent reports whether there is anything to export.
func (h *History) HasContent() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.committed) > 0
}

// Strokes returns the committed strokes, oldest first.
func (h *History) Strokes() []Stroke {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Stroke, len(h.committed))
	copy(out, h.committed)
	return out
}

// SetColor changes the paint template for subsequent strokes only.
func (h *History) SetColor(c color.RGBA) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.paint.Color = c
}

// SetBrush changes the brush template for subsequent strokes only.
func (h *History) SetBrush(b BrushStyle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	b.Apply(&h.paint)
	h.brush = b
}

// Paint returns the current paint template.
func (h *History) Paint() Paint {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.paint.Clone()
}

// BrushStyle returns the currently selected brush.
func (h *History) BrushStyle() BrushStyle {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.brush
}
