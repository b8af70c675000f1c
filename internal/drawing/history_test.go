package drawing

import (
	"image/color"
	"testing"
)

func stroke(pts ...Point) Stroke {
	return NewStroke(pts, Paint{Color: color.RGBA{A: 255}, Width: 8})
}

func TestAppendSkipsEmptyStrokes(t *testing.T) {
	h := NewHistory()
	h.Append(stroke())
	if h.HasContent() {
		t.Error("empty stroke was committed")
	}
}

func TestUndoRedoRestoresStroke(t *testing.T) {
	h := NewHistory()
	h.Append(stroke(Point{X: 1, Y: 1}, Point{X: 2, Y: 2}))

	if !h.Undo() {
		t.Fatal("Undo returned false with one committed stroke")
	}
	if h.HasContent() {
		t.Error("content remains after undo")
	}
	if !h.CanRedo() {
		t.Fatal("CanRedo false after undo")
	}

	if !h.Redo() {
		t.Fatal("Redo returned false")
	}
	if got := len(h.Strokes()); got != 1 {
		t.Errorf("strokes after redo = %d, want 1", got)
	}
}

func TestUndoOnEmptyHistory(t *testing.T) {
	h := NewHistory()
	if h.Undo() {
		t.Error("Undo succeeded on empty history")
	}
	if h.Redo() {
		t.Error("Redo succeeded with empty redo stack")
	}
}

func TestAppendAfterUndoClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Append(stroke(Point{X: 1, Y: 1}))
	h.Append(stroke(Point{X: 2, Y: 2}))
	h.Undo()

	h.Append(stroke(Point{X: 3, Y: 3}))

	if h.CanRedo() {
		t.Error("redo stack survived a new commit")
	}
	if got := len(h.Strokes()); got != 2 {
		t.Errorf("committed strokes = %d, want 2", got)
	}
}

func TestClearEmptiesBothStacks(t *testing.T) {
	h := NewHistory()
	h.Append(stroke(Point{X: 1, Y: 1}))
	h.Append(stroke(Point{X: 2, Y: 2}))
	h.Undo()

	h.Clear()

	if h.CanUndo() || h.CanRedo() || h.HasContent() {
		t.Error("history not empty after Clear")
	}
}

func TestPaintTemplateFrozenAtCommit(t *testing.T) {
	h := NewHistory()
	red := color.RGBA{R: 255, A: 255}
	h.SetColor(red)
	h.Append(NewStroke([]Point{{X: 1, Y: 1}}, h.Paint()))

	// Changing the template must not touch the committed stroke.
	h.SetColor(color.RGBA{B: 255, A: 255})
	h.SetBrush(Marker)

	committed := h.Strokes()[0].Paint()
	if committed.Color != red {
		t.Errorf("committed color = %+v, want red", committed.Color)
	}
	if committed.Width != 8 {
		t.Errorf("committed width = %v, want pencil width 8", committed.Width)
	}
}

func TestBrushWidths(t *testing.T) {
	cases := []struct {
		brush BrushStyle
		width float64
		cap   CapStyle
		join  JoinStyle
	}{
		{Pencil, 8, CapRound, JoinRound},
		{Brush, 15, CapRound, JoinRound},
		{Marker, 25, CapSquare, JoinRound},
		{Calligraphy, 35, CapSquare, JoinMiter},
	}
	for _, tc := range cases {
		var p Paint
		tc.brush.Apply(&p)
		if p.Width != tc.width || p.Cap != tc.cap || p.Join != tc.join {
			t.Errorf("%s: got width=%v cap=%v join=%v", tc.brush, p.Width, p.Cap, p.Join)
		}
	}
}

func TestSetBrushKeepsColor(t *testing.T) {
	h := NewHistory()
	red := color.RGBA{R: 255, A: 255}
	h.SetColor(red)
	h.SetBrush(Calligraphy)
	if got := h.Paint().Color; got != red {
		t.Errorf("color after brush change = %+v, want red", got)
	}
	if got := h.BrushStyle(); got != Calligraphy {
		t.Errorf("BrushStyle = %v, want Calligraphy", got)
	}
}

func TestStrokeCopiesInput(t *testing.T) {
	pts := []Point{{X: 1, Y: 1}}
	s := NewStroke(pts, Paint{Width: 8})
	pts[0].X = 99

	if s.Points()[0].X != 1 {
		t.Error("stroke shares backing array with caller")
	}

	got := s.Points()
	got[0].Y = 99
	if s.Points()[0].Y != 1 {
		t.Error("Points() exposes internal slice")
	}
}
