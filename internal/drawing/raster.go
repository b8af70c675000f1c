package drawing

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// ErrEmptyDrawing is returned when an export is requested with no committed
// strokes; callers use it to block the save instead of writing a blank file.
var ErrEmptyDrawing = errors.New("drawing: nothing to export")

// Render replays the committed strokes in order onto a fresh raster of the
// given size. The in-progress stroke is not part of the history and is the
// caller's overlay concern.
func (h *History) Render(width, height int) (*image.RGBA, error) {
	strokes := h.Strokes()
	if len(strokes) == 0 {
		return nil, ErrEmptyDrawing
	}
	img := NewSurface(width, height)
	for _, s := range strokes {
		DrawStroke(img, s)
	}
	return img, nil
}

// NewSurface returns a white raster of the given size.
func NewSurface(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// DrawStroke rasterizes one stroke with its frozen paint. A single-point
// stroke stamps one cap footprint.
func DrawStroke(img *image.RGBA, s Stroke) {
	pts := s.Points()
	paint := s.Paint()
	if len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		stamp(img, pts[0], paint)
		return
	}
	for i := 1; i < len(pts); i++ {
		segment(img, pts[i-1], pts[i], paint)
	}
}

func segment(img *image.RGBA, a, b Point, paint Paint) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Hypot(dx, dy)
	steps := int(dist*2) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		stamp(img, Point{X: a.X + dx*t, Y: a.Y + dy*t}, paint)
	}
}

// stamp draws the brush footprint at p: a disc for round caps, a square for
// square caps.
func stamp(img *image.RGBA, p Point, paint Paint) {
	r := paint.Width / 2
	if r < 0.5 {
		r = 0.5
	}
	minX := int(math.Floor(p.X - r))
	maxX := int(math.Ceil(p.X + r))
	minY := int(math.Floor(p.Y - r))
	maxY := int(math.Ceil(p.Y + r))
	bounds := img.Bounds()
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
				continue
			}
			if paint.Cap == CapRound {
				ddx := float64(x) + 0.5 - p.X
				ddy := float64(y) + 0.5 - p.Y
				if math.Hypot(ddx, ddy) > r {
					continue
				}
			}
			img.SetRGBA(x, y, paint.Color)
		}
	}
}
