package drawing

import "image/color"

// CapStyle controls how segment ends are stamped onto the raster.
type CapStyle int

const (
	CapRound CapStyle = iota
	CapSquare
)

// JoinStyle controls how consecutive segments meet.
type JoinStyle int

const (
	JoinRound JoinStyle = iota
	JoinMiter
)

// BrushStyle is the closed set of brushes. Each maps to a fixed stroke
// width, cap and join; there are no user-defined styles.
type BrushStyle int

const (
	Pencil BrushStyle = iota
	Brush
	Marker
	Calligraphy
)

var brushNames = map[BrushStyle]string{
	Pencil:      "Pencil",
	Brush:       "Brush",
	Marker:      "Marker",
	Calligraphy: "Calligraphy",
}

func (b BrushStyle) String() string {
	if name, ok := brushNames[b]; ok {
		return name
	}
	return "Pencil"
}

// Styles returns all brush styles in selection order.
func Styles() []BrushStyle {
	return []BrushStyle{Pencil, Brush, Marker, Calligraphy}
}

// Paint is the template applied to a stroke at commit time: changing the
// template never alters strokes already committed.
type Paint struct {
	Color color.RGBA
	Width float64
	Cap   CapStyle
	Join  JoinStyle
	Dash  []float64
}

// Apply sets the brush-controlled fields of the paint, leaving color alone.
func (b BrushStyle) Apply(p *Paint) {
	switch b {
	case Brush:
		p.Width = 15
		p.Cap = CapRound
		p.Join = JoinRound
	case Marker:
		p.Width = 25
		p.Cap = CapSquare
		p.Join = JoinRound
	case Calligraphy:
		p.Width = 35
		p.Cap = CapSquare
		p.Join = JoinMiter
	default: // Pencil
		p.Width = 8
		p.Cap = CapRound
		p.Join = JoinRound
	}
	p.Dash = nil
}

// Clone returns an independent copy of the paint.
func (p Paint) Clone() Paint {
	out := p
	if p.Dash != nil {
		out.Dash = make([]float64, len(p.Dash))
		copy(out.Dash, p.Dash)
	}
	return out
}
