package edit

import (
	"fmt"
	"image/color"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inkpad/internal/drawing"
	"inkpad/internal/editor"
	"inkpad/internal/logs"
	"inkpad/internal/media"
	"inkpad/internal/tui/messages"
)

// cellScale is the number of raster pixels per terminal cell in the
// exported image.
const cellScale = 4

type paletteEntry struct {
	name string
	rgba color.RGBA
}

var palette = []paletteEntry{
	{"black", color.RGBA{A: 255}},
	{"red", color.RGBA{R: 204, A: 255}},
	{"green", color.RGBA{G: 153, A: 255}},
	{"blue", color.RGBA{B: 204, A: 255}},
	{"magenta", color.RGBA{R: 170, B: 170, A: 255}},
	{"cyan", color.RGBA{G: 153, B: 153, A: 255}},
	{"orange", color.RGBA{R: 230, G: 126, A: 255}},
}

// DrawingModel is the canvas view for new drawing notes. The cursor draws
// while the pen is down; lifting the pen commits the gesture to the stroke
// history, which drives undo/redo and the raster export.
type DrawingModel struct {
	session  *editor.Session
	history  *drawing.History
	lib      *media.Library
	cx, cy   int
	penDown  bool
	current  []drawing.Point
	colorIdx int
	canvasW  int
	canvasH  int
	width    int
	height   int
}

func NewDrawingModel(session *editor.Session, lib *media.Library) DrawingModel {
	return DrawingModel{
		session: session,
		history: session.Drawing(),
		lib:     lib,
		canvasW: 60,
		canvasH: 20,
	}
}

// SetSize updates the view dimensions
func (m *DrawingModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.canvasW = width - 2
	m.canvasH = height - 6
	if m.canvasW < 20 {
		m.canvasW = 20
	}
	if m.canvasH < 8 {
		m.canvasH = 8
	}
	if m.cx >= m.canvasW {
		m.cx = m.canvasW - 1
	}
	if m.cy >= m.canvasH {
		m.cy = m.canvasH - 1
	}
}

func (m DrawingModel) Init() tea.Cmd {
	return nil
}

func (m DrawingModel) Update(msg tea.Msg) (DrawingModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, m.close()
	case "ctrl+s":
		if !m.history.HasContent() && len(m.current) == 0 {
			return m, messages.Notice("Nothing to export")
		}
		return m, m.close()
	case " ":
		if m.penDown {
			m.commitStroke()
		} else {
			m.penDown = true
			m.current = append(m.current[:0], m.cellPoint())
		}
	case "u":
		m.history.Undo()
	case "ctrl+r":
		m.history.Redo()
	case "b":
		styles := drawing.Styles()
		next := (int(m.history.BrushStyle()) + 1) % len(styles)
		m.history.SetBrush(styles[next])
	case "c":
		m.colorIdx = (m.colorIdx + 1) % len(palette)
		m.history.SetColor(palette[m.colorIdx].rgba)
	case "C":
		m.history.Clear()
		m.current = nil
		m.penDown = false
	case "h", "left":
		m.moveCursor(-1, 0)
	case "l", "right":
		m.moveCursor(1, 0)
	case "k", "up":
		m.moveCursor(0, -1)
	case "j", "down":
		m.moveCursor(0, 1)
	}
	return m, nil
}

func (m *DrawingModel) moveCursor(dx, dy int) {
	nx := m.cx + dx
	ny := m.cy + dy
	if nx < 0 || nx >= m.canvasW || ny < 0 || ny >= m.canvasH {
		return
	}
	m.cx = nx
	m.cy = ny
	if m.penDown {
		m.current = append(m.current, m.cellPoint())
	}
}

func (m *DrawingModel) cellPoint() drawing.Point {
	return drawing.Point{
		X: float64(m.cx*cellScale) + cellScale/2,
		Y: float64(m.cy*cellScale) + cellScale/2,
	}
}

func (m *DrawingModel) commitStroke() {
	m.penDown = false
	if len(m.current) == 0 {
		return
	}
	m.history.Append(drawing.NewStroke(m.current, m.history.Paint()))
	m.current = nil
}

// close commits any in-progress stroke, exports the raster when strokes
// exist, and emits the save decision.
func (m DrawingModel) close() tea.Cmd {
	if m.penDown {
		m.commitStroke()
	}
	if m.history.HasContent() {
		img, err := m.history.Render(m.canvasW*cellScale, m.canvasH*cellScale)
		if err == nil {
			path, serr := m.lib.SaveRaster(img)
			if serr != nil {
				logs.Logger.Printf("Error exporting drawing: %v", serr)
			} else {
				m.session.SetMediaPath(path)
			}
		}
	}
	outcome := m.session.Close()
	return func() tea.Msg {
		return messages.EditorDoneMsg{Outcome: outcome}
	}
}

func (m DrawingModel) View() string {
	grid := make([][]string, m.canvasH)
	for y := range grid {
		row := make([]string, m.canvasW)
		for x := range row {
			row[x] = " "
		}
		grid[y] = row
	}

	for _, s := range m.history.Strokes() {
		stampStroke(grid, s.Points(), s.Paint())
	}
	if len(m.current) > 0 {
		stampStroke(grid, m.current, m.history.Paint())
	}

	cursorGlyph := "+"
	if m.penDown {
		cursorGlyph = "●"
	}
	if m.cy >= 0 && m.cy < len(grid) && m.cx >= 0 && m.cx < len(grid[m.cy]) {
		grid[m.cy][m.cx] = cursorStyle.Render(cursorGlyph)
	}

	var rows []string
	for _, row := range grid {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	canvas := canvasStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	pen := "up"
	if m.penDown {
		pen = "down"
	}
	status := mutedStyle.Render(fmt.Sprintf(
		"brush: %s  color: %s  pen: %s  undo:%v redo:%v",
		m.history.BrushStyle(), palette[m.colorIdx].name, pen,
		m.history.CanUndo(), m.history.CanRedo(),
	))

	help := helpStyle.Render("hjkl: move • space: pen • u: undo • ctrl+r: redo • b: brush • c: color • C: clear • esc: save & close")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleBarStyle.Render("Drawing"),
		canvas,
		status,
		help,
	)
}

// stampStroke paints a stroke onto the cell grid, interpolating between
// consecutive points and widening by the paint's brush radius.
func stampStroke(grid [][]string, pts []drawing.Point, paint drawing.Paint) {
	if len(pts) == 0 {
		return
	}
	style := styleFor(paint.Color)
	radius := int(paint.Width/cellScale-1) / 2

	stampCell := func(cx, cy int) {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				x, y := cx+dx, cy+dy
				if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
					continue
				}
				grid[y][x] = style.Render("█")
			}
		}
	}

	prevX, prevY := cellOf(pts[0])
	stampCell(prevX, prevY)
	for _, p := range pts[1:] {
		x, y := cellOf(p)
		steps := max(abs(x-prevX), abs(y-prevY))
		for i := 1; i <= steps; i++ {
			ix := prevX + (x-prevX)*i/steps
			iy := prevY + (y-prevY)*i/steps
			stampCell(ix, iy)
		}
		prevX, prevY = x, y
	}
}

func cellOf(p drawing.Point) (int, int) {
	return int(p.X) / cellScale, int(p.Y) / cellScale
}

func styleFor(c color.RGBA) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
