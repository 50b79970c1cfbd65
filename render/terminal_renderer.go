package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/engine"
)

// Glyphs
const (
	glyphElement  = '●'
	glyphObstacle = '█'
	glyphGoal     = '░'
	glyphAim      = '·'
)

// TerminalRenderer draws published snapshots onto a tcell screen
// Owned by the main loop; it never touches live session state
type TerminalRenderer struct {
	screen tcell.Screen
	grid   Grid
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, grid Grid) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, grid: grid}
}

// Grid returns the cell mapping
func (r *TerminalRenderer) Grid() Grid {
	return r.grid
}

// RenderFrame draws one frame; a nil snapshot draws only the status bar
func (r *TerminalRenderer) RenderFrame(s *engine.Snapshot, status StatusLine) {
	r.screen.Clear()
	width, height := r.screen.Size()
	field := height - r.grid.StatusRows
	bg := tcell.StyleDefault.Background(RgbBackground)

	for y := 0; y < field; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	if s != nil {
		if s.Goal != nil {
			r.drawGoal(s.Goal, width, field, bg)
		}
		r.drawObstacles(s.Obstacles, width, field, bg)
		if s.Goal != nil && s.Selection.IsTracked() && len(s.Elements) > 0 {
			r.drawAim(s.Elements[0].Center(s.Diameter), s.Focal, width, field, bg)
		}
		r.drawElements(s, width, field, bg)
	}

	r.drawStatusBar(FormatStatus(s, status), width, height)
	r.screen.Show()
}

func (r *TerminalRenderer) drawGoal(g *engine.GoalView, width, field int, bg tcell.Style) {
	color := RgbGoal
	if g.Selected {
		color = RgbGoalSelected
	}
	style := bg.Foreground(color)

	x0, y0 := r.grid.ToCell(r2.Point{X: g.Center.X - g.Radius, Y: g.Center.Y - g.Radius})
	x1, y1 := r.grid.ToCell(r2.Point{X: g.Center.X + g.Radius, Y: g.Center.Y + g.Radius})
	for y := max(y0, 0); y <= min(y1, field-1); y++ {
		for x := max(x0, 0); x <= min(x1, width-1); x++ {
			if r.grid.ToWorld(x, y).Sub(g.Center).Norm() < g.Radius {
				r.screen.SetContent(x, y, glyphGoal, nil, style)
			}
		}
	}
}

// drawObstacles fills every cell the rectangle overlaps, so thin obstacles stay visible
func (r *TerminalRenderer) drawObstacles(obstacles []engine.ObstacleView, width, field int, bg tcell.Style) {
	for _, o := range obstacles {
		style := bg.Foreground(RgbObstacle)
		if o.Selected {
			style = bg.Foreground(RgbSelected)
		}
		x0 := int(math.Floor(o.Pos.X / r.grid.CellWidth))
		y0 := int(math.Floor(o.Pos.Y / r.grid.CellHeight))
		x1 := int(math.Ceil(o.Right()/r.grid.CellWidth)) - 1
		y1 := int(math.Ceil(o.Bottom()/r.grid.CellHeight)) - 1
		for y := max(y0, 0); y <= min(y1, field-1); y++ {
			for x := max(x0, 0); x <= min(x1, width-1); x++ {
				r.screen.SetContent(x, y, glyphObstacle, nil, style)
			}
		}
	}
}

// drawAim traces the launch line from the tracked element toward the pointer
func (r *TerminalRenderer) drawAim(from, to r2.Point, width, field int, bg tcell.Style) {
	style := bg.Foreground(RgbAim)
	delta := to.Sub(from)
	step := math.Min(r.grid.CellWidth, r.grid.CellHeight) / 2
	n := int(delta.Norm() / step)
	for i := 1; i <= n; i++ {
		x, y := r.grid.ToCell(from.Add(delta.Mul(float64(i) / float64(n))))
		if x >= 0 && x < width && y >= 0 && y < field {
			r.screen.SetContent(x, y, glyphAim, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawElements(s *engine.Snapshot, width, field int, bg tcell.Style) {
	for i, e := range s.Elements {
		x, y := r.grid.ToCell(e.Center(s.Diameter))
		if x < 0 || x >= width || y < 0 || y >= field {
			continue
		}
		style := bg.Foreground(ElementColor(e.Color))
		// Tracked element highlights while selected
		if i == 0 && s.Goal != nil && s.Selection.IsTracked() {
			style = style.Reverse(true)
		}
		r.screen.SetContent(x, y, glyphElement, nil, style)
	}
}

func (r *TerminalRenderer) drawStatusBar(text string, width, height int) {
	style := tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg)
	for row := height - r.grid.StatusRows; row < height; row++ {
		if row < 0 {
			continue
		}
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, row, ' ', nil, style)
		}
	}
	row := height - r.grid.StatusRows
	if row < 0 {
		return
	}
	x := 0
	for _, ch := range text {
		if x >= width {
			break
		}
		r.screen.SetContent(x, row, ch, nil, style)
		x++
	}
}
