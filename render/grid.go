package render

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/parameter"
)

// Grid maps viewport units to terminal cells
// The playfield fills the screen above the status bar rows
type Grid struct {
	CellWidth  float64
	CellHeight float64
	StatusRows int
}

// DefaultGrid uses the stock cell size
func DefaultGrid() Grid {
	return Grid{
		CellWidth:  parameter.CellWidth,
		CellHeight: parameter.CellHeight,
		StatusRows: parameter.StatusBarRows,
	}
}

// Viewport returns the playfield for a screen of cols x rows
func (g Grid) Viewport(cols, rows int) core.Viewport {
	rows -= g.StatusRows
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return core.Viewport{Width: float64(cols) * g.CellWidth, Height: float64(rows) * g.CellHeight}
}

// ToCell returns the cell containing p
func (g Grid) ToCell(p r2.Point) (x, y int) {
	return int(math.Floor(p.X / g.CellWidth)), int(math.Floor(p.Y / g.CellHeight))
}

// ToWorld returns the viewport point at the center of cell (x, y)
func (g Grid) ToWorld(x, y int) r2.Point {
	return r2.Point{X: (float64(x) + 0.5) * g.CellWidth, Y: (float64(y) + 0.5) * g.CellHeight}
}
