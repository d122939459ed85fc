package render

import (
	"math"

	"github.com/lixenwraith/vi-pong/vmath"
)

// Layout maps playfield units onto terminal cells
// The whole playfield is stretched over the screen; aspect ratio is not kept
type Layout struct {
	Cols, Rows    int
	Width, Height float64 // playfield size
}

// NewLayout creates a layout for a cols x rows screen
func NewLayout(cols, rows int, width, height float64) Layout {
	return Layout{Cols: cols, Rows: rows, Width: width, Height: height}
}

// Empty reports whether there is nothing to draw on
func (l Layout) Empty() bool {
	return l.Cols <= 0 || l.Rows <= 0 || l.Width <= 0 || l.Height <= 0
}

// Col returns the column containing playfield x, clamped to the screen
func (l Layout) Col(x float64) int {
	return clampCell(math.Floor(x*float64(l.Cols)/l.Width), l.Cols)
}

// Row returns the row containing playfield y, clamped to the screen
func (l Layout) Row(y float64) int {
	return clampCell(math.Floor(y*float64(l.Rows)/l.Height), l.Rows)
}

// Cell returns the cell containing p
func (l Layout) Cell(p vmath.Vec2) (x, y int) {
	return l.Col(p.X), l.Row(p.Y)
}

// ColSpan returns the half-open column range covered by [x, x+w); never empty
func (l Layout) ColSpan(x, w float64) (from, to int) {
	return span(x, w, l.Width, l.Cols)
}

// RowSpan returns the half-open row range covered by [y, y+h); never empty
func (l Layout) RowSpan(y, h float64) (from, to int) {
	return span(y, h, l.Height, l.Rows)
}

func span(pos, size, extent float64, cells int) (from, to int) {
	from = clampCell(math.Floor(pos*float64(cells)/extent), cells)
	to = int(math.Ceil((pos + size) * float64(cells) / extent))
	to = min(max(to, from+1), cells)
	return from, to
}

func clampCell(v float64, n int) int {
	if v < 0 {
		return 0
	}
	if int(v) >= n {
		return n - 1
	}
	return int(v)
}
