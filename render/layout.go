package render

import (
	"math"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Layout maps field units onto terminal cells below the score line
type Layout struct {
	Width  int // Terminal columns
	Height int // Terminal rows

	FieldTop  int // First field row
	FieldRows int

	scaleX float64 // Field units per column
	scaleY float64 // Field units per row
}

// NewLayout computes the mapping for a screen of width x height cells
func NewLayout(width, height int, fieldWidth, fieldHeight float64) Layout {
	rows := height - parameter.TopMargin
	l := Layout{
		Width:     width,
		Height:    height,
		FieldTop:  parameter.TopMargin,
		FieldRows: rows,
	}
	if width > 0 && rows > 0 {
		l.scaleX = fieldWidth / float64(width)
		l.scaleY = fieldHeight / float64(rows)
	}
	return l
}

// TooSmall reports whether the screen is below the playable minimum
func (l Layout) TooSmall() bool {
	return l.Width < parameter.MinScreenWidth || l.Height < parameter.MinScreenHeight
}

// Column returns the column containing field x
func (l Layout) Column(x float64) int {
	if l.scaleX == 0 {
		return 0
	}
	return int(math.Floor(x / l.scaleX))
}

// Row returns the screen row containing field y
func (l Layout) Row(y float64) int {
	if l.scaleY == 0 {
		return l.FieldTop
	}
	return l.FieldTop + int(math.Floor(y/l.scaleY))
}

// Cells returns the inclusive cell span covered by r, clipped to the field area
// Any rect with positive size covers at least one cell
// ok is false when r lies entirely outside the field area
func (l Layout) Cells(r vmath.Rect) (x0, y0, x1, y1 int, ok bool) {
	if l.scaleX == 0 || l.scaleY == 0 {
		return 0, 0, 0, 0, false
	}

	x0 = l.Column(r.X)
	y0 = l.Row(r.Y)
	x1 = int(math.Ceil(r.Right()/l.scaleX)) - 1
	y1 = l.FieldTop + int(math.Ceil(r.Bottom()/l.scaleY)) - 1
	x1 = max(x1, x0)
	y1 = max(y1, y0)

	x0 = max(x0, 0)
	y0 = max(y0, l.FieldTop)
	x1 = min(x1, l.Width-1)
	y1 = min(y1, l.Height-1)

	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}
