package grid

import "math"

// Axis selects rows or columns.
type Axis int

const (
	// AxisX is the column axis; spans along it are item widths.
	AxisX Axis = iota
	// AxisY is the row axis; spans along it are item heights.
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Rounding selects how a fractional cell count becomes an integer.
type Rounding int

const (
	RoundNearest Rounding = iota // halves round up
	RoundCeil
	RoundFloor
)

func (r Rounding) apply(v float64) int {
	switch r {
	case RoundCeil:
		return int(math.Ceil(v))
	case RoundFloor:
		return int(math.Floor(v))
	default:
		return int(roundHalfUp(v))
	}
}

// CellsForExtent converts a pixel extent along axis into a number of cells
// using the current cell dimensions. A zero cell dimension is a
// configuration error and is not checked.
func (e *Engine) CellsForExtent(px float64, axis Axis, rounding Rounding) int {
	dim := e.metrics.ColWidth
	if axis == AxisY {
		dim = e.metrics.RowHeight
	}
	return rounding.apply(px / dim)
}

// PixelsToRows converts a vertical pixel extent into rows.
func (e *Engine) PixelsToRows(px float64, rounding Rounding) int {
	return e.CellsForExtent(px, AxisY, rounding)
}

// PixelsToColumns converts a horizontal pixel extent into columns.
func (e *Engine) PixelsToColumns(px float64, rounding Rounding) int {
	return e.CellsForExtent(px, AxisX, rounding)
}

// PixelRect is an on-screen rectangle in container coordinates.
type PixelRect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ItemPixels returns where it is drawn inside the container. Margins are
// taken out of the width and height so neighbouring items keep a gap, and
// the outer margin offsets the whole grid.
func (e *Engine) ItemPixels(it *Item) PixelRect {
	m := e.metrics
	var offY, offX float64
	if e.cfg.OuterMargin {
		offY, offX = float64(e.cfg.MarginY()), float64(e.cfg.MarginX())
	}
	return PixelRect{
		Top:    float64(it.Row)*m.RowHeight + offY,
		Left:   float64(it.Col)*m.ColWidth + offX,
		Width:  float64(it.SizeX)*m.ColWidth - float64(e.cfg.MarginX()),
		Height: float64(it.SizeY)*m.RowHeight - float64(e.cfg.MarginY()),
	}
}

// PixelHeight returns the container height needed for the current grid
// height.
func (e *Engine) PixelHeight() float64 {
	h := float64(e.height) * e.metrics.RowHeight
	if e.cfg.OuterMargin {
		return h + float64(e.cfg.MarginY())
	}
	return h - float64(e.cfg.MarginY())
}
