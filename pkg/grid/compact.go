package grid

import "github.com/matzehuels/gridster/pkg/observability"

// FloatUp moves it to the highest free row directly above it. The climb
// stops at the first row that is not free, so an item never jumps over
// another one. Nothing happens when floating is disabled.
func (e *Engine) FloatUp(it *Item) {
	if !e.cfg.Floating {
		return
	}
	best := -1
	for r := it.Row - 1; r > -1; r-- {
		if len(e.grid.ItemsInRegion(r, it.Col, it.SizeX, it.SizeY, it)) != 0 {
			break
		}
		best = r
	}
	if best < 0 {
		return
	}
	e.float(it, best, it.Col)
}

// FloatLeft moves it to the leftmost free column directly left of it, with
// the same stopping rule as FloatUp. It needs both Floating and
// FloatingLeft.
func (e *Engine) FloatLeft(it *Item) {
	if !e.cfg.Floating || !e.cfg.FloatingLeft {
		return
	}
	best := -1
	for c := it.Col - 1; c > -1; c-- {
		if len(e.grid.ItemsInRegion(it.Row, c, it.SizeX, it.SizeY, it)) != 0 {
			break
		}
		best = c
	}
	if best < 0 {
		return
	}
	e.float(it, it.Row, best)
}

func (e *Engine) float(it *Item, row, col int) {
	fromRow, fromCol := it.Row, it.Col
	e.PlaceAt(it, row, col)
	observability.Grid().OnFloat(it.ID, fromRow, fromCol, it.Row, it.Col)
}

// FloatAll floats every item up, top to bottom and left to right. The
// moving item is skipped until its drag ends. Nothing happens when floating
// is disabled.
func (e *Engine) FloatAll() {
	if !e.cfg.Floating {
		return
	}
	rows := e.grid.Len()
	for r := 0; r < rows; r++ {
		cols := len(e.grid.rows[r])
		for c := 0; c < cols; c++ {
			it := e.grid.ItemAt(r, c)
			if it == nil || it == e.moving {
				continue
			}
			e.FloatUp(it)
		}
	}
}
