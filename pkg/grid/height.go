package grid

// RecomputeHeight recalculates the number of rows the grid needs and returns
// it. extraRows is added below every stored item to make room for an item
// being dragged, whose footprint is not in the grid yet.
//
// The height is at least MinRows. While the tallest item ends above MaxRows
// the result is that bottom edge; past MaxRows the bottom edge is kept as
// well, so an overhanging drag still has room.
func (e *Engine) RecomputeHeight(extraRows int) int {
	h := e.cfg.MinRows
	for r := e.grid.Len() - 1; r >= 0; r-- {
		for _, it := range e.grid.rows[r] {
			if it != nil {
				h = max(h, r+extraRows+it.SizeY)
			}
		}
	}
	if e.cfg.MaxRows-h > 0 {
		e.height = min(e.cfg.MaxRows, h)
	} else {
		e.height = max(e.cfg.MaxRows, h)
	}
	return e.height
}

// Height returns the row count computed by the last RecomputeHeight.
func (e *Engine) Height() int { return e.height }
