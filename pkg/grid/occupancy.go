package grid

import "slices"

// Occupancy is the sparse store of item references, indexed by row then
// column. An item is recorded only at its top-left cell; lookups that land
// inside a footprint walk backward to find the owning cell.
//
// Rows and columns are never compacted. A nil row, a column past the end of
// a row, and a nil cell are all empty.
type Occupancy struct {
	rows [][]*Item
}

// Len returns the number of row slots, including empty ones.
func (o *Occupancy) Len() int { return len(o.rows) }

// ItemAt returns the item whose top-left cell is exactly (row, col).
func (o *Occupancy) ItemAt(row, col int) *Item {
	if row < 0 || row >= len(o.rows) || col < 0 {
		return nil
	}
	cols := o.rows[row]
	if col >= len(cols) {
		return nil
	}
	return cols[col]
}

// ItemCovering returns an item whose footprint covers (row, col), skipping
// the excluded items.
//
// The search retreats from (row, col) toward (0, 0): rows in decreasing
// order, and within each row columns in decreasing order. Every step back
// grows the footprint an owner would need to reach the probed cell, so a
// top-left cell only matches when its item is at least that large. The
// nearest such owner wins.
func (o *Occupancy) ItemCovering(row, col int, exclude ...*Item) *Item {
	sizeY := 1
	for r := row; r >= 0; r-- {
		sizeX := 1
		for c := col; c >= 0; c-- {
			it := o.ItemAt(r, c)
			if it != nil && !slices.Contains(exclude, it) && it.SizeX >= sizeX && it.SizeY >= sizeY {
				return it
			}
			sizeX++
		}
		sizeY++
	}
	return nil
}

// ItemsInRegion returns the distinct items whose footprints intersect rows
// [row, row+sizeY) and columns [col, col+sizeX), in first-seen order
// scanning the region row by row. A zero sizeX or sizeY probes a single
// cell.
func (o *Occupancy) ItemsInRegion(row, col, sizeX, sizeY int, exclude ...*Item) []*Item {
	if sizeX == 0 || sizeY == 0 {
		sizeX, sizeY = 1, 1
	}
	var items []*Item
	for h := 0; h < sizeY; h++ {
		for w := 0; w < sizeX; w++ {
			it := o.ItemCovering(row+h, col+w, exclude...)
			if it != nil && !slices.Contains(items, it) {
				items = append(items, it)
			}
		}
	}
	return items
}

// Clear removes the reference at (row, col) if it still points at it.
// A cell holding a different item is left alone: the item has already been
// moved and something else owns the cell now.
func (o *Occupancy) Clear(it *Item, row, col int) {
	if o.ItemAt(row, col) == it {
		o.rows[row][col] = nil
	}
}

// Each calls fn for every stored item, top to bottom and left to right.
// Rows that grow during iteration are visited; fn may move items.
func (o *Occupancy) Each(fn func(row, col int, it *Item)) {
	for r := 0; r < len(o.rows); r++ {
		for c := 0; c < len(o.rows[r]); c++ {
			if it := o.rows[r][c]; it != nil {
				fn(r, c, it)
			}
		}
	}
}

// Items returns every stored item in grid order.
func (o *Occupancy) Items() []*Item {
	var items []*Item
	o.Each(func(_, _ int, it *Item) {
		items = append(items, it)
	})
	return items
}

// find returns the cell holding it.
func (o *Occupancy) find(it *Item) (row, col int, ok bool) {
	for r, cols := range o.rows {
		if c := slices.Index(cols, it); c >= 0 {
			return r, c, true
		}
	}
	return 0, 0, false
}

// set records it at (row, col), growing the row and column slices as needed.
func (o *Occupancy) set(row, col int, it *Item) {
	for len(o.rows) <= row {
		o.rows = append(o.rows, nil)
	}
	cols := o.rows[row]
	for len(cols) <= col {
		cols = append(cols, nil)
	}
	cols[col] = it
	o.rows[row] = cols
}

// reset drops every reference.
func (o *Occupancy) reset() {
	o.rows = nil
}
