package grid

import (
	"fmt"
	"math"
)

// Unset marks a row or column that has not been assigned. An item whose Row
// is Unset is auto-placed by [Engine.Place].
const Unset = math.MinInt

// Item is a rectangular element placed on the grid.
//
// Items are owned by the caller. The engine never allocates or frees them; it
// reads and writes the position and size fields and records the item in its
// occupancy grid. Identity is the pointer, ID is only a label.
//
// Size bounds of 0 mean "no per-item bound"; grid-wide bounds from [Config]
// still apply.
type Item struct {
	ID string

	Row, Col     int
	SizeX, SizeY int

	MinSizeX, MinSizeY int
	MaxSizeX, MaxSizeY int

	// OldRow and OldCol hold the last committed position.
	OldRow, OldCol int

	// OldSizeX and OldSizeY hold the last accepted size, restored when a
	// deny-listed size is rejected.
	OldSizeX, OldSizeY int
}

// NewItem returns an unplaced item with the given span.
func NewItem(id string, sizeX, sizeY int) *Item {
	return &Item{
		ID:     id,
		Row:    Unset,
		Col:    Unset,
		SizeX:  sizeX,
		SizeY:  sizeY,
		OldRow: Unset,
		OldCol: Unset,
	}
}

// Placed reports whether the item has a position.
func (it *Item) Placed() bool { return it.Row != Unset }

// committed reports whether the item has a last committed position.
func (it *Item) committed() bool { return it.OldRow != Unset }

// Rect returns the item's footprint.
func (it *Item) Rect() Rect {
	return Rect{Row: it.Row, Col: it.Col, SizeX: it.SizeX, SizeY: it.SizeY}
}

// String returns a compact description like "chart@2,0[2x1]".
func (it *Item) String() string {
	if !it.Placed() {
		return fmt.Sprintf("%s@unplaced[%dx%d]", it.ID, it.SizeX, it.SizeY)
	}
	return fmt.Sprintf("%s@%d,%d[%dx%d]", it.ID, it.Row, it.Col, it.SizeX, it.SizeY)
}

// Rect is an axis-aligned block of cells: rows [Row, Row+SizeY) and columns
// [Col, Col+SizeX).
type Rect struct {
	Row, Col     int
	SizeX, SizeY int
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int { return r.Row + r.SizeY }

// Right returns the first column right of the rectangle.
func (r Rect) Right() int { return r.Col + r.SizeX }

// Contains reports whether the cell (row, col) lies inside the rectangle.
func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row < r.Bottom() && col >= r.Col && col < r.Right()
}

// Overlaps reports whether two rectangles share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.Row < o.Bottom() && o.Row < r.Bottom() && r.Col < o.Right() && o.Col < r.Right()
}
