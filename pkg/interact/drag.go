// Package interact turns pointer drags into grid placement calls.
//
// A [Drag] follows one item from press to release. It tracks the item's
// on-screen rectangle in container pixels, keeps it inside the container,
// and after every move maps the rectangle back to a cell and asks the
// engine to put the item there. With swapping enabled it first tries to
// make room by trading places with, or shifting, the items in the way.
//
//	d := interact.Start(engine, item, interact.OnStop(func(ev interact.Event) {
//	    fmt.Println("dropped at", ev.Row, ev.Col)
//	}))
//	d.Move(120, 0)
//	d.End()
//	engine.Settle()
package interact

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridster/pkg/grid"
)

// maxTop bounds how far down an element may be dragged, in pixels.
const maxTop = 9999

// Event describes a drag callback.
type Event struct {
	Item     *grid.Item
	Row, Col int

	// X and Y are the element's top-left corner in container pixels.
	X, Y float64

	// DeltaX and DeltaY are the pixel movement applied by this step.
	DeltaX, DeltaY float64
}

// Option configures a Drag.
type Option func(*Drag)

// OnStart sets the callback run when the drag begins.
func OnStart(fn func(Event)) Option { return func(d *Drag) { d.onStart = fn } }

// OnDrag sets the callback run after every move.
func OnDrag(fn func(Event)) Option { return func(d *Drag) { d.onDrag = fn } }

// OnStop sets the callback run after the item is dropped.
func OnStop(fn func(Event)) Option { return func(d *Drag) { d.onStop = fn } }

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(l *log.Logger) Option { return func(d *Drag) { d.logger = l } }

// Drag is one in-progress drag of an item. It is not safe for concurrent
// use, and only one Drag per engine should be active at a time.
type Drag struct {
	engine *grid.Engine
	item   *grid.Item

	x, y, w, h   float64
	carryX       float64
	carryY       float64
	originalRow  int
	originalCol  int
	active       bool
	lastDX       float64
	lastDY       float64
	onStart      func(Event)
	onDrag       func(Event)
	onStop       func(Event)
	logger       *log.Logger
	swapsApplied int
}

// New returns an idle drag for it. Call Begin to start it.
func New(e *grid.Engine, it *grid.Item, opts ...Option) *Drag {
	d := &Drag{
		engine: e,
		item:   it,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start returns a drag for it that has already begun at the item's current
// on-screen rectangle.
func Start(e *grid.Engine, it *grid.Item, opts ...Option) *Drag {
	d := New(e, it, opts...)
	r := e.ItemPixels(it)
	d.Begin(r.Left, r.Top, r.Width, r.Height)
	return d
}

// Begin starts the drag with the element at (x, y) and w by h pixels in
// size. The item becomes the engine's moving item.
func (d *Drag) Begin(x, y, w, h float64) {
	d.x, d.y, d.w, d.h = x, y, w, h
	d.carryX, d.carryY = 0, 0
	d.originalRow, d.originalCol = d.item.Row, d.item.Col
	d.active = true
	d.swapsApplied = 0

	d.engine.SetMoving(d.item)
	d.logger.Debug("drag started", "item", d.item.ID, "row", d.item.Row, "col", d.item.Col)
	d.emit(d.onStart)
}

// Active reports whether the drag has begun and not ended.
func (d *Drag) Active() bool { return d.active }

// Position returns the element's top-left corner in container pixels.
func (d *Drag) Position() (x, y float64) { return d.x, d.y }

// Origin returns the cell the item occupied when the drag began.
func (d *Drag) Origin() (row, col int) { return d.originalRow, d.originalCol }

// Swaps returns how many times the item traded places during this drag.
func (d *Drag) Swaps() int { return d.swapsApplied }

// Move shifts the element by (dx, dy) pixels and updates the item's cell.
// It reports whether the item moved to a different cell.
//
// Movement that would take the element past the container's left, right or
// top edge is held back and applied on a later move once the pointer comes
// back, so the element stays under the pointer.
func (d *Drag) Move(dx, dy float64) bool {
	if !d.active {
		return false
	}
	diffX, diffY := d.clamp(dx+d.carryX, dy+d.carryY)
	d.x += diffX
	d.y += diffY
	d.lastDX, d.lastDY = diffX, diffY

	oldRow, oldCol := d.item.Row, d.item.Col
	row, col := d.cell()
	d.follow(row, col)

	moved := oldRow != d.item.Row || oldCol != d.item.Col
	if moved || d.onDrag != nil {
		d.emit(d.onDrag)
	}
	return moved
}

// End drops the item at the cell under the element, clears the engine's
// moving item and commits the final position. Without pushing the item
// stays at its last free cell if the drop cell is taken.
func (d *Drag) End() {
	if !d.active {
		return
	}
	d.active = false
	d.carryX, d.carryY = 0, 0

	e, it := d.engine, d.item
	row, col := d.cell()
	if e.Config().Pushing || len(e.ItemsInRegion(row, col, it.SizeX, it.SizeY, it)) == 0 {
		it.Row, it.Col = row, col
	}
	e.SetMoving(nil)
	e.PlaceAt(it, it.Row, it.Col)

	d.logger.Debug("drag stopped", "item", it.ID, "row", it.Row, "col", it.Col,
		"from_row", d.originalRow, "from_col", d.originalCol)
	d.emit(d.onStop)
}

// clamp limits a movement so the element stays inside the container and
// stores the part that was held back.
func (d *Drag) clamp(dx, dy float64) (float64, float64) {
	d.carryX, d.carryY = 0, 0
	maxLeft := d.engine.Metrics().Width - 1

	diffX := dx
	if d.x+dx < 0 {
		diffX = -d.x
		d.carryX = dx - diffX
	} else if d.x+d.w+dx > maxLeft {
		diffX = maxLeft - d.x - d.w
		d.carryX = dx - diffX
	}

	diffY := dy
	if d.y+dy < 0 {
		diffY = -d.y
		d.carryY = dy - diffY
	} else if d.y+d.h+dy > maxTop {
		diffY = maxTop - d.y - d.h
		d.carryY = dy - diffY
	}
	return diffX, diffY
}

func (d *Drag) cell() (row, col int) {
	return d.engine.PixelsToRows(d.y, grid.RoundNearest), d.engine.PixelsToColumns(d.x, grid.RoundNearest)
}

// follow moves the item toward (row, col), making room first when swapping
// is enabled.
func (d *Drag) follow(row, col int) {
	e, it := d.engine, d.item
	cfg := e.Config()

	inTheWay := e.ItemsInRegion(row, col, it.SizeX, it.SizeY, it)
	if cfg.Swapping && len(inTheWay) > 0 {
		if !d.makeRoom(row, col, inTheWay) {
			return
		}
		inTheWay = e.ItemsInRegion(row, col, it.SizeX, it.SizeY, it)
	}
	if cfg.Pushing || len(inTheWay) == 0 {
		it.Row, it.Col = row, col
		e.PlaceAt(it, row, col)
	}
}

// makeRoom applies the swapping rules and reports whether the item may
// still move to (row, col).
//
// A single blocker of the same size exactly at the target trades places
// with the item. A single same-size blocker merely in line with the target
// holds the item back. Smaller blockers in line are shifted into the space
// the item leaves behind when all of them fit there.
func (d *Drag) makeRoom(row, col int, inTheWay []*grid.Item) bool {
	e, it := d.engine, d.item
	box, _ := e.BoundingBox(inTheWay)

	sameSize := box.SizeX == it.SizeX && box.SizeY == it.SizeY
	sameRow := box.Row == row
	sameCol := box.Col == col
	inline := sameRow || sameCol

	switch {
	case sameSize && len(inTheWay) == 1:
		if sameRow && sameCol {
			other := inTheWay[0]
			e.Swap(it, other)
			e.PlaceAt(other, other.Row, other.Col)
			e.PlaceAt(it, it.Row, it.Col)
			d.swapsApplied++
			d.logger.Debug("swapped", "item", it.ID, "with", other.ID)
		} else if inline {
			return false
		}
	case box.SizeX <= it.SizeX && box.SizeY <= it.SizeY && inline:
		emptyRow := row + it.SizeY
		if it.Row <= row {
			emptyRow = it.Row
		}
		emptyCol := col + it.SizeX
		if it.Col <= col {
			emptyCol = it.Col
		}
		d.shift(row, col, inTheWay, emptyRow-box.Row, emptyCol-box.Col)
	}
	return true
}

// shift moves every blocker by the same offset, or none of them. Each
// blocker must land on cells that are free apart from the dragged item and
// clear of the target footprint (row, col), so the item is never left
// under a blocker that made way for it.
func (d *Drag) shift(row, col int, inTheWay []*grid.Item, rowOffset, colOffset int) {
	e, it := d.engine, d.item
	target := grid.Rect{Row: row, Col: col, SizeX: it.SizeX, SizeY: it.SizeY}
	for _, other := range inTheWay {
		r, c := other.Row+rowOffset, other.Col+colOffset
		dest := grid.Rect{Row: r, Col: c, SizeX: other.SizeX, SizeY: other.SizeY}
		if !e.CanOccupy(other, r, c) || dest.Overlaps(target) ||
			len(e.ItemsInRegion(r, c, other.SizeX, other.SizeY, it)) > 0 {
			d.logger.Debug("cannot shift", "item", it.ID, "blocker", other.ID)
			return
		}
	}
	for _, other := range inTheWay {
		e.PlaceAt(other, other.Row+rowOffset, other.Col+colOffset, it)
	}
}

func (d *Drag) emit(fn func(Event)) {
	if fn == nil {
		return
	}
	fn(Event{
		Item:   d.item,
		Row:    d.item.Row,
		Col:    d.item.Col,
		X:      d.x,
		Y:      d.y,
		DeltaX: d.lastDX,
		DeltaY: d.lastDY,
	})
}
