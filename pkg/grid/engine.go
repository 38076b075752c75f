package grid

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridster/pkg/errors"
	"github.com/matzehuels/gridster/pkg/observability"
)

// Engine owns the occupancy of one grid and every operation that changes it.
//
// An Engine is single-writer: all methods run to completion on the calling
// goroutine and must not be called concurrently. Layout-changed passes are
// deferred through the engine's [Scheduler]; with the default queue they run
// when [Engine.Settle] is called.
type Engine struct {
	cfg     Config
	grid    Occupancy
	height  int
	metrics Metrics

	moving  *Item
	loaded  bool
	pending bool

	scheduler Scheduler
	queue     *Queue
	listeners []func(height int)
	logger    *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(l *log.Logger) Option { return func(e *Engine) { e.logger = l } }

// WithScheduler replaces the engine-owned queue with s. Settle becomes a
// no-op; s decides when layout passes run.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		e.scheduler = s
		e.queue = nil
	}
}

// WithMetrics sets the initial pixel dimensions.
func WithMetrics(m Metrics) Option { return func(e *Engine) { e.metrics = m } }

// New returns an empty engine for cfg. The configuration is copied.
//
// When cfg.Width is a pixel count the metrics are resolved immediately;
// with "auto" they stay zero until [Engine.SetMetrics] or
// [Engine.ResizeContainer] is called.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	q := &Queue{}
	e := &Engine{
		cfg:       cfg.clone(),
		scheduler: q,
		queue:     q,
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
	}
	if cfg.Width != Auto && cfg.Width != "" {
		m, err := ResolveMetrics(e.cfg, 0)
		if err != nil {
			return nil, err
		}
		e.metrics = m
	}
	for _, opt := range opts {
		opt(e)
	}
	e.RecomputeHeight(0)
	return e, nil
}

// Config returns a copy of the active configuration.
func (e *Engine) Config() Config { return e.cfg.clone() }

// Reconfigure layers o over the active configuration. Metrics are
// re-resolved for the current container width, and a loaded grid is floated
// again when the floating flag changes.
func (e *Engine) Reconfigure(o Overrides) error {
	next := e.cfg.Merge(o)
	if err := next.Validate(); err != nil {
		return err
	}
	floatingChanged := next.Floating != e.cfg.Floating
	e.cfg = next

	if e.metrics.Width > 0 || (next.Width != Auto && next.Width != "") {
		m, err := ResolveMetrics(next, e.metrics.Width)
		if err != nil {
			return err
		}
		e.metrics = m
	}
	if floatingChanged && e.loaded {
		e.FloatAll()
	}
	e.RecomputeHeight(e.movingOverhang())
	e.logger.Debug("reconfigured", "columns", next.Columns, "max_rows", next.MaxRows, "floating", next.Floating)
	return nil
}

// =============================================================================
// Queries
// =============================================================================

// Occupancy returns the read-only view of the grid.
func (e *Engine) Occupancy() *Occupancy { return &e.grid }

// Items returns every placed item in grid order.
func (e *Engine) Items() []*Item { return e.grid.Items() }

// ItemCovering returns the item whose footprint covers (row, col).
func (e *Engine) ItemCovering(row, col int, exclude ...*Item) *Item {
	return e.grid.ItemCovering(row, col, exclude...)
}

// ItemsInRegion returns the distinct items intersecting the given block.
func (e *Engine) ItemsInRegion(row, col, sizeX, sizeY int, exclude ...*Item) []*Item {
	return e.grid.ItemsInRegion(row, col, sizeX, sizeY, exclude...)
}

// CanOccupy reports whether it fits inside the grid with its top-left cell
// at (row, col). Other items are not considered.
func (e *Engine) CanOccupy(it *Item, row, col int) bool {
	return row > -1 && col > -1 && it.SizeX+col <= e.cfg.Columns && it.SizeY+row <= e.cfg.MaxRows
}

// BoundingBox returns the smallest rectangle enclosing every item, or false
// when items is empty.
func (e *Engine) BoundingBox(items []*Item) (Rect, bool) {
	if len(items) == 0 {
		return Rect{}, false
	}
	first := items[0]
	minRow, minCol := first.Row, first.Col
	maxRow, maxCol := first.Row+first.SizeY, first.Col+first.SizeX
	for _, it := range items[1:] {
		minRow = min(minRow, it.Row)
		minCol = min(minCol, it.Col)
		maxRow = max(maxRow, it.Row+it.SizeY)
		maxCol = max(maxCol, it.Col+it.SizeX)
	}
	return Rect{Row: minRow, Col: minCol, SizeX: maxCol - minCol, SizeY: maxRow - minRow}, true
}

// =============================================================================
// Placement
// =============================================================================

// Place inserts or moves it to its own Row and Col. An item whose Row is
// [Unset] is auto-placed.
func (e *Engine) Place(it *Item) error {
	if !it.Placed() {
		return e.AutoPlace(it)
	}
	e.PlaceAt(it, it.Row, it.Col)
	return nil
}

// PlaceAll places items in order and stops at the first failure.
func (e *Engine) PlaceAll(items []*Item) error {
	for _, it := range items {
		if err := e.Place(it); err != nil {
			return err
		}
	}
	return nil
}

// AutoPlace puts it at the first free cell in row-major order. It returns a
// GRID_FULL error, leaving it untouched, when no cell fits.
func (e *Engine) AutoPlace(it *Item) error {
	for r := 0; r < e.cfg.MaxRows; r++ {
		for c := 0; c < e.cfg.Columns; c++ {
			if e.CanOccupy(it, r, c) && len(e.grid.ItemsInRegion(r, c, it.SizeX, it.SizeY, it)) == 0 {
				e.PlaceAt(it, r, c)
				return nil
			}
		}
	}
	observability.Grid().OnPlacementFailed(it.ID, it.SizeX, it.SizeY)
	e.logger.Warn("no room for item", "item", it.ID, "size_x", it.SizeX, "size_y", it.SizeY)
	return errors.New(errors.ErrCodeGridFull, "no room for item %q (%dx%d) in %d columns and %d rows",
		it.ID, it.SizeX, it.SizeY, e.cfg.Columns, e.cfg.MaxRows)
}

// PlaceAt moves it to (row, col), pushing any overlapping items down. Items
// in ignore are left where they are even if they overlap.
//
// A position that does not fit is clamped into the grid. Placing an item at
// the cell it already owns only refreshes Row and Col. When it is the moving
// item it is floated left and up straight away.
func (e *Engine) PlaceAt(it *Item, row, col int, ignore ...*Item) {
	if !e.CanOccupy(it, row, col) {
		// An item wider or taller than the grid still anchors at 0.
		col = max(0, min(e.cfg.Columns-it.SizeX, max(0, col)))
		row = max(0, min(e.cfg.MaxRows-it.SizeY, max(0, row)))
	}

	if it.committed() {
		if it.OldRow == row && it.OldCol == col && e.grid.ItemAt(row, col) == it {
			it.Row, it.Col = row, col
			return
		}
		e.grid.Clear(it, it.OldRow, it.OldCol)
	}

	it.OldRow, it.Row = row, row
	it.OldCol, it.Col = col, col

	e.ResolveOverlaps(it, ignore...)
	e.grid.set(row, col, it)
	e.logger.Debug("placed item", "item", it.ID, "row", row, "col", col)
	observability.Grid().OnPlace(it.ID, row, col)

	if e.moving == it {
		e.FloatLeft(it)
		e.FloatUp(it)
	}
	e.LayoutChanged()
}

// Swap exchanges the positions of a and b. Both must be placed, and the
// caller must know that each fits where the other was: no other item is
// checked or moved.
func (e *Engine) Swap(a, b *Item) {
	e.grid.set(a.Row, a.Col, b)
	e.grid.set(b.Row, b.Col, a)
	a.Row, a.Col, b.Row, b.Col = b.Row, b.Col, a.Row, a.Col
	e.logger.Debug("swapped items", "a", a.ID, "b", b.ID)
}

// Remove takes it off the grid. Its Row and Col are kept so it can be placed
// again. Removing an item that is not on the grid does nothing.
func (e *Engine) Remove(it *Item) {
	row, col, ok := e.grid.find(it)
	if !ok {
		return
	}
	e.grid.rows[row][col] = nil
	if e.moving == it {
		e.moving = nil
	}
	e.logger.Debug("removed item", "item", it.ID)
	observability.Grid().OnRemove(it.ID)
	e.LayoutChanged()
}

// Reset removes every item without notifying hooks.
func (e *Engine) Reset() {
	e.grid.reset()
	e.moving = nil
	e.RecomputeHeight(0)
}

// =============================================================================
// Moving item
// =============================================================================

// SetMoving marks it as the item under live drag, or clears the mark when it
// is nil, and recomputes the height with the drag overhang.
func (e *Engine) SetMoving(it *Item) {
	e.moving = it
	e.RecomputeHeight(e.movingOverhang())
}

// Moving returns the item under live drag, if any.
func (e *Engine) Moving() *Item { return e.moving }

func (e *Engine) movingOverhang() int {
	if e.moving == nil {
		return 0
	}
	return e.moving.SizeY
}
