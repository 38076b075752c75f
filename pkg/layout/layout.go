package layout

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/gridster/pkg/errors"
	"github.com/matzehuels/gridster/pkg/grid"
)

// Layout is a built document: the engine and its items by ID.
type Layout struct {
	Engine *grid.Engine

	overrides grid.Overrides
	items     []*grid.Item
	byID      map[string]*grid.Item
}

// Build creates an engine from doc and places its items in order. The
// engine is settled and loaded before Build returns. opts are passed to
// [grid.New].
func Build(doc Document, opts ...grid.Option) (*Layout, error) {
	e, err := grid.New(grid.DefaultConfig().Merge(doc.Grid), opts...)
	if err != nil {
		return nil, err
	}
	l := &Layout{
		Engine:    e,
		overrides: doc.Grid,
		byID:      make(map[string]*grid.Item, len(doc.Items)),
	}
	for _, spec := range doc.Items {
		if _, err := l.add(spec); err != nil {
			return nil, err
		}
	}
	e.Settle()
	e.Load()
	return l, nil
}

// Add sizes and places one more item and settles the engine.
func (l *Layout) Add(spec ItemSpec) (*grid.Item, error) {
	it, err := l.add(spec)
	if err != nil {
		return nil, err
	}
	l.Engine.Settle()
	return it, nil
}

func (l *Layout) add(spec ItemSpec) (*grid.Item, error) {
	id := spec.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, dup := l.byID[id]; dup {
		return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate item id %q", id)
	}

	it := grid.NewItem(id, 0, 0)
	it.MinSizeX, it.MinSizeY = spec.MinSizeX, spec.MinSizeY
	it.MaxSizeX, it.MaxSizeY = spec.MaxSizeX, spec.MaxSizeY
	l.Engine.SetSize(it, grid.AxisX, spec.SizeX, true)
	l.Engine.SetSize(it, grid.AxisY, spec.SizeY, true)
	if spec.Pinned() {
		it.Row, it.Col = *spec.Row, *spec.Col
	}

	if err := l.Engine.Place(it); err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "place %s", id)
	}
	l.items = append(l.items, it)
	l.byID[id] = it
	return it, nil
}

// Item returns the item with the given ID, or nil.
func (l *Layout) Item(id string) *grid.Item { return l.byID[id] }

// Items returns the items in the order they were added.
func (l *Layout) Items() []*grid.Item { return slices.Clone(l.items) }

// Remove takes the item with the given ID off the grid and forgets it. It
// reports whether the ID was known.
func (l *Layout) Remove(id string) bool {
	it, ok := l.byID[id]
	if !ok {
		return false
	}
	l.Engine.Remove(it)
	l.Engine.Settle()
	delete(l.byID, id)
	l.items = slices.DeleteFunc(l.items, func(x *grid.Item) bool { return x == it })
	return true
}

// Document returns a document that rebuilds the current layout: the
// original overrides and every item pinned at its cell, in row-major order.
func (l *Layout) Document() Document {
	doc := Document{Grid: l.overrides}
	for _, it := range sortedItems(l.items) {
		row, col := it.Row, it.Col
		doc.Items = append(doc.Items, ItemSpec{
			ID:       it.ID,
			Row:      &row,
			Col:      &col,
			SizeX:    it.SizeX,
			SizeY:    it.SizeY,
			MinSizeX: it.MinSizeX,
			MinSizeY: it.MinSizeY,
			MaxSizeX: it.MaxSizeX,
			MaxSizeY: it.MaxSizeY,
		})
	}
	return doc
}

// =============================================================================
// Snapshot
// =============================================================================

// Snapshot is the exported state of a layout.
type Snapshot struct {
	Columns     int         `json:"columns"`
	Height      int         `json:"height"`
	PixelHeight float64     `json:"pixel_height,omitempty"`
	Items       []Placement `json:"items"`
}

// Placement is one item's cell rectangle and, once the engine knows its
// cell dimensions, its pixel rectangle.
type Placement struct {
	ID     string          `json:"id"`
	Row    int             `json:"row"`
	Col    int             `json:"col"`
	SizeX  int             `json:"size_x"`
	SizeY  int             `json:"size_y"`
	Pixels *grid.PixelRect `json:"pixels,omitempty"`
}

// Snapshot exports the placed items sorted by row, then column.
func (l *Layout) Snapshot() Snapshot {
	e := l.Engine
	withPixels := e.Metrics().ColWidth > 0 && e.Metrics().RowHeight > 0

	s := Snapshot{
		Columns: e.Config().Columns,
		Height:  e.Height(),
		Items:   []Placement{},
	}
	if withPixels {
		s.PixelHeight = e.PixelHeight()
	}
	for _, it := range sortedItems(l.items) {
		p := Placement{ID: it.ID, Row: it.Row, Col: it.Col, SizeX: it.SizeX, SizeY: it.SizeY}
		if withPixels {
			r := e.ItemPixels(it)
			p.Pixels = &r
		}
		s.Items = append(s.Items, p)
	}
	return s
}

func sortedItems(items []*grid.Item) []*grid.Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b *grid.Item) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return out
}
