package grid

import "testing"

func TestScenarioFullWidthPushesBothDown(t *testing.T) {
	e := newTestEngine(t, Overrides{Columns: Int(4), MaxRows: Int(10)})
	e.Load()

	a := NewItem("a", 2, 2)
	b := NewItem("b", 2, 2)
	if err := e.PlaceAll([]*Item{a, b}); err != nil {
		t.Fatalf("PlaceAll() error = %v", err)
	}
	assertAt(t, a, 0, 0)
	assertAt(t, b, 0, 2)

	c := NewItem("c", 4, 1)
	c.Row, c.Col = 0, 0
	if err := e.Place(c); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	e.Settle()

	assertAt(t, c, 0, 0)
	assertAt(t, a, c.Rect().Bottom(), 0)
	assertAt(t, b, c.Rect().Bottom(), 2)
	assertNoOverlap(t, e)
	if got := e.Height(); got != 3 {
		t.Errorf("Height() = %d, want 3", got)
	}
}

func TestCascadeChain(t *testing.T) {
	e := newTestEngine(t, Overrides{Columns: Int(1), MaxRows: Int(20)})
	e.Load()

	a := NewItem("a", 1, 1)
	b := NewItem("b", 1, 1)
	c := NewItem("c", 1, 1)
	if err := e.PlaceAll([]*Item{a, b, c}); err != nil {
		t.Fatalf("PlaceAll() error = %v", err)
	}
	e.Settle()

	before := map[*Item]int{a: a.Row, b: b.Row, c: c.Row}
	d := NewItem("d", 1, 2)
	e.PlaceAt(d, 0, 0)

	assertNoOverlap(t, e)
	for it, row := range before {
		if it.Row < row {
			t.Errorf("%s moved up from %d to %d", it.ID, row, it.Row)
		}
		if it.Row < d.Rect().Bottom() {
			t.Errorf("%s at row %d, still above %d", it.ID, it.Row, d.Rect().Bottom())
		}
	}

	// The layout pass closes any gap the cascade left.
	e.Settle()
	assertAt(t, d, 0, 0)
	assertAt(t, a, 2, 0)
	assertAt(t, b, 3, 0)
	assertAt(t, c, 4, 0)
	if got := e.Height(); got != 5 {
		t.Errorf("Height() = %d, want 5", got)
	}
}

func TestCascadeColumnOffsets(t *testing.T) {
	e := newTestEngine(t, Overrides{Columns: Int(4), Floating: Bool(false)})

	top := placeAt(e, "top", 0, 0, 1, 1)
	low := placeAt(e, "low", 2, 0, 1, 1)
	side := placeAt(e, "side", 1, 2, 1, 1)

	wide := NewItem("wide", 4, 3)
	e.PlaceAt(wide, 0, 0)

	// The topmost item of each column lands right below the new item. The
	// lower item in column 0 is first pushed along by the item above it and
	// then moved by its own column offset, which leaves a gap for the next
	// layout pass to close.
	assertAt(t, top, 3, 0)
	assertAt(t, side, 3, 2)
	assertAt(t, low, 7, 0)
	assertNoOverlap(t, e)
}

func TestResolveOverlapsIgnore(t *testing.T) {
	e := newTestEngine(t, Overrides{Floating: Bool(false)})
	keep := placeAt(e, "keep", 0, 1, 1, 1)
	pushed := placeAt(e, "pushed", 0, 2, 1, 1)

	it := NewItem("it", 3, 1)
	e.PlaceAt(it, 0, 0, keep)

	assertAt(t, keep, 0, 1)
	assertAt(t, pushed, 1, 2)
	assertAt(t, it, 0, 0)
}
