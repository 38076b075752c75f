package grid

import "testing"

func TestRecomputeHeight(t *testing.T) {
	type cell struct{ row, sizeY int }

	tests := []struct {
		name    string
		minRows int
		items   []cell
		extra   int
		want    int
	}{
		{name: "empty uses min rows", minRows: 1, want: 1},
		{name: "empty with zero min rows", minRows: 0, want: 0},
		{name: "min rows floor", minRows: 4, items: []cell{{0, 1}}, want: 4},
		{name: "bottom edge", minRows: 1, items: []cell{{4, 3}, {0, 1}}, want: 7},
		{name: "drag overhang", minRows: 1, items: []cell{{4, 3}}, extra: 2, want: 9},
		{name: "at max rows", minRows: 1, items: []cell{{8, 2}}, want: 10},
		{name: "overhang past max rows", minRows: 1, items: []cell{{8, 2}}, extra: 3, want: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, Overrides{MaxRows: Int(10), MinRows: Int(tt.minRows), Floating: Bool(false)})
			for i, c := range tt.items {
				placeAt(e, string(rune('a'+i)), c.row, i, 1, c.sizeY)
			}
			if got := e.RecomputeHeight(tt.extra); got != tt.want {
				t.Errorf("RecomputeHeight(%d) = %d, want %d", tt.extra, got, tt.want)
			}
			if got := e.Height(); got != tt.want {
				t.Errorf("Height() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPixelHeight(t *testing.T) {
	tests := []struct {
		name  string
		outer bool
		want  float64
	}{
		{name: "outer margin", outer: true, want: 3*50 + 10},
		{name: "no outer margin", outer: false, want: 3*50 - 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, Overrides{OuterMargin: Bool(tt.outer)})
			e.SetMetrics(Metrics{ColWidth: 100, RowHeight: 50})
			placeAt(e, "a", 0, 0, 1, 3)
			e.Settle()
			if got := e.PixelHeight(); got != tt.want {
				t.Errorf("PixelHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}
