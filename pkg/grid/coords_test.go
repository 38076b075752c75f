package grid

import "testing"

func TestCellsForExtent(t *testing.T) {
	e := newTestEngine(t, Overrides{})
	e.SetMetrics(Metrics{ColWidth: 100, RowHeight: 50})

	tests := []struct {
		name     string
		px       float64
		axis     Axis
		rounding Rounding
		want     int
	}{
		{name: "rows nearest half", px: 125, axis: AxisY, rounding: RoundNearest, want: 3},
		{name: "rows nearest below half", px: 124, axis: AxisY, rounding: RoundNearest, want: 2},
		{name: "rows ceil", px: 101, axis: AxisY, rounding: RoundCeil, want: 3},
		{name: "rows floor", px: 149, axis: AxisY, rounding: RoundFloor, want: 2},
		{name: "columns nearest", px: 149, axis: AxisX, rounding: RoundNearest, want: 1},
		{name: "columns nearest half", px: 150, axis: AxisX, rounding: RoundNearest, want: 2},
		{name: "negative half rounds up", px: -25, axis: AxisY, rounding: RoundNearest, want: 0},
		{name: "negative floor", px: -25, axis: AxisY, rounding: RoundFloor, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.CellsForExtent(tt.px, tt.axis, tt.rounding); got != tt.want {
				t.Errorf("CellsForExtent(%v, %v) = %d, want %d", tt.px, tt.axis, got, tt.want)
			}
		})
	}

	if got := e.PixelsToRows(260, RoundNearest); got != 5 {
		t.Errorf("PixelsToRows(260) = %d, want 5", got)
	}
	if got := e.PixelsToColumns(260, RoundFloor); got != 2 {
		t.Errorf("PixelsToColumns(260) = %d, want 2", got)
	}
}

func TestItemPixels(t *testing.T) {
	tests := []struct {
		name  string
		outer bool
		want  PixelRect
	}{
		{name: "outer margin", outer: true, want: PixelRect{Top: 60, Left: 210, Width: 190, Height: 40}},
		{name: "no outer margin", outer: false, want: PixelRect{Top: 50, Left: 200, Width: 190, Height: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, Overrides{OuterMargin: Bool(tt.outer)})
			e.SetMetrics(Metrics{ColWidth: 100, RowHeight: 50})
			it := &Item{Row: 1, Col: 2, SizeX: 2, SizeY: 1}
			if got := e.ItemPixels(it); got != tt.want {
				t.Errorf("ItemPixels() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
