package grid_test

import (
	"fmt"

	"github.com/matzehuels/gridster/pkg/errors"
	"github.com/matzehuels/gridster/pkg/grid"
)

func Example() {
	e, err := grid.New(grid.DefaultConfig().Merge(grid.Overrides{
		Columns: grid.Int(4),
		MaxRows: grid.Int(10),
	}))
	if err != nil {
		panic(err)
	}

	a := grid.NewItem("a", 2, 2)
	b := grid.NewItem("b", 2, 2)
	_ = e.PlaceAll([]*grid.Item{a, b})

	// A full-width banner at the top pushes both down.
	banner := grid.NewItem("banner", 4, 1)
	banner.Row, banner.Col = 0, 0
	_ = e.Place(banner)
	e.Settle()

	for _, it := range e.Items() {
		fmt.Println(it)
	}
	fmt.Println("height:", e.Height())
	// Output:
	// banner@0,0[4x1]
	// a@1,0[2x2]
	// b@1,2[2x2]
	// height: 3
}

func ExampleEngine_AutoPlace() {
	e, _ := grid.New(grid.DefaultConfig().Merge(grid.Overrides{
		Columns: grid.Int(2),
		MaxRows: grid.Int(1),
	}))

	_ = e.AutoPlace(grid.NewItem("wide", 2, 1))
	err := e.AutoPlace(grid.NewItem("extra", 1, 1))
	fmt.Println(errors.GetCode(err))
	// Output:
	// GRID_FULL
}

func ExampleEngine_FloatAll() {
	e, _ := grid.New(grid.DefaultConfig())

	it := grid.NewItem("low", 1, 1)
	e.PlaceAt(it, 5, 0)
	e.FloatAll()

	fmt.Println(it)
	// Output:
	// low@0,0[1x1]
}

func ExampleResolveMetrics() {
	m, _ := grid.ResolveMetrics(grid.DefaultConfig(), 1210)
	fmt.Printf("col %.0fpx, row %.0fpx, mobile %v\n", m.ColWidth, m.RowHeight, m.Mobile)
	// Output:
	// col 200px, row 200px, mobile false
}
