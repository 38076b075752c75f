// Package pkg holds the public libraries behind gridster, a column/row grid
// layout engine for dashboard-style boards.
//
// # Overview
//
// Items occupy rectangular blocks of cells in a grid with a fixed number of
// columns. The engine keeps them from overlapping: placing an item where
// others sit pushes those items down, and with floating enabled every item
// rises to the highest free row once the grid settles.
//
// The packages build on each other:
//
//  1. [grid] - The engine: configuration, occupancy, placement, collision
//     cascade, floating, height and pixel geometry.
//  2. [interact] - Drag gestures that move one item across the engine with
//     pushing and swapping.
//  3. [layout] - JSON/TOML documents describing a grid and its items, built
//     into a live engine and exported as snapshots.
//  4. [server] - An HTTP adapter exposing a layout as a small JSON API.
//
// Supporting packages:
//
//   - [errors] - Coded errors shared by every package.
//   - [observability] - Process-wide hooks for grid and HTTP events.
//   - [buildinfo] - Version metadata set at link time.
//
// # Data Flow
//
//	layout file (.toml / .json)
//	         ↓
//	    [layout] package (decode + build)
//	         ↓
//	    [grid] package (place, cascade, float)
//	         ↓
//	    snapshot → terminal table, JSON, HTTP response
//
// # Quick Start
//
//	doc, err := layout.ReadFile("examples/dashboard.toml")
//	if err != nil {
//	    return err
//	}
//	l, err := layout.Build(doc)
//	if err != nil {
//	    return err
//	}
//	for _, p := range l.Snapshot().Items {
//	    fmt.Println(p.ID, p.Row, p.Col)
//	}
//
// The gridster command wraps these packages: "layout" prints a computed
// grid, "play" opens an interactive editor and "serve" starts the HTTP API.
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/gridster/pkg/grid
// [interact]: https://pkg.go.dev/github.com/matzehuels/gridster/pkg/interact
// [layout]: https://pkg.go.dev/github.com/matzehuels/gridster/pkg/layout
// [server]: https://pkg.go.dev/github.com/matzehuels/gridster/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridster/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gridster/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/gridster/pkg/buildinfo
package pkg
