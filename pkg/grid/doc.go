// Package grid places rectangular items on a bounded two-dimensional grid.
//
// # Overview
//
// A grid has a fixed number of columns and a row cap. Items occupy a block
// of cells given by their top-left cell (Row, Col) and their span (SizeX,
// SizeY). The [Engine] keeps one rule at all times: no two items share a
// cell. Every operation that would break the rule instead pushes the items
// in the way down, and when floating is enabled items rise again into any
// free rows above them.
//
// The engine is built from a few small parts:
//
//  1. Occupancy ([Occupancy]): a sparse store that records each item at its
//     top-left cell only and answers coverage queries by scanning backward.
//  2. Placement ([Engine.Place], [Engine.PlaceAt], [Engine.AutoPlace]):
//     clamping, no-op detection, and row-major first-fit insertion.
//  3. Collision resolution ([Engine.ResolveOverlaps]): a column-aware cascade
//     that moves overlapping items down one row at a time.
//  4. Compaction ([Engine.FloatUp], [Engine.FloatAll]): removes vertical gaps.
//  5. Height tracking ([Engine.RecomputeHeight]): the rows the grid needs,
//     including room for an item being dragged.
//  6. Coordinate mapping ([Engine.PixelsToRows], [ResolveMetrics]): converts
//     between pixels and cells.
//
// # Usage
//
//	e, err := grid.New(grid.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	chart := grid.NewItem("chart", 2, 2)
//	if err := e.Place(chart); err != nil { // auto-placed at (0, 0)
//	    return err
//	}
//	e.Settle()
//
// # Layout passes
//
// Operations that change the layout do not compact or recompute height
// immediately. They call [Engine.LayoutChanged], which schedules a single
// pass on the engine's [Scheduler]; further calls before the pass runs are
// absorbed into it. The default scheduler is a [Queue] drained by
// [Engine.Settle]. Until [Engine.Load] is called, passes only recompute the
// height, which lets a caller insert a whole layout before anything floats.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package grid
