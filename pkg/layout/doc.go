// Package layout reads, builds and exports declarative grid layouts.
//
// A [Document] describes a grid the way a page template would: optional
// configuration overrides plus a list of items, each with a size and an
// optional pinned position. Documents are plain data and can be decoded
// from JSON or TOML files.
//
// # Building
//
// [Build] turns a document into a live [Layout]: it creates a
// [grid.Engine] from the layered configuration, sizes every item through
// the engine's size rules, places items in document order (pinned items at
// their cell, the rest auto-placed), settles the engine and marks it
// loaded. Items without an ID receive a random UUID.
//
//	doc, err := layout.ReadFile("dashboard.toml")
//	if err != nil {
//	    return err
//	}
//	l, err := layout.Build(doc)
//	if err != nil {
//	    return err // GRID_FULL when an item does not fit
//	}
//	fmt.Println(l.Snapshot().Height)
//
// # Snapshots
//
// [Layout.Snapshot] exports the current placement sorted row-major, which
// is what the CLI prints and the HTTP adapter returns. [Layout.Document]
// goes the other way and pins every item at its current cell, so a
// computed layout can be written back with [WriteFile] and reloaded
// unchanged.
//
// # File Formats
//
// The format is chosen by extension: ".json" or ".toml". Unknown keys are
// rejected in both formats so typos do not silently fall back to defaults.
//
//	[grid]
//	columns = 4
//	floating = true
//
//	[[items]]
//	id = "chart"
//	size_x = 2
//	size_y = 2
//
//	[[items]]
//	id = "banner"
//	size_x = 4
//	row = 0
//	col = 0
package layout
