package grid

import (
	"cmp"
	"slices"

	"github.com/matzehuels/gridster/pkg/observability"
)

// ResolveOverlaps pushes every item overlapping it down so that it starts
// right below it. Items in ignore, and it itself, are not moved.
func (e *Engine) ResolveOverlaps(it *Item, ignore ...*Item) {
	if !slices.Contains(ignore, it) {
		ignore = append(slices.Clip(ignore), it)
	}
	overlaps := e.grid.ItemsInRegion(it.Row, it.Col, it.SizeX, it.SizeY, ignore...)
	if len(overlaps) == 0 {
		return
	}
	observability.Grid().OnCascade(it.ID, len(overlaps))
	e.logger.Debug("pushing items down", "item", it.ID, "count", len(overlaps), "to_row", it.Row+it.SizeY)
	e.cascadeDown(overlaps, it.Row+it.SizeY, ignore)
}

// cascadeDown moves items so that the topmost item in each column starts at
// targetRow. Items below it in the same column keep their distance. Each
// item joins ignore once it has moved, so later items in the batch do not
// push it again.
func (e *Engine) cascadeDown(items []*Item, targetRow int, ignore []*Item) {
	if len(items) == 0 {
		return
	}
	slices.SortStableFunc(items, func(a, b *Item) int { return cmp.Compare(a.Row, b.Row) })
	ignore = slices.Clone(ignore)

	topRows := make(map[int]int, len(items))
	for _, it := range items {
		if top, ok := topRows[it.Col]; !ok || it.Row < top {
			topRows[it.Col] = it.Row
		}
	}

	for _, it := range items {
		rowsToMove := targetRow - topRows[it.Col]
		e.moveDown(it, it.Row+rowsToMove, ignore)
		ignore = append(ignore, it)
	}
}

// moveDown lowers it one row at a time to newRow, clearing the way at every
// step, then commits the final position.
func (e *Engine) moveDown(it *Item, newRow int, ignore []*Item) {
	if it.Row >= newRow {
		return
	}
	for it.Row < newRow {
		it.Row++
		e.ResolveOverlaps(it, ignore...)
	}
	e.PlaceAt(it, it.Row, it.Col, ignore...)
}
