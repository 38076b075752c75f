package grid

import (
	"slices"
	"strconv"
	"strings"
)

// SetSize sets the span of it along axis and reports whether the size
// changed.
//
// A value of 0 selects the configured default for the axis. The result is
// clamped between the larger of the item and grid minimums (never below 1)
// and the smaller of the grid extent and the item and grid maximums. The
// grid extent wins over a minimum larger than the grid. A clamped value
// found in the grid's InvalidSizes list is rejected: the last accepted size
// is restored and SetSize reports false.
//
// Unless preventMove is set, a changed size refits the item into the grid,
// pushes overlapping items down and schedules a layout pass.
func (e *Engine) SetSize(it *Item, axis Axis, value int, preventMove bool) bool {
	cur, old := &it.SizeX, &it.OldSizeX
	def, limit := e.cfg.DefaultSizeX, e.cfg.Columns
	itemMin, itemMax := it.MinSizeX, it.MaxSizeX
	gridMin, gridMax := e.cfg.MinSizeX, e.cfg.MaxSizeX
	invalid := e.cfg.InvalidSizes.Width
	if axis == AxisY {
		cur, old = &it.SizeY, &it.OldSizeY
		def, limit = e.cfg.DefaultSizeY, e.cfg.MaxRows
		itemMin, itemMax = it.MinSizeY, it.MaxSizeY
		gridMin, gridMax = e.cfg.MinSizeY, e.cfg.MaxSizeY
		invalid = e.cfg.InvalidSizes.Height
	}

	if value == 0 {
		value = def
	}
	hi := limit
	if itemMax > 0 {
		hi = min(hi, itemMax)
	}
	if gridMax > 0 {
		hi = min(hi, gridMax)
	}
	lo := max(1, itemMin, gridMin)
	value = max(1, min(max(value, lo), hi))

	if slices.Contains(invalid, value) {
		if *old != 0 {
			*cur = *old
		}
		e.logger.Debug("rejected size", "item", it.ID, "axis", axis, "size", value)
		return false
	}

	changed := *cur != value || (*old != 0 && *old != value)
	*old, *cur = value, value

	if !preventMove && changed {
		e.refit(it)
	}
	return changed
}

// SetSizeText is SetSize for text input such as a form field. The empty
// string leaves the item alone and reports false. Otherwise the leading
// integer of text is used; text without one selects the default size.
func (e *Engine) SetSizeText(it *Item, axis Axis, text string, preventMove bool) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	return e.SetSize(it, axis, leadingInt(text), preventMove)
}

// Resize sets both spans of it and, if either changed, refits it into the
// grid once, pushing overlapping items down and scheduling a layout pass.
func (e *Engine) Resize(it *Item, sizeX, sizeY int) bool {
	changedX := e.SetSize(it, AxisX, sizeX, true)
	changedY := e.SetSize(it, AxisY, sizeY, true)
	if !changedX && !changedY {
		return false
	}
	e.refit(it)
	return true
}

// refit settles it after a size change. A placed item that now runs past
// the last column or row is moved back inside through PlaceAt, which also
// pushes overlapping items down.
func (e *Engine) refit(it *Item) {
	if it.committed() && !e.CanOccupy(it, it.Row, it.Col) {
		e.PlaceAt(it, it.Row, it.Col)
		return
	}
	e.ResolveOverlaps(it)
	e.LayoutChanged()
}

// leadingInt parses an optional sign and the digits that follow it. It
// returns 0 when there are no digits.
func leadingInt(s string) int {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
