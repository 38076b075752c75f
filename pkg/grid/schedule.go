package grid

import "github.com/matzehuels/gridster/pkg/observability"

// Scheduler runs deferred work on the engine's goroutine at a later turn.
// Implementations must not run fn synchronously inside Defer.
type Scheduler interface {
	Defer(fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(fn func())

// Defer calls f(fn).
func (f SchedulerFunc) Defer(fn func()) { f(fn) }

// Queue is a single-threaded turn queue. Deferred functions run in FIFO order
// when the owner calls Drain.
type Queue struct {
	fns []func()
}

// Defer appends fn to the queue.
func (q *Queue) Defer(fn func()) { q.fns = append(q.fns, fn) }

// Len returns the number of queued functions.
func (q *Queue) Len() int { return len(q.fns) }

// Drain runs queued functions until the queue is empty, including any that
// are queued while draining, and returns how many ran.
func (q *Queue) Drain() int {
	n := 0
	for len(q.fns) > 0 {
		fn := q.fns[0]
		q.fns[0] = nil
		q.fns = q.fns[1:]
		fn()
		n++
	}
	return n
}

// =============================================================================
// Layout-changed pass
// =============================================================================

// LayoutChanged schedules one layout pass: float every item when the grid
// is loaded, recompute the height with the moving item's overhang, and
// notify listeners. Calls made while a pass is pending are absorbed into it.
func (e *Engine) LayoutChanged() {
	if e.pending {
		return
	}
	e.pending = true
	e.scheduler.Defer(e.layoutPass)
}

func (e *Engine) layoutPass() {
	e.pending = false
	if e.loaded {
		e.FloatAll()
	}
	h := e.RecomputeHeight(e.movingOverhang())
	e.logger.Debug("layout changed", "height", h)
	observability.Grid().OnLayoutChanged(h)
	for _, fn := range e.listeners {
		fn(h)
	}
}

// Pending reports whether a layout pass is scheduled but has not run.
func (e *Engine) Pending() bool { return e.pending }

// OnLayoutChanged registers fn to be called with the grid height after every
// layout pass.
func (e *Engine) OnLayoutChanged(fn func(height int)) {
	e.listeners = append(e.listeners, fn)
}

// Settle runs every pending deferred pass when the engine owns its queue.
// With a caller-supplied Scheduler it does nothing; the caller decides when
// deferred work runs.
func (e *Engine) Settle() {
	if e.queue != nil {
		e.queue.Drain()
	}
}

// Load marks the grid as populated. From now on layout passes float items
// up; everything placed so far is floated immediately and the engine
// settles.
func (e *Engine) Load() {
	if e.loaded {
		return
	}
	e.loaded = true
	e.FloatAll()
	e.Settle()
}

// Loaded reports whether Load has been called.
func (e *Engine) Loaded() bool { return e.loaded }
