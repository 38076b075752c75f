// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about grid placement and HTTP requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the engine never imports
// a metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGridHooks(&myGridHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Grid().OnPlace(item.ID, row, col)
//	observability.Grid().OnCascade(item.ID, len(pushed))
//
// Grid hooks are invoked synchronously from engine operations and carry no
// context: engine operations never block.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Grid Hooks
// =============================================================================

// GridHooks receives events from the placement engine.
type GridHooks interface {
	// OnPlace records an item committed to a new cell.
	OnPlace(itemID string, row, col int)

	// OnCascade records an item pushing others down.
	OnCascade(itemID string, pushed int)

	// OnFloat records an item moved up or left by compaction.
	OnFloat(itemID string, fromRow, fromCol, toRow, toCol int)

	// OnRemove records an item removed from the grid.
	OnRemove(itemID string)

	// OnPlacementFailed records an auto-placement that found no free slot.
	OnPlacementFailed(itemID string, sizeX, sizeY int)

	// OnLayoutChanged records a completed debounced layout pass.
	OnLayoutChanged(height int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP adapter.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGridHooks is a no-op implementation of GridHooks.
type NoopGridHooks struct{}

func (NoopGridHooks) OnPlace(string, int, int)           {}
func (NoopGridHooks) OnCascade(string, int)              {}
func (NoopGridHooks) OnFloat(string, int, int, int, int) {}
func (NoopGridHooks) OnRemove(string)                    {}
func (NoopGridHooks) OnPlacementFailed(string, int, int) {}
func (NoopGridHooks) OnLayoutChanged(int)                {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gridHooks GridHooks = NoopGridHooks{}
	httpHooks HTTPHooks = NoopHTTPHooks{}
	hooksMu   sync.RWMutex
)

// SetGridHooks registers custom grid hooks.
// This should be called once at application startup before any engine is built.
func SetGridHooks(h GridHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gridHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving requests.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Grid returns the registered grid hooks.
func Grid() GridHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gridHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gridHooks = NoopGridHooks{}
	httpHooks = NoopHTTPHooks{}
}
