package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridster/pkg/observability"
)

// LogHooks reports grid and HTTP events to a logger at debug level.
type LogHooks struct {
	Logger *log.Logger
}

var (
	_ observability.GridHooks = LogHooks{}
	_ observability.HTTPHooks = LogHooks{}
)

// NewLogHooks returns hooks that log to l.
func NewLogHooks(l *log.Logger) LogHooks { return LogHooks{Logger: l} }

func (h LogHooks) OnPlace(itemID string, row, col int) {
	h.Logger.Debug("hook: place", "item", itemID, "row", row, "col", col)
}

func (h LogHooks) OnCascade(itemID string, pushed int) {
	h.Logger.Debug("hook: cascade", "item", itemID, "pushed", pushed)
}

func (h LogHooks) OnFloat(itemID string, fromRow, fromCol, toRow, toCol int) {
	h.Logger.Debug("hook: float", "item", itemID, "from", [2]int{fromRow, fromCol}, "to", [2]int{toRow, toCol})
}

func (h LogHooks) OnRemove(itemID string) {
	h.Logger.Debug("hook: remove", "item", itemID)
}

func (h LogHooks) OnPlacementFailed(itemID string, sizeX, sizeY int) {
	h.Logger.Warn("no room for item", "item", itemID, "size_x", sizeX, "size_y", sizeY)
}

func (h LogHooks) OnLayoutChanged(height int) {
	h.Logger.Debug("hook: layout changed", "height", height)
}

func (h LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("hook: request", "method", method, "path", path)
}

func (h LogHooks) OnResponse(_ context.Context, method, path string, statusCode int, duration time.Duration) {
	h.Logger.Debug("hook: response", "method", method, "path", path, "status", statusCode, "duration", duration)
}

// Register installs h as the process-wide grid and HTTP hooks.
func (h LogHooks) Register() {
	observability.SetGridHooks(h)
	observability.SetHTTPHooks(h)
}
