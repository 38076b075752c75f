// Package cli implements the gridster command-line interface.
//
// This package provides commands for computing grid layouts from layout
// documents, moving items around interactively in the terminal, and serving
// a layout over HTTP. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Place the items of a document and print or export the result
//   - play: Drag items around a layout in an interactive terminal view
//   - serve: Serve a layout over HTTP
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Grid settings are layered: built-in defaults, then the user file
// ~/.config/gridster/config.toml, then the document's [grid] table, then
// command-line flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes the engine's placement trace. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger: timestamps as "15:04:05.00", messages
// below level dropped.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command step, such as building a layout, and logs
// its result with the elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level followed by the elapsed time, for example
// "Placed 5 items (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for the run* functions of the commands.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
