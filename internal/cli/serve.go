package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridster/pkg/grid"
	"github.com/matzehuels/gridster/pkg/layout"
	"github.com/matzehuels/gridster/pkg/server"
)

// defaultAddr is the address the serve command listens on.
const defaultAddr = "localhost:8080"

// serveCommand creates the serve command that exposes a layout over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		flags gridFlags
	)

	cmd := &cobra.Command{
		Use:   "serve [layout.toml|layout.json]",
		Short: "Serve a layout over HTTP",
		Long: `Serve a layout over HTTP.

Without a document the server starts with an empty grid. Items are added,
moved, resized, swapped and removed through JSON requests; every response
carries the layout after the change.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			doc, err := loadDocument(path, flags.overrides(cmd))
			if err != nil {
				return err
			}
			return runServe(ctx, doc, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	flags.register(cmd)

	return cmd
}

func runServe(ctx context.Context, doc layout.Document, addr string) error {
	logger := loggerFromContext(ctx)

	l, err := layout.Build(doc, grid.WithLogger(logger))
	if err != nil {
		return err
	}
	printInfo("Serving %d items on http://%s", len(l.Items()), addr)

	err = server.New(l, server.WithLogger(logger)).ListenAndServe(ctx, addr)
	if errors.Is(err, context.Canceled) || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
