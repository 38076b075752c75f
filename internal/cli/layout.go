package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridster/pkg/grid"
	"github.com/matzehuels/gridster/pkg/layout"
)

// layoutOptions holds the flags of the layout command.
type layoutOptions struct {
	output string
	width  float64
	list   bool
	grid   gridFlags
}

// layoutCommand creates the layout command for placing a document's items.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "layout [layout.toml|layout.json]",
		Short: "Place the items of a layout document",
		Long: `Place the items of a layout document.

The layout command reads a document, places its items in order (pinned
items at their cell, the rest in the first free slot), pushes colliding
items down and floats gaps away. The result is printed as a grid. With
--output it is written as a document that pins every item at its cell.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			doc, err := loadDocument(args[0], opts.grid.overrides(cmd))
			if err != nil {
				return err
			}
			return runLayout(ctx, doc, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the placed layout to this .json or .toml file")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "container width in pixels, adds pixel geometry")
	cmd.Flags().BoolVar(&opts.list, "list", false, "print items as a list instead of a grid")
	opts.grid.register(cmd)

	return cmd
}

func runLayout(ctx context.Context, doc layout.Document, opts layoutOptions) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	l, err := layout.Build(doc, grid.WithLogger(logger))
	if err != nil {
		printError("%v", err)
		return err
	}
	if opts.width > 0 {
		if _, err := l.Engine.ResizeContainer(opts.width); err != nil {
			return err
		}
		l.Engine.Settle()
	}
	prog.done(fmt.Sprintf("Placed %d items", len(l.Items())))

	snap := l.Snapshot()
	if opts.list {
		fmt.Print(describeItems(snap))
	} else {
		fmt.Println(renderGrid(snap, ""))
	}
	fmt.Println(formatStats(snap))
	if snap.Height >= l.Engine.Config().MaxRows {
		printWarning("layout reaches max rows (%d)", l.Engine.Config().MaxRows)
	}

	if opts.output != "" {
		if err := layout.WriteFile(l.Document(), opts.output); err != nil {
			return err
		}
		printSuccess("Layout written")
		printFile(opts.output)
		printNextStep("Try it interactively", "gridster play "+opts.output)
	}
	return nil
}
