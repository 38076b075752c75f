package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridster/pkg/layout"
)

// playCommand creates the play command for editing a layout in the terminal.
func (c *CLI) playCommand() *cobra.Command {
	var (
		save  bool
		flags gridFlags
	)

	cmd := &cobra.Command{
		Use:   "play [layout.toml|layout.json]",
		Short: "Move items around a layout interactively",
		Long: `Move items around a layout interactively.

Select an item with tab, pick it up with enter, move it with the arrow keys
and drop it with enter again. Items in the way are pushed down (or swapped
with --swapping) exactly as a pointer drag would.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			doc, err := loadDocument(path, flags.overrides(cmd))
			if err != nil {
				return err
			}
			l, err := layout.Build(doc)
			if err != nil {
				return err
			}

			savePath := ""
			if save {
				savePath = path
			}
			model, err := NewPlayModel(l, savePath)
			if err != nil {
				return err
			}
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(PlayModel); ok {
				c.Logger.Debug("play finished", "items", len(m.Layout.Items()), "height", m.Layout.Engine.Height())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "allow writing changes back to the document with w")
	flags.register(cmd)

	return cmd
}
