// Package cli implements the gridster command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridster/pkg/buildinfo"
	"github.com/matzehuels/gridster/pkg/errors"
	"github.com/matzehuels/gridster/pkg/grid"
	"github.com/matzehuels/gridster/pkg/layout"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gridster"

	// configFile is the name of the user configuration file inside the
	// config directory.
	configFile = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Gridster lays out items on a bounded grid",
		Long:         `Gridster places rectangular items on a fixed-column grid, pushes colliding items down, floats gaps away and serves or plays with the result.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/gridster/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Document Loading
// =============================================================================

// userOverrides reads grid overrides from the user config file. A missing
// file or an unknown home directory yields no overrides.
func userOverrides() (grid.Overrides, error) {
	dir, err := configDir()
	if err != nil {
		return grid.Overrides{}, nil
	}
	path := filepath.Join(dir, configFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return grid.Overrides{}, nil
	}

	var o grid.Overrides
	md, err := toml.DecodeFile(path, &o)
	if err != nil {
		return grid.Overrides{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return grid.Overrides{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}
	return o, nil
}

// loadDocument reads the document at path, or starts an empty one when path
// is empty, and layers the user config underneath its grid overrides and
// the command-line flags on top.
func loadDocument(path string, flags grid.Overrides) (layout.Document, error) {
	var doc layout.Document
	if path != "" {
		var err error
		if doc, err = layout.ReadFile(path); err != nil {
			return layout.Document{}, err
		}
	}
	user, err := userOverrides()
	if err != nil {
		return layout.Document{}, err
	}
	doc.Grid = mergeOverrides(mergeOverrides(user, doc.Grid), flags)
	return doc, nil
}

// mergeOverrides returns base with every field set in top replacing it.
func mergeOverrides(base, top grid.Overrides) grid.Overrides {
	out := base
	pick(&out.Columns, top.Columns)
	pick(&out.MinColumns, top.MinColumns)
	pick(&out.MaxRows, top.MaxRows)
	pick(&out.MinRows, top.MinRows)
	pick(&out.Floating, top.Floating)
	pick(&out.FloatingLeft, top.FloatingLeft)
	pick(&out.Pushing, top.Pushing)
	pick(&out.Swapping, top.Swapping)
	pick(&out.DefaultSizeX, top.DefaultSizeX)
	pick(&out.DefaultSizeY, top.DefaultSizeY)
	pick(&out.MinSizeX, top.MinSizeX)
	pick(&out.MinSizeY, top.MinSizeY)
	pick(&out.MaxSizeX, top.MaxSizeX)
	pick(&out.MaxSizeY, top.MaxSizeY)
	pick(&out.InvalidSizes, top.InvalidSizes)
	pick(&out.OuterMargin, top.OuterMargin)
	pick(&out.Width, top.Width)
	pick(&out.ColWidth, top.ColWidth)
	pick(&out.RowHeight, top.RowHeight)
	pick(&out.MobileBreakPoint, top.MobileBreakPoint)
	pick(&out.MobileModeEnabled, top.MobileModeEnabled)
	if top.Margins != nil {
		out.Margins = top.Margins
	}
	return out
}

func pick[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}

// =============================================================================
// Flags
// =============================================================================

// gridFlags binds the grid settings most often changed from the command
// line. Only flags the user set end up in the overrides.
type gridFlags struct {
	columns  int
	maxRows  int
	floating bool
	pushing  bool
	swapping bool
}

func (f *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.columns, "columns", grid.DefaultColumns, "number of columns")
	cmd.Flags().IntVar(&f.maxRows, "max-rows", grid.DefaultMaxRows, "maximum number of rows")
	cmd.Flags().BoolVar(&f.floating, "floating", true, "float items up into free rows")
	cmd.Flags().BoolVar(&f.pushing, "pushing", true, "push colliding items down")
	cmd.Flags().BoolVar(&f.swapping, "swapping", false, "swap same-size items while dragging")
}

func (f *gridFlags) overrides(cmd *cobra.Command) grid.Overrides {
	var o grid.Overrides
	if cmd.Flags().Changed("columns") {
		o.Columns = grid.Int(f.columns)
	}
	if cmd.Flags().Changed("max-rows") {
		o.MaxRows = grid.Int(f.maxRows)
	}
	if cmd.Flags().Changed("floating") {
		o.Floating = grid.Bool(f.floating)
	}
	if cmd.Flags().Changed("pushing") {
		o.Pushing = grid.Bool(f.pushing)
	}
	if cmd.Flags().Changed("swapping") {
		o.Swapping = grid.Bool(f.swapping)
	}
	return o
}
