package grid

import (
	"slices"

	"github.com/matzehuels/gridster/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultColumns is the default number of columns.
	DefaultColumns = 6

	// DefaultMaxRows is the default row cap.
	DefaultMaxRows = 100

	// DefaultMinRows is the default floor on the reported grid height.
	DefaultMinRows = 1

	// DefaultSizeX is the width substituted for invalid or zero sizes.
	DefaultSizeX = 2

	// DefaultSizeY is the height substituted for invalid or zero sizes.
	DefaultSizeY = 1

	// DefaultMargin is the default pixel margin between items.
	DefaultMargin = 10

	// DefaultMobileBreakPoint is the container width at or below which the
	// grid stacks items vertically.
	DefaultMobileBreakPoint = 600
)

// Dimension keywords accepted by Width, ColWidth and RowHeight.
const (
	// Auto derives the value from the container or column count.
	Auto = "auto"

	// Match makes rows as tall as columns are wide.
	Match = "match"
)

// =============================================================================
// Config
// =============================================================================

// InvalidSizes lists spans an item may never take, per axis.
type InvalidSizes struct {
	Width  []int `json:"width,omitempty" toml:"width,omitempty"`
	Height []int `json:"height,omitempty" toml:"height,omitempty"`
}

// Config is the immutable configuration of one grid.
//
// Floating lets items rise into free rows above them. FloatingLeft
// additionally pulls the item being dragged into free columns on its left;
// it has no effect unless Floating is set.
//
// Build one with [DefaultConfig] and [Config.Merge]; an [Engine] copies the
// value it is given, so later changes to the caller's copy have no effect.
type Config struct {
	Columns      int  `json:"columns" toml:"columns"`
	MinColumns   int  `json:"min_columns" toml:"min_columns"`
	MaxRows      int  `json:"max_rows" toml:"max_rows"`
	MinRows      int  `json:"min_rows" toml:"min_rows"`
	Floating     bool `json:"floating" toml:"floating"`
	FloatingLeft bool `json:"floating_left" toml:"floating_left"`
	Pushing      bool `json:"pushing" toml:"pushing"`
	Swapping     bool `json:"swapping" toml:"swapping"`

	DefaultSizeX int          `json:"default_size_x" toml:"default_size_x"`
	DefaultSizeY int          `json:"default_size_y" toml:"default_size_y"`
	MinSizeX     int          `json:"min_size_x" toml:"min_size_x"`
	MinSizeY     int          `json:"min_size_y" toml:"min_size_y"`
	MaxSizeX     int          `json:"max_size_x,omitempty" toml:"max_size_x,omitempty"`
	MaxSizeY     int          `json:"max_size_y,omitempty" toml:"max_size_y,omitempty"`
	InvalidSizes InvalidSizes `json:"invalid_sizes,omitempty" toml:"invalid_sizes,omitempty"`

	// Margins holds the vertical and horizontal gap in pixels.
	Margins     []int `json:"margins" toml:"margins"`
	OuterMargin bool  `json:"outer_margin" toml:"outer_margin"`

	// Width is "auto" or a pixel count. ColWidth is "auto" or a pixel count.
	// RowHeight is "match", "*k", "/k" or a pixel count.
	Width     string `json:"width" toml:"width"`
	ColWidth  string `json:"col_width" toml:"col_width"`
	RowHeight string `json:"row_height" toml:"row_height"`

	MobileBreakPoint  int  `json:"mobile_break_point" toml:"mobile_break_point"`
	MobileModeEnabled bool `json:"mobile_mode_enabled" toml:"mobile_mode_enabled"`
}

// DefaultConfig returns the stock gridster configuration.
func DefaultConfig() Config {
	return Config{
		Columns:           DefaultColumns,
		MinColumns:        1,
		MaxRows:           DefaultMaxRows,
		MinRows:           DefaultMinRows,
		Floating:          true,
		FloatingLeft:      false,
		Pushing:           true,
		Swapping:          false,
		DefaultSizeX:      DefaultSizeX,
		DefaultSizeY:      DefaultSizeY,
		MinSizeX:          1,
		MinSizeY:          1,
		Margins:           []int{DefaultMargin, DefaultMargin},
		OuterMargin:       true,
		Width:             Auto,
		ColWidth:          Auto,
		RowHeight:         Match,
		MobileBreakPoint:  DefaultMobileBreakPoint,
		MobileModeEnabled: true,
	}
}

// Validate checks the configuration for values the engine cannot work with.
func (c Config) Validate() error {
	if c.Columns <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "columns must be positive, got %d", c.Columns)
	}
	if c.MaxRows <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_rows must be positive, got %d", c.MaxRows)
	}
	if c.MinRows < 0 || c.MinRows > c.MaxRows {
		return errors.New(errors.ErrCodeInvalidConfig, "min_rows must be within [0, %d], got %d", c.MaxRows, c.MinRows)
	}
	if c.DefaultSizeX <= 0 || c.DefaultSizeY <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "default sizes must be positive, got %dx%d", c.DefaultSizeX, c.DefaultSizeY)
	}
	return nil
}

// MarginY returns the vertical gap in pixels.
func (c Config) MarginY() int { return c.Margins[0] }

// MarginX returns the horizontal gap in pixels.
func (c Config) MarginX() int { return c.Margins[1] }

// clone returns a copy that shares no slices with c.
func (c Config) clone() Config {
	c.Margins = slices.Clone(c.Margins)
	c.InvalidSizes.Width = slices.Clone(c.InvalidSizes.Width)
	c.InvalidSizes.Height = slices.Clone(c.InvalidSizes.Height)
	return c
}

// =============================================================================
// Overrides
// =============================================================================

// Overrides holds instance-local settings layered over a base [Config].
// Nil fields keep the base value. Overrides decode from partial JSON or TOML
// documents, so a layout file only names what it changes.
type Overrides struct {
	Columns      *int  `json:"columns,omitempty" toml:"columns,omitempty"`
	MinColumns   *int  `json:"min_columns,omitempty" toml:"min_columns,omitempty"`
	MaxRows      *int  `json:"max_rows,omitempty" toml:"max_rows,omitempty"`
	MinRows      *int  `json:"min_rows,omitempty" toml:"min_rows,omitempty"`
	Floating     *bool `json:"floating,omitempty" toml:"floating,omitempty"`
	FloatingLeft *bool `json:"floating_left,omitempty" toml:"floating_left,omitempty"`
	Pushing      *bool `json:"pushing,omitempty" toml:"pushing,omitempty"`
	Swapping     *bool `json:"swapping,omitempty" toml:"swapping,omitempty"`

	DefaultSizeX *int          `json:"default_size_x,omitempty" toml:"default_size_x,omitempty"`
	DefaultSizeY *int          `json:"default_size_y,omitempty" toml:"default_size_y,omitempty"`
	MinSizeX     *int          `json:"min_size_x,omitempty" toml:"min_size_x,omitempty"`
	MinSizeY     *int          `json:"min_size_y,omitempty" toml:"min_size_y,omitempty"`
	MaxSizeX     *int          `json:"max_size_x,omitempty" toml:"max_size_x,omitempty"`
	MaxSizeY     *int          `json:"max_size_y,omitempty" toml:"max_size_y,omitempty"`
	InvalidSizes *InvalidSizes `json:"invalid_sizes,omitempty" toml:"invalid_sizes,omitempty"`

	Margins     []int `json:"margins,omitempty" toml:"margins,omitempty"`
	OuterMargin *bool `json:"outer_margin,omitempty" toml:"outer_margin,omitempty"`

	Width     *string `json:"width,omitempty" toml:"width,omitempty"`
	ColWidth  *string `json:"col_width,omitempty" toml:"col_width,omitempty"`
	RowHeight *string `json:"row_height,omitempty" toml:"row_height,omitempty"`

	MobileBreakPoint  *int  `json:"mobile_break_point,omitempty" toml:"mobile_break_point,omitempty"`
	MobileModeEnabled *bool `json:"mobile_mode_enabled,omitempty" toml:"mobile_mode_enabled,omitempty"`
}

// Merge returns c with the non-nil fields of o applied. Neither c nor o is
// modified. Margins that do not hold exactly two values become [0, 0].
func (c Config) Merge(o Overrides) Config {
	out := c.clone()

	setInt(&out.Columns, o.Columns)
	setInt(&out.MinColumns, o.MinColumns)
	setInt(&out.MaxRows, o.MaxRows)
	setInt(&out.MinRows, o.MinRows)
	setBool(&out.Floating, o.Floating)
	setBool(&out.FloatingLeft, o.FloatingLeft)
	setBool(&out.Pushing, o.Pushing)
	setBool(&out.Swapping, o.Swapping)

	setInt(&out.DefaultSizeX, o.DefaultSizeX)
	setInt(&out.DefaultSizeY, o.DefaultSizeY)
	setInt(&out.MinSizeX, o.MinSizeX)
	setInt(&out.MinSizeY, o.MinSizeY)
	setInt(&out.MaxSizeX, o.MaxSizeX)
	setInt(&out.MaxSizeY, o.MaxSizeY)
	if o.InvalidSizes != nil {
		out.InvalidSizes = InvalidSizes{
			Width:  slices.Clone(o.InvalidSizes.Width),
			Height: slices.Clone(o.InvalidSizes.Height),
		}
	}

	if o.Margins != nil {
		out.Margins = slices.Clone(o.Margins)
	}
	if len(out.Margins) != 2 {
		out.Margins = []int{0, 0}
	}
	setBool(&out.OuterMargin, o.OuterMargin)

	setString(&out.Width, o.Width)
	setString(&out.ColWidth, o.ColWidth)
	setString(&out.RowHeight, o.RowHeight)

	setInt(&out.MobileBreakPoint, o.MobileBreakPoint)
	setBool(&out.MobileModeEnabled, o.MobileModeEnabled)

	return out
}

// Helper functions to create pointers for Overrides literals.
func Int(v int) *int          { return &v }
func Bool(v bool) *bool       { return &v }
func String(v string) *string { return &v }

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
