package grid

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/gridster/pkg/errors"
)

// Metrics holds the resolved pixel dimensions of a grid.
type Metrics struct {
	Width     float64 `json:"width"`
	ColWidth  float64 `json:"col_width"`
	RowHeight float64 `json:"row_height"`
	Mobile    bool    `json:"mobile"`
}

// ResolveMetrics turns the dimension settings of cfg into pixel sizes for a
// container that is containerWidth pixels wide.
//
// Width "auto" takes the container width. ColWidth "auto" divides the width,
// less one horizontal margin with an outer margin or plus one without, by
// the column count. RowHeight "match" copies the column width, "*k" and "/k"
// scale it, and a plain number is used as is; derived row heights are
// rounded to whole pixels.
func ResolveMetrics(cfg Config, containerWidth float64) (Metrics, error) {
	var m Metrics

	width, err := dimension("width", cfg.Width, containerWidth)
	if err != nil {
		return m, err
	}
	m.Width = width

	if cfg.ColWidth == Auto || cfg.ColWidth == "" {
		adj := float64(cfg.MarginX())
		if cfg.OuterMargin {
			adj = -adj
		}
		m.ColWidth = (m.Width + adj) / float64(cfg.Columns)
	} else {
		m.ColWidth, err = parsePixels("col_width", cfg.ColWidth)
		if err != nil {
			return m, err
		}
	}

	m.RowHeight, err = rowHeight(cfg.RowHeight, m.ColWidth)
	if err != nil {
		return m, err
	}

	m.Mobile = cfg.MobileModeEnabled && m.Width <= float64(cfg.MobileBreakPoint)
	return m, nil
}

func dimension(name, value string, auto float64) (float64, error) {
	if value == Auto || value == "" {
		return auto, nil
	}
	return parsePixels(name, value)
}

func rowHeight(value string, colWidth float64) (float64, error) {
	value = strings.ReplaceAll(value, " ", "")
	switch {
	case value == Match || value == "":
		return roundHalfUp(colWidth), nil
	case strings.HasPrefix(value, "*"):
		k, err := parsePixels("row_height", value[1:])
		if err != nil {
			return 0, err
		}
		return roundHalfUp(colWidth * k), nil
	case strings.HasPrefix(value, "/"):
		k, err := parsePixels("row_height", value[1:])
		if err != nil {
			return 0, err
		}
		return roundHalfUp(colWidth / k), nil
	}
	return parsePixels("row_height", value)
}

func parsePixels(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s %q is not a number", name, value)
	}
	return v, nil
}

func roundHalfUp(v float64) float64 { return math.Floor(v + 0.5) }

// Metrics returns the pixel dimensions last pushed with SetMetrics.
func (e *Engine) Metrics() Metrics { return e.metrics }

// SetMetrics replaces the pixel dimensions used by the coordinate mapping.
// Adapters call it whenever the container is resized, then read the new
// height.
func (e *Engine) SetMetrics(m Metrics) {
	e.metrics = m
	e.RecomputeHeight(e.movingOverhang())
}

// ResizeContainer re-resolves metrics for a new container width and reports
// whether they changed. Zero and unchanged widths are ignored, as is any
// width change while an item is being dragged.
func (e *Engine) ResizeContainer(width float64) (bool, error) {
	if width <= 0 || width == e.metrics.Width || e.moving != nil {
		return false, nil
	}
	m, err := ResolveMetrics(e.cfg, width)
	if err != nil {
		return false, err
	}
	e.SetMetrics(m)
	e.logger.Debug("container resized", "width", m.Width, "col_width", m.ColWidth, "row_height", m.RowHeight, "mobile", m.Mobile)
	return true, nil
}
