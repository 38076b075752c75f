package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/gridster/pkg/layout"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// itemColors cycles through distinguishable colors for grid items.
var itemColors = []lipgloss.Color{"36", "75", "220", "170", "35", "209", "141", "43"}

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Stats Display
// =============================================================================

// formatStats renders layout statistics on a single line.
func formatStats(s layout.Snapshot) string {
	parts := []string{
		fmt.Sprintf("%d items", len(s.Items)),
		fmt.Sprintf("%d columns", s.Columns),
		fmt.Sprintf("height %d", s.Height),
	}
	if s.PixelHeight > 0 {
		parts = append(parts, fmt.Sprintf("%.0fpx", s.PixelHeight))
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	return line
}

// =============================================================================
// Grid Display
// =============================================================================

// cellWidth is the number of characters of an item ID shown per cell.
const cellWidth = 6

// gridCells maps every covered cell to the index of its item in s.Items.
// Cells outside every item hold -1.
func gridCells(s layout.Snapshot) [][]int {
	rows := max(s.Height, 1)
	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, s.Columns)
		for c := range cells[r] {
			cells[r][c] = -1
		}
	}
	for i, p := range s.Items {
		for r := p.Row; r < p.Row+p.SizeY && r < rows; r++ {
			for c := p.Col; c < p.Col+p.SizeX && c < s.Columns; c++ {
				cells[r][c] = i
			}
		}
	}
	return cells
}

// renderGrid draws the snapshot as a table with one cell per grid cell.
// The item whose ID equals selected is drawn in reverse video.
func renderGrid(s layout.Snapshot, selected string) string {
	cells := gridCells(s)

	headers := make([]string, s.Columns)
	for c := range headers {
		headers[c] = strconv.Itoa(c)
	}
	rows := make([][]string, len(cells))
	for r, line := range cells {
		rows[r] = make([]string, len(line))
		for c, idx := range line {
			if idx >= 0 {
				rows[r][c] = truncate(s.Items[idx].ID, cellWidth)
			}
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	base := lipgloss.NewStyle().Width(cellWidth)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Width(cellWidth)
			}
			if row >= len(cells) || col >= len(cells[row]) {
				return base
			}
			idx := cells[row][col]
			if idx < 0 {
				return base
			}
			style := base.Foreground(itemColors[idx%len(itemColors)])
			if s.Items[idx].ID == selected {
				style = style.Reverse(true).Bold(true)
			}
			return style
		})

	return t.Render()
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}

// describeItems lists items as "id@row,col[XxY]" in snapshot order.
func describeItems(s layout.Snapshot) string {
	var b strings.Builder
	for _, p := range s.Items {
		fmt.Fprintf(&b, "%s@%d,%d[%dx%d]\n", p.ID, p.Row, p.Col, p.SizeX, p.SizeY)
	}
	return b.String()
}
