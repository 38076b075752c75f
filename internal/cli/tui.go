package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridster/pkg/grid"
	"github.com/matzehuels/gridster/pkg/interact"
	"github.com/matzehuels/gridster/pkg/layout"
)

// playCellPx is the pixel size of one cell in the play view. Key presses
// move a dragged item by exactly one cell.
const playCellPx = 100

var (
	playHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	playStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	playDragStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
)

// =============================================================================
// PlayModel - Interactive grid editing
// =============================================================================

// PlayModel is the bubbletea model of the play command. It drives the
// engine the same way a pointer would: picking an item up starts a drag,
// arrow keys move the element one cell at a time, and dropping ends the
// drag.
type PlayModel struct {
	Layout *layout.Layout
	Cursor int
	Status string

	drag     *interact.Drag
	savePath string
}

// NewPlayModel creates a play model for l. When savePath is set the "w" key
// writes the layout there. It fails when the layout's cell sizes cannot be
// resolved for the play view.
func NewPlayModel(l *layout.Layout, savePath string) (PlayModel, error) {
	cfg := l.Engine.Config()
	if _, err := l.Engine.ResizeContainer(float64(cfg.Columns*playCellPx + cfg.MarginX())); err != nil {
		return PlayModel{}, err
	}
	l.Engine.Settle()
	return PlayModel{Layout: l, savePath: savePath}, nil
}

// Selected returns the item under the cursor, or nil for an empty layout.
func (m PlayModel) Selected() *grid.Item {
	items := m.Layout.Items()
	if len(items) == 0 {
		return nil
	}
	return items[m.Cursor%len(items)]
}

// Dragging reports whether an item is picked up.
func (m PlayModel) Dragging() bool { return m.drag != nil && m.drag.Active() }

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	e := m.Layout.Engine
	switch key.String() {
	case "q", "ctrl+c", "esc":
		if m.Dragging() {
			m.drop()
		}
		return m, tea.Quit
	case "enter", " ":
		if m.Dragging() {
			m.drop()
		} else {
			m.pickUp()
		}
	case "left", "h":
		m.move(-playCellPx, 0)
	case "right", "l":
		m.move(playCellPx, 0)
	case "up", "k":
		m.move(0, -playCellPx)
	case "down", "j":
		m.move(0, playCellPx)
	}
	if m.Dragging() {
		return m, nil
	}

	switch key.String() {
	case "tab":
		if n := len(m.Layout.Items()); n > 0 {
			m.Cursor = (m.Cursor + 1) % n
		}
	case "shift+tab":
		if n := len(m.Layout.Items()); n > 0 {
			m.Cursor = (m.Cursor + n - 1) % n
		}
	case "+", "-", "]", "[":
		m.resize(key.String())
	case "a":
		it, err := m.Layout.Add(layout.ItemSpec{SizeX: 1, SizeY: 1})
		if err != nil {
			m.Status = err.Error()
			break
		}
		m.Cursor = len(m.Layout.Items()) - 1
		m.Status = fmt.Sprintf("added %s at %d,%d", it.ID, it.Row, it.Col)
	case "x":
		if it := m.Selected(); it != nil {
			m.Layout.Remove(it.ID)
			m.Cursor = 0
			m.Status = "removed " + it.ID
		}
	case "c":
		e.FloatAll()
		e.Settle()
		m.Status = "compacted"
	case "w":
		m.save()
	}
	return m, nil
}

func (m *PlayModel) pickUp() {
	it := m.Selected()
	if it == nil {
		return
	}
	m.drag = interact.Start(m.Layout.Engine, it)
	m.Status = "dragging " + it.ID
}

func (m *PlayModel) move(dx, dy float64) {
	if !m.Dragging() {
		return
	}
	m.drag.Move(dx, dy)
	m.Layout.Engine.Settle()
}

func (m *PlayModel) drop() {
	it := m.Selected()
	m.drag.End()
	m.Layout.Engine.Settle()
	m.drag = nil
	m.Status = fmt.Sprintf("dropped %s at %d,%d", it.ID, it.Row, it.Col)
}

func (m *PlayModel) resize(key string) {
	it := m.Selected()
	if it == nil {
		return
	}
	sizeX, sizeY := it.SizeX, it.SizeY
	switch key {
	case "+":
		sizeX++
	case "-":
		sizeX--
	case "]":
		sizeY++
	case "[":
		sizeY--
	}
	if sizeX < 1 || sizeY < 1 {
		return
	}
	e := m.Layout.Engine
	if e.Resize(it, sizeX, sizeY) {
		e.Settle()
		m.Status = fmt.Sprintf("resized %s to %dx%d", it.ID, it.SizeX, it.SizeY)
	} else {
		m.Status = fmt.Sprintf("%s stays %dx%d", it.ID, it.SizeX, it.SizeY)
	}
}

func (m *PlayModel) save() {
	if m.savePath == "" {
		m.Status = "no file to save to"
		return
	}
	if err := layout.WriteFile(m.Layout.Document(), m.savePath); err != nil {
		m.Status = err.Error()
		return
	}
	m.Status = "saved " + m.savePath
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Gridster"))
	if m.Dragging() {
		b.WriteString("  " + playDragStyle.Render("dragging"))
	}
	b.WriteString("\n")
	b.WriteString(playHelpStyle.Render("tab select  ⏎ pick up/drop  ←↑↓→ move  +/- width  ]/[ height  a add  x remove  c compact  w save  q quit"))
	b.WriteString("\n\n")

	snap := m.Layout.Snapshot()
	selected := ""
	if it := m.Selected(); it != nil {
		selected = it.ID
	}
	b.WriteString(renderGrid(snap, selected))
	b.WriteString("\n")
	b.WriteString(formatStats(snap))
	b.WriteString("\n")
	if m.Status != "" {
		b.WriteString(playStatusStyle.Render("  " + m.Status))
		b.WriteString("\n")
	}
	return b.String()
}
