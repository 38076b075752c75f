package cli

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/gridster/pkg/errors"
	"github.com/matzehuels/gridster/pkg/grid"
	"github.com/matzehuels/gridster/pkg/layout"
)

func intp(v int) *int { return &v }

func newPlayModel(t *testing.T, savePath string) PlayModel {
	t.Helper()
	l, err := layout.Build(layout.Document{
		Grid: grid.Overrides{Columns: grid.Int(4)},
		Items: []layout.ItemSpec{
			{ID: "a", SizeX: 1, SizeY: 1},
			{ID: "b", SizeX: 1, SizeY: 1},
		},
	})
	if err != nil {
		t.Fatalf("layout.Build() error = %v", err)
	}
	m, err := NewPlayModel(l, savePath)
	if err != nil {
		t.Fatalf("NewPlayModel() error = %v", err)
	}
	return m
}

func TestNewPlayModelRejectsBadColumnWidth(t *testing.T) {
	l, err := layout.Build(layout.Document{
		Grid:  grid.Overrides{ColWidth: grid.String("wide")},
		Items: []layout.ItemSpec{{ID: "a"}},
	})
	if err != nil {
		t.Fatalf("layout.Build() error = %v", err)
	}
	if _, err := NewPlayModel(l, ""); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("NewPlayModel() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func press(m PlayModel, keys ...tea.KeyMsg) (PlayModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(PlayModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestPlayMetrics(t *testing.T) {
	m := newPlayModel(t, "")
	got := m.Layout.Engine.Metrics()
	if got.ColWidth != playCellPx || got.RowHeight != playCellPx {
		t.Errorf("metrics = %+v, want %d px cells", got, playCellPx)
	}
}

func TestPlayDragPushes(t *testing.T) {
	m := newPlayModel(t, "")
	a, b := m.Layout.Item("a"), m.Layout.Item("b")

	m, _ = press(m, keyEnter)
	if !m.Dragging() {
		t.Fatal("enter did not pick up the selected item")
	}

	m, _ = press(m, keyRight)
	if a.Row != 0 || a.Col != 1 {
		t.Errorf("a at (%d, %d), want (0, 1)", a.Row, a.Col)
	}
	if b.Row != 1 || b.Col != 1 {
		t.Errorf("b at (%d, %d), want (1, 1)", b.Row, b.Col)
	}

	m, _ = press(m, keyEnter)
	if m.Dragging() || m.Layout.Engine.Moving() != nil {
		t.Error("enter did not drop the item")
	}
	if !strings.Contains(m.Status, "dropped a at 0,1") {
		t.Errorf("Status = %q", m.Status)
	}
}

func TestPlayDragFloatsBack(t *testing.T) {
	m := newPlayModel(t, "")
	a := m.Layout.Item("a")

	// Nothing holds a down, so the float pass pulls it back to row 0.
	m, _ = press(m, keyEnter, keyDown, keyEnter)
	if a.Row != 0 || a.Col != 0 {
		t.Errorf("a at (%d, %d), want (0, 0)", a.Row, a.Col)
	}
}

func TestPlayEditing(t *testing.T) {
	m := newPlayModel(t, "")

	m, _ = press(m, keyTab)
	if m.Selected().ID != "b" {
		t.Fatalf("Selected() = %s after tab, want b", m.Selected().ID)
	}

	m, _ = press(m, runes("+"))
	if b := m.Layout.Item("b"); b.SizeX != 2 {
		t.Errorf("b width = %d after +, want 2", b.SizeX)
	}

	m, _ = press(m, runes("a"))
	if n := len(m.Layout.Items()); n != 3 {
		t.Fatalf("items = %d after add, want 3", n)
	}
	added := m.Selected()
	if added.ID == "a" || added.ID == "b" {
		t.Errorf("cursor not on the added item: %s", added.ID)
	}

	m, _ = press(m, runes("x"))
	if m.Layout.Item(added.ID) != nil || len(m.Layout.Items()) != 2 {
		t.Error("x did not remove the selected item")
	}
}

func TestPlayResizeIgnoredWhileDragging(t *testing.T) {
	m := newPlayModel(t, "")
	m, _ = press(m, keyEnter, runes("+"))
	if a := m.Layout.Item("a"); a.SizeX != 1 {
		t.Errorf("a width = %d, want resize ignored during drag", a.SizeX)
	}
}

func TestPlaySave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")

	m := newPlayModel(t, "")
	m, _ = press(m, runes("w"))
	if m.Status != "no file to save to" {
		t.Errorf("Status = %q without a save path", m.Status)
	}

	m = newPlayModel(t, path)
	m, _ = press(m, runes("w"))
	doc, err := layout.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(doc.Items) != 2 || !doc.Items[0].Pinned() {
		t.Errorf("saved document = %+v", doc)
	}
}

func TestPlayQuit(t *testing.T) {
	m := newPlayModel(t, "")
	m, cmd := press(m, keyEnter, runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if m.Dragging() {
		t.Error("quitting left the drag active")
	}
}

func TestPlayView(t *testing.T) {
	m := newPlayModel(t, "")
	m, _ = press(m, keyEnter)
	out := m.View()
	for _, want := range []string{"Gridster", "dragging", "2 items"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
