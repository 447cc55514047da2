package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmaurer/topoborders/pkg/adjacency"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testModel() browseModel {
	return newBrowseModel(adjacency.Neighbors{
		"DZA": {"TUN"},
		"TUN": {"DZA"},
		"CPV": {},
	})
}

func TestBrowseModelNavigation(t *testing.T) {
	m := testModel()

	if got := m.codes; len(got) != 3 || got[0] != "CPV" {
		t.Fatalf("codes = %v, want sorted [CPV DZA TUN]", got)
	}

	next, _ := m.Update(keyMsg("down"))
	m = next.(browseModel)
	if m.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(browseModel)
	if m.cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(keyMsg("up"))
	m = next.(browseModel)
	if m.cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", m.cursor)
	}

	next, _ = m.Update(keyMsg("G"))
	m = next.(browseModel)
	if m.cursor != 2 {
		t.Errorf("cursor after G = %d, want 2", m.cursor)
	}
}

func TestBrowseModelQuit(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("cmd() = %v, want QuitMsg", msg)
	}
}

func TestBrowseModelView(t *testing.T) {
	m := testModel()
	view := m.View()

	for _, code := range []string{"CPV", "DZA", "TUN"} {
		if !strings.Contains(view, code) {
			t.Errorf("view missing %s", code)
		}
	}
	// CPV is selected initially: the isolated placeholder shows.
	if !strings.Contains(view, "no shared borders") {
		t.Error("view missing isolated-region placeholder")
	}
}

func TestBrowseModelEmpty(t *testing.T) {
	m := newBrowseModel(adjacency.Neighbors{})
	if view := m.View(); !strings.Contains(view, "no recognized regions") {
		t.Errorf("empty view = %q", view)
	}
}
