package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testItems() []Item {
	return []Item{
		{Name: "core.bare", Value: "false"},
		{Name: "core.filemode", Value: "true"},
		{Name: "remote.origin.url", Value: "git@example.com:a/b.git"},
	}
}

func keyMsg(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m browseModel, msgs ...tea.Msg) browseModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(browseModel)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
	}
	return m
}

func TestBrowseFilter(t *testing.T) {
	t.Parallel()

	m := newBrowseModel(testItems())
	m = update(t, m, keyMsg("url"))

	if len(m.filtered) != 1 {
		t.Fatalf("filtered = %d items, want 1", len(m.filtered))
	}
	if m.filtered[0].Name != "remote.origin.url" {
		t.Errorf("filtered to %q, want remote.origin.url", m.filtered[0].Name)
	}
}

func TestBrowseFilterNoMatch(t *testing.T) {
	t.Parallel()

	m := newBrowseModel(testItems())
	m = update(t, m, keyMsg("zzzz"))
	if len(m.filtered) != 0 {
		t.Fatalf("filtered = %d items, want 0", len(m.filtered))
	}

	// Selecting with nothing filtered quits without a selection.
	m = update(t, m, keyMsg("enter"))
	if m.selected != nil {
		t.Error("no selection should be possible with an empty list")
	}
}

func TestBrowseSelection(t *testing.T) {
	t.Parallel()

	m := newBrowseModel(testItems())
	m = update(t, m, keyMsg("down"), keyMsg("enter"))

	if m.selected == nil {
		t.Fatal("expected a selection")
	}
	if m.selected.Name != "core.filemode" {
		t.Errorf("selected %q, want core.filemode", m.selected.Name)
	}
}

func TestBrowseCancel(t *testing.T) {
	t.Parallel()

	m := newBrowseModel(testItems())
	m = update(t, m, keyMsg("esc"))
	if !m.cancelled {
		t.Error("esc should cancel")
	}
}

func TestBrowseCursorClamping(t *testing.T) {
	t.Parallel()

	m := newBrowseModel(testItems())
	// Move the cursor to the end, then filter down to one item: the
	// cursor must clamp back into range.
	m = update(t, m, keyMsg("down"), keyMsg("down"), keyMsg("bare"))
	if m.cursor >= len(m.filtered) {
		t.Errorf("cursor %d out of range for %d filtered items", m.cursor, len(m.filtered))
	}
}
