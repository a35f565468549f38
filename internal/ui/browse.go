package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

var (
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

// Item is one browsable config entry.
type Item struct {
	Name  string // dotted key, e.g. "remote.origin.url"
	Value string // resolved value
}

// Result contains the outcome of a browse session.
type Result struct {
	Item      Item
	Selected  bool
	Cancelled bool
}

// itemSource implements fuzzy.Source over items, matching on the dotted
// key name.
type itemSource []Item

func (s itemSource) String(i int) string { return s[i].Name }
func (s itemSource) Len() int            { return len(s) }

// browseModel is the bubbletea model for entry browsing.
type browseModel struct {
	items     []Item
	filtered  []Item
	textInput textinput.Model
	cursor    int
	selected  *Item
	cancelled bool
	maxHeight int
}

func newBrowseModel(items []Item) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = cursorStyle

	return browseModel{
		items:     items,
		filtered:  items,
		textInput: ti,
		maxHeight: 10,
	}
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				item := m.filtered[m.cursor]
				m.selected = &item
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	m.filtered = m.filterItems(m.textInput.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	return m, cmd
}

// filterItems ranks items against the query, best match first.
func (m browseModel) filterItems(query string) []Item {
	if query == "" {
		return m.items
	}
	matches := fuzzy.FindFrom(query, itemSource(m.items))
	filtered := make([]Item, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, m.items[match.Index])
	}
	return filtered
}

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString(m.textInput.View() + "\n\n")

	start := 0
	if m.cursor >= m.maxHeight {
		start = m.cursor - m.maxHeight + 1
	}
	end := min(start+m.maxHeight, len(m.filtered))

	if start > 0 {
		b.WriteString(dimStyle.Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		item := m.filtered[i]
		line := fmt.Sprintf("%s = %s", item.Name, item.Value)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + selectedStyle.Render(line) + "\n")
		} else {
			b.WriteString("  " + unselectedStyle.Render(line) + "\n")
		}
	}
	if end < len(m.filtered) {
		b.WriteString(dimStyle.Render("  ↓ more below") + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no matching entries") + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("enter: select • esc: cancel") + "\n")
	return b.String()
}

// Browse runs the interactive entry browser and returns the selection.
func Browse(items []Item) (Result, error) {
	p := tea.NewProgram(newBrowseModel(items))
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run browser: %w", err)
	}
	m, ok := final.(browseModel)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model type %T", final)
	}
	if m.cancelled || m.selected == nil {
		return Result{Cancelled: true}, nil
	}
	return Result{Item: *m.selected, Selected: true}, nil
}
