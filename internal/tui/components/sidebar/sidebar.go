// Package sidebar lists the top-level categories of the settings file.
package sidebar

import (
	"strings"

	"github.com/billie-coop/picoconf/internal/session"
	"github.com/billie-coop/picoconf/internal/tui/components/core"
	"github.com/billie-coop/picoconf/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// SelectMsg asks the session to show a category
type SelectMsg struct {
	Key string
}

// Model is the category list. Moving the cursor selects.
type Model struct {
	core.FocusableBase
	core.SizeableBase

	keys       core.KeyMap
	categories []session.Category
	cursor     int
}

// New creates an empty sidebar
func New(keys core.KeyMap) *Model {
	return &Model{keys: keys}
}

// SetCategories replaces the list and puts the cursor on selected
func (m *Model) SetCategories(categories []session.Category, selected string) {
	m.categories = categories
	m.cursor = 0
	for i, c := range categories {
		if c.Key == selected {
			m.cursor = i
			break
		}
	}
}

// Selected returns the category under the cursor
func (m *Model) Selected() (session.Category, bool) {
	if m.cursor < 0 || m.cursor >= len(m.categories) {
		return session.Category{}, false
	}
	return m.categories[m.cursor], true
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.IsFocused() || len(m.categories) == 0 {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	prev := m.cursor
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(m.categories)-1)
	}
	if m.cursor == prev {
		return m, nil
	}

	selected := m.categories[m.cursor].Key
	return m, func() tea.Msg { return SelectMsg{Key: selected} }
}

// View draws one line per category; a marked category is highlighted and
// followed by a separator
func (m *Model) View() string {
	theme := styles.CurrentTheme()
	s := theme.S()
	width, _ := m.Inner()
	if width <= 0 {
		return ""
	}

	var lines []string
	for i, c := range m.categories {
		label := styles.Truncate(c.Label, width-2)

		style := s.Category
		if c.Marked {
			style = s.CategoryMarked
		}
		prefix := "  "
		if i == m.cursor {
			style = s.CategorySelected
			if m.IsFocused() {
				prefix = styles.SelectIcon + " "
			}
		}
		lines = append(lines, style.Width(width).Render(prefix+label))

		if c.Marked {
			lines = append(lines, s.Subtle.Render(strings.Repeat(styles.SeparatorLine, width)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
