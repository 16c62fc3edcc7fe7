package core

import tea "github.com/charmbracelet/bubbletea/v2"

// FocusableBase tracks keyboard focus for panes
type FocusableBase struct {
	focused bool
}

func (f *FocusableBase) IsFocused() bool {
	return f.focused
}

func (f *FocusableBase) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *FocusableBase) Blur() tea.Cmd {
	f.focused = false
	return nil
}

// SizeableBase records the outer size of a pane
type SizeableBase struct {
	Width  int
	Height int
}

func (s *SizeableBase) SetSize(width, height int) tea.Cmd {
	s.Width = max(width, 0)
	s.Height = max(height, 0)
	return nil
}

// Inner is the size left inside a one-cell border, never negative
func (s *SizeableBase) Inner() (width, height int) {
	return max(s.Width-2, 0), max(s.Height-2, 0)
}
