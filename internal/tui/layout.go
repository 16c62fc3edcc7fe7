package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// resizeComponents resizes all components based on current window size
func (m *Model) resizeComponents() tea.Cmd {
	var cmds []tea.Cmd

	sidebarWidth := m.calculateSidebarWidth()
	statusBarHeight := 1
	contentWidth := m.width - sidebarWidth
	contentHeight := m.height - statusBarHeight

	// Panes get their outer size and subtract their own border
	cmds = append(cmds, m.sidebar.SetSize(sidebarWidth, contentHeight))
	cmds = append(cmds, m.editor.SetSize(contentWidth, contentHeight))
	cmds = append(cmds, m.home.SetSize(contentWidth, contentHeight))
	cmds = append(cmds, m.statusBar.SetSize(m.width, statusBarHeight))
	cmds = append(cmds, m.dialogManager.SetSize(m.width, m.height))

	return tea.Batch(cmds...)
}

// calculateSidebarWidth calculates the appropriate sidebar width
func (m *Model) calculateSidebarWidth() int {
	if m.width < 80 {
		return 18
	}
	if m.width < 120 {
		return 22
	}
	return 28
}
