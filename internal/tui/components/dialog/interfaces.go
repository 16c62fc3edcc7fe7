package dialog

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Dialog is a modal drawn over the whole screen
type Dialog interface {
	Update(tea.Msg) tea.Cmd
	View() string

	SetSize(width, height int) tea.Cmd
	IsOpen() bool
	Open() tea.Cmd
	Close() tea.Cmd
}

// ConfirmedMsg is sent when the user accepts a confirmation dialog
type ConfirmedMsg struct {
	Dialog DialogType
}
