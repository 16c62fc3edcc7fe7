package dialog

import (
	"github.com/billie-coop/picoconf/internal/tui/components/core"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// DialogType identifies the type of dialog
type DialogType string

const (
	QuitDialogType    DialogType = "quit"
	ResetDialogType   DialogType = "reset"
	RevertDialogType  DialogType = "revert"
	PreviewDialogType DialogType = "preview"
	HelpDialogType    DialogType = "help"
)

// Manager owns the dialogs; at most one is open
type Manager struct {
	dialogs      map[DialogType]Dialog
	activeDialog DialogType
	width        int
	height       int

	preview *PreviewDialog
	help    *HelpDialog
}

// NewManager creates all dialogs
func NewManager(keys core.KeyMap) *Manager {
	m := &Manager{
		dialogs: make(map[DialogType]Dialog),
		preview: NewPreviewDialog(),
		help:    NewHelpDialog(keys),
	}

	m.dialogs[QuitDialogType] = NewQuitDialog()
	m.dialogs[ResetDialogType] = NewResetDialog()
	m.dialogs[RevertDialogType] = NewRevertDialog()
	m.dialogs[PreviewDialogType] = m.preview
	m.dialogs[HelpDialogType] = m.help

	return m
}

// Update handles updates for the active dialog
func (m *Manager) Update(msg tea.Msg) tea.Cmd {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(wsm.Width, wsm.Height)
	}

	if m.activeDialog == "" {
		return nil
	}
	d, ok := m.dialogs[m.activeDialog]
	if !ok {
		return nil
	}

	cmd := d.Update(msg)
	if !d.IsOpen() {
		m.activeDialog = ""
	}
	return cmd
}

// View renders the active dialog
func (m *Manager) View() string {
	if d, ok := m.dialogs[m.activeDialog]; ok {
		return d.View()
	}
	return ""
}

// SetSize sets the size for all dialogs
func (m *Manager) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height

	var cmds []tea.Cmd
	for _, d := range m.dialogs {
		cmds = append(cmds, d.SetSize(width, height))
	}
	return tea.Batch(cmds...)
}

// OpenDialog opens a specific dialog, replacing any open one
func (m *Manager) OpenDialog(dialogType DialogType) tea.Cmd {
	d, ok := m.dialogs[dialogType]
	if !ok {
		return nil
	}
	if prev, ok := m.dialogs[m.activeDialog]; ok && m.activeDialog != dialogType {
		prev.Close()
	}
	m.activeDialog = dialogType
	return d.Open()
}

// CloseActiveDialog closes the currently active dialog
func (m *Manager) CloseActiveDialog() tea.Cmd {
	d, ok := m.dialogs[m.activeDialog]
	m.activeDialog = ""
	if !ok {
		return nil
	}
	return d.Close()
}

// IsDialogOpen returns whether any dialog is open
func (m *Manager) IsDialogOpen() bool {
	return m.activeDialog != ""
}

// GetActiveDialog returns the currently active dialog type
func (m *Manager) GetActiveDialog() DialogType {
	return m.activeDialog
}

// SetPreview loads the file contents shown by the preview dialog
func (m *Manager) SetPreview(raw []byte, err error) {
	m.preview.SetContent(raw, err)
}

// SetPaths sets the locations shown in the help dialog
func (m *Manager) SetPaths(settingsPath, configDir string) {
	m.help.SetPaths(settingsPath, configDir)
}
