package tui

import (
	"github.com/billie-coop/picoconf/internal/session"
	"github.com/billie-coop/picoconf/internal/tui/components/dialog"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// handleSelect shows another category
func (m *Model) handleSelect(key string) tea.Cmd {
	if err := m.sess.Select(key); err != nil {
		m.logger.Warn("select failed", "category", key, "error", err)
		return nil
	}
	m.editor.Home()
	m.syncStateToComponents()
	return nil
}

// handleSave persists the in-memory document
func (m *Model) handleSave() tea.Cmd {
	if err := m.sess.Save(); err != nil {
		m.logger.Error("save failed", "error", err)
	}
	m.syncStateToComponents()
	return m.statusBar.SetMessage(m.sess.Status())
}

// confirmIf opens a confirmation dialog when allowed, or explains why not
func (m *Model) confirmIf(allowed bool, t dialog.DialogType, nothing string) tea.Cmd {
	if !allowed {
		m.sess.SetStatus(nothing, session.Warning)
		return m.statusBar.SetMessage(m.sess.Status())
	}
	return m.dialogManager.OpenDialog(t)
}

// handleConfirmed runs the action a dialog was opened for
func (m *Model) handleConfirmed(t dialog.DialogType) tea.Cmd {
	var err error
	switch t {
	case dialog.ResetDialogType:
		err = m.sess.Reset()
	case dialog.RevertDialogType:
		err = m.sess.Revert()
	default:
		return nil
	}
	if err != nil {
		m.logger.Error("action failed", "dialog", string(t), "error", err)
	}
	m.syncStateToComponents()
	return m.statusBar.SetMessage(m.sess.Status())
}

// handlePreview opens the on-disk file in the preview dialog
func (m *Model) handlePreview() tea.Cmd {
	m.dialogManager.SetPreview(m.sess.Raw())
	return m.dialogManager.OpenDialog(dialog.PreviewDialogType)
}
