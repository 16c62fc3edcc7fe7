package dialog

import (
	"github.com/billie-coop/picoconf/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// ConfirmDialog asks a yes/no question before a destructive action
type ConfirmDialog struct {
	*BaseDialog

	question   string
	help       string
	selectedNo bool // "No" is the default
	confirm    tea.Cmd

	// ctrl+c inside the dialog confirms, so ctrl+c twice quits
	doubleTap string
}

// NewConfirmDialog creates a dialog that runs confirm on "Yes"
func NewConfirmDialog(title, question string, confirm tea.Cmd) *ConfirmDialog {
	return &ConfirmDialog{
		BaseDialog: NewBaseDialog(title),
		question:   question,
		help:       "y/n • ←/→ to choose • Esc to cancel",
		selectedNo: true,
		confirm:    confirm,
	}
}

// NewQuitDialog confirms quitting. Unsaved edits are lost.
func NewQuitDialog() *ConfirmDialog {
	d := NewConfirmDialog("Quit Pico Configurator?", "Unsaved changes will be lost. Quit anyway?", tea.Quit)
	d.help = "Ctrl+C again to quit • Esc to cancel"
	d.doubleTap = "ctrl+c"
	return d
}

// NewResetDialog confirms writing the default settings
func NewResetDialog() *ConfirmDialog {
	return NewConfirmDialog("Reset All Settings?",
		"The settings file will be replaced with the defaults.",
		confirmed(ResetDialogType))
}

// NewRevertDialog confirms restoring the settings from the last load
func NewRevertDialog() *ConfirmDialog {
	return NewConfirmDialog("Revert Changes?",
		"The settings file will be restored to how it was when it was loaded.",
		confirmed(RevertDialogType))
}

func confirmed(t DialogType) tea.Cmd {
	return func() tea.Msg { return ConfirmedMsg{Dialog: t} }
}

// Open resets the selection to "No"
func (d *ConfirmDialog) Open() tea.Cmd {
	d.selectedNo = true
	return d.BaseDialog.Open()
}

func (d *ConfirmDialog) accept() tea.Cmd {
	return tea.Batch(d.Close(), d.confirm)
}

// Update handles messages
func (d *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.isOpen {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch k := keyMsg.String(); k {
	case "esc", "n", "N":
		return d.Close()
	case "y", "Y":
		return d.accept()
	case "left", "right", "tab", "h", "l":
		d.selectedNo = !d.selectedNo
	case "enter", "space":
		if d.selectedNo {
			return d.Close()
		}
		return d.accept()
	default:
		if d.doubleTap != "" && k == d.doubleTap {
			return d.accept()
		}
	}

	return nil
}

// View renders the dialog
func (d *ConfirmDialog) View() string {
	if !d.isOpen {
		return ""
	}

	s := styles.CurrentTheme().S()
	question := s.Bold.Render(d.question)

	yesStyle, noStyle := s.Button, s.Button
	if d.selectedNo {
		noStyle = s.ButtonFocused
	} else {
		yesStyle = s.ButtonFocused
	}

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Center,
		yesStyle.Render("Yes"),
		"  ",
		noStyle.Render("No"),
	)
	buttonsContainer := lipgloss.NewStyle().
		Width(lipgloss.Width(question)).
		Align(lipgloss.Right).
		Render(buttons)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		question,
		"",
		buttonsContainer,
		"",
		s.Subtle.Italic(true).Render(d.help),
	)

	return d.RenderDialog(content)
}
