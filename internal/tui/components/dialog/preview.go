package dialog

import (
	"github.com/billie-coop/picoconf/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/tidwall/pretty"
)

// PreviewDialog shows the settings file as it is on disk
type PreviewDialog struct {
	*BaseDialog

	viewport viewport.Model
	content  string
}

// NewPreviewDialog creates an empty preview
func NewPreviewDialog() *PreviewDialog {
	return &PreviewDialog{
		BaseDialog: NewBaseDialog("Settings file on disk"),
		viewport:   viewport.New(),
	}
}

// SetContent loads raw file bytes. Valid JSON is re-indented and
// highlighted; anything else is shown verbatim so a broken file can still
// be inspected.
func (d *PreviewDialog) SetContent(raw []byte, err error) {
	switch {
	case err != nil:
		d.content = styles.CurrentTheme().S().Error.Render(err.Error())
	case len(raw) == 0:
		d.content = styles.CurrentTheme().S().Muted.Render("(empty file)")
	default:
		formatted := pretty.PrettyOptions(raw, &pretty.Options{Width: 80, Indent: "  "})
		d.content = styles.HighlightJSON(string(formatted))
	}
	d.layout()
}

// SetSize implements the Sizeable interface
func (d *PreviewDialog) SetSize(width, height int) tea.Cmd {
	d.BaseDialog.SetSize(width, height)
	d.layout()
	return nil
}

func (d *PreviewDialog) layout() {
	// border, padding, title and help line
	w := max(min(d.Width-8, 100), 10)
	h := max(d.Height-10, 3)
	d.viewport = viewport.New(
		viewport.WithWidth(w),
		viewport.WithHeight(h),
	)
	d.viewport.SetContent(d.content)
	d.viewport.GotoTop()
}

// Update handles messages
func (d *PreviewDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.isOpen {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "ctrl+o":
			return d.Close()
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return cmd
}

// View renders the dialog
func (d *PreviewDialog) View() string {
	if !d.isOpen {
		return ""
	}

	help := styles.CurrentTheme().S().Subtle.Italic(true).Render("↑/↓ to scroll • Esc to close")
	return d.RenderDialog(lipgloss.JoinVertical(lipgloss.Left, d.viewport.View(), "", help))
}
