package dialog

import (
	"github.com/billie-coop/picoconf/internal/tui/components/core"
	"github.com/billie-coop/picoconf/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// SourceURL is where the project lives
const SourceURL = "https://github.com/Sleepy-Lux/PicoConfigurator"

// HelpDialog lists the key bindings and where things are stored
type HelpDialog struct {
	*BaseDialog

	keys      core.KeyMap
	activeTab int
	tabs      []string

	settingsPath string
	configDir    string
}

// NewHelpDialog creates a new help dialog
func NewHelpDialog(keys core.KeyMap) *HelpDialog {
	return &HelpDialog{
		BaseDialog: NewBaseDialog("Help"),
		keys:       keys,
		tabs:       []string{"Keys", "About"},
	}
}

// SetPaths sets the locations shown on the About tab
func (d *HelpDialog) SetPaths(settingsPath, configDir string) {
	d.settingsPath = settingsPath
	d.configDir = configDir
}

// Update handles messages
func (d *HelpDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.isOpen {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "?":
			return d.Close()
		case "tab", "right", "l":
			d.activeTab = (d.activeTab + 1) % len(d.tabs)
		case "shift+tab", "left", "h":
			d.activeTab = (d.activeTab - 1 + len(d.tabs)) % len(d.tabs)
		}
	}

	return nil
}

// View renders the dialog
func (d *HelpDialog) View() string {
	if !d.isOpen {
		return ""
	}

	theme := styles.CurrentTheme()
	tabStyle := lipgloss.NewStyle().Padding(0, 2).Foreground(theme.FgSubtle)
	activeTabStyle := lipgloss.NewStyle().Padding(0, 2).Foreground(theme.Accent).Bold(true).Underline(true)

	var tabs []string
	for i, tab := range d.tabs {
		style := tabStyle
		if i == d.activeTab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(tab))
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	content := d.renderKeys()
	if d.activeTab == 1 {
		content = d.renderAbout()
	}

	return d.RenderDialog(lipgloss.JoinVertical(
		lipgloss.Left,
		tabBar,
		lipgloss.NewStyle().MarginTop(1).Render(content),
	))
}

func (d *HelpDialog) renderKeys() string {
	theme := styles.CurrentTheme()
	keyStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(14)
	descStyle := lipgloss.NewStyle().Foreground(theme.FgMuted)

	var lines []string
	for i, group := range d.keys.FullHelp() {
		if i > 0 {
			lines = append(lines, "")
		}
		for _, b := range group {
			h := b.Help()
			lines = append(lines, keyStyle.Render(h.Key)+descStyle.Render(h.Desc))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (d *HelpDialog) renderAbout() string {
	s := styles.CurrentTheme().S()
	row := func(label, value string) string {
		return s.Bold.Width(10).Render(label) + s.Muted.Render(value)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		row("Settings", d.settingsPath),
		row("Config", d.configDir),
		row("Source", SourceURL),
		"",
		s.Subtle.Render("Highlighted categories end in $ in the settings file."),
		s.Subtle.Render("Edits stay in memory until ctrl+s."),
	)
}
