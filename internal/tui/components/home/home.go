// Package home draws the pages that are not editors: the welcome page and
// the placeholder shown when the settings file could not be loaded.
package home

import (
	"strings"

	"github.com/billie-coop/picoconf/internal/tui/components/core"
	"github.com/billie-coop/picoconf/internal/tui/styles"
	"github.com/charmbracelet/lipgloss/v2"
)

// LoadFailedText is shown instead of the editor when loading failed
const LoadFailedText = "Could not load Pico Connect settings file."

// Model renders the welcome text as markdown
type Model struct {
	core.SizeableBase

	welcome []string

	// cache of the last render
	rendered string
	width    int
	theme    string
}

func New() *Model {
	return &Model{}
}

// SetWelcome replaces the welcome entries
func (m *Model) SetWelcome(lines []string) {
	if strings.Join(lines, "\x00") == strings.Join(m.welcome, "\x00") {
		return
	}
	m.welcome = lines
	m.rendered = ""
}

// Markdown is the source the page is rendered from
func (m *Model) Markdown() string {
	var b strings.Builder
	b.WriteString("# Pico Configurator\n\n")
	for _, text := range m.welcome {
		// keep the author's line breaks
		b.WriteString(strings.ReplaceAll(strings.TrimSpace(text), "\n", "  \n"))
		b.WriteString("\n\n")
	}
	b.WriteString("Pick a category on the left with `↑`/`↓`, press `tab` to edit it, ")
	b.WriteString("and `ctrl+s` to apply. Press `?` for all keys.\n")
	return b.String()
}

func (m *Model) View() string {
	width, height := m.Inner()
	if width <= 0 {
		return ""
	}

	theme := styles.CurrentTheme().Name
	if m.rendered == "" || m.width != width || m.theme != theme {
		m.rendered = m.render(width)
		m.width = width
		m.theme = theme
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.rendered)
}

func (m *Model) render(width int) string {
	src := m.Markdown()
	r, err := styles.GetMarkdownRenderer(min(width-2, 80))
	if err != nil {
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return strings.Trim(out, "\n")
}

// LoadFailedView centers the load failure placeholder in width x height
func LoadFailedView(width, height int) string {
	s := styles.CurrentTheme().S()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.Error.Bold(true).Render(LoadFailedText))
}
