package editor

import (
	"fmt"
	"strings"

	"github.com/billie-coop/picoconf/internal/jsondoc"
	"github.com/billie-coop/picoconf/internal/store"
	"github.com/billie-coop/picoconf/internal/treeedit"
	"github.com/billie-coop/picoconf/internal/tui/styles"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/rivo/uniseg"
)

const sliderWidth = 20

// View draws the category title and the visible rows
func (m *Model) View() string {
	width, _ := m.Inner()
	if width <= 0 {
		return ""
	}

	theme := styles.CurrentTheme()
	s := theme.S()

	title := styles.ApplyGradient(strings.TrimSuffix(m.sess.Current(), store.CategoryMarker), theme.Primary, theme.Accent)
	if len(m.rows) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", s.Muted.Render("Nothing to edit here"))
	}

	lines := []string{title, ""}
	end := min(m.offset+m.visibleRows(), len(m.rows))
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(m.rows[i], width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderRow(row Row, width int) string {
	s := styles.CurrentTheme().S()

	style := s.Row
	if row.Stripe {
		style = s.RowStripe
	}
	focused := row.Index == m.cursor && m.IsFocused()
	if focused {
		style = s.RowFocus
	}
	inner := width - style.GetHorizontalPadding()

	widget := m.renderWidget(row, focused)
	widgetWidth := lipgloss.Width(widget)

	path, name := row.Label()
	room := max(inner-widgetWidth-1, 0)
	path = styles.Truncate(path, max(room-uniseg.StringWidth(name)-1, 0))
	label := s.PathLabel.Render(path) + " " + s.KeyLabel.Render(styles.Truncate(name, room))

	gap := max(inner-lipgloss.Width(label)-widgetWidth, 1)
	return style.Width(width).Render(label + strings.Repeat(" ", gap) + widget)
}

// renderWidget picks the control for the leaf kind
func (m *Model) renderWidget(row Row, focused bool) string {
	s := styles.CurrentTheme().S()

	if focused && m.mode != browsing {
		return s.Badge.Render(m.input.View())
	}

	switch row.Value.Kind() {
	case jsondoc.KindString:
		text, _ := row.Value.AsString()
		return s.Badge.Render(styles.Truncate(text, m.widgetWidth()))
	case jsondoc.KindBool:
		on, _ := row.Value.AsBool()
		box := styles.UncheckedBox
		if on {
			box = styles.CheckedBox
		}
		return box + " Enable"
	case jsondoc.KindNumber:
		n, _ := row.Value.AsNumber()
		return renderSlider(n)
	default:
		return s.Muted.Render("Unsupported type")
	}
}

// renderSlider draws the bounded slider. A stored value the slider cannot
// show is printed next to it.
func renderSlider(n jsondoc.Number) string {
	theme := styles.CurrentTheme()
	shown := treeedit.DisplayNumber(n)

	span := treeedit.MaxNumber - treeedit.MinNumber
	pos := int((shown - treeedit.MinNumber) * int64(sliderWidth-1) / span)

	bar := lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat(styles.SliderFilled, pos)) +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(styles.SliderHandle) +
		lipgloss.NewStyle().Foreground(theme.FgSubtle).Render(strings.Repeat(styles.SliderEmpty, sliderWidth-1-pos))

	out := fmt.Sprintf("%s %3d", bar, shown)
	if stored := n.Literal(); stored != fmt.Sprint(shown) {
		out += theme.S().Warning.Render(" (" + stored + ")")
	}
	return out
}
