package status

import (
	"fmt"
	"time"

	"github.com/billie-coop/picoconf/internal/session"
	"github.com/billie-coop/picoconf/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/rivo/uniseg"
)

// Component is the bottom bar: settings path on the left, the last session
// status on the right
type Component struct {
	message     *session.Status
	width       int
	leftContent string

	// Zero keeps messages until the next one
	clearAfter time.Duration
}

// New creates a status bar that clears messages after clearAfter
func New(clearAfter time.Duration) *Component {
	return &Component{
		clearAfter: clearAfter,
	}
}

// clearMessageMsg is sent when a status message should be cleared
type clearMessageMsg struct {
	at time.Time
}

// SetMessage shows st and schedules its removal
func (c *Component) SetMessage(st session.Status) tea.Cmd {
	if st.Text == "" {
		c.message = nil
		return nil
	}
	c.message = &st
	if c.clearAfter <= 0 {
		return nil
	}

	at := st.At
	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{at: at}
	})
}

// Message returns the message on display, if any
func (c *Component) Message() (session.Status, bool) {
	if c.message == nil {
		return session.Status{}, false
	}
	return *c.message, true
}

// SetLeftContent sets the left side content
func (c *Component) SetLeftContent(content string) {
	c.leftContent = content
}

// SetSize implements the Sizeable interface
func (c *Component) SetSize(width, height int) tea.Cmd {
	c.width = width
	return nil
}

// Update clears the message its timer was set for. A newer message keeps
// its own timer.
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	if msg, ok := msg.(clearMessageMsg); ok {
		if c.message != nil && msg.at.Equal(c.message.At) {
			c.message = nil
		}
	}
	return c, nil
}

// View renders the bar across the full width
func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}

	theme := styles.CurrentTheme()
	statusStyle := lipgloss.NewStyle().
		Width(c.width).
		Height(1).
		Background(theme.BgSubtle).
		Foreground(theme.FgBase).
		Padding(0, 1)

	availableWidth := c.width - 2
	right := c.formatMessage()
	rightWidth := uniseg.StringWidth(right)
	if rightWidth > availableWidth {
		right = styles.Truncate(right, availableWidth)
		rightWidth = uniseg.StringWidth(right)
	}

	left := styles.Truncate(c.leftContent, max(availableWidth-rightWidth-1, 0))
	content := left
	if right != "" {
		spaces := max(availableWidth-uniseg.StringWidth(left)-rightWidth, 1)
		content += fmt.Sprintf("%*s", spaces, "") + c.colorMessage(right)
	}

	return statusStyle.Render(content)
}

// formatMessage prefixes the message with its level icon
func (c *Component) formatMessage() string {
	if c.message == nil {
		return ""
	}

	switch c.message.Level {
	case session.Success:
		return styles.CheckIcon + " " + c.message.String()
	case session.Warning:
		return styles.WarningIcon + " " + c.message.String()
	case session.Error:
		return styles.ErrorIcon + " " + c.message.String()
	default:
		return c.message.String()
	}
}

func (c *Component) colorMessage(text string) string {
	s := styles.CurrentTheme().S()
	style := s.Text
	switch c.message.Level {
	case session.Success:
		style = s.Success
	case session.Warning:
		style = s.Warning
	case session.Error:
		style = s.Error
	}
	return style.Background(styles.CurrentTheme().BgSubtle).Render(text)
}
