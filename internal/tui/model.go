package tui

import (
	"io"
	"log/slog"
	"time"

	"github.com/billie-coop/picoconf/internal/session"
	"github.com/billie-coop/picoconf/internal/tui/components/core"
	"github.com/billie-coop/picoconf/internal/tui/components/dialog"
	"github.com/billie-coop/picoconf/internal/tui/components/editor"
	"github.com/billie-coop/picoconf/internal/tui/components/home"
	"github.com/billie-coop/picoconf/internal/tui/components/sidebar"
	"github.com/billie-coop/picoconf/internal/tui/components/status"
	"github.com/billie-coop/picoconf/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Options tunes the model
type Options struct {
	Theme         string
	StatusTimeout time.Duration
	ConfigDir     string
	Logger        *slog.Logger
}

type pane int

const (
	sidebarPane pane = iota
	editorPane
)

// Model is the root of the editor UI
type Model struct {
	width  int
	height int

	keys   core.KeyMap
	sess   *session.Session
	logger *slog.Logger

	// Components
	sidebar       *sidebar.Model
	editor        *editor.Model
	home          *home.Model
	statusBar     *status.Component
	dialogManager *dialog.Manager

	focus pane
}

// New builds the UI over sess, loading it if that has not happened yet
func New(sess *session.Session, opts Options) *Model {
	styles.SetDefaultManager(styles.NewManager(opts.Theme))

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	keys := core.DefaultKeyMap()
	m := &Model{
		keys:          keys,
		sess:          sess,
		logger:        logger,
		sidebar:       sidebar.New(keys),
		editor:        editor.New(sess, keys),
		home:          home.New(),
		statusBar:     status.New(opts.StatusTimeout),
		dialogManager: dialog.NewManager(keys),
	}
	m.dialogManager.SetPaths(sess.Path(), opts.ConfigDir)

	if sess.State() == session.Uninitialized {
		sess.Load()
	}
	m.syncStateToComponents()
	m.sidebar.Focus()

	return m
}

// Init shows the outcome of the initial load
func (m *Model) Init() tea.Cmd {
	if m.sess.State() == session.LoadFailed {
		return m.statusBar.SetMessage(m.sess.Status())
	}
	return nil
}

// Update handles all TUI updates and routes to components
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.resizeComponents()

	case dialog.ConfirmedMsg:
		return m, m.handleConfirmed(msg.Dialog)

	case sidebar.SelectMsg:
		return m, m.handleSelect(msg.Key)

	case editor.EditedMsg:
		if msg.Err != nil {
			return m, m.statusBar.SetMessage(m.sess.Status())
		}
		if msg.Changed {
			m.logger.Debug("leaf edited", "category", m.sess.Current(), "row", msg.Row)
		}
		return m, nil
	}

	// If a dialog is open, route input to it first
	if m.dialogManager.IsDialogOpen() {
		cmds = append(cmds, m.dialogManager.Update(msg))
		if _, ok := msg.(tea.KeyPressMsg); ok {
			return m, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	m.statusBar, cmd = m.statusBar.Update(msg)
	cmds = append(cmds, cmd)

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		cmds = append(cmds, m.handleKey(keyMsg))
		return m, tea.Batch(cmds...)
	}

	// Cursor blink and the like for an open entry
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	// An open entry takes every key but quit
	if m.editor.Editing() && !key.Matches(msg, m.keys.Quit) {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.dialogManager.OpenDialog(dialog.QuitDialogType)
	case key.Matches(msg, m.keys.Help):
		return m.dialogManager.OpenDialog(dialog.HelpDialogType)
	case key.Matches(msg, m.keys.Save):
		return m.handleSave()
	case key.Matches(msg, m.keys.Revert):
		return m.confirmIf(m.sess.CanRevert(), dialog.RevertDialogType, "Nothing to revert")
	case key.Matches(msg, m.keys.Reset):
		return m.confirmIf(m.sess.State() == session.Loaded, dialog.ResetDialogType, "Nothing to reset")
	case key.Matches(msg, m.keys.Preview):
		return m.handlePreview()
	case key.Matches(msg, m.keys.SwitchPane):
		m.switchPane()
		return nil
	}

	var cmd tea.Cmd
	if m.focus == editorPane {
		m.editor, cmd = m.editor.Update(msg)
	} else {
		m.sidebar, cmd = m.sidebar.Update(msg)
	}
	return cmd
}

// switchPane moves focus between the sidebar and the editor. The editor
// only takes focus when the page has leaves.
func (m *Model) switchPane() {
	if m.focus == editorPane {
		m.focusPane(sidebarPane)
		return
	}
	if m.sess.State() == session.Loaded && !m.sess.IsHome() && len(m.editor.Rows()) > 0 {
		m.focusPane(editorPane)
	}
}

func (m *Model) focusPane(p pane) {
	m.focus = p
	if p == editorPane {
		m.sidebar.Blur()
		m.editor.Focus()
		return
	}
	m.editor.Blur()
	m.sidebar.Focus()
}

// View renders the entire TUI
func (m *Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("Initializing...")
	}

	if m.dialogManager.IsDialogOpen() {
		if dialogView := m.dialogManager.View(); dialogView != "" {
			return tea.NewView(dialogView)
		}
	}

	s := styles.CurrentTheme().S()
	const statusHeight = 1
	sidebarWidth := m.calculateSidebarWidth()
	mainWidth := m.width - sidebarWidth
	contentHeight := m.height - statusHeight

	sidebarStyle, mainStyle := s.BorderFocused, s.Border
	if m.focus == editorPane {
		sidebarStyle, mainStyle = s.Border, s.BorderFocused
	}

	sidebarView := sidebarStyle.
		Width(sidebarWidth - 2). // Account for border width
		Height(contentHeight - 2).
		Render(m.sidebar.View())

	mainView := mainStyle.
		Width(mainWidth - 2).
		Height(contentHeight - 2).
		Render(m.mainView(mainWidth-2, contentHeight-2))

	topSection := lipgloss.JoinHorizontal(lipgloss.Top, sidebarView, mainView)
	return tea.NewView(lipgloss.JoinVertical(lipgloss.Left, topSection, m.statusBar.View()))
}

// mainView picks what the right pane shows
func (m *Model) mainView(width, height int) string {
	switch {
	case m.sess.State() != session.Loaded:
		return home.LoadFailedView(width, height)
	case m.sess.IsHome():
		return m.home.View()
	default:
		return m.editor.View()
	}
}
