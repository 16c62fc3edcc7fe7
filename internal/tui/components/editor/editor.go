// Package editor is the pane that edits the leaves of one category.
//
// The rows are not stored between passes: every refresh or edit runs one
// reconciliation pass over the selected category through the session, and
// the visitor records what it saw. The row under the cursor is the one the
// pending action is applied to, so rendering and editing never disagree
// about which leaf is which.
package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/billie-coop/picoconf/internal/jsondoc"
	"github.com/billie-coop/picoconf/internal/session"
	"github.com/billie-coop/picoconf/internal/store"
	"github.com/billie-coop/picoconf/internal/treeedit"
	"github.com/billie-coop/picoconf/internal/tui/components/core"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
)

var (
	// ErrNotANumber is reported when a typed number does not parse
	ErrNotANumber = errors.New("not a whole number")

	// ErrNotEditable is reported for text the single-line entry cannot hold
	// as is, such as line breaks, tabs or control characters
	ErrNotEditable = errors.New("text cannot be edited inline")
)

// Row is one leaf as seen by the last pass
type Row struct {
	Index  int
	Path   treeedit.Path
	Key    string
	Value  jsondoc.Value
	Stripe bool
}

// Label is the row caption, e.g. "Audio / Microphone /" and "Gain"
func (r Row) Label() (path, key string) {
	segs := make([]string, len(r.Path))
	for i, p := range r.Path {
		segs[i] = strings.TrimSuffix(p, store.CategoryMarker)
	}
	return strings.Join(segs, treeedit.PathSeparator) + " /", strings.TrimSpace(r.Key)
}

// EditedMsg reports the outcome of an edit to the parent model
type EditedMsg struct {
	Row     int
	Changed bool
	Err     error
}

type mode int

const (
	browsing mode = iota
	editingText
	editingNumber
)

// Model is the editor pane
type Model struct {
	core.FocusableBase
	core.SizeableBase

	keys   core.KeyMap
	sess   *session.Session
	rows   []Row
	cursor int
	offset int

	mode  mode
	input textinput.Model
	// entry text as opened; committing it unchanged leaves the leaf alone
	opened string
}

// New creates an editor over sess
func New(sess *session.Session, keys core.KeyMap) *Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 0

	return &Model{
		keys:  keys,
		sess:  sess,
		input: input,
	}
}

// SetSize keeps the cursor visible at the new height
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.SizeableBase.SetSize(width, height)
	m.input.SetWidth(m.widgetWidth())
	m.scroll()
	return nil
}

// Rows returns the rows of the last pass
func (m *Model) Rows() []Row {
	return m.rows
}

// Cursor is the index of the focused row
func (m *Model) Cursor() int {
	return m.cursor
}

// Editing reports whether a text or number entry is open
func (m *Model) Editing() bool {
	return m.mode != browsing
}

// Refresh rebuilds the rows after the session changed underneath, e.g. on
// category change or reload. An open entry is dropped.
func (m *Model) Refresh() {
	m.stopEditing()
	if _, err := m.pass(-1, nil); err != nil {
		m.rows = nil
	}
	m.cursor = min(m.cursor, max(len(m.rows)-1, 0))
	m.scroll()
}

// Home puts the cursor back on the first row
func (m *Model) Home() {
	m.cursor = 0
	m.offset = 0
}

// pass runs one reconciliation pass and applies action to the row with
// index target. Rows are only replaced when the pass was accepted.
func (m *Model) pass(target int, action treeedit.Action) (changed bool, err error) {
	var rows []Row
	err = m.sess.Edit(func(cur *treeedit.Cursor, path treeedit.Path, k string, v jsondoc.Value) jsondoc.Value {
		if cur.Row == target {
			v, changed = treeedit.Apply(v, action)
		}
		rows = append(rows, Row{
			Index:  cur.Row,
			Path:   path,
			Key:    k,
			Value:  v,
			Stripe: cur.Stripe,
		})
		return v
	})
	if err != nil {
		return false, err
	}
	m.rows = rows
	return changed, nil
}

// Apply performs action on the focused row
func (m *Model) Apply(action treeedit.Action) tea.Cmd {
	if len(m.rows) == 0 {
		return nil
	}
	row := m.cursor
	changed, err := m.pass(row, action)
	return func() tea.Msg {
		return EditedMsg{Row: row, Changed: changed, Err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.IsFocused() {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if m.mode != browsing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.mode != browsing {
		return m.updateEntry(keyMsg)
	}
	if len(m.rows) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
		m.scroll()
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(m.rows)-1)
		m.scroll()
	case key.Matches(keyMsg, m.keys.Activate):
		return m, m.activate()
	case key.Matches(keyMsg, m.keys.Decrease):
		return m, m.step(-1)
	case key.Matches(keyMsg, m.keys.Increase):
		return m, m.step(1)
	case key.Matches(keyMsg, m.keys.BigDown):
		return m, m.step(-10)
	case key.Matches(keyMsg, m.keys.BigUp):
		return m, m.step(10)
	}
	return m, nil
}

func (m *Model) focused() (Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return Row{}, false
	}
	return m.rows[m.cursor], true
}

// activate toggles a boolean or opens an entry for text and numbers
func (m *Model) activate() tea.Cmd {
	row, ok := m.focused()
	if !ok {
		return nil
	}

	switch row.Value.Kind() {
	case jsondoc.KindBool:
		return m.Apply(treeedit.Toggle{})
	case jsondoc.KindString:
		text, _ := row.Value.AsString()
		cmd := m.startEditing(editingText, text)
		if m.input.Value() != text {
			m.stopEditing()
			m.sess.SetStatus("Text with line breaks or tabs can't be edited here", session.Warning)
			r := m.cursor
			return func() tea.Msg { return EditedMsg{Row: r, Err: ErrNotEditable} }
		}
		return cmd
	case jsondoc.KindNumber:
		n, _ := row.Value.AsNumber()
		i, _ := n.Int()
		return m.startEditing(editingNumber, strconv.FormatInt(i, 10))
	}
	return nil
}

func (m *Model) step(delta int64) tea.Cmd {
	row, ok := m.focused()
	if !ok || row.Value.Kind() != jsondoc.KindNumber {
		return nil
	}
	return m.Apply(treeedit.Step{Delta: delta})
}

func (m *Model) startEditing(md mode, value string) tea.Cmd {
	m.mode = md
	m.input.SetValue(value)
	m.opened = m.input.Value()
	m.input.CursorEnd()
	m.input.SetWidth(m.widgetWidth())
	return m.input.Focus()
}

func (m *Model) stopEditing() {
	m.mode = browsing
	m.input.Blur()
	m.input.SetValue("")
	m.opened = ""
}

func (m *Model) updateEntry(msg tea.KeyPressMsg) (*Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopEditing()
		return m, nil
	case "enter":
		return m, m.commit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commit applies the entry to the focused row and closes it
func (m *Model) commit() tea.Cmd {
	value := m.input.Value()
	opened := m.opened
	md := m.mode
	m.stopEditing()

	if value == opened {
		return nil
	}

	if md == editingText {
		return m.Apply(treeedit.SetText{Text: value})
	}

	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		err = fmt.Errorf("%w: %q", ErrNotANumber, value)
		m.sess.SetStatus("Not a whole number: "+value, session.Warning)
		row := m.cursor
		return func() tea.Msg { return EditedMsg{Row: row, Err: err} }
	}
	return m.Apply(treeedit.SetNumber{Value: n})
}

// visibleRows is how many rows fit under the header
func (m *Model) visibleRows() int {
	_, h := m.Inner()
	return max(h-2, 1)
}

// scroll keeps the cursor on screen
func (m *Model) scroll() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	m.offset = max(min(m.offset, len(m.rows)-visible), 0)
}

func (m *Model) widgetWidth() int {
	w, _ := m.Inner()
	return min(max(w/3, 12), 32)
}
