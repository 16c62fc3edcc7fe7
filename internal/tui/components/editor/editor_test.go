package editor

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/billie-coop/picoconf/internal/jsondoc"
	"github.com/billie-coop/picoconf/internal/session"
	"github.com/billie-coop/picoconf/internal/store"
	"github.com/billie-coop/picoconf/internal/treeedit"
	"github.com/billie-coop/picoconf/internal/tui/components/core"
	tea "github.com/charmbracelet/bubbletea/v2"
)

const settings = `{
  "Audio": {
    "Volume": 100,
    "Microphone": {
      "Enabled": false,
      "Gain": 50
    }
  },
  "Network": {
    "Host": "auto",
    "Port": 80,
    "Tags": [1]
  }
}`

func newEditor(t *testing.T, category string) (*Model, *session.Session) {
	t.Helper()
	m, sess, _ := newEditorWith(t, settings, category)
	return m, sess
}

func newEditorWith(t *testing.T, content, category string) (*Model, *session.Session, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	sess := session.New(store.New(path, nil))
	if !sess.Load() {
		t.Fatalf("Load() failed: %v", sess.LoadError())
	}
	if err := sess.Select(category); err != nil {
		t.Fatal(err)
	}

	m := New(sess, core.DefaultKeyMap())
	m.SetSize(80, 20)
	m.Focus()
	m.Refresh()
	return m, sess, path
}

func press(k string) tea.KeyPressMsg {
	switch k {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "shift+right":
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

// leaf reads a value out of the session document by path
func leaf(t *testing.T, sess *session.Session, path ...string) jsondoc.Value {
	t.Helper()
	doc := sess.Document()
	for i, key := range path {
		v, ok := doc.Get(key)
		if !ok {
			t.Fatalf("missing %v", path[:i+1])
		}
		if i == len(path)-1 {
			return v
		}
		doc, _ = v.AsObject()
	}
	return jsondoc.Null()
}

func TestRefresh_RowsFollowThePass(t *testing.T) {
	m, _ := newEditor(t, "Audio")

	want := []struct {
		path   string
		key    string
		stripe bool
	}{
		{"Audio /", "Volume", false},
		{"Audio / Microphone /", "Enabled", true},
		{"Audio / Microphone /", "Gain", false},
	}

	rows := m.Rows()
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		path, key := rows[i].Label()
		if path != w.path || key != w.key {
			t.Errorf("row %d label = %q %q, want %q %q", i, path, key, w.path, w.key)
		}
		if rows[i].Stripe != w.stripe {
			t.Errorf("row %d stripe = %v, want %v", i, rows[i].Stripe, w.stripe)
		}
		if rows[i].Index != i {
			t.Errorf("row %d index = %d", i, rows[i].Index)
		}
	}
}

func TestRefresh_HomeHasNoRows(t *testing.T) {
	m, sess := newEditor(t, store.HomeKey)
	if len(m.Rows()) != 0 {
		t.Errorf("home page produced %d rows", len(m.Rows()))
	}
	if !sess.IsHome() {
		t.Error("expected the home page")
	}
}

func TestUpdate_ToggleAndStep(t *testing.T) {
	m, sess := newEditor(t, "Audio")

	m.Update(press("down"))
	if m.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", m.Cursor())
	}
	if _, cmd := m.Update(press("space")); cmd == nil {
		t.Fatal("toggle produced no command")
	}
	if on, _ := leaf(t, sess, "Audio", "Microphone", "Enabled").AsBool(); !on {
		t.Error("Enabled was not toggled")
	}

	m.Update(press("down"))
	m.Update(press("right"))
	m.Update(press("shift+right"))
	if n, _ := leaf(t, sess, "Audio", "Microphone", "Gain").AsNumber(); n.Literal() != "61" {
		t.Errorf("Gain = %s, want 61", n.Literal())
	}
}

func TestApply_ReportsChange(t *testing.T) {
	m, _ := newEditor(t, "Audio")

	msg := m.Apply(treeedit.Step{Delta: 0})().(EditedMsg)
	if msg.Err != nil || msg.Row != 0 {
		t.Fatalf("EditedMsg = %+v", msg)
	}
	if msg.Changed {
		t.Error("a zero step reported a change")
	}

	msg = m.Apply(treeedit.Step{Delta: -1})().(EditedMsg)
	if !msg.Changed {
		t.Error("step down reported no change")
	}
}

func TestUpdate_TypedNumber(t *testing.T) {
	m, sess := newEditor(t, "Network")

	m.Update(press("down"))
	m.Update(press("enter"))
	if !m.Editing() {
		t.Fatal("enter on a number should open an entry")
	}
	m.Update(press("1"))
	m.Update(press("enter"))
	if m.Editing() {
		t.Fatal("entry still open after commit")
	}

	// typed values go past the slider range
	if n, _ := leaf(t, sess, "Network", "Port").AsNumber(); n.Literal() != "801" {
		t.Errorf("Port = %s, want 801", n.Literal())
	}
}

func TestUpdate_CancelledEntryKeepsValue(t *testing.T) {
	m, sess := newEditor(t, "Network")

	m.Update(press("enter"))
	if !m.Editing() {
		t.Fatal("enter on a string should open an entry")
	}
	m.Update(press("x"))
	m.Update(press("esc"))

	if s, _ := leaf(t, sess, "Network", "Host").AsString(); s != "auto" {
		t.Errorf("Host = %q after cancel, want auto", s)
	}
}

func TestUpdate_UnsupportedRowIgnoresKeys(t *testing.T) {
	m, sess := newEditor(t, "Network")
	before := jsondoc.RenderDocument(sess.Document())

	m.Update(press("down"))
	m.Update(press("down"))
	if got := m.Rows()[m.Cursor()].Value.Kind(); got != jsondoc.KindArray {
		t.Fatalf("row kind = %v, want array", got)
	}
	m.Update(press("enter"))
	m.Update(press("right"))

	if m.Editing() {
		t.Error("array row opened an entry")
	}
	if got := jsondoc.RenderDocument(sess.Document()); got != before {
		t.Errorf("document changed:\n%s", got)
	}
}

func TestUpdate_IgnoresKeysWithoutFocus(t *testing.T) {
	m, _ := newEditor(t, "Audio")
	m.Blur()
	m.Update(press("down"))
	if m.Cursor() != 0 {
		t.Errorf("cursor moved without focus")
	}
}

func TestUpdate_UnchangedEntryKeepsText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantOpen bool
	}{
		{"long", strings.Repeat("ß", 300), true},
		{"newline", "a\nb", false},
		{"tab", "a\tb", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quoted, err := json.Marshal(tt.text)
			if err != nil {
				t.Fatal(err)
			}
			m, sess, path := newEditorWith(t, `{"Device": {"Name": `+string(quoted)+`}}`, "Device")

			_, cmd := m.Update(press("enter"))
			if m.Editing() != tt.wantOpen {
				t.Fatalf("entry open = %v, want %v", m.Editing(), tt.wantOpen)
			}
			if tt.wantOpen {
				if _, cmd := m.Update(press("enter")); cmd != nil {
					t.Errorf("unchanged commit produced a command")
				}
			} else {
				msg, ok := cmd().(EditedMsg)
				if !ok || !errors.Is(msg.Err, ErrNotEditable) {
					t.Errorf("refused entry reported %+v", msg)
				}
				if sess.Status().Level != session.Warning {
					t.Errorf("status level = %v, want Warning", sess.Status().Level)
				}
			}

			if s, _ := leaf(t, sess, "Device", "Name").AsString(); s != tt.text {
				t.Errorf("Name changed to %q", s)
			}
			if err := sess.Save(); err != nil {
				t.Fatal(err)
			}
			data, _ := os.ReadFile(path)
			if !strings.Contains(string(data), string(quoted)) {
				t.Errorf("saved file lost the text:\n%s", data)
			}
		})
	}
}

func TestRefresh_StoredNumbersSurviveBrowsing(t *testing.T) {
	m, sess, path := newEditorWith(t, `{"Audio": {"Volume": 500, "Gain": 1e400, "Ratio": 12.5}}`, "Audio")

	m.Update(press("enter"))
	m.Update(press("enter"))
	m.Update(press("down"))
	m.Update(press("down"))
	m.Update(press("enter"))
	m.Update(press("enter"))
	m.Update(press("up"))
	m.Refresh()

	if err := sess.Save(); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	want := "{\n  \"Audio\": {\n    \"Volume\": 500,\n    \"Gain\": 1e400,\n    \"Ratio\": 12.5\n  }\n}"
	if string(data) != want {
		t.Errorf("file =\n%s\nwant\n%s", data, want)
	}
}
