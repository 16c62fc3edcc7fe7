package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/billie-coop/picoconf/internal/session"
	"github.com/billie-coop/picoconf/internal/store"
	"github.com/billie-coop/picoconf/internal/tui/components/home"
	tea "github.com/charmbracelet/bubbletea/v2"
)

func newModel(t *testing.T, content string) (*Model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	m := New(session.New(store.New(path, nil)), Options{Theme: "pico"})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, path
}

// send delivers msg and feeds every message its commands produce back in
func send(m *Model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	for _, next := range run(cmd) {
		send(m, next)
	}
}

func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

var (
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyRight = tea.KeyPressMsg{Code: tea.KeyRight}
	keyTab   = tea.KeyPressMsg{Code: tea.KeyTab}
	keySave  = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	keyReset = tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}
	keyYes   = tea.KeyPressMsg{Code: 'y', Text: "y"}
)

func TestModel_SelectEditSave(t *testing.T) {
	m, path := newModel(t, `{"Audio": {"Volume": 30}}`)

	send(m, keyTab)
	if m.focus != sidebarPane {
		t.Fatal("editor took focus on the home page")
	}

	send(m, keyDown)
	if m.sess.Current() != "Audio" {
		t.Fatalf("selection = %q, want Audio", m.sess.Current())
	}

	send(m, keyTab)
	if m.focus != editorPane {
		t.Fatal("tab did not focus the editor")
	}
	send(m, keyRight)
	send(m, keySave)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "{\n  \"Audio\": {\n    \"Volume\": 31\n  }\n}"; string(data) != want {
		t.Errorf("file =\n%s\nwant\n%s", data, want)
	}
	if msg, ok := m.statusBar.Message(); !ok || msg.Text != "Applied/Saved Changes" {
		t.Errorf("status = %+v %v", msg, ok)
	}
}

func TestModel_ResetAfterConfirm(t *testing.T) {
	m, path := newModel(t, `{"Audio": {"Volume": 30}}`)

	send(m, keyReset)
	if !m.dialogManager.IsDialogOpen() {
		t.Fatal("reset did not ask for confirmation")
	}
	data, _ := os.ReadFile(path)
	if string(data) == store.DefaultDocument {
		t.Fatal("file reset before confirmation")
	}

	send(m, keyYes)
	if m.dialogManager.IsDialogOpen() {
		t.Error("dialog open after answer")
	}
	data, _ = os.ReadFile(path)
	if string(data) != store.DefaultDocument {
		t.Errorf("file after reset =\n%s", data)
	}
}

func TestModel_LoadFailed(t *testing.T) {
	m, _ := newModel(t, "")

	if got := m.mainView(60, 20); !strings.Contains(got, home.LoadFailedText) {
		t.Errorf("main pane missing the load failure text:\n%s", got)
	}

	send(m, keyReset)
	if m.dialogManager.IsDialogOpen() {
		t.Error("reset offered without a loaded file")
	}
	if msg, _ := m.statusBar.Message(); msg.Text != "Nothing to reset" {
		t.Errorf("status = %q", msg.Text)
	}
	if _, ok := m.sidebar.Selected(); ok {
		t.Error("sidebar offers a category after a failed load")
	}
}
