package status

import (
	"strings"
	"testing"
	"time"

	"github.com/billie-coop/picoconf/internal/session"
)

var at = time.Date(2026, 3, 14, 9, 5, 0, 0, time.Local)

func TestSetMessage(t *testing.T) {
	tests := []struct {
		name       string
		clearAfter time.Duration
		status     session.Status
		wantShown  bool
		wantCmd    bool
	}{
		{"kept_without_timeout", 0, session.Status{Text: "Reverted Changes", At: at}, true, false},
		{"scheduled_clear", 5 * time.Second, session.Status{Text: "Reverted Changes", At: at}, true, true},
		{"empty_clears", 5 * time.Second, session.Status{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.clearAfter)
			cmd := c.SetMessage(tt.status)
			if (cmd != nil) != tt.wantCmd {
				t.Errorf("cmd = %v, want %v", cmd != nil, tt.wantCmd)
			}
			if _, ok := c.Message(); ok != tt.wantShown {
				t.Errorf("shown = %v, want %v", ok, tt.wantShown)
			}
		})
	}
}

func TestUpdate_ClearsOnlyItsOwnMessage(t *testing.T) {
	c := New(time.Second)
	c.SetMessage(session.Status{Text: "Applied/Saved Changes", At: at})
	c.SetMessage(session.Status{Text: "Reverted Changes", At: at.Add(time.Minute)})

	c.Update(clearMessageMsg{at: at})
	if msg, ok := c.Message(); !ok || msg.Text != "Reverted Changes" {
		t.Fatalf("stale timer cleared the newer message: %+v %v", msg, ok)
	}

	c.Update(clearMessageMsg{at: at.Add(time.Minute)})
	if _, ok := c.Message(); ok {
		t.Error("message not cleared by its own timer")
	}
}

func TestView(t *testing.T) {
	c := New(0)
	if c.View() != "" {
		t.Error("view before sizing should be empty")
	}

	c.SetSize(80, 1)
	c.SetLeftContent("/tmp/settings.json")
	c.SetMessage(session.Status{Text: "Reset All Settings", Level: session.Success, At: at})

	view := c.View()
	for _, want := range []string{"/tmp/settings.json", "Reset All Settings [09:05]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
