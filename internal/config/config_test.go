package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestManager_LoadCreatesDefaults(t *testing.T) {
	base := t.TempDir()
	m := NewManager(base)

	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(base, AppDirName, "config.json"))
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	var got Config
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != *DefaultConfig() {
		t.Errorf("written config = %+v, want defaults", got)
	}
	if m.LogPath() != filepath.Join(base, AppDirName, "configurator.log") {
		t.Errorf("LogPath() = %s", m.LogPath())
	}
}

func TestManager_LoadKeepsDefaultsForMissingFields(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, AppDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"theme": "dark"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(base)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg := m.Get()
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
	if cfg.StatusTimeoutSeconds != 5 || cfg.LogLevel != "info" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestManager_LoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown_theme", `{"theme": "neon"}`},
		{"bad_level", `{"log_level": "loud"}`},
		{"negative_timeout", `{"status_timeout_seconds": -1}`},
		{"empty_path", `{"settings_path": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			dir := filepath.Join(base, AppDirName)
			os.MkdirAll(dir, 0o755)
			os.WriteFile(filepath.Join(dir, "config.json"), []byte(tt.content), 0o644)

			err := NewManager(base).Load()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestManager_Set(t *testing.T) {
	base := t.TempDir()
	m := NewManager(base)
	if err := m.Load(); err != nil {
		t.Fatal(err)
	}

	if err := m.Set("status_timeout_seconds", "12"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := m.Set("theme", "neon"); !errors.Is(err, ErrInvalid) {
		t.Errorf("Set(theme, neon) error = %v", err)
	}
	if m.Get().Theme != "pico" {
		t.Errorf("invalid Set changed theme to %q", m.Get().Theme)
	}
	if err := m.Set("nope", "1"); err == nil {
		t.Error("Set(unknown key) should fail")
	}

	reloaded := NewManager(base)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}
	if reloaded.Get().StatusTimeoutSeconds != 12 {
		t.Errorf("saved timeout = %d, want 12", reloaded.Get().StatusTimeoutSeconds)
	}
}

func TestManager_SettingsPath(t *testing.T) {
	t.Setenv("PICO_TEST_HOME", "/data/user")

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"braces", "${PICO_TEST_HOME}/Pico Connect/settings.json", "/data/user/Pico Connect/settings.json", false},
		{"bare", "$PICO_TEST_HOME/settings.json", "/data/user/settings.json", false},
		{"literal", "/etc/pico/settings.json", "/etc/pico/settings.json", false},
		{"unset", "${PICO_TEST_UNSET_VAR}/settings.json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(t.TempDir())
			m.Get().SettingsPath = tt.path

			got, err := m.SettingsPath()
			if tt.wantErr {
				if !errors.Is(err, ErrMissingEnv) {
					t.Errorf("SettingsPath() error = %v, want ErrMissingEnv", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SettingsPath() error = %v", err)
			}
			if got != filepath.Clean(tt.want) {
				t.Errorf("SettingsPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBaseDir(t *testing.T) {
	t.Setenv("PICO_TEST_BASE", "/tmp/appdata")
	if got, err := BaseDir("PICO_TEST_BASE"); err != nil || got != "/tmp/appdata" {
		t.Errorf("BaseDir() = %q, %v", got, err)
	}
	if _, err := BaseDir("PICO_TEST_UNSET_VAR"); !errors.Is(err, ErrMissingEnv) {
		t.Errorf("BaseDir(unset) error = %v", err)
	}
}
