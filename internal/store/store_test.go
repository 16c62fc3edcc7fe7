package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/billie-coop/picoconf/internal/jsondoc"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Pico Connect", "settings.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.json"), nil)

	doc, ok := s.Load()
	if ok {
		t.Fatal("Load() ok = true for missing file")
	}
	if doc.Len() != 0 {
		t.Errorf("document has %d entries, want 0", doc.Len())
	}
	if !errors.Is(s.Err(), ErrConfigNotFound) {
		t.Errorf("Err() = %v, want ErrConfigNotFound", s.Err())
	}
	if s.HasBackup() {
		t.Error("failed load captured a backup")
	}
}

func TestStore_LoadMalformedFile(t *testing.T) {
	s := New(writeSettings(t, `{"Network": {"Port": 80`), nil)

	if _, ok := s.Load(); ok {
		t.Fatal("Load() ok = true for malformed JSON")
	}
	if !errors.Is(s.Err(), jsondoc.ErrParse) {
		t.Errorf("Err() = %v, want ErrParse", s.Err())
	}
}

func TestStore_LoadInjectsHomeFirst(t *testing.T) {
	raw := `{"Network": {"Port": 80}, "Audio": {"Volume": 10}}`
	s := New(writeSettings(t, raw), nil)

	doc, ok := s.Load()
	if !ok {
		t.Fatalf("Load() failed: %v", s.Err())
	}
	if got, want := doc.Keys(), []string{HomeKey, "Network", "Audio"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if string(s.Backup()) != raw {
		t.Errorf("backup = %q, want verbatim file text", s.Backup())
	}
}

func TestStore_SaveStripsHome(t *testing.T) {
	path := writeSettings(t, `{"Network": {"Port": 80}}`)
	s := New(path, nil)
	doc, ok := s.Load()
	if !ok {
		t.Fatalf("Load() failed: %v", s.Err())
	}

	network, _ := doc.Get("Network")
	obj, _ := network.AsObject()
	edited := obj.Clone()
	edited.Set("Port", jsondoc.Int(443))
	doc.Set("Network", jsondoc.Object(edited))

	if err := s.Save(doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	want := "{\n  \"Network\": {\n    \"Port\": 443\n  }\n}"
	if got := readFile(t, path); got != want {
		t.Errorf("file =\n%s\nwant\n%s", got, want)
	}
	if strings.Contains(readFile(t, path), HomeKey) {
		t.Error("home entry was persisted")
	}

	reloaded, ok := New(path, nil).Load()
	if !ok {
		t.Fatal("reload failed")
	}
	if got, want := reloaded.Keys(), []string{HomeKey, "Network"}; !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded Keys() = %v, want %v", got, want)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestStore_SaveFailureLeavesMemoryAlone(t *testing.T) {
	s := New(writeSettings(t, `{"Network": {"Port": 80}}`), nil)
	doc, _ := s.Load()
	before := jsondoc.RenderDocument(doc)

	// A regular file where the parent directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s.path = filepath.Join(blocker, "settings.json")

	err := s.Save(doc)
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("Save() error = %v, want ErrWrite", err)
	}
	if got := jsondoc.RenderDocument(s.Document()); got != before {
		t.Error("in-memory document changed after failed save")
	}
	if !doc.Has(HomeKey) {
		t.Error("Save() stripped the home entry from the caller's document")
	}
}

func TestStore_ResetThenRevert(t *testing.T) {
	original := `{"Network": {"Port": 80}}`
	path := writeSettings(t, original)
	s := New(path, nil)
	if _, ok := s.Load(); !ok {
		t.Fatal("Load() failed")
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if got := readFile(t, path); got != DefaultDocument {
		t.Errorf("file after reset =\n%s\nwant default document", got)
	}
	if !s.Document().Has("Streaming$") || s.Document().Keys()[0] != HomeKey {
		t.Errorf("document after reset = %v", s.Document().Keys())
	}

	if err := s.Revert(); err != nil {
		t.Fatalf("Revert() error = %v", err)
	}
	if got := readFile(t, path); got != original {
		t.Errorf("file after revert = %q, want %q", got, original)
	}
	if got, want := s.Document().Keys(), []string{HomeKey, "Network"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() after revert = %v, want %v", got, want)
	}
}

func TestStore_RevertIsIdempotent(t *testing.T) {
	path := writeSettings(t, `{"A": {"b": true}}`)
	s := New(path, nil)
	s.Load()

	if err := os.WriteFile(path, []byte(`{"A": {"b": false}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := s.Revert(); err != nil {
		t.Fatalf("first Revert() error = %v", err)
	}
	first := readFile(t, path)
	if err := s.Revert(); err != nil {
		t.Fatalf("second Revert() error = %v", err)
	}
	if second := readFile(t, path); second != first {
		t.Errorf("second revert changed the file:\n%s\nvs\n%s", second, first)
	}
}

func TestStore_RevertWithoutBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s := New(path, nil)
	s.Load()

	if err := s.Revert(); !errors.Is(err, ErrNoBackup) {
		t.Fatalf("Revert() error = %v, want ErrNoBackup", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Revert() without backup wrote a file")
	}
}

func TestStore_SaveAdoptsBackup(t *testing.T) {
	path := writeSettings(t, `{"A": {"n": 1}}`)
	s := New(path, nil)
	doc, _ := s.Load()

	if err := s.Save(doc); err != nil {
		t.Fatal(err)
	}
	if string(s.Backup()) != readFile(t, path) {
		t.Error("backup is not the saved text")
	}
}

func TestDefaultDocument_IsCanonical(t *testing.T) {
	doc, err := jsondoc.Parse([]byte(DefaultDocument))
	if err != nil {
		t.Fatalf("default document does not parse: %v", err)
	}
	if got := jsondoc.RenderDocument(doc); got != DefaultDocument {
		t.Errorf("default document is not in rendered form:\n%s", got)
	}
	if doc.Has(HomeKey) {
		t.Error("default document contains the home entry")
	}
}

func TestStore_FailedLoadKeepsBackup(t *testing.T) {
	original := `{"Network": {"Port": 80}}`
	path := writeSettings(t, original)
	s := New(path, nil)
	s.Load()

	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Load(); ok {
		t.Fatal("Load() accepted a malformed file")
	}
	if !s.HasBackup() {
		t.Fatal("failed load dropped the backup")
	}

	if err := s.Revert(); err != nil {
		t.Fatalf("Revert() error = %v", err)
	}
	if !s.OK() {
		t.Errorf("store not loaded after revert: %v", s.Err())
	}
	if got := readFile(t, path); got != original {
		t.Errorf("file after revert = %q, want %q", got, original)
	}
}
