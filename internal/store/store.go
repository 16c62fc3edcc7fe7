// Package store owns the settings file: reading it into a document, writing
// edits back, and the reset and revert workflows.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/billie-coop/picoconf/internal/jsondoc"
)

var (
	// ErrConfigNotFound means the settings file could not be read
	ErrConfigNotFound = errors.New("settings file not found")
	// ErrWrite means the settings file could not be written
	ErrWrite = errors.New("failed to write settings file")
	// ErrNoBackup means nothing was loaded yet, so there is nothing to revert to
	ErrNoBackup = errors.New("no backup captured")
)

// Store keeps the settings document in memory and on disk.
// It is used from a single goroutine and does no locking.
type Store struct {
	path   string
	doc    *jsondoc.Document
	ok     bool
	err    error
	backup []byte
	logger *slog.Logger
}

// New creates a store for the settings file at path. Nothing is read until
// Load is called.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		path:   path,
		doc:    jsondoc.NewDocument(),
		logger: logger,
	}
}

// Path returns the settings file path
func (s *Store) Path() string {
	return s.path
}

// Document returns the in-memory document, home entry included
func (s *Store) Document() *jsondoc.Document {
	return s.doc
}

// OK reports whether the last load succeeded
func (s *Store) OK() bool {
	return s.ok
}

// Err returns why the last load failed, or nil
func (s *Store) Err() error {
	return s.err
}

// HasBackup reports whether Revert has something to restore
func (s *Store) HasBackup() bool {
	return s.backup != nil
}

// Backup returns a copy of the captured snapshot
func (s *Store) Backup() []byte {
	return bytes.Clone(s.backup)
}

// Load reads the settings file and captures its text as the backup.
// On failure it returns an empty document and false; the cause is kept in Err.
func (s *Store) Load() (*jsondoc.Document, bool) {
	raw, ok := s.read()
	if ok {
		s.backup = raw
	}
	return s.doc, ok
}

// Reload reads the settings file without touching the backup
func (s *Store) Reload() (*jsondoc.Document, bool) {
	_, ok := s.read()
	return s.doc, ok
}

func (s *Store) read() ([]byte, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, s.fail(fmt.Errorf("%w: %s: %w", ErrConfigNotFound, s.path, err))
	}

	doc, err := jsondoc.Parse(raw)
	if err != nil {
		return nil, s.fail(fmt.Errorf("%s: %w", s.path, err))
	}

	doc.Prepend(HomeKey, homeEntry())
	s.doc = doc
	s.ok = true
	s.err = nil
	s.logger.Info("settings loaded", "path", s.path, "categories", doc.Len()-1)
	return raw, true
}

func (s *Store) fail(err error) bool {
	s.doc = jsondoc.NewDocument()
	s.ok = false
	s.err = err
	s.logger.Warn("settings not loaded", "path", s.path, "error", err)
	return false
}

// Save writes doc without its home entry and adopts the written text as the
// new backup. On failure neither the in-memory document nor doc is changed.
func (s *Store) Save(doc *jsondoc.Document) error {
	out := doc.Clone()
	out.Delete(HomeKey)
	text := []byte(jsondoc.RenderDocument(out))

	if err := s.write(text); err != nil {
		return err
	}
	s.backup = text
	s.logger.Info("settings saved", "path", s.path, "bytes", len(text))

	s.reloadAfter("save")
	return nil
}

// Reset overwrites the settings file with DefaultDocument and reloads it.
// The backup is kept so Revert can undo the reset.
func (s *Store) Reset() error {
	if err := s.write([]byte(DefaultDocument)); err != nil {
		return err
	}
	s.logger.Info("settings reset to defaults", "path", s.path)

	s.reloadAfter("reset")
	return nil
}

// Revert overwrites the settings file with the backup and reloads it
func (s *Store) Revert() error {
	if s.backup == nil {
		return ErrNoBackup
	}
	if err := s.write(s.backup); err != nil {
		return err
	}
	s.logger.Info("settings reverted", "path", s.path, "bytes", len(s.backup))

	s.reloadAfter("revert")
	return nil
}

// reloadAfter re-reads the file a write just replaced. A failure leaves the
// store not loaded with the backup still in place.
func (s *Store) reloadAfter(action string) {
	if _, ok := s.Reload(); !ok {
		s.logger.Error("reload after write failed", "action", action, "path", s.path, "error", s.err, "backup", s.backup != nil)
	}
}

// Raw returns the bytes currently on disk
func (s *Store) Raw() ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigNotFound, s.path, err)
	}
	return raw, nil
}

// write replaces the file through a temp file and a rename
func (s *Store) write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return s.writeErr(fmt.Errorf("%w: create directory: %w", ErrWrite, err))
	}

	tempFile := s.path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0o644); err != nil {
		return s.writeErr(fmt.Errorf("%w: %w", ErrWrite, err))
	}

	if err := os.Rename(tempFile, s.path); err != nil {
		_ = os.Remove(tempFile)
		return s.writeErr(fmt.Errorf("%w: %w", ErrWrite, err))
	}

	return nil
}

func (s *Store) writeErr(err error) error {
	s.logger.Error("settings write failed", "path", s.path, "error", err)
	return err
}
