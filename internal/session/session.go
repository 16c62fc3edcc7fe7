package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/billie-coop/picoconf/internal/jsondoc"
	"github.com/billie-coop/picoconf/internal/store"
	"github.com/billie-coop/picoconf/internal/treeedit"
)

var (
	// ErrNotLoaded is returned by actions that need a loaded document
	ErrNotLoaded = errors.New("settings not loaded")
	// ErrUnknownCategory is returned when selecting a key the document lacks
	ErrUnknownCategory = errors.New("unknown category")
)

// State is the load state of a session
type State int

const (
	Uninitialized State = iota
	Loaded
	LoadFailed
)

func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case LoadFailed:
		return "load failed"
	default:
		return "uninitialized"
	}
}

// Category is one top-level entry as the sidebar shows it
type Category struct {
	Key    string
	Label  string
	Marked bool
	Home   bool
}

// Session sequences load, edit, save, reset and revert against a store and
// tracks which category is on screen.
type Session struct {
	store   *store.Store
	state   State
	current string
	status  Status
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the clock used for status timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a session over st. Call Load before anything else.
func New(st *store.Store, opts ...Option) *Session {
	s := &Session{
		store:   st,
		current: store.HomeKey,
		now:     time.Now,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the settings file and shows the home page
func (s *Session) Load() bool {
	_, ok := s.store.Load()
	s.current = store.HomeKey
	s.sync(ok)
	if !ok {
		s.setStatus("Could not load settings", Error)
	}
	return ok
}

// sync adopts the store's load result, keeping the selection if the
// category survived.
func (s *Session) sync(ok bool) {
	if !ok {
		s.state = LoadFailed
		s.current = store.HomeKey
		return
	}
	s.state = Loaded
	if !s.store.Document().Has(s.current) {
		s.current = store.HomeKey
	}
}

// State returns the load state
func (s *Session) State() State {
	return s.state
}

// LoadError returns why the settings could not be loaded
func (s *Session) LoadError() error {
	return s.store.Err()
}

// Path returns the settings file path
func (s *Session) Path() string {
	return s.store.Path()
}

// Raw returns the settings file as it is on disk, edits not included
func (s *Session) Raw() ([]byte, error) {
	return s.store.Raw()
}

// Document returns the full in-memory document
func (s *Session) Document() *jsondoc.Document {
	return s.store.Document()
}

// Categories lists the top-level entries in document order
func (s *Session) Categories() []Category {
	doc := s.store.Document()
	out := make([]Category, 0, doc.Len())
	for _, key := range doc.Keys() {
		out = append(out, Category{
			Key:    key,
			Label:  strings.ReplaceAll(key, store.CategoryMarker, ""),
			Marked: strings.HasSuffix(key, store.CategoryMarker),
			Home:   key == store.HomeKey,
		})
	}
	return out
}

// Select changes the category on screen
func (s *Session) Select(key string) error {
	if s.state != Loaded {
		return ErrNotLoaded
	}
	if !s.store.Document().Has(key) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}
	s.current = key
	return nil
}

// Current returns the selected category key
func (s *Session) Current() string {
	return s.current
}

// IsHome reports whether the home page is selected
func (s *Session) IsHome() bool {
	return s.current == store.HomeKey
}

// Welcome returns the text entries of the home category
func (s *Session) Welcome() []string {
	v, ok := s.store.Document().Get(store.HomeKey)
	if !ok {
		return nil
	}
	home, ok := v.AsObject()
	if !ok {
		return nil
	}
	var lines []string
	for _, entry := range home.All() {
		if text, ok := entry.AsString(); ok {
			lines = append(lines, text)
		}
	}
	return lines
}

// Edit runs one reconciliation pass over the selected category from a fresh
// cursor.
func (s *Session) Edit(visit treeedit.Visitor) error {
	return s.EditWith(treeedit.NewCursor(), visit)
}

// EditWith runs one reconciliation pass over the selected category and puts
// the rebuilt category back in the document. A rejected pass leaves the
// document as it was. The home page and non-object categories have no
// leaves to visit.
func (s *Session) EditWith(cur *treeedit.Cursor, visit treeedit.Visitor) error {
	if s.state != Loaded {
		return ErrNotLoaded
	}
	if s.IsHome() {
		return nil
	}

	doc := s.store.Document()
	v, ok := doc.Get(s.current)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, s.current)
	}
	sub, ok := v.AsObject()
	if !ok {
		return nil
	}

	rebuilt, err := treeedit.ReconcileWith(cur, sub, treeedit.Path{s.current}, visit)
	if err != nil {
		s.logger.Error("edit rejected", "category", s.current, "error", err)
		s.setStatus("Edit rejected: "+err.Error(), Error)
		return err
	}

	doc.Set(s.current, jsondoc.Object(rebuilt))
	return nil
}

// Save writes the in-memory document and reloads it
func (s *Session) Save() error {
	if s.state != Loaded {
		s.setStatus("Nothing to save", Warning)
		return ErrNotLoaded
	}
	if err := s.store.Save(s.store.Document()); err != nil {
		s.setStatus("Could not save: "+err.Error(), Error)
		return err
	}
	s.finish("Applied/Saved Changes")
	return nil
}

// Reset writes the default settings and reloads them
func (s *Session) Reset() error {
	if s.state != Loaded {
		s.setStatus("Nothing to reset", Warning)
		return ErrNotLoaded
	}
	if err := s.store.Reset(); err != nil {
		s.setStatus("Could not reset: "+err.Error(), Error)
		return err
	}
	s.finish("Reset All Settings")
	return nil
}

// CanRevert reports whether a backup exists to restore. It can be true
// after a load failure that followed a successful load.
func (s *Session) CanRevert() bool {
	return s.state != Uninitialized && s.store.HasBackup()
}

// Revert restores the settings captured at the last successful load and
// reloads them. It also runs when the file has since become unreadable.
func (s *Session) Revert() error {
	if !s.CanRevert() {
		s.setStatus("Nothing to revert", Warning)
		return ErrNotLoaded
	}
	if err := s.store.Revert(); err != nil {
		if errors.Is(err, store.ErrNoBackup) {
			s.setStatus("Nothing to revert", Warning)
		} else {
			s.setStatus("Could not revert: "+err.Error(), Error)
		}
		return err
	}
	s.finish("Reverted Changes")
	return nil
}

// finish adopts the reload that follows a write. The write itself worked,
// so a failed reload is reported without undoing it.
func (s *Session) finish(done string) {
	ok := s.store.OK()
	s.sync(ok)
	if !ok {
		s.setStatus(done+", but the file could not be reloaded", Error)
		return
	}
	s.setStatus(done, Success)
}
