// Package treeedit walks a settings document one leaf at a time and rebuilds
// it from whatever the caller's visitor returns for each leaf.
package treeedit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/billie-coop/picoconf/internal/jsondoc"
)

// ErrTypeMismatch is returned when a visitor changes the kind of a leaf, or
// touches an array or null leaf at all.
var ErrTypeMismatch = errors.New("edit changed value type")

// PathSeparator joins path segments for display
const PathSeparator = " / "

// Path is the list of keys leading to a leaf, category first
type Path []string

// String joins the segments for display
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// With returns a new path with key appended. The receiver is never shared
// with the result.
func (p Path) With(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, key)
}

// Cursor is the state carried across one pass.
// Stripe flips once per leaf before the visitor sees it; Row counts leaves
// visited so far.
type Cursor struct {
	Stripe bool
	Row    int
}

// NewCursor returns the cursor a pass starts from
func NewCursor() *Cursor {
	return &Cursor{Stripe: true}
}

// Visitor receives every leaf of a pass and returns its replacement.
// path is the path of the containing object, not including key.
type Visitor func(cur *Cursor, path Path, key string, value jsondoc.Value) jsondoc.Value

// Identity returns every leaf unchanged
func Identity(_ *Cursor, _ Path, _ string, v jsondoc.Value) jsondoc.Value {
	return v
}

// Reconcile runs one pass over doc starting from a fresh cursor
func Reconcile(doc *jsondoc.Document, prefix Path, visit Visitor) (*jsondoc.Document, error) {
	return ReconcileWith(NewCursor(), doc, prefix, visit)
}

// ReconcileWith runs one pass over doc and returns a new document holding
// the visitor's results in the original key order. Objects are walked, not
// visited. doc itself is never modified.
func ReconcileWith(cur *Cursor, doc *jsondoc.Document, prefix Path, visit Visitor) (*jsondoc.Document, error) {
	if cur == nil {
		cur = NewCursor()
	}
	if visit == nil {
		visit = Identity
	}

	out := jsondoc.NewDocument()
	for key, value := range doc.All() {
		if obj, ok := value.AsObject(); ok {
			rebuilt, err := ReconcileWith(cur, obj, prefix.With(key), visit)
			if err != nil {
				return nil, err
			}
			out.Set(key, jsondoc.Object(rebuilt))
			continue
		}

		cur.Stripe = !cur.Stripe
		updated := visit(cur, prefix, key, value)
		cur.Row++

		if err := checkReplacement(value, updated); err != nil {
			return nil, fmt.Errorf("%s: %w", prefix.With(key), err)
		}
		out.Set(key, updated)
	}
	return out, nil
}

func checkReplacement(before, after jsondoc.Value) error {
	if before.Kind() != after.Kind() {
		return fmt.Errorf("%w: %s became %s", ErrTypeMismatch, before.Kind(), after.Kind())
	}
	switch before.Kind() {
	case jsondoc.KindArray, jsondoc.KindNull:
		if !jsondoc.Equal(before, after) {
			return fmt.Errorf("%w: %s leaves are read-only", ErrTypeMismatch, before.Kind())
		}
	}
	return nil
}
