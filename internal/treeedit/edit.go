package treeedit

import (
	"github.com/billie-coop/picoconf/internal/jsondoc"
)

// Bounds of the numeric editor
const (
	MinNumber int64 = 0
	MaxNumber int64 = 200
)

// Action is an edit the user asked for on a single leaf
type Action interface {
	action()
}

// SetText replaces a string leaf
type SetText struct {
	Text string
}

// Toggle flips a boolean leaf
type Toggle struct{}

// Step moves a number leaf by Delta, clamped to the editor bounds
type Step struct {
	Delta int64
}

// SetNumber sets a number leaf to a typed value. Typed values are stored as
// entered, bounds included; only the slider is limited.
type SetNumber struct {
	Value int64
}

func (SetText) action()   {}
func (Toggle) action()    {}
func (Step) action()      {}
func (SetNumber) action() {}

// Clamp limits n to the editor bounds
func Clamp(n int64) int64 {
	return min(max(n, MinNumber), MaxNumber)
}

// DisplayNumber is the integer a number leaf is shown as. Stored values
// outside the bounds are shown clamped; the stored literal is not touched.
func DisplayNumber(n jsondoc.Number) int64 {
	i, _ := n.Int()
	return Clamp(i)
}

// Editable reports whether the editor has a widget for the value's kind
func Editable(v jsondoc.Value) bool {
	return jsondoc.Match[bool](v, editable{})
}

type editable struct{}

func (editable) String(string) bool            { return true }
func (editable) Bool(bool) bool                { return true }
func (editable) Number(jsondoc.Number) bool    { return true }
func (editable) Object(*jsondoc.Document) bool { return false }
func (editable) Array([]jsondoc.Value) bool    { return false }
func (editable) Null() bool                    { return false }

// Apply performs a on v. It returns v unchanged and false when the action
// does not fit the value's kind or would not change it. The result always
// has the same kind as v.
func Apply(v jsondoc.Value, a Action) (jsondoc.Value, bool) {
	if a == nil {
		return v, false
	}
	out := jsondoc.Match[jsondoc.Value](v, applier{orig: v, action: a})
	if n, ok := out.AsNumber(); ok {
		// a touched number is rewritten as an integer literal
		orig, _ := v.AsNumber()
		return out, n.Literal() != orig.Literal()
	}
	return out, !jsondoc.Equal(out, v)
}

type applier struct {
	orig   jsondoc.Value
	action Action
}

func (a applier) String(string) jsondoc.Value {
	if st, ok := a.action.(SetText); ok {
		return jsondoc.String(st.Text)
	}
	return a.orig
}

func (a applier) Bool(b bool) jsondoc.Value {
	if _, ok := a.action.(Toggle); ok {
		return jsondoc.Bool(!b)
	}
	return a.orig
}

func (a applier) Number(n jsondoc.Number) jsondoc.Value {
	switch act := a.action.(type) {
	case Step:
		return jsondoc.Int(Clamp(DisplayNumber(n) + act.Delta))
	case SetNumber:
		return jsondoc.Int(act.Value)
	}
	return a.orig
}

func (a applier) Object(*jsondoc.Document) jsondoc.Value { return a.orig }
func (a applier) Array([]jsondoc.Value) jsondoc.Value    { return a.orig }
func (a applier) Null() jsondoc.Value                    { return a.orig }
