package jsondoc

import (
	"iter"
	"slices"
)

// Document is an ordered mapping of unique keys to values.
// Insertion order is preserved and is the order used for rendering.
type Document struct {
	keys   []string
	values map[string]Value
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{
		values: make(map[string]Value),
	}
}

// Len returns the number of entries
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys in order
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.keys)
}

// Has reports whether key is present
func (d *Document) Has(key string) bool {
	if d == nil {
		return false
	}
	_, ok := d.values[key]
	return ok
}

// Get returns the value stored under key
func (d *Document) Get(key string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Index returns the position of key, or -1
func (d *Document) Index(key string) int {
	if !d.Has(key) {
		return -1
	}
	return slices.Index(d.keys, key)
}

// Set stores value under key. An existing key keeps its position.
func (d *Document) Set(key string, value Value) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Prepend stores value under key at the first position, moving the key if
// it was already present.
func (d *Document) Prepend(key string, value Value) {
	d.Delete(key)
	d.keys = slices.Insert(d.keys, 0, key)
	d.values[key] = value
}

// Delete removes key, shifting later keys left. It reports whether the key
// was present.
func (d *Document) Delete(key string) bool {
	if _, ok := d.values[key]; !ok {
		return false
	}
	delete(d.values, key)
	if i := slices.Index(d.keys, key); i >= 0 {
		d.keys = slices.Delete(d.keys, i, i+1)
	}
	return true
}

// All iterates over the entries in order
func (d *Document) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if d == nil {
			return
		}
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// Clone returns a copy whose nested objects are also copied
func (d *Document) Clone() *Document {
	out := NewDocument()
	for k, v := range d.All() {
		if obj, ok := v.AsObject(); ok {
			v = Object(obj.Clone())
		}
		out.Set(k, v)
	}
	return out
}

// Equal reports whether both documents hold equal values under the same
// keys in the same order.
func (d *Document) Equal(other *Document) bool {
	if d.Len() != other.Len() {
		return false
	}
	if d.Len() == 0 {
		return true
	}
	if !slices.Equal(d.keys, other.keys) {
		return false
	}
	for _, k := range d.keys {
		if !Equal(d.values[k], other.values[k]) {
			return false
		}
	}
	return true
}
