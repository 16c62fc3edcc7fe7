package jsondoc

import (
	"errors"
	"math"
	"math/big"
	"strconv"
)

// Kind identifies the variant held by a Value
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindNumber
	KindObject
	KindArray
)

// String returns the lowercase JSON name of the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "null"
	}
}

// Number is a JSON number kept as its literal text.
// Keeping the literal means a value nobody edited is written back exactly as
// it was read, whatever its range or precision.
type Number struct {
	literal string
}

// NumberFromInt builds a Number from an integer
func NumberFromInt(n int64) Number {
	return Number{literal: strconv.FormatInt(n, 10)}
}

// NumberLiteral builds a Number from literal JSON text such as "80" or "1.5e3".
// The literal is trusted; callers pass text that came out of the parser.
func NumberLiteral(literal string) Number {
	return Number{literal: literal}
}

// Literal returns the JSON text of the number
func (n Number) Literal() string {
	if n.literal == "" {
		return "0"
	}
	return n.literal
}

// Float returns the number as a float64. Literals past the float64 range
// give ±Inf.
func (n Number) Float() float64 {
	f, err := strconv.ParseFloat(n.Literal(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return f
}

// equalNumbers compares by value without going through float64, so
// literals past its range or precision stay distinct
func equalNumbers(a, b Number) bool {
	if a.Literal() == b.Literal() {
		return true
	}
	x, _, errX := big.ParseFloat(a.Literal(), 10, 512, big.ToNearestEven)
	y, _, errY := big.ParseFloat(b.Literal(), 10, 512, big.ToNearestEven)
	if errX != nil || errY != nil {
		return false
	}
	return x.Cmp(y) == 0
}

// Int returns the number truncated toward zero and whether it was already
// integer-valued.
func (n Number) Int() (int64, bool) {
	if i, err := strconv.ParseInt(n.Literal(), 10, 64); err == nil {
		return i, true
	}
	f := n.Float()
	switch {
	case math.IsNaN(f):
		return 0, false
	case f >= math.MaxInt64:
		return math.MaxInt64, false
	case f <= math.MinInt64:
		return math.MinInt64, false
	}
	t := math.Trunc(f)
	return int64(t), t == f
}

// Value is an immutable JSON value.
// The zero Value is null.
type Value struct {
	kind Kind
	str  string
	b    bool
	num  Number
	obj  *Document
	arr  []Value
}

// Null returns the null value
func Null() Value {
	return Value{kind: KindNull}
}

// String wraps a string
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bool wraps a boolean
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int wraps an integer as a Number value
func Int(n int64) Value {
	return Value{kind: KindNumber, num: NumberFromInt(n)}
}

// Num wraps a Number
func Num(n Number) Value {
	return Value{kind: KindNumber, num: n}
}

// Object wraps a document. A nil document becomes an empty object.
func Object(d *Document) Value {
	if d == nil {
		d = NewDocument()
	}
	return Value{kind: KindObject, obj: d}
}

// Array wraps a list of elements
func Array(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindArray, arr: cp}
}

// Kind returns the variant tag
func (v Value) Kind() Kind {
	return v.kind
}

// AsString returns the string payload
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsBool returns the boolean payload
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsNumber returns the number payload
func (v Value) AsNumber() (Number, bool) {
	return v.num, v.kind == KindNumber
}

// AsObject returns the document behind an object value
func (v Value) AsObject() (*Document, bool) {
	return v.obj, v.kind == KindObject
}

// AsArray returns a copy of the array elements
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	cp := make([]Value, len(v.arr))
	copy(cp, v.arr)
	return cp, true
}

// IsContainer reports whether the value is an object or an array
func (v Value) IsContainer() bool {
	return v.kind == KindObject || v.kind == KindArray
}

// Equal reports deep equality. Numbers compare by value, so 1 and 1.0 are
// equal, and objects compare key order as well as contents.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindString:
		return a.str == b.str
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return equalNumbers(a.num, b.num)
	case KindObject:
		return a.obj.Equal(b.obj)
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Matcher handles every kind of Value. Implementations must cover all kinds,
// which the compiler enforces.
type Matcher[T any] interface {
	String(s string) T
	Bool(b bool) T
	Number(n Number) T
	Object(d *Document) T
	Array(elems []Value) T
	Null() T
}

// Match dispatches v to the method of m for its kind
func Match[T any](v Value, m Matcher[T]) T {
	switch v.kind {
	case KindString:
		return m.String(v.str)
	case KindBool:
		return m.Bool(v.b)
	case KindNumber:
		return m.Number(v.num)
	case KindObject:
		return m.Object(v.obj)
	case KindArray:
		elems, _ := v.AsArray()
		return m.Array(elems)
	default:
		return m.Null()
	}
}
