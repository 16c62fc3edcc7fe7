package jsondoc

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrParse is returned for text that is not a JSON object
var ErrParse = errors.New("invalid settings JSON")

// Parse reads a JSON object into a Document, keeping the key order of the
// text. Duplicate keys keep the position of their first occurrence and the
// value of their last.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrParse)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is %s, want object", ErrParse, kindOf(root))
	}

	return parseObject(root), nil
}

// ParseValue reads any JSON value
func ParseValue(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return Value{}, fmt.Errorf("%w: malformed JSON", ErrParse)
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

func parseObject(r gjson.Result) *Document {
	doc := NewDocument()
	r.ForEach(func(key, value gjson.Result) bool {
		doc.Set(key.String(), fromResult(value))
		return true
	})
	return doc
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.String:
		return String(r.Str)
	case gjson.True:
		return Bool(true)
	case gjson.False:
		return Bool(false)
	case gjson.Number:
		return Num(NumberLiteral(r.Raw))
	case gjson.JSON:
		if r.IsObject() {
			return Object(parseObject(r))
		}
		var elems []Value
		r.ForEach(func(_, value gjson.Result) bool {
			elems = append(elems, fromResult(value))
			return true
		})
		return Array(elems...)
	default:
		return Null()
	}
}

func kindOf(r gjson.Result) Kind {
	return fromResult(r).Kind()
}
