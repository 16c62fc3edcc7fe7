package jsondoc

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultIndent is the indent a top-level document is rendered with
const DefaultIndent = 2

// Render returns the canonical indented text of v.
//
// indent is the number of spaces in front of the entries of v when v is a
// container; its closing bracket sits two spaces to the left of that.
// Nested containers add two spaces per level.
func Render(v Value, indent int) string {
	var sb strings.Builder
	writeValue(&sb, v, indent)
	return sb.String()
}

// RenderDocument renders d as a top-level object
func RenderDocument(d *Document) string {
	return Render(Object(d), DefaultIndent)
}

func writeValue(sb *strings.Builder, v Value, indent int) {
	switch v.kind {
	case KindObject:
		writeObject(sb, v.obj, indent)
	case KindArray:
		writeArray(sb, v.arr, indent)
	case KindString:
		writeQuoted(sb, v.str)
	case KindNumber:
		sb.WriteString(v.num.Literal())
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	default:
		sb.WriteString("null")
	}
}

func writeObject(sb *strings.Builder, d *Document, indent int) {
	if d.Len() == 0 {
		sb.WriteString("{}")
		return
	}
	pad := strings.Repeat(" ", indent)
	sb.WriteString("{\n")
	first := true
	for k, v := range d.All() {
		if !first {
			sb.WriteString(",\n")
		}
		first = false
		sb.WriteString(pad)
		writeQuoted(sb, k)
		sb.WriteString(": ")
		writeValue(sb, v, indent+2)
	}
	sb.WriteString("\n")
	sb.WriteString(closingPad(indent))
	sb.WriteString("}")
}

func writeArray(sb *strings.Builder, elems []Value, indent int) {
	if len(elems) == 0 {
		sb.WriteString("[]")
		return
	}
	pad := strings.Repeat(" ", indent)
	sb.WriteString("[\n")
	for i, v := range elems {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(pad)
		writeValue(sb, v, indent+2)
	}
	sb.WriteString("\n")
	sb.WriteString(closingPad(indent))
	sb.WriteString("]")
}

func closingPad(indent int) string {
	if indent < 2 {
		return ""
	}
	return strings.Repeat(" ", indent-2)
}

const hexDigits = "0123456789abcdef"

// writeQuoted writes s as a JSON string. Only the characters JSON forbids
// inside a string are escaped; non-ASCII text is written as is.
func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"':
				sb.WriteString(`\"`)
			case '\\':
				sb.WriteString(`\\`)
			case '\n':
				sb.WriteString(`\n`)
			case '\r':
				sb.WriteString(`\r`)
			case '\t':
				sb.WriteString(`\t`)
			default:
				if c < 0x20 {
					sb.WriteString(`\u00`)
					sb.WriteByte(hexDigits[c>>4])
					sb.WriteByte(hexDigits[c&0xf])
				} else {
					sb.WriteByte(c)
				}
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteString(`�`)
		} else {
			sb.WriteString(s[i : i+size])
		}
		i += size
	}
	sb.WriteByte('"')
}
