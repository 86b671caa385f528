package islandjson

import (
	"io"
	"strconv"
)

// containsContainer reports whether any direct child of v is itself an
// object or array. Such containers print one child per line; all others
// fit on a single line.
func containsContainer(v *Value) bool {
	switch v.kind {
	case Object:
		for _, m := range v.value.([]Member) {
			if k := m.Value.Kind(); k == Object || k == Array {
				return true
			}
		}
	case Array:
		for _, c := range v.value.([]*Value) {
			if k := c.Kind(); k == Object || k == Array {
				return true
			}
		}
	}
	return false
}

func appendIndent(dst []byte, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, ' ')
	}
	return dst
}

// appendJSON writes the deterministic printed form of v to dst. Nested
// children indent two spaces deeper than their container; the closing
// bracket stays flush with the container's own indentation. Numbers use
// a fixed fractional format matching the C library's %f, a deliberate
// deviation from round-trip minimal formatting.
func (v *Value) appendJSON(dst []byte, indent int, ascii bool) []byte {
	if v == nil {
		return dst
	}
	switch v.kind {
	case Null:
		return append(dst, "null"...)
	case Bool:
		if v.value.(bool) {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Number:
		return strconv.AppendFloat(dst, v.value.(float64), 'f', 6, 64)
	case String:
		return appendQuoted(dst, v.value.(string), ascii)
	case Array:
		multi := containsContainer(v)
		dst = append(dst, '[')
		if multi {
			dst = append(dst, '\n')
		}
		nn := v.value.([]*Value)
		for i, c := range nn {
			if multi {
				dst = appendIndent(dst, indent+2)
			}
			dst = c.appendJSON(dst, indent+2, ascii)
			if i < len(nn)-1 {
				dst = append(dst, ',', ' ')
			}
			if multi {
				dst = append(dst, '\n')
			}
		}
		if multi {
			dst = appendIndent(dst, indent)
		}
		return append(dst, ']')
	case Object:
		multi := containsContainer(v)
		dst = append(dst, '{')
		if multi {
			dst = append(dst, '\n')
		}
		mm := v.value.([]Member)
		for i, m := range mm {
			if multi {
				dst = appendIndent(dst, indent+2)
			}
			// keys keep literal non-ASCII bytes even in ASCII mode
			dst = appendQuoted(dst, m.Key, false)
			dst = append(dst, ':', ' ')
			dst = m.Value.appendJSON(dst, indent+2, ascii)
			if i < len(mm)-1 {
				dst = append(dst, ',', ' ')
			}
			if multi {
				dst = append(dst, '\n')
			}
		}
		if multi {
			dst = appendIndent(dst, indent)
		}
		return append(dst, '}')
	default:
		return append(dst, "<invalid>"...)
	}
}

// String formats a tree as JSON text without the trailing newline of
// Print. Printing never fails; malformed string bytes come out as U+FFFD.
func (v *Value) String() string {
	return string(v.appendJSON(nil, 0, false))
}

// Print writes the tree held by v to w, terminated with a newline.
func (v *Value) Print(w io.Writer) (int, error) {
	buf := v.appendJSON(nil, 0, false)
	return w.Write(append(buf, '\n'))
}

// PrintASCII behaves like Print but emits every non-ASCII scalar of a
// string value as a \uXXXX escape, with surrogate pairs above U+FFFF.
// Object keys pass through unescaped.
func (v *Value) PrintASCII(w io.Writer) (int, error) {
	buf := v.appendJSON(nil, 0, true)
	return w.Write(append(buf, '\n'))
}
