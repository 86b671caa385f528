package islandjson

// Escape codec: converts the interior of a JSON string literal into clean
// UTF-8 and back. The decode direction is strict and aborts on the first
// bad escape; the print direction never fails and substitutes U+FFFD for
// malformed bytes.

// readHex converts a hex character ('0'-'F') to its integer value,
// or -1 if c is not a hex digit.
func readHex(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// readU16 reads a 4-digit hexadecimal UTF-16 code unit from the front of
// b, returning the decoded unit or -1 on error.
func readU16(b []byte) int {
	if len(b) < 4 {
		return -1
	}
	code := 0
	for i := 0; i < 4; i++ {
		digit := readHex(b[i])
		if digit < 0 {
			return -1
		}
		code = code<<4 | digit
	}
	return code
}

// readUTF16 parses the hex part of a Unicode escape starting at b,
// combining surrogate pairs if needed. It returns the Unicode scalar
// value and the number of bytes consumed, or -1 on error. A high
// surrogate must be followed immediately by a `\uXXXX` low surrogate;
// every other lone unit in 0xD800-0xDFFF is an error.
func readUTF16(b []byte) (r rune, n int) {
	code := readU16(b)
	if code < 0 {
		return -1, 0
	}
	switch {
	case code < 0xD800 || code > surrogateMax:
		return rune(code), 4
	case code <= 0xDBFF:
		rest := b[4:]
		if len(rest) < 2 || rest[0] != '\\' || rest[1] != 'u' {
			return -1, 0
		}
		pair := readU16(rest[2:])
		if pair < 0xDC00 || pair > 0xDFFF {
			return -1, 0
		}
		return 0x10000 + rune(code-0xD800)<<10 + rune(pair-0xDC00), 10
	default: // lone low surrogate
		return -1, 0
	}
}

// unescape converts the escape sequences of a raw JSON string-literal
// interior to their UTF-8 byte values. Bytes other than backslash are
// copied verbatim, so already valid UTF-8 passes through unchanged. Any
// failure aborts the whole conversion with ErrInvalidEscape or
// ErrInvalidUnicode and no partial result.
func unescape(raw []byte) ([]byte, error) {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); {
		if raw[i] != '\\' || i+1 >= len(raw) {
			out = append(out, raw[i])
			i++
			continue
		}
		c := raw[i+1]
		i += 2
		switch c {
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		case '/':
			out = append(out, '/')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			r, n := readUTF16(raw[i:])
			if n == 0 {
				return nil, ErrInvalidUnicode
			}
			out = appendRune(out, r)
			i += n
		default:
			return nil, ErrInvalidEscape
		}
	}
	return out, nil
}

// appendHexEscape appends r as JSON \uXXXX escapes, generating a
// surrogate pair for scalars beyond the Basic Multilingual Plane.
func appendHexEscape(dst []byte, r rune) []byte {
	const hex = "0123456789ABCDEF"
	u16 := func(dst []byte, u uint32) []byte {
		return append(dst, '\\', 'u',
			hex[u>>12&0xF], hex[u>>8&0xF], hex[u>>4&0xF], hex[u&0xF])
	}
	if r <= 0xFFFF {
		return u16(dst, uint32(r))
	}
	v := uint32(r) - 0x10000
	dst = u16(dst, 0xD800+v>>10)
	return u16(dst, 0xDC00+v&0x3FF)
}

// appendQuoted appends s to dst as a quoted JSON string, escaping control
// characters and special symbols. If ascii is true, non-ASCII scalars are
// emitted as \uXXXX escapes. Malformed UTF-8 never fails printing: it is
// replaced by U+FFFD and decoding resynchronizes after skipping up to 3
// continuation-looking bytes.
func appendQuoted(dst []byte, s string, ascii bool) []byte {
	dst = append(dst, '"')
	b := []byte(s)
	for i := 0; i < len(b); {
		r, size, ok := decodeRune(b[i:])
		if !ok {
			if ascii {
				dst = appendHexEscape(dst, replacement)
			} else {
				dst = appendRune(dst, replacement)
			}
			i++
			for skips := 0; skips < 3 && i < len(b) &&
				b[i]&continuationM == continuation; skips++ {
				i++
			}
			continue
		}
		switch r {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if r < 0x20 || ascii && r >= 0x80 {
				dst = appendHexEscape(dst, r)
			} else {
				dst = append(dst, b[i:i+size]...)
			}
		}
		i += size
	}
	return append(dst, '"')
}
