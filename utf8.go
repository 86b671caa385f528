package islandjson

// UTF-8 codec used by the escape codec and the printer. The standard
// unicode/utf8 package is not usable here: DecodeRune consumes one byte
// and substitutes U+FFFD on malformed input, while the printer needs a
// decoder that fails without consuming anything so it can resynchronize
// on its own terms.

const (
	maxRune       = 0x10FFFF
	surrogateMin  = 0xD800
	surrogateMax  = 0xDFFF
	replacement   = 0xFFFD
	continuation  = 0x80 // 10xxxxxx
	continuationM = 0xC0
)

// decodeRune decodes the next UTF-8 sequence of b. On success it returns
// the Unicode scalar value and the number of bytes consumed. It fails on
// empty or truncated input, stray or missing continuation bytes, overlong
// encodings, surrogate code points and values above U+10FFFF; a failed
// decode consumes no input.
func decodeRune(b []byte) (r rune, size int, ok bool) {
	if len(b) == 0 {
		return 0, 0, false
	}
	c0 := b[0]
	switch {
	case c0 < 0x80:
		return rune(c0), 1, true
	case c0&0xE0 == 0xC0:
		if len(b) < 2 || b[1]&continuationM != continuation {
			return 0, 0, false
		}
		r = rune(c0&0x1F)<<6 | rune(b[1]&0x3F)
		if r < 0x80 { // overlong
			return 0, 0, false
		}
		return r, 2, true
	case c0&0xF0 == 0xE0:
		if len(b) < 3 ||
			b[1]&continuationM != continuation ||
			b[2]&continuationM != continuation {
			return 0, 0, false
		}
		r = rune(c0&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
		if r < 0x800 { // overlong
			return 0, 0, false
		}
		if r >= surrogateMin && r <= surrogateMax {
			return 0, 0, false
		}
		return r, 3, true
	case c0&0xF8 == 0xF0:
		if len(b) < 4 ||
			b[1]&continuationM != continuation ||
			b[2]&continuationM != continuation ||
			b[3]&continuationM != continuation {
			return 0, 0, false
		}
		r = rune(c0&0x07)<<18 | rune(b[1]&0x3F)<<12 |
			rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F)
		if r < 0x10000 { // overlong
			return 0, 0, false
		}
		if r > maxRune {
			return 0, 0, false
		}
		return r, 4, true
	default:
		return 0, 0, false
	}
}

// appendRune appends the UTF-8 encoding of r to dst. r must be a valid
// Unicode scalar value in [0, U+10FFFF] outside the surrogate range;
// encoding never fails for such input.
func appendRune(dst []byte, r rune) []byte {
	switch {
	case r <= 0x7F:
		return append(dst, byte(r))
	case r <= 0x7FF:
		return append(dst,
			0xC0|byte(r>>6),
			continuation|byte(r)&0x3F)
	case r <= 0xFFFF:
		return append(dst,
			0xE0|byte(r>>12),
			continuation|byte(r>>6)&0x3F,
			continuation|byte(r)&0x3F)
	default:
		return append(dst,
			0xF0|byte(r>>18),
			continuation|byte(r>>12)&0x3F,
			continuation|byte(r>>6)&0x3F,
			continuation|byte(r)&0x3F)
	}
}
