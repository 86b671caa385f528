package islandjson

import (
	"errors"
	"testing"
)

func TestUnescape(t *testing.T) {
	tests := []struct {
		have string
		want string
	}{
		{``, ``},
		{`plain`, `plain`},
		{`a\nb`, "a\nb"},
		{`\"\\\/\b\f\n\r\t`, "\"\\/\b\f\n\r\t"},
		{`\u0041`, "A"},
		{`\u00e9`, "\xc3\xa9"},
		{`\u00E9`, "\xc3\xa9"},
		{`\u20ac`, "\xe2\x82\xac"},
		{`\ufffd`, "\xef\xbf\xbd"},
		{`\ud83d\ude00`, "\xf0\x9f\x98\x80"},
		{`\ud800\udc00`, "\xf0\x90\x80\x80"},
		{`\udbff\udfff`, "\xf4\x8f\xbf\xbf"},
		{"h\xc3\xa9llo", "h\xc3\xa9llo"}, // raw UTF-8 passes through
		{`mixed \u0030\n`, "mixed 0\n"},
	}
	for _, test := range tests {
		got, err := unescape([]byte(test.have))
		if err != nil {
			t.Errorf("unescape(%q): %v", test.have, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("unescape(%q) = %q, want %q", test.have, got, test.want)
		}
	}
}

func TestUnescapeError(t *testing.T) {
	tests := []struct {
		have string
		want error
	}{
		{`\x`, ErrInvalidEscape},
		{`\0`, ErrInvalidEscape},
		{`ab\qcd`, ErrInvalidEscape},
		{`\u12`, ErrInvalidUnicode},         // too few hex digits
		{`\u123g`, ErrInvalidUnicode},       // bad hex digit
		{`\ud800`, ErrInvalidUnicode},       // lone high surrogate
		{`\ud800x`, ErrInvalidUnicode},      // high surrogate, no escape after
		{`\ud800\n`, ErrInvalidUnicode},     // high surrogate, wrong escape
		{`\ud800\u0041`, ErrInvalidUnicode}, // pair is not a low surrogate
		{`\ud800\ud800`, ErrInvalidUnicode},
		{`\udc00`, ErrInvalidUnicode}, // lone low surrogate
		{`\udfff`, ErrInvalidUnicode},
	}
	for _, test := range tests {
		got, err := unescape([]byte(test.have))
		if !errors.Is(err, test.want) {
			t.Errorf("unescape(%q) err = %v, want %v", test.have, err, test.want)
		}
		if got != nil {
			t.Errorf("unescape(%q) returned a partial result %q", test.have, got)
		}
	}
}

// All high/low surrogate escape pairs must combine into one scalar in
// [0x10000, 0x10FFFF].
func TestUnescapeSurrogateRange(t *testing.T) {
	const hex = "0123456789abcdef"
	pair := func(hi, lo int) string {
		b := []byte(`\u0000\u0000`)
		for i := 0; i < 4; i++ {
			b[5-i] = hex[hi>>(4*i)&0xF]
			b[11-i] = hex[lo>>(4*i)&0xF]
		}
		return string(b)
	}
	for _, tc := range [][2]int{
		{0xD800, 0xDC00}, {0xD800, 0xDFFF},
		{0xDBFF, 0xDC00}, {0xDBFF, 0xDFFF},
		{0xD83D, 0xDE00},
	} {
		got, err := unescape([]byte(pair(tc[0], tc[1])))
		if err != nil {
			t.Errorf("unescape(%s): %v", pair(tc[0], tc[1]), err)
			continue
		}
		r, size, ok := decodeRune(got)
		if !ok || size != len(got) || r < 0x10000 || r > 0x10FFFF {
			t.Errorf("pair %04X/%04X decoded to %U", tc[0], tc[1], r)
		}
		want := 0x10000 + rune(tc[0]-0xD800)<<10 + rune(tc[1]-0xDC00)
		if r != want {
			t.Errorf("pair %04X/%04X = %U, want %U", tc[0], tc[1], r, want)
		}
	}
}

func TestAppendQuoted(t *testing.T) {
	tests := []struct {
		have  string
		ascii bool
		want  string
	}{
		{"", false, `""`},
		{"abc", false, `"abc"`},
		{`a"b`, false, `"a\"b"`},
		{`a\b`, false, `"a\\b"`},
		{"a\nb\tc", false, `"a\nb\tc"`},
		{"\b\f\r", false, `"\b\f\r"`},
		{"\x01", false, `"\u0001"`},
		{"\x1f", false, `"\u001F"`},
		{"h\xc3\xa9llo", false, "\"h\xc3\xa9llo\""},
		{"h\xc3\xa9llo", true, `"h\u00E9llo"`},
		{"\xe2\x82\xac", true, `"\u20AC"`},
		{"\xf0\x9f\x98\x80", false, "\"\xf0\x9f\x98\x80\""},
		{"\xf0\x9f\x98\x80", true, `"\uD83D\uDE00"`},
		// malformed bytes degrade to U+FFFD, never fail
		{"a\xffb", false, "\"a\xef\xbf\xbdb\""},
		{"a\xffb", true, `"a\uFFFDb"`},
		{"a\xff\x80\x80b", false, "\"a\xef\xbf\xbdb\""},
		{"a\xff\x80\x80\x80\x80b", false, "\"a\xef\xbf\xbd\xef\xbf\xbdb\""},
		{"\xed\xa0\x80", false, "\"\xef\xbf\xbd\""}, // stray surrogate encoding
		{"\xc0\x80", false, "\"\xef\xbf\xbd\""},     // overlong
		{"a\xc2", false, "\"a\xef\xbf\xbd\""},       // truncated at end
	}
	for _, test := range tests {
		got := appendQuoted(nil, test.have, test.ascii)
		if string(got) != test.want {
			t.Errorf("appendQuoted(%q, ascii=%t) = %q, want %q",
				test.have, test.ascii, got, test.want)
		}
	}
}
