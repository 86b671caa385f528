package islandjson

import (
	"strconv"

	"github.com/pkg/errors"
)

// scanNumber converts the text form of a numeric literal to a double.
// Conversion failures, including overflow and underflow, are lexical
// errors that abort the parse.
func scanNumber(text string) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "scan number %q", text)
	}
	return f, nil
}

// scanString strips the quotes off a string literal and unescapes the
// interior. The literal must be at least the two quote characters long.
func scanString(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", errors.Errorf("scan string: unterminated literal %q", lit)
	}
	s, err := unescape([]byte(lit[1 : len(lit)-1]))
	if err != nil {
		return "", err
	}
	return string(s), nil
}
