package islandjson

import (
	"io"

	"github.com/pkg/errors"
)

// Parse reads one JSON document from data and builds its value tree.
// On failure it returns a nil tree and a *ParseError; StatusOf extracts
// the status code. Trailing non-whitespace after the top-level value is
// a parse error.
func Parse(data []byte) (*Value, error) {
	return parse(lex(data))
}

// ParseString is Parse for string input.
func ParseString(s string) (*Value, error) {
	return Parse([]byte(s))
}

// NewJSONReader reads one JSON document from r and builds its value tree.
func NewJSONReader(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return Parse(data)
}

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool {
	_, err := Parse(data)
	return err == nil
}

// MarshalJSON implements the json.Marshaler interface for Value.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v.Kind() == Invalid {
		return nil, errors.New("marshal of invalid value")
	}
	return v.appendJSON(nil, 0, false), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for Value.
func (v *Value) UnmarshalJSON(data []byte) error {
	m, err := Parse(data)
	if err != nil {
		return err
	}
	*v = *m
	return nil
}
