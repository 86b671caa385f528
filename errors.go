package islandjson

import (
	"errors"
	"fmt"
)

// Common errors returned by the container operations of Value.
var (
	ErrNotObject = errors.New("not an object")
	ErrNotArray  = errors.New("not an array")
)

// Errors of the escape codec. Both abort a parse; StatusOf maps them to
// their status codes.
var (
	ErrInvalidEscape  = errors.New("invalid escape sequence")
	ErrInvalidUnicode = errors.New("invalid unicode escape")
)

// Status is the result code of a parse. A failed parse reports exactly
// one status and yields no tree.
type Status uint8

const (
	Success Status = iota
	UnexpectedCharacter
	UnexpectedEndOfInput
	InvalidEscape
	InvalidUnicode
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case UnexpectedCharacter:
		return "unexpected character"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case InvalidEscape:
		return "invalid escape"
	case InvalidUnicode:
		return "invalid unicode"
	default:
		return "unknown status"
	}
}

// ParseError captures information on errors when parsing.
type ParseError struct {
	status Status
	msg    string
	token  token
	before token
	err    error
}

func newParseError(msg string, before, after token) *ParseError {
	status := UnexpectedCharacter
	if after.Type == eofToken {
		status = UnexpectedEndOfInput
	}
	return &ParseError{
		status: status,
		msg:    msg,
		before: before,
		token:  after,
	}
}

// newEscapeError wraps a failure of the escape codec at token t.
func newEscapeError(err error, t token) *ParseError {
	status := InvalidEscape
	if errors.Is(err, ErrInvalidUnicode) {
		status = InvalidUnicode
	}
	return &ParseError{status: status, token: t, err: err}
}

func (e *ParseError) Error() string {
	row, col := e.Where()
	if e.err != nil {
		return fmt.Sprintf("%d:%d: %v", row+1, col+1, e.err)
	}
	if e.before == (token{}) {
		return fmt.Sprintf("%d:%d: expected %s, got %s",
			row+1, col+1, e.msg, e.token)
	}
	return fmt.Sprintf("%d:%d: expected %s after %s, got %s",
		row+1, col+1, e.msg, e.before, e.token)
}

func (e *ParseError) Unwrap() error { return e.err }

// Status returns the result code of the failed parse.
func (e *ParseError) Status() Status { return e.status }

// Where returns the zero-based row and column of the offending token.
func (e *ParseError) Where() (row, col int) {
	return e.token.Position[0], e.token.Position[1]
}

// StatusOf maps an error returned by the parse entry points to its status
// code. A nil error is Success.
func StatusOf(err error) Status {
	if err == nil {
		return Success
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.status
	}
	switch {
	case errors.Is(err, ErrInvalidUnicode):
		return InvalidUnicode
	case errors.Is(err, ErrInvalidEscape):
		return InvalidEscape
	default:
		return UnexpectedCharacter
	}
}
