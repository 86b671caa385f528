package islandjson

import "bytes"

// lexer generates tokens from one JSON document.
// After sending an err- or eof-token the lexer has to quit.
type lexer struct {
	mode               lexFunc
	data               []byte
	start              int
	pos                int
	out                chan<- token
	quit               <-chan struct{}
	row, col           int
	startRow, startCol int
}

type lexFunc func(*lexer) lexFunc

func lexSend(l *lexer, f lexFunc, t token) lexFunc {
	select {
	case <-l.quit:
		return nil
	case l.out <- t:
		return f
	}
}

// lex reads in a JSON document and generates tokens for the parser.
// The stream ends with the input; quit releases the lexer early when the
// parser stops consuming.
func lex(data []byte) (stream <-chan token, quit func()) {
	ch := make(chan token, 1)
	q := make(chan struct{})
	l := &lexer{
		mode: noneMode,
		data: data,
		out:  ch,
		quit: q,
	}
	go func() {
		for f := l.mode; f != nil; f = f(l) {
		}
		close(ch)
	}()
	return ch, func() { close(q) }
}

// fwd consumes one byte, tracking row and column.
func (l *lexer) fwd() {
	if l.data[l.pos] == '\n' {
		l.row++
		l.col = 0
	} else {
		l.col++
	}
	l.pos++
}

// markStart records the position of the token about to be scanned.
func (l *lexer) markStart() {
	l.start = l.pos
	l.startRow, l.startCol = l.row, l.col
}

func noneMode(l *lexer) lexFunc {
	if l.pos >= len(l.data) {
		return nil
	}
	switch b := l.data[l.pos]; b {
	case ' ', '\t', '\r', '\n':
		l.fwd()
		l.start = l.pos
		return noneMode
	case '{', '}', '[', ']', ',', ':':
		m := lexSend(l, noneMode, newToken(b, l.row, l.col))
		l.fwd()
		l.start = l.pos
		return m
	case '"':
		l.markStart()
		l.fwd()
		return stringMode
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		l.markStart()
		return numberMode
	default:
		l.markStart()
		return otherMode
	}
}

// stringMode scans a string literal including both quotes. Escaped bytes
// are skipped pairwise so an escaped quote or backslash cannot terminate
// the literal; unescaping is left to scanString.
func stringMode(l *lexer) lexFunc {
	if l.pos >= len(l.data) {
		lexSend(l, nil, token{
			Type:     eofToken,
			Value:    string(l.data[l.start:]),
			Position: [2]int{l.startRow, l.startCol},
		})
		return nil
	}
	switch l.data[l.pos] {
	case '\\':
		l.fwd()
		if l.pos < len(l.data) {
			l.fwd()
		}
		return stringMode
	case '"':
		l.fwd()
		m := lexSend(l, noneMode, token{
			Type:     stringToken,
			Value:    string(l.data[l.start:l.pos]),
			Position: [2]int{l.startRow, l.startCol},
		})
		l.start = l.pos
		return m
	default:
		l.fwd()
		return stringMode
	}
}

// numberMode scans the span of number-ish characters; scanNumber decides
// later whether the text is a usable number.
func numberMode(l *lexer) lexFunc {
	if l.pos >= len(l.data) {
		lexSend(l, nil, token{
			Type:     numberToken,
			Value:    string(l.data[l.start:]),
			Position: [2]int{l.startRow, l.startCol},
		})
		return nil
	}
	switch l.data[l.pos] {
	case '-', '+', '.', 'e', 'E',
		'0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		l.fwd()
		return numberMode
	default:
		m := lexSend(l, noneMode, token{
			Type:     numberToken,
			Value:    string(l.data[l.start:l.pos]),
			Position: [2]int{l.startRow, l.startCol},
		})
		l.start = l.pos
		return m
	}
}

// otherMode scans the keywords null, true and false. Anything else up to
// the next delimiter is an unexpected-character error.
func otherMode(l *lexer) lexFunc {
	rest := l.data[l.start:]
	for _, kw := range []struct {
		word string
		typ  tokenType
	}{
		{"null", nullToken},
		{"true", trueToken},
		{"false", falseToken},
	} {
		if !bytes.HasPrefix(rest, []byte(kw.word)) {
			continue
		}
		m := lexSend(l, noneMode, token{
			Type:     kw.typ,
			Position: [2]int{l.startRow, l.startCol},
		})
		for range kw.word {
			l.fwd()
		}
		l.start = l.pos
		return m
	}
	length := 0
outer:
	for _, c := range rest {
		switch c {
		case ' ', '\t', '\r', '\n', '{', '}', '[', ']', ',', ':':
			break outer
		}
		length++
	}
	if length == 0 {
		length = 1
	}
	lexSend(l, nil, token{
		Type:     errToken,
		Value:    string(rest[:length]),
		Position: [2]int{l.startRow, l.startCol},
	})
	return nil
}
