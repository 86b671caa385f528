package islandjson

import "testing"

func TestLexer(t *testing.T) {
	tests := []struct {
		have string
		want []token
	}{
		{`{"a": null}`, []token{
			{Type: objectOToken, Position: [2]int{0, 0}},
			{Type: stringToken, Value: `"a"`, Position: [2]int{0, 1}},
			{Type: colonToken, Position: [2]int{0, 4}},
			{Type: nullToken, Position: [2]int{0, 6}},
			{Type: objectCToken, Position: [2]int{0, 10}},
		}},
		{`[false, -31.2, 5, "ab\"cd"]`, []token{
			{Type: arrayOToken, Position: [2]int{0, 0}},
			{Type: falseToken, Position: [2]int{0, 1}},
			{Type: commaToken, Position: [2]int{0, 6}},
			{Type: numberToken, Value: "-31.2", Position: [2]int{0, 8}},
			{Type: commaToken, Position: [2]int{0, 13}},
			{Type: numberToken, Value: "5", Position: [2]int{0, 15}},
			{Type: commaToken, Position: [2]int{0, 16}},
			{Type: stringToken, Value: `"ab\"cd"`, Position: [2]int{0, 18}},
			{Type: arrayCToken, Position: [2]int{0, 26}},
		}},
		{`{"a":{},"b":[],"c":true}`, []token{
			{Type: objectOToken, Position: [2]int{0, 0}},
			{Type: stringToken, Value: `"a"`, Position: [2]int{0, 1}},
			{Type: colonToken, Position: [2]int{0, 4}},
			{Type: objectOToken, Position: [2]int{0, 5}},
			{Type: objectCToken, Position: [2]int{0, 6}},
			{Type: commaToken, Position: [2]int{0, 7}},
			{Type: stringToken, Value: `"b"`, Position: [2]int{0, 8}},
			{Type: colonToken, Position: [2]int{0, 11}},
			{Type: arrayOToken, Position: [2]int{0, 12}},
			{Type: arrayCToken, Position: [2]int{0, 13}},
			{Type: commaToken, Position: [2]int{0, 14}},
			{Type: stringToken, Value: `"c"`, Position: [2]int{0, 15}},
			{Type: colonToken, Position: [2]int{0, 18}},
			{Type: trueToken, Position: [2]int{0, 19}},
			{Type: objectCToken, Position: [2]int{0, 23}},
		}},
		{"[1,\n 2.5e3]", []token{
			{Type: arrayOToken, Position: [2]int{0, 0}},
			{Type: numberToken, Value: "1", Position: [2]int{0, 1}},
			{Type: commaToken, Position: [2]int{0, 2}},
			{Type: numberToken, Value: "2.5e3", Position: [2]int{1, 1}},
			{Type: arrayCToken, Position: [2]int{1, 6}},
		}},
		{`0`, []token{
			{Type: numberToken, Value: "0", Position: [2]int{0, 0}},
		}},
		{`0.125`, []token{
			{Type: numberToken, Value: "0.125", Position: [2]int{0, 0}},
		}},
		{`"\\"`, []token{
			{Type: stringToken, Value: `"\\"`, Position: [2]int{0, 0}},
		}},
		{`""`, []token{
			{Type: stringToken, Value: `""`, Position: [2]int{0, 0}},
		}},
	}
outer:
	for _, test := range tests {
		lexc, q := lex([]byte(test.have))
		for _, w := range test.want {
			tk := <-lexc
			if tk != w {
				t.Errorf("have %v, got %s %v, want %s %v",
					test.have, tk, tk.Position, w, w.Position)
				q()
				continue outer
			}
		}
		if tk, ok := <-lexc; ok {
			t.Errorf("have %v, expected nothing, got %s", test.have, tk)
		}
	}
}

func TestLexerErr(t *testing.T) {
	tests := []struct {
		have string
		want token
	}{
		{`{"a": nul}`, token{
			Type:     errToken,
			Value:    "nul",
			Position: [2]int{0, 6},
		}},
		{`@`, token{
			Type:     errToken,
			Value:    "@",
			Position: [2]int{0, 0},
		}},
		{"[1,\n x]", token{
			Type:     errToken,
			Value:    "x",
			Position: [2]int{1, 1},
		}},
		{`"abc`, token{
			Type:     eofToken,
			Value:    `"abc`,
			Position: [2]int{0, 0},
		}},
		{`"ab\"`, token{
			Type:     eofToken,
			Value:    `"ab\"`,
			Position: [2]int{0, 0},
		}},
	}
outer:
	for _, test := range tests {
		lexc, q := lex([]byte(test.have))
		for tk := range lexc {
			if tk.Type != errToken && tk.Type != eofToken {
				continue
			}
			if tk != test.want {
				t.Errorf("have %v, got %s %v, want %s %v",
					test.have, tk, tk.Position, test.want, test.want.Position)
			}
			q()
			continue outer
		}
		t.Errorf("have %v, expected an error token", test.have)
	}
}
