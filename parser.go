package islandjson

// parser is a state machine creating a value tree from lex tokens.
// The tree under construction is threaded through the parser itself;
// the stack holds the currently open containers. The parser is only
// allowed to cancel the lexer when it stops consuming tokens.
type parser struct {
	in     <-chan token
	quitIn func()
	stack  []*Value
	key    string
	root   *Value
	prev   token
}

type parseFunc func(p *parser) (parseFunc, error)

// parse reads tokens from a channel and builds a value tree. On failure
// it returns a nil tree and the first error; the partially built tree is
// dropped as a whole.
func parse(ch <-chan token, quit func()) (*Value, error) {
	defer quit()
	p := &parser{
		in:     ch,
		quitIn: quit,
	}
	var err error
	for f := expectValue; f != nil && err == nil; f, err = f(p) {
	}
	if err != nil {
		return nil, err
	}
	return p.root, nil
}

// attach hands a finished value to its owner: the top of the container
// stack, or the root slot for the top-level value. Attaching to an object
// upserts under the pending key, so a duplicate key replaces and releases
// the earlier value.
func (p *parser) attach(v *Value) {
	if len(p.stack) == 0 {
		p.root = v
		return
	}
	top := p.stack[len(p.stack)-1]
	if top.Kind() == Object {
		top.Set(p.key, v)
	} else {
		top.Append(v)
	}
}

func (p *parser) top() *Value {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

func (p *parser) pop() {
	p.stack = p.stack[:len(p.stack)-1]
}

// endToken marks input exhaustion where the grammar still expects tokens.
func (p *parser) endToken() token {
	return token{Type: eofToken, Position: p.prev.Position}
}

// parseFunc's

func expectValue(p *parser) (parseFunc, error) {
	t, ok := <-p.in
	if !ok {
		return nil, newParseError("value", p.prev, p.endToken())
	}
	defer func() { p.prev = t }()
	switch t.Type {
	case numberToken:
		f, err := scanNumber(t.Value)
		if err != nil {
			return nil, newParseError("number", p.prev, t)
		}
		p.attach(NewNumber(f))
		return expectDelim, nil
	case stringToken:
		s, err := scanString(t.Value)
		if err != nil {
			return nil, newEscapeError(err, t)
		}
		p.attach(NewString(s))
		return expectDelim, nil
	case nullToken:
		p.attach(NewNull())
		return expectDelim, nil
	case trueToken:
		p.attach(NewBool(true))
		return expectDelim, nil
	case falseToken:
		p.attach(NewBool(false))
		return expectDelim, nil
	case arrayOToken:
		a := NewArray()
		p.attach(a)
		p.stack = append(p.stack, a)
		return expectValue, nil
	case objectOToken:
		o := NewObject()
		p.attach(o)
		p.stack = append(p.stack, o)
		return expectKey, nil
	case arrayCToken:
		// only an empty array may close here; a comma before ] is a
		// trailing comma
		if p.prev.Type == arrayOToken && p.top().Kind() == Array {
			p.pop()
			return expectDelim, nil
		}
		return nil, newParseError("value", p.prev, t)
	default:
		return nil, newParseError("value", p.prev, t)
	}
}

func expectKey(p *parser) (parseFunc, error) {
	t, ok := <-p.in
	if !ok {
		return nil, newParseError("key", p.prev, p.endToken())
	}
	if t.Type == objectCToken {
		if p.prev.Type == objectOToken && p.top().Kind() == Object {
			p.prev = t
			p.pop()
			return expectDelim, nil
		}
		return nil, newParseError("key", p.prev, t)
	}
	if t.Type != stringToken {
		return nil, newParseError("key", p.prev, t)
	}
	key, err := scanString(t.Value)
	if err != nil {
		return nil, newEscapeError(err, t)
	}
	p.key = key
	p.prev = t
	t, ok = <-p.in
	if !ok {
		return nil, newParseError("colon", p.prev, p.endToken())
	}
	defer func() { p.prev = t }()
	if t.Type != colonToken {
		return nil, newParseError("colon", p.prev, t)
	}
	return expectValue, nil
}

func expectDelim(p *parser) (parseFunc, error) {
	t, ok := <-p.in
	if !ok {
		if len(p.stack) == 0 {
			return nil, nil // all OK!
		}
		return nil, newParseError("delimiter", p.prev, p.endToken())
	}
	defer func() { p.prev = t }()
	if len(p.stack) == 0 {
		// trailing tokens after the top-level value
		return nil, newParseError("end of input", p.prev, t)
	}
	switch t.Type {
	case commaToken:
		if p.top().Kind() == Object {
			return expectKey, nil
		}
		return expectValue, nil
	case arrayCToken:
		if p.top().Kind() != Array {
			return nil, newParseError("object closing", p.prev, t)
		}
		p.pop()
		return expectDelim, nil
	case objectCToken:
		if p.top().Kind() != Object {
			return nil, newParseError("array closing", p.prev, t)
		}
		p.pop()
		return expectDelim, nil
	default:
		return nil, newParseError("delimiter", p.prev, t)
	}
}
