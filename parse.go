package numeric

import "strings"

// Expression = [ '+' | '-' ] Term { ( '+' | '-' ) Term }
// Term       = Factor { ( '*' | '/' ) Factor }
// Factor     = '(' Expression ')' | Number
// Number     = literal
//
// A leading sign applies only at the start of an Expression. Because adjacent
// operator runes lex as one token, "2*-3" and "1+(2)" do not parse.

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression, or nil if the input had no
	// tokens.
	n   *node
	cfg Config
}

// parser holds the token stream of one parse.
type parser struct {
	toks []lexToken
	tok  lexToken
	i    int
	cfg  Config
}

// Parse parses an arithmetic expression. Number literals are parsed with cfg,
// and cfg is the configuration of the expression's result. Input containing
// no tokens parses as an empty expression.
func Parse(text string, cfg Config) (*Expr, error) {
	p := parser{toks: lex(text), cfg: cfg.std()}
	p.tok = p.toks[0]
	if p.tok.kind == tokenEOF {
		return &Expr{cfg: p.cfg}, nil
	}
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, p.unexpected("end of input")
	}
	return &Expr{n: n, cfg: p.cfg}, nil
}

// next advances to the next token. The EOF token is never passed.
func (p *parser) next() {
	if p.tok.kind == tokenEOF {
		return
	}
	p.i++
	p.tok = p.toks[p.i]
}

// is returns whether the current token is the operator op.
func (p *parser) is(op string) bool {
	return p.tok.kind == tokenOp && p.tok.text == op
}

// match consumes the operator op or returns a *ParseError.
func (p *parser) match(op string) error {
	if !p.is(op) {
		return p.unexpected(op)
	}
	p.next()
	return nil
}

func (p *parser) unexpected(want string) error {
	return &ParseError{Col: p.tok.pos, Want: want, Got: p.tok.text}
}

func (p *parser) expression() (*node, error) {
	var n *node
	switch {
	case p.is("+"), p.is("-"):
		// Unary sign: the term is applied to an implicit zero.
		kind := nodeNeg
		if p.is("+") {
			kind = nodeNop
		}
		p.next()
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: rhs}
	default:
		var err error
		n, err = p.term()
		if err != nil {
			return nil, err
		}
	}
	for p.is("+") || p.is("-") {
		kind := nodeAdd
		if p.is("-") {
			kind = nodeSub
		}
		p.next()
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
	return n, nil
}

func (p *parser) term() (*node, error) {
	n, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.is("*") || p.is("/") {
		kind := nodeMul
		if p.is("/") {
			kind = nodeDiv
		}
		p.next()
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
	return n, nil
}

func (p *parser) factor() (*node, error) {
	if !p.is("(") {
		return p.number()
	}
	p.next()
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.match(")"); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) number() (*node, error) {
	if p.tok.kind != tokenLit {
		return nil, p.unexpected("number")
	}
	v, err := ParseDecimal(p.tok.text, p.cfg)
	if err != nil {
		return nil, &ParseError{Col: p.tok.pos, Want: "number", Got: p.tok.text, Err: err}
	}
	n := &node{kind: nodeNum, text: p.tok.text, val: v}
	p.next()
	return n, nil
}

// Empty returns whether the expression has no terms.
func (e *Expr) Empty() bool {
	return e.n == nil
}

// Config returns the configuration the expression was parsed with.
func (e *Expr) Config() Config {
	return e.cfg
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	if e.n == nil {
		return ""
	}
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}
