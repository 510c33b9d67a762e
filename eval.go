package numeric

// Eval evaluates the expression. An empty expression evaluates to zero.
func (e *Expr) Eval() (Decimal, error) {
	if e.n == nil {
		return Zero(e.cfg), nil
	}
	return e.n.eval(e.cfg)
}

// eval computes the node's value.
func (n *node) eval(cfg Config) (Decimal, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeNeg, nodeNop:
		v, err := n.left.eval(cfg)
		if err != nil {
			return Decimal{}, err
		}
		if n.kind == nodeNeg {
			return Zero(cfg).Minus(v), nil
		}
		return Zero(cfg).Plus(v), nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		l, err := n.left.eval(cfg)
		if err != nil {
			return Decimal{}, err
		}
		r, err := n.right.eval(cfg)
		if err != nil {
			return Decimal{}, err
		}
		switch n.kind {
		case nodeAdd:
			return l.Plus(r), nil
		case nodeSub:
			return l.Minus(r), nil
		case nodeMul:
			return l.MultipliedBy(r), nil
		default:
			return l.DividedBy(r)
		}
	default:
		panic("numeric: invalid AST node " + n.kind.String())
	}
}

// Evaluate parses and evaluates an arithmetic expression and returns the
// result formatted to the configured number of decimal places. Input with no
// tokens evaluates to the empty string.
func Evaluate(text string, cfg Config) (string, error) {
	e, err := Parse(text, cfg)
	if err != nil {
		return "", err
	}
	if e.Empty() {
		return "", nil
	}
	r, err := e.Eval()
	if err != nil {
		return "", err
	}
	return r.Format(), nil
}

// EvaluateDecimal parses and evaluates an arithmetic expression. Unlike
// Evaluate, the result is not truncated, and input with no tokens is zero.
func EvaluateDecimal(text string, cfg Config) (Decimal, error) {
	e, err := Parse(text, cfg)
	if err != nil {
		return Decimal{}, err
	}
	return e.Eval()
}
