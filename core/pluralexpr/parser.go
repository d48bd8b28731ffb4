package pluralexpr

import (
	"fmt"
	"strconv"
)

// Binary operator precedence, matching a C-style boolean expression:
// modulo binds tightest, then comparisons, then &&, then ||.
var precedence = map[tokenType]int{
	tokenNot:   6,
	tokenMod:   5,
	tokenEq:    3,
	tokenNotEq: 3,
	tokenGt:    3,
	tokenGte:   3,
	tokenLt:    3,
	tokenLte:   3,
	tokenAnd:   2,
	tokenOr:    1,
}

// value is the result of evaluating a node: either an integer or a boolean.
type value struct {
	isBool bool
	b      bool
	i      int
}

func intValue(i int) value   { return value{i: i} }
func boolValue(b bool) value { return value{isBool: true, b: b} }

// node is one node of a parsed plural expression tree.
type node interface {
	eval(n int) (value, error)
}

// parse parses an expression into a tree using recursive descent with
// precedence climbing, in the manner of text/template: parse errors are
// raised as panics and recovered at the top.
func parse(expr string) (root node, err error) {
	defer func() {
		if r := recover(); r != nil {
			root = nil
			err = fmt.Errorf("%v", r)
		}
	}()
	p := &parser{stream: newTokenStream(expr)}
	root = p.parseExpression(0)
	p.expect(tokenEOF)
	return root, nil
}

type parser struct {
	stream *tokenStream
}

func (p *parser) expect(t tokenType) {
	next := p.stream.pop()
	if next.typ != t {
		panic(fmt.Sprintf("expected %q, got %s", t, next))
	}
}

func (p *parser) parseExpression(prec int) node {
	n := p.parsePrimary()
	var t token
	for {
		t = p.stream.pop()
		q, binary := precedence[t.typ], isBinaryOp(t.typ)
		if !binary || q < prec {
			break
		}
		n = newBinaryNode(t.typ, n, p.parseExpression(q+1))
	}
	p.stream.push(t)
	if prec == 0 && t.typ == tokenIf {
		return p.parseTernary(n)
	}
	return n
}

func (p *parser) parsePrimary() node {
	t := p.stream.pop()
	switch {
	case t.typ == tokenNot:
		return &notNode{p.parseExpression(precedence[tokenNot])}
	case t.typ == tokenLeftParen:
		n := p.parseExpression(0)
		p.expect(tokenRightParen)
		return n
	case t.typ == tokenInt:
		v, err := strconv.Atoi(t.val)
		if err != nil {
			panic(fmt.Sprintf("bad integer literal %q", t.val))
		}
		return intNode(v)
	case t.typ == tokenVar:
		return varNode{}
	}
	panic(fmt.Sprintf("unexpected token %s", t))
}

// parseTernary parses a right-leaning chain of cond ? a : b expressions.
func (p *parser) parseTernary(cond node) node {
	var t token
	n := cond
	for {
		if t = p.stream.pop(); t.typ != tokenIf {
			break
		}
		left := p.parseExpression(0)
		p.expect(tokenElse)
		right := p.parseExpression(0)
		n = &ternaryNode{cond: n, then: left, els: right}
	}
	p.stream.push(t)
	return n
}

func isBinaryOp(t tokenType) bool {
	switch t {
	case tokenMod, tokenEq, tokenNotEq, tokenGt, tokenGte, tokenLt, tokenLte, tokenAnd, tokenOr:
		return true
	}
	return false
}

func newBinaryNode(t tokenType, left, right node) node {
	return &binaryNode{op: t, left: left, right: right}
}

type intNode int

func (n intNode) eval(int) (value, error) { return intValue(int(n)), nil }

type varNode struct{}

func (varNode) eval(n int) (value, error) { return intValue(n), nil }

type notNode struct {
	operand node
}

func (n *notNode) eval(ctx int) (value, error) {
	v, err := n.operand.eval(ctx)
	if err != nil {
		return value{}, err
	}
	if !v.isBool {
		return value{}, fmt.Errorf("operator ! requires a boolean operand")
	}
	return boolValue(!v.b), nil
}

type binaryNode struct {
	op    tokenType
	left  node
	right node
}

func (n *binaryNode) eval(ctx int) (value, error) {
	l, err := n.left.eval(ctx)
	if err != nil {
		return value{}, err
	}
	r, err := n.right.eval(ctx)
	if err != nil {
		return value{}, err
	}

	switch n.op {
	case tokenAnd, tokenOr:
		if !l.isBool || !r.isBool {
			return value{}, fmt.Errorf("operator %s requires boolean operands", n.op)
		}
		if n.op == tokenAnd {
			return boolValue(l.b && r.b), nil
		}
		return boolValue(l.b || r.b), nil

	case tokenEq, tokenNotEq:
		// Equality is defined for two integers or two booleans.
		if l.isBool != r.isBool {
			return value{}, fmt.Errorf("operator %s requires operands of the same type", n.op)
		}
		eq := l.b == r.b
		if !l.isBool {
			eq = l.i == r.i
		}
		if n.op == tokenNotEq {
			eq = !eq
		}
		return boolValue(eq), nil
	}

	// The remaining operators are integer-only.
	if l.isBool || r.isBool {
		return value{}, fmt.Errorf("operator %s requires integer operands", n.op)
	}
	switch n.op {
	case tokenMod:
		if r.i == 0 {
			return value{}, fmt.Errorf("modulo by zero")
		}
		return intValue(l.i % r.i), nil
	case tokenGt:
		return boolValue(l.i > r.i), nil
	case tokenGte:
		return boolValue(l.i >= r.i), nil
	case tokenLt:
		return boolValue(l.i < r.i), nil
	case tokenLte:
		return boolValue(l.i <= r.i), nil
	}
	return value{}, fmt.Errorf("unknown operator %s", n.op)
}

type ternaryNode struct {
	cond node
	then node
	els  node
}

func (n *ternaryNode) eval(ctx int) (value, error) {
	c, err := n.cond.eval(ctx)
	if err != nil {
		return value{}, err
	}
	if !c.isBool {
		return value{}, fmt.Errorf("ternary condition must be boolean")
	}
	if c.b {
		return n.then.eval(ctx)
	}
	return n.els.eval(ctx)
}
