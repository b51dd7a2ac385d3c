package logic

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	name  string
	value bool

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeVar   // name is the variable
	nodeConst // value is the constant

	nodeNot // negate left
	nodeAnd // left and right
	nodeOr  // left or right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeVar:
		return "Var"
	case nodeConst:
		return "Const"
	case nodeNot:
		return "Not"
	case nodeAnd:
		return "And"
	case nodeOr:
		return "Or"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

var (
	nodeTrue  = node{kind: nodeConst, value: true}
	nodeFalse = node{kind: nodeConst, value: false}
)

// constant creates a new constant node.
func constant(v bool) *node {
	if v {
		n := nodeTrue
		return &n
	}
	n := nodeFalse
	return &n
}

// isConst reports whether n is the constant v.
func (n *node) isConst(v bool) bool {
	return n.kind == nodeConst && n.value == v
}

// equal reports whether n and m are structurally equal: the same shape with
// the same variable names and constants.
func (n *node) equal(m *node) bool {
	if n == m {
		return true
	}
	if n == nil || m == nil || n.kind != m.kind {
		return false
	}
	switch n.kind {
	case nodeVar:
		return n.name == m.name
	case nodeConst:
		return n.value == m.value
	case nodeNot:
		return n.left.equal(m.left)
	case nodeAnd, nodeOr:
		return n.left.equal(m.left) && n.right.equal(m.right)
	default:
		panic("logic: invalid node kind " + n.kind.String())
	}
}

// negates reports whether n is exactly not m or m is exactly not n.
func (n *node) negates(m *node) bool {
	if n.kind == nodeNot && n.left.equal(m) {
		return true
	}
	return m.kind == nodeNot && m.left.equal(n)
}

// size counts the nodes in the tree rooted at n.
func (n *node) size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.size() + n.right.size()
}

// clone makes a deep copy of n.
func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	return &node{
		kind:  n.kind,
		name:  n.name,
		value: n.value,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}

// vars adds the variable names in n to names.
func (n *node) vars(names map[string]bool) {
	if n == nil {
		return
	}
	if n.kind == nodeVar {
		names[n.name] = true
	}
	n.left.vars(names)
	n.right.vars(names)
}

// String formats n with every operand parenthesized. The result is valid
// input and parses to the same tree.
func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeVar:
		b.WriteString(n.name)
	case nodeConst:
		b.WriteString(constText(n.value))
	case nodeNot:
		b.WriteString("not (")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeAnd, nodeOr:
		b.WriteByte('(')
		n.left.fmt(b)
		if n.kind == nodeAnd {
			b.WriteString(") and (")
		} else {
			b.WriteString(") or (")
		}
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("logic: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func constText(v bool) string {
	if v {
		return KeywordTrue
	}
	return KeywordFalse
}
