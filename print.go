package logic

import "strings"

// Binding strength of each node kind when printing. Higher binds tighter.
const (
	precOr int8 = iota + 1
	precAnd
	precPrimary
)

func (n *node) prec() int8 {
	switch n.kind {
	case nodeOr:
		return precOr
	case nodeAnd:
		return precAnd
	default:
		return precPrimary
	}
}

// canonical formats n in the input syntax with only the parentheses needed to
// parse back to the same tree.
func (n *node) canonical() string {
	var b strings.Builder
	n.print(&b)
	return b.String()
}

func (n *node) print(b *strings.Builder) {
	switch n.kind {
	case nodeVar:
		b.WriteString(n.name)
	case nodeConst:
		b.WriteString(constText(n.value))
	case nodeNot:
		b.WriteString(KeywordNot)
		b.WriteByte(' ')
		n.left.operand(b, n.left.prec() < precPrimary)
	case nodeAnd, nodeOr:
		p := n.prec()
		n.left.operand(b, n.left.prec() < p)
		if n.kind == nodeAnd {
			b.WriteString(" " + KeywordAnd + " ")
		} else {
			b.WriteString(" " + KeywordOr + " ")
		}
		// Both operators are left-associative, so a right operand of the
		// same operator needs parentheses to keep its grouping.
		n.right.operand(b, n.right.prec() <= p)
	default:
		panic("logic: cannot print node kind " + n.kind.String())
	}
}

func (n *node) operand(b *strings.Builder, paren bool) {
	if !paren {
		n.print(b)
		return
	}
	b.WriteByte('(')
	n.print(b)
	b.WriteByte(')')
}
