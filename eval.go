package logic

import "strconv"

// Assignment gives truth values to variables.
type Assignment map[string]bool

// String formats the assignment as name=value pairs in sorted name order.
func (a Assignment) String() string {
	names := make([]string, 0, len(a))
	for k := range a {
		names = append(names, k)
	}
	sortstrs(names)
	b := make([]byte, 0, 8*len(names))
	for i, k := range names {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, k...)
		b = append(b, '=')
		b = append(b, constText(a[k])...)
	}
	return string(b)
}

// Eval computes the truth value of the expression under an assignment. If a
// variable in the expression is missing from the assignment, the result is a
// *NameError.
func (e *Expr) Eval(a Assignment) (bool, error) {
	return e.n.eval(a)
}

func (n *node) eval(a Assignment) (bool, error) {
	switch n.kind {
	case nodeVar:
		v, ok := a[n.name]
		if !ok {
			return false, &NameError{Name: n.name}
		}
		return v, nil
	case nodeConst:
		return n.value, nil
	case nodeNot:
		v, err := n.left.eval(a)
		if err != nil {
			return false, err
		}
		return !v, nil
	case nodeAnd:
		l, err := n.left.eval(a)
		if err != nil {
			return false, err
		}
		// Evaluate both sides so that missing variables are always reported.
		r, err := n.right.eval(a)
		if err != nil {
			return false, err
		}
		return l && r, nil
	case nodeOr:
		l, err := n.left.eval(a)
		if err != nil {
			return false, err
		}
		r, err := n.right.eval(a)
		if err != nil {
			return false, err
		}
		return l || r, nil
	default:
		panic("logic: invalid AST node " + n.kind.String())
	}
}

// NameError is an error from a lookup for a variable that is missing from the
// assignment used to evaluate an expression.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
