package logic

import "strconv"

// Expr is a parsed or constructed boolean expression. Exprs are never
// modified after they are created.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the sorted list of variable names used in the expression.
	names []string
}

// newExpr wraps a tree that the caller owns exclusively.
func newExpr(n *node) *Expr {
	seen := make(map[string]bool)
	n.vars(seen)
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(seen)),
	}
	for k := range seen {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex
}

// Var creates a variable. Panics if name is not a valid variable name.
func Var(name string) *Expr {
	if !IsVarName(name) {
		panic("logic: invalid variable name " + strconv.Quote(name))
	}
	return &Expr{n: &node{kind: nodeVar, name: name}, names: []string{name}}
}

// Const creates a constant.
func Const(v bool) *Expr {
	return &Expr{n: constant(v), names: []string{}}
}

// Not creates the negation of x.
func Not(x *Expr) *Expr {
	return newExpr(&node{kind: nodeNot, left: x.n.clone()})
}

// And creates the conjunction of x and y.
func And(x, y *Expr) *Expr {
	return newExpr(&node{kind: nodeAnd, left: x.n.clone(), right: y.n.clone()})
}

// Or creates the disjunction of x and y.
func Or(x, y *Expr) *Expr {
	return newExpr(&node{kind: nodeOr, left: x.n.clone(), right: y.n.clone()})
}

// Vars returns the variable names used in the expression, in sorted order.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// Size returns the number of nodes in the expression tree.
func (e *Expr) Size() int {
	return e.n.size()
}

// Equal reports whether e and f are structurally equal, i.e. they have the
// same shape with the same variables and constants in the same places.
// Logically equivalent expressions with different shapes are not equal; use
// Equivalent for that.
func (e *Expr) Equal(f *Expr) bool {
	return e.n.equal(f.n)
}

// String formats the expression in the input syntax using only the
// parentheses needed to preserve its structure. Parsing the result produces
// an equal expression.
func (e *Expr) String() string {
	return e.n.canonical()
}
