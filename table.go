package logic

import "strconv"

// MaxTableVars is the largest number of variables for which truth tables are
// enumerated.
const MaxTableVars = 24

// TableError is an error indicating an expression with too many variables to
// enumerate its truth table.
type TableError struct {
	// Vars is the number of variables involved.
	Vars int
}

func (err *TableError) Error() string {
	return "truth table over " + strconv.Itoa(err.Vars) + " variables exceeds limit of " + strconv.Itoa(MaxTableVars)
}

// Table calls fn with each row of the expression's truth table, stopping
// early if fn returns false. Rows are in binary counting order over Vars,
// with the first variable as the most significant bit and False before True.
// The assignment passed to fn is reused for each row, so fn must copy it to
// keep it.
func (e *Expr) Table(fn func(a Assignment, v bool) bool) error {
	return rows(e.names, func(a Assignment) bool {
		return fn(a, mustEval(e.n, a))
	})
}

// Equivalent reports whether a and b have the same truth value under every
// assignment to the variables of either. If they differ, the result includes
// an assignment where they do.
func Equivalent(a, b *Expr) (bool, Assignment, error) {
	names := union(a.names, b.names)
	var diff Assignment
	err := rows(names, func(x Assignment) bool {
		if mustEval(a.n, x) == mustEval(b.n, x) {
			return true
		}
		diff = make(Assignment, len(x))
		for k, v := range x {
			diff[k] = v
		}
		return false
	})
	if err != nil {
		return false, nil, err
	}
	return diff == nil, diff, nil
}

// rows calls fn with every assignment to names in binary counting order until
// fn returns false.
func rows(names []string, fn func(Assignment) bool) error {
	if len(names) > MaxTableVars {
		return &TableError{Vars: len(names)}
	}
	a := make(Assignment, len(names))
	k := uint(len(names))
	for i := uint64(0); i < 1<<k; i++ {
		for j, name := range names {
			a[name] = i>>(k-1-uint(j))&1 != 0
		}
		if !fn(a) {
			break
		}
	}
	return nil
}

// mustEval evaluates n under an assignment known to cover all its variables.
func mustEval(n *node, a Assignment) bool {
	v, err := n.eval(a)
	if err != nil {
		panic("logic: incomplete assignment: " + err.Error())
	}
	return v
}

// union merges two sorted lists of names.
func union(x, y []string) []string {
	r := make([]string, 0, len(x)+len(y))
	for len(x) > 0 && len(y) > 0 {
		switch {
		case x[0] < y[0]:
			r = append(r, x[0])
			x = x[1:]
		case y[0] < x[0]:
			r = append(r, y[0])
			y = y[1:]
		default:
			r = append(r, x[0])
			x, y = x[1:], y[1:]
		}
	}
	r = append(r, x...)
	return append(r, y...)
}
