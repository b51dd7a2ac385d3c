// Package logic simplifies boolean expressions.
//
// Expressions are written with variables, the constants True and False, the
// operators not, and, and or, and parentheses. "not" binds tighter than
// "and", which binds tighter than "or", so "not A and B or C" is the same as
// "((not A) and B) or C".
//
// Simplification applies a fixed catalog of algebraic laws (double negation,
// identity, annihilation, idempotence, excluded middle, contradiction) until
// none of them applies anywhere in the tree. Every law removes nodes, so this
// always terminates. The result is equivalent to the input but is not
// guaranteed to be the shortest equivalent expression:
//
//	s, err := logic.SimplifyString("(A or (not A)) and B")
//	// s == "B"
package logic
