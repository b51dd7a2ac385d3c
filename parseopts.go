package logic

import (
	"strconv"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	eofopt   string
	depthopt int
)

// parsectx holds general data for parsing.
type parsectx struct {
	// names is the set of variable names that have been seen this parse.
	names map[string]bool
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
	// maxdepth is the deepest nesting of parentheses and negations allowed,
	// or 0 for no limit.
	maxdepth int
}

// StopOn tells the parser to treat a list of whitespace characters as ending
// the expression. Whitespace does not end an expression where an operand is
// expected, e.g. at the beginning of an expression or following an operator
// or open parenthesis. This allows parsing several expressions from one
// reader, e.g. one per line with StopOn('\n').
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("logic: cannot stop on " + strconv.QuoteRune(r))
		}
		if !have(r) {
			v = append(v, r)
		}
	}
	return eofopt(v)
}

func (o eofopt) parseOption(p parsectx) parsectx {
	p.wseof = string(o)
	return p
}

// MaxDepth limits how deeply parentheses and negations may nest. Deeper input
// fails with a SyntaxError with ReasonTooDeep. Zero removes the limit, which
// is the default. Panics if n is negative.
func MaxDepth(n int) ParseOption {
	if n < 0 {
		panic("logic: negative max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}
