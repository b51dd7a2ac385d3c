package logic

import (
	"io"
	"strings"
)

// expr    = or
// or      = and { 'or' and }
// and     = primary { 'and' primary }
// primary = name | 'True' | 'False' | '(' or ')' | 'not' primary

// Parse parses an expression. The given options are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	p := parsectx{
		names: make(map[string]bool),
	}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	n, err := parseor(scan, &p, p.wseof, 0)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.kind != tokenEOF {
		return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Reason: ReasonTrailing}
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// parseor parses a disjunction of one or more conjunctions. If there is no
// error, then parseor pushes the last token it scans, including EOF. ws is the
// set of whitespace runes that end the expression where an operator could
// appear.
func parseor(scan *lexer, p *parsectx, ws string, depth int) (*node, error) {
	n, err := parseand(scan, p, ws, depth)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next(ws)
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOr {
			scan.push(tok)
			return n, nil
		}
		rhs, err := parseand(scan, p, ws, depth)
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeOr, left: n, right: rhs}
	}
}

// parseand parses a conjunction of one or more primaries. Like parseor, it
// pushes the last token it scans.
func parseand(scan *lexer, p *parsectx, ws string, depth int) (*node, error) {
	n, err := parseprimary(scan, p, depth)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next(ws)
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenAnd {
			scan.push(tok)
			return n, nil
		}
		rhs, err := parseprimary(scan, p, depth)
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeAnd, left: n, right: rhs}
	}
}

// parseprimary parses a single operand. Any encountered token must be valid
// as the start of an operand, and whitespace normally lexed as EOF is ignored.
func parseprimary(scan *lexer, p *parsectx, depth int) (*node, error) {
	// Don't use EOF whitespace where an operand is required.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenIdent:
		p.names[tok.text] = true
		return &node{kind: nodeVar, name: tok.text}, nil
	case tokenConst:
		return constant(tok.text == KeywordTrue), nil
	case tokenNot:
		if err := p.deeper(tok, depth); err != nil {
			return nil, err
		}
		x, err := parseprimary(scan, p, depth+1)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNot, left: x}, nil
	case tokenOpen:
		if err := p.deeper(tok, depth); err != nil {
			return nil, err
		}
		// Line breaks inside parentheses never end the expression.
		x, err := parseor(scan, p, "", depth+1)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, &SyntaxError{Col: end.pos, Token: end.text, Reason: ReasonMissingClose, Open: tok.pos}
		}
		return x, nil
	case tokenEOF:
		return nil, &SyntaxError{Col: tok.pos, Reason: ReasonUnexpectedEOF}
	case tokenAnd, tokenOr, tokenClose:
		return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Reason: ReasonUnexpectedToken}
	default:
		panic("logic: unknown token: " + tok.String())
	}
}

// deeper checks that nesting one level below depth at tok is allowed.
func (p *parsectx) deeper(tok lexToken, depth int) error {
	if p.maxdepth > 0 && depth >= p.maxdepth {
		return &SyntaxError{Col: tok.pos, Token: tok.text, Reason: ReasonTooDeep}
	}
	return nil
}
