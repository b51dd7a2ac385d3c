package logic

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenIdent is a variable name.
	tokenIdent
	// tokenConst is True or False.
	tokenConst
	// tokenNot, tokenAnd, and tokenOr are the operator keywords.
	tokenNot
	tokenAnd
	tokenOr
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenIdent:
		return "Ident"
	case tokenConst:
		return "Const"
	case tokenNot:
		return "Not"
	case tokenAnd:
		return "And"
	case tokenOr:
		return "Or"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Reserved words. Each is lexed as its own token rather than as a variable.
const (
	KeywordNot   = "not"
	KeywordAnd   = "and"
	KeywordOr    = "or"
	KeywordTrue  = "True"
	KeywordFalse = "False"
)

var keywords = map[string]tokenKind{
	KeywordNot:   tokenNot,
	KeywordAnd:   tokenAnd,
	KeywordOr:    tokenOr,
	KeywordTrue:  tokenConst,
	KeywordFalse: tokenConst,
}

// IsVarName reports whether name can be used as a variable: it must be an
// identifier and must not be a reserved word.
func IsVarName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && !isIdentStart(r) || !isIdentPart(r) {
			return false
		}
	}
	_, resv := keywords[name]
	return !resv
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// punct maps the single-rune tokens to their kinds.
var punct = map[rune]tokenKind{
	'(': tokenOpen,
	')': tokenClose,
}

// lexer splits a rune stream into tokens. The parser may hand back one token
// of lookahead with push.
type lexer struct {
	in io.RuneScanner
	// col is the column of the next rune to read.
	col     int
	pending *lexToken
	ended   bool
}

func lex(in io.RuneScanner) *lexer {
	return &lexer{in: in, col: 1}
}

// push hands a token back so that the next call to next or must returns it.
// Only one token may be pending at a time.
func (l *lexer) push(tok lexToken) {
	if l.pending != nil {
		panic("logic: token already pushed back")
	}
	l.pending = &tok
}

// must returns the pending token. Panics if there is none.
func (l *lexer) must() lexToken {
	if l.pending == nil {
		panic("logic: no token pushed back")
	}
	tok := *l.pending
	l.pending = nil
	return tok
}

func (l *lexer) read() (rune, error) {
	r, _, err := l.in.ReadRune()
	if err == nil {
		l.col++
	}
	return r, err
}

func (l *lexer) unread() {
	if err := l.in.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next returns the pending token if there is one and otherwise scans a new
// token. Whitespace runes in wseof end the input. The end of the input yields
// one EOF token; every call after that returns io.EOF.
func (l *lexer) next(wseof string) (lexToken, error) {
	if l.pending != nil {
		return l.must(), nil
	}
	if l.ended {
		return lexToken{}, io.EOF
	}
	r, at, err := l.skip(wseof)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return lexToken{pos: at}, err
		}
		l.ended = true
		return lexToken{kind: tokenEOF, pos: at}, nil
	}
	tok := lexToken{pos: at}
	if isIdentStart(r) {
		tok.text, err = l.ident(r)
		tok.kind = tokenIdent
		if k, ok := keywords[tok.text]; ok {
			tok.kind = k
		}
		return tok, err
	}
	k, ok := punct[r]
	if !ok {
		return tok, &LexError{Char: r, Col: at}
	}
	tok.text, tok.kind = string(r), k
	return tok, nil
}

// skip consumes whitespace and returns the first other rune along with its
// column. A rune in wseof or the end of the input gives io.EOF with the column
// where the input stops.
func (l *lexer) skip(wseof string) (rune, int, error) {
	for {
		at := l.col
		r, err := l.read()
		if err != nil {
			return 0, at, err
		}
		if !unicode.IsSpace(r) {
			return r, at, nil
		}
		if strings.ContainsRune(wseof, r) {
			return r, at, io.EOF
		}
	}
}

// ident scans the rest of an identifier beginning with first.
func (l *lexer) ident(first rune) (string, error) {
	var b strings.Builder
	b.WriteRune(first)
	for {
		r, err := l.read()
		switch {
		case errors.Is(err, io.EOF):
			return b.String(), nil
		case err != nil:
			return b.String(), err
		case !isIdentPart(r):
			l.unread()
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

// LexError indicates a character that cannot begin any token. It implements
// InputError.
type LexError struct {
	// Char is the offending character.
	Char rune
	// Col is the position of the character, counted in runes from 1.
	Col int
}

func (err *LexError) Error() string {
	return "lex error at " + errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *LexError) Pos() int {
	return err.Col
}
