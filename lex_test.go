package logic

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// identifiers
		{"A", []lexToken{{text: "A", kind: tokenIdent, pos: 1}}, 0},
		{"a1", []lexToken{{text: "a1", kind: tokenIdent, pos: 1}}, 0},
		{"_x_9", []lexToken{{text: "_x_9", kind: tokenIdent, pos: 1}}, 0},
		{"π", []lexToken{{text: "π", kind: tokenIdent, pos: 1}}, 0},
		{"A B", []lexToken{{text: "A", kind: tokenIdent, pos: 1}, {text: "B", kind: tokenIdent, pos: 3}}, 0},
		{"  A", []lexToken{{text: "A", kind: tokenIdent, pos: 3}}, 0},
		// keywords
		{"not", []lexToken{{text: "not", kind: tokenNot, pos: 1}}, 0},
		{"and", []lexToken{{text: "and", kind: tokenAnd, pos: 1}}, 0},
		{"or", []lexToken{{text: "or", kind: tokenOr, pos: 1}}, 0},
		{"True", []lexToken{{text: "True", kind: tokenConst, pos: 1}}, 0},
		{"False", []lexToken{{text: "False", kind: tokenConst, pos: 1}}, 0},
		// keywords are case-sensitive and whole words
		{"true", []lexToken{{text: "true", kind: tokenIdent, pos: 1}}, 0},
		{"AND", []lexToken{{text: "AND", kind: tokenIdent, pos: 1}}, 0},
		{"Android", []lexToken{{text: "Android", kind: tokenIdent, pos: 1}}, 0},
		{"notA", []lexToken{{text: "notA", kind: tokenIdent, pos: 1}}, 0},
		{"Trueish", []lexToken{{text: "Trueish", kind: tokenIdent, pos: 1}}, 0},
		{"not A", []lexToken{{text: "not", kind: tokenNot, pos: 1}, {text: "A", kind: tokenIdent, pos: 5}}, 0},
		// parentheses
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, 0},
		{"(A)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "A", kind: tokenIdent, pos: 2}, {text: ")", kind: tokenClose, pos: 3}}, 0},
		{"not(A)", []lexToken{{text: "not", kind: tokenNot, pos: 1}, {text: "(", kind: tokenOpen, pos: 4}, {text: "A", kind: tokenIdent, pos: 5}, {text: ")", kind: tokenClose, pos: 6}}, 0},
		// erroneous symbols
		{"#", []lexToken{{pos: 1}}, 1},
		{"A # B", []lexToken{{text: "A", kind: tokenIdent, pos: 1}, {pos: 3}, {text: "B", kind: tokenIdent, pos: 5}}, 1},
		{"A&B", []lexToken{{text: "A", kind: tokenIdent, pos: 1}, {pos: 2}, {text: "B", kind: tokenIdent, pos: 3}}, 1},
		{"1", []lexToken{{pos: 1}}, 1},
		{"@@", []lexToken{{pos: 1}, {pos: 2}}, 2},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next("")
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if c.errs > 0 {
					c.errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		if got, err := scan.next(""); got.kind != tokenEOF || err != nil {
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestLexError(t *testing.T) {
	scan := lex(strings.NewReader("A and $"))
	for i := 0; i < 2; i++ {
		if _, err := scan.next(""); err != nil {
			t.Fatalf("unexpected error on token %d: %v", i, err)
		}
	}
	_, err := scan.next("")
	var lerr *LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("want *LexError, got %#v", err)
	}
	if lerr.Char != '$' || lerr.Col != 7 || lerr.Pos() != 7 {
		t.Errorf("wrong error details: %+v", lerr)
	}
	if msg := lerr.Error(); !strings.Contains(msg, "lex error") || !strings.Contains(msg, "'$'") || !strings.Contains(msg, "7") {
		t.Errorf("bad error message %q", msg)
	}
}

func TestLexStopOn(t *testing.T) {
	scan := lex(strings.NewReader("A\nB"))
	if tok, err := scan.next("\n"); err != nil || tok.kind != tokenIdent {
		t.Fatalf("first token: %v, %v", tok, err)
	}
	if tok, err := scan.next("\n"); err != nil || tok.kind != tokenEOF || tok.pos != 2 {
		t.Errorf("newline should be EOF at 2, got %v, %v", tok, err)
	}
	if _, err := scan.next("\n"); err != io.EOF {
		t.Errorf("scanning after EOF should give io.EOF, got %v", err)
	}
}

func TestLexPush(t *testing.T) {
	scan := lex(strings.NewReader("A and  "))
	a, err := scan.next("")
	if err != nil {
		t.Fatal(err)
	}
	scan.push(a)
	if tok, err := scan.next(""); err != nil || tok != a {
		t.Errorf("pushed token should come back: want %v, got %v, %v", a, tok, err)
	}
	and, err := scan.next("")
	if err != nil || and.kind != tokenAnd || and.pos != 3 {
		t.Fatalf("second token: %v, %v", and, err)
	}
	scan.push(and)
	if tok := scan.must(); tok != and {
		t.Errorf("must should return the pushed token: want %v, got %v", and, tok)
	}
	eof, err := scan.next("")
	if err != nil || eof.kind != tokenEOF || eof.pos != 8 {
		t.Errorf("EOF should be at 8 after trailing spaces, got %v, %v", eof, err)
	}
	scan.push(eof)
	func() {
		defer func() {
			if recover() == nil {
				t.Error("pushing twice should panic")
			}
		}()
		scan.push(eof)
	}()
	scan.must()
	func() {
		defer func() {
			if recover() == nil {
				t.Error("must with nothing pushed should panic")
			}
		}()
		scan.must()
	}()
}

func TestIsVarName(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"A", true},
		{"abc_123", true},
		{"_", true},
		{"π", true},
		{"", false},
		{"1A", false},
		{"A-B", false},
		{"A B", false},
		{"not", false},
		{"and", false},
		{"or", false},
		{"True", false},
		{"False", false},
		{"true", true},
	}
	for _, c := range cases {
		if got := IsVarName(c.name); got != c.ok {
			t.Errorf("IsVarName(%q): want %t, got %t", c.name, c.ok, got)
		}
	}
}
