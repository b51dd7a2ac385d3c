//go:build go1.18
// +build go1.18

package logic_test

import (
	"testing"

	"github.com/zephyrtronium/logic"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("not x and y or True")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := logic.ParseString(s)
		if err != nil {
			return
		}
		a := make(logic.Assignment)
		for _, name := range e.Vars() {
			a[name] = len(name)%2 == 0
		}
		if _, err := e.Eval(a); err != nil {
			t.Fatalf("evaluating %q with all of its variables: %v", s, err)
		}
	})
}

func FuzzSimplify(f *testing.F) {
	f.Add("(A or (not A)) and B")
	f.Add("(A and (not A)) or B")
	f.Add("not not (A and True) or False")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := logic.ParseString(s)
		if err != nil || len(e.Vars()) > 12 {
			return
		}
		r := logic.Simplify(e)
		if r.Size() > e.Size() {
			t.Fatalf("%q grew to %q", s, r)
		}
		eq, diff, err := logic.Equivalent(e, r)
		if err != nil {
			t.Fatal(err)
		}
		if !eq {
			t.Fatalf("%q simplified to %q, which differs at %v", s, r, diff)
		}
		if again := logic.Simplify(r); !again.Equal(r) {
			t.Fatalf("%q is not simplest: simplifies again to %q", r, again)
		}
	})
}
