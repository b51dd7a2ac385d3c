package logic

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Stats summarizes the truth table of an expression.
type Stats struct {
	// Vars is the number of distinct variables.
	Vars int
	// Rows is the number of rows in the truth table, 2^Vars.
	Rows *big.Int
	// Satisfying is the number of rows where the expression is true.
	Satisfying *big.Int
	// Probability is the chance that the expression is true when each
	// variable is independently true or false with equal chance.
	Probability *big.Float
	// Entropy is the Shannon entropy of the expression's value in bits under
	// the same distribution. It is 0 for tautologies and contradictions and 1
	// when exactly half of the rows are satisfying.
	Entropy *big.Float
}

// Tautology reports whether every row satisfies the expression.
func (s *Stats) Tautology() bool {
	return s.Satisfying.Cmp(s.Rows) == 0
}

// Contradiction reports whether no row satisfies the expression.
func (s *Stats) Contradiction() bool {
	return s.Satisfying.Sign() == 0
}

// Analyze enumerates the truth table of the expression and computes its
// statistics to prec bits of precision. If prec is 0, the precision is 64.
func (e *Expr) Analyze(prec uint) (*Stats, error) {
	if prec == 0 {
		prec = 64
	}
	var sat int64
	err := e.Table(func(a Assignment, v bool) bool {
		if v {
			sat++
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	s := Stats{
		Vars:       len(e.names),
		Rows:       new(big.Int).Lsh(big.NewInt(1), uint(len(e.names))),
		Satisfying: big.NewInt(sat),
	}
	rows := new(big.Float).SetPrec(prec).SetInt(s.Rows)
	s.Probability = new(big.Float).SetPrec(prec).SetInt(s.Satisfying)
	s.Probability.Quo(s.Probability, rows)
	s.Entropy = entropy(s.Probability, prec)
	return &s, nil
}

// entropy computes -p log2 p - (1-p) log2 (1-p) for 0 <= p <= 1.
func entropy(p *big.Float, prec uint) *big.Float {
	h := new(big.Float).SetPrec(prec)
	if p.Sign() == 0 || p.Cmp(big.NewFloat(1)) == 0 {
		return h
	}
	q := new(big.Float).SetPrec(prec).SetInt64(1)
	q.Sub(q, p)
	h.Add(plogp(p, prec), plogp(q, prec))
	ln2 := new(big.Float).SetPrec(prec).SetInt64(2)
	bigfloat.Log(ln2, ln2)
	h.Quo(h, ln2)
	return h.Neg(h)
}

// plogp computes x ln x for 0 < x.
func plogp(x *big.Float, prec uint) *big.Float {
	in := new(big.Float).SetPrec(prec).Set(x)
	r := new(big.Float).SetPrec(prec)
	bigfloat.Log(r, in)
	return r.Mul(r, x)
}
