package logic

import (
	"strconv"

	"go.uber.org/zap"
)

// SimplifyOption is an option for simplification.
type SimplifyOption interface {
	simplifyOption(simplifyctx) simplifyctx
}

type (
	disableopt []string
	traceopt   struct{ log *zap.Logger }
	recordopt  struct{ r *Report }
	parseopt   []ParseOption
)

// simplifyctx holds the settings for one call to Simplify.
type simplifyctx struct {
	// disabled is the set of rule names to skip.
	disabled map[string]bool
	// log receives rule firings at debug level.
	log *zap.Logger
	// report, if not nil, receives the statistics of the call.
	report *Report
	// parse holds the options SimplifyString parses with.
	parse []ParseOption
}

func newSimplifyctx(opts []SimplifyOption) simplifyctx {
	var c simplifyctx
	for _, opt := range opts {
		c = opt.simplifyOption(c)
	}
	return c
}

// DisableRules tells the simplifier not to apply the named rules. Panics if
// any name is not in the catalog.
func DisableRules(names ...string) SimplifyOption {
	for _, name := range names {
		if !IsRule(name) {
			panic("logic: unknown rule " + strconv.Quote(name))
		}
	}
	return disableopt(append([]string(nil), names...))
}

func (o disableopt) simplifyOption(s simplifyctx) simplifyctx {
	// Always make a copy.
	m := make(map[string]bool, len(s.disabled)+len(o))
	for k := range s.disabled {
		m[k] = true
	}
	for _, k := range o {
		m[k] = true
	}
	s.disabled = m
	return s
}

// Trace logs each rule application at debug level, along with a summary of
// each call. A nil logger disables tracing.
func Trace(log *zap.Logger) SimplifyOption {
	return traceopt{log}
}

func (o traceopt) simplifyOption(s simplifyctx) simplifyctx {
	s.log = o.log
	return s
}

// Record fills r with statistics about the simplification.
func Record(r *Report) SimplifyOption {
	return recordopt{r}
}

func (o recordopt) simplifyOption(s simplifyctx) simplifyctx {
	s.report = o.r
	return s
}

// ParseWith sets the options SimplifyString uses to parse its input, e.g.
// MaxDepth to bound the nesting of untrusted input. Simplify ignores it.
// Later ParseWith options add to earlier ones.
func ParseWith(opts ...ParseOption) SimplifyOption {
	return parseopt(append([]ParseOption(nil), opts...))
}

func (o parseopt) simplifyOption(s simplifyctx) simplifyctx {
	s.parse = append(append([]ParseOption(nil), s.parse...), o...)
	return s
}

// Report describes one call to Simplify.
type Report struct {
	// Passes is the number of passes over the whole tree, including the final
	// pass that found nothing to rewrite.
	Passes int
	// Fired counts the applications of each rule by name. Rules that never
	// applied are absent.
	Fired map[string]int
	// Before and After are the node counts of the input and the result.
	Before, After int
}

// Rewrites returns the total number of rule applications.
func (r *Report) Rewrites() int {
	k := 0
	for _, v := range r.Fired {
		k += v
	}
	return k
}

type simplifier struct {
	rules []*Rule
	log   *zap.Logger
	fired map[string]int
}

// Simplify applies the rule catalog everywhere in e until no rule applies,
// and returns the result. The result is logically equivalent to e and never
// has more nodes. e itself is not modified.
func Simplify(e *Expr, opts ...SimplifyOption) *Expr {
	c := newSimplifyctx(opts)
	s := simplifier{
		rules: make([]*Rule, 0, len(catalog)),
		log:   c.log,
		fired: make(map[string]int),
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	for i := range catalog {
		if !c.disabled[catalog[i].Name] {
			s.rules = append(s.rules, &catalog[i])
		}
	}

	n := e.n.clone()
	passes := 0
	for {
		var changed bool
		n, changed = s.simplify(n)
		passes++
		if !changed {
			break
		}
	}
	r := newExpr(n)
	before, after := e.Size(), r.Size()
	if ce := s.log.Check(zap.DebugLevel, "simplified"); ce != nil {
		ce.Write(
			zap.String("input", e.String()),
			zap.String("result", r.String()),
			zap.Int("passes", passes),
			zap.Int("before", before),
			zap.Int("after", after),
		)
	}
	if c.report != nil {
		*c.report = Report{
			Passes: passes,
			Fired:  s.fired,
			Before: before,
			After:  after,
		}
	}
	return r
}

// simplify rewrites the tree rooted at n, which the simplifier owns, and
// returns the new root along with whether anything changed. Operands are
// simplified first. If a rule then applies to n, its result is simplified
// again, since the rewrite can expose another rewrite at the same position.
func (s *simplifier) simplify(n *node) (*node, bool) {
	var changed, c bool
	switch n.kind {
	case nodeVar, nodeConst:
		return n, false
	case nodeNot:
		n.left, changed = s.simplify(n.left)
	case nodeAnd, nodeOr:
		n.left, changed = s.simplify(n.left)
		n.right, c = s.simplify(n.right)
		changed = changed || c
	default:
		panic("logic: cannot simplify node kind " + n.kind.String())
	}
	for _, r := range s.rules {
		if r.kind != n.kind {
			continue
		}
		m := r.apply(n)
		if m == nil {
			continue
		}
		s.fired[r.Name]++
		if ce := s.log.Check(zap.DebugLevel, "rule fired"); ce != nil {
			ce.Write(
				zap.String("rule", r.Name),
				zap.String("from", n.canonical()),
				zap.String("to", m.canonical()),
			)
		}
		m, _ = s.simplify(m)
		return m, true
	}
	return n, changed
}

// SimplifyString parses and simplifies an expression and returns the
// simplified expression in its canonical form. The error, if any, is a
// *LexError or *SyntaxError describing why src could not be parsed. Parsing
// uses the options given with ParseWith.
func SimplifyString(src string, opts ...SimplifyOption) (string, error) {
	e, err := ParseString(src, newSimplifyctx(opts).parse...)
	if err != nil {
		return "", err
	}
	return Simplify(e, opts...).String(), nil
}
