package logic

// Rule names, for use with DisableRules and configuration files.
const (
	RuleDoubleNegation   = "double-negation"
	RuleConstantNegation = "constant-negation"
	RuleAnnihilatorAnd   = "annihilator-and"
	RuleIdentityAnd      = "identity-and"
	RuleIdempotentAnd    = "idempotent-and"
	RuleExcludedMiddle   = "excluded-middle"
	RuleAnnihilatorOr    = "annihilator-or"
	RuleIdentityOr       = "identity-or"
	RuleIdempotentOr     = "idempotent-or"
	RuleContradiction    = "contradiction"
)

// Rule is one law of boolean algebra that Simplify applies. Every rule
// replaces a node with one of its own descendants or with a constant, so
// every application strictly shrinks the tree.
type Rule struct {
	// Name identifies the rule.
	Name string
	// Law describes the rewrite, e.g. "not (not X) = X".
	Law string

	// kind is the kind of node the rule can rewrite.
	kind nodeKind
	// apply returns the replacement for n, or nil if the rule does not match.
	// n has the rule's kind.
	apply func(n *node) *node
}

// catalog is the list of rules in the order Simplify tries them.
var catalog = []Rule{
	{
		Name:  RuleDoubleNegation,
		Law:   "not (not X) = X",
		kind:  nodeNot,
		apply: doubleNegation,
	},
	{
		Name:  RuleConstantNegation,
		Law:   "not True = False, not False = True",
		kind:  nodeNot,
		apply: constantNegation,
	},
	{
		Name:  RuleAnnihilatorAnd,
		Law:   "X and False = False",
		kind:  nodeAnd,
		apply: annihilator(false),
	},
	{
		Name:  RuleIdentityAnd,
		Law:   "X and True = X",
		kind:  nodeAnd,
		apply: identity(true),
	},
	{
		Name:  RuleIdempotentAnd,
		Law:   "X and X = X",
		kind:  nodeAnd,
		apply: idempotent,
	},
	{
		Name:  RuleExcludedMiddle,
		Law:   "(X or not X) and Y = Y",
		kind:  nodeAnd,
		apply: cancel(nodeOr),
	},
	{
		Name:  RuleAnnihilatorOr,
		Law:   "X or True = True",
		kind:  nodeOr,
		apply: annihilator(true),
	},
	{
		Name:  RuleIdentityOr,
		Law:   "X or False = X",
		kind:  nodeOr,
		apply: identity(false),
	},
	{
		Name:  RuleIdempotentOr,
		Law:   "X or X = X",
		kind:  nodeOr,
		apply: idempotent,
	},
	{
		Name:  RuleContradiction,
		Law:   "(X and not X) or Y = Y",
		kind:  nodeOr,
		apply: cancel(nodeAnd),
	},
}

// Rules returns the rule catalog in the order Simplify tries the rules.
func Rules() []Rule {
	return append(([]Rule)(nil), catalog...)
}

// IsRule reports whether name is the name of a rule in the catalog.
func IsRule(name string) bool {
	for _, r := range catalog {
		if r.Name == name {
			return true
		}
	}
	return false
}

func doubleNegation(n *node) *node {
	if n.left.kind == nodeNot {
		return n.left.left
	}
	return nil
}

func constantNegation(n *node) *node {
	if n.left.kind == nodeConst {
		return constant(!n.left.value)
	}
	return nil
}

// annihilator creates a rule matching a binary node with the constant v as
// either operand, which forces the result to v.
func annihilator(v bool) func(n *node) *node {
	return func(n *node) *node {
		if n.left.isConst(v) || n.right.isConst(v) {
			return constant(v)
		}
		return nil
	}
}

// identity creates a rule matching a binary node with the constant v as
// either operand, which leaves the other operand as the result.
func identity(v bool) func(n *node) *node {
	return func(n *node) *node {
		switch {
		case n.right.isConst(v):
			return n.left
		case n.left.isConst(v):
			return n.right
		}
		return nil
	}
}

func idempotent(n *node) *node {
	if n.left.equal(n.right) {
		return n.left
	}
	return nil
}

// cancel creates a rule matching a binary node where one operand is a node of
// the given kind joining some X with not X. The inner node is then the
// identity of the outer operator (X or not X is True under and; X and not X
// is False under or), so the result is the other operand.
func cancel(inner nodeKind) func(n *node) *node {
	return func(n *node) *node {
		switch {
		case n.left.kind == inner && n.left.left.negates(n.left.right):
			return n.right
		case n.right.kind == inner && n.right.left.negates(n.right.right):
			return n.left
		}
		return nil
	}
}
