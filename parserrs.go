package logic

import "strconv"

// SyntaxReason classifies a SyntaxError.
type SyntaxReason int8

const (
	_ SyntaxReason = iota
	// ReasonUnexpectedToken is a token that cannot appear where it was found,
	// e.g. "and" at the start of an operand.
	ReasonUnexpectedToken
	// ReasonUnexpectedEOF is input ending where an operand is required, e.g.
	// after a dangling "and".
	ReasonUnexpectedEOF
	// ReasonMissingClose is an open parenthesis with no matching close.
	ReasonMissingClose
	// ReasonTrailing is a token left over after a complete expression.
	ReasonTrailing
	// ReasonTooDeep is nesting beyond the limit set with MaxDepth.
	ReasonTooDeep
)

func (r SyntaxReason) String() string {
	switch r {
	case ReasonUnexpectedToken:
		return "unexpected token"
	case ReasonUnexpectedEOF:
		return "unexpected end of input"
	case ReasonMissingClose:
		return "missing close parenthesis"
	case ReasonTrailing:
		return "trailing tokens"
	case ReasonTooDeep:
		return "expression nested too deeply"
	default:
		return "SyntaxReason(" + strconv.Itoa(int(r)) + ")"
	}
}

// SyntaxError is an error indicating a token sequence that is not a complete
// expression. It implements InputError.
type SyntaxError struct {
	// Col is the position of the token at fault.
	Col int
	// Token is the text of the token at fault. It is empty at the end of
	// input.
	Token string
	// Reason is the kind of problem.
	Reason SyntaxReason
	// Open is the position of the unmatched open parenthesis when Reason is
	// ReasonMissingClose.
	Open int
}

func (err *SyntaxError) Error() string {
	var msg string
	switch err.Reason {
	case ReasonUnexpectedToken:
		msg = "unexpected " + strconv.Quote(err.Token) + ", expected operand"
	case ReasonUnexpectedEOF:
		msg = "unexpected end of input, expected operand"
	case ReasonMissingClose:
		msg = "open parenthesis at column " + strconv.Itoa(err.Open) + " has no close parenthesis"
		if err.Token != "" {
			msg += ", found " + strconv.Quote(err.Token)
		}
	case ReasonTrailing:
		msg = "unexpected " + strconv.Quote(err.Token) + " after complete expression"
	default:
		msg = err.Reason.String()
		if err.Token != "" {
			msg += " at " + strconv.Quote(err.Token)
		}
	}
	return "syntax error at " + errpos(err.Col, msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "column " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*LexError)(nil)
)
