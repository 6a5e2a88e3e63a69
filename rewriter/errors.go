package rewriter

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrUnexpectedEOF indicates the input ended inside a multi-line
	// construct (literal, expression field, comment, continuation line).
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrMalformed indicates a structural violation at a known line:
	// a stray brace, a bracket mismatch, an unescaped line end inside a
	// literal, and the like.
	ErrMalformed = errors.New("malformed source")
)

// earlyEnd wraps ErrUnexpectedEOF. End of input carries no useful line
// number: the interesting position is wherever the unclosed construct
// began, which the message names instead.
func earlyEnd(msg string) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedEOF, msg)
}

// malformed wraps ErrMalformed with the line the violation was detected on.
func (r *Rewriter) malformed(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, r.cur.Line(), fmt.Sprintf(format, args...))
}
