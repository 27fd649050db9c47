package jsonpath

import "fmt"

// ParseError describes a syntax error in a path expression: the byte
// offset of the offending token, a short human-readable message, and the
// set of token kinds that would have been accepted at that position
// (§7, ParseError).
type ParseError struct {
	Pos      int
	Message  string
	Expected []Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jsonpath: %s (at byte %d)", e.Message, e.Pos)
}

func parseErrorf(pos int, expected []Token, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...), Expected: expected}
}

// EvalError describes the one fatal evaluation case: a slice step of zero
// (§7). sliceIndices builds it, but selector application discards it and
// yields no match, and the parser already rejects a literal zero step, so
// no public method returns it. Every other shape mismatch also produces no
// match rather than an error.
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("jsonpath: %s", e.Message)
}
