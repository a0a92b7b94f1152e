package vcl

import "fmt"

// ParseError is the single error kind produced by the compiler. Every
// violation, lexical or structural, aborts the whole parse and is reported
// as one of these with a distinguishing message. Callers that need a
// boolean answer instead use ValidateExpression.
type ParseError struct {
	// Msg describes the violation.
	Msg string
	// Pos is the byte offset into the expression, or -1 when no position
	// applies (for example an empty expression).
	Pos int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return "vcl: " + e.Msg
	}
	return fmt.Sprintf("vcl: %s at offset %d", e.Msg, e.Pos)
}

// parseErrorf builds a positioned ParseError.
func parseErrorf(pos int, format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}
