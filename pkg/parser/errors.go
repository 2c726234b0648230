package parser

import "fmt"

// ParseError is the single error kind the parser produces (§7): a failure
// at a specific byte offset. Diagnostics beyond a position and a message are
// outside the core.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Msg)
}
