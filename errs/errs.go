/*
File    : sparrow/errs/errs.go
*/

// Package errs names the six error kinds the language distinguishes and
// provides one typed error value, PositionedError, that carries a Kind and a
// line:column position in the "[%d:%d] KIND: message" shape, so a caller can
// errors.As against it and read its Kind instead of pattern-matching message
// text. Only the two stages that track token positions (lexer, parser)
// construct it, through LexErr and ParseErr. The interpreter itself does not carry
// positions on every AST node, so eval- and builtin-level failures stay
// plain kind-prefixed fmt.Errorf values; see DESIGN.md for why that split is
// drawn here rather than threading position information through every node.
package errs

import "fmt"

// Kind identifies one of the six error categories the language distinguishes.
type Kind string

const (
	Lex     Kind = "LexError"
	Parse   Kind = "ParseError"
	Name    Kind = "NameError"
	Type    Kind = "TypeError"
	Index   Kind = "IndexError"
	Runtime Kind = "RuntimeError"
)

// PositionedError is a taxonomy-tagged error carrying the line:column of the
// offending token.
type PositionedError struct {
	Kind    Kind
	Line    int
	Column  int
	Message string
}

func (e *PositionedError) Error() string {
	return fmt.Sprintf("[%d:%d] %s: %s", e.Line, e.Column, e.Kind, e.Message)
}

func newPositioned(kind Kind, line, col int, format string, args ...any) error {
	return &PositionedError{Kind: kind, Line: line, Column: col, Message: fmt.Sprintf(format, args...)}
}

// LexErr reports a tokenization failure at a line:column.
func LexErr(line, col int, format string, args ...any) error {
	return newPositioned(Lex, line, col, format, args...)
}

// ParseErr reports a parse failure at a line:column.
func ParseErr(line, col int, format string, args ...any) error {
	return newPositioned(Parse, line, col, format, args...)
}
