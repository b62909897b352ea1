/*
File    : slcc/parser/diagnostics.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/slcc/lexer"
)

// SyntaxErrorKind tags which syntactic mismatch a SyntaxError reports.
// Syntactic errors are first-failure-fatal: the parser stops at the first
// one it hits, unlike the analyzer's accumulated semantic Diagnostics.
type SyntaxErrorKind int

const (
	// TopLevelStatementExpected is raised when the token stream holds
	// anything other than a function declaration at top level.
	TopLevelStatementExpected SyntaxErrorKind = iota
	// UnexpectedToken is raised when a specific token kind was required
	// and a different one was found.
	UnexpectedToken
	// ExpressionExpected is raised when a primary expression was required
	// and the current token cannot start one.
	ExpressionExpected
	// StatementExpected is raised when a statement was required and the
	// current token cannot start one.
	StatementExpected
	// AssignmentExpected is raised when an expression statement is
	// followed by neither `;` nor a recognized assignment operator.
	AssignmentExpected
)

// SyntaxError is the parser's sole diagnostic type. It always carries the
// offending token's position; UnexpectedToken additionally names the set of
// token kinds that would have been accepted.
type SyntaxError struct {
	Kind     SyntaxErrorKind
	Expected []lexer.Kind
	Found    lexer.Token
	Position lexer.Position
}

func (e SyntaxError) Error() string {
	switch e.Kind {
	case TopLevelStatementExpected:
		return fmt.Sprintf("%s: expected a function declaration at top level, found %s", e.Position, e.Found.Kind)
	case UnexpectedToken:
		return fmt.Sprintf("%s: expected %v, found %s", e.Position, e.Expected, e.Found.Kind)
	case ExpressionExpected:
		return fmt.Sprintf("%s: expected an expression, found %s", e.Position, e.Found.Kind)
	case StatementExpected:
		return fmt.Sprintf("%s: expected a statement, found %s", e.Position, e.Found.Kind)
	case AssignmentExpected:
		return fmt.Sprintf("%s: expected an assignment operator, found %s", e.Position, e.Found.Kind)
	default:
		return fmt.Sprintf("%s: syntax error near %s", e.Position, e.Found.Kind)
	}
}

func newUnexpectedToken(found lexer.Token, expected ...lexer.Kind) *SyntaxError {
	return &SyntaxError{Kind: UnexpectedToken, Expected: expected, Found: found, Position: found.Position}
}

func newTopLevelStatementExpected(found lexer.Token) *SyntaxError {
	return &SyntaxError{Kind: TopLevelStatementExpected, Found: found, Position: found.Position}
}

func newExpressionExpected(found lexer.Token) *SyntaxError {
	return &SyntaxError{Kind: ExpressionExpected, Found: found, Position: found.Position}
}

func newStatementExpected(found lexer.Token) *SyntaxError {
	return &SyntaxError{Kind: StatementExpected, Found: found, Position: found.Position}
}

func newAssignmentExpected(found lexer.Token) *SyntaxError {
	return &SyntaxError{Kind: AssignmentExpected, Found: found, Position: found.Position}
}
