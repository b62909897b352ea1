/*
File    : slcc/analyzer/diagnostic.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Semantic diagnostics, as distinct from the parser's syntactic SyntaxError:
these never abort analysis. Every check that finds a problem appends one
Diagnostic to the running list and, where it can, still produces a usable
type (often `any`) so later checks aren't drowned in a cascade of
consequential errors.
*/
package analyzer

import (
	"fmt"

	"github.com/akashmaji946/slcc/lexer"
	"github.com/akashmaji946/slcc/langtype"
)

// Kind enumerates every semantic diagnostic this analyzer can emit.
type Kind int

const (
	DuplicatedIdentifier Kind = iota
	IdentifierNotFound
	MainFunctionWithParameters
	MainFunctionWithReturn
	MissingMain
	MissingTypeOrExpression
	UnaryOperatorOnlyApplicableToInteger
	UnaryOperatorOnlyApplicableToNumbers
	UnaryOperatorOnlyApplicableToBooleans
	InvalidRangeOperands
	IdentifierNotVariableConstOrParam
	IdentifierNotCallable
	InvalidNumberOfParameters
	InvalidParameterType
	TypeMismatch
	EqualityTypeMismatch
	InvalidOperator
	ValueCannotBeReassigned
	InvalidLeftOperand
	InvalidRightOperand
	InvalidBreak
	InvalidContinue
	InvalidReturn
	IdentifierNotIndexable
	InvalidIndexType
	CannotReturnArray
	CannotReturnFunction
	ImmediateArrayUsageWithoutAssignment
	ExpectedType
	InvalidArrayElement
)

// Diagnostic is one semantic finding: a Kind, the position it was found at,
// the identifier name involved (if any), and the expected/found types
// involved (if any) -- kinds about types (ExpectedType, TypeMismatch,
// InvalidParameterType, the operator, operand, range, index and array-element
// kinds, and the unary-operator kinds) populate Expected and/or Found; the
// rest leave them zero-valued.
type Diagnostic struct {
	Kind     Kind
	Position lexer.Position
	Name     string
	Expected langtype.Type
	Found    langtype.Type
}

func (d Diagnostic) Error() string {
	switch d.Kind {
	case DuplicatedIdentifier:
		return fmt.Sprintf("%s: duplicated identifier %q", d.Position, d.Name)
	case IdentifierNotFound:
		return fmt.Sprintf("%s: identifier %q not found", d.Position, d.Name)
	case MainFunctionWithParameters:
		return fmt.Sprintf("%s: function main must not declare parameters", d.Position)
	case MainFunctionWithReturn:
		return fmt.Sprintf("%s: function main must return void", d.Position)
	case MissingMain:
		return fmt.Sprintf("%s: compilation unit has no function main", d.Position)
	case MissingTypeOrExpression:
		return fmt.Sprintf("%s: %q needs an explicit type or an initializer", d.Position, d.Name)
	case UnaryOperatorOnlyApplicableToInteger:
		return fmt.Sprintf("%s: unary operator only applicable to integers", d.Position)
	case UnaryOperatorOnlyApplicableToNumbers:
		return fmt.Sprintf("%s: unary operator only applicable to numbers", d.Position)
	case UnaryOperatorOnlyApplicableToBooleans:
		return fmt.Sprintf("%s: unary operator only applicable to booleans", d.Position)
	case InvalidRangeOperands:
		return fmt.Sprintf("%s: range operands must both be numeric", d.Position)
	case IdentifierNotVariableConstOrParam:
		return fmt.Sprintf("%s: %q is not a variable, const, or parameter", d.Position, d.Name)
	case IdentifierNotCallable:
		return fmt.Sprintf("%s: %q is not callable", d.Position, d.Name)
	case InvalidNumberOfParameters:
		return fmt.Sprintf("%s: invalid number of arguments for %q", d.Position, d.Name)
	case InvalidParameterType:
		return fmt.Sprintf("%s: invalid argument type for %q: expected %s, found %s", d.Position, d.Name, d.Expected, d.Found)
	case TypeMismatch:
		return fmt.Sprintf("%s: type mismatch: expected %s, found %s", d.Position, d.Expected, d.Found)
	case EqualityTypeMismatch:
		return fmt.Sprintf("%s: cannot compare %s with %s", d.Position, d.Expected, d.Found)
	case InvalidOperator:
		return fmt.Sprintf("%s: invalid operator for operand types %s and %s", d.Position, d.Expected, d.Found)
	case ValueCannotBeReassigned:
		return fmt.Sprintf("%s: %q cannot be reassigned", d.Position, d.Name)
	case InvalidLeftOperand:
		return fmt.Sprintf("%s: invalid left operand of type %s", d.Position, d.Found)
	case InvalidRightOperand:
		return fmt.Sprintf("%s: invalid right operand of type %s", d.Position, d.Found)
	case InvalidBreak:
		return fmt.Sprintf("%s: break outside a loop", d.Position)
	case InvalidContinue:
		return fmt.Sprintf("%s: continue outside a loop", d.Position)
	case InvalidReturn:
		return fmt.Sprintf("%s: return outside a function", d.Position)
	case IdentifierNotIndexable:
		return fmt.Sprintf("%s: %q is not indexable", d.Position, d.Name)
	case InvalidIndexType:
		return fmt.Sprintf("%s: index expression must be an integer, found %s", d.Position, d.Found)
	case CannotReturnArray:
		return fmt.Sprintf("%s: function %q cannot return an array", d.Position, d.Name)
	case CannotReturnFunction:
		return fmt.Sprintf("%s: function %q cannot return a function", d.Position, d.Name)
	case ImmediateArrayUsageWithoutAssignment:
		return fmt.Sprintf("%s: an array literal cannot be passed directly as an argument", d.Position)
	case ExpectedType:
		return fmt.Sprintf("%s: expected %s, found %s", d.Position, d.Expected, d.Found)
	case InvalidArrayElement:
		return fmt.Sprintf("%s: array elements must share a type", d.Position)
	default:
		return fmt.Sprintf("%s: semantic error", d.Position)
	}
}
