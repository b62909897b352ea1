/*
File    : slcc/analyzer/analyzer_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Expression type inference. Every rule here either produces a concrete
langtype.Type or, on failure, reports a Diagnostic and substitutes `any` --
`any` is compatible with everything, which is what stops one bad
subexpression from triggering a cascade of unrelated-looking diagnostics in
whatever encloses it.
*/
package analyzer

import (
	"strings"

	"github.com/akashmaji946/slcc/langtype"
	"github.com/akashmaji946/slcc/lexer"
	"github.com/akashmaji946/slcc/parser"
	"github.com/akashmaji946/slcc/scope"
)

// compatible implements the numeric-compatibility relaxation applied
// uniformly across let/const/assignment/return/call-argument checking:
// `any` matches anything, identical types always match, and any two
// numeric types are considered assignment-compatible with each other.
func compatible(expected, actual langtype.Type) bool {
	if expected.IsAny() || actual.IsAny() {
		return true
	}
	if expected.Equal(actual) {
		return true
	}
	return expected.IsNumber() && actual.IsNumber()
}

// exprPosition extracts the best-effort source position anchoring an
// expression, for diagnostics that need one.
func exprPosition(expr parser.Expression) lexer.Position {
	switch e := expr.(type) {
	case parser.Identifier:
		return e.Token.Position
	case parser.Literal:
		return e.Token.Position
	case parser.Unary:
		return e.Operator.Position
	case parser.Binary:
		return e.Operator.Position
	case parser.Range:
		return e.Operator.Position
	case parser.Parenthesized:
		return exprPosition(e.Inner)
	case parser.ArrayLiteral:
		if len(e.Elements) > 0 {
			return exprPosition(e.Elements[0])
		}
	}
	return lexer.Position{}
}

func (a *Analyzer) analyzeExpression(expr parser.Expression, sc *scope.Scope) langtype.Type {
	switch e := expr.(type) {
	case parser.Literal:
		return a.analyzeLiteral(e)
	case parser.Identifier:
		return a.analyzeIdentifier(e, sc)
	case parser.Unary:
		return a.analyzeUnary(e, sc)
	case parser.Binary:
		return a.analyzeBinary(e, sc)
	case parser.Range:
		return a.analyzeRange(e, sc)
	case parser.Parenthesized:
		inner := a.analyzeExpression(e.Inner, sc)
		return a.analyzeMeta(inner, e.Meta, sc, exprPosition(e.Inner), "")
	case parser.ArrayLiteral:
		return a.analyzeArrayLiteral(e, sc, langtype.Type{}, false)
	default:
		return langtype.Prim(langtype.Any)
	}
}

// analyzeExpressionExpecting is like analyzeExpression, but for a `let`
// binding's initializer it additionally threads the declared type through to
// analyzeArrayLiteral, so an empty array literal can inherit the declared
// element type and size instead of being diagnosed as untypeable.
func (a *Analyzer) analyzeExpressionExpecting(expr parser.Expression, sc *scope.Scope, expected langtype.Type, hasExpected bool) langtype.Type {
	if arr, ok := expr.(parser.ArrayLiteral); ok {
		return a.analyzeArrayLiteral(arr, sc, expected, hasExpected)
	}
	return a.analyzeExpression(expr, sc)
}

func (a *Analyzer) analyzeLiteral(lit parser.Literal) langtype.Type {
	switch lit.Kind {
	case parser.BoolLiteral:
		return langtype.Prim(langtype.Bool)
	case parser.CharLiteral:
		return langtype.Prim(langtype.Char)
	case parser.StringLiteral:
		return langtype.Prim(langtype.String)
	case parser.NumberLiteral:
		if strings.Contains(lit.Token.Value, ".") {
			return langtype.Prim(langtype.F32)
		}
		return langtype.Prim(langtype.I32)
	default:
		return langtype.Prim(langtype.Any)
	}
}

func (a *Analyzer) analyzeIdentifier(id parser.Identifier, sc *scope.Scope) langtype.Type {
	name := id.Name()
	sym, ok := sc.Lookup(name)
	if !ok {
		a.report(Diagnostic{Kind: IdentifierNotFound, Position: id.Token.Position, Name: name})
		return langtype.Prim(langtype.Any)
	}

	var base langtype.Type
	switch sym.Kind {
	case scope.VariableSymbol, scope.ParameterSymbol, scope.ConstSymbol:
		base = sym.Type
	case scope.FunctionSymbol:
		if _, calledImmediately := id.Meta.(parser.CallMeta); !calledImmediately {
			a.report(Diagnostic{Kind: IdentifierNotVariableConstOrParam, Position: id.Token.Position, Name: name})
			return langtype.Prim(langtype.Any)
		}
		base = sym.Type
	default:
		a.report(Diagnostic{Kind: IdentifierNotVariableConstOrParam, Position: id.Token.Position, Name: name})
		return langtype.Prim(langtype.Any)
	}

	return a.analyzeMeta(base, id.Meta, sc, id.Token.Position, name)
}

// analyzeMeta walks a postfix Call/Index chain, threading the evolving
// expression type through each link.
func (a *Analyzer) analyzeMeta(base langtype.Type, meta parser.Meta, sc *scope.Scope, pos lexer.Position, name string) langtype.Type {
	switch m := meta.(type) {
	case nil:
		return base

	case parser.CallMeta:
		if !base.IsFunction() {
			a.report(Diagnostic{Kind: IdentifierNotCallable, Position: pos, Name: name})
			for _, arg := range m.Args {
				a.analyzeExpression(arg, sc)
			}
			return langtype.Prim(langtype.Any)
		}

		params := base.Params()
		if len(params) != len(m.Args) {
			a.report(Diagnostic{Kind: InvalidNumberOfParameters, Position: pos, Name: name})
		}
		for i, argExpr := range m.Args {
			if _, isArrayLiteral := argExpr.(parser.ArrayLiteral); isArrayLiteral {
				a.report(Diagnostic{Kind: ImmediateArrayUsageWithoutAssignment, Position: exprPosition(argExpr)})
			}
			argType := a.analyzeExpression(argExpr, sc)
			if i < len(params) && !compatible(params[i], argType) {
				a.report(Diagnostic{Kind: InvalidParameterType, Position: exprPosition(argExpr), Name: name, Expected: params[i], Found: argType})
			}
		}

		return a.analyzeMeta(base.Return(), m.Next, sc, pos, name)

	case parser.IndexMeta:
		idxType := a.analyzeExpression(m.Arg, sc)
		if !idxType.IsInteger() {
			a.report(Diagnostic{Kind: InvalidIndexType, Position: exprPosition(m.Arg), Found: idxType})
		}

		var elem langtype.Type
		switch {
		case base.IsArray():
			elem = base.Elem()
		case base.IsPrimitive() && base.Primitive() == langtype.String:
			elem = langtype.Prim(langtype.Char)
		default:
			a.report(Diagnostic{Kind: IdentifierNotIndexable, Position: pos, Name: name})
			elem = langtype.Prim(langtype.Any)
		}

		return a.analyzeMeta(elem, m.Next, sc, pos, name)

	default:
		return base
	}
}

func (a *Analyzer) analyzeUnary(u parser.Unary, sc *scope.Scope) langtype.Type {
	operand := a.analyzeExpression(u.Operand, sc)

	switch u.Operator.Kind {
	case lexer.Tilde:
		if !operand.IsInteger() {
			a.report(Diagnostic{Kind: UnaryOperatorOnlyApplicableToInteger, Position: u.Operator.Position, Found: operand})
			return langtype.Prim(langtype.Any)
		}
		return operand
	case lexer.Plus, lexer.Minus:
		if !operand.IsNumber() {
			a.report(Diagnostic{Kind: UnaryOperatorOnlyApplicableToNumbers, Position: u.Operator.Position, Found: operand})
			return langtype.Prim(langtype.Any)
		}
		return operand
	case lexer.Not:
		if !operand.IsBool() && !operand.IsAny() {
			a.report(Diagnostic{Kind: UnaryOperatorOnlyApplicableToBooleans, Position: u.Operator.Position, Found: operand})
			return langtype.Prim(langtype.Any)
		}
		return langtype.Prim(langtype.Bool)
	default:
		return langtype.Prim(langtype.Any)
	}
}

func (a *Analyzer) analyzeBinary(b parser.Binary, sc *scope.Scope) langtype.Type {
	left := a.analyzeExpression(b.Left, sc)
	right := a.analyzeExpression(b.Right, sc)
	pos := b.Operator.Position

	switch b.Operator.Kind {
	case lexer.EqualsEquals, lexer.NotEquals:
		if (left.IsNumber() && right.IsNumber()) || left.Equal(right) {
			return langtype.Prim(langtype.Bool)
		}
		a.report(Diagnostic{Kind: EqualityTypeMismatch, Position: pos, Expected: left, Found: right})
		return langtype.Prim(langtype.Bool)

	case lexer.Plus, lexer.Minus, lexer.Star, lexer.Slash:
		if left.IsNumber() && right.IsNumber() {
			return langtype.Join(left, right)
		}
		a.report(Diagnostic{Kind: InvalidOperator, Position: pos, Expected: left, Found: right})
		return langtype.Prim(langtype.Any)

	case lexer.Percent, lexer.Ampersand, lexer.Pipe, lexer.Caret:
		if left.IsInteger() && right.IsInteger() {
			return langtype.Join(left, right)
		}
		a.report(Diagnostic{Kind: InvalidOperator, Position: pos, Expected: left, Found: right})
		return langtype.Prim(langtype.Any)

	case lexer.LessThan, lexer.LessEquals, lexer.GreaterThan, lexer.GreaterEquals:
		if left.IsNumber() && right.IsNumber() {
			return langtype.Prim(langtype.Bool)
		}
		a.report(Diagnostic{Kind: InvalidOperator, Position: pos, Expected: left, Found: right})
		return langtype.Prim(langtype.Bool)

	case lexer.AndAnd, lexer.OrOr:
		if (left.IsBool() || left.IsAny()) && (right.IsBool() || right.IsAny()) {
			return langtype.Prim(langtype.Bool)
		}
		a.report(Diagnostic{Kind: InvalidOperator, Position: pos, Expected: left, Found: right})
		return langtype.Prim(langtype.Bool)

	default:
		return langtype.Prim(langtype.Any)
	}
}

func (a *Analyzer) analyzeRange(r parser.Range, sc *scope.Scope) langtype.Type {
	left := a.analyzeExpression(r.Left, sc)
	right := a.analyzeExpression(r.Right, sc)
	if !left.IsNumber() || !right.IsNumber() {
		a.report(Diagnostic{Kind: InvalidRangeOperands, Position: r.Operator.Position, Expected: left, Found: right})
	}
	return langtype.Prim(langtype.Range)
}

// analyzeArrayLiteral checks an array literal. An empty literal has no
// element to infer a type from: it is only valid where expected supplies a
// declared array type to inherit (a `let` binding's explicit annotation),
// every other site reports InvalidArrayElement rather than silently typing
// it Array(any, 0).
func (a *Analyzer) analyzeArrayLiteral(arr parser.ArrayLiteral, sc *scope.Scope, expected langtype.Type, hasExpected bool) langtype.Type {
	if len(arr.Elements) == 0 {
		if hasExpected && expected.IsArray() {
			return a.analyzeMeta(expected, arr.Meta, sc, lexer.Position{}, "")
		}
		a.report(Diagnostic{Kind: InvalidArrayElement, Position: lexer.Position{}})
		return a.analyzeMeta(langtype.Prim(langtype.Any), arr.Meta, sc, lexer.Position{}, "")
	}

	first := a.analyzeExpression(arr.Elements[0], sc)
	for _, el := range arr.Elements[1:] {
		t := a.analyzeExpression(el, sc)
		if !t.Equal(first) && !(t.IsNumber() && first.IsNumber()) {
			a.report(Diagnostic{Kind: InvalidArrayElement, Position: exprPosition(el), Expected: first, Found: t})
		}
	}

	result := langtype.Array(first, len(arr.Elements))
	return a.analyzeMeta(result, arr.Meta, sc, exprPosition(arr.Elements[0]), "")
}
