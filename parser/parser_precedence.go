/*
File    : slcc/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Operator precedence table for the Pratt-style expression parser. Higher
binds tighter; unary operators sit above every binary level.

	11 unary + - ! ~
	10 * / %
	 9 + -
	 8 < <= > >=
	 7 == !=
	 6 &
	 5 ^
	 4 |
	 3 &&
	 2 ||
	 1 .. ..=
*/
package parser

import "github.com/akashmaji946/slcc/lexer"

const unaryPrecedence = 11

// binaryPrecedence maps every binary operator kind to its precedence level.
// A kind absent from this map is not a binary operator at all.
var binaryPrecedence = map[lexer.Kind]int{
	lexer.Star:    10,
	lexer.Slash:   10,
	lexer.Percent: 10,

	lexer.Plus:  9,
	lexer.Minus: 9,

	lexer.LessThan:      8,
	lexer.LessEquals:    8,
	lexer.GreaterThan:   8,
	lexer.GreaterEquals: 8,

	lexer.EqualsEquals: 7,
	lexer.NotEquals:    7,

	lexer.Ampersand: 6,
	lexer.Caret:     5,
	lexer.Pipe:      4,
	lexer.AndAnd:    3,
	lexer.OrOr:      2,

	lexer.DotDot:       1,
	lexer.DotDotEquals: 1,
}

func isUnaryOperator(kind lexer.Kind) bool {
	switch kind {
	case lexer.Plus, lexer.Minus, lexer.Not, lexer.Tilde:
		return true
	}
	return false
}

func isRangeOperator(kind lexer.Kind) bool {
	return kind == lexer.DotDot || kind == lexer.DotDotEquals
}
