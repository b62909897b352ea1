/*
File    : slcc/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []Kind
}

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize_Operators(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    `123 + 2 - 12`,
			Expected: []Kind{NumberLit, Plus, NumberLit, Minus, NumberLit},
		},
		{
			Input:    `<< >> & | ^ ~`,
			Expected: []Kind{ShiftLeft, ShiftRight, Ampersand, Pipe, Caret, Tilde},
		},
		{
			Input:    `<<= >>= &= |= ^=`,
			Expected: []Kind{ShiftLeftEq, ShiftRightEq, AmpersandEq, PipeEq, CaretEq},
		},
		{
			Input:    `.. ..=  .`,
			Expected: []Kind{DotDot, DotDotEquals, Dot},
		},
		{
			Input:    `1..3 1..=3`,
			Expected: []Kind{NumberLit, DotDot, NumberLit, NumberLit, DotDotEquals, NumberLit},
		},
		{
			Input:    `== != <= >= && ||`,
			Expected: []Kind{EqualsEquals, NotEquals, LessEquals, GreaterEquals, AndAnd, OrOr},
		},
	}

	for _, tc := range tests {
		tokens := Tokenize(tc.Input)
		assert.Equal(t, tc.Expected, kinds(tokens), "input: %q", tc.Input)
	}
}

func TestTokenize_Keywords(t *testing.T) {
	tokens := Tokenize(`fun let const if else while do for in return true false break continue ref print println`)
	assert.Equal(t, []Kind{
		FunKeyword, LetKeyword, ConstKeyword, IfKeyword, ElseKeyword, WhileKeyword,
		DoKeyword, ForKeyword, InKeyword, ReturnKeyword, TrueKeyword, FalseKeyword,
		BreakKeyword, ContinueKeyword, RefKeyword, PrintKeyword, PrintlnKeyword,
	}, kinds(tokens))
}

func TestTokenize_IdentifiersAndLiterals(t *testing.T) {
	tokens := Tokenize(`abc _foo123 42 3.14 "hello" 'x'`)
	require := assert.New(t)
	require.Equal([]Kind{Identifier, Identifier, NumberLit, NumberLit, StringLit, CharLit}, kinds(tokens))
	require.Equal("abc", tokens[0].Value)
	require.Equal("_foo123", tokens[1].Value)
	require.Equal("42", tokens[2].Value)
	require.Equal("3.14", tokens[3].Value)
	require.Equal("hello", tokens[4].Value)
	require.Equal("x", tokens[5].Value)
}

func TestTokenize_SkipsCommentsAndWhitespace(t *testing.T) {
	tokens := Tokenize(`
		// line comment
		let x = 1; /* block
		comment */ let y = 2;
	`)
	assert.Equal(t, []Kind{
		LetKeyword, Identifier, Equals, NumberLit, Semicolon,
		LetKeyword, Identifier, Equals, NumberLit, Semicolon,
	}, kinds(tokens))
}

func TestTokenize_BadTokenDoesNotAbort(t *testing.T) {
	tokens := Tokenize(`1 @ 2`)
	assert.Equal(t, []Kind{NumberLit, BadKind, NumberLit}, kinds(tokens))
	assert.Equal(t, "@", tokens[1].Value)
}

func TestTokenize_UnterminatedStringIsBad(t *testing.T) {
	tokens := Tokenize(`"unterminated`)
	require := assert.New(t)
	require.Len(tokens, 1)
	require.Equal(BadKind, tokens[0].Kind)
}

func TestTokenize_TrailingDotWithoutDigitIsBad(t *testing.T) {
	tokens := Tokenize(`2.`)
	require := assert.New(t)
	require.Len(tokens, 1)
	require.Equal(BadKind, tokens[0].Kind)
}

func TestPosition_TracksLineAndColumn(t *testing.T) {
	tokens := Tokenize("let x = 1;\nlet y = 2;")
	require := assert.New(t)
	require.Equal(0, tokens[0].Position.Line)
	secondLet := tokens[5]
	require.Equal(1, secondLet.Position.Line)
	require.Equal(0, secondLet.Position.Column)
}

func TestToken_IsAssignOperator(t *testing.T) {
	assert.True(t, Token{Kind: Equals}.IsAssignOperator())
	assert.True(t, Token{Kind: PlusEq}.IsAssignOperator())
	assert.False(t, Token{Kind: Plus}.IsAssignOperator())

	assert.False(t, Token{Kind: Equals}.IsCompoundAssign())
	assert.True(t, Token{Kind: PlusEq}.IsCompoundAssign())
}
