/*
File    : slcc/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements a recursive-descent parser with Pratt-style
operator-precedence climbing for expressions. It converts the Lexer's token
stream into a CompilationUnit -- a sequence of top-level function
declarations, each holding a tree of Statement and Expression nodes.

Unlike the semantic analyzer, which accumulates every diagnostic it finds,
the parser is first-failure-fatal: parsing stops at the very first syntax
error, reporting a single SyntaxError rather than attempting recovery. Internally
this is implemented with panic/recover around a single SyntaxError type,
which keeps every parsing routine free of explicit error-threading boilerplate
while still surfacing a normal Go error from Parse.
*/
package parser

import (
	"github.com/akashmaji946/slcc/lexer"
	"github.com/akashmaji946/slcc/scope"
)

// Parser holds the full token buffer (the source is small enough that
// draining the lexer up front is simpler than incremental two-token
// lookahead) plus a cursor and the running Block id counter the AST's
// Block nodes consume.
type Parser struct {
	tokens    []lexer.Token
	index     int
	blockSeq  int64
}

// New creates a Parser over src. Tokenization happens immediately; the
// lexer never fails (bad bytes become BadKind tokens), so New cannot either.
func New(src string) *Parser {
	toks := lexer.Tokenize(src)
	toks = append(toks, lexer.Token{Kind: lexer.EOF})
	return &Parser{tokens: toks}
}

// current returns the token under the cursor.
func (p *Parser) current() lexer.Token {
	return p.tokens[p.index]
}

// peek returns the token n positions ahead of the cursor, clamped to EOF.
func (p *Parser) peek(n int) lexer.Token {
	i := p.index + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// advance consumes and returns the current token, moving the cursor forward
// by one (but never past the trailing EOF sentinel).
func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.index < len(p.tokens)-1 {
		p.index++
	}
	return tok
}

// expect consumes the current token if it matches kind, else panics with an
// UnexpectedToken diagnostic naming kind as the sole acceptable alternative.
func (p *Parser) expect(kind lexer.Kind) lexer.Token {
	if p.current().Kind != kind {
		panic(newUnexpectedToken(p.current(), kind))
	}
	return p.advance()
}

// check reports whether the current token is one of kinds, without
// consuming it.
func (p *Parser) check(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.current().Kind == k {
			return true
		}
	}
	return false
}

// accept consumes and returns the current token if it matches kind.
func (p *Parser) accept(kind lexer.Kind) (lexer.Token, bool) {
	if p.current().Kind == kind {
		return p.advance(), true
	}
	return lexer.Token{}, false
}

// nextBlockID hands out the next compilation-unique Block id.
func (p *Parser) nextBlockID() scope.BlockID {
	p.blockSeq++
	return scope.BlockID(p.blockSeq)
}

// findBadToken scans the whole buffer for a BadKind token, returning the
// first one found. The grammar this parser implements requires aborting
// immediately, before any parsing is attempted, if the lexer ever emitted
// one -- a malformed token anywhere in the source makes the rest of the
// stream's positions meaningless to trust structurally.
func (p *Parser) findBadToken() (lexer.Token, bool) {
	for _, t := range p.tokens {
		if t.Kind == lexer.BadKind {
			return t, true
		}
	}
	return lexer.Token{}, false
}

// Parse runs the parser to completion, returning the parsed CompilationUnit
// or the single SyntaxError that stopped it.
func Parse(src string) (unit CompilationUnit, err error) {
	p := New(src)

	if bad, found := p.findBadToken(); found {
		return CompilationUnit{}, &SyntaxError{
			Kind:     UnexpectedToken,
			Found:    bad,
			Position: bad.Position,
		}
	}

	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(*SyntaxError); ok {
				err = se
				return
			}
			panic(r)
		}
	}()

	unit = p.parseCompilationUnit()
	return unit, nil
}

// parseCompilationUnit parses a sequence of function declarations until EOF.
// Any other construct at top level is a TopLevelStatementExpected error.
func (p *Parser) parseCompilationUnit() CompilationUnit {
	var unit CompilationUnit
	for p.current().Kind != lexer.EOF {
		if p.current().Kind != lexer.FunKeyword {
			panic(newTopLevelStatementExpected(p.current()))
		}
		unit.Functions = append(unit.Functions, p.parseFunction())
	}
	return unit
}
