/*
File    : slcc/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

	block      := '{' statement* '}'
	statement  := let | const | block | assignment | return | if | while
	            | do_while | for | break | continue | print | expression_stmt
	let        := 'let' IDENT (':' type)? ('=' expr)? ';'
	const      := 'const' IDENT (':' type)? '=' expr ';'
	if         := 'if' expr block ('else' block)?
	while      := 'while' expr block
	do_while   := 'do' block 'while' expr ';'
	for        := 'for' IDENT 'in' expr block
	return     := 'return' expr? ';'
	assignment := expr ASSIGN_OP expr ';'
*/
package parser

import "github.com/akashmaji946/slcc/lexer"

// parseBlock parses `{ statement* }`, assigning the resulting Block a fresh,
// compilation-unique id for the analyzer to key its scope map with.
func (p *Parser) parseBlock() Block {
	p.expect(lexer.LeftBrace)
	block := Block{ID: p.nextBlockID()}
	for !p.check(lexer.RightBrace, lexer.EOF) {
		block.Statements = append(block.Statements, p.parseStatement())
	}
	p.expect(lexer.RightBrace)
	return block
}

// parseStatement dispatches on the current token's kind to the matching
// statement-grammar rule, falling back to an expression statement (which may
// turn out to be an assignment) for anything else.
func (p *Parser) parseStatement() Statement {
	switch p.current().Kind {
	case lexer.LetKeyword:
		return p.parseLet()
	case lexer.ConstKeyword:
		return p.parseConst()
	case lexer.LeftBrace:
		return p.parseBlock()
	case lexer.IfKeyword:
		return p.parseIf()
	case lexer.WhileKeyword:
		return p.parseWhile()
	case lexer.DoKeyword:
		return p.parseDoWhile()
	case lexer.ForKeyword:
		return p.parseFor()
	case lexer.BreakKeyword:
		return p.parseBreak()
	case lexer.ContinueKeyword:
		return p.parseContinue()
	case lexer.ReturnKeyword:
		return p.parseReturn()
	case lexer.PrintKeyword, lexer.PrintlnKeyword:
		return p.parsePrint()
	default:
		return p.parseExpressionOrAssignmentStatement()
	}
}

func (p *Parser) parseLet() Statement {
	p.expect(lexer.LetKeyword)
	name := p.expect(lexer.Identifier)

	var typ SyntaxType
	if _, ok := p.accept(lexer.Colon); ok {
		typ = p.parseType()
	}

	var expr Expression
	if _, ok := p.accept(lexer.Equals); ok {
		expr = p.parseExpression(0)
	}

	p.expect(lexer.Semicolon)
	return Let{Name: name, Type: typ, Expression: expr}
}

func (p *Parser) parseConst() Statement {
	p.expect(lexer.ConstKeyword)
	name := p.expect(lexer.Identifier)

	var typ SyntaxType
	if _, ok := p.accept(lexer.Colon); ok {
		typ = p.parseType()
	}

	p.expect(lexer.Equals)
	expr := p.parseExpression(0)
	p.expect(lexer.Semicolon)
	return Const{Name: name, Type: typ, Expression: expr}
}

func (p *Parser) parseIf() Statement {
	p.expect(lexer.IfKeyword)
	cond := p.parseExpression(0)
	then := p.parseBlock()

	var elseBlock *Block
	if _, ok := p.accept(lexer.ElseKeyword); ok {
		b := p.parseBlock()
		elseBlock = &b
	}
	return If{Condition: cond, Then: then, Else: elseBlock}
}

func (p *Parser) parseWhile() Statement {
	p.expect(lexer.WhileKeyword)
	cond := p.parseExpression(0)
	body := p.parseBlock()
	return While{Condition: cond, Body: body}
}

func (p *Parser) parseDoWhile() Statement {
	p.expect(lexer.DoKeyword)
	body := p.parseBlock()
	p.expect(lexer.WhileKeyword)
	cond := p.parseExpression(0)
	p.expect(lexer.Semicolon)
	return DoWhile{Body: body, Condition: cond}
}

func (p *Parser) parseFor() Statement {
	p.expect(lexer.ForKeyword)
	binding := p.expect(lexer.Identifier)
	p.expect(lexer.InKeyword)
	expr := p.parseExpression(0)
	body := p.parseBlock()
	return For{Binding: binding, Expression: expr, Body: body}
}

func (p *Parser) parseBreak() Statement {
	kw := p.expect(lexer.BreakKeyword)
	p.expect(lexer.Semicolon)
	return Break{Keyword: kw}
}

func (p *Parser) parseContinue() Statement {
	kw := p.expect(lexer.ContinueKeyword)
	p.expect(lexer.Semicolon)
	return Continue{Keyword: kw}
}

func (p *Parser) parseReturn() Statement {
	kw := p.expect(lexer.ReturnKeyword)
	var expr Expression
	if !p.check(lexer.Semicolon) {
		expr = p.parseExpression(0)
	}
	p.expect(lexer.Semicolon)
	return Return{Keyword: kw, Expression: expr}
}

// parsePrint parses `print(e1, e2, ...)` or `println(e1, e2, ...)`.
func (p *Parser) parsePrint() Statement {
	kw := p.advance()
	newLine := kw.Kind == lexer.PrintlnKeyword

	p.expect(lexer.LeftParen)
	var args []Expression
	if !p.check(lexer.RightParen) {
		args = append(args, p.parseExpression(0))
		for {
			if _, ok := p.accept(lexer.Comma); !ok {
				break
			}
			args = append(args, p.parseExpression(0))
		}
	}
	p.expect(lexer.RightParen)
	p.expect(lexer.Semicolon)
	return Print{Keyword: kw, Expressions: args, NewLine: newLine}
}

// parseExpressionOrAssignmentStatement parses an expression, then decides
// whether it is a bare expression statement or the left-hand side of an
// assignment based on what follows it.
func (p *Parser) parseExpressionOrAssignmentStatement() Statement {
	expr := p.parseExpression(0)

	if p.current().IsAssignOperator() {
		op := p.advance()
		rhs := p.parseExpression(0)
		p.expect(lexer.Semicolon)
		return Assignment{Target: expr, Operator: op, Value: rhs}
	}

	if _, ok := p.accept(lexer.Semicolon); !ok {
		panic(newAssignmentExpected(p.current()))
	}
	return ExpressionStatement{Expression: expr}
}
