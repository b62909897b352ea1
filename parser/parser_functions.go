/*
File    : slcc/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Top-level function declarations and the type-reference grammar:

	function    := 'fun' IDENT '(' params_decl? ')' (':' type)? block
	params_decl := param (',' param)*
	param       := IDENT ':' type
	type        := IDENT
	             | '[' type ';' NUM ']'
	             | 'ref' type
	             | '(' type (',' type)* ')' ':' type
*/
package parser

import "github.com/akashmaji946/slcc/lexer"

// parseFunction parses one top-level `fun` declaration.
func (p *Parser) parseFunction() Function {
	p.expect(lexer.FunKeyword)
	name := p.expect(lexer.Identifier)

	p.expect(lexer.LeftParen)
	var params []Param
	if !p.check(lexer.RightParen) {
		params = append(params, p.parseParam())
		for {
			if _, ok := p.accept(lexer.Comma); !ok {
				break
			}
			params = append(params, p.parseParam())
		}
	}
	p.expect(lexer.RightParen)

	var returnType SyntaxType
	if _, ok := p.accept(lexer.Colon); ok {
		returnType = p.parseType()
	}

	body := p.parseBlock()

	return Function{Name: name, Params: params, ReturnType: returnType, Body: body}
}

// parseParam parses one `name: type` parameter declaration.
func (p *Parser) parseParam() Param {
	name := p.expect(lexer.Identifier)
	p.expect(lexer.Colon)
	return Param{Name: name, Type: p.parseType()}
}

// parseType parses one type reference: a simple name, an array type, a
// reference type, or a function type.
func (p *Parser) parseType() SyntaxType {
	switch p.current().Kind {
	case lexer.LeftBracket:
		p.advance()
		elem := p.parseType()
		p.expect(lexer.Semicolon)
		size := p.expect(lexer.NumberLit)
		p.expect(lexer.RightBracket)
		return ArrayType{Element: elem, Size: size}

	case lexer.RefKeyword:
		p.advance()
		return ReferenceType{Inner: p.parseType()}

	case lexer.LeftParen:
		p.advance()
		var params []SyntaxType
		if !p.check(lexer.RightParen) {
			params = append(params, p.parseType())
			for {
				if _, ok := p.accept(lexer.Comma); !ok {
					break
				}
				params = append(params, p.parseType())
			}
		}
		p.expect(lexer.RightParen)
		p.expect(lexer.Colon)
		ret := p.parseType()
		return FunctionType{Params: params, Return: ret}

	case lexer.Identifier:
		return SimpleType{Identifier: p.advance()}

	default:
		panic(newUnexpectedToken(p.current(), lexer.Identifier, lexer.LeftBracket, lexer.RefKeyword, lexer.LeftParen))
	}
}
