/*
File    : slcc/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Expression parsing: one routine, parseExpression(minPrecedence), implements
Pratt-style precedence climbing over the table in parser_precedence.go.
Primaries are literals, identifiers, parenthesized expressions, and array
literals; each of the latter three may carry a postfix Call/Index chain,
attached as a Meta linked list rather than produced as separate AST leaves.
*/
package parser

import "github.com/akashmaji946/slcc/lexer"

// parseExpression consumes a unary prefix if present, then a primary, then
// repeatedly folds in binary operators whose precedence strictly exceeds
// minPrecedence, recursing with that operator's own precedence for the
// right-hand side. This makes every binary operator left-associative.
func (p *Parser) parseExpression(minPrecedence int) Expression {
	var left Expression

	if isUnaryOperator(p.current().Kind) {
		op := p.advance()
		operand := p.parseExpression(unaryPrecedence)
		left = Unary{Operator: op, Operand: operand}
	} else {
		left = p.parsePrimary()
	}

	for {
		prec, ok := binaryPrecedence[p.current().Kind]
		if !ok || prec <= minPrecedence {
			break
		}
		op := p.advance()
		right := p.parseExpression(prec)

		if isRangeOperator(op.Kind) {
			left = Range{Left: left, Operator: op, Right: right}
		} else {
			left = Binary{Left: left, Operator: op, Right: right}
		}
	}

	return left
}

// parsePrimary parses a literal, identifier, parenthesized expression, or
// array literal, then attaches any postfix Call/Index chain that follows.
func (p *Parser) parsePrimary() Expression {
	switch p.current().Kind {
	case lexer.BoolLit, lexer.TrueKeyword, lexer.FalseKeyword:
		return Literal{Kind: BoolLiteral, Token: p.advance()}

	case lexer.CharLit:
		return Literal{Kind: CharLiteral, Token: p.advance()}

	case lexer.StringLit:
		return Literal{Kind: StringLiteral, Token: p.advance()}

	case lexer.NumberLit:
		return Literal{Kind: NumberLiteral, Token: p.advance()}

	case lexer.Identifier:
		tok := p.advance()
		return Identifier{Token: tok, Meta: p.parseMeta()}

	case lexer.LeftParen:
		p.advance()
		inner := p.parseExpression(0)
		p.expect(lexer.RightParen)
		return Parenthesized{Inner: inner, Meta: p.parseMeta()}

	case lexer.LeftBracket:
		p.advance()
		var elems []Expression
		if !p.check(lexer.RightBracket) {
			elems = append(elems, p.parseExpression(0))
			for {
				if _, ok := p.accept(lexer.Comma); !ok {
					break
				}
				elems = append(elems, p.parseExpression(0))
			}
		}
		p.expect(lexer.RightBracket)
		return ArrayLiteral{Elements: elems, Meta: p.parseMeta()}

	default:
		panic(newExpressionExpected(p.current()))
	}
}

// parseMeta parses zero or more chained postfix Call/Index suffixes,
// e.g. f(x)[i](y), returning the head of the chain (or nil if none follow).
func (p *Parser) parseMeta() Meta {
	switch p.current().Kind {
	case lexer.LeftParen:
		p.advance()
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
		return CallMeta{Args: args, Next: p.parseMeta()}

	case lexer.LeftBracket:
		p.advance()
		arg := p.parseExpression(0)
		p.expect(lexer.RightBracket)
		return IndexMeta{Arg: arg, Next: p.parseMeta()}

	default:
		return nil
	}
}
