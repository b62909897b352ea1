/*
File    : slcc/emitter/expression_generator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Expression emission: every Expression variant renders to its C textual
form. Literals render verbatim except booleans (C has none, so `true`/
`false` become `1`/`0`) and char/string literals (requoted). Operators emit
their own lexeme unchanged -- the source and C operator spellings coincide
for every operator this language supports.
*/
package emitter

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/slcc/parser"
	"github.com/akashmaji946/slcc/scope"
)

// generateExpression renders expr as C source text within sc.
func (g *Generator) generateExpression(expr parser.Expression, sc *scope.Scope) string {
	switch e := expr.(type) {
	case parser.Literal:
		return g.generateLiteral(e)

	case parser.Identifier:
		if e.Meta != nil {
			return e.Name() + g.generateMeta(e.Meta, sc)
		}
		return e.Name()

	case parser.Unary:
		return e.Operator.Value + g.generateExpression(e.Operand, sc)

	case parser.Binary:
		return g.generateExpression(e.Left, sc) + e.Operator.Value + g.generateExpression(e.Right, sc)

	case parser.Parenthesized:
		inner := "(" + g.generateExpression(e.Inner, sc) + ")"
		if e.Meta != nil {
			return inner + g.generateMeta(e.Meta, sc)
		}
		return inner

	case parser.ArrayLiteral:
		t := g.inferredArrayType(e, sc)
		return g.generateArrayExpression(t, e.Elements, e.Meta, sc)

	default:
		return ""
	}
}

func (g *Generator) generateLiteral(lit parser.Literal) string {
	switch lit.Kind {
	case parser.NumberLiteral:
		return lit.Token.Value
	case parser.CharLiteral:
		return fmt.Sprintf("'%s'", lit.Token.Value)
	case parser.StringLiteral:
		return "\"" + lit.Token.Value + "\""
	case parser.BoolLiteral:
		if lit.Token.Value == "true" {
			return "1"
		}
		return "0"
	default:
		return ""
	}
}

// generateMeta renders a postfix Call/Index chain as C subscript/call
// syntax.
func (g *Generator) generateMeta(m parser.Meta, sc *scope.Scope) string {
	switch meta := m.(type) {
	case parser.CallMeta:
		args := make([]string, len(meta.Args))
		for i, a := range meta.Args {
			args[i] = g.generateExpression(a, sc)
		}
		code := "(" + strings.Join(args, ",") + ")"
		if meta.Next != nil {
			code += g.generateMeta(meta.Next, sc)
		}
		return code

	case parser.IndexMeta:
		code := "[" + g.generateExpression(meta.Arg, sc) + "]"
		if meta.Next != nil {
			code += g.generateMeta(meta.Next, sc)
		}
		return code

	default:
		return ""
	}
}
