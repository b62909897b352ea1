/*
File    : slcc/emitter/block_generator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Statement emission. Each Statement variant becomes its natural C form.
`return` inside `main` always emits `return 0;`, regardless of what
expression (if any) followed it in source -- main's actual C return value
is forced separately once the whole body has been generated (see
function_generator.go).
*/
package emitter

import (
	"github.com/akashmaji946/slcc/parser"
	"github.com/akashmaji946/slcc/scope"
)

// generateBlock emits `{ ... }` for block, looking up the scope the
// analyzer registered for it. generateBlockIn does the same with a scope
// the caller supplies instead.
func (g *Generator) generateBlock(block parser.Block) {
	sc := g.scopes[block.ID]
	g.generateBlockIn(block, sc)
}

func (g *Generator) generateBlockIn(block parser.Block, sc *scope.Scope) {
	g.ccode.Push("{")
	for _, stmt := range block.Statements {
		g.generateStatement(stmt, sc)
	}
	g.ccode.Push("}")
}

func (g *Generator) generateStatement(stmt parser.Statement, sc *scope.Scope) {
	switch s := stmt.(type) {
	case parser.Let:
		g.generateLet(s, sc)

	case parser.Const:
		g.generateConst(s, sc)

	case parser.Block:
		g.generateBlock(s)

	case parser.ExpressionStatement:
		g.ccode.Push(g.generateExpression(s.Expression, sc))
		g.ccode.Push(";")

	case parser.Assignment:
		left := g.generateExpression(s.Target, sc)
		right := g.generateExpression(s.Value, sc)
		g.ccode.Push(left + s.Operator.Value + right + ";")

	case parser.Print:
		g.generatePrint(s, sc)

	case parser.Break:
		g.ccode.Push("break;")

	case parser.Continue:
		g.ccode.Push("continue;")

	case parser.If:
		g.ccode.Push("if(")
		g.ccode.Push(g.generateExpression(s.Condition, sc))
		g.ccode.Push(")")
		g.generateBlock(s.Then)
		if s.Else != nil {
			g.ccode.Push("else")
			g.generateBlock(*s.Else)
		}

	case parser.While:
		g.ccode.Push("while(")
		g.ccode.Push(g.generateExpression(s.Condition, sc))
		g.ccode.Push(")")
		g.generateBlock(s.Body)

	case parser.DoWhile:
		g.ccode.Push("do")
		g.generateBlock(s.Body)
		g.ccode.Push("while(")
		g.ccode.Push(g.generateExpression(s.Condition, sc))
		g.ccode.Push(");")

	case parser.For:
		g.generateFor(s)

	case parser.Return:
		if sc.EnclosingFunction() != nil && sc.EnclosingFunction().Name == "main" {
			g.ccode.Push("return 0;")
			return
		}
		if s.Expression == nil {
			g.ccode.Push("return;")
			return
		}
		g.ccode.Push("return ")
		g.ccode.Push(g.generateExpression(s.Expression, sc))
		g.ccode.Push(";")
	}
}
