/*
File    : slcc/emitter/let_generator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package emitter

import (
	"github.com/akashmaji946/slcc/parser"
	"github.com/akashmaji946/slcc/scope"
)

func (g *Generator) generateLet(l parser.Let, sc *scope.Scope) {
	sym, _ := sc.LookupLocal(l.Name.Value)
	cType := g.ccode.GetType(sym.Type)
	g.ccode.Push(cType + " " + l.Name.Value)

	switch {
	case l.Expression != nil:
		g.ccode.Push("=")
		g.ccode.Push(g.generateExpression(l.Expression, sc))
	case sym.Type.IsArray():
		g.ccode.Push("=")
		g.ccode.Push(g.generateArrayExpression(sym.Type, nil, nil, sc))
	}

	g.ccode.Push(";")
}

func (g *Generator) generateConst(c parser.Const, sc *scope.Scope) {
	sym, _ := sc.LookupLocal(c.Name.Value)
	cType := g.ccode.GetType(sym.Type)
	g.ccode.Push("const " + cType + " " + c.Name.Value)
	g.ccode.Push("=")
	g.ccode.Push(g.generateExpression(c.Expression, sc))
	g.ccode.Push(";")
}
