/*
File    : slcc/emitter/for_generator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

`for i in a..b { ... }` lowers to `for (T i = a; i < b; i++) { ... }`;
`..=` uses `<=` in place of `<`.
*/
package emitter

import (
	"github.com/akashmaji946/slcc/lexer"
	"github.com/akashmaji946/slcc/parser"
)

func (g *Generator) generateFor(f parser.For) {
	sc := g.scopes[f.Body.ID]
	name := f.Binding.Value

	rangeExpr, isRange := f.Expression.(parser.Range)
	if !isRange {
		return
	}

	sym, _ := sc.LookupLocal(name)
	cType := g.ccode.GetType(sym.Type)

	g.ccode.Push("for(")
	g.ccode.Push(cType + " " + name + "=")
	g.ccode.Push(g.generateExpression(rangeExpr.Left, sc))
	g.ccode.Push(";")

	if rangeExpr.Operator.Kind == lexer.DotDotEquals {
		g.ccode.Push(name + "<=")
	} else {
		g.ccode.Push(name + "<")
	}
	g.ccode.Push(g.generateExpression(rangeExpr.Right, sc))
	g.ccode.Push(";")
	g.ccode.Push(name + "++)")

	g.generateBlockIn(f.Body, sc)
}
