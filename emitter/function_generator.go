/*
File    : slcc/emitter/function_generator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Functions are emitted in two passes: a forward-declaration pass writes every
non-main signature as a prototype (so call order in source never matters to
the C compiler), then a definition pass writes every function's full body.
main is special on both passes: it never gets a prototype (C requires it be
called `main` and return int, no declaration needed), and its definition's
closing brace is popped and replaced with `return 0;}` so a Source Language
program that falls off the end of main (or whose `return;` was re-written to
`return 0;` already by generateStatement) still produces a valid C exit.
*/
package emitter

import (
	"strings"

	"github.com/akashmaji946/slcc/parser"
)

// GeneratePrototype emits a forward declaration for fn, or nothing for main.
func (g *Generator) GeneratePrototype(fn parser.Function) {
	if fn.Name.Value == "main" {
		return
	}

	sym, _ := g.global.LookupLocal(fn.Name.Value)
	retC := g.ccode.GetType(sym.Type.Return())

	paramTypes := sym.Type.Params()
	paramCs := make([]string, len(paramTypes))
	for i, pt := range paramTypes {
		paramCs[i] = g.ccode.GetType(pt)
	}

	g.ccode.Push(retC + " " + fn.Name.Value + "(" + strings.Join(paramCs, ",") + ");")
}

// Generate emits fn's full definition: signature, then body.
func (g *Generator) Generate(fn parser.Function) {
	isMain := fn.Name.Value == "main"

	sym, _ := g.global.LookupLocal(fn.Name.Value)
	retC := g.ccode.GetType(sym.Type.Return())
	if isMain {
		retC = "int"
	}

	paramDecls := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		paramDecls[i] = g.ccode.GetType(sym.Type.Params()[i]) + " " + p.Name.Value
	}

	g.ccode.Push(retC + " " + fn.Name.Value + "(" + strings.Join(paramDecls, ",") + ")")

	g.generateBlockIn(fn.Body, g.scopes[fn.Body.ID])

	if isMain {
		g.ccode.Pop()
		g.ccode.Push("return 0;}")
	}
}
