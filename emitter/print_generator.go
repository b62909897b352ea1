/*
File    : slcc/emitter/print_generator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

`print`/`println` expand to one printf call per argument, each with a
format specifier chosen from the argument's inferred type. Booleans have no
native printf verb, so they're rendered through a ternary to the literal
strings "true"/"false" first.
*/
package emitter

import (
	"github.com/akashmaji946/slcc/langtype"
	"github.com/akashmaji946/slcc/parser"
	"github.com/akashmaji946/slcc/scope"
)

// formatSpecifier picks the printf verb for t. f32 prints with `%f` and f64
// with `%lf`, which printf treats the same as `%f` -- the source
// material's use of `%ff` for f32 was a bug, not a deliberate distinction.
func formatSpecifier(t langtype.Type) string {
	if !t.IsPrimitive() {
		return "%p"
	}
	switch t.Primitive() {
	case langtype.I8, langtype.I16, langtype.I32:
		return "%d"
	case langtype.U8, langtype.U16, langtype.U32:
		return "%u"
	case langtype.I64:
		return "%lld"
	case langtype.U64:
		return "%llu"
	case langtype.F32:
		return "%f"
	case langtype.F64:
		return "%lf"
	case langtype.Char:
		return "%c"
	case langtype.String, langtype.Bool:
		return "%s"
	default:
		return "%p"
	}
}

func (g *Generator) generatePrint(p parser.Print, sc *scope.Scope) {
	for _, expr := range p.Expressions {
		t := g.inferredExpressionType(expr, sc)
		spec := formatSpecifier(t)
		code := g.generateExpression(expr, sc)

		if t.IsPrimitive() && t.Primitive() == langtype.Bool {
			code = code + `?"true":"false"`
		}

		g.ccode.Push(`printf("` + spec + `",`)
		g.ccode.Push(code)
		g.ccode.Push(");")
	}

	if p.NewLine {
		g.ccode.Push(`printf("\n");`)
	}
}
