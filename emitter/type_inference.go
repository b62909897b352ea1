/*
File    : slcc/emitter/type_inference.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

The emitter needs an expression's semantic type in a few places (choosing a
printf format specifier, picking an array literal's element type, sizing a
typedef) but the checked AST doesn't carry inferred types inline -- only the
scope map does. Rather than thread a side table of per-node types out of the
analyzer, the emitter re-derives a type on demand, scoped to exactly the
node it needs, the same way the original generator family re-invokes its
expression analyzer mid-generation. This only ever runs on an AST that has
already passed analysis with zero diagnostics, so every lookup here is
assumed to succeed.
*/
package emitter

import (
	"strings"

	"github.com/akashmaji946/slcc/langtype"
	"github.com/akashmaji946/slcc/parser"
	"github.com/akashmaji946/slcc/scope"
)

func (g *Generator) inferredExpressionType(expr parser.Expression, sc *scope.Scope) langtype.Type {
	switch e := expr.(type) {
	case parser.Literal:
		switch e.Kind {
		case parser.BoolLiteral:
			return langtype.Prim(langtype.Bool)
		case parser.CharLiteral:
			return langtype.Prim(langtype.Char)
		case parser.StringLiteral:
			return langtype.Prim(langtype.String)
		case parser.NumberLiteral:
			if strings.Contains(e.Token.Value, ".") {
				return langtype.Prim(langtype.F32)
			}
			return langtype.Prim(langtype.I32)
		}
		return langtype.Prim(langtype.Any)

	case parser.Identifier:
		sym, ok := sc.Lookup(e.Name())
		if !ok {
			return langtype.Prim(langtype.Any)
		}
		return g.inferredMetaType(sym.Type, e.Meta, sc)

	case parser.Unary:
		if e.Operator.Value == "!" {
			return langtype.Prim(langtype.Bool)
		}
		return g.inferredExpressionType(e.Operand, sc)

	case parser.Binary:
		left := g.inferredExpressionType(e.Left, sc)
		right := g.inferredExpressionType(e.Right, sc)
		switch e.Operator.Value {
		case "==", "!=", "<", "<=", ">", ">=", "&&", "||":
			return langtype.Prim(langtype.Bool)
		default:
			return langtype.Join(left, right)
		}

	case parser.Range:
		return langtype.Prim(langtype.Range)

	case parser.Parenthesized:
		return g.inferredMetaType(g.inferredExpressionType(e.Inner, sc), e.Meta, sc)

	case parser.ArrayLiteral:
		return g.inferredMetaType(g.inferredArrayType(e, sc), e.Meta, sc)

	default:
		return langtype.Prim(langtype.Any)
	}
}

func (g *Generator) inferredMetaType(base langtype.Type, m parser.Meta, sc *scope.Scope) langtype.Type {
	switch meta := m.(type) {
	case nil:
		return base
	case parser.CallMeta:
		if !base.IsFunction() {
			return langtype.Prim(langtype.Any)
		}
		return g.inferredMetaType(base.Return(), meta.Next, sc)
	case parser.IndexMeta:
		var elem langtype.Type
		switch {
		case base.IsArray():
			elem = base.Elem()
		case base.IsPrimitive() && base.Primitive() == langtype.String:
			elem = langtype.Prim(langtype.Char)
		default:
			elem = langtype.Prim(langtype.Any)
		}
		return g.inferredMetaType(elem, meta.Next, sc)
	default:
		return base
	}
}
