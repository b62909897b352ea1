/*
File    : slcc/analyzer/resolve_type.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package analyzer

import (
	"strconv"

	"github.com/akashmaji946/slcc/langtype"
	"github.com/akashmaji946/slcc/parser"
	"github.com/akashmaji946/slcc/scope"
)

// resolveType turns a parser.SyntaxType (an unresolved type reference) into
// a langtype.Type (the analyzer's semantic representation), checking every
// named component against sc. An unresolvable name degrades to `any` and
// records an IdentifierNotFound diagnostic rather than aborting -- one bad
// type name in a signature shouldn't hide every other problem in it.
func (a *Analyzer) resolveType(st parser.SyntaxType, sc *scope.Scope) langtype.Type {
	switch t := st.(type) {
	case parser.SimpleType:
		name := t.Identifier.Value
		sym, ok := sc.Lookup(name)
		if !ok || sym.Kind != scope.TypeSymbol {
			a.report(Diagnostic{Kind: IdentifierNotFound, Position: t.Identifier.Position, Name: name})
			return langtype.Prim(langtype.Any)
		}
		prim, ok := langtype.FromName(name)
		if !ok {
			a.report(Diagnostic{Kind: IdentifierNotFound, Position: t.Identifier.Position, Name: name})
			return langtype.Prim(langtype.Any)
		}
		return prim

	case parser.ArrayType:
		elem := a.resolveType(t.Element, sc)
		size, err := strconv.Atoi(t.Size.Value)
		if err != nil {
			size = 0
		}
		return langtype.Array(elem, size)

	case parser.ReferenceType:
		return langtype.Ref(a.resolveType(t.Inner, sc))

	case parser.FunctionType:
		params := make([]langtype.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = a.resolveType(p, sc)
		}
		ret := a.resolveType(t.Return, sc)
		return langtype.Function(params, ret)

	default:
		return langtype.Prim(langtype.Any)
	}
}
