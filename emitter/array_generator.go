/*
File    : slcc/emitter/array_generator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Array literals emit as C99 compound literals: `(T[N1][N2]...){e1,e2,...}`.
Nested array literals (the only way a multi-dimensional array can be
written) are flattened into one initializer list, recursively, since C's
compound-literal syntax for a multi-dimensional array takes one flat braced
list rather than nested braces per dimension level.
*/
package emitter

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/slcc/langtype"
	"github.com/akashmaji946/slcc/parser"
	"github.com/akashmaji946/slcc/scope"
)

// inferredArrayType re-derives an array literal's semantic type at
// emission time: the first element's type (or `any` if empty), promoted
// through every later element via the numeric join when elements are
// mixed-width numbers. The analyzer does not apply this join; it types the
// literal by its first element alone.
func (g *Generator) inferredArrayType(arr parser.ArrayLiteral, sc *scope.Scope) langtype.Type {
	if len(arr.Elements) == 0 {
		return langtype.Array(langtype.Prim(langtype.Any), 0)
	}

	elemType := g.inferredExpressionType(arr.Elements[0], sc)
	for _, el := range arr.Elements[1:] {
		t := g.inferredExpressionType(el, sc)
		if elemType.IsNumber() && t.IsNumber() {
			elemType = langtype.Join(elemType, t)
		}
	}
	return langtype.Array(elemType, len(arr.Elements))
}

// generateArrayExpression renders a compound literal for an array literal
// whose semantic type is t.
func (g *Generator) generateArrayExpression(t langtype.Type, elements []parser.Expression, meta parser.Meta, sc *scope.Scope) string {
	root, dims := arrayRootAndDimensions(t)
	rootC := g.ccode.GetType(root)

	var dimParts strings.Builder
	for _, d := range dims {
		dimParts.WriteString("[")
		dimParts.WriteString(strconv.Itoa(d))
		dimParts.WriteString("]")
	}

	flat := g.flattenArrayElements(elements, sc)

	code := "(" + rootC + dimParts.String() + "){" + strings.Join(flat, ",") + "}"
	if meta != nil {
		code += g.generateMeta(meta, sc)
	}
	return code
}

// flattenArrayElements recursively expands nested array-literal elements
// into one flat list of generated C expressions.
func (g *Generator) flattenArrayElements(elements []parser.Expression, sc *scope.Scope) []string {
	var out []string
	for _, el := range elements {
		if nested, ok := el.(parser.ArrayLiteral); ok {
			out = append(out, g.flattenArrayElements(nested.Elements, sc)...)
			continue
		}
		out = append(out, g.generateExpression(el, sc))
	}
	return out
}
