/*
File    : slcc/parser/type.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Syntax types are the parser's unresolved type references -- what the
grammar's `type` production builds, before the analyzer resolves them
against the global scope into a langtype.Type. They mirror the AST's
recursive-sum-type style: a closed set of variants dispatched with a type
switch, never an open class hierarchy.
*/
package parser

import "github.com/akashmaji946/slcc/lexer"

// SyntaxType is the sealed interface implemented by every type-reference
// variant the parser can build: Simple, Array, Reference, Function.
type SyntaxType interface {
	syntaxType()
	Literal() string
}

// SimpleType names a primitive or (in a future extension) user type by
// identifier: `i32`, `bool`, `string`, ...
type SimpleType struct {
	Identifier lexer.Token
}

func (SimpleType) syntaxType()        {}
func (t SimpleType) Literal() string  { return t.Identifier.Value }

// ArrayType is `[elem; N]`.
type ArrayType struct {
	Element SyntaxType
	Size    lexer.Token // NumberLit token holding the declared arity
}

func (ArrayType) syntaxType() {}
func (t ArrayType) Literal() string {
	return "[" + t.Element.Literal() + ";" + t.Size.Value + "]"
}

// ReferenceType is `ref T`.
type ReferenceType struct {
	Inner SyntaxType
}

func (ReferenceType) syntaxType() {}
func (t ReferenceType) Literal() string {
	return "ref " + t.Inner.Literal()
}

// FunctionType is `(T1, T2, ...): R`.
type FunctionType struct {
	Params []SyntaxType
	Return SyntaxType
}

func (FunctionType) syntaxType() {}
func (t FunctionType) Literal() string {
	s := "("
	for i, p := range t.Params {
		if i > 0 {
			s += ","
		}
		s += p.Literal()
	}
	return s + "):" + t.Return.Literal()
}
