/*
File    : slcc/langtype/langtype.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package langtype implements the Source Language's semantic type system: the
fully-resolved types the analyzer assigns to expressions, as distinct from
the unresolved syntactic type references the parser produces (see package
parser's SyntaxType). Equality between semantic types is structural.
*/
package langtype

import "fmt"

// Primitive enumerates the language's built-in scalar and special types.
type Primitive string

const (
	U8     Primitive = "u8"
	I8     Primitive = "i8"
	U16    Primitive = "u16"
	I16    Primitive = "i16"
	U32    Primitive = "u32"
	I32    Primitive = "i32"
	U64    Primitive = "u64"
	I64    Primitive = "i64"
	F32    Primitive = "f32"
	F64    Primitive = "f64"
	Bool   Primitive = "bool"
	Char   Primitive = "char"
	String Primitive = "string"
	Void   Primitive = "void"
	Range  Primitive = "range"
	Any    Primitive = "any"
)

// primitiveSet lists every Primitive that FromName should recognize as a
// seeded global Type symbol.
var primitiveSet = []Primitive{U8, I8, U16, I16, U32, I32, U64, I64, F32, F64, Bool, Char, String, Void, Range, Any}

// Primitives returns every seeded primitive name, used by the analyzer to
// populate the global scope's Type symbols (spec invariant: the global
// scope always contains a Type symbol for every primitive).
func Primitives() []Primitive {
	out := make([]Primitive, len(primitiveSet))
	copy(out, primitiveSet)
	return out
}

// Type is the semantic type sum: a bare Primitive, an Array(elem,size), a
// Ref(inner), or a Function(params,return).
type Type struct {
	kind      typeKind
	primitive Primitive
	elem      *Type
	size      int
	inner     *Type
	params    []Type
	ret       *Type
}

type typeKind int

const (
	kindPrimitive typeKind = iota
	kindArray
	kindRef
	kindFunction
)

func Prim(p Primitive) Type { return Type{kind: kindPrimitive, primitive: p} }

func Array(elem Type, size int) Type {
	return Type{kind: kindArray, elem: &elem, size: size}
}

func Ref(inner Type) Type {
	return Type{kind: kindRef, inner: &inner}
}

func Function(params []Type, ret Type) Type {
	return Type{kind: kindFunction, params: params, ret: &ret}
}

func FromName(name string) (Type, bool) {
	for _, p := range primitiveSet {
		if string(p) == name {
			return Prim(p), true
		}
	}
	return Type{}, false
}

func (t Type) IsPrimitive() bool { return t.kind == kindPrimitive }
func (t Type) IsArray() bool     { return t.kind == kindArray }
func (t Type) IsRef() bool       { return t.kind == kindRef }
func (t Type) IsFunction() bool  { return t.kind == kindFunction }

func (t Type) Primitive() Primitive { return t.primitive }

// Elem returns the element type of an Array; panics if t is not an Array.
func (t Type) Elem() Type { return *t.elem }

// Size returns the declared arity of an Array; returns 0 if t is not an Array.
func (t Type) Size() int { return t.size }

// Inner returns the pointee type of a Ref; panics if t is not a Ref.
func (t Type) Inner() Type { return *t.inner }

// Params returns a Function's parameter types; returns nil if t is not a Function.
func (t Type) Params() []Type { return t.params }

// Return returns a Function's return type; panics if t is not a Function.
func (t Type) Return() Type { return *t.ret }

// IsAny reports whether t is exactly the `any` primitive, the type used to
// suppress diagnostic cascades when a subexpression's type can't be
// determined.
func (t Type) IsAny() bool {
	return t.kind == kindPrimitive && t.primitive == Any
}

// IsNumber reports whether t is one of the numeric primitives, or `any`
// (which is compatible with everything). This predicate, applied
// consistently, is what makes "two numeric types are always
// assignment-compatible" hold across let/const/assignment/return/call-arg/
// binary-arithmetic checking.
func (t Type) IsNumber() bool {
	if t.kind != kindPrimitive {
		return false
	}
	switch t.primitive {
	case Any, U8, I8, U16, I16, U32, I32, U64, I64, F32, F64:
		return true
	}
	return false
}

// IsInteger reports whether t is an integer primitive (no float), or `any`.
func (t Type) IsInteger() bool {
	if t.kind != kindPrimitive {
		return false
	}
	switch t.primitive {
	case Any, U8, I8, U16, I16, U32, I32, U64, I64:
		return true
	}
	return false
}

func (t Type) IsBool() bool { return t.kind == kindPrimitive && t.primitive == Bool }
func (t Type) IsVoid() bool { return t.kind == kindPrimitive && t.primitive == Void }

// Equal reports structural equality between semantic types.
func (t Type) Equal(other Type) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case kindPrimitive:
		return t.primitive == other.primitive
	case kindArray:
		return t.size == other.size && t.elem.Equal(*other.elem)
	case kindRef:
		return t.inner.Equal(*other.inner)
	case kindFunction:
		if len(t.params) != len(other.params) || !t.ret.Equal(*other.ret) {
			return false
		}
		for i := range t.params {
			if !t.params[i].Equal(other.params[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// numericPrecedence orders the numeric primitives from widest to narrowest:
// f64>f32>i64>u64>i32>u32>i16>u16>i8>u8.
var numericPrecedence = []Primitive{F64, F32, I64, U64, I32, U32, I16, U16, I8, U8}

// Join computes the result type of mixing two numeric operands: if either is
// `any` the result is `any`; otherwise the operand with the higher
// precedence wins. Join is commutative and idempotent by construction
// (it only inspects the pair's membership in the precedence table).
func Join(a, b Type) Type {
	if a.IsAny() || b.IsAny() {
		return Prim(Any)
	}
	for _, p := range numericPrecedence {
		if a.primitive == p || b.primitive == p {
			return Prim(p)
		}
	}
	return Prim(U8)
}

func (t Type) String() string {
	switch t.kind {
	case kindPrimitive:
		return string(t.primitive)
	case kindArray:
		return fmt.Sprintf("[%s; %d]", t.elem.String(), t.size)
	case kindRef:
		return fmt.Sprintf("ref %s", t.inner.String())
	case kindFunction:
		parts := make([]string, len(t.params))
		for i, p := range t.params {
			parts[i] = p.String()
		}
		return fmt.Sprintf("(%v): %s", parts, t.ret.String())
	}
	return "?"
}
