/*
File    : slcc/scope/symbol.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/slcc/langtype"

// SymbolKind tags which binding variant a Symbol is.
type SymbolKind int

const (
	VariableSymbol SymbolKind = iota
	ParameterSymbol
	ConstSymbol
	FunctionSymbol
	TypeSymbol
)

// Symbol is a named binding in a scope: a variable, constant, parameter,
// function, or primitive type marker. Type symbols carry no type (they name
// a type, they aren't typed themselves); every other kind does.
type Symbol struct {
	Kind SymbolKind
	Name string
	Type langtype.Type
}

func NewVariable(name string, t langtype.Type) Symbol {
	return Symbol{Kind: VariableSymbol, Name: name, Type: t}
}

func NewParameter(name string, t langtype.Type) Symbol {
	return Symbol{Kind: ParameterSymbol, Name: name, Type: t}
}

func NewConst(name string, t langtype.Type) Symbol {
	return Symbol{Kind: ConstSymbol, Name: name, Type: t}
}

func NewFunction(name string, t langtype.Type) Symbol {
	return Symbol{Kind: FunctionSymbol, Name: name, Type: t}
}

func NewType(name string) Symbol {
	return Symbol{Kind: TypeSymbol, Name: name}
}

// IsAssignable reports whether this symbol kind can appear on the left of
// an assignment: Variables can, Parameters/Consts/Functions/Types cannot.
func (s Symbol) IsAssignable() bool {
	return s.Kind == VariableSymbol
}
