/*
File    : slcc/analyzer/analyzer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package analyzer implements the two-pass semantic analysis that sits
between parsing and C emission: lexical scoping, type inference, and the
full catalogue of semantic diagnostics this compiler can report.

Pass 1 walks every top-level function in source order, registering its
signature in the global scope -- this is what lets two functions call each
other regardless of declaration order (mutual recursion, forward
references). Pass 2 then walks each function's body with its signature
already visible to every other function, producing the scope map the
emitter later reads.

Diagnostics never stop analysis: every rule that finds a problem appends a
Diagnostic and keeps going, substituting `any` for an expression's type when
it cannot otherwise be determined, so one mistake doesn't manufacture ten
more downstream.
*/
package analyzer

import (
	"github.com/akashmaji946/slcc/langtype"
	"github.com/akashmaji946/slcc/lexer"
	"github.com/akashmaji946/slcc/parser"
	"github.com/akashmaji946/slcc/scope"
)

// Result is everything analysis produces: the scope map the emitter reads,
// and the diagnostics found along the way. The emitter must not run if
// Diagnostics is non-empty.
type Result struct {
	Global      *scope.Scope
	Scopes      scope.Map
	Diagnostics []Diagnostic
}

// funcInfo is the pass-1-computed signature of one function, carried
// forward into pass 2 so bodies don't re-resolve their own parameter types.
type funcInfo struct {
	node       parser.Function
	paramNames []string
	paramTypes []langtype.Type
	returnType langtype.Type
}

// Analyzer holds the running state of one analysis pass over one
// CompilationUnit: the global scope, the scope map under construction, the
// accumulated diagnostics, and the pass-1-resolved function signatures.
type Analyzer struct {
	global      *scope.Scope
	scopes      scope.Map
	diagnostics []Diagnostic
	functions   []funcInfo
}

// Analyze runs both passes over unit and returns the resulting scope map
// and diagnostic list.
func Analyze(unit parser.CompilationUnit) Result {
	a := &Analyzer{
		global: scope.NewGlobal(),
		scopes: make(scope.Map),
	}

	for _, prim := range langtype.Primitives() {
		a.global.Insert(scope.NewType(string(prim)))
	}

	a.passOneDeclarations(unit)
	a.passTwoBodies()

	if !a.hasMain() {
		a.report(Diagnostic{Kind: MissingMain, Position: lexer.Position{}})
	}

	return Result{Global: a.global, Scopes: a.scopes, Diagnostics: a.diagnostics}
}

func (a *Analyzer) report(d Diagnostic) {
	a.diagnostics = append(a.diagnostics, d)
}

func (a *Analyzer) hasMain() bool {
	for _, f := range a.functions {
		if f.node.Name.Value == "main" {
			return true
		}
	}
	return false
}

// passOneDeclarations registers every function's signature in the global
// scope before any body is checked.
func (a *Analyzer) passOneDeclarations(unit parser.CompilationUnit) {
	for _, fn := range unit.Functions {
		name := fn.Name.Value

		if _, exists := a.global.LookupLocal(name); exists {
			a.report(Diagnostic{Kind: DuplicatedIdentifier, Position: fn.Name.Position, Name: name})
		}

		seen := make(map[string]bool, len(fn.Params))
		paramNames := make([]string, len(fn.Params))
		paramTypes := make([]langtype.Type, len(fn.Params))
		for i, p := range fn.Params {
			pname := p.Name.Value
			if seen[pname] {
				a.report(Diagnostic{Kind: DuplicatedIdentifier, Position: p.Name.Position, Name: pname})
			}
			seen[pname] = true
			paramNames[i] = pname
			paramTypes[i] = a.resolveType(p.Type, a.global)
		}

		var returnType langtype.Type
		if fn.ReturnType != nil {
			returnType = a.resolveType(fn.ReturnType, a.global)
		} else {
			returnType = langtype.Prim(langtype.Void)
		}

		if returnType.IsArray() {
			a.report(Diagnostic{Kind: CannotReturnArray, Position: fn.Name.Position, Name: name})
		}
		if returnType.IsFunction() {
			a.report(Diagnostic{Kind: CannotReturnFunction, Position: fn.Name.Position, Name: name})
		}

		if name == "main" {
			if len(fn.Params) != 0 {
				a.report(Diagnostic{Kind: MainFunctionWithParameters, Position: fn.Name.Position})
			}
			if !returnType.IsVoid() {
				a.report(Diagnostic{Kind: MainFunctionWithReturn, Position: fn.Name.Position})
			}
		}

		a.global.Insert(scope.NewFunction(name, langtype.Function(paramTypes, returnType)))
		a.functions = append(a.functions, funcInfo{
			node:       fn,
			paramNames: paramNames,
			paramTypes: paramTypes,
			returnType: returnType,
		})
	}
}

// passTwoBodies checks every function body, now that every function's
// signature (including its own, for recursive calls) is visible.
func (a *Analyzer) passTwoBodies() {
	for _, fi := range a.functions {
		fnScope := scope.New(a.global, false, &scope.EnclosingFunction{
			Name:       fi.node.Name.Value,
			ReturnType: fi.returnType,
		})
		for i, pname := range fi.paramNames {
			fnScope.Insert(scope.NewParameter(pname, fi.paramTypes[i]))
		}
		a.analyzeBlock(fi.node.Body, fnScope, false, nil)
	}
}

// analyzeBlock creates a fresh child scope for block, analyzes every
// statement within it, registers the scope under the block's id, and
// returns it.
func (a *Analyzer) analyzeBlock(block parser.Block, parent *scope.Scope, isLoop bool, enclosing *scope.EnclosingFunction) *scope.Scope {
	sc := scope.New(parent, isLoop, enclosing)
	for _, stmt := range block.Statements {
		a.analyzeStatement(stmt, sc)
	}
	a.scopes[block.ID] = sc
	return sc
}
