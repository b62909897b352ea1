/*
File    : slcc/emitter/emitter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package emitter lowers a checked CompilationUnit into a single C99
translation unit. It assumes the unit has already been through
package analyzer with zero diagnostics -- Emit panics on a nil global scope,
not on malformed input, since that contract is the caller's to keep.

Generation runs in two passes: every non-main function gets a forward
declaration first, so call order in the source never has to match call
order in the emitted C, then every function (main included) gets its full
definition.
*/
package emitter

import (
	"github.com/akashmaji946/slcc/parser"
	"github.com/akashmaji946/slcc/scope"
)

// Generator threads the AST being lowered, the analyzer's scope map, and the
// CCode buffer the whole package's generation methods accumulate into.
type Generator struct {
	unit   parser.CompilationUnit
	global *scope.Scope
	scopes scope.Map
	ccode  *CCode
}

// New returns a Generator ready to Emit unit, using the scope map and global
// scope produced by analyzer.Analyze.
func New(unit parser.CompilationUnit, global *scope.Scope, scopes scope.Map) *Generator {
	return &Generator{
		unit:   unit,
		global: global,
		scopes: scopes,
		ccode:  NewCCode(),
	}
}

// Emit lowers the whole compilation unit and returns the generated C source.
// stdio.h is always included: every program can print, and pushing it
// unconditionally is simpler than scanning ahead for a print statement.
func Emit(unit parser.CompilationUnit, global *scope.Scope, scopes scope.Map) string {
	g := New(unit, global, scopes)
	g.ccode.PushImport("#include<stdio.h>")

	for _, fn := range g.unit.Functions {
		g.GeneratePrototype(fn)
	}
	for _, fn := range g.unit.Functions {
		g.Generate(fn)
	}

	return g.ccode.Content()
}
