/*
File    : slcc/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package scope implements the Source Language's lexical scope chain. Each
scope owns a flat symbol table and a parent link; lookup checks the local
table first, then recurses into the parent. A scope additionally tracks
whether it (or any ancestor) is a loop body -- gating break/continue -- and,
for function scopes, the enclosing function's name and declared return type
-- used to check return statements.
*/
package scope

import "github.com/akashmaji946/slcc/langtype"

// EnclosingFunction records the name and return type of the function whose
// body a scope (or one of its ancestors) belongs to.
type EnclosingFunction struct {
	Name       string
	ReturnType langtype.Type
}

// Scope is one lexical scope: a symbol table plus a parent link. Block ids
// are not stored on the scope itself -- the analyzer's ScopeMap keys scopes
// by the Block's id, so scopes created for non-block constructs (e.g. the
// implicit global scope) never need one.
type Scope struct {
	parent     *Scope
	isLoop     bool
	enclosing  *EnclosingFunction
	table      map[string]Symbol
}

// NewGlobal creates the root scope with no parent.
func NewGlobal() *Scope {
	return &Scope{table: make(map[string]Symbol)}
}

// New creates a child scope of parent. isLoop marks this scope itself (not
// its ancestors) as a loop body; enclosing, if non-nil, overrides the
// enclosing-function record inherited from parent (set when entering a
// function body, left nil for every other nested scope).
func New(parent *Scope, isLoop bool, enclosing *EnclosingFunction) *Scope {
	return &Scope{
		parent:    parent,
		isLoop:    isLoop,
		enclosing: enclosing,
		table:     make(map[string]Symbol),
	}
}

// Parent returns the enclosing scope, or nil for the global scope.
func (s *Scope) Parent() *Scope { return s.parent }

// IsLoop reports whether this scope or any ancestor is a loop body. This is
// what gates break/continue validity.
func (s *Scope) IsLoop() bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.isLoop {
			return true
		}
	}
	return false
}

// EnclosingFunction returns the nearest enclosing function record, walking
// up the chain, or nil if this scope is not nested inside any function body
// (i.e. it is the global scope).
func (s *Scope) EnclosingFunction() *EnclosingFunction {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.enclosing != nil {
			return cur.enclosing
		}
	}
	return nil
}

// Insert adds a symbol to this scope's own table. ok is false if a symbol
// with the same name already exists at this nesting level -- the caller is
// expected to turn that into a DuplicatedIdentifier diagnostic; Insert still
// overwrites so analysis can continue with the newest binding.
func (s *Scope) Insert(sym Symbol) (ok bool) {
	_, exists := s.table[sym.Name]
	s.table[sym.Name] = sym
	return !exists
}

// Lookup searches this scope's table, then recursively the parent chain.
func (s *Scope) Lookup(name string) (Symbol, bool) {
	if sym, ok := s.table[name]; ok {
		return sym, true
	}
	if s.parent != nil {
		return s.parent.Lookup(name)
	}
	return Symbol{}, false
}

// LookupLocal searches only this scope's own table, used to detect
// redeclaration at a single nesting level.
func (s *Scope) LookupLocal(name string) (Symbol, bool) {
	sym, ok := s.table[name]
	return sym, ok
}

// BlockID uniquely identifies a Block across one compilation unit. It is a
// compilation-local monotonic counter rather than a UUID: simpler, more
// cache-friendly, and sufficient since ids never need to survive a single run.
type BlockID int64

// Map associates every reachable Block's id with the Scope active inside
// it. The analyzer is the sole writer; once analysis finishes, the emitter
// treats it as read-only.
type Map map[BlockID]*Scope
