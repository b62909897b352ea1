/*
File    : slcc/analyzer/analyzer_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package analyzer

import (
	"github.com/akashmaji946/slcc/langtype"
	"github.com/akashmaji946/slcc/parser"
	"github.com/akashmaji946/slcc/scope"
)

func (a *Analyzer) analyzeStatement(stmt parser.Statement, sc *scope.Scope) {
	switch s := stmt.(type) {
	case parser.Let:
		a.analyzeLet(s, sc)
	case parser.Const:
		a.analyzeConst(s, sc)
	case parser.Block:
		a.analyzeBlock(s, sc, false, nil)
	case parser.Assignment:
		a.analyzeAssignment(s, sc)
	case parser.Return:
		a.analyzeReturn(s, sc)
	case parser.If:
		a.analyzeIf(s, sc)
	case parser.While:
		a.analyzeWhile(s, sc)
	case parser.DoWhile:
		a.analyzeDoWhile(s, sc)
	case parser.For:
		a.analyzeFor(s, sc)
	case parser.Break:
		if !sc.IsLoop() {
			a.report(Diagnostic{Kind: InvalidBreak, Position: s.Keyword.Position})
		}
	case parser.Continue:
		if !sc.IsLoop() {
			a.report(Diagnostic{Kind: InvalidContinue, Position: s.Keyword.Position})
		}
	case parser.Print:
		for _, e := range s.Expressions {
			a.analyzeExpression(e, sc)
		}
	case parser.ExpressionStatement:
		a.analyzeExpression(s.Expression, sc)
	}
}

// analyzeLet checks a `let` statement. The variable symbol is inserted even
// when errors are found, using the best type information available: the
// explicit type if given, else the inferred expression type, else `any`.
func (a *Analyzer) analyzeLet(l parser.Let, sc *scope.Scope) {
	if _, exists := sc.LookupLocal(l.Name.Value); exists {
		a.report(Diagnostic{Kind: DuplicatedIdentifier, Position: l.Name.Position, Name: l.Name.Value})
	}

	var declared langtype.Type
	hasDeclared := false
	if l.Type != nil {
		declared = a.resolveType(l.Type, sc)
		hasDeclared = true
	}

	var inferred langtype.Type
	hasInferred := false
	if l.Expression != nil {
		inferred = a.analyzeExpressionExpecting(l.Expression, sc, declared, hasDeclared)
		hasInferred = true
		if hasDeclared && !compatible(declared, inferred) {
			a.report(Diagnostic{Kind: TypeMismatch, Position: exprPosition(l.Expression), Expected: declared, Found: inferred})
		}
	}

	var symType langtype.Type
	switch {
	case hasDeclared:
		symType = declared
	case hasInferred:
		symType = inferred
	default:
		a.report(Diagnostic{Kind: MissingTypeOrExpression, Position: l.Name.Position, Name: l.Name.Value})
		symType = langtype.Prim(langtype.Any)
	}

	sc.Insert(scope.NewVariable(l.Name.Value, symType))
}

func (a *Analyzer) analyzeConst(c parser.Const, sc *scope.Scope) {
	if _, exists := sc.LookupLocal(c.Name.Value); exists {
		a.report(Diagnostic{Kind: DuplicatedIdentifier, Position: c.Name.Position, Name: c.Name.Value})
	}

	var declared langtype.Type
	hasDeclared := false
	if c.Type != nil {
		declared = a.resolveType(c.Type, sc)
		hasDeclared = true
	}

	inferred := a.analyzeExpression(c.Expression, sc)
	if hasDeclared && !compatible(declared, inferred) {
		a.report(Diagnostic{Kind: TypeMismatch, Position: exprPosition(c.Expression), Expected: declared, Found: inferred})
	}

	symType := inferred
	if hasDeclared {
		symType = declared
	}
	sc.Insert(scope.NewConst(c.Name.Value, symType))
}

// onlyIndexChain reports whether a postfix meta chain consists solely of
// Index links (no Call), the only chain shape an assignment target, besides
// a bare identifier, may carry.
func onlyIndexChain(m parser.Meta) bool {
	for m != nil {
		idx, ok := m.(parser.IndexMeta)
		if !ok {
			return false
		}
		m = idx.Next
	}
	return true
}

func (a *Analyzer) analyzeAssignment(asg parser.Assignment, sc *scope.Scope) {
	pos := exprPosition(asg.Target)

	var targetType langtype.Type
	id, isIdentifier := asg.Target.(parser.Identifier)

	switch {
	case !isIdentifier || !onlyIndexChain(id.Meta):
		a.report(Diagnostic{Kind: ValueCannotBeReassigned, Position: pos})
		targetType = a.analyzeExpression(asg.Target, sc)

	default:
		sym, found := sc.Lookup(id.Name())
		if !found {
			a.report(Diagnostic{Kind: IdentifierNotFound, Position: pos, Name: id.Name()})
			targetType = a.analyzeMeta(langtype.Prim(langtype.Any), id.Meta, sc, pos, id.Name())
		} else {
			if !sym.IsAssignable() {
				a.report(Diagnostic{Kind: ValueCannotBeReassigned, Position: pos, Name: id.Name()})
			}
			targetType = a.analyzeMeta(sym.Type, id.Meta, sc, pos, id.Name())
		}
	}

	valueType := a.analyzeExpression(asg.Value, sc)

	if asg.Operator.IsCompoundAssign() {
		if !targetType.IsNumber() {
			a.report(Diagnostic{Kind: InvalidLeftOperand, Position: pos, Found: targetType})
		} else if !valueType.IsNumber() {
			a.report(Diagnostic{Kind: InvalidRightOperand, Position: pos, Found: valueType})
		}
		return
	}

	if !compatible(targetType, valueType) {
		a.report(Diagnostic{Kind: TypeMismatch, Position: pos, Expected: targetType, Found: valueType})
	}
}

func (a *Analyzer) analyzeCondition(cond parser.Expression, sc *scope.Scope) {
	t := a.analyzeExpression(cond, sc)
	if !t.IsBool() && !t.IsAny() {
		a.report(Diagnostic{Kind: ExpectedType, Position: exprPosition(cond), Expected: langtype.Prim(langtype.Bool), Found: t})
	}
}

func (a *Analyzer) analyzeIf(s parser.If, sc *scope.Scope) {
	a.analyzeCondition(s.Condition, sc)
	a.analyzeBlock(s.Then, sc, false, nil)
	if s.Else != nil {
		a.analyzeBlock(*s.Else, sc, false, nil)
	}
}

// analyzeLoopBody analyzes a loop body's statements directly in a loop
// scope the caller has already built, then registers that very scope in
// the scope map under the block's id -- a loop body does not get a second,
// nested scope of its own beyond the loop scope itself.
func (a *Analyzer) analyzeLoopBody(body parser.Block, loopScope *scope.Scope) {
	for _, stmt := range body.Statements {
		a.analyzeStatement(stmt, loopScope)
	}
	a.scopes[body.ID] = loopScope
}

func (a *Analyzer) analyzeWhile(s parser.While, sc *scope.Scope) {
	a.analyzeCondition(s.Condition, sc)
	loopScope := scope.New(sc, true, nil)
	a.analyzeLoopBody(s.Body, loopScope)
}

func (a *Analyzer) analyzeDoWhile(s parser.DoWhile, sc *scope.Scope) {
	loopScope := scope.New(sc, true, nil)
	a.analyzeLoopBody(s.Body, loopScope)
	a.analyzeCondition(s.Condition, sc)
}

func (a *Analyzer) analyzeFor(s parser.For, sc *scope.Scope) {
	var inductionType langtype.Type

	rangeExpr, isRange := s.Expression.(parser.Range)
	if !isRange {
		found := a.analyzeExpression(s.Expression, sc)
		a.report(Diagnostic{Kind: ExpectedType, Position: exprPosition(s.Expression), Expected: langtype.Prim(langtype.Range), Found: found})
		inductionType = langtype.Prim(langtype.Any)
	} else {
		left := a.analyzeExpression(rangeExpr.Left, sc)
		right := a.analyzeExpression(rangeExpr.Right, sc)
		if !left.IsNumber() || !right.IsNumber() {
			a.report(Diagnostic{Kind: InvalidRangeOperands, Position: rangeExpr.Operator.Position, Expected: left, Found: right})
		}
		inductionType = langtype.Join(left, right)
	}

	loopScope := scope.New(sc, true, nil)
	loopScope.Insert(scope.NewConst(s.Binding.Value, inductionType))
	a.analyzeLoopBody(s.Body, loopScope)
}

func (a *Analyzer) analyzeReturn(s parser.Return, sc *scope.Scope) {
	enclosing := sc.EnclosingFunction()
	if enclosing == nil {
		a.report(Diagnostic{Kind: InvalidReturn, Position: s.Keyword.Position})
		if s.Expression != nil {
			a.analyzeExpression(s.Expression, sc)
		}
		return
	}

	var actual langtype.Type
	if s.Expression != nil {
		actual = a.analyzeExpression(s.Expression, sc)
	} else {
		actual = langtype.Prim(langtype.Void)
	}

	if !compatible(enclosing.ReturnType, actual) {
		a.report(Diagnostic{Kind: TypeMismatch, Position: s.Keyword.Position, Expected: enclosing.ReturnType, Found: actual})
	}
}
