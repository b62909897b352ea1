/*
File    : slcc/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_SimpleFunction(t *testing.T) {
	unit, err := Parse(`
		fun add(a: i32, b: i32): i32 {
			return a + b;
		}
	`)
	require.NoError(t, err)
	require.Len(t, unit.Functions, 1)

	fn := unit.Functions[0]
	require.Equal(t, "add", fn.Name.Value)
	require.Len(t, fn.Params, 2)
	require.Equal(t, "a", fn.Params[0].Name.Value)
	require.Equal(t, "i32", fn.Params[0].Type.Literal())
	require.IsType(t, SimpleType{}, fn.ReturnType)
	require.Len(t, fn.Body.Statements, 1)

	ret, ok := fn.Body.Statements[0].(Return)
	require.True(t, ok)
	_, ok = ret.Expression.(Binary)
	require.True(t, ok)
}

func TestParse_ArrayAndRefTypes(t *testing.T) {
	unit, err := Parse(`
		fun f(a: [i32; 4], b: ref i32) {
		}
	`)
	require.NoError(t, err)
	fn := unit.Functions[0]

	arr, ok := fn.Params[0].Type.(ArrayType)
	require.True(t, ok)
	require.Equal(t, "4", arr.Size.Value)

	ref, ok := fn.Params[1].Type.(ReferenceType)
	require.True(t, ok)
	require.IsType(t, SimpleType{}, ref.Inner)
}

func TestParse_FunctionType(t *testing.T) {
	unit, err := Parse(`
		fun apply(f: (i32, i32): i32) {
		}
	`)
	require.NoError(t, err)
	fn := unit.Functions[0]

	ft, ok := fn.Params[0].Type.(FunctionType)
	require.True(t, ok)
	require.Len(t, ft.Params, 2)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	unit, err := Parse(`
		fun f() {
			let x = 1 + 2 * 3;
		}
	`)
	require.NoError(t, err)
	let := unit.Functions[0].Body.Statements[0].(Let)
	bin := let.Expression.(Binary)

	require.Equal(t, "+", bin.Operator.Value)
	require.IsType(t, Literal{}, bin.Left)
	mul, ok := bin.Right.(Binary)
	require.True(t, ok)
	require.Equal(t, "*", mul.Operator.Value)
}

func TestParse_CallAndIndexChain(t *testing.T) {
	unit, err := Parse(`
		fun f() {
			let x = f(1)[0](2);
		}
	`)
	require.NoError(t, err)
	let := unit.Functions[0].Body.Statements[0].(Let)
	ident := let.Expression.(Identifier)

	call, ok := ident.Meta.(CallMeta)
	require.True(t, ok)
	index, ok := call.Next.(IndexMeta)
	require.True(t, ok)
	call2, ok := index.Next.(CallMeta)
	require.True(t, ok)
	require.Nil(t, call2.Next)
}

func TestParse_RangeFor(t *testing.T) {
	unit, err := Parse(`
		fun f() {
			for i in 0..10 {
				print(i);
			}
		}
	`)
	require.NoError(t, err)
	forStmt := unit.Functions[0].Body.Statements[0].(For)
	rng, ok := forStmt.Expression.(Range)
	require.True(t, ok)
	require.Equal(t, "..", rng.Operator.Value)
}

func TestParse_PrintAndPrintln(t *testing.T) {
	unit, err := Parse(`
		fun f() {
			print(1, 2);
			println(3);
		}
	`)
	require.NoError(t, err)
	stmts := unit.Functions[0].Body.Statements

	p1 := stmts[0].(Print)
	require.False(t, p1.NewLine)
	require.Len(t, p1.Expressions, 2)

	p2 := stmts[1].(Print)
	require.True(t, p2.NewLine)
}

func TestParse_AssignmentVsExpressionStatement(t *testing.T) {
	unit, err := Parse(`
		fun f() {
			let x = 1;
			x += 2;
			x;
		}
	`)
	require.NoError(t, err)
	stmts := unit.Functions[0].Body.Statements

	assign, ok := stmts[1].(Assignment)
	require.True(t, ok)
	require.Equal(t, "+=", assign.Operator.Value)

	_, ok = stmts[2].(ExpressionStatement)
	require.True(t, ok)
}

func TestParse_IndexedAssignmentTarget(t *testing.T) {
	unit, err := Parse(`
		fun f() {
			let a: [i32; 2] = [1, 2];
			a[0] = 9;
		}
	`)
	require.NoError(t, err)
	assign := unit.Functions[0].Body.Statements[1].(Assignment)
	ident, ok := assign.Target.(Identifier)
	require.True(t, ok)
	_, ok = ident.Meta.(IndexMeta)
	require.True(t, ok)
}

func TestParse_SyntaxErrorOnBadToken(t *testing.T) {
	_, err := Parse(`fun f() { let x = @; }`)
	require.Error(t, err)
}

func TestParse_SyntaxErrorFirstFailureFatal(t *testing.T) {
	_, err := Parse(`fun f() { let x = ; }`)
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParse_DoWhile(t *testing.T) {
	unit, err := Parse(`
		fun f() {
			do {
				break;
			} while true;
		}
	`)
	require.NoError(t, err)
	dw, ok := unit.Functions[0].Body.Statements[0].(DoWhile)
	require.True(t, ok)
	require.Len(t, dw.Body.Statements, 1)
}

func TestParse_BlocksGetDistinctIDs(t *testing.T) {
	unit, err := Parse(`
		fun f() {
			{ }
			{ }
		}
	`)
	require.NoError(t, err)
	body := unit.Functions[0].Body
	first := body.Statements[0].(Block)
	second := body.Statements[1].(Block)
	require.NotEqual(t, first.ID, second.ID)
}
