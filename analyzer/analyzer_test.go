/*
File    : slcc/analyzer/analyzer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package analyzer

import (
	"testing"

	"github.com/akashmaji946/slcc/parser"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, src string) Result {
	t.Helper()
	unit, err := parser.Parse(src)
	require.NoError(t, err)
	return Analyze(unit)
}

func kindsOf(diags []Diagnostic) []Kind {
	out := make([]Kind, len(diags))
	for i, d := range diags {
		out[i] = d.Kind
	}
	return out
}

func TestAnalyze_CleanProgramHasNoDiagnostics(t *testing.T) {
	result := analyze(t, `
		fun add(a: i32, b: i32): i32 {
			return a + b;
		}
		fun main() {
			let x = add(1, 2);
		}
	`)
	require.Empty(t, result.Diagnostics)
}

func TestAnalyze_MissingMain(t *testing.T) {
	result := analyze(t, `
		fun f() {
		}
	`)
	require.Contains(t, kindsOf(result.Diagnostics), MissingMain)
}

func TestAnalyze_DuplicatedIdentifier(t *testing.T) {
	result := analyze(t, `
		fun main() {
			let x = 1;
			let x = 2;
		}
	`)
	require.Contains(t, kindsOf(result.Diagnostics), DuplicatedIdentifier)
}

func TestAnalyze_IdentifierNotFound(t *testing.T) {
	result := analyze(t, `
		fun main() {
			let x = y;
		}
	`)
	require.Contains(t, kindsOf(result.Diagnostics), IdentifierNotFound)
}

func TestAnalyze_MainWithParametersAndReturn(t *testing.T) {
	result := analyze(t, `
		fun main(a: i32): i32 {
			return 1;
		}
	`)
	kinds := kindsOf(result.Diagnostics)
	require.Contains(t, kinds, MainFunctionWithParameters)
	require.Contains(t, kinds, MainFunctionWithReturn)
}

func TestAnalyze_MutualRecursionAllowed(t *testing.T) {
	result := analyze(t, `
		fun isEven(n: i32): bool {
			if n == 0 {
				return true;
			}
			return isOdd(n - 1);
		}
		fun isOdd(n: i32): bool {
			if n == 0 {
				return false;
			}
			return isEven(n - 1);
		}
		fun main() {
		}
	`)
	require.Empty(t, result.Diagnostics)
}

func TestAnalyze_TypeMismatchOnLet(t *testing.T) {
	result := analyze(t, `
		fun main() {
			let x: bool = 1;
		}
	`)
	require.Contains(t, kindsOf(result.Diagnostics), TypeMismatch)
}

func TestAnalyze_NumericTypesAreCompatible(t *testing.T) {
	result := analyze(t, `
		fun main() {
			let x: f64 = 1;
			let y: i8 = 2;
		}
	`)
	require.Empty(t, result.Diagnostics)
}

func TestAnalyze_AssignmentToConstIsInvalid(t *testing.T) {
	result := analyze(t, `
		fun main() {
			const x = 1;
			x = 2;
		}
	`)
	require.Contains(t, kindsOf(result.Diagnostics), ValueCannotBeReassigned)
}

func TestAnalyze_IndexedAssignmentAllowed(t *testing.T) {
	result := analyze(t, `
		fun main() {
			let a: [i32; 2] = [1, 2];
			a[0] = 9;
		}
	`)
	require.Empty(t, result.Diagnostics)
}

func TestAnalyze_CallArityAndArgType(t *testing.T) {
	result := analyze(t, `
		fun f(a: i32) {
		}
		fun main() {
			f(1, 2);
			f(true);
		}
	`)
	kinds := kindsOf(result.Diagnostics)
	require.Contains(t, kinds, InvalidNumberOfParameters)
	require.Contains(t, kinds, InvalidParameterType)
}

func TestAnalyze_BreakContinueOutsideLoop(t *testing.T) {
	result := analyze(t, `
		fun main() {
			break;
			continue;
		}
	`)
	kinds := kindsOf(result.Diagnostics)
	require.Contains(t, kinds, InvalidBreak)
	require.Contains(t, kinds, InvalidContinue)
}

func TestAnalyze_BreakContinueInsideLoopIsValid(t *testing.T) {
	result := analyze(t, `
		fun main() {
			while true {
				break;
				continue;
			}
		}
	`)
	require.Empty(t, result.Diagnostics)
}

func TestAnalyze_ForOverNonRangeIsInvalid(t *testing.T) {
	result := analyze(t, `
		fun main() {
			let x = 5;
			for i in x {
			}
		}
	`)
	require.Contains(t, kindsOf(result.Diagnostics), ExpectedType)
}

func TestAnalyze_ForRangeInductionVariableIsUsable(t *testing.T) {
	result := analyze(t, `
		fun main() {
			for i in 0..10 {
				print(i);
			}
		}
	`)
	require.Empty(t, result.Diagnostics)
}

func TestAnalyze_ReturnTypeMismatch(t *testing.T) {
	result := analyze(t, `
		fun f(): bool {
			return 1;
		}
		fun main() {
		}
	`)
	require.Contains(t, kindsOf(result.Diagnostics), TypeMismatch)
}

func TestAnalyze_CannotReturnArrayOrFunction(t *testing.T) {
	result := analyze(t, `
		fun f(): [i32; 2] {
			return [1, 2];
		}
		fun g(): (i32): i32 {
		}
		fun main() {
		}
	`)
	kinds := kindsOf(result.Diagnostics)
	require.Contains(t, kinds, CannotReturnArray)
	require.Contains(t, kinds, CannotReturnFunction)
}

func TestAnalyze_IndexingNonArrayIsInvalid(t *testing.T) {
	result := analyze(t, `
		fun main() {
			let x = 1;
			let y = x[0];
		}
	`)
	require.Contains(t, kindsOf(result.Diagnostics), IdentifierNotIndexable)
}

func TestAnalyze_IndexWithNonIntegerIsInvalid(t *testing.T) {
	result := analyze(t, `
		fun main() {
			let a: [i32; 2] = [1, 2];
			let y = a[true];
		}
	`)
	require.Contains(t, kindsOf(result.Diagnostics), InvalidIndexType)
}

func TestAnalyze_ArrayLiteralElementMismatch(t *testing.T) {
	result := analyze(t, `
		fun main() {
			let a = [1, true];
		}
	`)
	require.Contains(t, kindsOf(result.Diagnostics), InvalidArrayElement)
}

func TestAnalyze_EmptyArrayLiteralWithDeclaredTypeIsValid(t *testing.T) {
	result := analyze(t, `
		fun main() {
			let a: [i32; 0] = [];
		}
	`)
	require.Empty(t, result.Diagnostics)
}

func TestAnalyze_EmptyArrayLiteralWithoutDeclaredTypeIsInvalid(t *testing.T) {
	result := analyze(t, `
		fun main() {
			let a = [];
		}
	`)
	require.Contains(t, kindsOf(result.Diagnostics), InvalidArrayElement)
}

func TestAnalyze_EmptyArrayLiteralInConstIsInvalid(t *testing.T) {
	result := analyze(t, `
		fun main() {
			const a: [i32; 0] = [];
		}
	`)
	require.Contains(t, kindsOf(result.Diagnostics), InvalidArrayElement)
}

func TestAnalyze_GlobalScopeExposesFunction(t *testing.T) {
	result := analyze(t, `
		fun main() {
		}
	`)
	sym, ok := result.Global.LookupLocal("main")
	require.True(t, ok)
	require.True(t, sym.Type.IsFunction())
}
