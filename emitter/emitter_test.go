/*
File    : slcc/emitter/emitter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package emitter

import (
	"strings"
	"testing"

	"github.com/akashmaji946/slcc/analyzer"
	"github.com/akashmaji946/slcc/parser"
	"github.com/stretchr/testify/require"
)

func emit(t *testing.T, src string) string {
	t.Helper()
	unit, err := parser.Parse(src)
	require.NoError(t, err)
	result := analyzer.Analyze(unit)
	require.Empty(t, result.Diagnostics)
	return Emit(unit, result.Global, result.Scopes)
}

func TestEmit_IncludesStdio(t *testing.T) {
	out := emit(t, `
		fun main() {
		}
	`)
	require.Contains(t, out, "#include<stdio.h>")
}

func TestEmit_MainAlwaysReturnsZero(t *testing.T) {
	out := emit(t, `
		fun main() {
			let x = 1;
		}
	`)
	require.Contains(t, out, "int main()")
	require.Contains(t, out, "return 0;}")
}

func TestEmit_NonMainGetsPrototypeAndDefinition(t *testing.T) {
	out := emit(t, `
		fun add(a: i32, b: i32): i32 {
			return a + b;
		}
		fun main() {
			let x = add(1, 2);
		}
	`)
	require.Contains(t, out, "signed int add(signed int,signed int);")
	require.Contains(t, out, "signed int add(signed int a,signed int b)")
}

func TestEmit_PrintUsesFormatSpecifierPerType(t *testing.T) {
	out := emit(t, `
		fun main() {
			let i = 1;
			let f: f64 = 2.5;
			let c: char = 'x';
			print(i);
			print(f);
			print(c);
		}
	`)
	require.Contains(t, out, `printf("%d",`)
	require.Contains(t, out, `printf("%lf",`)
	require.Contains(t, out, `printf("%c",`)
}

func TestEmit_F32UsesPlainFNotFF(t *testing.T) {
	out := emit(t, `
		fun main() {
			let f: f32 = 1.5;
			print(f);
		}
	`)
	require.Contains(t, out, `printf("%f",`)
	require.NotContains(t, out, `printf("%ff",`)
}

func TestEmit_BoolPrintsAsTernary(t *testing.T) {
	out := emit(t, `
		fun main() {
			let b = true;
			print(b);
		}
	`)
	require.Contains(t, out, `?"true":"false"`)
}

func TestEmit_ForRangeLowersToCFor(t *testing.T) {
	out := emit(t, `
		fun main() {
			for i in 0..10 {
				print(i);
			}
		}
	`)
	require.Contains(t, out, "for(")
	require.Contains(t, out, "i<")
	require.Contains(t, out, "i++)")
}

func TestEmit_InclusiveRangeUsesLessEquals(t *testing.T) {
	out := emit(t, `
		fun main() {
			for i in 0..=10 {
				print(i);
			}
		}
	`)
	require.Contains(t, out, "i<=")
}

func TestEmit_StringTypedefEmittedOnce(t *testing.T) {
	out := emit(t, `
		fun main() {
			let a: string = "x";
			let b: string = "y";
		}
	`)
	require.Equal(t, 1, strings.Count(out, "typedef char __string[256];"))
}

func TestEmit_StringLiteralPassesEscapesThrough(t *testing.T) {
	out := emit(t, `
		fun main() {
			let a: string = "tab\there";
		}
	`)
	require.Contains(t, out, `"tab\there"`)
	require.NotContains(t, out, `\\t`)
}

func TestEmit_ArrayLiteralAsCompoundLiteral(t *testing.T) {
	out := emit(t, `
		fun main() {
			let a: [i32; 3] = [1, 2, 3];
		}
	`)
	require.Contains(t, out, "){1,2,3}")
}
