/*
File    : slcc/cli/cli_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_ShortAndLongFlagsResolveToSameKey(t *testing.T) {
	opts, _ := Parse([]string{"-f", "prog.sl"})
	require.True(t, opts.Has("file"))
	require.Equal(t, "prog.sl", opts["file"])

	opts, _ = Parse([]string{"--file", "prog.sl"})
	require.True(t, opts.Has("file"))
	require.Equal(t, "prog.sl", opts["file"])
}

func TestParse_BooleanFlagsHavePresenceNotValue(t *testing.T) {
	opts, _ := Parse([]string{"-v", "-r"})
	require.True(t, opts.Has("verbose"))
	require.True(t, opts.Has("repl"))
	require.Equal(t, "", opts["verbose"])
}

func TestParse_AbsentOptionHasFalse(t *testing.T) {
	opts, _ := Parse([]string{"-f", "prog.sl"})
	require.False(t, opts.Has("repl"))
}

func TestParse_CompileFlagTakesPath(t *testing.T) {
	opts, _ := Parse([]string{"-f", "prog.sl", "--compile", "out.c"})
	require.Equal(t, "out.c", opts["compile"])
}

func TestParse_UnrecognizedArgsArePositional(t *testing.T) {
	_, positional := Parse([]string{"prog.sl", "-v"})
	require.Equal(t, []string{"prog.sl"}, positional)
}
