/*
File    : slcc/cli/cli.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package cli parses the compiler's command-line flags. -f/--file,
-v/--verbose and -r/--repl each have a short and a long spelling that
resolve to the same option key, so callers never have to check both;
--compile has only its long spelling. Values are stored as strings -- boolean flags (-v, -r)
are recorded with an empty value and their presence checked separately via
Has, since "present but unset" and "absent" need to stay distinguishable.
*/
package cli

// aliases maps every recognized flag spelling (short and long) to the
// canonical option key it's stored under.
var aliases = map[string]string{
	"-f": "file", "--file": "file",
	"-v": "verbose", "--verbose": "verbose",
	"-r": "repl", "--repl": "repl",
	"--compile": "compile",
}

// valueFlags lists the option keys that consume the following argument as
// their value; every other recognized flag is a boolean presence marker.
var valueFlags = map[string]bool{
	"file":    true,
	"compile": true,
}

// Options is a parsed set of command-line flags: present options map to
// their value (empty string for boolean flags), absent options are simply
// not keys in the map.
type Options map[string]string

// Has reports whether option was passed on the command line at all,
// distinguishing a boolean flag's presence from its (always empty) value.
func (o Options) Has(option string) bool {
	_, ok := o[option]
	return ok
}

// Parse walks args (typically os.Args[1:]) and resolves every recognized
// flag to its canonical option key. Unrecognized arguments are returned
// unchanged as positional, in order.
func Parse(args []string) (Options, []string) {
	opts := make(Options)
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		key, known := aliases[arg]
		if !known {
			positional = append(positional, arg)
			continue
		}

		if valueFlags[key] && i+1 < len(args) {
			i++
			opts[key] = args[i]
			continue
		}
		opts[key] = ""
	}

	return opts, positional
}
