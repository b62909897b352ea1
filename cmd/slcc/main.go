/*
File    : slcc/cmd/slcc/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for slcc, the Source Language to C compiler.
It provides two modes of operation:
1. Compile mode: lex, parse, analyze, and emit a source file to C
2. REPL mode: interactive line-by-line front-end inspection

Usage:

	slcc -f prog.sl              - compile prog.sl, write ./output.c
	slcc -f prog.sl --compile out.c - compile prog.sl, write to out.c
	slcc -r                      - start the REPL
	slcc --help                  - display help information
	slcc --version               - display version information
*/
package main

import (
	"os"

	"github.com/akashmaji946/slcc/analyzer"
	"github.com/akashmaji946/slcc/cli"
	"github.com/akashmaji946/slcc/emitter"
	"github.com/akashmaji946/slcc/file"
	"github.com/akashmaji946/slcc/parser"
	"github.com/akashmaji946/slcc/repl"
	"github.com/fatih/color"
)

var VERSION = "v1.0.0"
var AUTHOR = "akashmaji(@iisc.ac.in)"
var LICENCE = "MIT"
var PROMPT = "slcc >>> "

var BANNER = `
     _
 ___| | ___ ___
/ __| |/ __/ __|
\__ \ | (_| (__
|___/_|\___\___|
`

var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		startRepl()
		return
	}

	if args[0] == "--help" || args[0] == "-h" {
		showHelp()
		return
	}
	if args[0] == "--version" {
		showVersion()
		return
	}

	opts, _ := cli.Parse(args)

	if opts.Has("repl") {
		startRepl()
		return
	}
	if opts.Has("file") {
		outPath := "output.c"
		if opts.Has("compile") {
			outPath = opts["compile"]
		}
		compileFile(opts["file"], outPath, opts.Has("verbose"))
		return
	}

	showHelp()
}

func showHelp() {
	cyanColor.Println("slcc - Source Language to C compiler")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  slcc -f <path>               Compile a source file to ./output.c")
	yellowColor.Println("  slcc -f <path> --compile out.c  Compile to a chosen output path")
	yellowColor.Println("  slcc -r                      Start the interactive REPL")
	yellowColor.Println("  slcc -v                      Verbose compile output")
	yellowColor.Println("  slcc --help                  Display this help message")
	yellowColor.Println("  slcc --version               Display version information")
}

func showVersion() {
	cyanColor.Println("slcc - Source Language to C compiler")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

func startRepl() {
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

// compileFile runs the full lex->parse->analyze->emit pipeline over the
// source file at srcPath and writes the generated C to outPath.
func compileFile(srcPath, outPath string, verbose bool) {
	source, err := file.ReadSource(srcPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		os.Exit(1)
	}

	unit, err := parser.Parse(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SYNTAX ERROR] %s\n", err)
		os.Exit(1)
	}
	if verbose {
		cyanColor.Fprintf(os.Stdout, "Parsed %d functions\n", len(unit.Functions))
	}

	result := analyzer.Analyze(unit)
	if len(result.Diagnostics) > 0 {
		for _, d := range result.Diagnostics {
			redColor.Fprintf(os.Stderr, "[SEMANTIC ERROR] %s\n", d)
		}
		os.Exit(1)
	}

	generated := emitter.Emit(unit, result.Global, result.Scopes)
	if err := file.WriteOutput(outPath, generated); err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		os.Exit(1)
	}

	if verbose {
		cyanColor.Fprintf(os.Stdout, "Wrote %s\n", outPath)
	} else {
		yellowColor.Fprintf(os.Stdout, "%s\n", outPath)
	}
}
