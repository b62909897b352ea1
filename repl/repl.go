/*
File    : slcc/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements a line-by-line Read-Eval-Print Loop for the
compiler. Unlike an interpreter's REPL, this one carries no evaluation state
across lines: every line is independently lexed, parsed, and analyzed, and
either its parsed AST or its first diagnostic is printed. There is nothing
to execute -- the compiler's only output is C source, and a single line
rarely forms a complete compilation unit worth emitting.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/slcc/analyzer"
	"github.com/akashmaji946/slcc/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner and prompt text shown to the user at startup.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl ready to Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type a function declaration and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop, reading from reader (via readline) and writing
// parsed ASTs or diagnostics to writer.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.evaluate(writer, line)
	}
}

// evaluate lexes, parses, and analyzes one line, printing its AST on success
// or its first diagnostic on failure. Nothing is emitted to C -- a single
// REPL line is for inspecting the front end, not for producing output.c.
func (r *Repl) evaluate(writer io.Writer, line string) {
	unit, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(writer, "[SYNTAX ERROR] %s\n", err)
		return
	}

	result := analyzer.Analyze(unit)
	if len(result.Diagnostics) > 0 {
		redColor.Fprintf(writer, "[SEMANTIC ERROR] %s\n", result.Diagnostics[0])
		return
	}

	visitor := &PrintingVisitor{}
	visitor.VisitCompilationUnit(unit)
	yellowColor.Fprint(writer, visitor.String())
}

// PrintingVisitor renders a CompilationUnit's structure for REPL inspection:
// one indented line per function, per parameter, and one giving each body's
// statement count. Statements themselves are not printed.
type PrintingVisitor struct {
	indent int
	buf    strings.Builder
}

const indentSize = 2

func (p *PrintingVisitor) line(format string, args ...interface{}) {
	p.buf.WriteString(strings.Repeat(" ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteString("\n")
}

func (p *PrintingVisitor) String() string { return p.buf.String() }

// VisitCompilationUnit prints every top-level function declaration.
func (p *PrintingVisitor) VisitCompilationUnit(unit parser.CompilationUnit) {
	p.line("CompilationUnit (%d functions)", len(unit.Functions))
	p.indent += indentSize
	for _, fn := range unit.Functions {
		p.visitFunction(fn)
	}
	p.indent -= indentSize
}

func (p *PrintingVisitor) visitFunction(fn parser.Function) {
	p.line("Function %s (%d params)", fn.Name.Value, len(fn.Params))
	p.indent += indentSize
	for _, param := range fn.Params {
		p.line("Param %s: %s", param.Name.Value, param.Type.Literal())
	}
	p.line("Body (%d statements)", len(fn.Body.Statements))
	p.indent -= indentSize
}
