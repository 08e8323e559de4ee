/*
Package main is the entry point for the dicelang interpreter.
It provides two modes of operation:
 1. File mode (default): execute a dicelang script from the command line
 2. REPL mode: interactive read-eval-print loop for live exploration

The interpreter uses a lexer-parser-interpreter pipeline to process dicelang
source, following the same stage-by-stage error short-circuiting the
language's pipeline is built around.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/belagir/dicelang/dicelang"
	"github.com/belagir/dicelang/parser"
	"github.com/belagir/dicelang/repl"
	"github.com/fatih/color"
)

// VERSION is the current version of the dicelang interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains attribution for the interpreter.
var AUTHOR = "belagir"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "dicelang >>> "

// BANNER is the logo displayed when starting the REPL.
var BANNER = `
     _ _          _
  __| (_) ___ ___| | __ _ _ __   __ _
 / _' | |/ __/ _ \ |/ _' | '_ \ / _' |
| (_| | | (_|  __/ | (_| | | | | (_| |
 \__,_|_|\___\___|_|\__,_|_| |_|\__, |
                                |___/
`

// LINE is a separator used for visual formatting in the REPL banner.
var LINE = "----------------------------------------------------------------"

var redColor = color.New(color.FgRed)

// exit codes per the driver's external contract. spec.md phrases the
// open/file-error code as "-2"; os.Exit takes a process exit status,
// which the OS truncates to an unsigned byte, so a literal -2 would
// surface to a shell as 254. We use the positive equivalent, 2 — see
// DESIGN.md for the resolution.
const (
	exitSuccess   = 0
	exitUsage     = 1
	exitOpenError = 2
)

func main() {
	tokensFlag := flag.Bool("tokens", false, "print the token stream before interpreting")
	treeFlag := flag.Bool("tree", false, "print the parse tree before interpreting")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-tokens] [-tree] <script> | repl\n", os.Args[0])
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 1 && args[0] == "repl" {
		repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT).Start(os.Stdin, os.Stdout)
		return
	}

	if len(args) != 1 {
		flag.Usage()
		os.Exit(exitUsage)
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		redColor.Fprintf(os.Stderr, "dicelang: could not open %q: %v\n", args[0], err)
		os.Exit(exitOpenError)
	}

	os.Exit(runFile(source, *tokensFlag, *treeFlag))
}

// runFile executes source with panic recovery, matching the teacher's
// executeFileWithRecovery: a bug in the lexer/parser/interpreter degrades
// to a reported internal error rather than a crash.
func runFile(source []byte, dumpTokens, dumpTree bool) (code int) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stderr, "dicelang: internal error\n%v\n", r)
			code = exitUsage
		}
	}()

	prog := dicelang.Compile(source)

	if dumpTokens {
		for _, tok := range prog.Tokens {
			fmt.Println(tok.String())
		}
	}
	if dumpTree && prog.Tree != nil {
		printTree(prog.Tree, 0)
	}

	if prog.Err == nil {
		prog.Interpret(os.Stdout)
	}

	if prog.Err != nil {
		prog.Err.Report(os.Stderr)
		return exitUsage
	}

	fmt.Fprintln(os.Stderr, "dicelang: no error")
	return exitSuccess
}

// printTree renders a parse tree indented by depth, in the style of the
// teacher's PrintingVisitor.
func printTree(n *parser.Node, depth int) {
	for i := 0; i < depth; i++ {
		fmt.Print("  ")
	}
	if n.IsLeaf() {
		fmt.Printf("%s\n", n.Token)
	} else {
		fmt.Printf("%s\n", n.Tag)
	}
	for _, c := range n.Children {
		printTree(c, depth+1)
	}
}
