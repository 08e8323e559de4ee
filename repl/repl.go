// Package repl implements the Read-Eval-Print Loop for dicelang. The REPL
// provides an interactive environment where users can:
//   - Enter dicelang statements line by line
//   - See distributions printed immediately as side effects of `print`
//   - Navigate command history using arrow keys
//   - Receive colored feedback for different kinds of output
//
// The REPL uses the readline library for enhanced line editing and keeps
// one interpreter alive across the whole session, so variables assigned on
// one line stay bound for later lines — unlike file mode, which runs a
// script once and discards its interpreter.
package repl

import (
	"io"
	"strings"

	"github.com/belagir/dicelang/dicelang"
	"github.com/belagir/dicelang/interp"
	"github.com/belagir/dicelang/lexer"
	"github.com/belagir/dicelang/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive dicelang session's configuration.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates and initializes a new REPL instance.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to dicelang!")
	cyanColor.Fprintf(writer, "%s\n", "Type a statement and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: print the banner, set up readline, and
// read-eval-print lines against one shared interpreter until the user
// exits or EOF is reached.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interp.New(writer)

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
		r.executeWithRecovery(writer, line, it)
	}
}

// executeWithRecovery lexes, parses, and interprets one line against it,
// the session's persistent interpreter. Unlike file mode, the REPL
// survives every error (and even a panic, via recover) and returns to the
// prompt so the user can correct a mistake and try again.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, it *interp.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "dicelang: internal error\n%v\n", recovered)
		}
	}()

	tokens := lexer.Tokenize([]byte(line))
	if last := tokens[len(tokens)-1]; last.Kind == lexer.Invalid {
		redColor.Fprintln(writer, (&dicelang.Error{Kind: dicelang.Lex, Token: last, Message: "unrecognized token"}).String())
		return
	}

	root, perr := parser.Parse(tokens)
	if perr != nil {
		redColor.Fprintln(writer, (&dicelang.Error{Kind: dicelang.Parse, Token: perr.Token, Message: perr.Message}).String())
		return
	}

	if rerr := it.Run(root); rerr != nil {
		redColor.Fprintln(writer, (&dicelang.Error{Kind: dicelang.Internal, Token: rerr.Token, Message: rerr.Message}).String())
	}
}
