// Package dicelang assembles the lexer, parser, and interpreter into a
// single pipeline and threads one shared error value through it, the way
// the original C project's driver passes a single `dtoken_error` down
// through lex/parse/interpret.
package dicelang

import (
	"fmt"
	"io"

	"github.com/belagir/dicelang/interp"
	"github.com/belagir/dicelang/lexer"
	"github.com/belagir/dicelang/parser"
)

// Kind classifies an Error. The zero Kind, None, means no error occurred.
type Kind int

const (
	None Kind = iota
	Internal
	Lex
	Parse
	Interpret
)

// header is the one-line stderr prefix for each Kind, per the driver's
// external contract.
func (k Kind) header() string {
	switch k {
	case Internal:
		return "dicelang: internal error"
	case Lex:
		return "dicelang: reading error"
	case Parse:
		return "dicelang: syntax error"
	case Interpret:
		return "dicelang: interpreter error"
	default:
		return "dicelang: no error"
	}
}

// Error is the single error value that flows through a Program's
// pipeline: once populated by one stage, every later stage short-circuits
// without mutating it further.
type Error struct {
	Kind    Kind
	Token   lexer.Token
	Message string
}

// String renders e in the exact header + location format the driver's
// external contract specifies.
func (e *Error) String() string {
	s := e.Kind.header()
	if e.Kind == None {
		return s
	}
	return fmt.Sprintf("%s\nat (%d:%d) near token '%s' (%q)\n%s", s, e.Token.Pos.Line, e.Token.Pos.Col, e.Token.Kind, e.Token.Lexeme, e.Message)
}

// Report writes e's String form to w, terminated by a newline.
func (e *Error) Report(w io.Writer) {
	fmt.Fprintln(w, e.String())
}

// Program owns the full state of one dicelang run: its source text, the
// token stream and parse tree derived from it, and the error value (if
// any) raised along the way. Its lifetime mirrors the original's
// `(source_text, parse_tree_root, error)` record.
type Program struct {
	Source []byte
	Tokens []lexer.Token
	Tree   *parser.Node
	Err    *Error

	interp *interp.Interpreter
}

// Compile runs the lexer and parser over src, stopping at the first
// error either stage raises. The interpreter is not run yet — callers
// that only need tokens/tree (the `-tokens`/`-tree` debug dump modes)
// can stop here.
func Compile(src []byte) *Program {
	p := &Program{Source: src}

	p.Tokens = lexer.Tokenize(src)
	if last := p.Tokens[len(p.Tokens)-1]; last.Kind == lexer.Invalid {
		p.Err = &Error{Kind: Lex, Token: last, Message: "unrecognized token"}
		return p
	}

	root, perr := parser.Parse(p.Tokens)
	p.Tree = root
	if perr != nil {
		p.Err = &Error{Kind: Parse, Token: perr.Token, Message: perr.Message}
	}
	return p
}

// Interpret walks p's parse tree, writing any print output to w. Callers
// must not call it when p.Err is already set; the tree may be incomplete.
func (p *Program) Interpret(w io.Writer) {
	p.interp = interp.New(w)
	if rerr := p.interp.Run(p.Tree); rerr != nil {
		p.Err = &Error{Kind: Internal, Token: rerr.Token, Message: rerr.Message}
	}
}

// Run compiles src and, if compilation succeeded, interprets it, writing
// any print output to w. The returned Program's Err is nil on success.
func Run(src []byte, w io.Writer) *Program {
	p := Compile(src)
	if p.Err != nil {
		return p
	}
	p.Interpret(w)
	return p
}
