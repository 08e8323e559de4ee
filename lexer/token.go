// Package lexer turns dicelang source text into a stream of positioned
// tokens using a table-driven, longest-match DFA.
package lexer

import "fmt"

// Kind identifies the flavour of a token. It doubles as the DFA's state
// space: every Kind is both a possible accept state and a possible token
// tag, with Empty as the start state and Invalid as the trap state.
type Kind string

// Token kinds. Invalid and Empty never appear as leaves of a finished
// parse: Invalid signals a lex failure, Empty is only ever a transient
// scanning state.
const (
	Invalid Kind = "invalid"
	Empty   Kind = "empty"

	LineEnd Kind = "line_end"
	FileEnd Kind = "file_end"

	Identifier Kind = "identifier"
	Value      Kind = "value"

	Separator  Kind = "separator"
	Designator Kind = "designator"

	OpAdd  Kind = "op_add"
	OpSub  Kind = "op_sub"
	OpMul  Kind = "op_mul"
	OpDice Kind = "op_dice"

	OpenParen    Kind = "open_paren"
	CloseParen   Kind = "close_paren"
	OpenBrace    Kind = "open_brace"
	CloseBrace   Kind = "close_brace"
	OpenBracket  Kind = "open_bracket"
	CloseBracket Kind = "close_bracket"
)

// Pos is a 1-based (line, column) source position.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a tagged slice of the source text together with the position of
// its first byte. Lexeme borrows from the caller's source buffer; a Token's
// useful lifetime ends when that buffer is released.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Pos
}

// String renders a token the way diagnostics quote it: kind and lexeme,
// e.g. op_add("+").
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
}

// IsTerminal reports whether k denotes a real token kind rather than one of
// the two scanning-only sentinels (Empty, Invalid's trap use aside — Invalid
// itself is a legitimate terminal token emitted on lex failure).
func (k Kind) IsTerminal() bool {
	return k != Empty
}
