// Package parser builds a parse tree out of a dicelang token stream using
// hand-written recursive descent with one-token lookahead (two tokens for
// the statement rule).
package parser

import "github.com/belagir/dicelang/lexer"

// Tag identifies what a Node represents: either a terminal token kind
// (reused directly from lexer.Kind's string space) or one of the
// nonterminal grammar rules below. Terminal and nonterminal tags share one
// string space, following the "everything is a tag" variant described for
// the parse tree: a leaf's Tag equals its Token.Kind.
type Tag string

// Nonterminal tags, one per grammar rule that produces an interior node.
const (
	Program        Tag = "program"
	Statement      Tag = "statement"
	Assignment     Tag = "assignment"
	FunctionCall   Tag = "function_call"
	VariableAccess Tag = "variable_access"
	Addition       Tag = "addition"
	Dice           Tag = "dice"
	Multiplication Tag = "multiplication"
	Operand        Tag = "operand"
	ExpressionSet  Tag = "expression_set"
)

// Node is one element of the parse tree. A leaf carries a Token (its Tag
// mirrors Token.Kind); an interior node carries an ordered list of
// Children and no token. Parent is a non-owning back-reference kept only
// for diagnostics — it is never consulted during tree destruction, which
// in Go simply falls out of the tree becoming unreachable.
type Node struct {
	Tag      Tag
	Token    lexer.Token
	Children []*Node
	Parent   *Node
}

// leaf wraps a single token as a childless node whose Tag mirrors the
// token's Kind.
func leaf(tok lexer.Token) *Node {
	return &Node{Tag: Tag(tok.Kind), Token: tok}
}

// newNode creates an interior node tagged with the given nonterminal and,
// if parent is non-nil, appends it as a child and sets the back-reference.
func newNode(tag Tag, parent *Node) *Node {
	n := &Node{Tag: tag, Parent: parent}
	if parent != nil {
		parent.Children = append(parent.Children, n)
	}
	return n
}

// IsLeaf reports whether n carries a token directly rather than children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0 && n.Token.Kind != ""
}

// Pos returns n's source position: its own token's position if it is a
// leaf, or its first leaf's position otherwise. Returns the zero Pos for an
// empty subtree.
func (n *Node) Pos() lexer.Pos {
	if n.IsLeaf() {
		return n.Token.Pos
	}
	for _, c := range n.Children {
		if p := c.Pos(); p != (lexer.Pos{}) {
			return p
		}
	}
	return lexer.Pos{}
}

// Leaves returns, in depth-first order, the tokens at every leaf of the
// subtree rooted at n.
func (n *Node) Leaves() []lexer.Token {
	if n.IsLeaf() {
		return []lexer.Token{n.Token}
	}
	var out []lexer.Token
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// hasChildTag reports whether any direct child of n carries the given tag.
// It does not say at which position that child sits.
func (n *Node) hasChildTag(tag Tag) bool {
	for _, c := range n.Children {
		if c.Tag == tag {
			return true
		}
	}
	return false
}
